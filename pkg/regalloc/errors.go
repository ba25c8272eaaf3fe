// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package regalloc

import (
	"fmt"

	"github.com/consensys/go-regcon/pkg/ir"
	log "github.com/sirupsen/logrus"
)

// InvariantViolation signals that the IR given to the allocator breaks an
// assumption of constraint resolution.  This always indicates a defect in
// the construction of the IR, rather than something a user can fix.
type InvariantViolation struct {
	// Instruction being examined
	Inst *ir.Instruction
	// Value at fault
	Value *ir.Value
	// Description of the broken invariant
	Message string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s (%s in \"%s\")", e.Message, e.Value, e.Inst)
}

// Raise a violation of an internal invariant.  This does not return.
func violation(inst *ir.Instruction, value *ir.Value, format string, args ...any) {
	err := &InvariantViolation{inst, value, fmt.Sprintf(format, args...)}
	//
	log.WithFields(log.Fields{
		"inst":  inst.Id(),
		"op":    inst.Op().String(),
		"value": value.Name(),
	}).Error(err.Message)
	//
	panic(err)
}
