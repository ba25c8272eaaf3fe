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
package backend

import (
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// Backend captures the knowledge of a target architecture which the register
// allocator needs but does not own: the identities of the registers reserved
// by the VM calling convention, and the default placement policy for
// operands which are not otherwise constrained.
type Backend interface {
	// Arch returns the name of the target architecture.
	Arch() string
	// RegName returns the assembly name of a physical register.
	RegName(reg.PhysReg) string
	// VMStackPointer returns the register holding the VM stack pointer.
	VMStackPointer() reg.PhysReg
	// VMFramePointer returns the register holding the active frame pointer.
	VMFramePointer() reg.PhysReg
	// ScratchPointer returns the register addressing scratch state, such as
	// the member instruction state.  This is the native stack pointer.
	ScratchPointer() reg.PhysReg
	// SrcConstraint returns the default constraint for the ith source of an
	// instruction.
	SrcConstraint(inst *ir.Instruction, i uint) reg.Constraint
	// DstConstraint returns the default constraint for the ith destination
	// of an instruction.
	DstConstraint(inst *ir.Instruction, i uint) reg.Constraint
}
