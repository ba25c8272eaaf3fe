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

import "github.com/consensys/go-regcon/pkg/ir"

// Config determines how constraints are resolved.
type Config struct {
	// Checked enables internal consistency assertions.  A failing assertion
	// indicates a defect in the IR handed to the allocator, and panics with
	// an *InvariantViolation.  Unchecked resolution skips the assertions and
	// silently produces whatever the rules give.
	Checked bool
	// StackEffects recognises member instructions which may legitimately
	// produce stack pointers.  When nil, MInstrEffects is used.
	StackEffects StackEffects
}

// DefaultConfig returns a checked configuration using MInstrEffects.
func DefaultConfig() Config {
	return Config{Checked: true, StackEffects: MInstrEffects{}}
}

// StackEffects is a predicate identifying opcodes whose effects on the VM
// stack are modelled by producing a new stack pointer.
type StackEffects interface {
	IsStackEffecting(op ir.Opcode) bool
}

// StackEffectsFunc adapts an ordinary function to the StackEffects interface.
type StackEffectsFunc func(ir.Opcode) bool

// IsStackEffecting implementation for the StackEffects interface.
func (f StackEffectsFunc) IsStackEffecting(op ir.Opcode) bool {
	return f(op)
}

// MInstrEffects recognises member instructions (i.e. those operating on a
// property or element base) which may write through their base onto the VM
// stack.
type MInstrEffects struct{}

// IsStackEffecting implementation for the StackEffects interface.
func (MInstrEffects) IsStackEffecting(op ir.Opcode) bool {
	return op.Has(ir.ModifiesStack) && op.Any(ir.MInstrProp|ir.MInstrElem)
}
