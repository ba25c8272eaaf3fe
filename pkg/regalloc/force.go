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
	"github.com/consensys/go-regcon/pkg/backend"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// Resolver determines which values must live in a register reserved by the
// VM calling convention.  The outcome depends only on a value's type and the
// opcode of its defining instruction, and is therefore the same for every
// instruction using the value.
type Resolver struct {
	backend backend.Backend
	effects StackEffects
	checked bool
}

// NewResolver constructs a resolver for a given backend.
func NewResolver(b backend.Backend, cfg Config) *Resolver {
	effects := cfg.StackEffects
	//
	if effects == nil {
		effects = MInstrEffects{}
	}
	//
	return &Resolver{b, effects, cfg.Checked}
}

// ForcedRegister returns the register a value must be allocated to, if any.
// The rules are applied in order:
//
//  1. Stack pointers live in the VM stack pointer register, except when
//     stashed by StashResumableSP.
//  2. Frame pointers live in the VM frame pointer register, except for the
//     activation record of a suspended generator or async function.
//  3. The member instruction state base lives in the scratch pointer.
func (p *Resolver) ForcedRegister(v *ir.Value) reg.Forced {
	var (
		inst = v.Inst()
		op   = inst.Op()
	)
	//
	switch {
	case op != ir.StashResumableSP && hasType(v, ir.StkPtr):
		if p.checked && !p.producesStackPointer(op) {
			violation(inst, v, "%s cannot define a stack pointer", op)
		}
		//
		return reg.Pinned(p.backend.VMStackPointer())
	case op != ir.LdContActRec && op != ir.LdAFWHActRec && hasType(v, ir.FramePtr):
		return reg.Pinned(p.backend.VMFramePointer())
	case op == ir.DefMIStateBase:
		if p.checked && !hasType(v, ir.PtrToCell) {
			violation(inst, v, "member state base must be a PtrToCell")
		}
		//
		return reg.Pinned(p.backend.ScratchPointer())
	}
	//
	return reg.NotForced()
}

// producesStackPointer checks whether an opcode is known to define stack
// pointers.
func (p *Resolver) producesStackPointer(op ir.Opcode) bool {
	switch op {
	case ir.DefSP, ir.ReDefSP, ir.ReDefResumableSP, ir.PassSP, ir.DefInlineSP:
		return true
	case ir.Call, ir.CallArray:
		return true
	case ir.SpillStack, ir.SpillFrame, ir.CufIterSpillFrame:
		return true
	case ir.ExceptionBarrier, ir.RetAdjustStack:
		return true
	case ir.InterpOne, ir.InterpOneCF:
		return true
	case ir.CheckStk, ir.GuardStk, ir.AssertStk, ir.CastStk, ir.CoerceStk, ir.SideExitGuardStk:
		return true
	}
	//
	return p.effects.IsStackEffecting(op)
}

// Bottom is a subtype of everything, but never describes a real value.
func hasType(v *ir.Value, t ir.Type) bool {
	return v.Type() != ir.Bottom && v.IsA(t)
}
