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
package arm64

import (
	"fmt"

	"github.com/consensys/go-regcon/pkg/backend"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// ARCH is the name under which this backend is registered.
const ARCH = "arm64"

// Reserved general purpose register numbers.  Number 31 encodes the stack
// pointer in the instructions which use it.
const (
	X19 uint8 = 19
	X29 uint8 = 29
	X30 uint8 = 30
	SP  uint8 = 31
)

// Backend implements the AArch64 default constraint policy.  The VM stack
// pointer lives in x19, the frame pointer in x29, and member instruction
// state is addressed from sp.
type Backend struct{}

func init() {
	backend.Register(Backend{})
}

// Arch implementation for the Backend interface.
func (Backend) Arch() string {
	return ARCH
}

// RegName implementation for the Backend interface.
func (Backend) RegName(r reg.PhysReg) string {
	switch {
	case r.Class() == reg.GP && r.Num() == SP:
		return "sp"
	case r.Class() == reg.GP && r.Num() < SP:
		return fmt.Sprintf("x%d", r.Num())
	case r.Class() == reg.SIMD && r.Num() < 32:
		return fmt.Sprintf("v%d", r.Num())
	case r.Class() == reg.SF:
		return "nzcv"
	}
	//
	return r.String()
}

// VMStackPointer implementation for the Backend interface.
func (Backend) VMStackPointer() reg.PhysReg {
	return reg.NewReg(reg.GP, X19)
}

// VMFramePointer implementation for the Backend interface.
func (Backend) VMFramePointer() reg.PhysReg {
	return reg.NewReg(reg.GP, X29)
}

// ScratchPointer implementation for the Backend interface.
func (Backend) ScratchPointer() reg.PhysReg {
	return reg.NewReg(reg.GP, SP)
}

// SrcConstraint implementation for the Backend interface.  Only the 12bit
// unsigned immediates of add, sub and cmp, and shift amounts, are folded.
// Logical immediates are not, since few constants are encodable as bitmask
// immediates.
func (Backend) SrcConstraint(inst *ir.Instruction, i uint) reg.Constraint {
	src := inst.Src(i)
	//
	if c, ok := backend.IntConst(src); ok && foldsImmediate(inst.Op(), i, c) {
		return reg.Default(reg.GP | reg.IMM)
	}
	//
	return reg.Default(backend.ValueClasses(src.Type()))
}

// DstConstraint implementation for the Backend interface.
func (Backend) DstConstraint(inst *ir.Instruction, i uint) reg.Constraint {
	switch inst.Op() {
	case ir.GtInt, ir.LtInt, ir.EqInt, ir.NeqInt, ir.GtDbl, ir.LtDbl:
		return reg.Default(reg.GP | reg.SF)
	}
	//
	return reg.Default(backend.ValueClasses(inst.Dst(i).Type()))
}

func foldsImmediate(op ir.Opcode, i uint, c int64) bool {
	switch op {
	case ir.AddInt, ir.SubInt, ir.GtInt, ir.LtInt, ir.EqInt, ir.NeqInt:
		return i == 1 && c >= 0 && c < 1<<12
	case ir.Shl, ir.Shr:
		return i == 1 && c >= 0 && c < 64
	default:
		return false
	}
}
