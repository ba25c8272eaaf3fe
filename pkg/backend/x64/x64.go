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
package x64

import (
	"fmt"
	"math"

	"github.com/consensys/go-regcon/pkg/backend"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// ARCH is the name under which this backend is registered.
const ARCH = "x64"

// General purpose register numbers, following the hardware encoding.
const (
	RAX uint8 = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

var gpNames = [...]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

// Backend implements the x86-64 default constraint policy.  The VM stack
// pointer lives in rbx, the frame pointer in rbp, and member instruction
// state is addressed from the native stack pointer.
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
	case r.Class() == reg.GP && int(r.Num()) < len(gpNames):
		return gpNames[r.Num()]
	case r.Class() == reg.SIMD && r.Num() < 16:
		return fmt.Sprintf("xmm%d", r.Num())
	case r.Class() == reg.SF:
		return "eflags"
	}
	//
	return r.String()
}

// VMStackPointer implementation for the Backend interface.
func (Backend) VMStackPointer() reg.PhysReg {
	return reg.NewReg(reg.GP, RBX)
}

// VMFramePointer implementation for the Backend interface.
func (Backend) VMFramePointer() reg.PhysReg {
	return reg.NewReg(reg.GP, RBP)
}

// ScratchPointer implementation for the Backend interface.
func (Backend) ScratchPointer() reg.PhysReg {
	return reg.NewReg(reg.GP, RSP)
}

// SrcConstraint implementation for the Backend interface.  Integer constants
// which fit in a sign-extended 32bit immediate can be folded into the second
// operand of most arithmetic and comparison instructions, and into stores.
func (Backend) SrcConstraint(inst *ir.Instruction, i uint) reg.Constraint {
	var (
		src     = inst.Src(i)
		classes = backend.ValueClasses(src.Type())
	)
	//
	if c, ok := backend.IntConst(src); ok && foldsImmediate(inst.Op(), i, c) {
		return reg.Default(reg.GP | reg.IMM)
	}
	//
	return reg.Default(classes)
}

// DstConstraint implementation for the Backend interface.
func (Backend) DstConstraint(inst *ir.Instruction, i uint) reg.Constraint {
	if isCompare(inst.Op()) {
		return reg.Default(reg.GP | reg.SF)
	}
	//
	return reg.Default(backend.ValueClasses(inst.Dst(i).Type()))
}

func foldsImmediate(op ir.Opcode, i uint, c int64) bool {
	switch op {
	case ir.AddInt, ir.SubInt, ir.MulInt, ir.AndInt, ir.OrInt, ir.XorInt,
		ir.GtInt, ir.LtInt, ir.EqInt, ir.NeqInt:
		return i == 1 && c >= math.MinInt32 && c <= math.MaxInt32
	case ir.Shl, ir.Shr:
		return i == 1 && c >= 0 && c < 64
	case ir.StStk, ir.StLoc:
		return i == 2 && c >= math.MinInt32 && c <= math.MaxInt32
	default:
		return false
	}
}

func isCompare(op ir.Opcode) bool {
	switch op {
	case ir.GtInt, ir.LtInt, ir.EqInt, ir.NeqInt, ir.GtDbl, ir.LtDbl:
		return true
	default:
		return false
	}
}
