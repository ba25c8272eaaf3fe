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
	"testing"

	"github.com/consensys/go-regcon/pkg/backend/arm64"
	"github.com/consensys/go-regcon/pkg/backend/x64"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	"github.com/consensys/go-regcon/pkg/util/assert"
)

func Test_Constraints_01(t *testing.T) {
	var (
		f  = newFrame(t)
		cs = New(x64.Backend{}, DefaultConfig())
		sp = f.sp.Inst()
	)
	//
	assert.Equal(t, reg.Pin(rVmFp), cs.Src(sp, 0))
	assert.Equal(t, reg.Immediate(), cs.Src(sp, 1))
	assert.Equal(t, reg.Pin(rVmSp), cs.Dst(sp, 0))
}

func Test_Constraints_02(t *testing.T) {
	var (
		f     = newFrame(t)
		cs    = New(x64.Backend{}, DefaultConfig())
		stash = f.gen(ir.StashResumableSP, ir.StkPtr, f.fp, f.sp)
	)
	// Stashed stack pointers are left to the backend
	assert.Equal(t, x64.Backend{}.DstConstraint(stash, 0), cs.Dst(stash, 0))
	assert.Equal(t, reg.Default(reg.GP), cs.Dst(stash, 0))
	// But the stack pointer it stashes is not
	assert.Equal(t, reg.Pin(rVmSp), cs.Src(stash, 1))
	// Using the stashed value is also left to the backend
	pass := f.gen(ir.PassSP, ir.StkPtr, stash.Dst(0))
	assert.Equal(t, reg.Default(reg.GP), cs.Src(pass, 0))
}

func Test_Constraints_03(t *testing.T) {
	var (
		f    = newFrame(t)
		cs   = New(x64.Backend{}, DefaultConfig())
		call = f.gen(ir.Call, ir.StkPtr, f.sp, f.fp, f.unit.Const(ir.Int, int64(3)))
	)
	//
	assert.Equal(t, reg.Pin(rVmSp), cs.Src(call, 0))
	assert.Equal(t, reg.Pin(rVmFp), cs.Src(call, 1))
	assert.Equal(t, reg.Immediate(), cs.Src(call, 2))
	assert.Equal(t, reg.Pin(rVmSp), cs.Dst(call, 0))
}

func Test_Constraints_04(t *testing.T) {
	var (
		f     = newFrame(t)
		cs    = New(x64.Backend{}, DefaultConfig())
		ptr   = f.gen(ir.LdLocAddr, ir.PtrToGen, f.fp, f.k).Dst(0)
		addr  = f.gen(ir.LdAddr, ir.PtrToGen, ptr, f.unit.Const(ir.Int, int64(8)))
		clos  = f.unit.Const(ir.TCA, int64(0x1000))
		built = f.gen(ir.CallBuiltin, ir.Int, clos, f.k, f.k)
	)
	//
	assert.Equal(t, reg.Default(reg.GP), cs.Src(addr, 0))
	assert.Equal(t, reg.Immediate(), cs.Src(addr, 1))
	assert.Equal(t, reg.Immediate(), cs.Src(built, 0))
	// Spilled values are left to the backend
	assert.Equal(t, reg.Default(reg.GP), cs.Src(built, 1))
	assert.Equal(t, reg.Default(reg.GP), cs.Src(built, 2))
}

func Test_Constraints_05(t *testing.T) {
	var (
		f  = newFrame(t)
		cs = New(x64.Backend{}, DefaultConfig())
		// A frame pointer where a constant is expected
		ld = f.gen(ir.LdLoc, ir.Int, f.fp, f.fp)
	)
	// Forced registers take priority over constants
	assert.True(t, GlobalConstTable().MustBeConst(ir.LdLoc, 1))
	assert.Equal(t, reg.Pin(rVmFp), cs.Src(ld, 1))
}

func Test_Constraints_06(t *testing.T) {
	var (
		f   = newFrame(t)
		cs  = New(x64.Backend{}, DefaultConfig())
		one = f.unit.Const(ir.Int, int64(1))
		n   = f.gen(ir.LdLoc, ir.Int, f.fp, f.k).Dst(0)
		add = f.gen(ir.AddInt, ir.Int, n, one)
		b   = x64.Backend{}
	)
	//
	for i := uint(0); i < 2; i++ {
		assert.Equal(t, b.SrcConstraint(add, i), cs.Src(add, i))
	}
	//
	assert.Equal(t, reg.Default(reg.GP|reg.IMM), cs.Src(add, 1))
	assert.Equal(t, b.DstConstraint(add, 0), cs.Dst(add, 0))
}

func Test_Constraints_07(t *testing.T) {
	var (
		f  = newFrame(t)
		cs = New(x64.Backend{}, DefaultConfig())
		n  = f.gen(ir.LdLoc, ir.Int, f.fp, f.k).Dst(0)
		ld = f.gen(ir.LdLoc, ir.Int, f.fp, n)
	)
	// A non-constant value where a constant is expected
	checkViolation(t, n, func() { cs.Src(ld, 1) })
	// Without checking, an immediate is still required
	cs = New(x64.Backend{}, Config{})
	assert.Equal(t, reg.Immediate(), cs.Src(ld, 1))
}

func Test_Constraints_08(t *testing.T) {
	var (
		f  = newFrame(t)
		cs = New(arm64.Backend{}, DefaultConfig())
		b  = arm64.Backend{}
		sp = f.sp.Inst()
	)
	//
	assert.Equal(t, reg.Pin(b.VMFramePointer()), cs.Src(sp, 0))
	assert.Equal(t, reg.Pin(b.VMStackPointer()), cs.Dst(sp, 0))
	assert.Equal(t, "x19", b.RegName(cs.Dst(sp, 0).Reg()))
}

func Test_Constraints_09(t *testing.T) {
	var (
		f  = newFrame(t)
		cs = New(x64.Backend{}, DefaultConfig())
		sp = f.sp.Inst()
	)
	// Queries are repeatable
	for i := 0; i < 3; i++ {
		assert.Equal(t, reg.Pin(rVmFp), cs.Src(sp, 0))
		assert.Equal(t, reg.Immediate(), cs.Src(sp, 1))
		assert.Equal(t, reg.Pin(rVmSp), cs.Dst(sp, 0))
	}
}

func Test_Constraints_10(t *testing.T) {
	var (
		f = newFrame(t)
		// A table in which nothing is constant
		table = NewConstTable(make([]ir.Signature, ir.NumOpcodes))
		cs    = NewWithTable(x64.Backend{}, DefaultConfig(), table)
		sp    = f.sp.Inst()
		call  = f.gen(ir.Call, ir.StkPtr, f.sp, f.fp, f.k)
	)
	//
	assert.Equal(t, reg.Default(reg.GP), cs.Src(sp, 1))
	// Overrides still apply
	assert.Equal(t, reg.Immediate(), cs.Src(call, 2))
	assert.True(t, cs.Backend() == x64.Backend{})
	assert.True(t, cs.Resolver() != nil)
}

func Test_Constraints_11(t *testing.T) {
	var (
		f   = newFrame(t)
		cs  = New(x64.Backend{}, DefaultConfig())
		dbl = f.unit.Const(ir.Dbl, 2.5)
		x   = f.gen(ir.LdLoc, ir.Dbl, f.fp, f.k).Dst(0)
		mul = f.gen(ir.MulDbl, ir.Dbl, x, dbl)
		cmp = f.gen(ir.GtDbl, ir.Bool, x, dbl)
	)
	//
	assert.Equal(t, reg.Default(reg.Any), cs.Src(mul, 0))
	assert.Equal(t, reg.Default(reg.Any), cs.Src(mul, 1))
	assert.Equal(t, reg.Default(reg.Any), cs.Dst(mul, 0))
	assert.Equal(t, reg.Default(reg.GP|reg.SF), cs.Dst(cmp, 0))
}

func Test_Constraints_12(t *testing.T) {
	var (
		f     = newFrame(t)
		b     = x64.Backend{}
		stash = f.gen(ir.StashResumableSP, ir.StkPtr, f.fp, f.sp)
	)
	//
	assert.Equal(t, reg.Pin(rVmFp), SrcConstraint(b, stash, 0))
	assert.Equal(t, reg.Pin(rVmSp), SrcConstraint(b, stash, 1))
	assert.Equal(t, reg.Pin(rVmSp), DstConstraint(b, f.sp.Inst(), 0))
	assert.Equal(t, reg.Default(reg.GP), DstConstraint(b, stash, 0))
}
