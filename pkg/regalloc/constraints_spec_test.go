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
package regalloc_test

import (
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Constraints", func() {
	var (
		mockCtrl    *gomock.Controller
		mockBackend *MockBackend
		constraints *regalloc.Constraints
		unit        *ir.Unit
		fp, sp, k   *ir.Value
		rSP, rFP    reg.PhysReg
	)

	gen := func(op ir.Opcode, dst ir.Type, srcs ...*ir.Value) *ir.Instruction {
		var dsts []ir.Type
		//
		if op.Signature().Dst.Count() != 0 {
			dsts = []ir.Type{dst}
		}
		//
		inst, err := unit.Gen(op, dsts, srcs...)
		Expect(err).NotTo(HaveOccurred())
		//
		return inst
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockBackend = NewMockBackend(mockCtrl)
		constraints = regalloc.New(mockBackend, regalloc.DefaultConfig())
		//
		rSP = reg.NewReg(reg.GP, 7)
		rFP = reg.NewReg(reg.GP, 6)
		//
		unit = ir.NewUnit("spec")
		fp = gen(ir.DefFP, ir.FramePtr).Dst(0)
		k = unit.Const(ir.Int, int64(4))
		sp = gen(ir.DefSP, ir.StkPtr, fp, k).Dst(0)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should delegate unconstrained sources to the backend", func() {
		n := gen(ir.LdLoc, ir.Int, fp, k).Dst(0)
		add := gen(ir.AddInt, ir.Int, n, n)
		expected := reg.Default(reg.GP | reg.IMM)

		mockBackend.EXPECT().SrcConstraint(add, uint(1)).Return(expected)

		Expect(constraints.Src(add, 1)).To(Equal(expected))
	})

	It("should delegate unconstrained destinations to the backend", func() {
		n := gen(ir.LdLoc, ir.Dbl, fp, k).Dst(0)
		conv := gen(ir.ConvDblToInt, ir.Int, n)
		expected := reg.Default(reg.SIMD)

		mockBackend.EXPECT().DstConstraint(conv, uint(0)).Return(expected)

		Expect(constraints.Dst(conv, 0)).To(Equal(expected))
	})

	It("should not consult the backend for forced registers", func() {
		pass := gen(ir.PassSP, ir.StkPtr, sp)

		mockBackend.EXPECT().VMStackPointer().Return(rSP).Times(2)

		Expect(constraints.Src(pass, 0)).To(Equal(reg.Pin(rSP)))
		Expect(constraints.Dst(pass, 0)).To(Equal(reg.Pin(rSP)))
	})

	It("should not consult the backend for constant operands", func() {
		ld := gen(ir.LdLoc, ir.Int, fp, k)

		mockBackend.EXPECT().VMFramePointer().Return(rFP)

		Expect(constraints.Src(ld, 0)).To(Equal(reg.Pin(rFP)))
		Expect(constraints.Src(ld, 1)).To(Equal(reg.Immediate()))
	})

	It("should leave stashed stack pointers to the backend", func() {
		stash := gen(ir.StashResumableSP, ir.StkPtr, fp, sp)

		mockBackend.EXPECT().DstConstraint(stash, uint(0)).Return(reg.Default(reg.GP))

		Expect(constraints.Dst(stash, 0)).To(Equal(reg.Default(reg.GP)))
	})

	It("should gather every operand of an instruction", func() {
		call := gen(ir.Call, ir.StkPtr, sp, fp, k)

		mockBackend.EXPECT().VMStackPointer().Return(rSP).Times(2)
		mockBackend.EXPECT().VMFramePointer().Return(rFP)

		ic := constraints.Gather(call)

		Expect(ic.Srcs).To(Equal([]reg.Constraint{reg.Pin(rSP), reg.Pin(rFP), reg.Immediate()}))
		Expect(ic.Dsts).To(Equal([]reg.Constraint{reg.Pin(rSP)}))
	})

	It("should report invalid stack pointers", func() {
		ld := gen(ir.LdStack, ir.StkPtr, sp, k)

		Expect(func() { constraints.Dst(ld, 0) }).To(PanicWith(BeAssignableToTypeOf(&regalloc.InvariantViolation{})))
	})
})
