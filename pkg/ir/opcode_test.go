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
package ir

import (
	"testing"

	"github.com/consensys/go-regcon/pkg/util/assert"
)

func Test_Catalog_01(t *testing.T) {
	assert.Equal(t, int(NumOpcodes), len(Catalog()))
	//
	for op := Opcode(0); op < NumOpcodes; op++ {
		assert.True(t, op.String() != "", "opcode %d has no name", op)
		// Names uniquely identify opcodes
		found, ok := OpcodeByName(op.String())
		assert.True(t, ok)
		assert.Equal(t, op, found)
	}
}

func Test_Catalog_02(t *testing.T) {
	// Spill lists can only occur last
	for op := Opcode(0); op < NumOpcodes; op++ {
		srcs := op.Signature().Srcs
		//
		for i, src := range srcs {
			if src.Kind == SrcSpills {
				assert.Equal(t, len(srcs)-1, i, "%s has spills before position %d", op, i)
			}
		}
	}
}

func Test_Catalog_03(t *testing.T) {
	for op := Opcode(0); op < NumOpcodes; op++ {
		sig := op.Signature()
		//
		if sig.Dst.Kind == DstFixed {
			assert.True(t, sig.Dst.Type != Bottom, "%s defines Bottom", op)
		} else if sig.Dst.Kind == DstOfSrc {
			assert.True(t, sig.Dst.Src < sig.Positions(), "%s follows missing source", op)
		}
	}
}

func Test_Catalog_04(t *testing.T) {
	_, ok := OpcodeByName("NotAnOpcode")
	//
	assert.False(t, ok)
	assert.False(t, NumOpcodes.Valid())
	assert.Equal(t, "Opcode(9999)", Opcode(9999).String())
}

func Test_Signature_01(t *testing.T) {
	sig := SpillStack.Signature()
	//
	assert.Equal(t, uint(3), sig.Positions())
	assert.True(t, sig.Variadic())
}

func Test_Signature_02(t *testing.T) {
	sig := AddInt.Signature()
	//
	assert.Equal(t, uint(2), sig.Positions())
	assert.False(t, sig.Variadic())
}

func Test_Signature_03(t *testing.T) {
	sig := Call.Signature()
	//
	assert.Equal(t, uint(3), sig.Positions())
	assert.True(t, sig.Variadic())
	assert.Equal(t, "S(StkPtr) S(FramePtr) SUnk", srcsString(sig.Srcs))
}

func Test_Flags_01(t *testing.T) {
	assert.True(t, SetElemStk.Has(MInstrElem|ModifiesStack))
	assert.False(t, SetElem.Has(ModifiesStack))
	assert.Equal(t, "E|Stk", (Essential | ModifiesStack).String())
}

func Test_Flags_02(t *testing.T) {
	assert.True(t, SetPropStk.Any(MInstrProp|MInstrElem))
	assert.True(t, SetElem.Any(MInstrProp|MInstrElem))
	assert.False(t, SpillStack.Any(MInstrProp|MInstrElem))
	assert.False(t, NumOpcodes.Any(ModifiesStack))
	assert.True(t, (Essential | Branch).Any(Branch|Terminal))
	assert.False(t, Essential.Any(0))
}

// ===================================================================
// Test Helpers
// ===================================================================

func srcsString(srcs []Src) string {
	s := ""
	//
	for i, src := range srcs {
		if i != 0 {
			s += " "
		}
		//
		s += src.String()
	}
	//
	return s
}
