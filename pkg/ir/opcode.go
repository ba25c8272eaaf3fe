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

import "fmt"

// Opcode identifies the kind of an IR instruction.  The set of opcodes is
// closed: every opcode has exactly one entry in the catalog.
type Opcode uint16

// Opcodes
const (
	// Constants and frames
	DefConst Opcode = iota
	DefLabel
	DefFP
	DefInlineFP
	FreeActRec
	LdContActRec
	LdAFWHActRec
	LdRetAddr
	// Stack pointer definitions
	DefSP
	ReDefSP
	ReDefResumableSP
	PassSP
	DefInlineSP
	StashResumableSP
	RetAdjustStack
	SpillStack
	SpillFrame
	CufIterSpillFrame
	ExceptionBarrier
	// Calls
	Call
	CallArray
	CallBuiltin
	ContEnter
	// Interpreter fallback
	InterpOne
	InterpOneCF
	// Stack type checks
	CheckStk
	GuardStk
	AssertStk
	CastStk
	CoerceStk
	SideExitGuardStk
	// Locals and stack slots
	LdStack
	LdStackAddr
	StStk
	LdLoc
	LdLocAddr
	StLoc
	GuardLoc
	LdAddr
	// Type checks
	CheckType
	AssertType
	// Arithmetic
	AddInt
	SubInt
	MulInt
	AndInt
	OrInt
	XorInt
	Shl
	Shr
	AddDbl
	SubDbl
	MulDbl
	DivDbl
	// Comparisons
	GtInt
	LtInt
	EqInt
	NeqInt
	GtDbl
	LtDbl
	// Conversions
	ConvIntToDbl
	ConvDblToInt
	ConvBoolToInt
	ConcatStrStr
	// Control flow
	Jmp
	JmpZero
	JmpNZero
	ReqBindJmp
	RetCtrl
	// Reference counting
	IncRef
	DecRef
	// Classes, functions and objects
	LdCls
	LdFunc
	LdObjClass
	LdClsCns
	LdProp
	StProp
	IterInitK
	// Member instructions
	DefMIStateBase
	LdMIStateAddr
	SetProp
	SetPropStk
	SetElem
	SetElemStk
	SetNewElemStk
	SetWithRefElemStk
	SetOpElemStk
	IncDecElemStk
	BindElemStk
	UnsetElemStk
	VGetElemStk
	ElemDXStk
	PropDXStk
	Nop
	// NumOpcodes is the number of opcodes (not itself an opcode).
	NumOpcodes
)

// catalog holds the signature of every opcode, indexed by opcode.
var catalog = [NumOpcodes]Signature{
	DefConst:     {"DefConst", nil, dParam, 0},
	DefLabel:     {"DefLabel", nil, dMulti, Essential},
	DefFP:        {"DefFP", nil, d(FramePtr), 0},
	DefInlineFP:  {"DefInlineFP", srcs(s(StkPtr), s(FramePtr), c(Func), c(Int)), d(FramePtr), 0},
	FreeActRec:   {"FreeActRec", srcs(s(FramePtr)), d(FramePtr), 0},
	LdContActRec: {"LdContActRec", srcs(s(Obj)), d(FramePtr), 0},
	LdAFWHActRec: {"LdAFWHActRec", srcs(s(Obj)), d(FramePtr), 0},
	LdRetAddr:    {"LdRetAddr", srcs(s(FramePtr)), d(TCA), 0},
	//
	DefSP:             {"DefSP", srcs(s(FramePtr), c(Int)), d(StkPtr), 0},
	ReDefSP:           {"ReDefSP", srcs(s(StkPtr), s(FramePtr), c(Int)), d(StkPtr), 0},
	ReDefResumableSP:  {"ReDefResumableSP", srcs(s(StkPtr), s(FramePtr)), d(StkPtr), 0},
	PassSP:            {"PassSP", srcs(s(StkPtr)), d(StkPtr), 0},
	DefInlineSP:       {"DefInlineSP", srcs(s(FramePtr), s(StkPtr), c(Int)), d(StkPtr), 0},
	StashResumableSP:  {"StashResumableSP", srcs(s(FramePtr), s(StkPtr)), d(StkPtr), Essential},
	RetAdjustStack:    {"RetAdjustStack", srcs(s(FramePtr)), d(StkPtr), 0},
	SpillStack:        {"SpillStack", srcs(s(StkPtr), c(Int), c(Int), sSpills), d(StkPtr), ModifiesStack},
	SpillFrame:        {"SpillFrame", srcs(s(StkPtr), s(FramePtr), s(Func, Null), s(Ctx, Null)), d(StkPtr), ModifiesStack | ConsumesRC},
	CufIterSpillFrame: {"CufIterSpillFrame", srcs(s(StkPtr), s(FramePtr), c(Int)), d(StkPtr), ModifiesStack},
	ExceptionBarrier:  {"ExceptionBarrier", srcs(s(StkPtr)), d(StkPtr), Essential},
	//
	Call:        {"Call", srcs(s(StkPtr), s(FramePtr), sUnk), d(StkPtr), Essential | ModifiesStack | MayRaise},
	CallArray:   {"CallArray", srcs(s(StkPtr), c(Int), c(Int)), d(StkPtr), Essential | ModifiesStack | MayRaise},
	CallBuiltin: {"CallBuiltin", srcs(sUnk, sSpills), dParam, Essential | NativeCall | MayRaise},
	ContEnter: {"ContEnter", srcs(s(StkPtr), s(FramePtr), s(FramePtr), s(TCA), c(Int), s(Obj), s(Func), s(Cell), c(Int)),
		nd, Essential | MayRaise},
	//
	InterpOne:   {"InterpOne", srcs(s(FramePtr), s(StkPtr), c(Int), c(Int)), d(StkPtr), Essential | ModifiesStack | MayRaise},
	InterpOneCF: {"InterpOneCF", srcs(s(FramePtr), s(StkPtr), c(Int)), d(StkPtr), Essential | Terminal | MayRaise},
	//
	CheckStk:         {"CheckStk", srcs(s(StkPtr), c(Int)), d(StkPtr), Essential | Branch},
	GuardStk:         {"GuardStk", srcs(s(StkPtr), c(Int)), d(StkPtr), Essential},
	AssertStk:        {"AssertStk", srcs(s(StkPtr), c(Int)), d(StkPtr), 0},
	CastStk:          {"CastStk", srcs(s(StkPtr), c(Int)), d(StkPtr), ModifiesStack | MayRaise},
	CoerceStk:        {"CoerceStk", srcs(s(StkPtr), c(Int), c(Func)), d(StkPtr), ModifiesStack | MayRaise},
	SideExitGuardStk: {"SideExitGuardStk", srcs(s(StkPtr), s(FramePtr), c(Int)), d(StkPtr), Essential},
	//
	LdStack:     {"LdStack", srcs(s(StkPtr), c(Int)), dParam, 0},
	LdStackAddr: {"LdStackAddr", srcs(s(StkPtr), c(Int)), d(PtrToGen), 0},
	StStk:       {"StStk", srcs(s(StkPtr), c(Int), s(Gen)), nd, Essential | ModifiesStack},
	LdLoc:       {"LdLoc", srcs(s(FramePtr), c(Int)), dParam, 0},
	LdLocAddr:   {"LdLocAddr", srcs(s(FramePtr), c(Int)), d(PtrToGen), 0},
	StLoc:       {"StLoc", srcs(s(FramePtr), c(Int), s(Gen)), nd, Essential},
	GuardLoc:    {"GuardLoc", srcs(s(FramePtr), c(Int)), nd, Essential},
	LdAddr:      {"LdAddr", srcs(s(PtrToGen), sNumInt), d(PtrToGen), 0},
	//
	CheckType:  {"CheckType", srcs(s(Gen)), dOfS(0), Branch},
	AssertType: {"AssertType", srcs(s(Gen)), dOfS(0), 0},
	//
	AddInt: {"AddInt", srcs(s(Int), s(Int)), d(Int), 0},
	SubInt: {"SubInt", srcs(s(Int), s(Int)), d(Int), 0},
	MulInt: {"MulInt", srcs(s(Int), s(Int)), d(Int), 0},
	AndInt: {"AndInt", srcs(s(Int), s(Int)), d(Int), 0},
	OrInt:  {"OrInt", srcs(s(Int), s(Int)), d(Int), 0},
	XorInt: {"XorInt", srcs(s(Int), s(Int)), d(Int), 0},
	Shl:    {"Shl", srcs(s(Int), s(Int)), d(Int), 0},
	Shr:    {"Shr", srcs(s(Int), s(Int)), d(Int), 0},
	AddDbl: {"AddDbl", srcs(s(Dbl), s(Dbl)), d(Dbl), 0},
	SubDbl: {"SubDbl", srcs(s(Dbl), s(Dbl)), d(Dbl), 0},
	MulDbl: {"MulDbl", srcs(s(Dbl), s(Dbl)), d(Dbl), 0},
	DivDbl: {"DivDbl", srcs(s(Dbl), s(Dbl)), d(Dbl), 0},
	//
	GtInt:  {"GtInt", srcs(s(Int), s(Int)), d(Bool), 0},
	LtInt:  {"LtInt", srcs(s(Int), s(Int)), d(Bool), 0},
	EqInt:  {"EqInt", srcs(s(Int), s(Int)), d(Bool), 0},
	NeqInt: {"NeqInt", srcs(s(Int), s(Int)), d(Bool), 0},
	GtDbl:  {"GtDbl", srcs(s(Dbl), s(Dbl)), d(Bool), 0},
	LtDbl:  {"LtDbl", srcs(s(Dbl), s(Dbl)), d(Bool), 0},
	//
	ConvIntToDbl:  {"ConvIntToDbl", srcs(s(Int)), d(Dbl), 0},
	ConvDblToInt:  {"ConvDblToInt", srcs(s(Dbl)), d(Int), 0},
	ConvBoolToInt: {"ConvBoolToInt", srcs(s(Bool)), d(Int), 0},
	ConcatStrStr:  {"ConcatStrStr", srcs(s(Str), s(Str)), d(Str), NativeCall | ConsumesRC | ProducesRC},
	//
	Jmp:        {"Jmp", srcs(sSpills), nd, Essential | Terminal},
	JmpZero:    {"JmpZero", srcs(s(Int, Bool)), nd, Essential | Branch},
	JmpNZero:   {"JmpNZero", srcs(s(Int, Bool)), nd, Essential | Branch},
	ReqBindJmp: {"ReqBindJmp", srcs(c(Int)), nd, Essential | Terminal},
	RetCtrl:    {"RetCtrl", srcs(s(StkPtr), s(FramePtr), s(TCA)), nd, Essential | Terminal},
	//
	IncRef: {"IncRef", srcs(s(Gen)), nd, Essential},
	DecRef: {"DecRef", srcs(s(Gen)), nd, Essential | MayRaise | ConsumesRC},
	//
	LdCls:      {"LdCls", srcs(s(Str), c(Cls)), d(Cls), NativeCall | MayRaise},
	LdFunc:     {"LdFunc", srcs(s(Str)), d(Func), NativeCall | MayRaise},
	LdObjClass: {"LdObjClass", srcs(s(Obj)), d(Cls), 0},
	LdClsCns:   {"LdClsCns", srcs(cStr, cStr), d(Cell), 0},
	LdProp:     {"LdProp", srcs(s(Obj), c(Int)), dParam, 0},
	StProp:     {"StProp", srcs(s(Obj), c(Int), s(Cell)), nd, Essential},
	IterInitK:  {"IterInitK", srcs(s(FramePtr), s(Arr, Obj), c(Int), c(Int), c(Int)), d(Bool), Essential | MayRaise},
	//
	DefMIStateBase:    {"DefMIStateBase", nil, d(PtrToCell), 0},
	LdMIStateAddr:     {"LdMIStateAddr", srcs(s(PtrToCell), c(Int)), d(PtrToCell), 0},
	SetProp:           {"SetProp", srcs(c(Cls), s(Obj, PtrToGen), s(Cell), s(Cell)), nd, Essential | MInstrProp | MayRaise},
	SetPropStk:        {"SetPropStk", srcs(c(Cls), s(Obj, PtrToGen), s(Cell), s(Cell)), d(StkPtr), Essential | MInstrProp | ModifiesStack | MayRaise},
	SetElem:           {"SetElem", srcs(s(PtrToGen), s(Cell), s(Cell)), dParam, Essential | MInstrElem | MayRaise},
	SetElemStk:        {"SetElemStk", srcs(s(PtrToGen), s(Cell), s(Cell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	SetNewElemStk:     {"SetNewElemStk", srcs(s(PtrToGen), s(Cell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	SetWithRefElemStk: {"SetWithRefElemStk", srcs(s(PtrToGen), s(Cell), s(Gen), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	SetOpElemStk:      {"SetOpElemStk", srcs(c(Int), s(PtrToGen), s(Cell), s(Cell), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	IncDecElemStk:     {"IncDecElemStk", srcs(c(Int), s(PtrToGen), s(Cell), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	BindElemStk:       {"BindElemStk", srcs(s(PtrToGen), s(Cell), s(BoxedCell), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	UnsetElemStk:      {"UnsetElemStk", srcs(s(PtrToGen), s(Cell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	VGetElemStk:       {"VGetElemStk", srcs(s(PtrToGen), s(Cell), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	ElemDXStk:         {"ElemDXStk", srcs(s(PtrToGen), s(Cell), s(PtrToCell)), d(StkPtr), Essential | MInstrElem | ModifiesStack | MayRaise},
	PropDXStk:         {"PropDXStk", srcs(c(Cls), s(Obj, PtrToGen), s(Cell), s(PtrToCell)), d(StkPtr), Essential | MInstrProp | ModifiesStack | MayRaise},
	Nop:               {"Nop", nil, nd, 0},
}

// opcodeIndex maps opcode names back to opcodes.
var opcodeIndex = buildOpcodeIndex()

func buildOpcodeIndex() map[string]Opcode {
	index := make(map[string]Opcode, NumOpcodes)
	//
	for i := range catalog {
		index[catalog[i].Name] = Opcode(i)
	}
	//
	return index
}

// Catalog returns the signature of every opcode, indexed by opcode.  The
// returned slice is shared and must not be modified.
func Catalog() []Signature {
	return catalog[:]
}

// OpcodeByName looks up an opcode from its name.
func OpcodeByName(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Signature returns the declared signature of this opcode.
func (op Opcode) Signature() *Signature {
	return &catalog[op]
}

// Valid checks whether this is a known opcode.
func (op Opcode) Valid() bool {
	return op < NumOpcodes
}

// Has checks whether this opcode carries all the given flags.
func (op Opcode) Has(flags Flags) bool {
	return op.Valid() && catalog[op].Flags.Has(flags)
}

// Any checks whether this opcode has at least one of the given flags.
func (op Opcode) Any(flags Flags) bool {
	return op.Valid() && catalog[op].Flags.Any(flags)
}

func (op Opcode) String() string {
	if op.Valid() {
		return catalog[op].Name
	}
	//
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}
