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

import "strings"

// SrcKind describes the declared kind of a source operand position.
type SrcKind uint8

const (
	// SrcValue is an ordinary run-time value.
	SrcValue SrcKind = iota
	// SrcConst is an operand which must be a compile-time constant.
	SrcConst
	// SrcUnknown occupies one position, but places no restriction on the
	// number of sources which follow it or on their types.
	SrcUnknown
	// SrcSpills is a variable-length trailing list of ordinary values.  It
	// occupies no declared position, and must be the last declared source.
	SrcSpills
)

func (k SrcKind) String() string {
	switch k {
	case SrcValue:
		return "S"
	case SrcConst:
		return "C"
	case SrcUnknown:
		return "SUnk"
	case SrcSpills:
		return "SSpills"
	}
	//
	panic("unknown source kind")
}

// Src is a declared source operand.
type Src struct {
	Kind SrcKind
	// Type expected for this operand (ignored for SrcUnknown / SrcSpills).
	Type Type
}

func (p Src) String() string {
	switch p.Kind {
	case SrcValue, SrcConst:
		return p.Kind.String() + "(" + p.Type.String() + ")"
	default:
		return p.Kind.String()
	}
}

// DstKind describes how the destination(s) of an opcode are typed.
type DstKind uint8

const (
	// DstNone indicates the opcode defines nothing.
	DstNone DstKind = iota
	// DstFixed indicates exactly one destination of a fixed type.
	DstFixed
	// DstParam indicates exactly one destination whose type is supplied when
	// the instruction is constructed.
	DstParam
	// DstOfSrc indicates exactly one destination whose type follows a given
	// source.
	DstOfSrc
	// DstMulti indicates zero or more destinations.
	DstMulti
)

// Dst is the declared destination signature of an opcode.
type Dst struct {
	Kind DstKind
	Type Type
	Src  uint
}

// Count returns the number of destinations permitted by this signature, or
// -1 if any number is permitted.
func (p Dst) Count() int {
	switch p.Kind {
	case DstNone:
		return 0
	case DstMulti:
		return -1
	default:
		return 1
	}
}

func (p Dst) String() string {
	switch p.Kind {
	case DstNone:
		return "ND"
	case DstFixed:
		return "D(" + p.Type.String() + ")"
	case DstParam:
		return "DParam"
	case DstOfSrc:
		return "DofS"
	default:
		return "DMulti"
	}
}

// Flags record properties of an opcode which are of interest to passes
// further down the pipeline.
type Flags uint16

const (
	// Essential instructions cannot be removed by dead code elimination.
	Essential Flags = 1 << iota
	// NativeCall instructions call into the runtime.
	NativeCall
	// MayRaise instructions can throw.
	MayRaise
	// Branch instructions have a taken edge.
	Branch
	// Terminal instructions end a block with no fall through.
	Terminal
	// MInstrProp is a member instruction operating on a property base.
	MInstrProp
	// MInstrElem is a member instruction operating on an element base.
	MInstrElem
	// ConsumesRC instructions consume a reference to one of their sources.
	ConsumesRC
	// ProducesRC instructions produce a reference counted result.
	ProducesRC
	// ModifiesStack instructions may write to the VM evaluation stack.
	ModifiesStack
)

// Has checks whether all the given flags are set.
func (f Flags) Has(o Flags) bool {
	return f&o == o
}

// Any checks whether any of the given flags are set.
func (f Flags) Any(o Flags) bool {
	return f&o != 0
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{Essential, "E"}, {NativeCall, "N"}, {MayRaise, "Er"}, {Branch, "B"},
	{Terminal, "T"}, {MInstrProp, "MProp"}, {MInstrElem, "MElem"},
	{ConsumesRC, "CRc"}, {ProducesRC, "PRc"}, {ModifiesStack, "Stk"},
}

func (f Flags) String() string {
	var parts []string
	//
	for _, n := range flagNames {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	//
	return strings.Join(parts, "|")
}

// Signature is the declarative description of a single opcode.
type Signature struct {
	Name  string
	Srcs  []Src
	Dst   Dst
	Flags Flags
}

// Positions returns the number of declared source positions, which excludes
// any trailing spill list.
func (p *Signature) Positions() uint {
	n := uint(0)
	//
	for _, s := range p.Srcs {
		if s.Kind != SrcSpills {
			n++
		}
	}
	//
	return n
}

// Variadic checks whether instructions of this opcode may have more sources
// than declared positions.
func (p *Signature) Variadic() bool {
	for _, s := range p.Srcs {
		if s.Kind == SrcUnknown || s.Kind == SrcSpills {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// Declaration helpers
// ============================================================================

func s(types ...Type) Src {
	var t Type
	for _, ith := range types {
		t |= ith
	}
	//
	return Src{SrcValue, t}
}

func c(t Type) Src { return Src{SrcConst, t} }

var (
	sUnk    = Src{Kind: SrcUnknown}
	sSpills = Src{Kind: SrcSpills}
	cStr    = Src{SrcConst, StaticStr}
	sNumInt = Src{Kind: SrcUnknown, Type: Int | Bool}
	nd      = Dst{Kind: DstNone}
	dParam  = Dst{Kind: DstParam}
	dMulti  = Dst{Kind: DstMulti}
)

func d(t Type) Dst { return Dst{Kind: DstFixed, Type: t} }
func dOfS(i uint) Dst { return Dst{Kind: DstOfSrc, Src: i} }
func srcs(s ...Src) []Src { return s }
