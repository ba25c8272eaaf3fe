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
	"fmt"
	"math/bits"
	"strings"
)

// Type captures the semantic type of an SSA value.  Types form a lattice of
// bitsets, where each bit represents a primitive ("atomic") type and unions
// are formed by combining bits.  Thus, a type t is a subtype of u precisely
// when every bit of t is also set in u.
type Type uint32

// Atomic types.
const (
	Uninit Type = 1 << iota
	InitNull
	Bool
	Int
	Dbl
	StaticStr
	CountedStr
	StaticArr
	CountedArr
	Obj
	Res
	BoxedCell
	Cls
	Func
	TCA
	// StkPtr is a pointer to a slot of the VM evaluation stack.
	StkPtr
	// FramePtr is a pointer to an activation record.
	FramePtr
	// PtrToCell is a pointer to an unboxed cell.
	PtrToCell
	// PtrToBoxed is a pointer to a boxed cell.
	PtrToBoxed
	numAtoms = iota
)

// Union types.
const (
	Bottom  Type = 0
	Null         = Uninit | InitNull
	Str          = StaticStr | CountedStr
	Arr          = StaticArr | CountedArr
	Cell         = Null | Bool | Int | Dbl | Str | Arr | Obj | Res
	Gen          = Cell | BoxedCell
	Ctx          = Obj | Cls
	PtrToGen     = PtrToCell | PtrToBoxed
	Top     Type = 1<<numAtoms - 1
)

// Named types are recognised by ParseType and preferred by String.  Larger
// unions come first so that printing chooses the most compact form.
var namedTypes = []struct {
	name string
	typ  Type
}{
	{"Top", Top}, {"Gen", Gen}, {"Cell", Cell}, {"PtrToGen", PtrToGen},
	{"Ctx", Ctx}, {"Null", Null}, {"Str", Str}, {"Arr", Arr},
	{"Uninit", Uninit}, {"InitNull", InitNull}, {"Bool", Bool}, {"Int", Int},
	{"Dbl", Dbl}, {"StaticStr", StaticStr}, {"CountedStr", CountedStr},
	{"StaticArr", StaticArr}, {"CountedArr", CountedArr}, {"Obj", Obj},
	{"Res", Res}, {"BoxedCell", BoxedCell}, {"Cls", Cls}, {"Func", Func},
	{"TCA", TCA}, {"StkPtr", StkPtr}, {"FramePtr", FramePtr},
	{"PtrToCell", PtrToCell}, {"PtrToBoxed", PtrToBoxed}, {"Bottom", Bottom},
}

// IsA checks whether this type is a subtype of the given type.
func (t Type) IsA(o Type) bool {
	return t&^o == 0
}

// Maybe checks whether this type and the given type have any values in
// common.
func (t Type) Maybe(o Type) bool {
	return t&o != 0
}

// Union returns the least upper bound of two types.
func (t Type) Union(o Type) Type {
	return t | o
}

// IsAtomic checks whether this type consists of exactly one primitive type.
func (t Type) IsAtomic() bool {
	return bits.OnesCount32(uint32(t)) == 1
}

func (t Type) String() string {
	var parts []string
	//
	for _, n := range namedTypes {
		if t == n.typ {
			return n.name
		}
	}
	// Decompose into the largest named components
	for rest := t & Top; rest != 0; {
		for _, n := range namedTypes {
			if n.typ != 0 && n.typ.IsA(rest) {
				parts = append(parts, n.name)
				rest &^= n.typ
				//
				break
			}
		}
	}
	//
	if t&^Top != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(t&^Top)))
	}
	//
	return strings.Join(parts, "|")
}

// ParseType parses a type written as one or more named types separated by
// "|", such as "Int|Dbl".
func ParseType(s string) (Type, error) {
	var t Type
	//
	for _, part := range strings.Split(s, "|") {
		ith, ok := lookupType(strings.TrimSpace(part))
		if !ok {
			return Bottom, fmt.Errorf("unknown type \"%s\"", part)
		}
		//
		t = t.Union(ith)
	}
	//
	return t, nil
}

func lookupType(name string) (Type, bool) {
	for _, n := range namedTypes {
		if n.name == name {
			return n.typ, true
		}
	}
	//
	return Bottom, false
}
