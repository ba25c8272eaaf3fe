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
	"math"
	"strconv"
	"strings"
)

// Value represents an SSA temporary.  Every value is defined by exactly one
// instruction, and has a type which is fixed when it is created.
type Value struct {
	id   uint
	typ  Type
	inst *Instruction
	// Payload of a constant value (only meaningful for values defined by
	// DefConst).
	payload any
}

// Id returns the identifier of this value, which is unique within its unit.
func (v *Value) Id() uint {
	return v.id
}

// Type returns the semantic type of this value.
func (v *Value) Type() Type {
	return v.typ
}

// IsA checks whether this value's type is a subtype of the given type.
func (v *Value) IsA(t Type) bool {
	return v.typ.IsA(t)
}

// Inst returns the instruction which defines this value.
func (v *Value) Inst() *Instruction {
	return v.inst
}

// IsConst checks whether this value is known at compile time.
func (v *Value) IsConst() bool {
	return v.inst != nil && v.inst.op == DefConst
}

// Const returns the compile-time payload of this value, or panics if the
// value is not a constant.
func (v *Value) Const() any {
	if !v.IsConst() {
		panic(fmt.Sprintf("t%d is not a constant", v.id))
	}
	//
	return v.payload
}

// Name returns the printed name of this value.
func (v *Value) Name() string {
	return fmt.Sprintf("t%d", v.id)
}

func (v *Value) String() string {
	return fmt.Sprintf("t%d:%s", v.id, v.typ.String())
}

// FormatConst produces the textual form of a constant payload, as accepted by
// ParseConst.
func FormatConst(payload any) string {
	switch p := payload.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(p)
	case float64:
		if math.IsInf(p, 1) {
			// "+Inf" would not read back
			return "Inf"
		}
		//
		s := strconv.FormatFloat(p, 'g', -1, 64)
		// ensure the payload reads back as a double
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		//
		return s
	default:
		return fmt.Sprintf("%v", p)
	}
}

// ParseConst parses the textual form of a constant payload, returning its
// value and the most precise type for it.
func ParseConst(text string) (any, Type, error) {
	switch {
	case text == "true" || text == "false":
		return text == "true", Bool, nil
	case text == "null":
		return nil, InitNull, nil
	case strings.HasPrefix(text, "\""):
		s, err := strconv.Unquote(text)
		return s, StaticStr, err
	}
	//
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, Int, nil
	} else if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, Dbl, nil
	}
	//
	return nil, Bottom, fmt.Errorf("invalid constant \"%s\"", text)
}
