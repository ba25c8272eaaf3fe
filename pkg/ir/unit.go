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
	"slices"
)

// Unit holds the instructions and values of a single compilation unit.  Units
// are constructed by the front end and are not modified once handed over to
// the register allocator.
type Unit struct {
	name   string
	insts  []*Instruction
	values []*Value
}

// NewUnit constructs an empty compilation unit with a given name.
func NewUnit(name string) *Unit {
	return &Unit{name: name}
}

// Name returns the name of this unit.
func (u *Unit) Name() string {
	return u.name
}

// Instructions returns the instructions of this unit in program order.
func (u *Unit) Instructions() []*Instruction {
	return u.insts
}

// Values returns every value defined in this unit, indexed by identifier.
func (u *Unit) Values() []*Value {
	return u.values
}

// Const defines a new constant value of a given type.
func (u *Unit) Const(t Type, payload any) *Value {
	inst := u.append(DefConst, nil, []Type{t})
	inst.dsts[0].payload = payload
	//
	return inst.dsts[0]
}

// Gen constructs a new instruction with the given opcode and sources,
// defining one destination per given type.  The number of sources and
// destinations is checked against the opcode's signature.
func (u *Unit) Gen(op Opcode, dsts []Type, srcs ...*Value) (*Instruction, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("unknown opcode %s", op)
	} else if op == DefConst {
		return nil, fmt.Errorf("constants must be defined with Const")
	} else if err := checkSources(op, srcs); err != nil {
		return nil, err
	} else if err := checkDestinations(op, dsts); err != nil {
		return nil, err
	}
	//
	return u.append(op, srcs, dsts), nil
}

func (u *Unit) append(op Opcode, srcs []*Value, dsts []Type) *Instruction {
	inst := &Instruction{id: uint(len(u.insts)), op: op, srcs: slices.Clone(srcs)}
	//
	for _, t := range dsts {
		v := &Value{id: uint(len(u.values)), typ: t, inst: inst}
		inst.dsts = append(inst.dsts, v)
		u.values = append(u.values, v)
	}
	//
	u.insts = append(u.insts, inst)
	//
	return inst
}

func checkSources(op Opcode, srcs []*Value) error {
	var (
		sig = op.Signature()
		n   = uint(len(srcs))
	)
	//
	if sig.Variadic() && n < sig.Positions() {
		return fmt.Errorf("%s expects at least %d sources (found %d)", op, sig.Positions(), n)
	} else if !sig.Variadic() && n != sig.Positions() {
		return fmt.Errorf("%s expects %d sources (found %d)", op, sig.Positions(), n)
	}
	//
	for i, src := range srcs {
		if src == nil {
			return fmt.Errorf("%s source %d is missing", op, i)
		}
	}
	//
	return nil
}

func checkDestinations(op Opcode, dsts []Type) error {
	var sig = op.Signature()
	//
	if n := sig.Dst.Count(); n >= 0 && n != len(dsts) {
		return fmt.Errorf("%s expects %d destinations (found %d)", op, n, len(dsts))
	} else if sig.Dst.Kind == DstFixed && !dsts[0].IsA(sig.Dst.Type) {
		return fmt.Errorf("%s defines %s (found %s)", op, sig.Dst.Type, dsts[0])
	}
	//
	return nil
}
