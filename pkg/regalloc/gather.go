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
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// InstrConstraints holds the constraints of every operand of an instruction.
type InstrConstraints struct {
	Inst *ir.Instruction
	Srcs []reg.Constraint
	Dsts []reg.Constraint
}

// Gather determines the constraints of every operand of an instruction.
func (p *Constraints) Gather(inst *ir.Instruction) InstrConstraints {
	var (
		srcs = make([]reg.Constraint, inst.NumSrcs())
		dsts = make([]reg.Constraint, inst.NumDsts())
	)
	//
	for i := range srcs {
		srcs[i] = p.Src(inst, uint(i))
	}
	//
	for i := range dsts {
		dsts[i] = p.Dst(inst, uint(i))
	}
	//
	return InstrConstraints{inst, srcs, dsts}
}

// GatherUnit determines the constraints of every instruction in a unit, in
// program order.
func (p *Constraints) GatherUnit(unit *ir.Unit) []InstrConstraints {
	insts := unit.Instructions()
	constraints := make([]InstrConstraints, len(insts))
	//
	for i, inst := range insts {
		constraints[i] = p.Gather(inst)
	}
	//
	return constraints
}

type unitResult struct {
	index       int
	constraints []InstrConstraints
	// Value passed to panic whilst gathering, if any.
	failure any
}

// GatherUnits determines the constraints of several units in parallel, with
// one go-routine per unit.  Should gathering any unit panic, the panic is
// raised again on the calling go-routine once every unit has finished.
func (p *Constraints) GatherUnits(units []*ir.Unit) [][]InstrConstraints {
	var (
		results = make([][]InstrConstraints, len(units))
		ch      = make(chan unitResult, len(units))
		failure any
	)
	// Dispatch!
	for i, unit := range units {
		go func() {
			var result = unitResult{index: i}
			//
			defer func() {
				result.failure = recover()
				// Send outcome back
				ch <- result
			}()
			//
			result.constraints = p.GatherUnit(unit)
		}()
	}
	// Collect responses
	for range units {
		r := <-ch
		results[r.index] = r.constraints
		//
		if r.failure != nil && failure == nil {
			failure = r.failure
		}
	}
	//
	if failure != nil {
		panic(failure)
	}
	//
	return results
}
