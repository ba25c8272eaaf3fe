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

// Instruction represents a single IR instruction: an opcode applied to zero or
// more source values, defining zero or more destination values.
type Instruction struct {
	id   uint
	op   Opcode
	srcs []*Value
	dsts []*Value
}

// Id returns the identifier of this instruction, which is unique within its
// unit.
func (p *Instruction) Id() uint {
	return p.id
}

// Op returns the opcode of this instruction.
func (p *Instruction) Op() Opcode {
	return p.op
}

// NumSrcs returns the number of source operands.
func (p *Instruction) NumSrcs() uint {
	return uint(len(p.srcs))
}

// NumDsts returns the number of destinations.
func (p *Instruction) NumDsts() uint {
	return uint(len(p.dsts))
}

// Src returns the ith source operand.
func (p *Instruction) Src(i uint) *Value {
	return p.srcs[i]
}

// Dst returns the ith destination.
func (p *Instruction) Dst(i uint) *Value {
	return p.dsts[i]
}

// Srcs returns the source operands of this instruction.  The slice is shared
// with the instruction and must not be modified.
func (p *Instruction) Srcs() []*Value {
	return p.srcs
}

// Dsts returns the destinations of this instruction.  The slice is shared
// with the instruction and must not be modified.
func (p *Instruction) Dsts() []*Value {
	return p.dsts
}

func (p *Instruction) String() string {
	var builder strings.Builder
	//
	for i, dst := range p.dsts {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(dst.String())
	}
	//
	if len(p.dsts) > 0 {
		builder.WriteString(" = ")
	}
	//
	builder.WriteString(p.op.String())
	//
	if p.op == DefConst {
		builder.WriteString(" ")
		builder.WriteString(FormatConst(p.dsts[0].payload))
	}
	//
	for _, src := range p.srcs {
		builder.WriteString(" ")
		builder.WriteString(src.Name())
	}
	//
	return builder.String()
}
