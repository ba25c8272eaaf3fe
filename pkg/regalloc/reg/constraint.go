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
package reg

import "fmt"

// Kind distinguishes the possible constraints on an operand.
type Kind uint8

const (
	// DEFAULT constraints come from the backend's default policy.
	DEFAULT Kind = iota
	// PINNED operands must live in one specific register.
	PINNED
	// IMMEDIATE operands must be encoded as compile-time constants.
	IMMEDIATE
)

func (k Kind) String() string {
	switch k {
	case DEFAULT:
		return "default"
	case PINNED:
		return "pinned"
	case IMMEDIATE:
		return "immediate"
	}
	//
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Constraint determines where the register allocator may place an operand.
// Constraints are comparable, hence two constraints are the same precisely
// when they are ==.
type Constraint struct {
	kind    Kind
	reg     PhysReg
	classes Class
}

// Pin constructs a constraint requiring an operand to live in a given
// register.
func Pin(r PhysReg) Constraint {
	return Constraint{PINNED, r, r.Class()}
}

// Immediate constructs a constraint requiring an operand to be encoded as an
// immediate.
func Immediate() Constraint {
	return Constraint{kind: IMMEDIATE, classes: IMM}
}

// Default constructs the backend's constraint permitting any register from
// the given classes.
func Default(classes Class) Constraint {
	return Constraint{kind: DEFAULT, classes: classes}
}

// Kind returns the kind of this constraint.
func (c Constraint) Kind() Kind {
	return c.kind
}

// Reg returns the register of a pinned constraint.
func (c Constraint) Reg() PhysReg {
	if c.kind != PINNED {
		panic("constraint is not pinned")
	}
	//
	return c.reg
}

// Classes returns the register classes permitted by this constraint.
func (c Constraint) Classes() Class {
	return c.classes
}

// Equals checks whether two constraints are identical.
func (c Constraint) Equals(o Constraint) bool {
	return c == o
}

func (c Constraint) String() string {
	switch c.kind {
	case PINNED:
		return c.reg.String()
	case IMMEDIATE:
		return "imm"
	default:
		return "{" + c.classes.String() + "}"
	}
}
