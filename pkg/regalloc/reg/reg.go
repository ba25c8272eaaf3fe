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

import (
	"fmt"
	"strings"
)

// Class is a set of register classes.  Physical registers belong to exactly
// one class, whilst constraints may permit several.
type Class uint8

const (
	// GP is the class of general purpose registers.
	GP Class = 1 << iota
	// SIMD is the class of vector / floating point registers.
	SIMD
	// SF is the status flags register.
	SF
	// IMM indicates an operand may be encoded as an immediate instead of a
	// register.
	IMM
)

// Any permits either a general purpose or a vector register.
const Any = GP | SIMD

// Has checks whether this set contains every class in o.
func (c Class) Has(o Class) bool {
	return c&o == o
}

func (c Class) String() string {
	var parts []string
	//
	for _, n := range []struct {
		class Class
		name  string
	}{{GP, "gp"}, {SIMD, "simd"}, {SF, "sf"}, {IMM, "imm"}} {
		if c.Has(n.class) {
			parts = append(parts, n.name)
		}
	}
	//
	if len(parts) == 0 {
		return "none"
	}
	//
	return strings.Join(parts, "|")
}

// PhysReg identifies a physical register of the target machine.  The
// meaning of the register number is determined by the backend.
type PhysReg struct {
	class Class
	num   uint8
}

// NewReg constructs a physical register of a given class.
func NewReg(class Class, num uint8) PhysReg {
	switch class {
	case GP, SIMD, SF:
		return PhysReg{class, num}
	default:
		panic(fmt.Sprintf("invalid register class %s", class))
	}
}

// Class returns the class of this register.
func (r PhysReg) Class() Class {
	return r.class
}

// Num returns the number of this register within its class.
func (r PhysReg) Num() uint8 {
	return r.num
}

// IsValid checks whether this register was constructed with NewReg, rather
// than being a zero value.
func (r PhysReg) IsValid() bool {
	return r.class != 0
}

func (r PhysReg) String() string {
	return fmt.Sprintf("%s%d", r.class, r.num)
}
