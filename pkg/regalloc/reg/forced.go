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

// Forced is the outcome of forced allocation: either a physical register
// which a value must live in, or nothing.
type Forced struct {
	some bool
	reg  PhysReg
}

// Pinned constructs a forced allocation to a given register.
func Pinned(r PhysReg) Forced {
	if !r.IsValid() {
		panic("cannot pin to an invalid register")
	}
	//
	return Forced{true, r}
}

// NotForced indicates a value is free for general allocation.
func NotForced() Forced {
	return Forced{}
}

// HasValue checks whether a register was forced.
func (f Forced) HasValue() bool {
	return f.some
}

// IsEmpty checks whether no register was forced.
func (f Forced) IsEmpty() bool {
	return !f.some
}

// Unwrap returns the forced register, or panics if there is none.
func (f Forced) Unwrap() PhysReg {
	if f.some {
		return f.reg
	}
	//
	panic("no register was forced")
}

func (f Forced) String() string {
	if f.some {
		return f.reg.String()
	}
	//
	return "none"
}
