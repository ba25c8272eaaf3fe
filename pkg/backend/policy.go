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
package backend

import (
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
)

// ValueClasses returns the register classes which can hold a value of the
// given type.  Doubles can live in either kind of register, as they are
// frequently moved between the two, whilst everything else is general
// purpose.
func ValueClasses(t ir.Type) reg.Class {
	if t != ir.Bottom && t.IsA(ir.Dbl) {
		return reg.Any
	}
	//
	return reg.GP
}

// IntConst returns the payload of a constant integer value, if it is one.
func IntConst(v *ir.Value) (int64, bool) {
	if !v.IsConst() {
		return 0, false
	}
	//
	switch p := v.Const().(type) {
	case int64:
		return p, true
	case bool:
		if p {
			return 1, true
		}
		//
		return 0, true
	}
	//
	return 0, false
}
