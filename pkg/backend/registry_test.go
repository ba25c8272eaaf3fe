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
package backend_test

import (
	"testing"

	"github.com/consensys/go-regcon/pkg/backend"
	_ "github.com/consensys/go-regcon/pkg/backend/arm64"
	"github.com/consensys/go-regcon/pkg/backend/x64"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	"github.com/consensys/go-regcon/pkg/util/assert"
)

func Test_Registry_01(t *testing.T) {
	b, err := backend.Lookup("x64")
	//
	assert.NoError(t, err)
	assert.Equal(t, "x64", b.Arch())
}

func Test_Registry_02(t *testing.T) {
	_, err := backend.Lookup("mips")
	assert.Error(t, err)
}

func Test_Registry_03(t *testing.T) {
	assert.Equal(t, []string{"arm64", "x64"}, backend.Arches())
}

func Test_Registry_04(t *testing.T) {
	assert.Panics(t, func() { backend.Register(x64.Backend{}) })
}

func Test_ValueClasses_01(t *testing.T) {
	assert.Equal(t, reg.Any, backend.ValueClasses(ir.Dbl))
	assert.Equal(t, reg.GP, backend.ValueClasses(ir.Int))
	assert.Equal(t, reg.GP, backend.ValueClasses(ir.Int|ir.Dbl))
	assert.Equal(t, reg.GP, backend.ValueClasses(ir.Bottom))
}

func Test_IntConst_01(t *testing.T) {
	unit := ir.NewUnit("test")
	//
	c, ok := backend.IntConst(unit.Const(ir.Int, int64(-3)))
	assert.True(t, ok)
	assert.Equal(t, int64(-3), c)
	//
	c, ok = backend.IntConst(unit.Const(ir.Bool, true))
	assert.True(t, ok)
	assert.Equal(t, int64(1), c)
	//
	_, ok = backend.IntConst(unit.Const(ir.Dbl, 1.0))
	assert.False(t, ok)
}
