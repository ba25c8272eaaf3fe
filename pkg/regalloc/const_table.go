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
	"sync"

	"github.com/consensys/go-regcon/pkg/ir"
	log "github.com/sirupsen/logrus"
)

// MaxSrc is the number of source positions per opcode recorded in a
// ConstTable.  Positions at or beyond this are never reported as constant;
// any such position which must be constant is handled as a special case.
const MaxSrc = 8

// ConstTable records, for each declared source position of each opcode,
// whether that operand must be a compile-time constant.  A table is
// immutable once built, and can be read concurrently.
type ConstTable struct {
	table [][MaxSrc]bool
}

// NewConstTable builds a table from an opcode catalog, indexed by opcode.
func NewConstTable(catalog []ir.Signature) *ConstTable {
	table := make([][MaxSrc]bool, len(catalog))
	//
	for op := range catalog {
		i := 0
		//
		for _, src := range catalog[op].Srcs {
			switch src.Kind {
			case ir.SrcSpills:
				// occupies no position
				continue
			case ir.SrcConst:
				if i < MaxSrc {
					table[op][i] = true
				}
			}
			//
			i++
		}
	}
	//
	return &ConstTable{table}
}

// MustBeConst checks whether the ith source of the given opcode must be a
// constant.
func (p *ConstTable) MustBeConst(op ir.Opcode, i uint) bool {
	if int(op) >= len(p.table) || i >= MaxSrc {
		return false
	}
	//
	return p.table[op][i]
}

var (
	constTable     *ConstTable
	constTableOnce sync.Once
)

// GlobalConstTable returns the table for the IR catalog.  This is built on
// first use, and shared thereafter.
func GlobalConstTable() *ConstTable {
	constTableOnce.Do(func() {
		constTable = NewConstTable(ir.Catalog())
		//
		log.Debugf("constant operand table built for %d opcodes", len(constTable.table))
	})
	//
	return constTable
}

// ConstOverride identifies opcodes with a constant operand which cannot be
// derived from declared positions, returning the index of that operand.
func ConstOverride(op ir.Opcode) (uint, bool) {
	switch op {
	case ir.LdAddr:
		// offset
		return 1, true
	case ir.Call:
		// return offset
		return 2, true
	case ir.CallBuiltin:
		// callee
		return 0, true
	default:
		return 0, false
	}
}

func mustBeConstOverride(inst *ir.Instruction, i uint) bool {
	j, ok := ConstOverride(inst.Op())
	//
	return ok && i == j
}
