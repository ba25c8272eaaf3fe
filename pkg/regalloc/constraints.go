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
	"github.com/consensys/go-regcon/pkg/backend"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	log "github.com/sirupsen/logrus"
)

// Constraints answers, for each operand of an instruction, where the register
// allocator may place it.  Forced registers take priority, followed by
// constant operands, with everything else left to the backend.  Queries do
// not modify anything, hence a single instance can be shared between
// threads compiling different units.
type Constraints struct {
	backend  backend.Backend
	resolver *Resolver
	table    *ConstTable
	checked  bool
}

// New constructs the constraints for a given backend using the shared
// constant table.
func New(b backend.Backend, cfg Config) *Constraints {
	return NewWithTable(b, cfg, GlobalConstTable())
}

// NewWithTable constructs the constraints for a given backend using a
// specific constant table.
func NewWithTable(b backend.Backend, cfg Config, table *ConstTable) *Constraints {
	return &Constraints{b, NewResolver(b, cfg), table, cfg.Checked}
}

// Backend returns the backend supplying default constraints.
func (p *Constraints) Backend() backend.Backend {
	return p.backend
}

// Resolver returns the forced allocation resolver.
func (p *Constraints) Resolver() *Resolver {
	return p.resolver
}

// Src determines the constraint for the ith source of an instruction.
func (p *Constraints) Src(inst *ir.Instruction, i uint) reg.Constraint {
	var c reg.Constraint
	//
	if r := p.resolver.ForcedRegister(inst.Src(i)); r.HasValue() {
		c = reg.Pin(r.Unwrap())
	} else if p.mustUseConst(inst, i) {
		c = reg.Immediate()
	} else {
		c = p.backend.SrcConstraint(inst, i)
	}
	//
	trace(inst, "src", i, c)
	//
	return c
}

// Dst determines the constraint for the ith destination of an instruction.
func (p *Constraints) Dst(inst *ir.Instruction, i uint) reg.Constraint {
	var c reg.Constraint
	//
	if r := p.resolver.ForcedRegister(inst.Dst(i)); r.HasValue() {
		c = reg.Pin(r.Unwrap())
	} else {
		c = p.backend.DstConstraint(inst, i)
	}
	//
	trace(inst, "dst", i, c)
	//
	return c
}

// SrcConstraint determines the constraint for the ith source of an
// instruction, using the default configuration.
func SrcConstraint(b backend.Backend, inst *ir.Instruction, i uint) reg.Constraint {
	return New(b, DefaultConfig()).Src(inst, i)
}

// DstConstraint determines the constraint for the ith destination of an
// instruction, using the default configuration.
func DstConstraint(b backend.Backend, inst *ir.Instruction, i uint) reg.Constraint {
	return New(b, DefaultConfig()).Dst(inst, i)
}

// Check whether the ith source operand must be a constant.  Most of this comes
// from the table, but a few opcodes have constant operands which are not
// declared positionally.
func (p *Constraints) mustUseConst(inst *ir.Instruction, i uint) bool {
	r := mustBeConstOverride(inst, i) || p.table.MustBeConst(inst.Op(), i)
	//
	if p.checked && r && !inst.Src(i).IsConst() {
		violation(inst, inst.Src(i), "source %d of %s must be a constant", i, inst.Op())
	}
	//
	return r
}

func trace(inst *ir.Instruction, kind string, i uint, c reg.Constraint) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithFields(log.Fields{
			"inst": inst.Id(),
			"op":   inst.Op().String(),
			kind:   i,
		}).Trace(c.String())
	}
}
