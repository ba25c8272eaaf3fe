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
package text

import (
	"fmt"
	"strings"

	"github.com/consensys/go-regcon/pkg/ir"
)

// SyntaxError describes a problem with an IR listing at a given position.
type SyntaxError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

// Parse reads an IR listing into a unit named after the file.  Listings
// contain one instruction per line, such as:
//
//	t0:FramePtr = DefFP
//	t1:Int = DefConst 16
//	t2:StkPtr = DefSP t0 t1
//
// Values may have any name, but must be defined before they are used.  Lines
// which cannot be parsed are reported, and parsing continues with the next
// line.
func Parse(filename string, contents []byte) (*ir.Unit, []error) {
	var (
		input = []rune(string(contents))
		p     = parser{filename, input, nil, 0, ir.NewUnit(filename), make(map[string]*ir.Value)}
		errs  []error
	)
	//
	tokens, err := Lex(input)
	if err != nil {
		lerr := err.(*lexError)
		return nil, []error{p.errorAt(lerr.index, lerr.Error())}
	}
	//
	p.tokens = tokens
	//
	for p.lookahead().Kind != EOF {
		start := p.index
		//
		if err := p.parseLine(); err != nil {
			errs = append(errs, err)
			// Skip the remainder of the line, unless already consumed.
			if p.index == start || p.tokens[p.index-1].Kind != NEWLINE {
				p.skipLine()
			}
		}
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return p.unit, nil
}

// Format produces the listing of a unit.  Parsing the listing of a unit whose
// values are named t0, t1, ... in order of definition reproduces it exactly.
func Format(unit *ir.Unit) string {
	var builder strings.Builder
	//
	for _, inst := range unit.Instructions() {
		builder.WriteString(inst.String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

type parser struct {
	filename string
	input    []rune
	tokens   []Token
	index    int
	unit     *ir.Unit
	env      map[string]*ir.Value
}

type definition struct {
	name string
	typ  ir.Type
}

func (p *parser) parseLine() error {
	var dsts []definition
	// blank line
	if p.match(NEWLINE) {
		return nil
	}
	// destinations, if any
	if p.lookaheadAt(1).Kind == COLON {
		for {
			dst, err := p.parseDefinition()
			if err != nil {
				return err
			}
			//
			dsts = append(dsts, dst)
			//
			if !p.match(COMMA) {
				break
			}
		}
		//
		if _, err := p.expect(EQUALS); err != nil {
			return err
		}
	}
	//
	opToken, err := p.expect(IDENTIFIER)
	if err != nil {
		return err
	}
	//
	op, ok := ir.OpcodeByName(p.text(opToken))
	if !ok {
		return p.errorAt(opToken.Start, fmt.Sprintf("unknown opcode \"%s\"", p.text(opToken)))
	} else if op == ir.DefConst {
		return p.parseConst(opToken, dsts)
	}
	//
	return p.parseInstruction(opToken, op, dsts)
}

func (p *parser) parseDefinition() (definition, error) {
	var types []string
	//
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return definition{}, err
	} else if _, ok := p.env[p.text(name)]; ok {
		return definition{}, p.errorAt(name.Start, fmt.Sprintf("\"%s\" already defined", p.text(name)))
	} else if _, err = p.expect(COLON); err != nil {
		return definition{}, err
	}
	//
	start := p.lookahead().Start
	//
	for {
		t, err := p.expect(IDENTIFIER)
		if err != nil {
			return definition{}, err
		}
		//
		types = append(types, p.text(t))
		//
		if !p.match(BAR) {
			break
		}
	}
	//
	typ, err := ir.ParseType(strings.Join(types, "|"))
	if err != nil {
		return definition{}, p.errorAt(start, err.Error())
	}
	//
	return definition{p.text(name), typ}, nil
}

func (p *parser) parseConst(opToken Token, dsts []definition) error {
	if len(dsts) != 1 {
		return p.errorAt(opToken.Start, "DefConst defines exactly one value")
	}
	//
	payload := p.lookahead()
	if payload.Kind != NUMBER && payload.Kind != STRING && payload.Kind != IDENTIFIER {
		return p.errorAt(payload.Start, "expected constant")
	}
	//
	p.next()
	//
	value, typ, err := ir.ParseConst(p.text(payload))
	if err != nil {
		return p.errorAt(payload.Start, err.Error())
	} else if !typ.IsA(dsts[0].typ) {
		return p.errorAt(payload.Start, fmt.Sprintf("constant of type %s cannot define %s", typ, dsts[0].typ))
	} else if err := p.endOfLine(); err != nil {
		return err
	}
	//
	p.env[dsts[0].name] = p.unit.Const(dsts[0].typ, value)
	//
	return nil
}

func (p *parser) parseInstruction(opToken Token, op ir.Opcode, dsts []definition) error {
	var (
		srcs  []*ir.Value
		types = make([]ir.Type, len(dsts))
	)
	//
	for p.lookahead().Kind == IDENTIFIER {
		name := p.next()
		//
		v, ok := p.env[p.text(name)]
		if !ok {
			return p.errorAt(name.Start, fmt.Sprintf("unknown value \"%s\"", p.text(name)))
		}
		//
		srcs = append(srcs, v)
	}
	//
	if err := p.endOfLine(); err != nil {
		return err
	}
	//
	for i, dst := range dsts {
		types[i] = dst.typ
	}
	//
	inst, err := p.unit.Gen(op, types, srcs...)
	if err != nil {
		return p.errorAt(opToken.Start, err.Error())
	}
	//
	for i, dst := range dsts {
		p.env[dst.name] = inst.Dst(uint(i))
	}
	//
	return nil
}

func (p *parser) endOfLine() error {
	if p.lookahead().Kind == EOF || p.match(NEWLINE) {
		return nil
	}
	//
	return p.errorAt(p.lookahead().Start, fmt.Sprintf("unexpected \"%s\"", p.text(p.lookahead())))
}

func (p *parser) skipLine() {
	for {
		if t := p.next(); t.Kind == EOF || t.Kind == NEWLINE {
			return
		}
	}
}

func (p *parser) lookahead() Token {
	return p.lookaheadAt(0)
}

func (p *parser) lookaheadAt(n int) Token {
	// tokens always end with EOF
	return p.tokens[min(p.index+n, len(p.tokens)-1)]
}

func (p *parser) next() Token {
	t := p.lookahead()
	//
	if t.Kind != EOF {
		p.index++
	}
	//
	return t
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *parser) expect(kind uint) (Token, error) {
	t := p.lookahead()
	//
	if t.Kind != kind {
		return t, p.errorAt(t.Start, fmt.Sprintf("expected %s", kindName(kind)))
	}
	//
	return p.next(), nil
}

func (p *parser) text(t Token) string {
	return string(p.input[t.Start:t.End])
}

func (p *parser) errorAt(index int, msg string) error {
	line, col := 1, 1
	//
	for _, c := range p.input[:index] {
		if c == '\n' {
			line, col = line+1, 1
		} else {
			col++
		}
	}
	//
	return &SyntaxError{p.filename, line, col, msg}
}

func kindName(kind uint) string {
	switch kind {
	case IDENTIFIER:
		return "identifier"
	case COLON:
		return "\":\""
	case EQUALS:
		return "\"=\""
	case NEWLINE:
		return "end of line"
	default:
		return fmt.Sprintf("token %d", kind)
	}
}
