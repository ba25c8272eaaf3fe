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

import "fmt"

// Token kinds
const (
	WHITESPACE uint = iota
	COMMENT
	NEWLINE
	IDENTIFIER
	NUMBER
	STRING
	COLON
	EQUALS
	COMMA
	BAR
	EOF
)

// Token associates a kind with a range of characters in the input.
type Token struct {
	Kind  uint
	Start int
	End   int
}

// scanner accepts some number of characters from the start of the input, or
// returns 0 to reject it.
type scanner func(items []rune) uint

func unit(chars ...rune) scanner {
	return func(items []rune) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

func within(lowest rune, highest rune) scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		//
		return 0
	}
}

func or(scanners ...scanner) scanner {
	return func(items []rune) uint {
		for _, s := range scanners {
			if n := s(items); n > 0 {
				return n
			}
		}
		//
		return 0
	}
}

func many(s scanner) scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			n := s(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// sequence matches every scanner in turn, each of which must match something.
func sequence(scanners ...scanner) scanner {
	return func(items []rune) uint {
		n := uint(0)
		//
		for _, s := range scanners {
			m := s(items[n:])
			if m == 0 {
				return 0
			}
			//
			n += m
		}
		//
		return n
	}
}

// then matches first, followed by whatever rest matches (possibly nothing).
func then(first scanner, rest scanner) scanner {
	return func(items []rune) uint {
		n := first(items)
		if n == 0 {
			return 0
		}
		//
		return n + rest(items[n:])
	}
}

func until(item rune) scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) && items[index] != item {
			index++
		}
		//
		return index
	}
}

var (
	letter     = or(within('a', 'z'), within('A', 'Z'), unit('_'), unit('$'))
	digit      = within('0', '9')
	digits     = many(digit)
	identifier = then(letter, many(or(letter, digit)))
	whitespace = many(or(unit(' '), unit('\t'), unit('\r')))
	comment    = then(unit('#'), until('\n'))
	escape     = or(unit('\\', '"'), unit('\\', '\\'), notIn('"', '\n'))
	infinity   = unit('I', 'n', 'f')
)

func notIn(chars ...rune) scanner {
	return func(items []rune) uint {
		if len(items) == 0 {
			return 0
		}
		//
		for _, c := range chars {
			if items[0] == c {
				return 0
			}
		}
		//
		return 1
	}
}

// number matches an optionally negative integer or decimal, with an optional
// exponent.  A negative infinity is also a number, since "-" cannot start an
// identifier.
func number(items []rune) uint {
	n := uint(0)
	//
	if len(items) > 0 && items[0] == '-' {
		n = 1
		//
		if m := infinity(items[n:]); m > 0 {
			return n + m
		}
	}
	//
	m := digits(items[n:])
	if m == 0 {
		return 0
	}
	//
	n += m
	//
	if f := sequence(unit('.'), digits)(items[n:]); f > 0 {
		n += f
	}
	//
	if e := exponent(items[n:]); e > 0 {
		n += e
	}
	//
	return n
}

// exponent matches e.g. "e7", "E-07" or "e+23".
func exponent(items []rune) uint {
	n := or(unit('e'), unit('E'))(items)
	if n == 0 {
		return 0
	}
	//
	if n < uint(len(items)) && (items[n] == '+' || items[n] == '-') {
		n++
	}
	//
	if m := digits(items[n:]); m > 0 {
		return n + m
	}
	// not an exponent, so leave it for the next token
	return 0
}

// quoted matches a string literal, including its closing quote.
func quoted(items []rune) uint {
	if n := then(unit('"'), many(escape))(items); n > 0 && n < uint(len(items)) && items[n] == '"' {
		return n + 1
	}
	//
	return 0
}

type rule struct {
	scanner scanner
	kind    uint
}

var rules = []rule{
	{comment, COMMENT},
	{whitespace, WHITESPACE},
	{unit('\n'), NEWLINE},
	{identifier, IDENTIFIER},
	{number, NUMBER},
	{quoted, STRING},
	{unit(':'), COLON},
	{unit('='), EQUALS},
	{unit(','), COMMA},
	{unit('|'), BAR},
}

// Lex splits the input into tokens, dropping whitespace and comments.  The
// final token is always EOF.
func Lex(input []rune) ([]Token, error) {
	var tokens []Token
	//
	for index := 0; index < len(input); {
		matched := false
		//
		for _, r := range rules {
			if n := r.scanner(input[index:]); n > 0 {
				end := index + int(n)
				//
				if r.kind != WHITESPACE && r.kind != COMMENT {
					tokens = append(tokens, Token{r.kind, index, end})
				}
				//
				index, matched = end, true
				//
				break
			}
		}
		//
		if !matched {
			return tokens, &lexError{index, input[index]}
		}
	}
	//
	return append(tokens, Token{EOF, len(input), len(input)}), nil
}

type lexError struct {
	index int
	char  rune
}

func (e *lexError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.char)
}
