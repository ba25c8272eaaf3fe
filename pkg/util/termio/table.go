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
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given number of columns.
// Rows are added with AddRow.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil, nil, true}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(len(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape string) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// FitWidth shrinks the widest columns until every row fits within a given
// total width, or no column can shrink further.
func (p *TablePrinter) FitWidth(total uint) {
	const minWidth = 4
	//
	for p.totalWidth() > total {
		widest := 0
		//
		for i, w := range p.widths {
			if w > p.widths[widest] {
				widest = i
			}
		}
		//
		if p.widths[widest] <= minWidth {
			return
		}
		//
		p.widths[widest]--
	}
}

// Each column is printed with a leading space and a trailing " |".
func (p *TablePrinter) totalWidth() uint {
	total := uint(0)
	//
	for _, w := range p.widths {
		total += w + 3
	}
	//
	return total
}

// Print the table to a given writer.
func (p *TablePrinter) Print(out io.Writer) {
	for i, row := range p.rows {
		for j, col := range row {
			width := p.widths[j]
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				fmt.Fprint(out, escape)
			}
			// Print data
			if uint(len(col)) > width {
				fmt.Fprintf(out, " %*s..", width-2, col[0:width-2])
			} else {
				fmt.Fprintf(out, " %-*s", width, col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				fmt.Fprint(out, Reset())
			}
			//
			fmt.Fprint(out, " |")
		}
		//
		fmt.Fprintln(out)
	}
}
