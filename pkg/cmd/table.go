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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/regalloc"
	"github.com/consensys/go-regcon/pkg/util/termio"
	"github.com/spf13/cobra"
)

// tableCmd prints the constant operand table.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print which source operands of each opcode must be constant.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			all    = GetFlag(cmd, "all")
			table  = regalloc.GlobalConstTable()
			header = []string{"opcode"}
			tp     = termio.NewTablePrinter(regalloc.MaxSrc + 2)
		)
		//
		for i := 0; i < regalloc.MaxSrc; i++ {
			header = append(header, fmt.Sprintf("%d", i))
		}
		//
		tp.AddRow(append(header, "override")...)
		//
		for op := ir.Opcode(0); op < ir.NumOpcodes; op++ {
			row := []string{op.String()}
			marked := false
			//
			for i := uint(0); i < regalloc.MaxSrc; i++ {
				if table.MustBeConst(op, i) {
					row, marked = append(row, "C"), true
				} else {
					row = append(row, "")
				}
			}
			//
			if i, ok := regalloc.ConstOverride(op); ok {
				row, marked = append(row, fmt.Sprintf("%d", i)), true
			} else {
				row = append(row, "")
			}
			//
			if all || marked {
				index := tp.AddRow(row...)
				colourRow(tp, index, row)
			}
		}
		//
		tp.AnsiEscapes(useColour(cmd))
		tp.FitWidth(termio.Width(os.Stdout))
		tp.Print(os.Stdout)
	},
}

func colourRow(tp *termio.TablePrinter, index uint, row []string) {
	for col := 1; col < len(row); col++ {
		if row[col] != "" {
			tp.SetEscape(uint(col), index, termio.BoldFgColour(termio.TERM_GREEN))
		}
	}
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("all", false, "include opcodes without constant operands")
}
