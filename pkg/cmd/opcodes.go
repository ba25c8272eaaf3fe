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
	"os"
	"strings"

	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/util/termio"
	"github.com/spf13/cobra"
)

// opcodesCmd prints the opcode catalog.
var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "Print the signature of every opcode.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		tp := termio.NewTablePrinter(4)
		tp.AddRow("opcode", "dst", "srcs", "flags")
		//
		for i, sig := range ir.Catalog() {
			var srcs []string
			//
			for _, src := range sig.Srcs {
				srcs = append(srcs, src.String())
			}
			//
			row := tp.AddRow(ir.Opcode(i).String(), sig.Dst.String(), strings.Join(srcs, " "), sig.Flags.String())
			tp.SetEscape(0, row, termio.FgColour(termio.TERM_CYAN))
		}
		//
		tp.AnsiEscapes(useColour(cmd))
		tp.FitWidth(termio.Width(os.Stdout))
		tp.Print(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(opcodesCmd)
}
