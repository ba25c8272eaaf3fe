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
	"strings"

	"github.com/consensys/go-regcon/pkg/backend"
	"github.com/consensys/go-regcon/pkg/ir"
	"github.com/consensys/go-regcon/pkg/ir/text"
	"github.com/consensys/go-regcon/pkg/regalloc"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	"github.com/consensys/go-regcon/pkg/util"
	"github.com/consensys/go-regcon/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// constraintsCmd prints the constraints of every operand in one or more IR
// listings.
var constraintsCmd = &cobra.Command{
	Use:   "constraints [flags] file1.ir file2.ir ...",
	Short: "Print the constraint of every operand in one or more IR listings.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		var (
			units       = readUnits(args)
			constraints = getConstraints(cmd)
			colour      = useColour(cmd)
		)
		//
		defer reportInvariantViolation()
		//
		stats := util.NewPerfStats()
		gathered := constraints.GatherUnits(units)
		stats.Log(fmt.Sprintf("Gathered constraints for %d units", len(units)))
		//
		for i, ith := range gathered {
			fmt.Printf("%s (%s)\n", units[i].Name(), constraints.Backend().Arch())
			printConstraints(constraints.Backend(), ith, colour)
		}
	},
}

// Read and parse a set of IR listings, exiting if any cannot be parsed.
func readUnits(filenames []string) []*ir.Unit {
	var (
		units  []*ir.Unit
		failed bool
	)
	//
	for _, filename := range filenames {
		bytes, err := os.ReadFile(filename)
		if err != nil {
			fmt.Println(err)
			atexit.Exit(2)
		}
		//
		unit, errs := text.Parse(filename, bytes)
		for _, err := range errs {
			fmt.Println(err)
			failed = true
		}
		//
		if unit != nil {
			log.Debugf("read %d instructions from %s", len(unit.Instructions()), filename)
			units = append(units, unit)
		}
	}
	//
	if failed {
		atexit.Exit(2)
	}
	//
	return units
}

func printConstraints(b backend.Backend, constraints []regalloc.InstrConstraints, colour bool) {
	tp := termio.NewTablePrinter(3)
	//
	for _, ic := range constraints {
		row := tp.AddRow(ic.Inst.String(), formatConstraints(b, ic.Srcs), formatConstraints(b, ic.Dsts))
		//
		if anyPinned(ic.Srcs) {
			tp.SetEscape(1, row, termio.FgColour(termio.TERM_YELLOW))
		}
		//
		if anyPinned(ic.Dsts) {
			tp.SetEscape(2, row, termio.FgColour(termio.TERM_YELLOW))
		}
	}
	//
	tp.AnsiEscapes(colour)
	tp.FitWidth(termio.Width(os.Stdout))
	tp.Print(os.Stdout)
}

func formatConstraints(b backend.Backend, cs []reg.Constraint) string {
	var parts = make([]string, len(cs))
	//
	for i, c := range cs {
		parts[i] = formatConstraint(b, c)
	}
	//
	return strings.Join(parts, ", ")
}

func anyPinned(cs []reg.Constraint) bool {
	for _, c := range cs {
		if c.Kind() == reg.PINNED {
			return true
		}
	}
	//
	return false
}

func init() {
	rootCmd.AddCommand(constraintsCmd)
}
