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

	"github.com/consensys/go-regcon/pkg/backend"
	// Register the supported architectures
	_ "github.com/consensys/go-regcon/pkg/backend/arm64"
	_ "github.com/consensys/go-regcon/pkg/backend/x64"
	"github.com/consensys/go-regcon/pkg/regalloc"
	"github.com/consensys/go-regcon/pkg/regalloc/reg"
	"github.com/consensys/go-regcon/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return r
}

// Set the logging level from the verbosity flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "trace") {
		log.SetLevel(log.TraceLevel)
	} else if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Determine whether to colour output, which is only done for terminals.
func useColour(cmd *cobra.Command) bool {
	return !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
}

// Lookup the backend for the selected architecture, or exit if there is none.
func getBackend(cmd *cobra.Command) backend.Backend {
	b, err := backend.Lookup(GetString(cmd, "arch"))
	if err != nil {
		fmt.Println(err)
		atexit.Exit(2)
	}
	//
	return b
}

// Construct the constraints for the selected architecture and configuration.
func getConstraints(cmd *cobra.Command) *regalloc.Constraints {
	var (
		b   = getBackend(cmd)
		cfg = regalloc.DefaultConfig()
	)
	//
	cfg.Checked = GetFlag(cmd, "checked")
	//
	log.Debugf("resolving constraints for %s (checked=%t)", b.Arch(), cfg.Checked)
	//
	return regalloc.New(b, cfg)
}

// Exit with a suitable message if the IR violated an invariant of constraint
// resolution.  This must be deferred.
func reportInvariantViolation() {
	if r := recover(); r != nil {
		if err, ok := r.(*regalloc.InvariantViolation); ok {
			fmt.Printf("internal error: %s\n", err)
			atexit.Exit(3)
		}
		//
		panic(r)
	}
}

// Format a constraint using the backend's register names.
func formatConstraint(b backend.Backend, c reg.Constraint) string {
	if c.Kind() == reg.PINNED {
		return b.RegName(c.Reg())
	}
	//
	return c.String()
}
