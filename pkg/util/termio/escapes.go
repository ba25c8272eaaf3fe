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

import "fmt"

// Colours
const (
	TERM_RED    = uint(1)
	TERM_GREEN  = uint(2)
	TERM_YELLOW = uint(3)
	TERM_BLUE   = uint(4)
	TERM_CYAN   = uint(6)
)

// FgColour returns the escape which sets the foreground colour.
func FgColour(col uint) string {
	return fmt.Sprintf("\033[%dm", 30+col)
}

// BoldFgColour returns the escape which sets a bold foreground colour.
func BoldFgColour(col uint) string {
	return fmt.Sprintf("\033[1;%dm", 30+col)
}

// Reset returns the escape which restores default formatting.
func Reset() string {
	return "\033[0m"
}
