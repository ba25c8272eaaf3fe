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
package assert

import (
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) {
		return
	}
	//
	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg)
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}
	//
	t.Errorf("condition is false")
	report(t, msg)
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}
	//
	t.Errorf("condition is true")
	report(t, msg)
}

// NoError errors if err is not nil.
func NoError(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err == nil {
		return
	}
	//
	t.Errorf("unexpected error: %v", err)
	report(t, msg)
}

// Error errors if err is nil.
func Error(t *testing.T, err error, msg ...any) {
	t.Helper()
	//
	if err != nil {
		return
	}
	//
	t.Errorf("expected an error")
	report(t, msg)
}

// Panics errors unless fn panics, and otherwise returns the value it panicked
// with.
func Panics(t *testing.T, fn func(), msg ...any) (recovered any) {
	t.Helper()
	//
	defer func() {
		if recovered = recover(); recovered == nil {
			t.Errorf("expected a panic")
			report(t, msg)
		}
	}()
	//
	fn()
	//
	return nil
}

func report(t *testing.T, msg []any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
	//
	t.FailNow()
}
