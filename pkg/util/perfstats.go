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
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory consumed from a starting point.
type PerfStats struct {
	start time.Time
	// Total bytes allocated at start
	alloc uint64
	// Completed GC cycles at start
	gcs uint32
}

// NewPerfStats takes a snapshot of the current time and allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports at debug level what has been consumed since the snapshot was
// taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.WithFields(log.Fields{
		"time":  time.Since(p.start).Round(time.Microsecond).String(),
		"alloc": formatBytes(m.TotalAlloc - p.alloc),
		"gcs":   m.NumGC - p.gcs,
	}).Debug(prefix)
}

func formatBytes(n uint64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.2fGb", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.2fMb", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2fKb", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%db", n)
	}
}
