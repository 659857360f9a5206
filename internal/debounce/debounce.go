// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package debounce coalesces bursts of calls into a single delayed call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs a function once the input has been quiet for a fixed
// period. Each call to Trigger cancels any pending call.
type Debouncer struct {
	wait time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// New returns a new Debouncer with the given quiet period.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{
		wait: wait,
	}
}

// Trigger schedules f to run after the quiet period, replacing any call
// that has not run yet. Only the most recently scheduled function runs.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// A timer that fired while Trigger was replacing it is stale.
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if !stale {
			f()
		}
	})
}

// Stop cancels any pending call. It reports whether a call was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
