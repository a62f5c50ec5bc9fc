//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package commander

import "time"

// A Debouncer drops calls that come too soon after the last accepted one.
type Debouncer struct {
	last  time.Time
	delay time.Duration
	now   func() time.Time
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return newDebouncerWithClock(delay, time.Now)
}

func newDebouncerWithClock(delay time.Duration, now func() time.Time) *Debouncer {
	// the first call is always accepted
	return &Debouncer{last: now().Add(-delay - time.Nanosecond), delay: delay, now: now}
}

// ShouldCall reports whether more than the delay has passed since the last
// accepted call, and if so records this call as the last accepted one.
// Rejected calls do not restart the delay.
func (d *Debouncer) ShouldCall() bool {
	now := d.now()
	if now.Sub(d.last) > d.delay {
		d.last = now
		return true
	}
	return false
}
