// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// recencyTracker records, for each code currently defined in a dictionary,
// the value of a monotonic counter at the moment the code was last used by
// either the encoder or the decoder. It is consulted during pruning to
// decide which dictionary entries are still "warm" enough to keep.
type recencyTracker struct {
	lastSeen []uint64
	counter  uint64
}

// newRecencyTracker allocates a tracker sized to hold one entry per possible
// code in a dictionary of the given capacity. The counter starts at 1 so
// that a zero-valued lastSeen slot unambiguously means "never observed".
func newRecencyTracker(capacity int) *recencyTracker {
	return &recencyTracker{
		lastSeen: make([]uint64, capacity),
		counter:  1,
	}
}

// observe marks c as having just been used, then advances the counter.
func (r *recencyTracker) observe(c code) {
	r.lastSeen[c] = r.counter
	r.counter++
}

// reset clears lastSeen back to zero in place, keeping the backing array,
// and leaves counter untouched (the caller is expected to have already
// snapshotted it if needed).
func (r *recencyTracker) reset() {
	for i := range r.lastSeen {
		r.lastSeen[i] = 0
	}
}
