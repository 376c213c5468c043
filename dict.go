// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

// code identifies a dictionary entry, or one of a small number of special
// in-band control values. It is a distinct type from byte/int so that the
// empty-prefix sentinel, the special codes, and ordinary dictionary codes
// can never be silently confused at compile time.
type code uint32

// Special codes occupy the low end of the code namespace. escapeCode's
// numeric value (0) deliberately coincides with emptyPrefix: a real
// dictionary entry's prefix field is never a special code (every entry's
// prefix is either emptyPrefix or another real entry's code, and real
// entries start at numSpecialCodes), so the overlap is safe and lets both
// concepts share the cheapest possible encoding.
const (
	escapeCode code = iota
	growNBitsCode
	pruneCode
	stopCode
	numSpecialCodes
)

// emptyPrefix marks a dictionary entry representing a single byte with no
// preceding string.
const emptyPrefix code = 0

// dictEntry is one string-table entry: the byte k appended to the string
// named by prefix, assigned the code c.
type dictEntry struct {
	prefix code
	k      byte
	c      code
}

// dictionary is a dual-indexed LZW string table: a dense array indexed by
// code for O(1) code-to-entry lookup, plus an open-addressed hash table
// keyed by (prefix, k) with linear probing for O(1) average string-to-code
// lookup.
type dictionary struct {
	entries       []dictEntry
	hash          []int32 // -1 marks an empty slot; else an index into entries
	arraySize     int
	hashSize      int
	highestCode   code
	escapeEnabled bool
}

// newDictionary allocates a dictionary sized for maxBits-wide codes. If
// escapeEnabled is false, the dictionary starts pre-populated with all 256
// single-byte entries (codes numSpecialCodes..numSpecialCodes+255); if
// escapeEnabled is true, the dictionary starts empty and callers must use
// the escape mechanism to introduce new bytes on demand.
func newDictionary(maxBits uint, escapeEnabled bool) *dictionary {
	arraySize := 1 << maxBits
	hashSize := 2*arraySize + 1
	d := &dictionary{
		entries:       make([]dictEntry, arraySize),
		hash:          make([]int32, hashSize),
		arraySize:     arraySize,
		hashSize:      hashSize,
		highestCode:   numSpecialCodes - 1,
		escapeEnabled: escapeEnabled,
	}
	for i := range d.hash {
		d.hash[i] = -1
	}
	if !escapeEnabled {
		for b := 0; b <= 255; b++ {
			d.add(emptyPrefix, byte(b))
		}
	}
	return d
}

func hashIndex(prefix code, k byte, hashSize int) int {
	return int((uint64(prefix)<<8 | uint64(k)) % uint64(hashSize))
}

// isFull reports whether the dictionary has no room left for another entry.
func (d *dictionary) isFull() bool {
	return int(d.highestCode) == d.arraySize-1
}

// findByPair looks up the code for the string formed by prefix followed by
// k, if one has already been added.
func (d *dictionary) findByPair(prefix code, k byte) (code, bool) {
	idx := hashIndex(prefix, k, d.hashSize)
	for d.hash[idx] != -1 {
		e := d.entries[d.hash[idx]]
		if e.prefix == prefix && e.k == k {
			return e.c, true
		}
		idx++
		if idx == d.hashSize {
			idx = 0
		}
	}
	return 0, false
}

// findByCode looks up the entry for an existing dictionary code. It
// returns false for special codes and for any code that has not yet been
// assigned.
func (d *dictionary) findByCode(c code) (dictEntry, bool) {
	if c > d.highestCode || c < numSpecialCodes {
		return dictEntry{}, false
	}
	return d.entries[c], true
}

// add inserts the string formed by prefix followed by k, returning its
// code. If the pair is already present, it returns the existing code and
// false. If the dictionary is full, it returns the zero code and false.
func (d *dictionary) add(prefix code, k byte) (code, bool) {
	if c, ok := d.findByPair(prefix, k); ok {
		return c, false
	}
	if d.isFull() {
		return 0, false
	}

	newCode := d.highestCode + 1
	d.entries[newCode] = dictEntry{prefix: prefix, k: k, c: newCode}

	idx := hashIndex(prefix, k, d.hashSize)
	for d.hash[idx] != -1 {
		idx++
		if idx == d.hashSize {
			idx = 0
		}
	}
	d.hash[idx] = int32(newCode)

	d.highestCode = newCode
	return newCode, true
}

// recAdd copies eltCode and its full prefix chain from old into new,
// returning eltCode's code in new. Ancestors already copied by an earlier
// call are detected and reused via add's own (prefix, k) dedup, so a shared
// prefix chain is never duplicated in the rebuilt dictionary.
func recAdd(newDict, oldDict *dictionary, eltCode code, oldLastSeen []uint64, newRec *recencyTracker) code {
	if eltCode == emptyPrefix {
		return emptyPrefix
	}
	oldElt, ok := oldDict.findByCode(eltCode)
	if !ok {
		// Single-byte entries pre-populated by an escape-disabled
		// dictionary live below numSpecialCodes+256 but above
		// numSpecialCodes, so this can only happen for a genuinely
		// corrupt call site.
		panic("lzw: recAdd on unknown code")
	}
	newPrefix := recAdd(newDict, oldDict, oldElt.prefix, oldLastSeen, newRec)
	newCode, _ := newDict.add(newPrefix, oldElt.k)
	newRec.lastSeen[newCode] = oldLastSeen[eltCode]
	return newCode
}

// prune rebuilds the dictionary, keeping only entries (and the prefix
// chains they depend on) that were observed more recently than
// counter-window. rec is updated in place to describe the rebuilt
// dictionary's codes. If inout is non-nil and points at a code that the
// retention rule keeps, *inout is rewritten to that code's new value; a
// code that survives only as a prefix of a kept entry is not rewritten.
// Both the encoder and the decoder pass their pending code here but reset
// it to emptyPrefix right after the prune, so neither uses the remap.
func (d *dictionary) prune(rec *recencyTracker, window uint64, inout *code) *dictionary {
	oldLastSeen := make([]uint64, len(rec.lastSeen))
	copy(oldLastSeen, rec.lastSeen)
	oldCounter := rec.counter

	rec.reset()

	maxBits := bitsFor(d.arraySize)
	newDict := newDictionary(maxBits, d.escapeEnabled)

	for i := numSpecialCodes; i <= d.highestCode; i++ {
		oldElt := d.entries[i]
		if oldLastSeen[i] > oldCounter-window {
			newCode := recAdd(newDict, d, oldElt.c, oldLastSeen, rec)
			if inout != nil && oldElt.c == *inout {
				*inout = newCode
			}
		}
	}
	return newDict
}

func bitsFor(arraySize int) uint {
	var n uint
	for (1 << n) < arraySize {
		n++
	}
	return n
}
