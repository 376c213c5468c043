// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package charstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPop(t *testing.T) {
	var s Stack
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push('a')
	s.Push('b')
	s.Push('c')
	assert.Equal(t, 3, s.Len())

	for _, want := range []byte{'c', 'b', 'a'} {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok = s.Pop()
	assert.False(t, ok)
}

func TestGrowthBeyondInitialCapacity(t *testing.T) {
	var s Stack
	const n = 1000
	for i := 0; i < n; i++ {
		s.Push(byte(i))
	}
	assert.Equal(t, n, s.Len())
	for i := n - 1; i >= 0; i-- {
		got, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, byte(i), got)
	}
}

func TestReset(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Pop()
	assert.False(t, ok)
}
