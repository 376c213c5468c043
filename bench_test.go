// Copyright 2026, the lzw authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"io"
	"testing"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/nh298/lzw/internal/testutil"
)

// corpus returns a mix of repetitive and pseudo-random bytes representative
// of what this codec is actually asked to compress: long runs with a
// scattering of fresh entropy, rather than a single pathological case.
func corpus() []byte {
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 400))
	buf.Write(testutil.NewRand(7).Bytes(4000))
	buf.Write(bytes.Repeat([]byte("abcabcabcabc"), 1000))
	return buf.Bytes()
}

// BenchmarkCompressionRatio reports this package's output size against
// klauspost/compress/flate and ulikunitz/xz on the same input, purely as an
// informational comparison against established general-purpose codecs. It
// never fails: a worse ratio than either reference is expected on some
// inputs, since neither uses a pruning dictionary.
func BenchmarkCompressionRatio(b *testing.B) {
	data := corpus()

	b.Run("lzw", func(b *testing.B) {
		var out bytes.Buffer
		zw, err := NewWriter(&out, 16, 1<<14, true)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := zw.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		reportRatio(b, len(data), out.Len())
	})

	b.Run("flate", func(b *testing.B) {
		var out bytes.Buffer
		zw, err := kflate.NewWriter(&out, kflate.DefaultCompression)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := zw.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		reportRatio(b, len(data), out.Len())
	})

	b.Run("xz", func(b *testing.B) {
		var out bytes.Buffer
		zw, err := xz.NewWriter(&out)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := zw.Write(data); err != nil {
			b.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			b.Fatal(err)
		}
		reportRatio(b, len(data), out.Len())
	})
}

func reportRatio(b *testing.B, inputLen, outputLen int) {
	b.ReportMetric(float64(outputLen)/float64(inputLen), "compressed/input")
}

// BenchmarkFlateRoundTripSanity guards the flate comparison arm: a codec
// that can't round-trip its own corpus would make the ratio comparison
// meaningless.
func BenchmarkFlateRoundTripSanity(b *testing.B) {
	data := corpus()
	var compressed bytes.Buffer
	zw, err := kflate.NewWriter(&compressed, kflate.DefaultCompression)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := zw.Write(data); err != nil {
		b.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		b.Fatal(err)
	}

	zr := kflate.NewReader(&compressed)
	defer zr.Close()
	got, err := io.ReadAll(zr)
	if err != nil {
		b.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		b.Fatal("flate comparison arm failed to round-trip its own corpus")
	}
}
