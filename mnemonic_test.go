// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// encodeVectors are official BIP39 English test vectors: entropy hex on
// the left, the expected phrase on the right.
var encodeVectors = []struct {
	entropy  string
	sentence string
}{
	{
		"00000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank yellow",
	},
	{
		"80808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
	},
	{
		"ffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
	},
	{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
	},
	{
		"7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
		"legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title",
	},
	{
		"8080808080808080808080808080808080808080808080808080808080808080",
		"letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic avoid letter advice cage absurd amount doctor acoustic bless",
	},
	{
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo vote",
	},
	{
		"9e885d952ad362caeb4efe34a8e91bd2",
		"ozone drill grab fiber curtain grace pudding thank cruise elder eight picnic",
	},
	{
		"f30f8c1da665478f49b001d94c5fc452",
		"vessel ladder alter error federal sibling chat ability sun glass valve picture",
	},
	{
		"18ab19a9f54a9274f03e5209a2ac8a91",
		"board flee heavy tunnel powder denial science ski answer betray cargo cat",
	},
	{
		"c0ba5a8e914111210f2bd131f3d5e08d",
		"scheme spot photo card baby mountain device kick cradle pact join borrow",
	},
}

// TestEntropyToMnemonic_Vectors encodes the official vectors.
func TestEntropyToMnemonic_Vectors(t *testing.T) {
	wl := English()
	for _, v := range encodeVectors {
		t.Run(v.entropy[:8], func(t *testing.T) {
			is := is.New(t)
			entropy, err := hex.DecodeString(v.entropy)
			is.NoErr(err)

			sentence, err := EntropyToMnemonic(entropy, wl)
			is.NoErr(err)
			is.Equal(sentence, v.sentence)
		})
	}
}

// TestMnemonicToEntropy_Vectors decodes the official vectors back to
// their entropy.
func TestMnemonicToEntropy_Vectors(t *testing.T) {
	wl := English()
	for _, v := range encodeVectors {
		t.Run(v.entropy[:8], func(t *testing.T) {
			is := is.New(t)
			entropy, err := MnemonicToEntropy(v.sentence, wl)
			is.NoErr(err)
			is.Equal(hex.EncodeToString(entropy), v.entropy)
		})
	}
}

// TestRoundTrip_RandomEntropy encodes and decodes random entropy of
// every valid length.
func TestRoundTrip_RandomEntropy(t *testing.T) {
	is := is.New(t)
	wl := English()

	for _, size := range []int{16, 20, 24, 28, 32} {
		for i := 0; i < 8; i++ {
			entropy := make([]byte, size)
			_, err := rand.Read(entropy)
			is.NoErr(err)

			sentence, err := EntropyToMnemonic(entropy, wl)
			is.NoErr(err)

			got, err := MnemonicToEntropy(sentence, wl)
			is.NoErr(err)
			is.Equal(got, entropy)
		}
	}
}

// TestFromEntropy_InvalidLength rejects entropy outside the allowed
// sizes.
func TestFromEntropy_InvalidLength(t *testing.T) {
	is := is.New(t)

	for _, size := range []int{0, 1, 15, 17, 31, 33, 64} {
		_, err := FromEntropy(make([]byte, size))
		is.True(errors.Is(err, ErrEntropyLength))
	}
}

// TestGenerate_WordCounts maps every entropy strength to its word
// count; 160 bits must always yield exactly 15 words.
func TestGenerate_WordCounts(t *testing.T) {
	is := is.New(t)
	wl := English()

	counts := map[int]int{128: 12, 160: 15, 192: 18, 224: 21, 256: 24}
	for bits, want := range counts {
		sentence, err := Generate(wl, bits)
		is.NoErr(err)
		is.Equal(len(strings.Fields(sentence)), want)
		is.True(Validate(sentence, wl))
	}
}

// TestGenerate_Default uses 128 bits when the caller passes 0.
func TestGenerate_Default(t *testing.T) {
	is := is.New(t)

	sentence, err := Generate(English(), 0)
	is.NoErr(err)
	is.Equal(len(strings.Fields(sentence)), 12)
}

// TestGenerate_InvalidStrength rejects strengths outside the set.
func TestGenerate_InvalidStrength(t *testing.T) {
	is := is.New(t)

	for _, bits := range []int{8, 127, 129, 200, 512} {
		_, err := Generate(English(), bits)
		is.True(errors.Is(err, ErrEntropyLength))
	}
}

// TestGenerate_Unique never repeats across calls.
func TestGenerate_Unique(t *testing.T) {
	is := is.New(t)

	a, err := Generate(English(), 256)
	is.NoErr(err)
	b, err := Generate(English(), 256)
	is.NoErr(err)
	is.True(a != b)
}

// TestValidate_LengthBoundary fails word counts outside 12, 15, 18, 21
// and 24, including a 250-word phrase.
func TestValidate_LengthBoundary(t *testing.T) {
	is := is.New(t)
	wl := English()

	is.True(!Validate("", wl))
	is.True(!Validate("abandon", wl))
	is.True(!Validate("abandon ability", wl))
	is.True(!Validate(strings.TrimSpace(strings.Repeat("abandon ", 6)), wl))
	is.True(!Validate(strings.TrimSpace(strings.Repeat("abandon ", 13)), wl))
	is.True(!Validate(strings.TrimSpace(strings.Repeat("zoo ", 250)), wl))
}

// TestValidate_Membership fails a phrase with one word missing from
// the list, even when everything else is fine.
func TestValidate_Membership(t *testing.T) {
	is := is.New(t)
	wl := English()

	valid := encodeVectors[0].sentence
	words := strings.Fields(valid)
	words[5] = "abandonn"
	is.True(!Validate(strings.Join(words, " "), wl))
}

// TestValidate_ChecksumBitFlip flips every checksum bit of a valid
// 12-word phrase in turn; each single-bit change must invalidate it.
func TestValidate_ChecksumBitFlip(t *testing.T) {
	is := is.New(t)
	wl := English()

	m, err := Parse(encodeVectors[0].sentence, wl)
	is.NoErr(err)
	is.True(m.Valid())

	// A 12-word phrase carries 4 checksum bits, the low bits of the
	// last index.
	for bit := 0; bit < 4; bit++ {
		flipped := make(Mnemonic, len(m))
		copy(flipped, m)
		flipped[len(flipped)-1] ^= 1 << uint(bit)

		sentence, err := flipped.Sentence(wl)
		is.NoErr(err)
		is.True(!Validate(sentence, wl))
	}
}

// TestMnemonicToEntropy_ErrorKinds surfaces the failure reason to
// callers who want more than a predicate.
func TestMnemonicToEntropy_ErrorKinds(t *testing.T) {
	is := is.New(t)
	wl := English()

	_, err := MnemonicToEntropy("zoo zoo zoo", wl)
	is.True(errors.Is(err, ErrMnemonicLength))

	_, err = MnemonicToEntropy("not a real phrase at all ok", wl)
	is.True(errors.Is(err, ErrWordNotFound))

	// All-"abandon" has a wrong checksum at every valid length.
	_, err = MnemonicToEntropy(strings.TrimSpace(strings.Repeat("abandon ", 12)), wl)
	is.True(errors.Is(err, ErrChecksum))
}

// TestMnemonic_BinaryRoundTrip serializes the canonical index form to
// the two-byte little-endian compact form and back.
func TestMnemonic_BinaryRoundTrip(t *testing.T) {
	is := is.New(t)
	wl := English()

	m, err := Parse(encodeVectors[1].sentence, wl)
	is.NoErr(err)

	buf, err := m.MarshalBinary()
	is.NoErr(err)
	is.Equal(len(buf), 2*len(m))

	var got Mnemonic
	is.NoErr(got.UnmarshalBinary(buf))
	is.Equal(got, m)
	is.True(got.Valid())

	sentence, err := got.Sentence(wl)
	is.NoErr(err)
	is.Equal(sentence, encodeVectors[1].sentence)
}

// TestMnemonic_BinaryOddLength rejects a compact form that cannot hold
// whole 16-bit indices.
func TestMnemonic_BinaryOddLength(t *testing.T) {
	is := is.New(t)

	var m Mnemonic
	err := m.UnmarshalBinary([]byte{0x01, 0x02, 0x03})
	is.True(errors.Is(err, ErrMnemonicLength))
}

// TestMnemonic_IndexRange rejects indices that cannot come from a
// 2048-entry list, which the compact binary form can smuggle in.
func TestMnemonic_IndexRange(t *testing.T) {
	is := is.New(t)

	m := make(Mnemonic, 12)
	m[7] = 2048
	_, err := m.Entropy()
	is.True(errors.Is(err, ErrWordIndex))
	is.True(!m.Valid())
}

// TestNewEntropy_Lengths returns the requested byte count for every
// valid strength.
func TestNewEntropy_Lengths(t *testing.T) {
	is := is.New(t)

	for _, bits := range []int{128, 160, 192, 224, 256} {
		entropy, err := NewEntropy(bits)
		is.NoErr(err)
		is.Equal(len(entropy), bits/8)
	}

	_, err := NewEntropy(100)
	is.True(errors.Is(err, ErrEntropyLength))
}
