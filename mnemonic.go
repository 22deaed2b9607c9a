// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package mnemonic implements BIP39 mnemonic phrases: deterministic
// conversion between an entropy buffer and a sequence of words from a
// 2048-entry wordlist, and derivation of a 64-byte binary seed from a
// phrase and an optional passphrase.
//
// The canonical form of a phrase is the Mnemonic type, an ordered
// sequence of 11-bit word indices. It has two interchangeable
// serializations: the text form (words joined by the wordlist's
// separator) and a compact binary form (each index as a little-endian
// 16-bit value). Both decode to the identical index sequence.
package mnemonic

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// DefaultStrength is the entropy bit length used by Generate when the
// caller passes 0: 128 bits, a 12-word phrase.
const DefaultStrength = 128

// Mnemonic is the canonical form of a phrase: word indices in order,
// each in [0, 2047]. It is the entropy bits concatenated with the
// checksum bits, split into 11-bit groups.
type Mnemonic []uint16

// validStrength reports whether an entropy bit length is allowed.
func validStrength(bits int) bool {
	switch bits {
	case 128, 160, 192, 224, 256:
		return true
	}
	return false
}

// validWordCount reports whether a phrase word count is allowed.
func validWordCount(n int) bool {
	switch n {
	case 12, 15, 18, 21, 24:
		return true
	}
	return false
}

// NewEntropy returns bits/8 cryptographically random bytes. bits must
// be one of 128, 160, 192, 224 or 256.
func NewEntropy(bits int) ([]byte, error) {
	if !validStrength(bits) {
		return nil, fmt.Errorf("%w: %d bits", ErrEntropyLength, bits)
	}
	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("could not read entropy: %w", err)
	}
	return entropy, nil
}

// FromEntropy encodes an entropy buffer as a Mnemonic. The entropy bit
// length must be one of 128, 160, 192, 224 or 256.
func FromEntropy(entropy []byte) (Mnemonic, error) {
	if !validStrength(len(entropy) * 8) {
		return nil, fmt.Errorf("%w: %d bits", ErrEntropyLength, len(entropy)*8)
	}
	return Mnemonic(packIndices(entropy)), nil
}

// Entropy decodes the Mnemonic back into its entropy bytes, verifying
// word count, index range and checksum. This is the only path that
// enforces the checksum.
func (m Mnemonic) Entropy() ([]byte, error) {
	if !validWordCount(len(m)) {
		return nil, fmt.Errorf("%w: %d words", ErrMnemonicLength, len(m))
	}
	for _, idx := range m {
		if idx >= WordlistSize {
			return nil, fmt.Errorf("%w: %d", ErrWordIndex, idx)
		}
	}
	entropy, claimed := unpackIndices(m)
	if !verifyChecksum(entropy, claimed) {
		return nil, ErrChecksum
	}
	return entropy, nil
}

// Valid reports whether the Mnemonic has a valid length, indices and
// checksum.
func (m Mnemonic) Valid() bool {
	_, err := m.Entropy()
	return err == nil
}

// Sentence renders the Mnemonic as the wordlist's text form.
func (m Mnemonic) Sentence(wl *Wordlist) (string, error) {
	return wl.Join(m)
}

// Parse converts a text-form phrase into a Mnemonic. Every word must
// exist verbatim in the wordlist. Parse does not verify the checksum;
// use Entropy or Valid for that.
func Parse(sentence string, wl *Wordlist) (Mnemonic, error) {
	return wl.Split(sentence)
}

// MarshalBinary encodes the Mnemonic in its compact binary form: each
// index as a little-endian 16-bit value, two bytes per word.
func (m Mnemonic) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2*len(m))
	for i, idx := range m {
		binary.LittleEndian.PutUint16(buf[2*i:], idx)
	}
	return buf, nil
}

// UnmarshalBinary decodes the compact binary form produced by
// MarshalBinary. Length and checksum are not validated here; a
// subsequent Entropy or Valid call enforces them.
func (m *Mnemonic) UnmarshalBinary(data []byte) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: odd compact form length %d", ErrMnemonicLength, len(data))
	}
	out := make(Mnemonic, len(data)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	*m = out
	return nil
}

// Generate creates a fresh phrase from bits of cryptographically
// random entropy, rendered against the given wordlist. Passing 0
// selects DefaultStrength. The word count is fixed by the entropy
// length: 128→12, 160→15, 192→18, 224→21, 256→24.
func Generate(wl *Wordlist, bits int) (string, error) {
	if bits == 0 {
		bits = DefaultStrength
	}
	entropy, err := NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return EntropyToMnemonic(entropy, wl)
}

// EntropyToMnemonic encodes caller-supplied entropy as a text-form
// phrase.
func EntropyToMnemonic(entropy []byte, wl *Wordlist) (string, error) {
	m, err := FromEntropy(entropy)
	if err != nil {
		return "", err
	}
	return m.Sentence(wl)
}

// MnemonicToEntropy decodes a text-form phrase back into its entropy
// bytes. It fails with ErrWordNotFound, ErrMnemonicLength or
// ErrChecksum when the phrase is not a valid encoding.
func MnemonicToEntropy(sentence string, wl *Wordlist) ([]byte, error) {
	m, err := Parse(sentence, wl)
	if err != nil {
		return nil, err
	}
	return m.Entropy()
}

// Validate reports whether a text-form phrase decodes cleanly against
// the wordlist. It downgrades every decoding failure, whatever the
// kind, to false; callers who need the reason use MnemonicToEntropy.
func Validate(sentence string, wl *Wordlist) bool {
	_, err := MnemonicToEntropy(sentence, wl)
	return err == nil
}
