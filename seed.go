// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import (
	"crypto/sha512"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the byte length of a derived seed.
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// deriveSeed is the one KDF invocation behind every Seed variant:
// PBKDF2-HMAC-SHA512 over the NFKD-normalized phrase, salted with
// "mnemonic" plus the NFKD-normalized passphrase.
func deriveSeed(sentence, passphrase string) []byte {
	password := norm.NFKD.Bytes([]byte(sentence))
	salt := append([]byte(seedSaltPrefix), norm.NFKD.Bytes([]byte(passphrase))...)
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}

// Seed derives the 64-byte seed from a text-form phrase and an
// optional passphrase (empty string means no passphrase). Seed
// performs no wordlist or checksum validation: the seed is a pure
// function of the phrase text, so a checksum-invalid phrase still
// yields a deterministic seed. Only an empty phrase fails.
func Seed(sentence, passphrase string) ([]byte, error) {
	if sentence == "" {
		return nil, ErrEmptyMnemonic
	}
	return deriveSeed(sentence, passphrase), nil
}

// SeedAsync derives the same seed as Seed without blocking the caller.
// Malformed input fails synchronously before any hashing begins; the
// returned channel delivers the single result and is then closed.
func SeedAsync(sentence, passphrase string) (<-chan []byte, error) {
	if sentence == "" {
		return nil, ErrEmptyMnemonic
	}
	ch := make(chan []byte, 1)
	go func() {
		ch <- deriveSeed(sentence, passphrase)
		close(ch)
	}()
	return ch, nil
}

// numeralSentence renders an index sequence in the fixed,
// wordlist-independent text encoding used when a phrase arrives in
// compact binary form: the base-10 index values joined by single
// spaces.
func numeralSentence(m Mnemonic) string {
	var b strings.Builder
	for i, idx := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(idx)))
	}
	return b.String()
}

// SeedFromIndices derives a seed from a phrase held in its canonical
// index form. The phrase is rendered with a fixed numeral encoding
// (base-10 indices joined by spaces) so derivation needs no knowledge
// of the wordlist that produced it. As with Seed, no checksum or
// membership validation happens here.
func SeedFromIndices(m Mnemonic, passphrase string) ([]byte, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMnemonic
	}
	return deriveSeed(numeralSentence(m), passphrase), nil
}

// SeedFromIndicesAsync is the non-blocking variant of SeedFromIndices.
func SeedFromIndicesAsync(m Mnemonic, passphrase string) (<-chan []byte, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMnemonic
	}
	ch := make(chan []byte, 1)
	go func() {
		ch <- deriveSeed(numeralSentence(m), passphrase)
		close(ch)
	}()
	return ch, nil
}
