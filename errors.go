// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import "errors"

// Errors returned by the codec. Decoding functions wrap these with
// context; use errors.Is to test for a specific kind.
var (
	// ErrEntropyLength is returned when an entropy buffer's bit length
	// is not one of 128, 160, 192, 224 or 256.
	ErrEntropyLength = errors.New("mnemonic: invalid entropy length")

	// ErrMnemonicLength is returned when a phrase's word count is not
	// one of 12, 15, 18, 21 or 24.
	ErrMnemonicLength = errors.New("mnemonic: invalid mnemonic length")

	// ErrWordIndex is returned when a word index has no wordlist entry.
	ErrWordIndex = errors.New("mnemonic: word index out of range")

	// ErrWordNotFound is returned when a word of a phrase does not
	// appear in the wordlist. The wrapping error names the word.
	ErrWordNotFound = errors.New("mnemonic: word not in wordlist")

	// ErrWordlistLength is returned when a wordlist does not contain
	// exactly 2048 entries.
	ErrWordlistLength = errors.New("mnemonic: wordlist must contain exactly 2048 words")

	// ErrChecksum is returned when the checksum recomputed from the
	// decoded entropy disagrees with the checksum bits of the phrase.
	ErrChecksum = errors.New("mnemonic: checksum mismatch")

	// ErrEmptyMnemonic is returned by seed derivation when the
	// mnemonic is empty.
	ErrEmptyMnemonic = errors.New("mnemonic: empty mnemonic")
)
