// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import "crypto/sha256"

// wordBits is the width of one word index. A 2048-entry wordlist is
// addressed by exactly 11 bits.
const wordBits = 11

// bitWriter appends fixed-width bit groups to a growing byte buffer,
// most significant bit first.
type bitWriter struct {
	buf []byte
	off int // bits written so far
}

func (w *bitWriter) writeBits(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.off%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if v>>uint(i)&1 == 1 {
			w.buf[w.off/8] |= 0x80 >> uint(w.off%8)
		}
		w.off++
	}
}

// bitReader consumes fixed-width bit groups from a byte buffer, most
// significant bit first. The caller is responsible for staying within
// the buffer.
type bitReader struct {
	buf []byte
	off int // bits consumed so far
}

func (r *bitReader) readBits(width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		v <<= 1
		if r.buf[r.off/8]&(0x80>>uint(r.off%8)) != 0 {
			v |= 1
		}
		r.off++
	}
	return v
}

// checksumLen returns the checksum width in bits for an entropy buffer:
// one bit per 32 bits of entropy.
func checksumLen(entropy []byte) int {
	return len(entropy) * 8 / 32
}

// checksum returns the first entropyBits/32 bits of SHA-256(entropy),
// right-aligned. The checksum is at most 8 bits for all valid entropy
// lengths, so a single byte holds it.
func checksum(entropy []byte) byte {
	sum := sha256.Sum256(entropy)
	return sum[0] >> uint(8-checksumLen(entropy))
}

// packIndices concatenates the entropy bits with the checksum bits and
// splits the stream into 11-bit word indices. The stream length
// entropyBits + entropyBits/32 is an exact multiple of 11 for every
// valid entropy length.
func packIndices(entropy []byte) []uint16 {
	cs := checksumLen(entropy)
	w := bitWriter{buf: make([]byte, 0, len(entropy)+1)}
	for _, b := range entropy {
		w.writeBits(uint32(b), 8)
	}
	w.writeBits(uint32(checksum(entropy)), cs)

	n := (len(entropy)*8 + cs) / wordBits
	indices := make([]uint16, n)
	r := bitReader{buf: w.buf}
	for i := range indices {
		indices[i] = uint16(r.readBits(wordBits))
	}
	return indices
}

// unpackIndices is the inverse of packIndices: it rebuilds the bit
// stream from the 11-bit indices and splits it into the entropy bytes
// and the claimed checksum. The entropy portion is 32/33 of the stream
// and always ends on a byte boundary.
func unpackIndices(indices []uint16) (entropy []byte, claimed byte) {
	w := bitWriter{buf: make([]byte, 0, len(indices)*wordBits/8+1)}
	for _, idx := range indices {
		w.writeBits(uint32(idx), wordBits)
	}
	entBits := len(indices) * wordBits * 32 / 33
	entropy = w.buf[:entBits/8]
	r := bitReader{buf: w.buf, off: entBits}
	claimed = byte(r.readBits(len(indices) * wordBits / 33))
	return entropy, claimed
}

// verifyChecksum recomputes the checksum of entropy and compares it to
// the claimed bits. Any bit mismatch fails.
func verifyChecksum(entropy []byte, claimed byte) bool {
	return checksum(entropy) == claimed
}
