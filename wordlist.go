// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

// WordlistSize is the required number of entries in a wordlist. The
// 11-bit word indexing depends on it.
const WordlistSize = 2048

// Separators used to join the words of a phrase. Most languages use a
// plain space; Japanese lists use the ideographic space.
const (
	SeparatorSpace       = " "
	SeparatorIdeographic = "　"
)

//go:embed english.txt
var englishData string

var english = func() *Wordlist {
	wl, err := ParseWordlist("english", strings.NewReader(englishData), SeparatorSpace)
	if err != nil {
		panic(err)
	}
	return wl
}()

// Wordlist maps 11-bit word indices to the words of one language and
// back. The index order is a fixed external contract; a Wordlist never
// reorders or rewrites its entries.
type Wordlist struct {
	name  string
	sep   string
	words []string
	index map[string]uint16
}

// NewWordlist builds a Wordlist over exactly 2048 unique words. An
// empty separator selects SeparatorSpace. The word slice is copied.
func NewWordlist(name string, words []string, separator string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("%w: got %d", ErrWordlistLength, len(words))
	}
	if separator == "" {
		separator = SeparatorSpace
	}
	wl := &Wordlist{
		name:  name,
		sep:   separator,
		words: make([]string, WordlistSize),
		index: make(map[string]uint16, WordlistSize),
	}
	copy(wl.words, words)
	for i, w := range wl.words {
		if _, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrWordlistLength, w)
		}
		wl.index[w] = uint16(i)
	}
	return wl, nil
}

// ParseWordlist reads a newline-separated wordlist. Blank lines and
// surrounding whitespace are ignored; everything else is kept verbatim.
func ParseWordlist(name string, r io.Reader, separator string) (*Wordlist, error) {
	sc := bufio.NewScanner(r)
	words := make([]string, 0, WordlistSize)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read wordlist: %w", err)
	}
	return NewWordlist(name, words, separator)
}

// English returns the standard English wordlist, joined by spaces.
func English() *Wordlist {
	return english
}

// Name returns the wordlist's language name.
func (wl *Wordlist) Name() string { return wl.name }

// Separator returns the string joining the words of a phrase.
func (wl *Wordlist) Separator() string { return wl.sep }

// Word returns the word at the given index.
func (wl *Wordlist) Word(i uint16) (string, error) {
	if int(i) >= len(wl.words) {
		return "", fmt.Errorf("%w: %d", ErrWordIndex, i)
	}
	return wl.words[i], nil
}

// Index returns the position of a word in the list. Matching is exact:
// no case folding, trimming or prefix completion.
func (wl *Wordlist) Index(word string) (uint16, bool) {
	i, ok := wl.index[word]
	return i, ok
}

// Join renders an index sequence as the wordlist's text form.
func (wl *Wordlist) Join(m Mnemonic) (string, error) {
	var b strings.Builder
	for i, idx := range m {
		w, err := wl.Word(idx)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(wl.sep)
		}
		b.WriteString(w)
	}
	return b.String(), nil
}

// Split parses a text-form phrase back into its index sequence. It
// fails on the first word that has no wordlist entry, naming the word.
// Split performs no length or checksum validation; that is the codec's
// job.
func (wl *Wordlist) Split(sentence string) (Mnemonic, error) {
	parts := strings.Split(sentence, wl.sep)
	m := make(Mnemonic, len(parts))
	for i, w := range parts {
		idx, ok := wl.index[w]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w)
		}
		m[i] = idx
	}
	return m, nil
}
