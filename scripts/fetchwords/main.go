// fetchwords downloads a BIP39 wordlist file and checks it before it is
// committed next to the package for embedding.
//
// Usage:
//
//	go run ./scripts/fetchwords https://raw.githubusercontent.com/bitcoin/bips/master/bip-0039/english.txt
//
// Or with a local file:
//
//	go run ./scripts/fetchwords ./english.txt
//
// The list is parsed with the same rules as the library, so a file that
// passes here will load at runtime. The SHA-256 of the raw bytes is
// printed for comparison against the upstream reference checksums.
package main

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/complex-gh/mnemonic"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: fetchwords <url-or-path>")
		os.Exit(1)
	}
	src := os.Args[1]

	raw, err := fetch(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sep := mnemonic.SeparatorSpace
	if strings.Contains(src, "japanese") {
		sep = mnemonic.SeparatorIdeographic
	}
	wl, err := mnemonic.ParseWordlist(src, bytes.NewReader(raw), sep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	first, _ := wl.Word(0)
	last, _ := wl.Word(2047)
	fmt.Printf("words:   2048 (%s .. %s)\n", first, last)
	fmt.Printf("sha256:  %x\n", sha256.Sum256(raw))
}

func fetch(src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src) //nolint:gosec,noctx
		if err != nil {
			return nil, fmt.Errorf("could not fetch %s: %w", src, err)
		}
		defer resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("could not fetch %s: %s", src, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(src) //nolint:gosec
}
