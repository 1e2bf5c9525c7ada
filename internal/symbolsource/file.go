// Package symbolsource reads the plain-text symbol input files described
// in spec.md §6: one symbol per line, trailing whitespace stripped, blank
// lines skipped, with an optional hex-encoded mode. It is collaborator
// code around the core cascade builder, not part of it.
package symbolsource

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/QianfengClarkShen/rtl-static-hash/internal/hasher"
)

// Format selects how each line of the input file is decoded.
type Format string

const (
	FormatASCII Format = "ascii"
	FormatHex   Format = "hex"
)

// Read parses path per format, returning the raw (not yet fixed-length
// normalized) symbol bytes in file order alongside a display label for
// each — the original line text, used by the readable table.
func Read(path string, format Format) (raw [][]byte, labels []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", hasher.ErrInputNotFound, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", hasher.ErrInputNotFound, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			continue
		}

		switch format {
		case FormatHex:
			decoded, err := hex.DecodeString(line)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: invalid hex %q", hasher.ErrInputEncoding, lineNo, line)
			}
			raw = append(raw, decoded)
			labels = append(labels, line)
		default: // FormatASCII
			if !isASCII(line) {
				return nil, nil, fmt.Errorf("%w: line %d contains non-ASCII characters", hasher.ErrInputEncoding, lineNo)
			}
			raw = append(raw, []byte(line))
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", hasher.ErrInputNotFound, path, err)
	}

	return raw, labels, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
