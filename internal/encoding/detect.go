// Package encoding normalizes uploaded bank statement files to UTF-8.
// Banks export CSVs in a mix of UTF-8 (with or without BOM), UTF-16 and
// legacy Windows code pages.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8.
//
// A BOM wins outright; otherwise content that already validates as UTF-8
// passes through, then chardet takes a guess, and Windows-1252 is the final
// fallback since that is what legacy bank exports almost always are.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if decoded, ok := fromBOM(br, buf); ok {
		return decoded, nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	if decoded, ok := fromDetector(br, buf); ok {
		return decoded, nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func fromBOM(br *bufio.Reader, buf []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

func fromDetector(br *bufio.Reader, buf []byte) (io.Reader, bool) {
	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err != nil {
		return nil, false
	}

	switch result.Charset {
	case "UTF-8":
		return br, true
	case "ISO-8859-1", "windows-1252":
		return transform.NewReader(br, charmap.Windows1252.NewDecoder()), true
	case "ISO-8859-15":
		return transform.NewReader(br, charmap.ISO8859_15.NewDecoder()), true
	case "ISO-8859-9":
		return transform.NewReader(br, charmap.ISO8859_9.NewDecoder()), true
	}

	return nil, false
}
