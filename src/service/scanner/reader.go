package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Line is one line of decoded file content
type Line struct {
	Num  int // 1-based
	Text string
}

// ErrBinaryFile marks files whose content is not decodable text
var ErrBinaryFile = errors.New("binary file content")

var bom = []byte{0xEF, 0xBB, 0xBF}

// ReadLines reads a file and returns its lines with 1-based numbers.
// Invalid UTF-8 sequences are replaced rather than rejected; files
// containing NUL bytes are treated as binary and reported via
// ErrBinaryFile so the caller can count them as skipped.
func ReadLines(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}

	data = bytes.TrimPrefix(data, bom)

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	raw := strings.Split(text, "\n")
	// A trailing newline produces one empty tail element, not a line
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]Line, len(raw))
	for i, s := range raw {
		lines[i] = Line{Num: i + 1, Text: strings.TrimSuffix(s, "\r")}
	}

	return lines, nil
}
