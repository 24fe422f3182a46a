package ehhscan

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// delimiterCandidates are the column separators a recombination or map file
// may plausibly use.
var delimiterCandidates = []byte{'\t', ',', ';', '|', ' '}

// DetermineDelimiter returns the single most likely rune that delimits the
// columns of a recombination or map file, given its first few kilobytes.
// Tabs win when every non-empty line carries one. Otherwise the detector's
// guess is used if it is a plausible separator found on every line, and
// whitespace-aligned files fall back to a space.
func DetermineDelimiter(sample []byte) rune {
	var lines [][]byte
	for _, line := range bytes.Split(bytes.TrimSpace(sample), []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			lines = append(lines, line)
		}
	}

	onEveryLine := func(c byte) bool {
		for _, line := range lines {
			if bytes.IndexByte(line, c) < 0 {
				return false
			}
		}
		return len(lines) > 0
	}

	if onEveryLine('\t') {
		return '\t'
	}

	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(sample), '"')
	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		guess := delimiters[0][0]
		if bytes.IndexByte(delimiterCandidates, guess) >= 0 && onEveryLine(guess) {
			return rune(guess)
		}
	}

	for _, c := range delimiterCandidates[1:] {
		if onEveryLine(c) {
			return rune(c)
		}
	}

	return ' '
}
