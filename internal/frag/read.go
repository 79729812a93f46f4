package frag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLine is the longest single line accepted from a FASTA file
const maxLine = 16 * 1024 * 1024

// ReadFile reads a FASTA file to a slice of Fragments
func ReadFile(path string) ([]Fragment, error) {
	var err error
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)

		if err != nil {
			return nil, fmt.Errorf("failed to create path to FASTA file: %w", err)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input FASTA path: %w", err)
	}
	defer file.Close()

	frags, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return frags, nil
}

// Read parses FASTA records into Fragments. A line starting with '>'
// names a fragment and the lines up to the next header are joined
// into its sequence, with whitespace dropped
func Read(r io.Reader) ([]Fragment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var frags []Fragment
	var seq strings.Builder
	flush := func() {
		if len(frags) > 0 {
			frags[len(frags)-1].Seq = seq.String()
		}
		seq.Reset()
	}

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()
			frags = append(frags, Fragment{ID: strings.TrimSpace(line[1:])})
			continue
		}

		if len(frags) == 0 {
			return nil, fmt.Errorf("line %d: sequence before the first '>' header", lineNumber)
		}
		seq.WriteString(strings.Join(strings.Fields(line), ""))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read FASTA: %w", err)
	}
	flush()

	// read the input but found nothing
	if len(frags) < 1 {
		return nil, fmt.Errorf("no FASTA records found")
	}

	return frags, nil
}
