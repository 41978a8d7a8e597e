// Package cleaner excises Project Gutenberg style boilerplate from raw
// archive downloads.
package cleaner

import (
	"strings"
	"unicode"
)

// defaultMarkers are the boilerplate marker substrings scanned for in order.
// Start markers advance the retained range past their line; the first end
// marker truncates at its line and stops the scan.
var defaultMarkers = []string{
	"*** START OF THIS PROJECT GUTENBERG",
	"*** END OF THIS PROJECT GUTENBERG",
	"*** START OF THE PROJECT GUTENBERG",
	"*** END OF THE PROJECT GUTENBERG",
}

// ArchiveCleaner holds the marker list. It is immutable after construction
// and safe for concurrent use.
type ArchiveCleaner struct {
	markers []string
}

// New returns a cleaner using the default Gutenberg markers plus any extra
// marker substrings from configuration.
func New(extraMarkers ...string) *ArchiveCleaner {
	markers := make([]string, 0, len(defaultMarkers)+len(extraMarkers))
	markers = append(markers, defaultMarkers...)
	markers = append(markers, extraMarkers...)
	return &ArchiveCleaner{markers: markers}
}

// Clean strips leading invisible junk, drops everything outside the
// start/end boilerplate markers and tidies up whitespace.
//
// Marker detection is a single forward pass: a line containing a start
// marker moves the start of the retained range to the next line, and the
// first line containing an end marker ends the range and the scan. An end
// marker seen before any start marker therefore still truncates the
// document while the start stays at line zero.
func (c *ArchiveCleaner) Clean(raw string) string {
	lines := strings.Split(stripLeadingJunk(raw), "\n")

	start, end := 0, len(lines)
	for i, line := range lines {
		if !containsAny(line, c.markers) {
			continue
		}
		if strings.Contains(line, "START") {
			start = i + 1
		} else if strings.Contains(line, "END") {
			end = i
			break
		}
	}

	cleaned := strings.Join(lines[start:end], "\n")
	cleaned = collapseBlankLines(cleaned)
	cleaned = collapseSpaces(cleaned)
	return strings.TrimSpace(cleaned)
}

// stripLeadingJunk removes a leading run of BOM, zero-width space and
// whitespace characters that would otherwise defeat marker matching on the
// first line.
func stripLeadingJunk(text string) string {
	return strings.TrimLeftFunc(text, func(r rune) bool {
		return r == '\ufeff' || r == '\u200b' || unicode.IsSpace(r)
	})
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// collapseBlankLines reduces runs of three or more newlines to exactly two.
func collapseBlankLines(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	newlines := 0
	for _, r := range text {
		if r == '\n' {
			newlines++
			if newlines <= 2 {
				b.WriteByte('\n')
			}
			continue
		}
		newlines = 0
		b.WriteRune(r)
	}
	return b.String()
}

// collapseSpaces reduces runs of two or more spaces to a single space.
func collapseSpaces(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for _, r := range text {
		if r == ' ' {
			if !inRun {
				b.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}
