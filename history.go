package histsearch

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// sentinel delimits history entries in the raw input stream. Entries may
// contain embedded newlines, so NUL is the only boundary byte.
const sentinel = 0x00

// EntryScanner decodes a NUL-delimited byte stream into history entries.
//
// Each entry is the bytes up to (and not including) the next sentinel byte.
// The final entry's sentinel is optional: end-of-stream acts as an implicit
// terminator. Chunks that are not valid UTF-8 are dropped rather than
// surfaced as garbled entries; the number of dropped chunks is available
// via Dropped.
//
// The scanner is forward-only. Wrap it in a ReplayBuffer when the sequence
// needs to be traversed more than once.
type EntryScanner struct {
	reader  *bufio.Reader
	dropped int
}

// NewEntryScanner creates a scanner reading NUL-delimited entries from r.
func NewEntryScanner(r io.Reader) *EntryScanner {
	return &EntryScanner{
		reader: bufio.NewReader(r),
	}
}

// Next returns the next decodable entry. The second return value is false
// once the underlying stream is exhausted (or fails), after which Next
// keeps returning ("", false).
func (s *EntryScanner) Next() (string, bool) {
	for {
		chunk, err := s.reader.ReadBytes(sentinel)
		if len(chunk) == 0 {
			// EOF with nothing read, or a read error: the sequence ends.
			return "", false
		}
		if chunk[len(chunk)-1] == sentinel {
			chunk = chunk[:len(chunk)-1]
		}
		if !utf8.Valid(chunk) {
			// Skip undecodable entries rather than returning wrong content.
			s.dropped++
			if err != nil {
				return "", false
			}
			continue
		}
		return string(chunk), true
	}
}

// Dropped returns the number of chunks skipped because they were not
// valid UTF-8.
func (s *EntryScanner) Dropped() int {
	return s.dropped
}
