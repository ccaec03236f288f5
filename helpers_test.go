package histsearch

import (
	"testing"
)

func TestMatchEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entry    string
		query    string
		expected int
	}{
		{
			name:     "match at start",
			entry:    "foobar",
			query:    "foo",
			expected: 3,
		},
		{
			name:     "match in middle",
			entry:    "say foo now",
			query:    "foo",
			expected: 7,
		},
		{
			name:     "case insensitive",
			entry:    "Say FOO now",
			query:    "foo",
			expected: 7,
		},
		{
			name:     "no match",
			entry:    "bar",
			query:    "foo",
			expected: -1,
		},
		{
			name:     "empty query matches at start",
			entry:    "anything",
			query:    "",
			expected: 0,
		},
		{
			name:     "first occurrence wins",
			entry:    "foo foo",
			query:    "foo",
			expected: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := matchEnd(tt.entry, tt.query); got != tt.expected {
				t.Errorf("matchEnd(%q, %q) = %d, want %d", tt.entry, tt.query, got, tt.expected)
			}
		})
	}
}

func TestMatchSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		query    string
		expected []span
	}{
		{
			name:     "single occurrence",
			line:     "hello foo world",
			query:    "foo",
			expected: []span{{start: 6, end: 9}},
		},
		{
			name:     "multiple occurrences",
			line:     "foo bar foo",
			query:    "foo",
			expected: []span{{start: 0, end: 3}, {start: 8, end: 11}},
		},
		{
			name:     "mixed case occurrences",
			line:     "Foo bar FOO",
			query:    "foo",
			expected: []span{{start: 0, end: 3}, {start: 8, end: 11}},
		},
		{
			name:     "no occurrences",
			line:     "bar baz",
			query:    "foo",
			expected: nil,
		},
		{
			name:     "empty query yields no spans",
			line:     "anything",
			query:    "",
			expected: nil,
		},
		{
			name:     "non-overlapping",
			line:     "aaa",
			query:    "aa",
			expected: []span{{start: 0, end: 2}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := matchSpans(tt.line, tt.query)
			if len(got) != len(tt.expected) {
				t.Fatalf("matchSpans(%q, %q) = %v, want %v", tt.line, tt.query, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "ascii",
			input:    "hello",
			expected: 5,
		},
		{
			name:     "empty",
			input:    "",
			expected: 0,
		},
		{
			name:     "wide characters count double",
			input:    "こんにちは",
			expected: 10,
		},
		{
			name:     "mixed width",
			input:    "ls 日本語",
			expected: 9,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := displayWidth(tt.input); got != tt.expected {
				t.Errorf("displayWidth(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCeilDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{name: "exact multiple occupies exactly a/b rows", a: 160, b: 80, expected: 2},
		{name: "one over rounds up", a: 81, b: 80, expected: 2},
		{name: "under one", a: 10, b: 80, expected: 1},
		{name: "zero width", a: 0, b: 80, expected: 0},
		{name: "zero divisor guarded", a: 10, b: 0, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ceilDiv(tt.a, tt.b); got != tt.expected {
				t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
