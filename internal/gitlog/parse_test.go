package gitlog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommit(t *testing.T) {
	t.Parallel()

	// 2013-03-15 17:27:55 UTC; +0100 puts local wall clock at 18:27.
	rec, err := ParseCommit("abc123\t1363368475 +0100\tJohn Doe")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", rec.Author)
	assert.False(t, rec.IsMerge)
	assert.Equal(t, 18, rec.Time.Hour())
	assert.Equal(t, 2013, rec.Time.Year())
}

func TestParseCommit_MergeMarker(t *testing.T) {
	t.Parallel()

	rec, err := ParseCommit("abc123 def456\t1363368475 +0100\tJohn Doe")
	require.NoError(t, err)
	assert.True(t, rec.IsMerge)
}

func TestParseCommit_NegativeOffset(t *testing.T) {
	t.Parallel()

	// 1577880000 is 2020-01-01 12:00:00 UTC; -0730 puts it at 04:30 local.
	rec, err := ParseCommit("abc\t1577880000 -0730\tJane")
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Time.Hour())
	assert.Equal(t, 30, rec.Time.Minute())
}

func TestParseCommit_InvalidUTF8Replaced(t *testing.T) {
	t.Parallel()

	rec, err := ParseCommit("abc\t1363368475 +0000\tJo\xffhn")
	require.NoError(t, err)
	assert.True(t, len(rec.Author) > 0)
	assert.NotContains(t, rec.Author, "\xff")
}

func TestParseCommit_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "abc\t1363368475 +0100"},
		{"too many fields", "abc\t1\t2\t3"},
		{"bad epoch", "abc\tnope +0100\tJohn"},
		{"bad offset", "abc\t1363368475 UTC\tJohn"},
		{"missing offset", "abc\t1363368475\tJohn"},
		{"empty line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCommit(tt.line)
			require.ErrorIs(t, err, ErrBadLine)
		})
	}
}

func TestParseTicket(t *testing.T) {
	t.Parallel()

	issuesRegex := regexp.MustCompile(`(?:close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved) *#([0-9]+)`)

	rec, ok, err := ParseTicket("John Doe\tfixes #1234: handle empty input", issuesRegex)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "John Doe", rec.Author)
	assert.Equal(t, "1234", rec.Ticket)
}

func TestParseTicket_NoReference(t *testing.T) {
	t.Parallel()

	issuesRegex := regexp.MustCompile(`closes #([0-9]+)`)

	_, ok, err := ParseTicket("John Doe\trefactor parser", issuesRegex)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseTicket_Malformed(t *testing.T) {
	t.Parallel()

	issuesRegex := regexp.MustCompile(`closes #([0-9]+)`)

	_, _, err := ParseTicket("no separator here", issuesRegex)
	require.ErrorIs(t, err, ErrBadLine)
}

func TestParsePaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a.go", "b/c.txt"}, ParsePaths("a.go\tb/c.txt"))
	assert.Equal(t, []string{"single"}, ParsePaths("single"))
	assert.Nil(t, ParsePaths(""))
}

func TestExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"main.cpp", "cpp"},
		{"Makefile", NoExtension},
		{"src/lib/parser.go", "go"},
		{".gitignore", NoExtension},
		{"dir.v1/README", NoExtension},
		{"photo.JPG", "JPG"},
		{"archive.tar.gz", "gz"},
		{"trailing.", NoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Ext(tt.path))
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"v0.3.0", "0.3.0"},
		{"release-0-0-1", "0.0.1"},
		{"1.5", "1.5"},
		{"nodigits", "nodigits"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizeTag(tt.tag))
		})
	}
}
