// Package gitlog parses the tab-separated lines emitted by the git log
// formats this tool asks for. Parsing is a single forward pass; a malformed
// line is reported as an error and skipped by the caller, never fatal.
package gitlog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldSep separates positional fields on a log line.
const FieldSep = "\t"

// NoExtension is the reserved bucket for paths without an extension.
const NoExtension = "none"

// ErrBadLine reports a line that does not match the expected field layout.
var ErrBadLine = errors.New("malformed log line")

const (
	commitLineFields = 3
	ticketLineFields = 2
	offsetLen        = 5 // ±hhmm
	minutesPerHour   = 60
	secondsPerMinute = 60
)

// CommitRecord is one parsed commit line.
//
// The wire format is "<parents>\t<epoch> <±hhmm>\t<author>": the leading
// parents field marks merges (more than one hash), the timestamp is Unix
// epoch seconds with the author's numeric timezone offset, and the author
// name is free text.
type CommitRecord struct {
	Time    time.Time
	Author  string
	IsMerge bool
}

// TicketRecord is one ticket closure event extracted from a commit subject.
type TicketRecord struct {
	Author string
	Ticket string
}

// ParseCommit parses a commit line. The returned timestamp carries the
// commit's timezone offset so that calendar bucketing uses the author's
// local wall clock.
func ParseCommit(line string) (CommitRecord, error) {
	parts := strings.Split(line, FieldSep)
	if len(parts) != commitLineFields {
		return CommitRecord{}, fmt.Errorf("%w: want %d fields, got %d", ErrBadLine, commitLineFields, len(parts))
	}

	ts, err := parseTimestamp(parts[1])
	if err != nil {
		return CommitRecord{}, err
	}

	return CommitRecord{
		Time:    ts,
		Author:  strings.ToValidUTF8(parts[2], "�"),
		IsMerge: len(strings.Fields(parts[0])) > 1,
	}, nil
}

// parseTimestamp parses "<epoch> <±hhmm>" into a time carrying the offset.
func parseTimestamp(s string) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrBadLine, s)
	}

	epoch, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad epoch %q", ErrBadLine, fields[0])
	}

	offset, err := parseOffset(fields[1])
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(epoch, 0).In(time.FixedZone(fields[1], offset)), nil
}

// parseOffset converts a numeric timezone offset like "+0130" or "-0700"
// into seconds east of UTC.
func parseOffset(s string) (int, error) {
	if len(s) != offsetLen || (s[0] != '+' && s[0] != '-') {
		return 0, fmt.Errorf("%w: bad timezone offset %q", ErrBadLine, s)
	}

	hours, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, fmt.Errorf("%w: bad timezone offset %q", ErrBadLine, s)
	}

	minutes, err := strconv.Atoi(s[3:5])
	if err != nil {
		return 0, fmt.Errorf("%w: bad timezone offset %q", ErrBadLine, s)
	}

	seconds := (hours*minutesPerHour + minutes) * secondsPerMinute
	if s[0] == '-' {
		seconds = -seconds
	}

	return seconds, nil
}

// ParseTicket parses an "<author>\t<subject>" line and matches the subject
// against the issues regex. The first capture group is the ticket ID; ok is
// false when the subject references no ticket.
func ParseTicket(line string, issuesRegex *regexp.Regexp) (rec TicketRecord, ok bool, err error) {
	parts := strings.SplitN(line, FieldSep, ticketLineFields)
	if len(parts) != ticketLineFields {
		return TicketRecord{}, false, fmt.Errorf("%w: want %d fields, got %d", ErrBadLine, ticketLineFields, len(parts))
	}

	match := issuesRegex.FindStringSubmatch(parts[1])
	if match == nil || len(match) < 2 {
		return TicketRecord{}, false, nil
	}

	return TicketRecord{
		Author: strings.ToValidUTF8(parts[0], "�"),
		Ticket: match[1],
	}, true, nil
}

// ParsePaths splits a file line into its paths. A line may carry several
// tab-separated paths; each contributes independently.
func ParsePaths(line string) []string {
	var paths []string

	for _, p := range strings.Split(line, FieldSep) {
		if p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}

// Ext returns the extension bucket of a path: the part after the last dot of
// the base name, case-sensitive and without the dot. Paths with no dot, and
// dotfiles like ".gitignore", map to the NoExtension bucket.
func Ext(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}

	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || dot == len(base)-1 {
		return NoExtension
	}

	return base[dot+1:]
}

var nonDigits = regexp.MustCompile(`[^0-9]+`)

// NormalizeTag reduces a tag name to its digits, separated by periods:
// "v0.3.0" and "release-0-3-0" both become "0.3.0". A tag without digits
// normalizes to itself.
func NormalizeTag(tag string) string {
	stripped := strings.TrimSpace(nonDigits.ReplaceAllString(tag, " "))
	if stripped == "" {
		return tag
	}

	return strings.ReplaceAll(stripped, " ", ".")
}
