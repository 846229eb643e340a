package chart

import (
	"fmt"
	"time"
)

// Weekday and month labels, in the order charts display them. Weeks start on
// Monday.
var (
	weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthNames   = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// Weekdays returns the weekday labels in display order.
func Weekdays() []string {
	return weekdayNames[:]
}

// Months returns the month labels in display order.
func Months() []string {
	return monthNames[:]
}

// weekdayIndex maps time.Weekday (Sunday = 0) to a Monday-start index.
func weekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// Aggregator accumulates records into the bucket counts of one chart type.
// Every accepted record contributes to exactly one bucket; records excluded
// by the merge filter are never counted.
type Aggregator struct {
	typ           Type
	excludeMerges bool
	dataset       *Dataset
	tickets       map[string]map[string]struct{}
	accepted      int
}

// NewAggregator creates an aggregator for a chart type. When excludeMerges is
// set, merge commits are skipped before any bucketing.
func NewAggregator(typ Type, excludeMerges bool) *Aggregator {
	return &Aggregator{
		typ:           typ,
		excludeMerges: excludeMerges,
		dataset:       NewDataset(),
		tickets:       make(map[string]map[string]struct{}),
	}
}

// AddCommit buckets one commit by the calendar field of the chart type. The
// timestamp must already carry the author's timezone offset; bucketing uses
// its wall-clock fields as-is.
func (a *Aggregator) AddCommit(ts time.Time, author string, isMerge bool) {
	if a.excludeMerges && isMerge {
		return
	}

	switch a.typ {
	case Authors:
		a.dataset.Add(author)
	case CommitsHourDay:
		a.dataset.Add(fmt.Sprintf("%02d", ts.Hour()))
	case CommitsHourWeek:
		a.dataset.Add(hourWeekKey(weekdayIndex(ts.Weekday()), ts.Hour()))
	case CommitsDay:
		a.dataset.Add(fmt.Sprintf("%02d", ts.Day()))
	case CommitsDayWeek:
		a.dataset.Add(weekdayNames[weekdayIndex(ts.Weekday())])
	case CommitsMonth:
		a.dataset.Add(monthNames[ts.Month()-1])
	case CommitsYear:
		a.dataset.Add(fmt.Sprintf("%04d", ts.Year()))
	case CommitsYearMonth:
		a.dataset.Add(yearMonthKey(ts.Year(), int(ts.Month())))
	case TicketsAuthor, CommitsVersion, Files:
		// Not commit-driven chart types: nothing bucketed, nothing
		// accepted.
		return
	default:
		return
	}

	a.accepted++
}

// AddFile buckets one file-change record by its extension bucket.
func (a *Aggregator) AddFile(ext string) {
	a.dataset.Add(ext)
	a.accepted++
}

// AddTicket records one ticket reference for an author. Ticket IDs are
// deduplicated per author: ten commits closing #42 count a single ticket.
func (a *Aggregator) AddTicket(author, ticket string) {
	set, ok := a.tickets[author]
	if !ok {
		set = make(map[string]struct{})
		a.tickets[author] = set
	}

	if _, seen := set[ticket]; seen {
		return
	}

	set[ticket] = struct{}{}
	a.dataset.Add(author)
	a.accepted++
}

// AddVersion records the commit count of one tag range. Tags arrive in
// chronological order and keep that order in the dataset.
func (a *Aggregator) AddVersion(tag string, commits int) {
	a.dataset.AddN(tag, commits)
	a.accepted += commits
}

// Accepted returns the number of records counted so far.
func (a *Aggregator) Accepted() int {
	return a.accepted
}

// Dataset returns the finalized bucket counts.
func (a *Aggregator) Dataset() *Dataset {
	return a.dataset
}

func hourWeekKey(dayIdx, hour int) string {
	return fmt.Sprintf("%s %02d", weekdayNames[dayIdx], hour)
}

func yearMonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
