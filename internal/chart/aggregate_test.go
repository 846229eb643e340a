package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02 15:04:05 -0700", value)
	require.NoError(t, err)

	return ts
}

func TestAggregator_TotalEqualsAccepted(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(CommitsHourDay, false)

	for i := 0; i < 10; i++ {
		agg.AddCommit(mustTime(t, "2020-03-02 14:30:00 +0000"), "alice", false)
	}

	assert.Equal(t, 10, agg.Accepted())
	assert.Equal(t, 10, agg.Dataset().Total())
}

func TestAggregator_BucketsByLocalHour(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(CommitsHourDay, false)

	// 17:27 UTC with a +0100 offset is 18:27 local.
	agg.AddCommit(mustTime(t, "2013-03-15 18:27:55 +0100"), "alice", false)

	assert.Equal(t, 1, agg.Dataset().Count("18"))
	assert.Equal(t, 0, agg.Dataset().Count("17"))
}

func TestAggregator_WeekdayStartsMonday(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(CommitsDayWeek, false)

	agg.AddCommit(mustTime(t, "2020-03-02 10:00:00 +0000"), "a", false) // Monday
	agg.AddCommit(mustTime(t, "2020-03-08 10:00:00 +0000"), "a", false) // Sunday

	assert.Equal(t, 1, agg.Dataset().Count("Mon"))
	assert.Equal(t, 1, agg.Dataset().Count("Sun"))
}

func TestAggregator_MergeExclusionIdempotent(t *testing.T) {
	t.Parallel()

	run := func() *Dataset {
		agg := NewAggregator(CommitsYear, true)
		agg.AddCommit(mustTime(t, "2020-01-01 10:00:00 +0000"), "a", false)
		agg.AddCommit(mustTime(t, "2020-01-02 10:00:00 +0000"), "a", true)
		agg.AddCommit(mustTime(t, "2020-01-03 10:00:00 +0000"), "a", true)

		return agg.Dataset()
	}

	first := run()
	second := run()

	assert.Equal(t, 1, first.Total())
	assert.Equal(t, first.Total(), second.Total())
	assert.Equal(t, first.Count("2020"), second.Count("2020"))
}

func TestAggregator_AuthorsCaseSensitive(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(Authors, false)

	agg.AddCommit(mustTime(t, "2020-01-01 10:00:00 +0000"), "Alice", false)
	agg.AddCommit(mustTime(t, "2020-01-01 11:00:00 +0000"), "alice", false)
	agg.AddCommit(mustTime(t, "2020-01-01 12:00:00 +0000"), "alice ", false)

	ds := agg.Dataset()
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 1, ds.Count("Alice"))
	assert.Equal(t, 1, ds.Count("alice"))
	assert.Equal(t, 1, ds.Count("alice "))
}

func TestAggregator_TicketsDeduplicatedPerAuthor(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(TicketsAuthor, false)

	agg.AddTicket("alice", "42")
	agg.AddTicket("alice", "42")
	agg.AddTicket("alice", "7")
	agg.AddTicket("bob", "42")

	ds := agg.Dataset()
	assert.Equal(t, 2, ds.Count("alice"))
	assert.Equal(t, 1, ds.Count("bob"))
	assert.Equal(t, 3, agg.Accepted())
}

func TestAggregator_HourWeekCompositeKey(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(CommitsHourWeek, false)

	agg.AddCommit(mustTime(t, "2020-03-06 18:27:55 +0000"), "a", false) // Friday

	assert.Equal(t, 1, agg.Dataset().Count("Fri 18"))
}

func TestAggregator_CommitIgnoredForNonCommitTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TicketsAuthor, CommitsVersion, Files} {
		agg := NewAggregator(typ, false)

		agg.AddCommit(mustTime(t, "2020-03-02 14:30:00 +0000"), "alice", false)

		assert.Zero(t, agg.Accepted())
		assert.Zero(t, agg.Dataset().Total())
	}
}

func TestAggregator_FileExtensions(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(Files, false)

	agg.AddFile("cpp")
	agg.AddFile("cpp")
	agg.AddFile("none")

	ds := agg.Dataset()
	assert.Equal(t, 2, ds.Count("cpp"))
	assert.Equal(t, 1, ds.Count("none"))
	assert.Equal(t, 3, agg.Accepted())
}

func TestAggregator_VersionsKeepTagOrder(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(CommitsVersion, false)

	agg.AddVersion("0.1.0", 12)
	agg.AddVersion("0.2.0", 3)
	agg.AddVersion("1.0.0", 25)

	assert.Equal(t, []string{"0.1.0", "0.2.0", "1.0.0"}, agg.Dataset().Keys())
	assert.Equal(t, 40, agg.Dataset().Total())
}

func TestDataset_InsertionOrderAndCounts(t *testing.T) {
	t.Parallel()

	ds := NewDataset()
	ds.Add("b")
	ds.Add("a")
	ds.Add("b")
	ds.AddN("c", 5)

	assert.Equal(t, []string{"b", "a", "c"}, ds.Keys())
	assert.Equal(t, 2, ds.Count("b"))
	assert.Equal(t, 0, ds.Count("missing"))
	assert.Equal(t, 8, ds.Total())
	assert.Equal(t, 3, ds.Len())
}

func TestRegistry_LookupAndAlias(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	typ, ok := registry.Lookup("files_type")
	require.True(t, ok)
	assert.Equal(t, Files, typ)

	_, ok = registry.Lookup("bogus")
	assert.False(t, ok)

	assert.Len(t, registry.Names(), int(numTypes))
}
