package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one labeled value of a finalized series.
type Entry struct {
	Label string
	Value int
}

// Series is the ordered label/value sequence handed to the renderer.
type Series []Entry

// BuildOptions control series completion for ranked charts.
type BuildOptions struct {
	// MaxItems caps ranked charts to the N largest buckets. 0 = unlimited.
	MaxItems int
	// FoldOthers folds buckets beyond the cap into a single "N others"
	// entry instead of dropping them.
	FoldOthers bool
	// SortMax re-sorts a bar series by value and keeps the top |N|
	// entries; a negative value reverses the order. 0 = off.
	SortMax int
}

// BuildSeries converts a finalized dataset into an ordered series, applying
// the completion and ordering rule of the chart type.
func BuildSeries(typ Type, dataset *Dataset, opt BuildOptions) Series {
	var series Series

	switch infoFor(typ).Domain {
	case DomainFixed:
		series = fixedSeries(typ, dataset)
	case DomainTimeline:
		series = timelineSeries(dataset)
	case DomainSparse:
		series = sparseSeries(dataset)
	case DomainRanked:
		series = rankedSeries(dataset, opt)
	case DomainOrdered:
		series = orderedSeries(dataset, opt)
	}

	if opt.SortMax != 0 && infoFor(typ).Kind == KindBar {
		series = sortMaxSeries(series, opt.SortMax)
	}

	return series
}

// fixedSeries emits the full fixed domain of the chart type in natural
// order, zero-filled.
func fixedSeries(typ Type, dataset *Dataset) Series {
	var domain []string

	switch typ {
	case CommitsHourDay:
		domain = hourDomain()
	case CommitsDay:
		domain = dayOfMonthDomain()
	case CommitsDayWeek:
		domain = weekdayNames[:]
	case CommitsMonth:
		domain = monthNames[:]
	case CommitsHourWeek:
		domain = hourWeekDomain()
	default:
		return nil
	}

	series := make(Series, len(domain))
	for i, key := range domain {
		series[i] = Entry{Label: key, Value: dataset.Count(key)}
	}

	return series
}

// timelineSeries emits every year-month between the smallest and largest
// observed key, filling gaps with zero.
func timelineSeries(dataset *Dataset) Series {
	if dataset.Len() == 0 {
		return nil
	}

	minKey, maxKey := "", ""

	for _, key := range dataset.Keys() {
		if minKey == "" || key < minKey {
			minKey = key
		}

		if key > maxKey {
			maxKey = key
		}
	}

	year, month := splitYearMonth(minKey)
	lastYear, lastMonth := splitYearMonth(maxKey)

	var series Series

	for year < lastYear || (year == lastYear && month <= lastMonth) {
		key := yearMonthKey(year, month)
		series = append(series, Entry{Label: key, Value: dataset.Count(key)})

		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return series
}

// sparseSeries emits occurring buckets sorted ascending by key.
func sparseSeries(dataset *Dataset) Series {
	keys := append([]string(nil), dataset.Keys()...)
	sort.Strings(keys)

	series := make(Series, len(keys))
	for i, key := range keys {
		series[i] = Entry{Label: key, Value: dataset.Count(key)}
	}

	return series
}

// rankedSeries emits occurring buckets sorted descending by count, capped to
// MaxItems. The remainder is folded into an "N others" entry when FoldOthers
// is set, dropped otherwise.
func rankedSeries(dataset *Dataset, opt BuildOptions) Series {
	keys := append([]string(nil), dataset.Keys()...)
	sort.SliceStable(keys, func(i, j int) bool {
		return dataset.Count(keys[i]) > dataset.Count(keys[j])
	})

	series := make(Series, 0, len(keys))

	for i, key := range keys {
		if opt.MaxItems > 0 && i >= opt.MaxItems {
			break
		}

		series = append(series, Entry{Label: key, Value: dataset.Count(key)})
	}

	if opt.FoldOthers && opt.MaxItems > 0 && len(keys) > opt.MaxItems {
		others := 0
		sum := 0

		for _, key := range keys[opt.MaxItems:] {
			others++
			sum += dataset.Count(key)
		}

		series = append(series, Entry{Label: fmt.Sprintf("%d others", others), Value: sum})
	}

	return series
}

// orderedSeries emits occurring buckets in insertion order, truncated to
// MaxItems when a cap is set.
func orderedSeries(dataset *Dataset, opt BuildOptions) Series {
	keys := dataset.Keys()
	if opt.MaxItems > 0 && len(keys) > opt.MaxItems {
		keys = keys[:opt.MaxItems]
	}

	series := make(Series, len(keys))
	for i, key := range keys {
		series[i] = Entry{Label: key, Value: dataset.Count(key)}
	}

	return series
}

// sortMaxSeries re-sorts a series by value. A positive n keeps the top n
// entries in ascending order; a negative n keeps the top |n| in descending
// order.
func sortMaxSeries(series Series, n int) Series {
	sorted := append(Series(nil), series...)

	descending := n < 0
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].Value > sorted[j].Value
		}

		return sorted[i].Value < sorted[j].Value
	})

	keep := n
	if keep < 0 {
		keep = -keep
	}

	if keep < len(sorted) {
		if descending {
			sorted = sorted[:keep]
		} else {
			sorted = sorted[len(sorted)-keep:]
		}
	}

	return sorted
}

func hourDomain() []string {
	hours := make([]string, 24)
	for h := range hours {
		hours[h] = fmt.Sprintf("%02d", h)
	}

	return hours
}

func dayOfMonthDomain() []string {
	days := make([]string, 31)
	for d := range days {
		days[d] = fmt.Sprintf("%02d", d+1)
	}

	return days
}

func hourWeekDomain() []string {
	domain := make([]string, 0, 7*24)

	for day := range weekdayNames {
		for hour := 0; hour < 24; hour++ {
			domain = append(domain, hourWeekKey(day, hour))
		}
	}

	return domain
}

func splitYearMonth(key string) (year, month int) {
	parts := strings.SplitN(key, "-", 2)
	year, _ = strconv.Atoi(parts[0])

	if len(parts) == 2 {
		month, _ = strconv.Atoi(parts[1])
	}

	return year, month
}
