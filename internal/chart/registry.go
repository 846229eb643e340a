// Package chart aggregates parsed git records into labeled series for
// rendering. Each chart type is a tagged variant carrying its render kind,
// bucket domain and input source; all behavior is dispatched through
// exhaustive switches on the type, never through string lookups.
package chart

import "sort"

// Kind selects the renderer used for a chart type.
type Kind int

// Render kinds.
const (
	KindPie Kind = iota
	KindBar
	KindDot
)

func (k Kind) String() string {
	switch k {
	case KindPie:
		return "pie"
	case KindBar:
		return "bar"
	case KindDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Domain describes how the bucket set of a chart type is completed and
// ordered when the series is built.
type Domain int

// Bucket domains.
const (
	// DomainFixed emits the full known bucket set in natural order,
	// zero-filled (hours, weekdays, months, days of month).
	DomainFixed Domain = iota
	// DomainTimeline emits every bucket between the smallest and largest
	// observed key, filling gaps with zero (year-month).
	DomainTimeline
	// DomainSparse emits only occurring buckets, sorted ascending by key
	// (years).
	DomainSparse
	// DomainRanked emits only occurring buckets, sorted descending by
	// count, optionally capped and folded into an "others" bucket.
	DomainRanked
	// DomainOrdered emits only occurring buckets in insertion order,
	// optionally capped (versions follow tag order).
	DomainOrdered
)

// Source describes which input lines the reader must supply for a chart type.
type Source int

// Input sources.
const (
	SourceCommits Source = iota
	SourceTickets
	SourceFiles
	SourceTags
)

// Type identifies one supported chart aggregation.
type Type int

// Supported chart types.
const (
	Authors Type = iota
	TicketsAuthor
	CommitsHourDay
	CommitsHourWeek
	CommitsDay
	CommitsDayWeek
	CommitsMonth
	CommitsYear
	CommitsYearMonth
	CommitsVersion
	Files

	numTypes
)

// Info describes the behavior of a chart type.
type Info struct {
	Name          string
	Title         string
	Kind          Kind
	Domain        Domain
	Source        Source
	LabelRotation int // x-axis label rotation for bar charts, degrees
	MaxXLabels    int // thin x-axis labels beyond this count, 0 = never
}

// Registry maps chart names to their typed behavior. It is built once at
// startup and passed by reference; nothing in this package holds global
// state across runs.
type Registry struct {
	infos  [numTypes]Info
	byName map[string]Type
}

// NewRegistry builds the chart-type registry.
func NewRegistry() *Registry {
	reg := &Registry{byName: make(map[string]Type, numTypes)}

	for typ := Type(0); typ < numTypes; typ++ {
		reg.infos[typ] = infoFor(typ)
		reg.byName[reg.infos[typ].Name] = typ
	}

	return reg
}

func infoFor(typ Type) Info {
	switch typ {
	case Authors:
		return Info{Name: "authors", Title: "Authors", Kind: KindPie, Domain: DomainRanked, Source: SourceCommits}
	case TicketsAuthor:
		return Info{Name: "tickets_author", Title: "Tickets processed by author", Kind: KindPie, Domain: DomainRanked, Source: SourceTickets}
	case CommitsHourDay:
		return Info{Name: "commits_hour_day", Title: "Commits by hour of day", Kind: KindBar, Domain: DomainFixed, Source: SourceCommits}
	case CommitsHourWeek:
		return Info{Name: "commits_hour_week", Title: "Commits by hour of week", Kind: KindDot, Domain: DomainFixed, Source: SourceCommits}
	case CommitsDay:
		return Info{Name: "commits_day", Title: "Commits by day of month", Kind: KindBar, Domain: DomainFixed, Source: SourceCommits}
	case CommitsDayWeek:
		return Info{Name: "commits_day_week", Title: "Commits by day of week", Kind: KindBar, Domain: DomainFixed, Source: SourceCommits}
	case CommitsMonth:
		return Info{Name: "commits_month", Title: "Commits by month of year", Kind: KindBar, Domain: DomainFixed, Source: SourceCommits}
	case CommitsYear:
		return Info{Name: "commits_year", Title: "Commits by year", Kind: KindBar, Domain: DomainSparse, Source: SourceCommits}
	case CommitsYearMonth:
		return Info{Name: "commits_year_month", Title: "Commits by year/month", Kind: KindBar, Domain: DomainTimeline, Source: SourceCommits, LabelRotation: 45, MaxXLabels: 30}
	case CommitsVersion:
		return Info{Name: "commits_version", Title: "Commits by version", Kind: KindBar, Domain: DomainOrdered, Source: SourceTags, LabelRotation: 90}
	case Files:
		return Info{Name: "files", Title: "Files by extension", Kind: KindPie, Domain: DomainRanked, Source: SourceFiles}
	default:
		panic("chart: unknown type")
	}
}

// Lookup resolves a chart name to its type. The historical "files_type"
// spelling is accepted as an alias for "files".
func (r *Registry) Lookup(name string) (Type, bool) {
	if name == "files_type" {
		name = "files"
	}

	typ, ok := r.byName[name]

	return typ, ok
}

// Info returns the behavior description of a chart type.
func (r *Registry) Info(typ Type) Info {
	return r.infos[typ]
}

// Names returns all chart names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, numTypes)
	for _, info := range r.infos {
		names = append(names, info.Name)
	}

	sort.Strings(names)

	return names
}
