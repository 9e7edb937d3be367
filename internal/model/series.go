package model

import "time"

// CustodyPoint is one month of the cumulative invested-value series.
type CustodyPoint struct {
	Key   string  // canonical YYYY-MM month key
	Label string  // display label, e.g. "Jan/24"
	Value float64 // running total, rounded to 2 decimals
}

// FlowPoint is one month of cash movement, split by direction.
// Not cumulative.
type FlowPoint struct {
	Key     string
	Label   string
	Inflow  float64
	Outflow float64
}

// AllocationSlice is one asset's share of the invested-value mix.
type AllocationSlice struct {
	AssetID int64
	Name    string // "TICKER • Name", or a fallback label
	Value   float64
}

// KPI is a single dashboard indicator: a title, a display-ready value,
// and a percentage delta versus the previous comparable period
// (rounded to the nearest integer, 0 when no comparison applies).
type KPI struct {
	Title      string
	Value      string
	Difference int
}

// Snapshot bundles the four record sets the dashboard consumes.
// Stale marks data served from the local cache instead of the backend.
type Snapshot struct {
	Clients     []Client
	Assets      []Asset
	Allocations []Allocation
	Movements   []Movement
	FetchedAt   time.Time
	Stale       bool
}
