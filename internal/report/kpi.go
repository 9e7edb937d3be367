package report

import (
	"math"

	"ankadash/internal/model"
)

// KPIValues holds the numeric inputs for the four dashboard KPI cards.
// Deltas are month-over-month percentage changes rounded to the nearest
// integer, or 0 whenever no comparison applies. Filtered distinguishes
// the two KPI modes: trend (last vs previous month) and period
// aggregate (totals within the selected month, no delta).
type KPIValues struct {
	ActiveClients int
	TotalClients  int
	ActiveRatio   int // active/total × 100, 0 when there are no clients

	TotalInvested float64
	CustodyDelta  int

	Inflow      float64 // latest month's inflow, or the period total
	InflowDelta int

	Net      float64
	NetDelta int

	Filtered bool
}

// TrendKPIs compares the latest aggregated month against the previous
// one. Guards: custody requires a strictly positive previous point,
// inflow a positive one, net a non-zero one; a failed guard reports 0.
func TrendKPIs(clients []model.Client, custody []model.CustodyPoint, flow []model.FlowPoint, totals MovementTotals, totalInvested float64) KPIValues {
	v := KPIValues{
		TotalInvested: totalInvested,
		Net:           totals.Net,
	}
	v.ActiveClients, v.TotalClients, v.ActiveRatio = activeRatio(clients)

	if n := len(custody); n > 0 {
		last := custody[n-1].Value
		prev := last
		if n > 1 {
			prev = custody[n-2].Value
		}
		if prev > 0 {
			v.CustodyDelta = roundPercent((last - prev) / prev * 100)
		}
	}

	if n := len(flow); n > 0 {
		last := flow[n-1]
		v.Inflow = last.Inflow
		lastNet := last.Inflow - last.Outflow
		prevInflow := last.Inflow
		prevNet := lastNet
		if n > 1 {
			prevInflow = flow[n-2].Inflow
			prevNet = flow[n-2].Inflow - flow[n-2].Outflow
		}
		if prevInflow > 0 {
			v.InflowDelta = roundPercent((last.Inflow - prevInflow) / prevInflow * 100)
		}
		if prevNet != 0 {
			v.NetDelta = roundPercent((lastNet - prevNet) / math.Abs(prevNet) * 100)
		}
	}

	return v
}

// PeriodKPIs reports aggregate totals for a single filtered period.
// A month filter makes month-over-month deltas meaningless, so every
// delta is exactly 0. This is a deliberate mode switch, not a missing
// computation: filtered KPIs describe one period, not a trend.
func PeriodKPIs(clients []model.Client, totals MovementTotals, totalInvested float64) KPIValues {
	v := KPIValues{
		TotalInvested: totalInvested,
		Inflow:        totals.Deposits,
		Net:           totals.Net,
		Filtered:      true,
	}
	v.ActiveClients, v.TotalClients, v.ActiveRatio = activeRatio(clients)
	return v
}

// ComputeKPIs picks the KPI mode from the month filter and runs the
// matching aggregations over the already-filtered record sets.
func ComputeKPIs(clients []model.Client, allocs []model.Allocation, movs []model.Movement, monthFilter string) KPIValues {
	totals := SummarizeMovements(movs)
	invested := TotalInvested(allocs)
	if monthFilter != "" {
		return PeriodKPIs(clients, totals, invested)
	}
	return TrendKPIs(clients, CustodySeries(allocs), FlowSeries(movs), totals, invested)
}

func activeRatio(clients []model.Client) (active, total, ratio int) {
	total = len(clients)
	for _, c := range clients {
		if c.IsActive {
			active++
		}
	}
	if total > 0 {
		ratio = roundPercent(float64(active) / float64(total) * 100)
	}
	return active, total, ratio
}

func roundPercent(pct float64) int {
	return int(math.Round(pct))
}
