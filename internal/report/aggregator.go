package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ankadash/internal/model"
)

// MixFallbackLabel is the placeholder slice emitted when no allocation
// contributes to the mix, so chart components always render something.
const MixFallbackLabel = "Sem dados"

// parseAmount parses a backend decimal string. ok=false marks the
// record as a zero contribution to be skipped, never an error.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// investedValue computes quantity × buy price for one allocation.
func investedValue(a model.Allocation) (decimal.Decimal, bool) {
	qty, ok := parseAmount(a.Quantity)
	if !ok {
		return decimal.Zero, false
	}
	price, ok := parseAmount(a.BuyPrice)
	if !ok {
		return decimal.Zero, false
	}
	return qty.Mul(price), true
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// sortedKeys returns the month keys of m in ascending order. Plain
// lexical sort is correct because keys are zero-padded YYYY-MM.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CustodySeries builds the cumulative invested-value series: per-month
// sums of quantity × buy price, then a running total in month order.
// Records with unparsable dates or numbers are silently dropped.
func CustodySeries(allocs []model.Allocation) []model.CustodyPoint {
	monthly := make(map[string]decimal.Decimal)
	for _, a := range allocs {
		key, ok := MonthKey(a.BuyDate)
		if !ok {
			continue
		}
		value, ok := investedValue(a)
		if !ok {
			continue
		}
		monthly[key] = monthly[key].Add(value)
	}

	running := decimal.Zero
	series := make([]model.CustodyPoint, 0, len(monthly))
	for _, key := range sortedKeys(monthly) {
		running = running.Add(monthly[key])
		series = append(series, model.CustodyPoint{
			Key:   key,
			Label: MonthLabel(key),
			Value: round2(running),
		})
	}
	return series
}

// FlowSeries builds the per-month cash flow series. Deposits accumulate
// into inflow, everything else into outflow. Not cumulative.
func FlowSeries(movs []model.Movement) []model.FlowPoint {
	type flows struct{ in, out decimal.Decimal }
	monthly := make(map[string]*flows)
	for _, m := range movs {
		key, ok := MonthKey(m.Date)
		if !ok {
			continue
		}
		amount, ok := parseAmount(m.Amount)
		if !ok {
			continue
		}
		f := monthly[key]
		if f == nil {
			f = &flows{}
			monthly[key] = f
		}
		if m.Type == model.MovementDeposit {
			f.in = f.in.Add(amount)
		} else {
			f.out = f.out.Add(amount)
		}
	}

	keys := make([]string, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	series := make([]model.FlowPoint, 0, len(keys))
	for _, key := range keys {
		f := monthly[key]
		series = append(series, model.FlowPoint{
			Key:     key,
			Label:   MonthLabel(key),
			Inflow:  round2(f.in),
			Outflow: round2(f.out),
		})
	}
	return series
}

// AllocationMix sums invested value per asset across the whole record
// set (not per month) and labels each slice "TICKER • Name", falling
// back to "Ativo {id}" when the asset lookup misses. An empty result
// degrades to a single placeholder slice so charts still render.
func AllocationMix(allocs []model.Allocation, assets []model.Asset) []model.AllocationSlice {
	assetsByID := make(map[int64]model.Asset, len(assets))
	for _, a := range assets {
		assetsByID[a.ID] = a
	}

	byAsset := make(map[int64]decimal.Decimal)
	for _, a := range allocs {
		value, ok := investedValue(a)
		if !ok {
			continue
		}
		byAsset[a.AssetID] = byAsset[a.AssetID].Add(value)
	}

	mix := make([]model.AllocationSlice, 0, len(byAsset))
	for id, value := range byAsset {
		name := fmt.Sprintf("Ativo %d", id)
		if asset, ok := assetsByID[id]; ok {
			name = fmt.Sprintf("%s • %s", asset.Ticker, asset.Name)
		}
		mix = append(mix, model.AllocationSlice{AssetID: id, Name: name, Value: round2(value)})
	}

	// Largest slice first; asset id breaks ties so reruns on the same
	// input produce identical output.
	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Value != mix[j].Value {
			return mix[i].Value > mix[j].Value
		}
		return mix[i].AssetID < mix[j].AssetID
	})

	if len(mix) == 0 {
		return []model.AllocationSlice{{Name: MixFallbackLabel, Value: 1}}
	}
	return mix
}

// ClientTotals sums invested value per client for the clients table.
func ClientTotals(allocs []model.Allocation) map[int64]float64 {
	totals := make(map[int64]decimal.Decimal)
	for _, a := range allocs {
		value, ok := investedValue(a)
		if !ok {
			continue
		}
		totals[a.ClientID] = totals[a.ClientID].Add(value)
	}
	out := make(map[int64]float64, len(totals))
	for id, d := range totals {
		out[id] = round2(d)
	}
	return out
}

// TotalInvested sums invested value across all allocations.
func TotalInvested(allocs []model.Allocation) float64 {
	total := decimal.Zero
	for _, a := range allocs {
		value, ok := investedValue(a)
		if !ok {
			continue
		}
		total = total.Add(value)
	}
	return round2(total)
}

// MovementTotals holds period-aggregate cash movement sums.
// Net follows the sign convention: deposits − withdrawals.
type MovementTotals struct {
	Deposits    float64
	Withdrawals float64
	Net         float64
}

// SummarizeMovements totals deposits, withdrawals, and net flow over
// the given (already filtered) movement set.
func SummarizeMovements(movs []model.Movement) MovementTotals {
	var deposits, withdrawals decimal.Decimal
	for _, m := range movs {
		amount, ok := parseAmount(m.Amount)
		if !ok {
			continue
		}
		if m.Type == model.MovementDeposit {
			deposits = deposits.Add(amount)
		} else {
			withdrawals = withdrawals.Add(amount)
		}
	}
	return MovementTotals{
		Deposits:    round2(deposits),
		Withdrawals: round2(withdrawals),
		Net:         round2(deposits.Sub(withdrawals)),
	}
}
