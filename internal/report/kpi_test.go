package report

import (
	"testing"

	"ankadash/internal/model"
)

func clientsFixture() []model.Client {
	return []model.Client{
		{ID: 1, Name: "Ana", IsActive: true},
		{ID: 2, Name: "Bruno", IsActive: true},
		{ID: 3, Name: "Clara", IsActive: false},
	}
}

func TestTrendKPIs_CustodyDelta(t *testing.T) {
	custody := []model.CustodyPoint{
		{Key: "2024-01", Value: 100},
		{Key: "2024-02", Value: 120},
	}

	v := TrendKPIs(clientsFixture(), custody, nil, MovementTotals{}, 120)
	if v.CustodyDelta != 20 {
		t.Errorf("CustodyDelta = %d, want 20", v.CustodyDelta)
	}
	if v.ActiveClients != 2 || v.TotalClients != 3 {
		t.Errorf("clients = %d/%d, want 2/3", v.ActiveClients, v.TotalClients)
	}
	if v.ActiveRatio != 67 {
		t.Errorf("ActiveRatio = %d, want 67", v.ActiveRatio)
	}
}

func TestTrendKPIs_DeltaGuards(t *testing.T) {
	tests := []struct {
		name    string
		custody []model.CustodyPoint
		flow    []model.FlowPoint
		check   func(t *testing.T, v KPIValues)
	}{
		{
			name:    "zero previous custody reports no delta",
			custody: []model.CustodyPoint{{Value: 0}, {Value: 50}},
			check: func(t *testing.T, v KPIValues) {
				if v.CustodyDelta != 0 {
					t.Errorf("CustodyDelta = %d, want 0", v.CustodyDelta)
				}
			},
		},
		{
			name:    "single custody point compares against itself",
			custody: []model.CustodyPoint{{Value: 80}},
			check: func(t *testing.T, v KPIValues) {
				if v.CustodyDelta != 0 {
					t.Errorf("CustodyDelta = %d, want 0", v.CustodyDelta)
				}
			},
		},
		{
			name: "zero previous inflow reports no delta",
			flow: []model.FlowPoint{{Inflow: 0, Outflow: 10}, {Inflow: 200}},
			check: func(t *testing.T, v KPIValues) {
				if v.InflowDelta != 0 {
					t.Errorf("InflowDelta = %d, want 0", v.InflowDelta)
				}
			},
		},
		{
			name: "negative previous net uses magnitude",
			flow: []model.FlowPoint{{Inflow: 0, Outflow: 50}, {Inflow: 50, Outflow: 0}},
			check: func(t *testing.T, v KPIValues) {
				// (50 - (-50)) / |-50| = +200%
				if v.NetDelta != 200 {
					t.Errorf("NetDelta = %d, want 200", v.NetDelta)
				}
			},
		},
		{
			name: "zero previous net reports no delta",
			flow: []model.FlowPoint{{Inflow: 10, Outflow: 10}, {Inflow: 99}},
			check: func(t *testing.T, v KPIValues) {
				if v.NetDelta != 0 {
					t.Errorf("NetDelta = %d, want 0", v.NetDelta)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, TrendKPIs(nil, tt.custody, tt.flow, MovementTotals{}, 0))
		})
	}
}

func TestTrendKPIs_InflowIsLatestMonth(t *testing.T) {
	flow := []model.FlowPoint{
		{Inflow: 100, Outflow: 0},
		{Inflow: 250, Outflow: 50},
	}

	v := TrendKPIs(nil, nil, flow, MovementTotals{Net: 300}, 0)
	if v.Inflow != 250 {
		t.Errorf("Inflow = %v, want 250 (latest month)", v.Inflow)
	}
	if v.InflowDelta != 150 {
		t.Errorf("InflowDelta = %d, want 150", v.InflowDelta)
	}
}

func TestPeriodKPIs_NoDeltas(t *testing.T) {
	totals := MovementTotals{Deposits: 100, Withdrawals: 40, Net: 60}

	v := PeriodKPIs(clientsFixture(), totals, 500)
	if !v.Filtered {
		t.Error("Filtered = false, want true")
	}
	if v.Inflow != 100 {
		t.Errorf("Inflow = %v, want 100 (period total)", v.Inflow)
	}
	if v.Net != 60 {
		t.Errorf("Net = %v, want 60", v.Net)
	}
	if v.CustodyDelta != 0 || v.InflowDelta != 0 || v.NetDelta != 0 {
		t.Errorf("deltas = %d/%d/%d, want all 0 in period mode",
			v.CustodyDelta, v.InflowDelta, v.NetDelta)
	}
}

func TestComputeKPIs_ModeSwitch(t *testing.T) {
	movs := []model.Movement{
		mov(1, model.MovementDeposit, "100", "2024-01-05"),
		mov(2, model.MovementWithdrawal, "40", "2024-01-20"),
	}

	filtered := ComputeKPIs(nil, nil, FilterMovements(movs, "01"), "01")
	if !filtered.Filtered {
		t.Error("expected period mode with a month filter")
	}
	if filtered.Net != 60 {
		t.Errorf("Net = %v, want 60", filtered.Net)
	}
	if filtered.NetDelta != 0 {
		t.Errorf("NetDelta = %d, want exactly 0 when filtered", filtered.NetDelta)
	}

	trend := ComputeKPIs(nil, nil, movs, "")
	if trend.Filtered {
		t.Error("expected trend mode without a filter")
	}
}

func TestComputeKPIs_InvestedIncludesUndatedAllocations(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "2", "10", "2024-01-01"),
		alloc(2, 1, 1, "1", "5", ""), // no date, still invested
	}

	v := ComputeKPIs(nil, allocs, nil, "")
	if v.TotalInvested != 25 {
		t.Errorf("TotalInvested = %v, want 25", v.TotalInvested)
	}
}
