package report

import (
	"reflect"
	"testing"

	"ankadash/internal/model"
)

func alloc(id, clientID, assetID int64, qty, price, date string) model.Allocation {
	return model.Allocation{
		ID:       id,
		ClientID: clientID,
		AssetID:  assetID,
		Quantity: qty,
		BuyPrice: price,
		BuyDate:  date,
	}
}

func mov(id int64, typ model.MovementType, amount, date string) model.Movement {
	return model.Movement{ID: id, ClientID: 1, Type: typ, Amount: amount, Date: date}
}

func TestCustodySeries_Cumulative(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "2", "10", "2024-01-10"),
		alloc(2, 1, 2, "1", "5", "2024-02-15"),
	}

	got := CustodySeries(allocs)
	want := []model.CustodyPoint{
		{Key: "2024-01", Label: "Jan/24", Value: 20},
		{Key: "2024-02", Label: "Fev/24", Value: 25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CustodySeries = %+v, want %+v", got, want)
	}
}

func TestCustodySeries_SkipsBadRecords(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "abc", "10", "2024-01-10"), // bad quantity
		alloc(2, 1, 1, "2", "10", "not-a-date"),   // bad date
		alloc(3, 1, 1, "3", "10", "2024-03-01"),
	}

	got := CustodySeries(allocs)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (bad records dropped)", len(got))
	}
	if got[0].Value != 30 {
		t.Errorf("Value = %v, want 30", got[0].Value)
	}
}

func TestCustodySeries_Monotonic(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "1", "100", "2024-03-01"),
		alloc(2, 1, 1, "1", "50", "2024-01-01"),
		alloc(3, 1, 1, "1", "25", "2024-02-01"),
		alloc(4, 2, 2, "2", "10", "2023-12-25"),
	}

	got := CustodySeries(allocs)
	for i := 1; i < len(got); i++ {
		if got[i].Key <= got[i-1].Key {
			t.Errorf("keys out of order: %s before %s", got[i-1].Key, got[i].Key)
		}
		if got[i].Value < got[i-1].Value {
			t.Errorf("running total decreased: %v to %v", got[i-1].Value, got[i].Value)
		}
	}
}

func TestCustodySeries_Idempotent(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "2", "10.50", "2024-01-10"),
		alloc(2, 2, 2, "3", "7.33", "2024-02-01"),
	}

	first := CustodySeries(allocs)
	second := CustodySeries(allocs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reruns differ: %+v vs %+v", first, second)
	}
}

func TestFlowSeries_SplitsDepositsAndWithdrawals(t *testing.T) {
	movs := []model.Movement{
		mov(1, model.MovementDeposit, "100", "2024-01-05"),
		mov(2, model.MovementWithdrawal, "40", "2024-01-20"),
		mov(3, model.MovementDeposit, "60", "2024-02-01"),
	}

	got := FlowSeries(movs)
	want := []model.FlowPoint{
		{Key: "2024-01", Label: "Jan/24", Inflow: 100, Outflow: 40},
		{Key: "2024-02", Label: "Fev/24", Inflow: 60, Outflow: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlowSeries = %+v, want %+v", got, want)
	}
}

func TestFlowSeries_UnknownTypeCountsAsOutflow(t *testing.T) {
	movs := []model.Movement{
		mov(1, model.MovementType("transfer"), "30", "2024-01-05"),
	}

	got := FlowSeries(movs)
	if len(got) != 1 || got[0].Outflow != 30 || got[0].Inflow != 0 {
		t.Errorf("FlowSeries = %+v, want single outflow of 30", got)
	}
}

func TestAllocationMix_LabelsAndOrder(t *testing.T) {
	assets := []model.Asset{
		{ID: 1, Ticker: "PETR4", Name: "Petrobras"},
	}
	allocs := []model.Allocation{
		alloc(1, 1, 1, "1", "100", "2024-01-01"),
		alloc(2, 1, 2, "2", "200", "2024-01-02"), // no asset record
	}

	got := AllocationMix(allocs, assets)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "Ativo 2" || got[0].Value != 400 {
		t.Errorf("slice 0 = %+v, want fallback-named Ativo 2 with 400", got[0])
	}
	if got[1].Name != "PETR4 • Petrobras" || got[1].Value != 100 {
		t.Errorf("slice 1 = %+v, want PETR4 • Petrobras with 100", got[1])
	}
}

func TestAllocationMix_EmptyFallsBack(t *testing.T) {
	got := AllocationMix(nil, nil)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 placeholder slice", len(got))
	}
	if got[0].Name != MixFallbackLabel || got[0].Value != 1 {
		t.Errorf("fallback = %+v, want {%s 1}", got[0], MixFallbackLabel)
	}
}

func TestAllocationMix_AllBadValuesFallsBack(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "abc", "100", "2024-01-01"),
		alloc(2, 1, 2, "1", "xyz", "2024-01-02"),
	}

	got := AllocationMix(allocs, nil)
	if len(got) != 1 || got[0].Name != MixFallbackLabel {
		t.Errorf("mix = %+v, want single placeholder", got)
	}
}

func TestClientTotals(t *testing.T) {
	allocs := []model.Allocation{
		alloc(1, 1, 1, "2", "10", "2024-01-01"),
		alloc(2, 1, 2, "1", "5", "2024-02-01"),
		alloc(3, 2, 1, "abc", "10", "2024-01-01"), // skipped, not zeroed
	}

	got := ClientTotals(allocs)
	if got[1] != 25 {
		t.Errorf("client 1 total = %v, want 25", got[1])
	}
	if _, ok := got[2]; ok {
		t.Errorf("client 2 should have no total, got %v", got[2])
	}
}

func TestTotalInvested_IncludesBadDates(t *testing.T) {
	// An unparsable date drops the record from time series only; the
	// invested total still counts it.
	allocs := []model.Allocation{
		alloc(1, 1, 1, "2", "10", "2024-01-01"),
		alloc(2, 1, 1, "1", "5", "not-a-date"),
	}

	if got := TotalInvested(allocs); got != 25 {
		t.Errorf("TotalInvested = %v, want 25", got)
	}
	if series := CustodySeries(allocs); len(series) != 1 || series[0].Value != 20 {
		t.Errorf("CustodySeries = %+v, want single 20 point", series)
	}
}

func TestSummarizeMovements(t *testing.T) {
	movs := []model.Movement{
		mov(1, model.MovementDeposit, "100", "2024-01-05"),
		mov(2, model.MovementWithdrawal, "40", "2024-01-20"),
		mov(3, model.MovementDeposit, "oops", "2024-01-21"), // skipped
	}

	got := SummarizeMovements(movs)
	want := MovementTotals{Deposits: 100, Withdrawals: 40, Net: 60}
	if got != want {
		t.Errorf("SummarizeMovements = %+v, want %+v", got, want)
	}
}

func TestRound2_Precision(t *testing.T) {
	// 0.1 + 0.2 style float drift must not leak into series values.
	allocs := []model.Allocation{
		alloc(1, 1, 1, "0.1", "3", "2024-01-01"),
		alloc(2, 1, 1, "0.2", "3", "2024-01-02"),
	}

	got := CustodySeries(allocs)
	if len(got) != 1 || got[0].Value != 0.9 {
		t.Errorf("CustodySeries = %+v, want single point 0.9", got)
	}
}
