package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ankadash/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCycleMonth(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "01"},
		{"01", "02"},
		{"09", "10"},
		{"11", "12"},
		{"12", ""},
	}
	for _, tt := range tests {
		if got := cycleMonth(tt.in); got != tt.want {
			t.Errorf("cycleMonth(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	a := App{month: ""}
	if got := a.periodLabel(); got != "Todos" {
		t.Errorf("periodLabel() = %q, want Todos", got)
	}
	a.month = "03"
	if got := a.periodLabel(); got != "Março" {
		t.Errorf("periodLabel() = %q, want Março", got)
	}
}

func TestUpdate_SnapshotLoadedRecomputes(t *testing.T) {
	a := NewApp(Options{})

	snap := model.Snapshot{
		Clients: []model.Client{{ID: 1, Name: "Ana", IsActive: true}},
		Allocations: []model.Allocation{
			{ID: 1, ClientID: 1, AssetID: 1, Quantity: "2", BuyPrice: "10", BuyDate: "2024-01-10"},
		},
		Movements: []model.Movement{
			{ID: 1, ClientID: 1, Type: model.MovementDeposit, Amount: "100", Date: "2024-01-05"},
		},
	}

	updated, _ := a.Update(SnapshotLoadedMsg{Snap: snap})
	app, ok := updated.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", updated)
	}

	if !app.loaded {
		t.Error("loaded = false after SnapshotLoadedMsg")
	}
	if len(app.custody) != 1 || app.custody[0].Value != 20 {
		t.Errorf("custody = %+v, want single 20 point", app.custody)
	}
	if len(app.flow) != 1 || app.flow[0].Inflow != 100 {
		t.Errorf("flow = %+v, want single 100 inflow", app.flow)
	}
	if len(app.kpis) != 4 {
		t.Errorf("kpis = %d cards, want 4", len(app.kpis))
	}
	if app.totals[1] != 20 {
		t.Errorf("client 1 total = %v, want 20", app.totals[1])
	}
}

func TestHandleKey_MonthCycleRecomputes(t *testing.T) {
	a := NewApp(Options{})
	snap := model.Snapshot{
		Allocations: []model.Allocation{
			{ID: 1, ClientID: 1, AssetID: 1, Quantity: "1", BuyPrice: "10", BuyDate: "2024-02-10"},
		},
	}
	updated, _ := a.Update(SnapshotLoadedMsg{Snap: snap})
	app := updated.(App)

	// Cycle into January: the February buy must disappear.
	updated, _ = app.Update(keyMsg("m"))
	app = updated.(App)
	if app.month != "01" {
		t.Fatalf("month = %q, want 01", app.month)
	}
	if len(app.custody) != 0 {
		t.Errorf("custody = %+v, want empty after filtering to january", app.custody)
	}
}
