// Package tui implements the interactive ankadash dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ankadash/internal/cli"
	"ankadash/internal/model"
	"ankadash/internal/report"
	"ankadash/internal/tui/components"
	"ankadash/internal/tui/theme"
)

// SnapshotLoadedMsg is sent when the record fetch finishes.
type SnapshotLoadedMsg struct {
	Snap model.Snapshot
}

// LoadFailedMsg is sent when the record fetch fails.
type LoadFailedMsg struct {
	Err error
}

// Options configures the dashboard.
type Options struct {
	// Month is the initial month filter, "" for all periods.
	Month string
	// Load fetches the record sets; injected so the data path stays
	// identical to the non-interactive commands.
	Load func(context.Context) (model.Snapshot, error)
}

// App is the root Bubble Tea model.
type App struct {
	opts  Options
	month string

	// Data
	snap    model.Snapshot
	loaded  bool
	loadErr error

	// Derived series, recomputed on load and month change
	custody []model.CustodyPoint
	flow    []model.FlowPoint
	mix     []model.AllocationSlice
	kpis    []model.KPI
	totals  map[int64]float64

	spinner   spinner.Model
	width     int
	height    int
	activeTab int
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// NewApp creates the dashboard model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		opts:    opts,
		month:   opts.Month,
		spinner: sp,
	}
}

// Init starts the spinner and kicks off the snapshot load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	load := a.opts.Load
	return func() tea.Msg {
		snap, err := load(context.Background())
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return SnapshotLoadedMsg{Snap: snap}
	}
}

// recompute derives every displayed series from the snapshot and the
// active month filter.
func (a *App) recompute() {
	allocs := report.FilterAllocations(a.snap.Allocations, a.month)
	movs := report.FilterMovements(a.snap.Movements, a.month)

	a.custody = report.CustodySeries(allocs)
	a.flow = report.FlowSeries(movs)
	a.mix = report.AllocationMix(allocs, a.snap.Assets)
	a.totals = report.ClientTotals(allocs)
	a.kpis = cli.KPICards(report.ComputeKPIs(a.snap.Clients, allocs, movs, a.month))
}

// cycleMonth steps the filter: all periods, then Jan through Dec.
func cycleMonth(month string) string {
	switch month {
	case "":
		return "01"
	case "12":
		return ""
	default:
		n := int(month[0]-'0')*10 + int(month[1]-'0')
		return fmt.Sprintf("%02d", n+1)
	}
}

var monthNames = map[string]string{
	"01": "Janeiro", "02": "Fevereiro", "03": "Março", "04": "Abril",
	"05": "Maio", "06": "Junho", "07": "Julho", "08": "Agosto",
	"09": "Setembro", "10": "Outubro", "11": "Novembro", "12": "Dezembro",
}

func (a App) periodLabel() string {
	if a.month == "" {
		return "Todos"
	}
	if name, ok := monthNames[a.month]; ok {
		return name
	}
	return a.month
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case SnapshotLoadedMsg:
		a.snap = msg.Snap
		a.loaded = true
		a.loadErr = nil
		a.recompute()
		return a, nil

	case LoadFailedMsg:
		a.loadErr = msg.Err
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil

	case "m":
		a.month = cycleMonth(a.month)
		if a.loaded && a.loadErr == nil {
			a.recompute()
		}
		return a, nil

	case "r":
		a.loaded = false
		a.loadErr = nil
		return a, tea.Batch(a.spinner.Tick, a.loadCmd())
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// View renders the full dashboard.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(fmt.Sprintf("\n  Terminal muito estreito (%d cols, mínimo %d)\n", a.width, minTerminalWidth))
	}

	width := a.width
	if width > maxContentWidth {
		width = maxContentWidth
	}
	if width == 0 {
		width = 100
	}

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	header := titleStyle.Render(" ankadash") +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("  painel do escritório")

	if !a.loaded {
		return fmt.Sprintf("\n%s\n\n  %s Carregando registros...\n", header, a.spinner.View())
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		return fmt.Sprintf("\n%s\n\n  %s\n\n  %s\n", header,
			errStyle.Render(fmt.Sprintf("Erro: %v", a.loadErr)),
			hintStyle.Render("[r] tentar novamente  [q] sair"))
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverview(width)
	case 1:
		content = a.renderClients(width)
	case 2:
		content = a.renderFlow(width)
	case 3:
		content = a.renderAssets(width)
	}

	dataNote := ""
	if a.snap.Stale {
		dataNote = lipgloss.NewStyle().Foreground(t.Yellow).Render("dados locais")
	}

	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n%s",
		header,
		components.RenderTabBar(a.activeTab),
		content,
		components.RenderStatusBar(width, a.periodLabel(), dataNote))
}
