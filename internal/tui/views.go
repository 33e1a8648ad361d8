package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/kauntidev/kaunti/internal/interaction"
	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/paint"
	"github.com/kauntidev/kaunti/internal/tui/themes"
)

// Tile ink. Ramp shades are light enough for dark ink except Active, which
// flips to bright for contrast.
var (
	tileInkDark   = lipgloss.Color("#0b1120")
	tileInkBright = lipgloss.Color("#f8fafc")
	tileInkFaint  = lipgloss.Color("#9ca3af")
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading dashboard..."
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small: the dashboard needs at least %dx%d cells.", minWidth, minHeight)
	}
	if m.showHelp {
		return m.renderHelp()
	}

	g := m.layout()
	ds := m.coordinator.Dataset()
	st := m.coordinator.State()

	out := m.renderMain(g, ds, st)
	if g.detail {
		out = lipgloss.JoinHorizontal(lipgloss.Top, out, "  ", m.renderDetail(ds, st))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(out)
}

// renderMain builds the left column. Line positions here mirror the
// geometry in layout.go exactly: header on lines 0-2, the map starting at
// mapY, one gap line, then the popover strip at popY.
func (m Model) renderMain(g geometry, ds model.Dataset, st interaction.State) string {
	lines := make([]string, 0, g.popY+g.popH+4)

	lines = append(lines,
		" "+m.theme.Title.Render("kaunti")+m.theme.Subtitle.Render("  county public finance"),
		" "+m.theme.Subtitle.Render(fmt.Sprintf("FY %s · %s · %d of %d boundaries matched",
			m.fiscalYear, m.config.Source, m.matchedCount(), len(m.tiles))),
		"",
	)

	lines = append(lines, m.renderMap(g, ds, st)...)
	lines = append(lines, "") // popover padding row
	lines = append(lines, m.renderPopoverStrip(g, ds)...)
	lines = append(lines, "", m.renderLegend(), "", m.renderStatusBar(st))

	return strings.Join(lines, "\n")
}

// renderMap paints the cartogram grid, one string per screen line.
func (m Model) renderMap(g geometry, ds model.Dataset, st interaction.State) []string {
	lines := make([]string, 0, gridRows*g.tileH)
	for row := 0; row < gridRows; row++ {
		for line := 0; line < g.tileH; line++ {
			var sb strings.Builder
			sb.WriteString(strings.Repeat(" ", g.mapX))
			for col := 0; col < gridCols; col++ {
				i, ok := m.grid[cell{col: col, row: row}]
				if !ok {
					sb.WriteString(strings.Repeat(" ", g.tileW+tileGap))
					continue
				}
				sb.WriteString(m.renderTile(g, m.tiles[i], line, ds, st))
				sb.WriteString(strings.Repeat(" ", tileGap))
			}
			lines = append(lines, strings.TrimRight(sb.String(), " "))
		}
	}
	return lines
}

func (m Model) renderTile(g geometry, t Tile, line int, ds model.Dataset, st interaction.State) string {
	shade, i, ok := paint.Classify(t.Name, ds, st, m.memo)
	bg := paint.NoData
	if ok {
		bg = paint.RampFor(ds.Records[i].Audit.Status).Pick(shade)
	}

	label := ""
	if line == 0 {
		label = t.Code
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Width(g.tileW).
		Align(lipgloss.Center)
	switch {
	case shade == paint.ShadeActive:
		style = style.Foreground(tileInkBright).Bold(true)
	case !ok, shade == paint.ShadeMuted:
		style = style.Foreground(tileInkFaint)
	default:
		style = style.Foreground(tileInkDark)
	}
	if label != "" && t.Name == m.tiles[m.cursor].Name {
		style = style.Underline(true)
	}
	return style.Render(label)
}

// renderPopoverStrip returns exactly popH lines: the popover box when it is
// up, blank lines otherwise, so the rest of the frame never shifts.
func (m Model) renderPopoverStrip(g geometry, ds model.Dataset) []string {
	if !m.popover.Visible() {
		return make([]string, g.popH)
	}

	content := m.popoverContent(ds, m.popover.Current(), g.popW-4)
	box := m.theme.RoundedBox.Width(g.popW - 2).Render(strings.Join(content, "\n"))

	indent := strings.Repeat(" ", g.popX)
	lines := strings.Split(box, "\n")
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	for len(lines) < g.popH {
		lines = append(lines, "")
	}
	return lines[:g.popH]
}

// popoverContent builds the five content lines for the hovered boundary.
func (m Model) popoverContent(ds model.Dataset, boundary string, width int) []string {
	i, ok := m.memo.Resolve(boundary, ds)
	if !ok {
		return []string{
			m.theme.Bold.Render(clip(boundary, width)),
			m.theme.StatusPending.Render("no records in FY " + m.fiscalYear),
			clip("This tile matched no county in the loaded data.", width),
			"",
			m.theme.Subtitle.Render(clip("try: kaunti aliases add", width)),
		}
	}

	rec := ds.Records[i]
	ramp := paint.RampFor(rec.Audit.Status)
	status := lipgloss.NewStyle().Foreground(ramp.Base).Bold(true).
		Render(themes.GetStatusIcon(string(rec.Audit.Status)) + " " + rec.Audit.Status.Label())

	last := m.theme.Subtitle.Render("click to pin · Esc to release")
	if rec.Audit.Note != "" {
		last = m.theme.Italic.Render(clip(rec.Audit.Note, width))
	}

	return []string{
		m.theme.Bold.Render(clip(boundary, width)) + m.theme.Subtitle.Render("  "+rec.ID),
		status,
		clip(fmt.Sprintf("Allocated %s · absorbed %s", formatMoney(rec.Budget.Allocated), formatPercent(rec.Budget.Utilization())), width),
		clip(fmt.Sprintf("Debt %s · pending bills %s", formatMoney(rec.Debt.Outstanding), formatMoney(rec.Debt.PendingBills)), width),
		last,
	}
}

func (m Model) renderLegend() string {
	parts := make([]string, 0, len(model.AllAuditStatuses)+1)
	for _, s := range model.AllAuditStatuses {
		swatch := lipgloss.NewStyle().Foreground(paint.RampFor(s).Base).Render("■")
		parts = append(parts, swatch+" "+string(s))
	}
	parts = append(parts, lipgloss.NewStyle().Foreground(paint.NoData).Render("■")+" no data")
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderStatusBar(st interaction.State) string {
	segs := []string{
		st.DisplayMode.String(),
		fmt.Sprintf("rotate %s (%s)", st.AnimationMode, st.AnimationMode.Interval()),
	}
	if rec, ok := m.coordinator.Emphasized(); ok {
		if st.HasSelection() {
			segs = append(segs, "pinned "+rec.Name)
		} else {
			segs = append(segs, "showing "+rec.Name)
		}
	}
	if m.refreshing {
		segs = append(segs, "refreshing...")
	}
	segs = append(segs, "? help", "q quit")

	bar := " " + m.theme.Subtitle.Render(strings.Join(segs, " · "))
	if m.lastError != nil {
		bar += "  " + m.theme.StatusError.Render(clip("refresh failed: "+m.lastError.Error(), 40))
	}
	return bar
}

// renderDetail builds the side panel for the emphasized county.
func (m Model) renderDetail(ds model.Dataset, st interaction.State) string {
	width := detailPanelW - 4

	rec, ok := m.coordinator.Emphasized()
	if !ok {
		return m.theme.RoundedBox.Width(detailPanelW - 2).Render(
			m.theme.Bold.Render("No records loaded") + "\n\n" +
				lipgloss.NewStyle().Width(width).Render("Import a fiscal year with `kaunti import` or start the demo dashboard."))
	}

	ramp := paint.RampFor(rec.Audit.Status)
	status := lipgloss.NewStyle().Foreground(ramp.Base).Bold(true).
		Render(themes.GetStatusIcon(string(rec.Audit.Status)) + " " + rec.Audit.Status.Label())
	mode := "rotating · Enter pins"
	if st.HasSelection() {
		mode = "pinned · Esc releases"
	}

	m.detail.SetRows([]table.Row{
		{"Population", formatCount(rec.Population)},
		{"Allocated", formatMoney(rec.Budget.Allocated)},
		{"Spent", formatMoney(rec.Budget.Spent)},
		{"Own-source rev", formatMoney(rec.Budget.OwnSourceRevenue)},
		{"Funding gap", formatMoney(rec.FundingGap())},
		{"Debt", formatMoney(rec.Debt.Outstanding)},
		{"Debt ratio", formatPercent(rec.DebtRatio())},
		{"Pending bills", formatMoney(rec.Debt.PendingBills)},
		{"Debt per capita", formatPerCapita(rec.DebtPerCapita())},
		{"Fiscal year", rec.FiscalYear},
	})

	lines := []string{
		m.theme.Bold.Render(clip(rec.Name, width-7)) + m.theme.Subtitle.Render("  "+rec.ID),
		status,
		m.theme.Subtitle.Render(mode),
		"",
		m.theme.Subtitle.Render("budget absorption"),
		renderBar(m.theme, rec.Budget.Utilization(), 24) + " " + formatPercent(rec.Budget.Utilization()),
		"",
		m.detail.View(),
	}
	if rec.Audit.Note != "" {
		lines = append(lines, "", m.theme.Italic.Render(lipgloss.NewStyle().Width(width).Render(rec.Audit.Note)))
	}

	return m.theme.RoundedBox.Width(detailPanelW - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("dashboard keys"))
	b.WriteString("\n\n")
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Subtitle.Render("press any other key to close"))
	return m.theme.RoundedBox.Render(b.String())
}

// renderBar draws a fixed-width utilization bar, clamped into [0, 1].
func renderBar(theme themes.Theme, frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	return theme.ProgressFull.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

// clip hard-truncates plain text to max runes, marking the cut. Styled text
// must be clipped before styling.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	return string(r[:max-1]) + "…"
}
