package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/client/analytics"
	"github.com/vaibhavharit14/BudgetBox/internal/client/store"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Nord)
var (
	colorText   = lipgloss.Color("#ECEFF4")
	colorMuted  = lipgloss.Color("#4C566A")
	colorAccent = lipgloss.Color("#88C0D0")
	colorGreen  = lipgloss.Color("#A3BE8C")
	colorOrange = lipgloss.Color("#D08770")
	colorRed    = lipgloss.Color("#BF616A")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	badStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	barStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// statusBadge renders the tri-state sync status.
func statusBadge(s store.SyncStatus) string {
	switch s {
	case store.StatusSynced:
		return goodStyle.Render("● Synced")
	case store.StatusSyncPending:
		return warnStyle.Render("● Sync Pending")
	default:
		return labelStyle.Render("● Local Only")
	}
}

// renderDraft formats the draft fields, sync status and timestamps.
func renderDraft(state store.State) string {
	var b strings.Builder

	owner := state.CurrentUserEmail
	if owner == "" {
		owner = "guest"
	}
	b.WriteString(titleStyle.Render("Budget draft") + labelStyle.Render("  ("+owner+")") + "\n")

	for _, name := range store.FieldNames {
		value, _ := state.Draft.Field(name)
		if value == "" {
			value = labelStyle.Render("—")
		} else {
			value = valueStyle.Render(value)
		}
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", name)), value)
	}

	b.WriteString("  " + statusBadge(state.SyncStatus) + "\n")
	if state.LastLocalEditAt != nil {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("last edit     "),
			state.LastLocalEditAt.Format(time.RFC822))
	}
	if state.LastServerSyncAt != nil {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("last sync     "),
			state.LastServerSyncAt.Format(time.RFC822))
	}
	return b.String()
}

// renderDashboard formats the derived metrics, the expense distribution and
// any anomaly warnings.
func renderDashboard(draft store.Draft, m analytics.Metrics, warnings []string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Analytics Dashboard") + "\n\n")

	savingsStyle := goodStyle
	if m.SavingsPotential < 0 {
		savingsStyle = badStyle
	}
	predictionStyle := goodStyle
	if m.MonthEndSavings < 0 {
		predictionStyle = badStyle
	}

	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Burn Rate           "),
		valueStyle.Render(fmt.Sprintf("%.1f%%", m.BurnRate)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Savings Potential   "),
		savingsStyle.Render(fmt.Sprintf("%.2f", m.SavingsPotential)))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Month-End Prediction"),
		predictionStyle.Render(fmt.Sprintf("%.2f", m.MonthEndPrediction)))

	b.WriteString("\n" + titleStyle.Render("Expense Distribution") + "\n")
	b.WriteString(renderDistribution(draft))

	if len(warnings) > 0 {
		b.WriteString("\n" + badStyle.Bold(true).Render("Anomaly Warnings") + "\n")
		for _, w := range warnings {
			b.WriteString("  " + warnStyle.Render("• "+w) + "\n")
		}
	}
	return b.String()
}

// renderDistribution draws a proportional bar per expense category.
func renderDistribution(d store.Draft) string {
	categories := []struct {
		label string
		field string
	}{
		{"Bills", "monthly_bills"},
		{"Food", "food"},
		{"Transport", "transport"},
		{"Subscriptions", "subscriptions"},
		{"Misc", "misc"},
	}

	total := analytics.Expenses(d)
	if total <= 0 {
		return labelStyle.Render("  no expenses recorded") + "\n"
	}

	const width = 30
	var b strings.Builder
	for _, cat := range categories {
		raw, _ := d.Field(cat.field)
		value := analytics.Amount(raw)
		if value <= 0 {
			continue
		}
		share := value / total
		filled := int(share*width + 0.5)
		if filled < 1 {
			filled = 1
		}
		bar := barStyle.Render(strings.Repeat("█", filled))
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", cat.label)),
			bar,
			valueStyle.Render(fmt.Sprintf("%.0f%%", share*100)))
	}
	return b.String()
}
