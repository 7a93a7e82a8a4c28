// Package analytics derives budget metrics and rule-based warnings from the
// draft. Everything here is a pure function of its inputs; amounts are
// parsed defensively with non-numeric input treated as zero.
package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vaibhavharit14/BudgetBox/internal/client/store"
)

// Metrics are the derived figures shown on the dashboard.
type Metrics struct {
	Income             float64
	Expenses           float64
	BurnRate           float64 // percent of income consumed
	SavingsPotential   float64
	MonthEndPrediction float64
	MonthEndSavings    float64
}

// Amount parses a free-form amount string, treating anything non-numeric
// as 0.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Expenses sums the five expense categories.
func Expenses(d store.Draft) float64 {
	return Amount(d.MonthlyBills) +
		Amount(d.Food) +
		Amount(d.Transport) +
		Amount(d.Subscriptions) +
		Amount(d.Misc)
}

// Compute derives all metrics from the draft. The month-end projection
// extrapolates the current daily spend rate over the full month of now.
func Compute(d store.Draft, now time.Time) Metrics {
	income := Amount(d.Income)
	expenses := Expenses(d)

	burnRate := 0.0
	if income > 0 {
		burnRate = expenses / income * 100
	}

	currentDay := float64(now.Day())
	daysInMonth := float64(daysIn(now))
	prediction := expenses / currentDay * daysInMonth

	return Metrics{
		Income:             income,
		Expenses:           expenses,
		BurnRate:           burnRate,
		SavingsPotential:   income - expenses,
		MonthEndPrediction: prediction,
		MonthEndSavings:    income - prediction,
	}
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// HasData reports whether there is anything to analyze.
func HasData(d store.Draft) bool {
	return Amount(d.Income) > 0 || Expenses(d) > 0
}

// Warnings evaluates the anomaly rules. Each rule is independent and all
// matching warnings are returned together, in fixed priority order: food
// overspend, subscriptions overspend, negative savings, burn rate. No rules
// fire without income.
func Warnings(d store.Draft) []string {
	income := Amount(d.Income)
	if income <= 0 {
		return nil
	}

	var warnings []string

	foodPercent := Amount(d.Food) / income * 100
	if foodPercent > 40 {
		warnings = append(warnings, fmt.Sprintf(
			"Food spending is %.1f%% of income — reduce food spend next month.", foodPercent))
	}

	subsPercent := Amount(d.Subscriptions) / income * 100
	if subsPercent > 30 {
		warnings = append(warnings, fmt.Sprintf(
			"Subscriptions are %.1f%% of your income — consider cancelling unused apps.", subsPercent))
	}

	if income-Expenses(d) < 0 {
		warnings = append(warnings, "Your expenses exceed income — negative savings!")
	}

	burnRate := Expenses(d) / income * 100
	if burnRate > 90 {
		warnings = append(warnings, fmt.Sprintf(
			"Burn rate is %.1f%% — you're spending almost all your income!", burnRate))
	}

	return warnings
}
