// Package analytics derives summary views from the raw entity collections.
// Every function is pure: inputs are never mutated and nothing is cached.
package analytics

import (
	"math"
	"time"

	"fintrack/internal/core"
)

const (
	FrameDaily   TimeFrame = "daily"
	FrameMonthly TimeFrame = "monthly"
	FrameYearly  TimeFrame = "yearly"
)

type (
	// TimeFrame is a calendar window applied relative to a reference instant.
	TimeFrame string

	// CategoryTotal is an amount summed per category, ordered by first
	// occurrence in the input.
	CategoryTotal struct {
		Category core.Category
		Total    float64
	}
)

// MonthLabels are the bucket labels MonthlyExpenseTotals and
// MonthlySavedTotals align to.
var MonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FilterByTimeFrame returns the expenses whose date falls in the same
// calendar day, month, or year as now. Dates are compared in now's location.
// An unknown frame filters nothing.
func FilterByTimeFrame(expenses []core.Expense, frame TimeFrame, now time.Time) []core.Expense {
	var match func(time.Time) bool
	switch frame {
	case FrameDaily:
		match = func(d time.Time) bool {
			return d.Year() == now.Year() && d.YearDay() == now.YearDay()
		}
	case FrameMonthly:
		match = func(d time.Time) bool {
			return d.Year() == now.Year() && d.Month() == now.Month()
		}
	case FrameYearly:
		match = func(d time.Time) bool {
			return d.Year() == now.Year()
		}
	default:
		out := make([]core.Expense, len(expenses))
		copy(out, expenses)
		return out
	}

	out := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		if match(e.Date.In(now.Location())) {
			out = append(out, e)
		}
	}
	return out
}

// AggregateByCategory groups expenses by category, summing amounts.
// Categories keep the order of their first occurrence; categories absent
// from the input do not appear.
func AggregateByCategory(expenses []core.Expense) []CategoryTotal {
	index := make(map[core.Category]int, len(expenses))
	totals := make([]CategoryTotal, 0, len(expenses))
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category})
		}
		totals[i].Total += e.Amount
	}
	return totals
}

// MonthlyExpenseTotals buckets expense amounts by calendar month for the
// given year, aligned to MonthLabels. Expenses dated in other years are
// excluded.
func MonthlyExpenseTotals(expenses []core.Expense, year int) [12]float64 {
	var totals [12]float64
	for _, e := range expenses {
		if e.Date.Year() != year {
			continue
		}
		totals[int(e.Date.Month())-1] += e.Amount
	}
	return totals
}

// MonthlySavedTotals buckets goal current amounts by the calendar month of
// the goal's creation date for the given year, aligned to MonthLabels.
func MonthlySavedTotals(goals []core.Goal, year int) [12]float64 {
	var totals [12]float64
	for _, g := range goals {
		if g.Date.Year() != year {
			continue
		}
		totals[int(g.Date.Month())-1] += g.CurrentAmount
	}
	return totals
}

// Progress reports how close a goal is to its target, clamped to [0, 1].
// A non-positive target is invalid input and never produces Inf or NaN.
func Progress(g core.Goal) (float64, error) {
	if g.TargetAmount <= 0 {
		return 0, core.ErrZeroTarget
	}
	return math.Min(g.CurrentAmount/g.TargetAmount, 1), nil
}

// RequiredContribution is the linear per-period payment that closes the gap
// between current and target amount over the goal's remaining periods. No
// interest or compounding. Met goals yield 0; over-funded goals yield a
// negative value, passed through unclamped.
func RequiredContribution(g core.Goal) (float64, error) {
	if g.PeriodCount < 1 {
		return 0, core.ErrInvalidPeriod
	}
	return (g.TargetAmount - g.CurrentAmount) / float64(g.PeriodCount), nil
}

// TotalExpenses sums expense amounts.
func TotalExpenses(expenses []core.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

// TotalSaved sums goal current amounts.
func TotalSaved(goals []core.Goal) float64 {
	var sum float64
	for _, g := range goals {
		sum += g.CurrentAmount
	}
	return sum
}

// Share returns part as a percentage of total, or 0 when total is zero.
func Share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Round2 rounds to two decimal places. Applied only at presentation
// boundaries; intermediate sums stay unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
