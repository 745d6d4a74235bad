package analytics

import (
	"errors"
	"math"
	"testing"
	"time"

	"fintrack/internal/core"
)

func expense(id string, amount float64, cat core.Category, date time.Time) core.Expense {
	return core.Expense{ID: id, Name: id, Amount: amount, Category: cat, Date: date}
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 10, 30, 0, 0, time.UTC)
}

func TestFilterByTimeFrame(t *testing.T) {
	now := day(2024, 3, 15)
	expenses := []core.Expense{
		expense("same-day", 1, core.CategoryHome, day(2024, 3, 15)),
		expense("same-month", 2, core.CategoryHome, day(2024, 3, 1)),
		expense("feb-2024", 3, core.CategoryHome, day(2024, 2, 28)),
		expense("march-2023", 4, core.CategoryHome, day(2023, 3, 15)),
		expense("dec-2024", 5, core.CategoryHome, day(2024, 12, 31)),
	}

	cases := []struct {
		frame TimeFrame
		want  []string
	}{
		{FrameDaily, []string{"same-day"}},
		{FrameMonthly, []string{"same-day", "same-month"}},
		{FrameYearly, []string{"same-day", "same-month", "feb-2024", "dec-2024"}},
		{TimeFrame("weekly"), []string{"same-day", "same-month", "feb-2024", "march-2023", "dec-2024"}},
	}
	for _, tc := range cases {
		got := FilterByTimeFrame(expenses, tc.frame, now)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %d expenses, want %d", tc.frame, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%s: item %d is %q, want %q", tc.frame, i, got[i].ID, id)
			}
		}
	}
}

func TestFilterByTimeFrameDoesNotMutateInput(t *testing.T) {
	expenses := []core.Expense{expense("a", 1, core.CategoryHome, day(2024, 1, 1))}
	got := FilterByTimeFrame(expenses, TimeFrame("bogus"), day(2024, 6, 1))
	got[0].ID = "changed"
	if expenses[0].ID != "a" {
		t.Fatal("identity filter must return a copy")
	}
}

func TestAggregateByCategory(t *testing.T) {
	expenses := []core.Expense{
		expense("1", 50, core.CategoryHome, day(2024, 1, 1)),
		expense("2", 30, core.CategoryHome, day(2024, 1, 2)),
		expense("3", 20, core.CategoryTravel, day(2024, 1, 3)),
	}

	totals := AggregateByCategory(expenses)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Category != core.CategoryHome || totals[0].Total != 80 {
		t.Fatalf("first bucket = %+v, want Home: 80", totals[0])
	}
	if totals[1].Category != core.CategoryTravel || totals[1].Total != 20 {
		t.Fatalf("second bucket = %+v, want Travel: 20", totals[1])
	}

	if got := AggregateByCategory(nil); len(got) != 0 {
		t.Fatalf("empty input should aggregate to nothing, got %v", got)
	}
}

func TestMonthlyExpenseTotals(t *testing.T) {
	expenses := []core.Expense{
		expense("a", 10, core.CategoryHome, day(2024, 1, 5)),
		expense("b", 15, core.CategoryHome, day(2024, 1, 20)),
		expense("c", 7, core.CategoryHome, day(2024, 6, 1)),
		expense("other-year", 99, core.CategoryHome, day(2023, 1, 5)),
	}

	totals := MonthlyExpenseTotals(expenses, 2024)
	if totals[0] != 25 {
		t.Fatalf("January total = %v, want 25", totals[0])
	}
	if totals[5] != 7 {
		t.Fatalf("June total = %v, want 7", totals[5])
	}
	var sum float64
	for _, v := range totals {
		sum += v
	}
	if sum != 32 {
		t.Fatalf("cross-year expense leaked into buckets: sum = %v", sum)
	}
	if len(MonthLabels) != 12 {
		t.Fatalf("MonthLabels must have 12 entries, got %d", len(MonthLabels))
	}
}

func TestMonthlySavedTotals(t *testing.T) {
	goals := []core.Goal{
		{ID: "g1", Name: "g1", TargetAmount: 100, CurrentAmount: 40, PeriodType: core.PeriodMonths, PeriodCount: 2, Date: day(2024, 3, 1)},
		{ID: "g2", Name: "g2", TargetAmount: 100, CurrentAmount: 10, PeriodType: core.PeriodMonths, PeriodCount: 2, Date: day(2024, 3, 20)},
		{ID: "g3", Name: "g3", TargetAmount: 100, CurrentAmount: 5, PeriodType: core.PeriodMonths, PeriodCount: 2, Date: day(2022, 3, 20)},
	}
	totals := MonthlySavedTotals(goals, 2024)
	if totals[2] != 50 {
		t.Fatalf("March total = %v, want 50", totals[2])
	}
}

func TestProgress(t *testing.T) {
	g := core.Goal{TargetAmount: 1200, CurrentAmount: 200}
	p, err := Progress(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Round4(p) != 0.1667 {
		t.Fatalf("progress = %v, want 0.1667 at 4 places", Round4(p))
	}

	// clamped at 1 when over-funded
	g.CurrentAmount = 5000
	p, _ = Progress(g)
	if p != 1 {
		t.Fatalf("over-funded progress = %v, want 1", p)
	}

	// zero target must fail, never Inf/NaN
	g.TargetAmount = 0
	if _, err := Progress(g); !errors.Is(err, core.ErrZeroTarget) {
		t.Fatalf("zero target: got %v, want ErrZeroTarget", err)
	}

	// bounds hold for arbitrary valid goals
	for _, g := range []core.Goal{
		{TargetAmount: 1, CurrentAmount: 0},
		{TargetAmount: 0.01, CurrentAmount: 0.005},
		{TargetAmount: 1e9, CurrentAmount: 1e9},
	} {
		p, err := Progress(g)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", g, err)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Fatalf("progress %v out of [0,1] for %+v", p, g)
		}
	}
}

func TestRequiredContribution(t *testing.T) {
	g := core.Goal{TargetAmount: 1200, CurrentAmount: 200, PeriodType: core.PeriodMonths, PeriodCount: 10}
	c, err := RequiredContribution(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != 100 {
		t.Fatalf("contribution = %v, want 100", c)
	}

	// scales linearly with 1/periodCount
	g.PeriodCount = 20
	half, _ := RequiredContribution(g)
	if half != 50 {
		t.Fatalf("doubling periods should halve the contribution, got %v", half)
	}

	// met goal contributes zero
	g.CurrentAmount = g.TargetAmount
	c, _ = RequiredContribution(g)
	if c != 0 {
		t.Fatalf("met goal contribution = %v, want 0", c)
	}

	// over-funded goals pass the negative through
	g.CurrentAmount = g.TargetAmount + 500
	c, _ = RequiredContribution(g)
	if c >= 0 {
		t.Fatalf("over-funded contribution = %v, want negative", c)
	}

	g.PeriodCount = 0
	if _, err := RequiredContribution(g); !errors.Is(err, core.ErrInvalidPeriod) {
		t.Fatalf("zero periods: got %v, want ErrInvalidPeriod", err)
	}
}

func TestTotals(t *testing.T) {
	expenses := []core.Expense{
		expense("a", 1.1, core.CategoryHome, day(2024, 1, 1)),
		expense("b", 2.2, core.CategoryTravel, day(2024, 1, 2)),
	}
	if got := Round2(TotalExpenses(expenses)); got != 3.3 {
		t.Fatalf("TotalExpenses = %v, want 3.3", got)
	}
	goals := []core.Goal{
		{CurrentAmount: 10}, {CurrentAmount: 15.5},
	}
	if got := TotalSaved(goals); got != 25.5 {
		t.Fatalf("TotalSaved = %v, want 25.5", got)
	}
	if TotalExpenses(nil) != 0 || TotalSaved(nil) != 0 {
		t.Fatal("empty sums must be 0")
	}
}

func TestShare(t *testing.T) {
	if got := Share(80, 100); got != 80 {
		t.Fatalf("Share(80,100) = %v, want 80", got)
	}
	if got := Share(5, 0); got != 0 {
		t.Fatalf("Share with zero total = %v, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.006, 1.01},
		{1.004, 1.0},
		{-2.675, -2.67}, // float64 representation of -2.675 rounds toward zero here
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// Round4 is a test helper matching the 4-place display rounding used for
// goal progress.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
