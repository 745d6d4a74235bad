// Package report renders the derived analytics as plain text for the CLI.
// All rounding to two decimal places happens here, at the presentation
// boundary.
package report

import (
	"fmt"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/core"
)

type (
	// CategoryLine is one category's share of the filtered spending.
	CategoryLine struct {
		Category core.Category
		Total    float64
		Share    float64 // percent of Total spending
	}

	// GoalLine is a goal's progress and required periodic contribution.
	GoalLine struct {
		Name         string
		Current      float64
		Target       float64
		Progress     float64 // 0..1
		Contribution float64
		PeriodType   core.PeriodType
		PeriodCount  int
	}

	// Summary is the dashboard view over the current slots.
	Summary struct {
		User       core.UserProfile
		Balance    float64
		Frame      analytics.TimeFrame
		Total      float64
		Categories []CategoryLine
		Goals      []GoalLine
		TotalSaved float64
	}
)

// Build derives a Summary for the given time frame from the raw collections.
func Build(expenses []core.Expense, goals []core.Goal, balance float64, user core.UserProfile, frame analytics.TimeFrame, now time.Time) Summary {
	filtered := analytics.FilterByTimeFrame(expenses, frame, now)
	total := analytics.TotalExpenses(filtered)

	var categories []CategoryLine
	for _, ct := range analytics.AggregateByCategory(filtered) {
		categories = append(categories, CategoryLine{
			Category: ct.Category,
			Total:    ct.Total,
			Share:    analytics.Share(ct.Total, total),
		})
	}

	var goalLines []GoalLine
	for _, g := range goals {
		progress, err := analytics.Progress(g)
		if err != nil {
			continue
		}
		contribution, err := analytics.RequiredContribution(g)
		if err != nil {
			continue
		}
		goalLines = append(goalLines, GoalLine{
			Name:         g.Name,
			Current:      g.CurrentAmount,
			Target:       g.TargetAmount,
			Progress:     progress,
			Contribution: contribution,
			PeriodType:   g.PeriodType,
			PeriodCount:  g.PeriodCount,
		})
	}

	return Summary{
		User:       user,
		Balance:    balance,
		Frame:      frame,
		Total:      total,
		Categories: categories,
		Goals:      goalLines,
		TotalSaved: analytics.TotalSaved(goals),
	}
}

// Render formats the summary as plain text.
func (s Summary) Render() string {
	var b strings.Builder

	if s.User.Name != "" {
		fmt.Fprintf(&b, "%s", s.User.Name)
		if s.User.Profession != "" {
			fmt.Fprintf(&b, " (%s)", s.User.Profession)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Balance: %.2f\n", analytics.Round2(s.Balance))
	fmt.Fprintf(&b, "Spending (%s): %.2f\n", s.Frame, analytics.Round2(s.Total))

	if len(s.Categories) > 0 {
		b.WriteString("\nBy category:\n")
		for _, c := range s.Categories {
			fmt.Fprintf(&b, "  %-12s %10.2f  (%.1f%%)\n",
				c.Category, analytics.Round2(c.Total), c.Share)
		}
	}

	if len(s.Goals) > 0 {
		fmt.Fprintf(&b, "\nGoals (saved %.2f):\n", analytics.Round2(s.TotalSaved))
		for _, g := range s.Goals {
			fmt.Fprintf(&b, "  %-12s %.2f / %.2f  (%.0f%%)  needs %.2f per period for %d %s\n",
				g.Name,
				analytics.Round2(g.Current), analytics.Round2(g.Target),
				g.Progress*100,
				analytics.Round2(g.Contribution),
				g.PeriodCount, g.PeriodType)
		}
	}

	return b.String()
}
