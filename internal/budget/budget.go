// Package budget summarizes tracked expenses against a monthly budget.
package budget

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/report"
)

// DefaultMonthlyBudget is used when no budget is configured.
const DefaultMonthlyBudget = 10000

// Notice thresholds.
const (
	warnPercent     = 90
	infoPercent     = 75
	lowRemainingCap = 1000
)

// Level is the severity of a budget notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Notice is a message shown alongside the expense summary.
type Notice struct {
	Level   Level
	Message string
}

// CategoryTotal is the total spent in one category.
type CategoryTotal struct {
	Category models.Category
	Label    string
	Total    float64
}

// Summary describes spending against the monthly budget.
type Summary struct {
	Budget      float64
	Total       float64
	Remaining   float64
	PercentUsed float64 // 0 when Budget <= 0
	ByCategory  []CategoryTotal
	Notices     []Notice
}

// Summarize totals expenses and derives budget notices.
// Amounts are accumulated as decimals so category totals match the sum of
// what the user typed.
func Summarize(symbol string, expenses []*models.Expense, monthlyBudget float64) Summary {
	total := decimal.Zero
	byCategory := make(map[models.Category]decimal.Decimal)
	for _, e := range expenses {
		amount := decimal.NewFromFloat(e.Amount)
		total = total.Add(amount)
		byCategory[e.Category] = byCategory[e.Category].Add(amount)
	}

	s := Summary{
		Budget:    monthlyBudget,
		Total:     total.InexactFloat64(),
		Remaining: decimal.NewFromFloat(monthlyBudget).Sub(total).InexactFloat64(),
	}
	if monthlyBudget > 0 {
		s.PercentUsed = s.Total / monthlyBudget * 100
	}

	for category, amount := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryTotal{
			Category: category,
			Label:    category.Label(),
			Total:    amount.InexactFloat64(),
		})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Total != s.ByCategory[j].Total {
			return s.ByCategory[i].Total > s.ByCategory[j].Total
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	s.Notices = notices(symbol, s)
	return s
}

func notices(symbol string, s Summary) []Notice {
	var out []Notice

	if s.Budget > 0 {
		switch {
		case s.PercentUsed > warnPercent:
			out = append(out, Notice{Level: LevelWarning, Message: "⚠️ You're close to your monthly limit!"})
		case s.PercentUsed > infoPercent:
			out = append(out, Notice{
				Level:   LevelInfo,
				Message: fmt.Sprintf("💡 You've used %s%% of your budget this month.", decimal.NewFromFloat(s.PercentUsed).StringFixed(0)),
			})
		}
	}

	switch {
	case s.Remaining > 0 && s.Remaining < lowRemainingCap:
		out = append(out, Notice{
			Level:   LevelWarning,
			Message: fmt.Sprintf("💰 Only %s left in your budget!", report.WholeMoney(symbol, s.Remaining)),
		})
	case s.Remaining < 0:
		out = append(out, Notice{
			Level:   LevelDanger,
			Message: fmt.Sprintf("❌ You've exceeded your budget by %s!", report.WholeMoney(symbol, -s.Remaining)),
		})
	}

	if len(out) == 0 {
		out = append(out, Notice{Level: LevelSuccess, Message: "✅ You're doing great with your budget!"})
	}
	return out
}
