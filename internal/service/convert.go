package service

import (
	"strings"

	"github.com/mmynk/moneyquest/internal/calculator"
	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/report"
	"github.com/mmynk/moneyquest/pkg/api"
)

// normalizeNames trims names and drops blanks, like the wizard ignoring empty
// name fields. Duplicates are kept so the calculator can reject them.
func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func purchaseFromAPI(p *api.Purchase) models.Purchase {
	if p == nil {
		return models.Purchase{}
	}
	sharers := make([]string, 0, len(p.Sharers))
	for _, s := range p.Sharers {
		sharers = append(sharers, strings.TrimSpace(s))
	}
	return models.Purchase{
		Name:    strings.TrimSpace(p.Name),
		Amount:  p.Amount,
		Payer:   strings.TrimSpace(p.Payer),
		Sharers: sharers,
	}
}

func purchasesFromAPI(ps []*api.Purchase) []models.Purchase {
	out := make([]models.Purchase, len(ps))
	for i, p := range ps {
		out[i] = purchaseFromAPI(p)
	}
	return out
}

func toCalculatorPurchase(p models.Purchase) calculator.Purchase {
	return calculator.Purchase{
		Name:    p.Name,
		Amount:  p.Amount,
		Payer:   p.Payer,
		Sharers: p.Sharers,
	}
}

func toCalculatorPurchases(ps []models.Purchase) []calculator.Purchase {
	out := make([]calculator.Purchase, len(ps))
	for i, p := range ps {
		out[i] = toCalculatorPurchase(p)
	}
	return out
}

func fromCalculatorPurchases(ps []calculator.Purchase) []models.Purchase {
	out := make([]models.Purchase, len(ps))
	for i, p := range ps {
		out[i] = models.Purchase{
			Name:    p.Name,
			Amount:  p.Amount,
			Payer:   p.Payer,
			Sharers: p.Sharers,
		}
	}
	return out
}

func sessionToAPI(s *models.Session) *api.Session {
	purchases := make([]*api.Purchase, len(s.Purchases))
	for i, p := range s.Purchases {
		purchases[i] = &api.Purchase{
			Name:    p.Name,
			Amount:  p.Amount,
			Payer:   p.Payer,
			Sharers: p.Sharers,
		}
	}
	return &api.Session{
		SessionID:    s.ID,
		Scenario:     s.Scenario,
		Title:        s.Title,
		Participants: s.Participants,
		Purchases:    purchases,
		CreatedAt:    s.CreatedAt,
	}
}

func settlementToAPI(symbol string, s *calculator.Settlement) *api.Settlement {
	lines := report.SettlementLines(symbol, s)
	rows := make([]*api.SettlementRow, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = &api.SettlementRow{
			Participant: row.Participant,
			Paid:        row.Paid,
			Owed:        row.Owed,
			Net:         row.Net,
			Position:    lines[i].Position.String(),
			Headline:    lines[i].Headline,
			Detail:      lines[i].Detail,
		}
	}

	transfers := calculator.SuggestTransfers(s.Rows)
	pbTransfers := make([]*api.Transfer, len(transfers))
	for i, t := range transfers {
		pbTransfers[i] = &api.Transfer{
			From:   t.From,
			To:     t.To,
			Amount: report.Round2(t.Amount),
			Text:   report.TransferLine(symbol, t),
		}
	}

	return &api.Settlement{
		Rows:       rows,
		Transfers:  pbTransfers,
		GrandTotal: s.GrandTotal,
	}
}

func expenseToAPI(e *models.Expense) *api.Expense {
	return &api.Expense{
		ExpenseID: e.ID,
		Category:  string(e.Category),
		Label:     e.Category.Label(),
		Amount:    e.Amount,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

func preferenceToAPI(p *models.Preference) *api.Preference {
	return &api.Preference{
		Key:       p.Key,
		Value:     p.Value,
		UpdatedAt: p.UpdatedAt,
	}
}
