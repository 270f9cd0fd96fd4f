package report

import (
	"fmt"

	"github.com/mmynk/moneyquest/internal/calculator"
)

// Line is one rendered settlement row.
type Line struct {
	Participant string
	Position    calculator.Position
	Headline    string // "Gets ₹50.00", "Owes ₹25.00" or "Settled"
	Detail      string // "Paid: ₹100.00 | Owed: ₹50.00"
}

// SettlementLines renders each row of a settlement in row order.
func SettlementLines(symbol string, s *calculator.Settlement) []Line {
	lines := make([]Line, len(s.Rows))
	for i, row := range s.Rows {
		lines[i] = RowLine(symbol, row)
	}
	return lines
}

// RowLine renders a single settlement row.
func RowLine(symbol string, row calculator.Row) Line {
	position := row.Position()

	var headline string
	switch position {
	case calculator.PositionOwed:
		headline = "Gets " + Money(symbol, row.Net)
	case calculator.PositionOwes:
		headline = "Owes " + Money(symbol, -row.Net)
	default:
		headline = "Settled"
	}

	return Line{
		Participant: row.Participant,
		Position:    position,
		Headline:    headline,
		Detail:      fmt.Sprintf("Paid: %s | Owed: %s", Money(symbol, row.Paid), Money(symbol, row.Owed)),
	}
}

// TransferLine renders a suggested payment, e.g. "Bob pays Alice ₹50.00".
func TransferLine(symbol string, t calculator.Transfer) string {
	return fmt.Sprintf("%s pays %s %s", t.From, t.To, Money(symbol, t.Amount))
}
