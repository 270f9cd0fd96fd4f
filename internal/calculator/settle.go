package calculator

import (
	"errors"
	"fmt"
	"math"
)

// SettledEpsilon is the largest absolute net balance still reported as settled.
// It absorbs floating point noise from splitting amounts across sharers.
const SettledEpsilon = 0.005

var (
	ErrInvalidPurchase    = errors.New("invalid purchase")
	ErrUnknownParticipant = errors.New("unknown participant")
	ErrInvalidParticipant = errors.New("invalid participant")
)

// Purchase is one shared expense: who paid for it and who shares its cost.
type Purchase struct {
	Name    string
	Amount  float64
	Payer   string
	Sharers []string
}

// Position tags a participant's net balance for display.
type Position int

const (
	PositionSettled Position = iota
	PositionOwed             // paid more than their share, gets money back
	PositionOwes             // paid less than their share
)

func (p Position) String() string {
	switch p {
	case PositionOwed:
		return "owed"
	case PositionOwes:
		return "owes"
	default:
		return "settled"
	}
}

// Row is one participant's line in a settlement.
type Row struct {
	Participant string
	Paid        float64 // Sum of purchases this participant paid for
	Owed        float64 // Sum of this participant's shares
	Net         float64 // Paid - Owed. Positive = is owed money, negative = owes money
}

// Position classifies the row's net balance.
func (r Row) Position() Position {
	switch {
	case r.Net > SettledEpsilon:
		return PositionOwed
	case r.Net < -SettledEpsilon:
		return PositionOwes
	default:
		return PositionSettled
	}
}

// Settlement is the per-participant ledger for a set of purchases.
type Settlement struct {
	Rows       []Row // In participant input order
	GrandTotal float64
}

// Nets returns each participant's net balance keyed by name.
func (s *Settlement) Nets() map[string]float64 {
	nets := make(map[string]float64, len(s.Rows))
	for _, r := range s.Rows {
		nets[r.Participant] = r.Net
	}
	return nets
}

// Settle computes how much each participant paid, how much they owe from the
// purchases they share, and the difference between the two.
//
// Every purchase amount is divided evenly across its sharers. The sum of Net
// across all rows is zero, so a purchase must have a positive amount, at least
// one sharer, and only name participants from the given list.
func Settle(participants []string, purchases []Purchase) (*Settlement, error) {
	index := make(map[string]int, len(participants))
	rows := make([]Row, len(participants))
	for i, p := range participants {
		if p == "" {
			return nil, fmt.Errorf("%w: empty name at position %d", ErrInvalidParticipant, i)
		}
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidParticipant, p)
		}
		index[p] = i
		rows[i] = Row{Participant: p}
	}

	for i, purchase := range purchases {
		if err := validatePurchase(index, purchase); err != nil {
			return nil, fmt.Errorf("purchase %d (%q): %w", i, purchase.Name, err)
		}
	}

	settlement := &Settlement{Rows: rows}

	// Who paid
	for _, purchase := range purchases {
		rows[index[purchase.Payer]].Paid += purchase.Amount
		settlement.GrandTotal += purchase.Amount
	}

	// Who owes
	for _, purchase := range purchases {
		sharers := uniqueSharers(purchase.Sharers)
		perPerson := purchase.Amount / float64(len(sharers))
		for _, s := range sharers {
			rows[index[s]].Owed += perPerson
		}
	}

	for i := range rows {
		rows[i].Net = rows[i].Paid - rows[i].Owed
	}

	return settlement, nil
}

// ValidatePurchase checks a purchase against a participant list without
// computing anything. Callers collecting purchases one at a time use it to
// reject bad input before storing it.
func ValidatePurchase(participants []string, purchase Purchase) error {
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		index[p] = i
	}
	return validatePurchase(index, purchase)
}

func validatePurchase(index map[string]int, purchase Purchase) error {
	if math.IsNaN(purchase.Amount) || math.IsInf(purchase.Amount, 0) || purchase.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidPurchase, purchase.Amount)
	}
	if len(purchase.Sharers) == 0 {
		return fmt.Errorf("%w: at least one sharer required", ErrInvalidPurchase)
	}
	if _, ok := index[purchase.Payer]; !ok {
		return fmt.Errorf("%w: payer %q", ErrUnknownParticipant, purchase.Payer)
	}
	for _, s := range purchase.Sharers {
		if _, ok := index[s]; !ok {
			return fmt.Errorf("%w: sharer %q", ErrUnknownParticipant, s)
		}
	}
	return nil
}

// uniqueSharers drops repeated names, keeping first occurrence order.
func uniqueSharers(sharers []string) []string {
	seen := make(map[string]bool, len(sharers))
	out := make([]string, 0, len(sharers))
	for _, s := range sharers {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
