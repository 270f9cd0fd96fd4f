package calculator

import (
	"math"
	"testing"
)

func TestSuggestTransfers(t *testing.T) {
	t.Run("one debtor one creditor", func(t *testing.T) {
		transfers := SuggestTransfers([]Row{
			{Participant: "A", Net: 50},
			{Participant: "B", Net: -50},
		})
		if len(transfers) != 1 {
			t.Fatalf("expected 1 transfer, got %d", len(transfers))
		}
		got := transfers[0]
		if got.From != "B" || got.To != "A" || math.Abs(got.Amount-50) > 1e-9 {
			t.Errorf("transfer = %+v, want B -> A 50", got)
		}
	})

	t.Run("largest debtor pays largest creditor first", func(t *testing.T) {
		transfers := SuggestTransfers([]Row{
			{Participant: "A", Net: 60},
			{Participant: "B", Net: -30},
			{Participant: "C", Net: -30},
		})
		if len(transfers) != 2 {
			t.Fatalf("expected 2 transfers, got %d: %+v", len(transfers), transfers)
		}
		// Tie between B and C broken by name
		if transfers[0].From != "B" || transfers[1].From != "C" {
			t.Errorf("transfer order = %+v, want B then C", transfers)
		}
	})

	t.Run("everyone settled", func(t *testing.T) {
		transfers := SuggestTransfers([]Row{
			{Participant: "A", Net: 0},
			{Participant: "B", Net: 0.001},
		})
		if len(transfers) != 0 {
			t.Errorf("expected no transfers, got %+v", transfers)
		}
	})

	t.Run("transfers settle the ledger", func(t *testing.T) {
		s, err := Settle([]string{"A", "B", "C", "D"}, []Purchase{
			{Name: "Hotel", Amount: 400, Payer: "A", Sharers: []string{"A", "B", "C", "D"}},
			{Name: "Dinner", Amount: 120, Payer: "B", Sharers: []string{"B", "C", "D"}},
			{Name: "Tickets", Amount: 75, Payer: "D", Sharers: []string{"A", "C", "D"}},
		})
		if err != nil {
			t.Fatalf("Settle() unexpected error: %v", err)
		}

		remaining := s.Nets()
		for _, tr := range SuggestTransfers(s.Rows) {
			remaining[tr.From] += tr.Amount
			remaining[tr.To] -= tr.Amount
		}
		for name, net := range remaining {
			if math.Abs(net) > 0.01 {
				t.Errorf("%s still has net %v after transfers", name, net)
			}
		}
	})
}

func TestSamplePurchases(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		wantCount    int
		validateFunc func(t *testing.T, purchases []Purchase)
	}{
		{
			name:      "no participants",
			wantCount: 0,
		},
		{
			name:         "single participant pays and shares everything",
			participants: []string{"Solo"},
			wantCount:    3,
			validateFunc: func(t *testing.T, purchases []Purchase) {
				for _, p := range purchases {
					if p.Payer != "Solo" {
						t.Errorf("%s payer = %s, want Solo", p.Name, p.Payer)
					}
					if len(p.Sharers) != 1 {
						t.Errorf("%s sharers = %v, want [Solo]", p.Name, p.Sharers)
					}
				}
			},
		},
		{
			name:         "three participants",
			participants: []string{"A", "B", "C"},
			wantCount:    3,
			validateFunc: func(t *testing.T, purchases []Purchase) {
				if purchases[0].Name != "Pizza" || purchases[0].Amount != 450 || len(purchases[0].Sharers) != 2 {
					t.Errorf("pizza = %+v", purchases[0])
				}
				if len(purchases[1].Sharers) != 3 {
					t.Errorf("coke sharers = %v, want all three", purchases[1].Sharers)
				}
				if purchases[2].Payer != "B" {
					t.Errorf("garlic bread payer = %s, want B", purchases[2].Payer)
				}
				if _, err := Settle([]string{"A", "B", "C"}, purchases); err != nil {
					t.Errorf("sample purchases do not settle: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SamplePurchases(tt.participants)
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d purchases, got %d", tt.wantCount, len(got))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, got)
			}
		})
	}
}
