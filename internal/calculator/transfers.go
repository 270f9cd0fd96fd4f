package calculator

import "sort"

// Transfer is a payment from a debtor to a creditor that moves both toward settled.
type Transfer struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount float64
}

// SuggestTransfers returns payments that bring every row to settled.
//
// Algorithm:
//   - Split rows into debtors (net < 0) and creditors (net > 0)
//   - Sort both by outstanding amount, largest first, ties by name
//   - Greedy: match the current debtor with the current creditor for the smaller
//     of the two outstanding amounts, then advance whichever is exhausted
func SuggestTransfers(rows []Row) []Transfer {
	type balance struct {
		name   string
		amount float64
	}

	var debtors, creditors []balance
	for _, r := range rows {
		switch r.Position() {
		case PositionOwes:
			debtors = append(debtors, balance{name: r.Participant, amount: -r.Net})
		case PositionOwed:
			creditors = append(creditors, balance{name: r.Participant, amount: r.Net})
		}
	}

	byAmount := func(bs []balance) func(i, j int) bool {
		return func(i, j int) bool {
			if bs[i].amount != bs[j].amount {
				return bs[i].amount > bs[j].amount
			}
			return bs[i].name < bs[j].name
		}
	}
	sort.Slice(debtors, byAmount(debtors))
	sort.Slice(creditors, byAmount(creditors))

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtors[i].amount
		if creditors[j].amount < amount {
			amount = creditors[j].amount
		}

		if amount > SettledEpsilon {
			transfers = append(transfers, Transfer{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount <= SettledEpsilon {
			i++
		}
		if creditors[j].amount <= SettledEpsilon {
			j++
		}
	}

	return transfers
}
