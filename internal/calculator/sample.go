package calculator

// SamplePurchases returns the purchases a mock receipt scan produces for the
// given participants. It returns nil when there are no participants.
func SamplePurchases(participants []string) []Purchase {
	if len(participants) == 0 {
		return nil
	}

	firstTwo := participants[:min(len(participants), 2)]
	secondPayer := participants[0]
	if len(participants) > 1 {
		secondPayer = participants[1]
	}

	return []Purchase{
		{Name: "Pizza", Amount: 450, Payer: participants[0], Sharers: clone(firstTwo)},
		{Name: "Coke", Amount: 120, Payer: participants[0], Sharers: clone(participants)},
		{Name: "Garlic Bread", Amount: 180, Payer: secondPayer, Sharers: clone(firstTwo)},
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
