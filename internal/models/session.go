package models

// Session is one bill-split workflow.
// It replaces the wizard's in-page participant and purchase lists.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// UserID is the name of the user who owns the session.
	UserID string

	// Scenario is a free-form label chosen at the start (e.g., "restaurant", "trip").
	Scenario string

	// Title is the human-readable name for the session.
	// Auto-generated from participants when empty.
	Title string

	// Participants are the people splitting costs, in the order they were entered.
	Participants []string

	// Purchases are the shared expenses, in the order they were added.
	Purchases []Purchase

	// CreatedAt is the Unix timestamp when the session was created.
	CreatedAt int64
}

// Purchase is one shared expense within a session.
// Purchases are never edited, only added or removed.
type Purchase struct {
	// ID is the unique identifier for the purchase (UUID format).
	ID string

	// Name describes the purchase (e.g., "Pizza", "Cab to airport").
	Name string

	// Amount is what the payer spent.
	Amount float64

	// Payer is the participant who paid.
	Payer string

	// Sharers are the participants who split the cost equally.
	Sharers []string
}
