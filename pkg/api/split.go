package api

// Purchase is one shared expense.
type Purchase struct {
	Name    string   `json:"name"`
	Amount  float64  `json:"amount"`
	Payer   string   `json:"payer"`
	Sharers []string `json:"sharers"`
}

// SettlementRow is one participant's net position.
type SettlementRow struct {
	Participant string  `json:"participant"`
	Paid        float64 `json:"paid"`
	Owed        float64 `json:"owed"`
	Net         float64 `json:"net"`
	Position    string  `json:"position"` // "owed", "owes" or "settled"
	Headline    string  `json:"headline"`
	Detail      string  `json:"detail"`
}

// Transfer is a suggested payment that settles debts.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Text   string  `json:"text"`
}

// Settlement is the rendered ledger for a set of purchases.
type Settlement struct {
	Rows       []*SettlementRow `json:"rows"`
	Transfers  []*Transfer      `json:"transfers"`
	GrandTotal float64          `json:"grand_total"`
}

// Session is a stored bill-split workflow.
type Session struct {
	SessionID    string      `json:"session_id"`
	Scenario     string      `json:"scenario"`
	Title        string      `json:"title"`
	Participants []string    `json:"participants"`
	Purchases    []*Purchase `json:"purchases"`
	CreatedAt    int64       `json:"created_at"`
}

type SettleRequest struct {
	Participants []string    `json:"participants"`
	Purchases    []*Purchase `json:"purchases"`
}

type SettleResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type CreateSessionRequest struct {
	Scenario     string      `json:"scenario"`
	Title        string      `json:"title"`
	Participants []string    `json:"participants"`
	Purchases    []*Purchase `json:"purchases"`
}

type CreateSessionResponse struct {
	Session *Session `json:"session"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type GetSessionResponse struct {
	Session *Session `json:"session"`
}

type ListSessionsRequest struct{}

type ListSessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}

type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

type DeleteSessionResponse struct{}

type AddPurchaseRequest struct {
	SessionID string    `json:"session_id"`
	Purchase  *Purchase `json:"purchase"`
}

type AddPurchaseResponse struct {
	Session *Session `json:"session"`
}

type RemovePurchaseRequest struct {
	SessionID string `json:"session_id"`
	Index     int    `json:"index"`
}

type RemovePurchaseResponse struct {
	Session *Session `json:"session"`
}

type ScanReceiptRequest struct {
	SessionID string `json:"session_id"`
}

type ScanReceiptResponse struct {
	Session *Session `json:"session"`
}

type SettleSessionRequest struct {
	SessionID string `json:"session_id"`
}

type SettleSessionResponse struct {
	Settlement *Settlement `json:"settlement"`
}
