package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/moneyquest/pkg/api"
	"github.com/mmynk/moneyquest/pkg/api/apiconnect"
)

func TestSettle_EqualSplit(t *testing.T) {
	client := setupTestServer(t).splitClient("alice")

	resp, err := client.Settle(context.Background(), connect.NewRequest(&api.SettleRequest{
		Participants: []string{"Alice", " Bob ", ""},
		Purchases: []*api.Purchase{
			{Name: "Dinner", Amount: 100, Payer: "Alice", Sharers: []string{"Alice", "Bob"}},
		},
	}))
	if err != nil {
		t.Fatalf("Settle failed: %v", err)
	}

	s := resp.Msg.Settlement
	if len(s.Rows) != 2 {
		t.Fatalf("expected 2 rows (blank name dropped), got %d", len(s.Rows))
	}
	alice, bob := s.Rows[0], s.Rows[1]
	if alice.Net != 50 || alice.Position != "owed" || alice.Headline != "Gets ₹50.00" {
		t.Errorf("Alice row = %+v", alice)
	}
	if bob.Participant != "Bob" || bob.Net != -50 || bob.Position != "owes" || bob.Headline != "Owes ₹50.00" {
		t.Errorf("Bob row = %+v", bob)
	}
	if s.GrandTotal != 100 {
		t.Errorf("grand total = %v, want 100", s.GrandTotal)
	}
	if len(s.Transfers) != 1 || s.Transfers[0].Text != "Bob pays Alice ₹50.00" {
		t.Errorf("transfers = %+v", s.Transfers)
	}
}

func TestSettle_Rejections(t *testing.T) {
	client := setupTestServer(t).splitClient("alice")

	tests := []struct {
		name string
		req  *api.SettleRequest
	}{
		{
			name: "empty sharers",
			req: &api.SettleRequest{
				Participants: []string{"A", "B"},
				Purchases:    []*api.Purchase{{Name: "x", Amount: 10, Payer: "A"}},
			},
		},
		{
			name: "non-positive amount",
			req: &api.SettleRequest{
				Participants: []string{"A"},
				Purchases:    []*api.Purchase{{Name: "x", Amount: 0, Payer: "A", Sharers: []string{"A"}}},
			},
		},
		{
			name: "unknown payer",
			req: &api.SettleRequest{
				Participants: []string{"A"},
				Purchases:    []*api.Purchase{{Name: "x", Amount: 5, Payer: "Z", Sharers: []string{"A"}}},
			},
		},
		{
			name: "duplicate participant",
			req:  &api.SettleRequest{Participants: []string{"A", "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Settle(context.Background(), connect.NewRequest(tt.req))
			wantCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := setupTestServer(t)
	client := srv.splitClient("alice")
	ctx := context.Background()

	created, err := client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{
		Scenario:     "trip",
		Participants: []string{"Alice", "Bob", "Cara"},
	}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	sessionID := created.Msg.Session.SessionID
	if sessionID == "" {
		t.Fatal("expected session ID")
	}
	if created.Msg.Session.Title != "Split with Alice, Bob, Cara" {
		t.Errorf("title = %q", created.Msg.Session.Title)
	}

	add := func(p *api.Purchase) (*connect.Response[api.AddPurchaseResponse], error) {
		return client.AddPurchase(ctx, connect.NewRequest(&api.AddPurchaseRequest{SessionID: sessionID, Purchase: p}))
	}

	if _, err := add(&api.Purchase{Name: "Cab", Amount: 90, Payer: "Alice", Sharers: []string{"Alice", "Bob", "Cara"}}); err != nil {
		t.Fatalf("AddPurchase failed: %v", err)
	}
	if _, err := add(&api.Purchase{Name: "Mistake", Amount: 10, Payer: "Bob", Sharers: []string{"Bob"}}); err != nil {
		t.Fatalf("AddPurchase failed: %v", err)
	}
	resp, err := add(&api.Purchase{Name: "Snacks", Amount: 30, Payer: "Bob", Sharers: []string{"Bob", "Cara"}})
	if err != nil {
		t.Fatalf("AddPurchase failed: %v", err)
	}
	if len(resp.Msg.Session.Purchases) != 3 {
		t.Fatalf("expected 3 purchases, got %d", len(resp.Msg.Session.Purchases))
	}

	t.Run("AddPurchase rejects unknown sharer", func(t *testing.T) {
		_, err := add(&api.Purchase{Name: "Bad", Amount: 10, Payer: "Alice", Sharers: []string{"Dan"}})
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("AddPurchase rejects empty sharers", func(t *testing.T) {
		_, err := add(&api.Purchase{Name: "Bad", Amount: 10, Payer: "Alice"})
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("AddPurchase requires purchase", func(t *testing.T) {
		_, err := add(nil)
		wantCode(t, err, connect.CodeInvalidArgument)
	})

	removed, err := client.RemovePurchase(ctx, connect.NewRequest(&api.RemovePurchaseRequest{SessionID: sessionID, Index: 1}))
	if err != nil {
		t.Fatalf("RemovePurchase failed: %v", err)
	}
	if got := removed.Msg.Session.Purchases; len(got) != 2 || got[1].Name != "Snacks" {
		t.Errorf("purchases after removal = %+v", got)
	}

	t.Run("RemovePurchase out of range", func(t *testing.T) {
		_, err := client.RemovePurchase(ctx, connect.NewRequest(&api.RemovePurchaseRequest{SessionID: sessionID, Index: 7}))
		wantCode(t, err, connect.CodeNotFound)
	})

	settled, err := client.SettleSession(ctx, connect.NewRequest(&api.SettleSessionRequest{SessionID: sessionID}))
	if err != nil {
		t.Fatalf("SettleSession failed: %v", err)
	}
	// Alice: paid 90, owes 30 -> +60
	// Bob: paid 30, owes 30 + 15 -> -15
	// Cara: owes 30 + 15 -> -45
	want := map[string]float64{"Alice": 60, "Bob": -15, "Cara": -45}
	var sum float64
	for _, row := range settled.Msg.Settlement.Rows {
		if math.Abs(row.Net-want[row.Participant]) > 1e-9 {
			t.Errorf("%s net = %v, want %v", row.Participant, row.Net, want[row.Participant])
		}
		sum += row.Net
	}
	if math.Abs(sum) > 1e-6 {
		t.Errorf("nets sum to %v, want 0", sum)
	}
	if len(settled.Msg.Settlement.Transfers) != 2 {
		t.Errorf("transfers = %+v, want 2", settled.Msg.Settlement.Transfers)
	}

	list, err := client.ListSessions(ctx, connect.NewRequest(&api.ListSessionsRequest{}))
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(list.Msg.Sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(list.Msg.Sessions))
	}

	if _, err := client.DeleteSession(ctx, connect.NewRequest(&api.DeleteSessionRequest{SessionID: sessionID})); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	_, err = client.GetSession(ctx, connect.NewRequest(&api.GetSessionRequest{SessionID: sessionID}))
	wantCode(t, err, connect.CodeNotFound)

	if got := testutil.ToFloat64(srv.metrics.RPCs.WithLabelValues(apiconnect.SplitServiceAddPurchaseProcedure, "ok")); got != 3 {
		t.Errorf("AddPurchase ok count = %v, want 3", got)
	}
	if got := testutil.ToFloat64(srv.metrics.RPCs.WithLabelValues(apiconnect.SplitServiceGetSessionProcedure, connect.CodeNotFound.String())); got != 1 {
		t.Errorf("GetSession not_found count = %v, want 1", got)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	client := setupTestServer(t).splitClient("alice")
	ctx := context.Background()

	_, err := client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{
		Participants: []string{"A", "B"},
		Purchases:    []*api.Purchase{{Name: "x", Amount: 10, Payer: "C", Sharers: []string{"A"}}},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)

	_, err = client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{
		Participants: []string{"A", "A"},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestSessions_ScopedByUser(t *testing.T) {
	srv := setupTestServer(t)
	ctx := context.Background()

	created, err := srv.splitClient("alice").CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{
		Participants: []string{"A", "B"},
	}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	_, err = srv.splitClient("bob").GetSession(ctx, connect.NewRequest(&api.GetSessionRequest{
		SessionID: created.Msg.Session.SessionID,
	}))
	wantCode(t, err, connect.CodeNotFound)

	list, err := srv.splitClient("bob").ListSessions(ctx, connect.NewRequest(&api.ListSessionsRequest{}))
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(list.Msg.Sessions) != 0 {
		t.Errorf("bob sees %d sessions, want 0", len(list.Msg.Sessions))
	}
}

func TestScanReceipt(t *testing.T) {
	client := setupTestServer(t).splitClient("alice")
	ctx := context.Background()

	created, err := client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{
		Participants: []string{"Asha", "Ben"},
	}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	sessionID := created.Msg.Session.SessionID

	resp, err := client.ScanReceipt(ctx, connect.NewRequest(&api.ScanReceiptRequest{SessionID: sessionID}))
	if err != nil {
		t.Fatalf("ScanReceipt failed: %v", err)
	}
	purchases := resp.Msg.Session.Purchases
	if len(purchases) != 3 {
		t.Fatalf("expected 3 sample purchases, got %d", len(purchases))
	}
	if purchases[2].Name != "Garlic Bread" || purchases[2].Payer != "Ben" {
		t.Errorf("third purchase = %+v", purchases[2])
	}

	_, err = client.ScanReceipt(ctx, connect.NewRequest(&api.ScanReceiptRequest{SessionID: sessionID}))
	wantCode(t, err, connect.CodeFailedPrecondition)

	empty, err := client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{}))
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	_, err = client.ScanReceipt(ctx, connect.NewRequest(&api.ScanReceiptRequest{SessionID: empty.Msg.Session.SessionID}))
	wantCode(t, err, connect.CodeFailedPrecondition)
}

func TestGetSession_RequiresID(t *testing.T) {
	client := setupTestServer(t).splitClient("alice")

	_, err := client.GetSession(context.Background(), connect.NewRequest(&api.GetSessionRequest{}))
	wantCode(t, err, connect.CodeInvalidArgument)
}
