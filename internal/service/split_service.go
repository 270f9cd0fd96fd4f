package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/internal/calculator"
	"github.com/mmynk/moneyquest/internal/middleware"
	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/storage"
	"github.com/mmynk/moneyquest/pkg/api"
	"github.com/mmynk/moneyquest/pkg/api/apiconnect"
)

var (
	errSessionIDRequired = errors.New("session_id required")
	errPurchaseRequired  = errors.New("purchase required")
	errReceiptNeedsNames = errors.New("add participants before scanning a receipt")
	errReceiptHasItems   = errors.New("receipt scan only fills an empty session")
)

// SplitService implements the Connect SplitService
type SplitService struct {
	apiconnect.UnimplementedSplitServiceHandler
	store    storage.SessionStore
	currency string
}

// NewSplitService creates a new SplitService with the given storage backend.
// currency is the symbol used in rendered settlement lines.
func NewSplitService(store storage.SessionStore, currency string) *SplitService {
	return &SplitService{store: store, currency: currency}
}

// Settle computes a settlement for participants and purchases sent in the
// request without storing anything.
func (s *SplitService) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	participants := normalizeNames(req.Msg.Participants)
	purchases := purchasesFromAPI(req.Msg.Purchases)

	slog.Debug("Settle request received",
		"participants", participants,
		"purchases_count", len(purchases),
	)

	settlement, err := calculator.Settle(participants, toCalculatorPurchases(purchases))
	if err != nil {
		slog.Error("Settle failed", "error", err)
		return nil, toConnectError(err, connect.CodeInvalidArgument)
	}

	return connect.NewResponse(&api.SettleResponse{
		Settlement: settlementToAPI(s.currency, settlement),
	}), nil
}

// CreateSession validates and stores a new split session.
func (s *SplitService) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	userID := middleware.GetUserID(ctx)
	participants := normalizeNames(req.Msg.Participants)
	purchases := purchasesFromAPI(req.Msg.Purchases)

	slog.Info("CreateSession request received",
		"user_id", userID,
		"scenario", req.Msg.Scenario,
		"participants_count", len(participants),
	)

	// Settle validates names and purchases in one pass
	if _, err := calculator.Settle(participants, toCalculatorPurchases(purchases)); err != nil {
		slog.Error("CreateSession validation failed", "error", err)
		return nil, toConnectError(err, connect.CodeInvalidArgument)
	}

	session := &models.Session{
		UserID:       userID,
		Scenario:     req.Msg.Scenario,
		Title:        req.Msg.Title,
		Participants: participants,
		Purchases:    purchases,
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Info("Session created", "session_id", session.ID, "title", session.Title)

	return connect.NewResponse(&api.CreateSessionResponse{
		Session: sessionToAPI(session),
	}), nil
}

// GetSession retrieves a session by ID.
func (s *SplitService) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	session, err := s.loadSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetSessionResponse{
		Session: sessionToAPI(session),
	}), nil
}

// ListSessions retrieves the caller's sessions, newest first.
func (s *SplitService) ListSessions(ctx context.Context, req *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	userID := middleware.GetUserID(ctx)

	sessions, err := s.store.ListSessions(ctx, userID)
	if err != nil {
		slog.Error("ListSessions failed", "user_id", userID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	out := make([]*api.Session, len(sessions))
	for i, session := range sessions {
		out[i] = sessionToAPI(session)
	}

	slog.Info("ListSessions successful", "user_id", userID, "count", len(sessions))

	return connect.NewResponse(&api.ListSessionsResponse{Sessions: out}), nil
}

// DeleteSession removes a session and its purchases.
func (s *SplitService) DeleteSession(ctx context.Context, req *connect.Request[api.DeleteSessionRequest]) (*connect.Response[api.DeleteSessionResponse], error) {
	if req.Msg.SessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSessionIDRequired)
	}

	if err := s.store.DeleteSession(ctx, middleware.GetUserID(ctx), req.Msg.SessionID); err != nil {
		slog.Error("DeleteSession failed", "session_id", req.Msg.SessionID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Info("Session deleted", "session_id", req.Msg.SessionID)

	return connect.NewResponse(&api.DeleteSessionResponse{}), nil
}

// AddPurchase validates a purchase against the session's participants and
// appends it.
func (s *SplitService) AddPurchase(ctx context.Context, req *connect.Request[api.AddPurchaseRequest]) (*connect.Response[api.AddPurchaseResponse], error) {
	if req.Msg.Purchase == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errPurchaseRequired)
	}

	session, err := s.loadSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	purchase := purchaseFromAPI(req.Msg.Purchase)
	if err := calculator.ValidatePurchase(session.Participants, toCalculatorPurchase(purchase)); err != nil {
		slog.Error("AddPurchase validation failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err, connect.CodeInvalidArgument)
	}

	if err := s.store.AddPurchases(ctx, session.UserID, session.ID, []models.Purchase{purchase}); err != nil {
		slog.Error("AddPurchase failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Debug("Purchase added",
		"session_id", session.ID,
		"name", purchase.Name,
		"amount", purchase.Amount,
		"payer", purchase.Payer,
		"sharers", purchase.Sharers,
	)

	session, err = s.loadSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.AddPurchaseResponse{Session: sessionToAPI(session)}), nil
}

// RemovePurchase deletes the purchase at the given zero-based index.
func (s *SplitService) RemovePurchase(ctx context.Context, req *connect.Request[api.RemovePurchaseRequest]) (*connect.Response[api.RemovePurchaseResponse], error) {
	if req.Msg.SessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSessionIDRequired)
	}

	userID := middleware.GetUserID(ctx)
	if err := s.store.RemovePurchase(ctx, userID, req.Msg.SessionID, req.Msg.Index); err != nil {
		slog.Error("RemovePurchase failed",
			"session_id", req.Msg.SessionID,
			"index", req.Msg.Index,
			"error", err,
		)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	session, err := s.loadSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.RemovePurchaseResponse{Session: sessionToAPI(session)}), nil
}

// ScanReceipt fills an empty session with sample purchases, standing in for
// receipt recognition.
func (s *SplitService) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	session, err := s.loadSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	if len(session.Participants) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errReceiptNeedsNames)
	}
	if len(session.Purchases) > 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errReceiptHasItems)
	}

	purchases := fromCalculatorPurchases(calculator.SamplePurchases(session.Participants))
	if err := s.store.AddPurchases(ctx, session.UserID, session.ID, purchases); err != nil {
		slog.Error("ScanReceipt failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Info("Receipt scanned", "session_id", session.ID, "purchases_count", len(purchases))

	session, err = s.loadSession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ScanReceiptResponse{Session: sessionToAPI(session)}), nil
}

// SettleSession computes the settlement for a stored session.
func (s *SplitService) SettleSession(ctx context.Context, req *connect.Request[api.SettleSessionRequest]) (*connect.Response[api.SettleSessionResponse], error) {
	session, err := s.loadSession(ctx, req.Msg.SessionID)
	if err != nil {
		return nil, err
	}

	settlement, err := calculator.Settle(session.Participants, toCalculatorPurchases(session.Purchases))
	if err != nil {
		// Stored purchases were validated on the way in
		slog.Error("SettleSession failed", "session_id", session.ID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	slog.Info("SettleSession successful",
		"session_id", session.ID,
		"purchases_count", len(session.Purchases),
		"grand_total", settlement.GrandTotal,
	)

	return connect.NewResponse(&api.SettleSessionResponse{
		Settlement: settlementToAPI(s.currency, settlement),
	}), nil
}

// loadSession fetches the caller's session, mapping failures to Connect errors.
func (s *SplitService) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSessionIDRequired)
	}

	session, err := s.store.GetSession(ctx, middleware.GetUserID(ctx), sessionID)
	if err != nil {
		slog.Error("GetSession failed", "session_id", sessionID, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}
	return session, nil
}
