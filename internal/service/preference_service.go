package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/internal/middleware"
	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/storage"
	"github.com/mmynk/moneyquest/pkg/api"
	"github.com/mmynk/moneyquest/pkg/api/apiconnect"
)

var errKeyRequired = errors.New("key required")

// PreferenceService implements the Connect PreferenceService, a per-user
// key/value store.
type PreferenceService struct {
	apiconnect.UnimplementedPreferenceServiceHandler
	store storage.PreferenceStore
}

// NewPreferenceService creates a new PreferenceService with the given storage backend.
func NewPreferenceService(store storage.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

func (s *PreferenceService) SetPreference(ctx context.Context, req *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.SetPreferenceResponse], error) {
	key := strings.TrimSpace(req.Msg.Key)
	if key == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errKeyRequired)
	}

	pref := &models.Preference{
		UserID: middleware.GetUserID(ctx),
		Key:    key,
		Value:  req.Msg.Value,
	}
	if err := s.store.SetPreference(ctx, pref); err != nil {
		slog.Error("SetPreference failed", "key", key, "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	return connect.NewResponse(&api.SetPreferenceResponse{Preference: preferenceToAPI(pref)}), nil
}

func (s *PreferenceService) GetPreference(ctx context.Context, req *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.GetPreferenceResponse], error) {
	key := strings.TrimSpace(req.Msg.Key)
	if key == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errKeyRequired)
	}

	pref, err := s.store.GetPreference(ctx, middleware.GetUserID(ctx), key)
	if err != nil {
		return nil, toConnectError(err, connect.CodeInternal)
	}

	return connect.NewResponse(&api.GetPreferenceResponse{Preference: preferenceToAPI(pref)}), nil
}

func (s *PreferenceService) ListPreferences(ctx context.Context, req *connect.Request[api.ListPreferencesRequest]) (*connect.Response[api.ListPreferencesResponse], error) {
	prefs, err := s.store.ListPreferences(ctx, middleware.GetUserID(ctx))
	if err != nil {
		slog.Error("ListPreferences failed", "error", err)
		return nil, toConnectError(err, connect.CodeInternal)
	}

	out := make([]*api.Preference, len(prefs))
	for i, p := range prefs {
		out[i] = preferenceToAPI(p)
	}
	return connect.NewResponse(&api.ListPreferencesResponse{Preferences: out}), nil
}

func (s *PreferenceService) DeletePreference(ctx context.Context, req *connect.Request[api.DeletePreferenceRequest]) (*connect.Response[api.DeletePreferenceResponse], error) {
	key := strings.TrimSpace(req.Msg.Key)
	if key == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errKeyRequired)
	}

	if err := s.store.DeletePreference(ctx, middleware.GetUserID(ctx), key); err != nil {
		return nil, toConnectError(err, connect.CodeInternal)
	}

	return connect.NewResponse(&api.DeletePreferenceResponse{}), nil
}
