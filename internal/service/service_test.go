package service

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/internal/metrics"
	"github.com/mmynk/moneyquest/internal/middleware"
	"github.com/mmynk/moneyquest/internal/storage/sqlite"
	"github.com/mmynk/moneyquest/pkg/api/apiconnect"
)

// testServer exposes all services over an httptest server backed by a temp database.
type testServer struct {
	url     string
	metrics *metrics.Metrics
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New()
	interceptors := connect.WithInterceptors(middleware.UserScope(), middleware.LoggingInterceptor(m))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewSplitServiceHandler(NewSplitService(store, "₹"), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(store, 10000, "₹"), interceptors))
	mux.Handle(apiconnect.NewPreferenceServiceHandler(NewPreferenceService(store), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{url: server.URL, metrics: m}
}

func userOption(user string) connect.ClientOption {
	return connect.WithInterceptors(middleware.UserHeaderInterceptor(user))
}

func (s *testServer) splitClient(user string) apiconnect.SplitServiceClient {
	return apiconnect.NewSplitServiceClient(http.DefaultClient, s.url, userOption(user))
}

func (s *testServer) expenseClient(user string) apiconnect.ExpenseServiceClient {
	return apiconnect.NewExpenseServiceClient(http.DefaultClient, s.url, userOption(user))
}

func (s *testServer) preferenceClient(user string) apiconnect.PreferenceServiceClient {
	return apiconnect.NewPreferenceServiceClient(http.DefaultClient, s.url, userOption(user))
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := connect.CodeOf(err); got != code {
		t.Fatalf("expected code %v, got %v (%v)", code, got, err)
	}
}
