package middleware

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/moneyquest/internal/metrics"
)

type empty struct{}

func TestUserScope(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"named user", "Priya", "Priya"},
		{"trimmed", "  Priya ", "Priya"},
		{"missing header", "", GuestUser},
		{"blank header", "   ", GuestUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := connect.NewRequest(&empty{})
			if tt.header != "" {
				req.Header().Set(UserHeader, tt.header)
			}

			var got string
			next := func(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
				got = GetUserID(ctx)
				return connect.NewResponse(&empty{}), nil
			}

			if _, err := UserScope()(next)(context.Background(), req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetUserID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetUserID_Default(t *testing.T) {
	if got := GetUserID(context.Background()); got != GuestUser {
		t.Errorf("GetUserID = %q, want %q", got, GuestUser)
	}
	if got := GetUserID(WithUserID(context.Background(), "Sam")); got != "Sam" {
		t.Errorf("GetUserID = %q, want Sam", got)
	}
}

func TestLoggingInterceptor_RecordsCodes(t *testing.T) {
	m := metrics.New()
	interceptor := LoggingInterceptor(m)

	ok := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&empty{}), nil
	}
	notFound := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	}
	plain := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errors.New("boom")
	}

	ctx := context.Background()
	req := connect.NewRequest(&empty{})
	procedure := req.Spec().Procedure

	for range 2 {
		if _, err := interceptor(ok)(ctx, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := interceptor(notFound)(ctx, req); connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := interceptor(plain)(ctx, req); err == nil {
		t.Fatal("expected error")
	}

	cases := map[string]float64{
		"ok":                          2,
		connect.CodeNotFound.String(): 1,
		connect.CodeUnknown.String():  1,
	}
	for code, want := range cases {
		if got := testutil.ToFloat64(m.RPCs.WithLabelValues(procedure, code)); got != want {
			t.Errorf("count for %s = %v, want %v", code, got, want)
		}
	}
}

func TestLoggingInterceptor_NilMetrics(t *testing.T) {
	next := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&empty{}), nil
	}
	if _, err := LoggingInterceptor(nil)(next)(context.Background(), connect.NewRequest(&empty{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
