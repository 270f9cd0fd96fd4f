package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/pkg/api"
)

// PreferenceServiceName is the fully-qualified name of the PreferenceService.
const PreferenceServiceName = "moneyquest.v1.PreferenceService"

// Procedure paths for each PreferenceService method.
const (
	PreferenceServiceSetPreferenceProcedure    = "/moneyquest.v1.PreferenceService/SetPreference"
	PreferenceServiceGetPreferenceProcedure    = "/moneyquest.v1.PreferenceService/GetPreference"
	PreferenceServiceListPreferencesProcedure  = "/moneyquest.v1.PreferenceService/ListPreferences"
	PreferenceServiceDeletePreferenceProcedure = "/moneyquest.v1.PreferenceService/DeletePreference"
)

// PreferenceServiceHandler is implemented by the server side of the PreferenceService.
type PreferenceServiceHandler interface {
	SetPreference(context.Context, *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.SetPreferenceResponse], error)
	GetPreference(context.Context, *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.GetPreferenceResponse], error)
	ListPreferences(context.Context, *connect.Request[api.ListPreferencesRequest]) (*connect.Response[api.ListPreferencesResponse], error)
	DeletePreference(context.Context, *connect.Request[api.DeletePreferenceRequest]) (*connect.Response[api.DeletePreferenceResponse], error)
}

// NewPreferenceServiceHandler builds an HTTP handler for the service. It returns the
// path to mount the handler on.
func NewPreferenceServiceHandler(svc PreferenceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	setPreferenceHandler := connect.NewUnaryHandler(PreferenceServiceSetPreferenceProcedure, svc.SetPreference, opts...)
	getPreferenceHandler := connect.NewUnaryHandler(PreferenceServiceGetPreferenceProcedure, svc.GetPreference, opts...)
	listPreferencesHandler := connect.NewUnaryHandler(PreferenceServiceListPreferencesProcedure, svc.ListPreferences, opts...)
	deletePreferenceHandler := connect.NewUnaryHandler(PreferenceServiceDeletePreferenceProcedure, svc.DeletePreference, opts...)
	return "/" + PreferenceServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PreferenceServiceSetPreferenceProcedure:
			setPreferenceHandler.ServeHTTP(w, r)
		case PreferenceServiceGetPreferenceProcedure:
			getPreferenceHandler.ServeHTTP(w, r)
		case PreferenceServiceListPreferencesProcedure:
			listPreferencesHandler.ServeHTTP(w, r)
		case PreferenceServiceDeletePreferenceProcedure:
			deletePreferenceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPreferenceServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPreferenceServiceHandler struct{}

func (UnimplementedPreferenceServiceHandler) SetPreference(context.Context, *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.SetPreferenceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.PreferenceService.SetPreference is not implemented"))
}

func (UnimplementedPreferenceServiceHandler) GetPreference(context.Context, *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.GetPreferenceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.PreferenceService.GetPreference is not implemented"))
}

func (UnimplementedPreferenceServiceHandler) ListPreferences(context.Context, *connect.Request[api.ListPreferencesRequest]) (*connect.Response[api.ListPreferencesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.PreferenceService.ListPreferences is not implemented"))
}

func (UnimplementedPreferenceServiceHandler) DeletePreference(context.Context, *connect.Request[api.DeletePreferenceRequest]) (*connect.Response[api.DeletePreferenceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.PreferenceService.DeletePreference is not implemented"))
}

// PreferenceServiceClient is a client for the PreferenceService.
type PreferenceServiceClient interface {
	SetPreference(context.Context, *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.SetPreferenceResponse], error)
	GetPreference(context.Context, *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.GetPreferenceResponse], error)
	ListPreferences(context.Context, *connect.Request[api.ListPreferencesRequest]) (*connect.Response[api.ListPreferencesResponse], error)
	DeletePreference(context.Context, *connect.Request[api.DeletePreferenceRequest]) (*connect.Response[api.DeletePreferenceResponse], error)
}

// NewPreferenceServiceClient constructs a client for the PreferenceService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewPreferenceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PreferenceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &preferenceServiceClient{
		setPreference:    connect.NewClient[api.SetPreferenceRequest, api.SetPreferenceResponse](httpClient, baseURL+PreferenceServiceSetPreferenceProcedure, opts...),
		getPreference:    connect.NewClient[api.GetPreferenceRequest, api.GetPreferenceResponse](httpClient, baseURL+PreferenceServiceGetPreferenceProcedure, opts...),
		listPreferences:  connect.NewClient[api.ListPreferencesRequest, api.ListPreferencesResponse](httpClient, baseURL+PreferenceServiceListPreferencesProcedure, opts...),
		deletePreference: connect.NewClient[api.DeletePreferenceRequest, api.DeletePreferenceResponse](httpClient, baseURL+PreferenceServiceDeletePreferenceProcedure, opts...),
	}
}

type preferenceServiceClient struct {
	setPreference    *connect.Client[api.SetPreferenceRequest, api.SetPreferenceResponse]
	getPreference    *connect.Client[api.GetPreferenceRequest, api.GetPreferenceResponse]
	listPreferences  *connect.Client[api.ListPreferencesRequest, api.ListPreferencesResponse]
	deletePreference *connect.Client[api.DeletePreferenceRequest, api.DeletePreferenceResponse]
}

func (c *preferenceServiceClient) SetPreference(ctx context.Context, req *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.SetPreferenceResponse], error) {
	return c.setPreference.CallUnary(ctx, req)
}

func (c *preferenceServiceClient) GetPreference(ctx context.Context, req *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.GetPreferenceResponse], error) {
	return c.getPreference.CallUnary(ctx, req)
}

func (c *preferenceServiceClient) ListPreferences(ctx context.Context, req *connect.Request[api.ListPreferencesRequest]) (*connect.Response[api.ListPreferencesResponse], error) {
	return c.listPreferences.CallUnary(ctx, req)
}

func (c *preferenceServiceClient) DeletePreference(ctx context.Context, req *connect.Request[api.DeletePreferenceRequest]) (*connect.Response[api.DeletePreferenceResponse], error) {
	return c.deletePreference.CallUnary(ctx, req)
}
