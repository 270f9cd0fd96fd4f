package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/moneyquest/pkg/api"
)

// SplitServiceName is the fully-qualified name of the SplitService.
const SplitServiceName = "moneyquest.v1.SplitService"

// Procedure paths for each SplitService method.
const (
	SplitServiceSettleProcedure         = "/moneyquest.v1.SplitService/Settle"
	SplitServiceCreateSessionProcedure  = "/moneyquest.v1.SplitService/CreateSession"
	SplitServiceGetSessionProcedure     = "/moneyquest.v1.SplitService/GetSession"
	SplitServiceListSessionsProcedure   = "/moneyquest.v1.SplitService/ListSessions"
	SplitServiceDeleteSessionProcedure  = "/moneyquest.v1.SplitService/DeleteSession"
	SplitServiceAddPurchaseProcedure    = "/moneyquest.v1.SplitService/AddPurchase"
	SplitServiceRemovePurchaseProcedure = "/moneyquest.v1.SplitService/RemovePurchase"
	SplitServiceScanReceiptProcedure    = "/moneyquest.v1.SplitService/ScanReceipt"
	SplitServiceSettleSessionProcedure  = "/moneyquest.v1.SplitService/SettleSession"
)

// SplitServiceHandler is implemented by the server side of the SplitService.
type SplitServiceHandler interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error)
	ListSessions(context.Context, *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error)
	DeleteSession(context.Context, *connect.Request[api.DeleteSessionRequest]) (*connect.Response[api.DeleteSessionResponse], error)
	AddPurchase(context.Context, *connect.Request[api.AddPurchaseRequest]) (*connect.Response[api.AddPurchaseResponse], error)
	RemovePurchase(context.Context, *connect.Request[api.RemovePurchaseRequest]) (*connect.Response[api.RemovePurchaseResponse], error)
	ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error)
	SettleSession(context.Context, *connect.Request[api.SettleSessionRequest]) (*connect.Response[api.SettleSessionResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for the service. It returns the
// path to mount the handler on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	settleHandler := connect.NewUnaryHandler(SplitServiceSettleProcedure, svc.Settle, opts...)
	createSessionHandler := connect.NewUnaryHandler(SplitServiceCreateSessionProcedure, svc.CreateSession, opts...)
	getSessionHandler := connect.NewUnaryHandler(SplitServiceGetSessionProcedure, svc.GetSession, opts...)
	listSessionsHandler := connect.NewUnaryHandler(SplitServiceListSessionsProcedure, svc.ListSessions, opts...)
	deleteSessionHandler := connect.NewUnaryHandler(SplitServiceDeleteSessionProcedure, svc.DeleteSession, opts...)
	addPurchaseHandler := connect.NewUnaryHandler(SplitServiceAddPurchaseProcedure, svc.AddPurchase, opts...)
	removePurchaseHandler := connect.NewUnaryHandler(SplitServiceRemovePurchaseProcedure, svc.RemovePurchase, opts...)
	scanReceiptHandler := connect.NewUnaryHandler(SplitServiceScanReceiptProcedure, svc.ScanReceipt, opts...)
	settleSessionHandler := connect.NewUnaryHandler(SplitServiceSettleSessionProcedure, svc.SettleSession, opts...)
	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceSettleProcedure:
			settleHandler.ServeHTTP(w, r)
		case SplitServiceCreateSessionProcedure:
			createSessionHandler.ServeHTTP(w, r)
		case SplitServiceGetSessionProcedure:
			getSessionHandler.ServeHTTP(w, r)
		case SplitServiceListSessionsProcedure:
			listSessionsHandler.ServeHTTP(w, r)
		case SplitServiceDeleteSessionProcedure:
			deleteSessionHandler.ServeHTTP(w, r)
		case SplitServiceAddPurchaseProcedure:
			addPurchaseHandler.ServeHTTP(w, r)
		case SplitServiceRemovePurchaseProcedure:
			removePurchaseHandler.ServeHTTP(w, r)
		case SplitServiceScanReceiptProcedure:
			scanReceiptHandler.ServeHTTP(w, r)
		case SplitServiceSettleSessionProcedure:
			settleSessionHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedSplitServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSplitServiceHandler struct{}

func (UnimplementedSplitServiceHandler) Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.Settle is not implemented"))
}

func (UnimplementedSplitServiceHandler) CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.CreateSession is not implemented"))
}

func (UnimplementedSplitServiceHandler) GetSession(context.Context, *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.GetSession is not implemented"))
}

func (UnimplementedSplitServiceHandler) ListSessions(context.Context, *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.ListSessions is not implemented"))
}

func (UnimplementedSplitServiceHandler) DeleteSession(context.Context, *connect.Request[api.DeleteSessionRequest]) (*connect.Response[api.DeleteSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.DeleteSession is not implemented"))
}

func (UnimplementedSplitServiceHandler) AddPurchase(context.Context, *connect.Request[api.AddPurchaseRequest]) (*connect.Response[api.AddPurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.AddPurchase is not implemented"))
}

func (UnimplementedSplitServiceHandler) RemovePurchase(context.Context, *connect.Request[api.RemovePurchaseRequest]) (*connect.Response[api.RemovePurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.RemovePurchase is not implemented"))
}

func (UnimplementedSplitServiceHandler) ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.ScanReceipt is not implemented"))
}

func (UnimplementedSplitServiceHandler) SettleSession(context.Context, *connect.Request[api.SettleSessionRequest]) (*connect.Response[api.SettleSessionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("moneyquest.v1.SplitService.SettleSession is not implemented"))
}

// SplitServiceClient is a client for the SplitService.
type SplitServiceClient interface {
	Settle(context.Context, *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error)
	CreateSession(context.Context, *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error)
	ListSessions(context.Context, *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error)
	DeleteSession(context.Context, *connect.Request[api.DeleteSessionRequest]) (*connect.Response[api.DeleteSessionResponse], error)
	AddPurchase(context.Context, *connect.Request[api.AddPurchaseRequest]) (*connect.Response[api.AddPurchaseResponse], error)
	RemovePurchase(context.Context, *connect.Request[api.RemovePurchaseRequest]) (*connect.Response[api.RemovePurchaseResponse], error)
	ScanReceipt(context.Context, *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error)
	SettleSession(context.Context, *connect.Request[api.SettleSessionRequest]) (*connect.Response[api.SettleSessionResponse], error)
}

// NewSplitServiceClient constructs a client for the SplitService. baseURL is the
// server root, e.g. http://localhost:8080.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &splitServiceClient{
		settle:         connect.NewClient[api.SettleRequest, api.SettleResponse](httpClient, baseURL+SplitServiceSettleProcedure, opts...),
		createSession:  connect.NewClient[api.CreateSessionRequest, api.CreateSessionResponse](httpClient, baseURL+SplitServiceCreateSessionProcedure, opts...),
		getSession:     connect.NewClient[api.GetSessionRequest, api.GetSessionResponse](httpClient, baseURL+SplitServiceGetSessionProcedure, opts...),
		listSessions:   connect.NewClient[api.ListSessionsRequest, api.ListSessionsResponse](httpClient, baseURL+SplitServiceListSessionsProcedure, opts...),
		deleteSession:  connect.NewClient[api.DeleteSessionRequest, api.DeleteSessionResponse](httpClient, baseURL+SplitServiceDeleteSessionProcedure, opts...),
		addPurchase:    connect.NewClient[api.AddPurchaseRequest, api.AddPurchaseResponse](httpClient, baseURL+SplitServiceAddPurchaseProcedure, opts...),
		removePurchase: connect.NewClient[api.RemovePurchaseRequest, api.RemovePurchaseResponse](httpClient, baseURL+SplitServiceRemovePurchaseProcedure, opts...),
		scanReceipt:    connect.NewClient[api.ScanReceiptRequest, api.ScanReceiptResponse](httpClient, baseURL+SplitServiceScanReceiptProcedure, opts...),
		settleSession:  connect.NewClient[api.SettleSessionRequest, api.SettleSessionResponse](httpClient, baseURL+SplitServiceSettleSessionProcedure, opts...),
	}
}

type splitServiceClient struct {
	settle         *connect.Client[api.SettleRequest, api.SettleResponse]
	createSession  *connect.Client[api.CreateSessionRequest, api.CreateSessionResponse]
	getSession     *connect.Client[api.GetSessionRequest, api.GetSessionResponse]
	listSessions   *connect.Client[api.ListSessionsRequest, api.ListSessionsResponse]
	deleteSession  *connect.Client[api.DeleteSessionRequest, api.DeleteSessionResponse]
	addPurchase    *connect.Client[api.AddPurchaseRequest, api.AddPurchaseResponse]
	removePurchase *connect.Client[api.RemovePurchaseRequest, api.RemovePurchaseResponse]
	scanReceipt    *connect.Client[api.ScanReceiptRequest, api.ScanReceiptResponse]
	settleSession  *connect.Client[api.SettleSessionRequest, api.SettleSessionResponse]
}

func (c *splitServiceClient) Settle(ctx context.Context, req *connect.Request[api.SettleRequest]) (*connect.Response[api.SettleResponse], error) {
	return c.settle.CallUnary(ctx, req)
}

func (c *splitServiceClient) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *splitServiceClient) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *splitServiceClient) ListSessions(ctx context.Context, req *connect.Request[api.ListSessionsRequest]) (*connect.Response[api.ListSessionsResponse], error) {
	return c.listSessions.CallUnary(ctx, req)
}

func (c *splitServiceClient) DeleteSession(ctx context.Context, req *connect.Request[api.DeleteSessionRequest]) (*connect.Response[api.DeleteSessionResponse], error) {
	return c.deleteSession.CallUnary(ctx, req)
}

func (c *splitServiceClient) AddPurchase(ctx context.Context, req *connect.Request[api.AddPurchaseRequest]) (*connect.Response[api.AddPurchaseResponse], error) {
	return c.addPurchase.CallUnary(ctx, req)
}

func (c *splitServiceClient) RemovePurchase(ctx context.Context, req *connect.Request[api.RemovePurchaseRequest]) (*connect.Response[api.RemovePurchaseResponse], error) {
	return c.removePurchase.CallUnary(ctx, req)
}

func (c *splitServiceClient) ScanReceipt(ctx context.Context, req *connect.Request[api.ScanReceiptRequest]) (*connect.Response[api.ScanReceiptResponse], error) {
	return c.scanReceipt.CallUnary(ctx, req)
}

func (c *splitServiceClient) SettleSession(ctx context.Context, req *connect.Request[api.SettleSessionRequest]) (*connect.Response[api.SettleSessionResponse], error) {
	return c.settleSession.CallUnary(ctx, req)
}
