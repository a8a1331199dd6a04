// Package api exposes the session client over a small REST surface for
// local automation. Every authenticated endpoint logs a fresh portal
// session in with the credentials carried by the request body: the portal
// ties its tokens to one session, so nothing is shared between requests.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log"
	"net/http"
	"strconv"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/web"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Session is the slice of the portal client the handlers drive.
type Session interface {
	InitSession(ctx context.Context) error
	Login(ctx context.Context, clientNumber bourso.ClientNumber, password bourso.Password) error
	GetAccounts(ctx context.Context, kind bourso.AccountKind) ([]bourso.Account, error)
	GetTicks(ctx context.Context, symbol bourso.SymbolID, length, period int64) (*web.TicksEOD, error)
	Order(ctx context.Context, side web.OrderSide, account bourso.Account, symbol bourso.SymbolID, quantity int, data *web.OrderData) (string, *float64, error)
	TradingSummary(ctx context.Context, account bourso.Account) ([]web.TradingSummaryItem, error)
	TransferFunds(ctx context.Context, amount bourso.Amount, from, to bourso.Account, reason bourso.TransferReason) iter.Seq2[web.TransferProgress, error]
}

// Server routes REST calls to fresh portal sessions.
type Server struct {
	router     *mux.Router
	newSession func() Session
}

// NewServer builds the router. newSession creates one portal session per
// request.
func NewServer(newSession func() Session) *Server {
	s := &Server{
		router:     mux.NewRouter(),
		newSession: newSession,
	}
	s.router.Use(requestID)
	s.router.HandleFunc("/accounts", s.handleAccounts).Methods(http.MethodPost)
	s.router.HandleFunc("/quote", s.handleQuote).Methods(http.MethodGet)
	s.router.HandleFunc("/trade/order", s.handleOrder).Methods(http.MethodPost)
	s.router.HandleFunc("/trade/positions", s.handlePositions).Methods(http.MethodPost)
	s.router.HandleFunc("/transfer", s.handleTransfer).Methods(http.MethodPost)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("serving the api on %s", addr)
	return http.ListenAndServe(addr, s)
}

// requestID tags every request with a correlation id, echoed in the
// response and the logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		log.Printf("%s %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// authParams carries the credentials of one request.
type authParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login opens and authenticates a fresh session for one request.
func (s *Server) login(r *http.Request, auth authParams) (Session, error) {
	clientNumber, err := bourso.NewClientNumber(auth.Username)
	if err != nil {
		return nil, err
	}
	password, err := bourso.NewPassword(auth.Password)
	if err != nil {
		return nil, err
	}
	session := s.newSession()
	if err := session.InitSession(r.Context()); err != nil {
		return nil, err
	}
	if err := session.Login(r.Context(), clientNumber, password); err != nil {
		return nil, err
	}
	return session, nil
}

type accountsRequest struct {
	authParams
	Kind string `json:"kind,omitempty"`
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	var req accountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	kind := bourso.AccountKind(req.Kind)
	if req.Kind != "" && !validKind(kind) {
		writeError(w, fmt.Errorf("%w: unknown account kind %q", errBadParameter, req.Kind))
		return
	}
	session, err := s.login(r, req.authParams)
	if err != nil {
		writeError(w, err)
		return
	}
	accounts, err := session.GetAccounts(r.Context(), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	symbol, err := bourso.NewSymbolID(r.URL.Query().Get("symbol"))
	if err != nil {
		writeError(w, err)
		return
	}
	length := queryInt(r, "length", 30)
	interval := queryInt(r, "interval", 0)
	ticks, err := s.newSession().GetTicks(r.Context(), symbol, length, interval)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticks)
}

type orderRequest struct {
	authParams
	AccountID string `json:"accountId"`
	Symbol    string `json:"symbol"`
	Quantity  int    `json:"quantity"`
	Side      string `json:"side"`
}

type orderResponse struct {
	OrderID    string   `json:"orderId"`
	PriceLimit *float64 `json:"priceLimit,omitempty"`
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	var side web.OrderSide
	switch req.Side {
	case "buy":
		side = web.Buy
	case "sell":
		side = web.Sell
	default:
		writeError(w, fmt.Errorf("%w: side must be buy or sell", errBadParameter))
		return
	}
	symbol, err := bourso.NewSymbolID(req.Symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Quantity <= 0 {
		writeError(w, fmt.Errorf("%w: quantity must be positive", errBadParameter))
		return
	}
	session, err := s.login(r, req.authParams)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := findAccount(r, session, bourso.Trading, req.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	orderID, limit, err := session.Order(r.Context(), side, account, symbol, req.Quantity, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderResponse{OrderID: orderID, PriceLimit: limit})
}

type positionsRequest struct {
	authParams
	AccountID string `json:"accountId"`
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	var req positionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	session, err := s.login(r, req.authParams)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := findAccount(r, session, bourso.Trading, req.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	summary, err := session.TradingSummary(r.Context(), account)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type transferRequest struct {
	authParams
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Reason string `json:"reason,omitempty"`
}

type transferResponse struct {
	Status string `json:"status"`
	Amount string `json:"amount"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}
	amount, err := bourso.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	var reason bourso.TransferReason
	if req.Reason != "" {
		if reason, err = bourso.NewTransferReason(req.Reason); err != nil {
			writeError(w, err)
			return
		}
	}
	session, err := s.login(r, req.authParams)
	if err != nil {
		writeError(w, err)
		return
	}
	from, err := findAccount(r, session, "", req.From)
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := findAccount(r, session, "", req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	for progress, err := range session.TransferFunds(r.Context(), amount, from, to, reason) {
		if err != nil {
			writeError(w, fmt.Errorf("%s: %w", progress.Description(), err))
			return
		}
	}
	writeJSON(w, http.StatusOK, transferResponse{Status: "completed", Amount: amount.String()})
}

// findAccount resolves an account id against the customer's accounts of
// the given kind; an empty kind searches them all.
func findAccount(r *http.Request, session Session, kind bourso.AccountKind, id string) (bourso.Account, error) {
	accounts, err := session.GetAccounts(r.Context(), kind)
	if err != nil {
		return bourso.Account{}, err
	}
	for _, account := range accounts {
		if string(account.ID) == id {
			return account, nil
		}
	}
	return bourso.Account{}, errUnknownAccount
}

var errUnknownAccount = errors.New("no account with this id")

func validKind(kind bourso.AccountKind) bool {
	for _, k := range bourso.Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

func queryInt(r *http.Request, name string, fallback int64) int64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error to a status: credential problems are 401,
// malformed requests are 400, a redesigned portal page is 502, anything
// else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var changed *web.PortalChangedError
	switch {
	case errors.Is(err, web.ErrInvalidCredentials) || errors.Is(err, web.ErrMfaRequired):
		status = http.StatusUnauthorized
	case errors.As(err, &changed):
		status = http.StatusBadGateway
	case isBadRequest(err):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func isBadRequest(err error) bool {
	for _, e := range []error{
		bourso.ErrInvalidClientNumber, bourso.ErrEmptyPassword,
		bourso.ErrInvalidAccountID, bourso.ErrInvalidSymbolID,
		bourso.ErrInvalidAmount, bourso.ErrInvalidReason,
		web.ErrAmountTooLow, web.ErrReasonTooLong, web.ErrInvalidTransfer,
		errUnknownAccount,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	var syntax *json.SyntaxError
	return errors.As(err, &syntax) || errors.Is(err, errBadParameter)
}

var errBadParameter = errors.New("bad parameter")
