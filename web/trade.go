package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/etnz/bourso"
)

// Trading rides the tradingboard API behind the portal. Every endpoint is
// scoped by the user hash obtained at login; the _host query parameter is
// required even though the calls go to the regular API host.

// OrderSide is the direction of an order.
type OrderSide string

const (
	Buy  OrderSide = "B"
	Sell OrderSide = "S"
)

func (s OrderSide) String() string {
	if s == Sell {
		return "sell"
	}
	return "buy"
}

// OrderKind is the portal's order type code.
type OrderKind string

const (
	Limit           OrderKind = "LIM"
	Market          OrderKind = "ATP"
	StopLoss        OrderKind = "STP"
	StopLossMargin  OrderKind = "SLM"
	TrailingStop    OrderKind = "TSO"
	OneCancelsOther OrderKind = "OCO"
	TradeAtLast     OrderKind = "TAL"
)

// OrderData is the order description exchanged with the check endpoint.
// The prepare endpoint prefills one; missing fields are completed from the
// call parameters before checking.
type OrderData struct {
	OrderType           OrderKind `json:"orderType"`
	OrderSide           OrderSide `json:"orderSide,omitempty"`
	OrderQuantity       int       `json:"orderQuantity,omitempty"`
	OrderExpirationDate string    `json:"orderExpirationDate,omitempty"`
	OrderRiskMode       string    `json:"orderRiskMode"`
	OrderPriceLimit     *float64  `json:"orderPriceLimit,omitempty"`
	OrderAmount         *float64  `json:"orderAmount,omitempty"`
	ResourceID          string    `json:"resourceId,omitempty"`
	OrderValidity       string    `json:"orderValidity,omitempty"`
}

// orderPrepareResponse keeps only what the order flow needs out of the
// large prepare payload.
type orderPrepareResponse struct {
	ResourceID string `json:"resourceId"`
	Symbol     struct {
		Symbol    string  `json:"symbol"`
		LastPrice float64 `json:"lastPrice"`
		Currency  string  `json:"currency"`
	} `json:"symbol"`
	PrefillOrderData OrderData `json:"prefillOrderData"`
}

type orderConfirmResponse struct {
	OrderID         string `json:"orderId"`
	OrderStateLabel string `json:"orderStateLabel"`
	OrdStat         string `json:"ordStat"`
}

// SummaryValue is a numeric cell of the trading summary.
type SummaryValue struct {
	Value    float64 `json:"value"`
	Decimals int     `json:"decimals"`
	Currency string  `json:"currency"`
}

// PositionSummary is one line of a trading account's positions.
type PositionSummary struct {
	Symbol           string       `json:"symbol"`
	Label            string       `json:"label"`
	Quantity         SummaryValue `json:"quantity"`
	BuyingPrice      SummaryValue `json:"buyingPrice"`
	Amount           SummaryValue `json:"amount"`
	Last             SummaryValue `json:"last"`
	Var              SummaryValue `json:"var"`
	GainLoss         SummaryValue `json:"gainLoss"`
	GainLossPercent  SummaryValue `json:"gainLossPercent"`
	LastMovementDate string       `json:"lastMovementDate"`
}

// AccountSummary is the account header of the trading summary.
type AccountSummary struct {
	Name            string       `json:"name"`
	Currency        string       `json:"currency"`
	TypeCategory    string       `json:"typeCategory"`
	ActivationDate  string       `json:"activationDate"`
	Balance         SummaryValue `json:"balance"`
	Cash            SummaryValue `json:"cash"`
	Valuation       SummaryValue `json:"valuation"`
	Total           SummaryValue `json:"total"`
	GainLoss        SummaryValue `json:"gainLoss"`
	GainLossPercent SummaryValue `json:"gainLossPercent"`
	Contribution    int64        `json:"contribution"`
}

// TradingSummaryItem is one block of the summary: either the account
// header (Account set) or the position list (Positions set).
type TradingSummaryItem struct {
	ID        string            `json:"id"`
	Account   *AccountSummary   `json:"account"`
	Positions []PositionSummary `json:"positions"`
}

func (c *Client) tradingBaseURL() (string, error) {
	if c.config.UserHash == "" {
		return "", ErrNotAuthenticated
	}
	return fmt.Sprintf("%s/_user_/_%s_/trading", c.config.APIURL, c.config.UserHash), nil
}

// Order places a simple order: prepare, check, confirm. It returns the
// order id and the effective price limit. For limit orders without an
// explicit price, the last quoted price is used.
func (c *Client) Order(ctx context.Context, side OrderSide, account bourso.Account, symbol bourso.SymbolID, quantity int, data *OrderData) (orderID string, priceLimit *float64, err error) {
	if err := c.requireAuth(); err != nil {
		return "", nil, err
	}
	if account.Kind != bourso.Trading {
		return "", nil, fmt.Errorf("account %s is not a trading account", account.ID)
	}
	prepared, err := c.prepareOrder(ctx, account, symbol)
	if err != nil {
		return "", nil, err
	}

	order := prepared.PrefillOrderData
	if data != nil {
		order = *data
	}
	if order.OrderQuantity == 0 {
		order.OrderQuantity = quantity
	}
	if order.OrderPriceLimit == nil && order.OrderType == Limit {
		if order.OrderAmount != nil {
			order.OrderPriceLimit = order.OrderAmount
		} else {
			last := prepared.Symbol.LastPrice
			order.OrderPriceLimit = &last
		}
	}
	if order.OrderSide == "" {
		order.OrderSide = side
	}
	if order.OrderExpirationDate == "" {
		order.OrderExpirationDate = prepared.PrefillOrderData.OrderValidity
	} else {
		order.OrderExpirationDate = time.Now().UTC().Format("2006-01-02")
	}
	order.ResourceID = prepared.ResourceID

	if err := c.checkOrder(ctx, order); err != nil {
		return "", nil, err
	}
	confirmed, err := c.confirmOrder(ctx, order.ResourceID)
	if err != nil {
		return "", nil, err
	}
	log.Printf("order for %d %s passed with id %s", order.OrderQuantity, symbol, confirmed.OrderID)
	return confirmed.OrderID, order.OrderPriceLimit, nil
}

func (c *Client) prepareOrder(ctx context.Context, account bourso.Account, symbol bourso.SymbolID) (*orderPrepareResponse, error) {
	base, err := c.tradingBaseURL()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/order/prepare?_host=tradingboard.boursobank.com&searchExtendedHours=false&selectedAccount=%s&symbol=%s",
		base, account.ID, symbol)
	status, body, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("order prepare failed: %s", body)
	}
	var prepared orderPrepareResponse
	if err := json.Unmarshal([]byte(body), &prepared); err != nil {
		return nil, fmt.Errorf("cannot decode order prepare response: %w", err)
	}
	return &prepared, nil
}

func (c *Client) checkOrder(ctx context.Context, order OrderData) error {
	base, err := c.tradingBaseURL()
	if err != nil {
		return err
	}
	if _, err := c.postJSON(ctx, base+"/ordersimple/check", order, http.StatusOK); err != nil {
		return fmt.Errorf("order check failed: %w", err)
	}
	return nil
}

func (c *Client) confirmOrder(ctx context.Context, resourceID string) (*orderConfirmResponse, error) {
	base, err := c.tradingBaseURL()
	if err != nil {
		return nil, err
	}
	// Confirmation answers 201 Created.
	body, err := c.postJSON(ctx, base+"/ordersimple/confirm", map[string]string{"resourceId": resourceID}, http.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("order confirm failed: %w", err)
	}
	var confirmed orderConfirmResponse
	if err := json.Unmarshal([]byte(body), &confirmed); err != nil {
		return nil, fmt.Errorf("cannot decode order confirm response: %w", err)
	}
	return &confirmed, nil
}

// CancelOrder cancels a not-yet-executed order.
func (c *Client) CancelOrder(ctx context.Context, account bourso.Account, orderID string) error {
	if err := c.requireAuth(); err != nil {
		return err
	}
	base, err := c.tradingBaseURL()
	if err != nil {
		return err
	}
	payload := map[string]string{"accountKey": string(account.ID), "reference": orderID}
	if _, err := c.postJSON(ctx, base+"/orderdetail/cancel", payload, http.StatusOK); err != nil {
		return fmt.Errorf("order cancel failed: %w", err)
	}
	log.Printf("order %s cancelled", orderID)
	return nil
}

// TradingSummary returns the account header and position list of a
// trading account.
func (c *Client) TradingSummary(ctx context.Context, account bourso.Account) ([]TradingSummaryItem, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	if account.Kind != bourso.Trading {
		return nil, fmt.Errorf("account %s is not a trading account", account.ID)
	}
	base, err := c.tradingBaseURL()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/accounts/summary/%s?_host=tradingboard.boursobank.com&position=ACCOUNTING&responseFormat=true", base, account.ID)
	status, body, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("trading summary failed: %s", body)
	}
	var summary []TradingSummaryItem
	if err := json.Unmarshal([]byte(body), &summary); err != nil {
		return nil, fmt.Errorf("cannot decode trading summary: %w", err)
	}
	return summary, nil
}

// postJSON posts a JSON payload and returns the body when the status
// matches want.
func (c *Client) postJSON(ctx context.Context, url string, payload any, want int) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	resp, err := c.post(ctx, url, "application/json", strings.NewReader(string(b)), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != want {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}
