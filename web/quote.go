package web

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/etnz/bourso"
)

// End-of-day quotes come from the public boursorama.com portal and need no
// session; the instrument quote rides the API's public feed endpoint.

// QuoteTab is one end-of-day candle. Date counts days since the Unix
// epoch.
type QuoteTab struct {
	Date   int64   `json:"d"`
	Open   float64 `json:"o"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Close  float64 `json:"c"`
	Volume int64   `json:"v"`
}

// TicksEOD is the quote history of a symbol over a period.
type TicksEOD struct {
	Name     string     `json:"Name"`
	SymbolID string     `json:"SymbolId"`
	XPeriod  int64      `json:"Xperiod"`
	Quotes   []QuoteTab `json:"QuoteTab"`
	// PenultimateQuote and LastQuote cover the two most recent sessions.
	PenultimateQuote *QuoteTab `json:"qv"`
	LastQuote        *QuoteTab `json:"qd"`
}

// Highest returns the highest high over the period.
func (t TicksEOD) Highest() float64 {
	highest := 0.0
	for _, q := range t.Quotes {
		highest = math.Max(highest, q.High)
	}
	return highest
}

// Lowest returns the lowest low over the period.
func (t TicksEOD) Lowest() float64 {
	lowest := math.MaxFloat64
	for _, q := range t.Quotes {
		lowest = math.Min(lowest, q.Low)
	}
	return lowest
}

// Average returns the mean closing price over the period.
func (t TicksEOD) Average() float64 {
	if len(t.Quotes) == 0 {
		return 0
	}
	var sum float64
	for _, q := range t.Quotes {
		sum += q.Close
	}
	return sum / float64(len(t.Quotes))
}

// Volume returns the total traded volume over the period.
func (t TicksEOD) Volume() int64 {
	var volume int64
	for _, q := range t.Quotes {
		volume += q.Volume
	}
	return volume
}

// GetTicks fetches the end-of-day quote history of a symbol. Length is the
// time frame in days, period the candle interval (0 for the default).
func (c *Client) GetTicks(ctx context.Context, symbol bourso.SymbolID, length, period int64) (*TicksEOD, error) {
	url := fmt.Sprintf("%s/bourse/action/graph/ws/GetTicksEOD?symbol=%s&length=%d&period=%d&guid=",
		c.portal, symbol, length, period)
	header := http.Header{"Content-Type": {"application/json;charset=UTF-8"}}
	status, body, err := c.get(ctx, url, header)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint answered %d: %s", status, body)
	}
	var answer struct {
		D TicksEOD `json:"d"`
	}
	if err := json.Unmarshal([]byte(body), &answer); err != nil {
		return nil, fmt.Errorf("cannot decode quote history: %w", err)
	}
	return &answer.D, nil
}

// InstrumentQuote is the live quote of an instrument.
type InstrumentQuote struct {
	Symbol        string  `json:"symbol"`
	Label         string  `json:"label"`
	ISIN          string  `json:"isin"`
	Last          float64 `json:"last"`
	Currency      string  `json:"currency"`
	PreviousClose float64 `json:"previousClose"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	TotalVolume   int64   `json:"totalVolume"`
	ExchangeID    int64   `json:"exchangeId"`
	ExchangeCode  string  `json:"exchangeCode"`
	ExchangeLabel string  `json:"exchangeLabel"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
}

// GetInstrumentQuote fetches the live quote of an instrument from the
// API's public feed.
func (c *Client) GetInstrumentQuote(ctx context.Context, symbol bourso.SymbolID) (*InstrumentQuote, error) {
	// The feed path joins "feed" and "instrument" without a separator;
	// that is how the portal spells it.
	url := fmt.Sprintf("%s/_public_/feedinstrument/quote/%s?_host=tradingboard.boursobank.com",
		c.config.APIURL, symbol)
	status, body, err := c.get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("instrument quote endpoint answered %d: %s", status, body)
	}
	var quote InstrumentQuote
	if err := json.Unmarshal([]byte(body), &quote); err != nil {
		return nil, fmt.Errorf("cannot decode instrument quote: %w", err)
	}
	return &quote, nil
}
