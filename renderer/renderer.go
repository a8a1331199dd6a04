// Package renderer turns portal data into markdown reports for the CLI.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/web"
	md "github.com/nao1215/markdown"
)

// Accounts renders the account list grouped by family.
func Accounts(accounts []bourso.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")

	var total int64
	for _, kind := range bourso.Kinds() {
		var rows [][]string
		for _, account := range accounts {
			if account.Kind != kind {
				continue
			}
			rows = append(rows, []string{
				string(account.ID),
				account.Name,
				account.BankName,
				account.BalanceString(),
			})
			total += account.Balance
		}
		if len(rows) == 0 {
			continue
		}
		doc.H2(titleFor(kind))
		doc.Table(md.TableSet{
			Header: []string{"Id", "Name", "Bank", "Balance"},
			Rows:   rows,
		})
	}
	doc.PlainText(fmt.Sprintf("Net position: %s", bourso.Account{Balance: total}.BalanceString()))
	return doc.String()
}

func titleFor(kind bourso.AccountKind) string {
	switch kind {
	case bourso.Savings:
		return "Savings"
	case bourso.Banking:
		return "Banking"
	case bourso.Trading:
		return "Trading"
	case bourso.Loans:
		return "Loans"
	}
	return string(kind)
}

// Ticks renders a quote history summary.
func Ticks(ticks *web.TicksEOD, length int64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s (%s)", ticks.Name, ticks.SymbolID))

	doc.Table(md.TableSet{
		Header: []string{"Metric", fmt.Sprintf("Last %d days", length)},
		Rows: [][]string{
			{"Highest", fmt.Sprintf("%.3f", ticks.Highest())},
			{"Lowest", fmt.Sprintf("%.3f", ticks.Lowest())},
			{"Average close", fmt.Sprintf("%.3f", ticks.Average())},
			{"Volume", fmt.Sprintf("%d", ticks.Volume())},
		},
	})
	if last := ticks.LastQuote; last != nil {
		doc.PlainText(fmt.Sprintf("Last session close: %.3f", last.Close))
	}
	return doc.String()
}

// Positions renders a trading account summary.
func Positions(summary []web.TradingSummaryItem) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	for _, item := range summary {
		if item.Account != nil {
			account := item.Account
			doc.H1(account.Name)
			doc.Table(md.TableSet{
				Header: []string{"Cash", "Valuation", "Total", "Gain/Loss"},
				Rows: [][]string{{
					cell(account.Cash),
					cell(account.Valuation),
					cell(account.Total),
					cell(account.GainLoss),
				}},
			})
		}
		if len(item.Positions) > 0 {
			doc.H2("Positions")
			var rows [][]string
			for _, p := range item.Positions {
				rows = append(rows, []string{
					p.Symbol,
					p.Label,
					fmt.Sprintf("%.0f", p.Quantity.Value),
					cell(p.Last),
					cell(p.Amount),
					cell(p.GainLoss),
				})
			}
			doc.Table(md.TableSet{
				Header: []string{"Symbol", "Label", "Qty", "Last", "Amount", "Gain/Loss"},
				Rows:   rows,
			})
		}
	}
	return doc.String()
}

func cell(v web.SummaryValue) string {
	s := fmt.Sprintf("%.*f", v.Decimals, v.Value)
	if v.Currency != "" {
		s += " " + v.Currency
	}
	return s
}
