package web

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/etnz/bourso"
)

// Section and row patterns for the dashboard account summary. The summary
// is an hinclude fragment, one section per account family; rows inside a
// section carry the portal's 32-hex account id, the balance and two labels.
var (
	savingsSectionPattern = regexp.MustCompile(`(?ms)data-summary-savings>(.*?)</ul>`)
	bankingSectionPattern = regexp.MustCompile(`(?ms)data-summary-bank>(.*?)</div>`)
	tradingSectionPattern = regexp.MustCompile(`(?ms)data-summary-trading>(.*?)</div>`)
	loansSectionPattern   = regexp.MustCompile(`(?ms)data-summary-loan>(.*?)</div>`)

	accountPattern = regexp.MustCompile(`(?ms)/compte/(.*?)?/?(?P<id>[a-f0-9]{32})/(.*?)Solde\s:\s(?P<balance>[\d\s−-]+,?\d{0,2})\s€.+?c-info-box__account-label.+?>(?P<name>.+?)</span>.+?c-info-box__account-sub-label.+?>(?P<bank_name>.+?)</span>`)

	// The portal renders negative balances with U+2212 and pads groups of
	// thousands with regular and non-breaking spaces.
	balanceCleaner = strings.NewReplacer(" ", "", ",", "", "\u00a0", "", "−", "-")
)

func sectionPattern(kind bourso.AccountKind) *regexp.Regexp {
	switch kind {
	case bourso.Savings:
		return savingsSectionPattern
	case bourso.Banking:
		return bankingSectionPattern
	case bourso.Trading:
		return tradingSectionPattern
	case bourso.Loans:
		return loansSectionPattern
	}
	return nil
}

// GetAccounts returns the accounts visible on the dashboard summary. With
// an empty kind it returns every account, in savings, banking, trading,
// loans order. Kinds the customer holds no account of are simply absent.
func (c *Client) GetAccounts(ctx context.Context, kind bourso.AccountKind) ([]bourso.Account, error) {
	if err := c.requireAuth(); err != nil {
		return nil, err
	}
	_, body, err := c.get(ctx, c.base+"/dashboard/liste-comptes?rumroute=dashboard.new_accounts&_hinclude=1", nil)
	if err != nil {
		return nil, err
	}
	if kind != "" {
		return extractAccounts(body, kind)
	}
	var accounts []bourso.Account
	for _, k := range bourso.Kinds() {
		list, err := extractAccounts(body, k)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, list...)
	}
	return accounts, nil
}

// extractAccounts scrapes one account family's section. A missing section
// means the customer has no account of that family, not a scraping failure.
func extractAccounts(body string, kind bourso.AccountKind) ([]bourso.Account, error) {
	pattern := sectionPattern(kind)
	if pattern == nil {
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}
	section := pattern.FindStringSubmatch(body)
	if section == nil {
		return nil, nil
	}
	var accounts []bourso.Account
	for _, m := range accountPattern.FindAllStringSubmatch(section[1], -1) {
		id, balance, name, bankName := m[2], m[4], m[5], m[6]
		cents, err := parseBalance(balance)
		if err != nil {
			return nil, fmt.Errorf("cannot parse balance of account %s: %w", id, err)
		}
		accounts = append(accounts, bourso.Account{
			ID:       bourso.AccountID(strings.TrimSpace(id)),
			Name:     strings.TrimSpace(name),
			Balance:  cents,
			BankName: strings.TrimSpace(bankName),
			Kind:     kind,
		})
	}
	return accounts, nil
}

// parseBalance turns a displayed balance ("− 94 959,82") into cents.
func parseBalance(s string) (int64, error) {
	return strconv.ParseInt(balanceCleaner.Replace(strings.TrimSpace(s)), 10, 64)
}
