package bourso

import "github.com/Rhymond/go-money"

// AccountKind is the portal's account category.
type AccountKind string

const (
	Banking AccountKind = "banking"
	Savings AccountKind = "savings"
	Trading AccountKind = "trading"
	Loans   AccountKind = "loans"
)

// Kinds lists every account category, in dashboard order.
func Kinds() []AccountKind {
	return []AccountKind{Banking, Savings, Trading, Loans}
}

// Account is a bank account as scraped from the dashboard. Accounts from
// other banks can be connected to the portal, hence BankName.
type Account struct {
	// ID is the 32-character hexadecimal account identifier.
	ID AccountID `json:"id"`
	// Name as displayed on the dashboard.
	Name string `json:"name"`
	// Balance in cents. Negative for loans.
	Balance int64 `json:"balance"`
	BankName string      `json:"bankName"`
	Kind     AccountKind `json:"kind"`
}

// Money returns the balance as a EUR money value.
func (a Account) Money() *money.Money {
	return money.New(a.Balance, money.EUR)
}

// BalanceString renders the balance with currency for display.
func (a Account) BalanceString() string {
	return a.Money().Display()
}
