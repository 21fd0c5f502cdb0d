// Package chatbot answers canned financial questions for a given Gig-Score.
package chatbot

// Kind tags a Response variant on the wire
type Kind string

const (
	KindPlain      Kind = "plain"
	KindInvestment Kind = "investment"
	KindLoan       Kind = "loan"
	KindInfo       Kind = "info"
	KindHelp       Kind = "help"
	KindEMI        Kind = "emi"
	KindSavings    Kind = "savings"
	KindCreditCard Kind = "creditCard"
	KindTips       Kind = "tips"
	KindInsurance  Kind = "insurance"
	KindTax        Kind = "tax"
)

// Response is one of the structs in this file. The set is closed: only types
// embedding header implement it.
type Response interface {
	Kind() Kind
	Text() string
	response()
}

type header struct {
	Type    Kind   `json:"type"`
	Message string `json:"message"`
}

func (h header) Kind() Kind   { return h.Type }
func (h header) Text() string { return h.Message }
func (header) response()      {}

// Plain is a bare text reply
type Plain struct {
	header
}

// NewPlain wraps a message without payload.
func NewPlain(message string) Plain {
	return Plain{header{Type: KindPlain, Message: message}}
}

type Fund struct {
	Name     string `json:"name"`
	Category string `json:"type"`
	Risk     string `json:"risk"`
	Returns  string `json:"returns"`
	MinSIP   int64  `json:"minSIP"`
}

type PortfolioMix struct {
	Conservative string `json:"conservative"`
	Moderate     string `json:"moderate"`
	Aggressive   string `json:"aggressive"`
}

// Investments suggests mutual funds
type Investments struct {
	header
	Suggestions []Fund        `json:"suggestions"`
	Portfolio   *PortfolioMix `json:"portfolioSuggestion,omitempty"`
}

type LoanOffer struct {
	Type        string  `json:"type"`
	Amount      int64   `json:"amount"`
	Rate        float64 `json:"rate"`
	TenureYears int     `json:"tenureYears"`
}

// LoanOffers lists loans, or tips when the score is too low for any
type LoanOffers struct {
	header
	Offers []LoanOffer `json:"loanOffers,omitempty"`
	Tips   []string    `json:"tips,omitempty"`
}

type FactorInfo struct {
	Name        string `json:"name"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
}

// ScoreInfo explains how the score is built
type ScoreInfo struct {
	header
	Factors []FactorInfo `json:"factors"`
}

// HelpMenu is the default reply
type HelpMenu struct {
	header
	Options []string `json:"options"`
}

type EMIOption struct {
	TenureMonths int   `json:"tenureMonths"`
	EMI          int64 `json:"emi"`
	TotalPayment int64 `json:"totalPayment"`
	Interest     int64 `json:"interest"`
}

// EMISchedule lists monthly instalments for fixed tenures
type EMISchedule struct {
	header
	LoanAmount   int64       `json:"loanAmount"`
	InterestRate float64     `json:"interestRate"` // % per annum
	Options      []EMIOption `json:"emiOptions"`
}

type EmergencyFund struct {
	Target        int64  `json:"target"`
	Description   string `json:"description"`
	MonthsToReach int    `json:"monthsToReach"`
}

type SavingsGoal struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Timeline string `json:"timeline"`
	Priority string `json:"priority"`
}

type Plan struct {
	MonthlyIncome      int64         `json:"monthlyIncome"`
	RecommendedSavings int64         `json:"recommendedSavings"`
	EmergencyFund      EmergencyFund `json:"emergencyFund"`
	Goals              []SavingsGoal `json:"goals"`
}

// SavingsPlan proposes a monthly savings target and goals
type SavingsPlan struct {
	header
	Plan Plan     `json:"savingsPlan"`
	Tips []string `json:"tips"`
}

type Card struct {
	Name      string `json:"name"`
	Limit     int64  `json:"limit"`
	Benefits  string `json:"benefits"`
	AnnualFee int64  `json:"annualFee"` // 0 means no fee
}

// CreditCards recommends cards for the score tier
type CreditCards struct {
	header
	Cards []Card   `json:"cards"`
	Tips  []string `json:"tips,omitempty"`
}

type ActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

// TipList gives score improvement advice
type TipList struct {
	header
	Tips        []string     `json:"tips"`
	ActionItems []ActionItem `json:"actionItems"`
}

type Policy struct {
	Name     string `json:"name"`
	Coverage string `json:"coverage"`
	Premium  string `json:"premium"`
	Priority string `json:"priority"`
}

// InsuranceList recommends cover for gig workers
type InsuranceList struct {
	header
	Recommendations []Policy `json:"recommendations"`
	Tips            []string `json:"tips"`
}

type TaxDetails struct {
	IncomeType string   `json:"incomeType"`
	ITRForm    string   `json:"itrForm"`
	DueDate    string   `json:"dueDate"`
	Deductions []string `json:"deductions"`
}

// TaxGuidance explains filing for gig income
type TaxGuidance struct {
	header
	Guidance TaxDetails `json:"guidance"`
	Tips     []string   `json:"tips"`
}
