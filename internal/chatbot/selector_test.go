package chatbot

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond_KeywordPriority(t *testing.T) {
	tests := []struct {
		message string
		want    Kind
	}{
		{"Calculate EMI for me", KindEMI},
		{"what is my monthly payment", KindEMI},
		{"I have a savings goal", KindSavings},
		{"Which CREDIT CARD can I get?", KindCreditCard},
		{"card options", KindCreditCard},
		{"any advice?", KindTips},
		{"how do I get better", KindTips},
		{"insurance please", KindInsurance},
		{"file my ITR", KindTax},
		{"I want mutual funds", KindInvestment},
		{"start a SIP", KindInvestment},
		{"can I borrow money", KindLoan},
		{"what is my score", KindInfo},
		{"how does this work", KindInfo},
		{"asdfqwerty", KindHelp},
		{"", KindHelp},
		// earlier groups win
		{"loan to pay my tax", KindTax},
		{"emi on a credit card loan", KindEMI},
		{"invest to protect my family", KindInsurance},
		{"loan rating", KindLoan},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := Respond(tt.message, 700)
			assert.Equal(t, tt.want, got.Kind())
			assert.Equal(t, tt.want, Classify(tt.message))
			assert.NotEmpty(t, got.Text())
		})
	}
}

func TestRespond_MutualFundsExcellentTier(t *testing.T) {
	got := Respond("I want mutual funds", 800)
	inv, ok := got.(Investments)
	require.True(t, ok, "expected Investments, got %T", got)

	require.NotEmpty(t, inv.Suggestions)
	assert.Equal(t, premiumFunds, inv.Suggestions)
	assert.Equal(t, "Moderate", inv.Suggestions[0].Risk)
	require.NotNil(t, inv.Portfolio)
	assert.Contains(t, inv.Message, "800")
}

func TestRespond_Tiers(t *testing.T) {
	inv := Respond("invest", 700).(Investments)
	assert.Equal(t, balancedFunds, inv.Suggestions)
	assert.Nil(t, inv.Portfolio)

	inv = Respond("invest", 500).(Investments)
	assert.Equal(t, lowRiskFunds, inv.Suggestions)

	loan := Respond("loan", 760).(LoanOffers)
	assert.Len(t, loan.Offers, 3)
	assert.Empty(t, loan.Tips)

	loan = Respond("loan", 650).(LoanOffers)
	assert.Len(t, loan.Offers, 2)

	loan = Respond("loan", 649).(LoanOffers)
	assert.Empty(t, loan.Offers)
	assert.Len(t, loan.Tips, 4)

	cards := Respond("card", 300).(CreditCards)
	assert.Equal(t, starterCards, cards.Cards)
	assert.NotEmpty(t, cards.Tips)

	tips := Respond("tips", 900).(TipList)
	assert.Equal(t, excellentTips, tips.Tips)
	assert.Len(t, tips.ActionItems, 4)
}

func TestRespond_EMISchedule(t *testing.T) {
	emi := Respond("emi", 780).(EMISchedule)
	assert.Equal(t, int64(500000), emi.LoanAmount)
	assert.Equal(t, 10.5, emi.InterestRate)
	assert.Contains(t, emi.Message, "₹5,00,000")
	require.Len(t, emi.Options, 5)

	first := emi.Options[0]
	assert.Equal(t, 12, first.TenureMonths)
	assert.Equal(t, int64(44074), first.EMI)
	assert.Equal(t, int64(44074*12), first.TotalPayment)
	assert.Equal(t, int64(44074*12-500000), first.Interest)
	assert.Equal(t, int64(10747), emi.Options[4].EMI)

	low := Respond("EMI", 400).(EMISchedule)
	assert.Equal(t, int64(100000), low.LoanAmount)
	assert.Equal(t, 18.0, low.InterestRate)
	assert.Equal(t, int64(9168), low.Options[0].EMI)
}

func TestRespond_SavingsPlan(t *testing.T) {
	plan := Respond("save money", 0).(SavingsPlan)
	assert.Equal(t, int64(45000), plan.Plan.MonthlyIncome)
	assert.Equal(t, int64(9000), plan.Plan.RecommendedSavings)
	assert.Equal(t, int64(270000), plan.Plan.EmergencyFund.Target)
	assert.Equal(t, 30, plan.Plan.EmergencyFund.MonthsToReach)
	assert.Len(t, plan.Plan.Goals, 3)
}

func TestRespond_DoesNotLeakTables(t *testing.T) {
	help := Respond("hello", 700).(HelpMenu)
	help.Options[0] = "changed"
	assert.NotEqual(t, "changed", Respond("hello", 700).(HelpMenu).Options[0])
}

func TestResponse_JSONCarriesType(t *testing.T) {
	raw, err := json.Marshal(Respond("tax", 700))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "tax", decoded["type"])
	assert.Equal(t, "Here's tax guidance for gig workers:", decoded["message"])
	assert.Contains(t, decoded, "guidance")

	raw, err = json.Marshal(NewPlain("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"plain","message":"hi"}`, string(raw))
}
