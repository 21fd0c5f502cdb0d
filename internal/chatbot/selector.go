package chatbot

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	excellentTier = 750
	goodTier      = 650

	// typical gig worker income used for savings plans
	defaultMonthlyIncome = 45000
	savingsRate          = 0.2
	emergencyFundMonths  = 6
)

type rule struct {
	kind     Kind
	keywords []string
	answer   func(score int) Response
}

// rules are evaluated in order; the first rule with a matching keyword answers.
var rules = []rule{
	{KindEMI, []string{"emi", "calculate emi", "monthly payment"}, emiResponse},
	{KindSavings, []string{"saving", "save money", "goal", "target"}, savingsResponse},
	{KindCreditCard, []string{"credit card", "card"}, creditCardResponse},
	{KindTips, []string{"improve", "tip", "advice", "better"}, tipsResponse},
	{KindInsurance, []string{"insurance", "protect", "cover"}, insuranceResponse},
	{KindTax, []string{"tax", "itr", "gst"}, taxResponse},
	{KindInvestment, []string{"mutual fund", "invest", "sip"}, investmentResponse},
	{KindLoan, []string{"loan", "borrow"}, loanResponse},
	{KindInfo, []string{"score", "rating", "how"}, infoResponse},
}

// Respond picks the canned answer for message at the given score.
// It never fails: unmatched input gets the help menu.
func Respond(message string, score int) Response {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			return r.answer(score)
		}
	}
	return helpResponse()
}

// Classify reports which kind of answer message would get.
func Classify(message string) Kind {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if containsAny(lower, r.keywords) {
			return r.kind
		}
	}
	return KindHelp
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func emiResponse(score int) Response {
	amount, rate := int64(100000), 18.0
	switch {
	case score >= excellentTier:
		amount, rate = 500000, 10.5
	case score >= goodTier:
		amount, rate = 200000, 14
	}
	return EMISchedule{
		header: header{
			Type:    KindEMI,
			Message: fmt.Sprintf("Based on your Gig-Score of %d, here's your EMI breakdown for %s loan:", score, FormatINR(amount)),
		},
		LoanAmount:   amount,
		InterestRate: rate,
		Options:      Schedule(amount, rate, EMITenures),
	}
}

func savingsResponse(int) Response {
	recommended := int64(math.Round(defaultMonthlyIncome * savingsRate))
	target := int64(defaultMonthlyIncome * emergencyFundMonths)
	return SavingsPlan{
		header: header{Type: KindSavings, Message: "Great that you're thinking about savings! Here's a personalized plan:"},
		Plan: Plan{
			MonthlyIncome:      defaultMonthlyIncome,
			RecommendedSavings: recommended,
			EmergencyFund: EmergencyFund{
				Target:        target,
				Description:   "6 months of expenses",
				MonthsToReach: int(math.Ceil(float64(target) / float64(recommended))),
			},
			Goals: slices.Clone(savingsGoals),
		},
		Tips: slices.Clone(savingsTips),
	}
}

func creditCardResponse(score int) Response {
	switch {
	case score >= excellentTier:
		return CreditCards{
			header: header{Type: KindCreditCard, Message: fmt.Sprintf("With your excellent Gig-Score of %d, you're eligible for premium credit cards!", score)},
			Cards:  slices.Clone(premiumCards),
		}
	case score >= goodTier:
		return CreditCards{
			header: header{Type: KindCreditCard, Message: fmt.Sprintf("Your Gig-Score of %d qualifies you for these credit cards:", score)},
			Cards:  slices.Clone(standardCards),
		}
	default:
		return CreditCards{
			header: header{Type: KindCreditCard, Message: "To get better credit cards, focus on improving your Gig-Score:"},
			Cards:  slices.Clone(starterCards),
			Tips:   slices.Clone(starterCardTips),
		}
	}
}

func tipsResponse(score int) Response {
	tips := starterTips
	switch {
	case score >= excellentTier:
		tips = excellentTips
	case score >= goodTier:
		tips = goodTips
	}
	return TipList{
		header:      header{Type: KindTips, Message: fmt.Sprintf("Here are personalized tips based on your Gig-Score of %d:", score)},
		Tips:        slices.Clone(tips),
		ActionItems: slices.Clone(actionItems),
	}
}

func insuranceResponse(int) Response {
	return InsuranceList{
		header:          header{Type: KindInsurance, Message: "As a gig worker, here are essential insurance products for you:"},
		Recommendations: slices.Clone(insurancePolicies),
		Tips:            slices.Clone(insuranceTips),
	}
}

func taxResponse(int) Response {
	details := taxDetails
	details.Deductions = slices.Clone(taxDetails.Deductions)
	return TaxGuidance{
		header:   header{Type: KindTax, Message: "Here's tax guidance for gig workers:"},
		Guidance: details,
		Tips:     slices.Clone(taxTips),
	}
}

func investmentResponse(score int) Response {
	switch {
	case score >= excellentTier:
		portfolio := premiumPortfolio
		return Investments{
			header:      header{Type: KindInvestment, Message: fmt.Sprintf("Great news! With your excellent Gig-Score of %d, you're eligible for premium investment options!", score)},
			Suggestions: slices.Clone(premiumFunds),
			Portfolio:   &portfolio,
		}
	case score >= goodTier:
		return Investments{
			header:      header{Type: KindInvestment, Message: fmt.Sprintf("With your good Gig-Score of %d, here are suitable investment options for you:", score)},
			Suggestions: slices.Clone(balancedFunds),
		}
	default:
		return Investments{
			header:      header{Type: KindInvestment, Message: fmt.Sprintf("Based on your Gig-Score of %d, I recommend starting with low-risk options:", score)},
			Suggestions: slices.Clone(lowRiskFunds),
		}
	}
}

func loanResponse(score int) Response {
	switch {
	case score >= excellentTier:
		return LoanOffers{
			header: header{Type: KindLoan, Message: fmt.Sprintf("Excellent! Your Gig-Score of %d qualifies you for premium loan offers:", score)},
			Offers: slices.Clone(premiumLoans),
		}
	case score >= goodTier:
		return LoanOffers{
			header: header{Type: KindLoan, Message: fmt.Sprintf("Good! Your Gig-Score of %d makes you eligible for these loans:", score)},
			Offers: slices.Clone(standardLoans),
		}
	default:
		return LoanOffers{
			header: header{Type: KindLoan, Message: fmt.Sprintf("Your current Gig-Score is %d. To improve loan eligibility, try:", score)},
			Tips:   slices.Clone(loanTips),
		}
	}
}

func infoResponse(score int) Response {
	return ScoreInfo{
		header:  header{Type: KindInfo, Message: fmt.Sprintf("Your Gig-Score is %d/900. Here's how it's calculated:", score)},
		Factors: slices.Clone(scoreFactors),
	}
}

func helpResponse() Response {
	return HelpMenu{
		header:  header{Type: KindHelp, Message: "Hello! I'm your Gig-Score AI Assistant. I can help you with:"},
		Options: slices.Clone(helpOptions),
	}
}
