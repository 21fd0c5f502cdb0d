package chatbot

var savingsGoals = []SavingsGoal{
	{Name: "Emergency Fund", Amount: 270000, Timeline: "15 months", Priority: "High"},
	{Name: "Vehicle Purchase", Amount: 150000, Timeline: "10 months", Priority: "Medium"},
	{Name: "Home Down Payment", Amount: 500000, Timeline: "3 years", Priority: "Long-term"},
}

var savingsTips = []string{
	"Start with emergency fund (6 months expenses)",
	"Use 50-30-20 rule: 50% needs, 30% wants, 20% savings",
	"Set up automatic transfers on payday",
	"Track expenses weekly to find savings opportunities",
}

var (
	premiumCards = []Card{
		{Name: "HDFC Regalia", Limit: 300000, Benefits: "4X rewards on travel, Lounge access", AnnualFee: 2500},
		{Name: "Axis Magnus", Limit: 500000, Benefits: "Edge miles, 35K joining bonus", AnnualFee: 10000},
		{Name: "SBI Elite", Limit: 200000, Benefits: "Milestone rewards, Movie offers", AnnualFee: 4999},
	}
	standardCards = []Card{
		{Name: "HDFC MoneyBack+", Limit: 100000, Benefits: "2% cashback, Fuel surcharge waiver", AnnualFee: 500},
		{Name: "ICICI Amazon Pay", Limit: 75000, Benefits: "5% cashback on Amazon"},
		{Name: "Axis Neo", Limit: 50000, Benefits: "Accelerated rewards, No annual fee"},
	}
	starterCards = []Card{
		{Name: "HDFC MoneyBack", Limit: 25000, Benefits: "Basic rewards"},
		{Name: "SBI SimplyCLICK", Limit: 30000, Benefits: "10X rewards online", AnnualFee: 499},
	}
	starterCardTips = []string{
		"Current secured cards can help build credit",
		"Maintain consistent income for 6+ months",
		"Keep platform ratings high",
		"Aim for Gig-Score of 700+ for better options",
	}
)

var (
	excellentTips = []string{
		"Diversify income across multiple platforms",
		"Consider investing in equity mutual funds",
		"Build a portfolio with 60% equity, 40% debt",
		"Start SIPs for long-term wealth creation",
	}
	goodTips = []string{
		"Increase working hours during peak demand",
		"Maintain 4.5+ rating on all platforms",
		"Set up emergency fund (6 months expenses)",
		"Track all expenses using budgeting apps",
	}
	starterTips = []string{
		"Focus on one platform first, then expand",
		"Complete all pending verifications",
		"Work during high-demand hours for better income",
		"Respond quickly to requests for higher ratings",
	}
	actionItems = []ActionItem{
		{Action: "Review platform ratings weekly", Priority: "High"},
		{Action: "Track income vs expenses", Priority: "High"},
		{Action: "Set monthly savings target", Priority: "Medium"},
		{Action: "Explore additional gig platforms", Priority: "Low"},
	}
)

var (
	insurancePolicies = []Policy{
		{Name: "Health Insurance", Coverage: "₹5-10 Lakhs", Premium: "₹500-800/month", Priority: "Essential"},
		{Name: "Accident Cover", Coverage: "₹10-25 Lakhs", Premium: "₹200-400/month", Priority: "Essential"},
		{Name: "Term Life Insurance", Coverage: "₹50 Lakhs", Premium: "₹400-600/month", Priority: "Important"},
		{Name: "Vehicle Insurance", Coverage: "Comprehensive", Premium: "₹3000-8000/year", Priority: "Mandatory"},
	}
	insuranceTips = []string{
		"Start with health insurance - non-negotiable",
		"Accident cover is crucial for gig workers",
		"Compare quotes from multiple insurers",
		"Check if platforms offer any group insurance",
	}
)

var (
	taxDetails = TaxDetails{
		IncomeType: "Business/Profession Income",
		ITRForm:    "ITR-3 or ITR-4 (Presumptive)",
		DueDate:    "July 31st every year",
		Deductions: []string{
			"Vehicle expenses (fuel, maintenance)",
			"Mobile/Internet expenses",
			"Equipment depreciation",
			"Section 80C investments (up to ₹1.5L)",
			"Health insurance premium (80D)",
		},
	}
	taxTips = []string{
		"Maintain records of all expenses",
		"If income > ₹20L, consider GST registration",
		"Use ITR-4 for presumptive taxation (simpler)",
		"Pay advance tax quarterly if liability > ₹10,000",
	}
)

var (
	premiumFunds = []Fund{
		{Name: "Axis Bluechip Fund", Category: "Large Cap", Risk: "Moderate", Returns: "12-15%", MinSIP: 500},
		{Name: "Mirae Asset Emerging", Category: "Mid Cap", Risk: "High", Returns: "15-20%", MinSIP: 1000},
		{Name: "HDFC Index Fund", Category: "Index Fund", Risk: "Low", Returns: "10-12%", MinSIP: 500},
		{Name: "SBI Small Cap Fund", Category: "Small Cap", Risk: "Very High", Returns: "18-25%", MinSIP: 1500},
	}
	premiumPortfolio = PortfolioMix{
		Conservative: "60% Large Cap, 30% Debt, 10% Gold",
		Moderate:     "50% Large Cap, 30% Mid Cap, 20% Debt",
		Aggressive:   "40% Large Cap, 40% Mid/Small Cap, 20% Index",
	}
	balancedFunds = []Fund{
		{Name: "HDFC Balanced Advantage", Category: "Hybrid", Risk: "Moderate", Returns: "10-13%", MinSIP: 500},
		{Name: "ICICI Prudential Equity", Category: "Large Cap", Risk: "Moderate", Returns: "11-14%", MinSIP: 500},
		{Name: "Kotak Standard Multicap", Category: "Multi Cap", Risk: "Moderate-High", Returns: "12-16%", MinSIP: 1000},
	}
	lowRiskFunds = []Fund{
		{Name: "HDFC Liquid Fund", Category: "Liquid", Risk: "Very Low", Returns: "5-7%", MinSIP: 500},
		{Name: "SBI Overnight Fund", Category: "Overnight", Risk: "Very Low", Returns: "4-5%", MinSIP: 500},
		{Name: "Axis Short Term Fund", Category: "Debt", Risk: "Low", Returns: "6-8%", MinSIP: 1000},
	}
)

var (
	premiumLoans = []LoanOffer{
		{Type: "Personal Loan", Amount: 500000, Rate: 10.5, TenureYears: 5},
		{Type: "Business Loan", Amount: 1000000, Rate: 11, TenureYears: 7},
		{Type: "Vehicle Loan", Amount: 800000, Rate: 9.5, TenureYears: 5},
	}
	standardLoans = []LoanOffer{
		{Type: "Personal Loan", Amount: 200000, Rate: 14, TenureYears: 3},
		{Type: "Working Capital", Amount: 150000, Rate: 15, TenureYears: 2},
	}
	loanTips = []string{
		"Maintain consistent income for 6+ months",
		"Keep platform ratings above 4.5",
		"Increase transaction frequency",
		"Build a longer work history on gig platforms",
	}
)

var scoreFactors = []FactorInfo{
	{Name: "Transaction Frequency", Weight: "30%", Description: "Number of transactions in last 6 months"},
	{Name: "Income Consistency", Weight: "25%", Description: "How stable your monthly income is"},
	{Name: "Platform Ratings", Weight: "25%", Description: "Average rating across gig platforms"},
	{Name: "Account Tenure", Weight: "20%", Description: "How long you've been on platforms"},
}

var helpOptions = []string{
	"💰 Mutual Fund Recommendations",
	"🏦 Loan Eligibility & Offers",
	"💳 Credit Card Suggestions",
	"📊 EMI Calculator",
	"🎯 Savings Goals & Planning",
	"🛡️ Insurance Recommendations",
	"📋 Tax Guidance for Gig Workers",
	"📈 Tips to Improve Your Score",
}
