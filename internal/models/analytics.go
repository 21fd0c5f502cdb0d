package models

// MonthsAnalyzed is the length of the simulated UPI history
const MonthsAnalyzed = 6

// TransactionAnalysis represents aggregate statistics over a transaction set
type TransactionAnalysis struct {
	TotalIncome          int64            `json:"totalIncome"`
	AverageMonthlyIncome int64            `json:"avgMonthlyIncome"`
	TotalTransactions    int              `json:"totalTransactions"`
	IncomeBySource       map[Source]int64 `json:"incomeBySource"`
	ConsistencyScore     int              `json:"consistencyScore"` // 0..100, higher is steadier
	MonthlyIncomes       []int64          `json:"monthlyIncomes"`   // most recent month first
}
