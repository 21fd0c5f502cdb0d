package models

const (
	MinScore = 300
	MaxScore = 900
)

// ScoreFactors is the 0-100 display breakdown shown on the dashboard
type ScoreFactors struct {
	TransactionFrequency int `json:"transactionFrequency"`
	IncomeConsistency    int `json:"incomeConsistency"`
	PlatformRating       int `json:"platformRating"`
	AccountTenure        int `json:"accountTenure"`
}

// ScoreContributions holds the raw points each term added to the base score
type ScoreContributions struct {
	Base                 float64 `json:"base"`
	TransactionFrequency float64 `json:"transactionFrequency"`
	IncomeConsistency    float64 `json:"incomeConsistency"`
	PlatformRating       float64 `json:"platformRating"`
	AccountTenure        float64 `json:"accountTenure"`
}

// ScoreResult represents a computed Gig-Score
type ScoreResult struct {
	Score         int                `json:"score"`
	MaxScore      int                `json:"maxScore"`
	Band          string             `json:"band"`
	Factors       ScoreFactors       `json:"factors"`
	Contributions ScoreContributions `json:"contributions"`
}
