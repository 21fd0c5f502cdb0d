// Package scoring turns transaction statistics and platform reputation into a Gig-Score.
package scoring

import (
	"maps"
	"math"
	"slices"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
)

const (
	baseScore = 300.0

	frequencyCap         = 150.0
	frequencyTarget      = 300.0 // transactions in six months for full marks
	consistencyWeight    = 150.0
	ratingWeight         = 200.0
	ratingFloor          = 3.0
	tenureCap            = 100.0
	tenureTargetMonths   = 36.0
	daysPerTenureMonth   = 30.0
	ratingDisplayPerStar = 50.0
)

// Engine computes scores against a clock used for platform tenure
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine; a nil clock means time.Now.
func NewEngine(clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{now: clock}
}

// Compute scores analysis and ratings at the engine's current time.
func (e *Engine) Compute(analysis *models.TransactionAnalysis, ratings map[models.PlatformKey]models.PlatformRating) models.ScoreResult {
	return Compute(analysis, ratings, e.now())
}

// Compute combines the transaction analysis and platform ratings into a score
// clamped to [MinScore, MaxScore]. A nil analysis or empty ratings contribute nothing.
func Compute(analysis *models.TransactionAnalysis, ratings map[models.PlatformKey]models.PlatformRating, now time.Time) models.ScoreResult {
	var txCount, consistency float64
	if analysis != nil {
		txCount = math.Max(0, float64(analysis.TotalTransactions))
		consistency = float64(analysis.ConsistencyScore)
	}

	c := models.ScoreContributions{
		Base:                 baseScore,
		TransactionFrequency: math.Min(frequencyCap, txCount/frequencyTarget*frequencyCap),
		IncomeConsistency:    consistency / 100 * consistencyWeight,
	}

	var factors models.ScoreFactors
	factors.TransactionFrequency = int(math.Round(txCount / frequencyTarget * 100))
	factors.IncomeConsistency = int(consistency)

	if len(ratings) > 0 {
		avgRating, avgTenure := averages(ratings, now)
		c.PlatformRating = (avgRating - ratingFloor) / 2 * ratingWeight
		c.AccountTenure = math.Min(tenureCap, avgTenure/tenureTargetMonths*tenureCap)

		factors.PlatformRating = int(math.Round((avgRating - ratingFloor) * ratingDisplayPerStar))
		factors.AccountTenure = int(math.Min(100, math.Round(avgTenure/tenureTargetMonths*100)))
	}

	total := c.Base + c.TransactionFrequency + c.IncomeConsistency + c.PlatformRating + c.AccountTenure
	score := int(math.Round(total))
	score = max(models.MinScore, min(models.MaxScore, score))

	return models.ScoreResult{
		Score:         score,
		MaxScore:      models.MaxScore,
		Band:          Band(score),
		Factors:       factors,
		Contributions: c,
	}
}

// averages returns the mean rating and the mean tenure in 30-day months.
// Keys are summed in sorted order so equal inputs give bit-identical results.
func averages(ratings map[models.PlatformKey]models.PlatformRating, now time.Time) (float64, float64) {
	var ratingSum, tenureSum float64
	for _, key := range slices.Sorted(maps.Keys(ratings)) {
		r := ratings[key]
		ratingSum += r.Rating
		tenureSum += TenureMonths(r.MemberSince, now)
	}
	n := float64(len(ratings))
	return ratingSum / n, tenureSum / n
}

// TenureMonths is the time since memberSince in 30-day months, never negative.
func TenureMonths(memberSince, now time.Time) float64 {
	days := now.Sub(memberSince).Hours() / 24
	return math.Max(0, days/daysPerTenureMonth)
}

// Band labels a score the way the dashboard gauge does.
func Band(score int) string {
	switch {
	case score >= 750:
		return "Excellent"
	case score >= 650:
		return "Good"
	case score >= 550:
		return "Fair"
	default:
		return "Poor"
	}
}
