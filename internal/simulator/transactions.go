package simulator

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/google/uuid"
)

const (
	minMonthlyTransactions = 40
	monthlySpread          = 30 // 40..69 transactions per month
	minAmount              = 200
	amountSpread           = 2000 // amounts in [200, 2200)
	creditThreshold        = 0.3  // draws above this are credits, ~70%
	maxDay                 = 28
)

// Simulator synthesizes UPI transaction history.
// A Simulator owns its random source and is not safe for concurrent use.
type Simulator struct {
	rand *rand.Rand
	now  func() time.Time
}

// New returns a Simulator drawing from rnd. A nil clock means time.Now.
func New(rnd *rand.Rand, clock func() time.Time) *Simulator {
	if clock == nil {
		clock = time.Now
	}
	return &Simulator{rand: rnd, now: clock}
}

// Simulate generates and analyzes six months of transactions for upiID
func (s *Simulator) Simulate(upiID string) models.TransactionSet {
	now := s.now()
	txs := s.generate(now)
	return models.TransactionSet{
		UPIID:        upiID,
		Transactions: txs,
		Analysis:     Analyze(txs, now),
		FetchedAt:    now,
	}
}

// Generate returns the raw transaction history. upiID is not validated and
// does not influence the output.
func (s *Simulator) Generate(upiID string) []models.Transaction {
	return s.generate(s.now())
}

func (s *Simulator) generate(now time.Time) []models.Transaction {
	var txs []models.Transaction
	for month := 0; month < models.MonthsAnalyzed; month++ {
		n := s.rand.Intn(monthlySpread) + minMonthlyTransactions
		for i := 0; i < n; i++ {
			day := s.rand.Intn(maxDay) + 1
			date := time.Date(now.Year(), now.Month()-time.Month(month), day,
				now.Hour(), now.Minute(), now.Second(), 0, now.Location())

			txs = append(txs, models.Transaction{
				ID:          s.newID(),
				Date:        date,
				Amount:      int64(s.rand.Intn(amountSpread) + minAmount),
				Source:      s.pickSource(),
				Type:        s.pickDirection(),
				Description: fmt.Sprintf("Payment from %s", s.pickSource()),
			})
		}
	}

	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return txs
}

func (s *Simulator) newID() string {
	id, err := uuid.NewRandomFromReader(s.rand)
	if err != nil {
		// math/rand never fails to read
		return fmt.Sprintf("TXN-%d", s.rand.Int63())
	}
	return "TXN-" + id.String()
}

func (s *Simulator) pickSource() models.Source {
	return models.Sources[s.rand.Intn(len(models.Sources))]
}

func (s *Simulator) pickDirection() models.Direction {
	if s.rand.Float64() > creditThreshold {
		return models.DirectionCredit
	}
	return models.DirectionDebit
}

// Analyze computes income aggregates over txs relative to now.
// Monthly buckets are calendar months ending with the month of now.
func Analyze(txs []models.Transaction, now time.Time) models.TransactionAnalysis {
	analysis := models.TransactionAnalysis{
		TotalTransactions: len(txs),
		IncomeBySource:    make(map[models.Source]int64),
		MonthlyIncomes:    make([]int64, models.MonthsAnalyzed),
	}

	var credits []models.Transaction
	for _, t := range txs {
		if t.Type != models.DirectionCredit {
			continue
		}
		credits = append(credits, t)
		analysis.TotalIncome += t.Amount
		analysis.IncomeBySource[t.Source] += t.Amount
	}
	analysis.AverageMonthlyIncome = int64(math.Round(float64(analysis.TotalIncome) / models.MonthsAnalyzed))

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := range analysis.MonthlyIncomes {
		start := current.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		for _, t := range credits {
			if !t.Date.Before(start) && t.Date.Before(end) {
				analysis.MonthlyIncomes[i] += t.Amount
			}
		}
	}

	analysis.ConsistencyScore = ConsistencyScore(analysis.MonthlyIncomes)
	return analysis
}

// ConsistencyScore maps the coefficient of variation of monthly incomes onto 0..100.
// A flat series scores 100; a zero mean scores 0.
func ConsistencyScore(monthly []int64) int {
	if len(monthly) == 0 {
		return 0
	}

	var sum float64
	for _, v := range monthly {
		sum += float64(v)
	}
	mean := sum / float64(len(monthly))
	if mean <= 0 {
		return 0
	}

	var variance float64
	for _, v := range monthly {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(monthly))
	stdDev := math.Sqrt(variance)

	score := 100 - (stdDev/mean)*100
	return int(math.Round(math.Max(0, math.Min(100, score))))
}
