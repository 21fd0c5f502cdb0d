package simulator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestSimulator(seed int64) *Simulator {
	return New(rand.New(rand.NewSource(seed)), func() time.Time { return fixedNow })
}

func monthsBack(t time.Time) int {
	return (fixedNow.Year()-t.Year())*12 + int(fixedNow.Month()-t.Month())
}

func TestSimulator_Generate(t *testing.T) {
	txs := newTestSimulator(7).Generate("rahul@okaxis")
	require.NotEmpty(t, txs)

	perMonth := make(map[int]int)
	credits := 0
	for i, tx := range txs {
		assert.GreaterOrEqual(t, tx.Amount, int64(200))
		assert.Less(t, tx.Amount, int64(2200))
		assert.GreaterOrEqual(t, tx.Date.Day(), 1)
		assert.LessOrEqual(t, tx.Date.Day(), 28)
		assert.Contains(t, models.Sources, tx.Source)
		assert.Contains(t, tx.ID, "TXN-")
		if i > 0 {
			assert.False(t, tx.Date.After(txs[i-1].Date), "transactions must be newest first")
		}
		if tx.Type == models.DirectionCredit {
			credits++
		}
		perMonth[monthsBack(tx.Date)]++
	}

	require.Len(t, perMonth, models.MonthsAnalyzed)
	for month, n := range perMonth {
		assert.GreaterOrEqual(t, month, 0)
		assert.Less(t, month, models.MonthsAnalyzed)
		assert.GreaterOrEqual(t, n, 40)
		assert.Less(t, n, 70)
	}

	ratio := float64(credits) / float64(len(txs))
	assert.InDelta(t, 0.7, ratio, 0.1)
}

func TestSimulator_SameSeedSameHistory(t *testing.T) {
	a := newTestSimulator(42).Simulate("worker@upi")
	b := newTestSimulator(42).Simulate("worker@upi")
	assert.Equal(t, a, b)

	c := newTestSimulator(43).Simulate("worker@upi")
	assert.NotEqual(t, a.Transactions, c.Transactions)
}

func TestSimulator_Simulate(t *testing.T) {
	set := newTestSimulator(1).Simulate("")
	assert.Equal(t, "", set.UPIID)
	assert.Equal(t, fixedNow, set.FetchedAt)
	assert.Equal(t, len(set.Transactions), set.Analysis.TotalTransactions)
	assert.Len(t, set.Analysis.MonthlyIncomes, models.MonthsAnalyzed)

	var sum int64
	for _, v := range set.Analysis.MonthlyIncomes {
		sum += v
	}
	assert.Equal(t, set.Analysis.TotalIncome, sum)
	assert.GreaterOrEqual(t, set.Analysis.ConsistencyScore, 0)
	assert.LessOrEqual(t, set.Analysis.ConsistencyScore, 100)
}

func credit(monthsAgo int, amount int64, src models.Source) models.Transaction {
	return models.Transaction{
		Date:   time.Date(fixedNow.Year(), fixedNow.Month()-time.Month(monthsAgo), 10, 9, 0, 0, 0, time.UTC),
		Amount: amount,
		Source: src,
		Type:   models.DirectionCredit,
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name            string
		txs             []models.Transaction
		wantTotal       int64
		wantAverage     int64
		wantConsistency int
		wantMonthly     []int64
	}{
		{
			name: "flat income is perfectly consistent",
			txs: []models.Transaction{
				credit(0, 1000, models.SourceUber), credit(1, 1000, models.SourceUber),
				credit(2, 1000, models.SourceOla), credit(3, 1000, models.SourceOla),
				credit(4, 1000, models.SourceGPay), credit(5, 1000, models.SourceGPay),
			},
			wantTotal:       6000,
			wantAverage:     1000,
			wantConsistency: 100,
			wantMonthly:     []int64{1000, 1000, 1000, 1000, 1000, 1000},
		},
		{
			name:            "no transactions scores zero",
			txs:             nil,
			wantConsistency: 0,
			wantMonthly:     []int64{0, 0, 0, 0, 0, 0},
		},
		{
			name:            "variance above mean clamps to zero",
			txs:             []models.Transaction{credit(0, 600, models.SourceZomato)},
			wantTotal:       600,
			wantAverage:     100,
			wantConsistency: 0,
			wantMonthly:     []int64{600, 0, 0, 0, 0, 0},
		},
		{
			name: "debits and out-of-window credits are ignored by buckets",
			txs: []models.Transaction{
				credit(0, 500, models.SourceSwiggy),
				{Date: fixedNow, Amount: 900, Source: models.SourceSwiggy, Type: models.DirectionDebit},
				credit(7, 300, models.SourceRapido),
			},
			wantTotal:       800,
			wantAverage:     133,
			wantConsistency: 0,
			wantMonthly:     []int64{500, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.txs, fixedNow)
			assert.Equal(t, tt.wantTotal, got.TotalIncome)
			assert.Equal(t, tt.wantAverage, got.AverageMonthlyIncome)
			assert.Equal(t, tt.wantConsistency, got.ConsistencyScore)
			assert.Equal(t, tt.wantMonthly, got.MonthlyIncomes)
			assert.Equal(t, len(tt.txs), got.TotalTransactions)
		})
	}
}

func TestAnalyze_IncomeBySource(t *testing.T) {
	txs := []models.Transaction{
		credit(0, 700, models.SourceUber),
		credit(1, 300, models.SourceUber),
		credit(2, 250, models.SourcePhonePe),
		{Date: fixedNow, Amount: 999, Source: models.SourcePhonePe, Type: models.DirectionDebit},
	}
	got := Analyze(txs, fixedNow)
	assert.Equal(t, map[models.Source]int64{
		models.SourceUber:    1000,
		models.SourcePhonePe: 250,
	}, got.IncomeBySource)
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 0, ConsistencyScore(nil))
	assert.Equal(t, 100, ConsistencyScore([]int64{5, 5, 5}))
	// mean 1000, population sd 100 => 90
	assert.Equal(t, 90, ConsistencyScore([]int64{900, 1100, 900, 1100}))
}
