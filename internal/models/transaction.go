package models

import "time"

// Source is the payer label attached to a simulated UPI transaction
type Source string

const (
	SourceUber    Source = "Uber"
	SourceSwiggy  Source = "Swiggy"
	SourceZomato  Source = "Zomato"
	SourceOla     Source = "Ola"
	SourceRapido  Source = "Rapido"
	SourcePhonePe Source = "PhonePe"
	SourceGPay    Source = "GPay"
)

// Sources lists every transaction source in draw order.
var Sources = []Source{SourceUber, SourceSwiggy, SourceZomato, SourceOla, SourceRapido, SourcePhonePe, SourceGPay}

// Direction tells whether money came in or went out
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Transaction represents a single simulated UPI transaction
type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      int64     `json:"amount"` // whole rupees
	Source      Source    `json:"source"`
	Type        Direction `json:"type"`
	Description string    `json:"description"`
}

// TransactionSet is the result of one UPI history fetch
type TransactionSet struct {
	UPIID        string              `json:"upiId"`
	Transactions []Transaction       `json:"transactions"`
	Analysis     TransactionAnalysis `json:"analysis"`
	FetchedAt    time.Time           `json:"fetchedAt"`
}
