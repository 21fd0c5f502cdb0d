package models

import "time"

// UserInputs records what the worker entered in the linking wizard
type UserInputs struct {
	UPIID      string                              `json:"upiId"`
	PaymentApp string                              `json:"paymentApp,omitempty"`
	Platforms  map[PlatformKey]PlatformCredentials `json:"platforms"`
}

// Snapshot is the last computed result cached per user
type Snapshot struct {
	Email           string                         `json:"-"`
	UPIData         TransactionSet                 `json:"upiData"`
	PlatformRatings map[PlatformKey]PlatformRating `json:"platformRatings"`
	ScoreData       ScoreResult                    `json:"scoreData"`
	UserInputs      UserInputs                     `json:"userInputs"`
	GeneratedAt     time.Time                      `json:"generatedAt"`
}
