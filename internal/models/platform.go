package models

import "time"

// PlatformKey identifies a gig platform, e.g. "uber"
type PlatformKey string

const (
	PlatformUber   PlatformKey = "uber"
	PlatformOla    PlatformKey = "ola"
	PlatformZomato PlatformKey = "zomato"
	PlatformSwiggy PlatformKey = "swiggy"
)

// PlatformFamily groups platforms that share identity fields and metrics
type PlatformFamily string

const (
	FamilyDriver   PlatformFamily = "driver"
	FamilyDelivery PlatformFamily = "delivery"
)

// PlatformCredentials holds what a worker typed in for one platform.
// Driver platforms use DriverName/VehicleNumber, delivery platforms PartnerID/PartnerName.
type PlatformCredentials struct {
	DriverName    string `json:"driverName,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	PartnerID     string `json:"partnerId,omitempty"`
	PartnerName   string `json:"partnerName,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// PlatformRating represents a simulated reputation record for one platform
type PlatformRating struct {
	Platform      string         `json:"platform"`
	Family        PlatformFamily `json:"family"`
	DriverName    string         `json:"driverName,omitempty"`
	VehicleNumber string         `json:"vehicleNumber,omitempty"`
	PartnerID     string         `json:"partnerId,omitempty"`
	PartnerName   string         `json:"partnerName,omitempty"`
	Rating        float64        `json:"rating"`
	ActivityCount int            `json:"activityCount"` // rides or deliveries
	MemberSince   time.Time      `json:"memberSince"`

	CompletionRate       int `json:"completionRate,omitempty"`
	AcceptanceRate       int `json:"acceptanceRate,omitempty"`
	OnTimeDelivery       int `json:"onTimeDelivery,omitempty"`
	CustomerSatisfaction int `json:"customerSatisfaction,omitempty"`

	Verified bool `json:"verified"`
}
