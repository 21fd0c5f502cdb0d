package simulator

import (
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/shopspring/decimal"
)

const defaultPartnerName = "Delivery Partner"

// intRange is a uniform draw of Min + [0, Spread)
type intRange struct {
	Min    int
	Spread int
}

func (r intRange) draw(rnd *rand.Rand) int {
	if r.Spread <= 0 {
		return r.Min
	}
	return r.Min + rnd.Intn(r.Spread)
}

// PlatformProfile describes how believable records for one platform look
type PlatformProfile struct {
	Name        string
	Family      models.PlatformFamily
	RatingMin   float64
	RatingSpan  float64
	Activity    intRange
	MemberSince time.Time
	// Completion/acceptance for drivers, on-time/satisfaction for delivery.
	PrimaryRate   intRange
	SecondaryRate intRange
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultProfiles is the per-platform table the generator draws from.
var DefaultProfiles = map[models.PlatformKey]PlatformProfile{
	models.PlatformUber: {
		Name: "Uber", Family: models.FamilyDriver,
		RatingMin: 4.2, RatingSpan: 0.8,
		Activity:      intRange{Min: 500, Spread: 2000},
		MemberSince:   date(2022, time.January, 15),
		PrimaryRate:   intRange{Min: 90, Spread: 10},
		SecondaryRate: intRange{Min: 85, Spread: 15},
	},
	models.PlatformOla: {
		Name: "Ola", Family: models.FamilyDriver,
		RatingMin: 4.1, RatingSpan: 0.8,
		Activity:      intRange{Min: 400, Spread: 1500},
		MemberSince:   date(2022, time.March, 20),
		PrimaryRate:   intRange{Min: 88, Spread: 10},
		SecondaryRate: intRange{Min: 82, Spread: 15},
	},
	models.PlatformZomato: {
		Name: "Zomato", Family: models.FamilyDelivery,
		RatingMin: 4.3, RatingSpan: 0.6,
		Activity:      intRange{Min: 800, Spread: 3000},
		MemberSince:   date(2021, time.August, 10),
		PrimaryRate:   intRange{Min: 92, Spread: 8},
		SecondaryRate: intRange{Min: 90, Spread: 10},
	},
	models.PlatformSwiggy: {
		Name: "Swiggy", Family: models.FamilyDelivery,
		RatingMin: 4.2, RatingSpan: 0.7,
		Activity:      intRange{Min: 600, Spread: 2500},
		MemberSince:   date(2021, time.November, 5),
		PrimaryRate:   intRange{Min: 91, Spread: 8},
		SecondaryRate: intRange{Min: 88, Spread: 10},
	},
}

// RatingGenerator synthesizes platform reputation records
type RatingGenerator struct {
	rand     *rand.Rand
	profiles map[models.PlatformKey]PlatformProfile
}

// NewRatingGenerator returns a generator over DefaultProfiles when profiles is nil.
func NewRatingGenerator(rnd *rand.Rand, profiles map[models.PlatformKey]PlatformProfile) *RatingGenerator {
	if profiles == nil {
		profiles = DefaultProfiles
	}
	return &RatingGenerator{rand: rnd, profiles: profiles}
}

// Generate returns a rating for every known platform whose identity field is filled in.
// Unknown platforms and blank identities are skipped.
func (g *RatingGenerator) Generate(creds map[models.PlatformKey]models.PlatformCredentials) map[models.PlatformKey]models.PlatformRating {
	ratings := make(map[models.PlatformKey]models.PlatformRating)

	keys := make([]models.PlatformKey, 0, len(creds))
	for k := range creds {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		profile, ok := g.profiles[key]
		if !ok {
			continue
		}
		c := creds[key]
		if strings.TrimSpace(identity(profile.Family, c)) == "" {
			continue
		}
		ratings[key] = g.rate(profile, c)
	}
	return ratings
}

func identity(family models.PlatformFamily, c models.PlatformCredentials) string {
	if family == models.FamilyDelivery {
		return c.PartnerID
	}
	return c.DriverName
}

func (g *RatingGenerator) rate(p PlatformProfile, c models.PlatformCredentials) models.PlatformRating {
	raw := g.rand.Float64()*p.RatingSpan + p.RatingMin
	rating, _ := decimal.NewFromFloat(raw).Round(1).Float64()

	r := models.PlatformRating{
		Platform:      p.Name,
		Family:        p.Family,
		Rating:        rating,
		ActivityCount: p.Activity.draw(g.rand),
		MemberSince:   p.MemberSince,
		Verified:      true,
	}

	switch p.Family {
	case models.FamilyDelivery:
		r.PartnerID = c.PartnerID
		r.PartnerName = c.PartnerName
		if r.PartnerName == "" {
			r.PartnerName = defaultPartnerName
		}
		r.OnTimeDelivery = p.PrimaryRate.draw(g.rand)
		r.CustomerSatisfaction = p.SecondaryRate.draw(g.rand)
	default:
		r.DriverName = c.DriverName
		r.VehicleNumber = c.VehicleNumber
		r.CompletionRate = p.PrimaryRate.draw(g.rand)
		r.AcceptanceRate = p.SecondaryRate.draw(g.rand)
	}
	return r
}
