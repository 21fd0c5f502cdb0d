// Command simulate runs the Gig-Score pipeline offline and prints the
// resulting snapshot as JSON.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Dan9191/gig-score/internal/models"
	"github.com/Dan9191/gig-score/internal/service"
	"github.com/Dan9191/gig-score/internal/simulator"
	"github.com/goccy/go-json"
)

func main() {
	var (
		upiID      = flag.String("upi", "demo@okaxis", "UPI id to simulate")
		paymentApp = flag.String("app", "gpay", "payment app the UPI id belongs to")
		platforms  = flag.String("platforms", "", `linked platforms, e.g. "uber=Rahul Kumar,zomato=ZMT-1042"`)
		seed       = flag.Int64("seed", 0, "random seed for deterministic output (0 = random)")
		pretty     = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	creds, err := parsePlatforms(*platforms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -platforms: %v\n", err)
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))

	snap := service.Evaluate(rnd, time.Now(), service.AnalyzeRequest{
		UPIID:      *upiID,
		PaymentApp: *paymentApp,
		Platforms:  creds,
	})

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(snap, "", "  ")
	} else {
		out, err = json.Marshal(snap)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, string(out))
}

// parsePlatforms reads "key=identity" pairs. The identity is the driver name
// for driver platforms and the partner id for delivery platforms.
func parsePlatforms(list string) (map[models.PlatformKey]models.PlatformCredentials, error) {
	creds := make(map[models.PlatformKey]models.PlatformCredentials)
	if strings.TrimSpace(list) == "" {
		return creds, nil
	}

	for _, part := range strings.Split(list, ",") {
		name, identity, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("%q is not key=identity", part)
		}
		key := models.PlatformKey(strings.ToLower(strings.TrimSpace(name)))
		profile, known := simulator.DefaultProfiles[key]
		if !known {
			return nil, fmt.Errorf("unknown platform %q", name)
		}

		identity = strings.TrimSpace(identity)
		switch profile.Family {
		case models.FamilyDriver:
			creds[key] = models.PlatformCredentials{DriverName: identity}
		default:
			creds[key] = models.PlatformCredentials{PartnerID: identity}
		}
	}
	return creds, nil
}
