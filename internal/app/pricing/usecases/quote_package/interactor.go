package quote_package

import (
	"context"
	"fmt"
	"time"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain/services"
	"github.com/voyatra/package-pricing-service/internal/pkg/clock"
)

// Request is the application-level quote request. Prices arrive as
// decimal strings; empty means that component is absent.
type Request struct {
	FlightPrice   string
	HotelPrice    string
	TransferPrice string

	CheckInDate time.Time
	Category    string
	Season      string

	ApplyOpaqueMask bool
	Currency        string
}

// Interactor computes a package price without persisting anything: it
// snapshots the clock once, fetches the pre-filtered candidate rules and
// runs the pure calculator.
type Interactor struct {
	RuleSource contracts.RuleSource
	Clock      clock.Clock
	Pricer     *services.PackagePricer
}

func NewInteractor(rules contracts.RuleSource, clk clock.Clock) *Interactor {
	return &Interactor{
		RuleSource: rules,
		Clock:      clk,
		Pricer:     services.NewPackagePricer(),
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.PackageCalculation, error) {
	now := it.Clock.Now()

	// 1. Parse and validate input before any rule fetch or arithmetic.
	in, err := buildQuoteInput(req)
	if err != nil {
		return nil, err
	}
	if in.CheckInDate.IsZero() {
		return nil, domain.ErrMissingCheckInDate
	}

	// 2. Fetch candidates for the booking context. Rule matching lives
	// entirely in the source; the calculator only ranks the result.
	match := contracts.RuleMatch{
		AdvanceDays: services.AdvanceBookingDays(now, in.CheckInDate),
		Category:    in.Category,
		Season:      in.Season,
	}
	rules, err := it.RuleSource.CandidateRules(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate rules: %w", err)
	}

	// 3. Pure computation.
	return it.Pricer.ComputePackagePrice(in, rules, now)
}

func buildQuoteInput(req Request) (services.QuoteInput, error) {
	flight, err := parsePrice("flight", req.FlightPrice)
	if err != nil {
		return services.QuoteInput{}, err
	}
	hotel, err := parsePrice("hotel", req.HotelPrice)
	if err != nil {
		return services.QuoteInput{}, err
	}
	transfer, err := parsePrice("transfer", req.TransferPrice)
	if err != nil {
		return services.QuoteInput{}, err
	}

	return services.QuoteInput{
		FlightPrice:     flight,
		HotelPrice:      hotel,
		TransferPrice:   transfer,
		CheckInDate:     req.CheckInDate,
		Category:        req.Category,
		Season:          req.Season,
		ApplyOpaqueMask: req.ApplyOpaqueMask,
		Currency:        req.Currency,
	}, nil
}

func parsePrice(name, s string) (*domain.Money, error) {
	if s == "" {
		return nil, nil
	}
	m, err := domain.NewMoneyFromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%s price: %w", name, err)
	}
	return m, nil
}
