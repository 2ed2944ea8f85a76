package services

import (
	"fmt"
	"math"
	"time"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// Percentages used by the pricing policy. VAT is a fixed constant of the
// business, not a per-call parameter; the default margin covers bookings
// no configured rule matched.
var (
	vatPercent           = domain.NewMoney(20, 1)
	defaultMarginPercent = domain.NewMoney(10, 1)
)

// QuoteInput carries the net supplier prices and booking context for one
// calculation. Nil prices default to zero; an empty currency defaults to
// EUR. All three prices share one currency, no conversion is performed.
type QuoteInput struct {
	FlightPrice   *domain.Money
	HotelPrice    *domain.Money
	TransferPrice *domain.Money

	CheckInDate time.Time
	Category    string
	Season      string

	ApplyOpaqueMask bool
	Currency        string
}

// PackagePricer is the margin & price calculator. It is a stateless
// domain service: a pure transform over its inputs and the supplied
// candidate rules, safe for concurrent use without coordination.
type PackagePricer struct{}

// NewPackagePricer creates a PackagePricer.
func NewPackagePricer() *PackagePricer {
	return &PackagePricer{}
}

// AdvanceBookingDays derives the whole days between the evaluation
// instant and check-in, floor-rounded: a check-in 23 hours away is 0
// days in advance, and a check-in already in the past goes negative.
func AdvanceBookingDays(now, checkIn time.Time) int64 {
	return int64(math.Floor(checkIn.Sub(now).Hours() / 24))
}

// ComputePackagePrice turns net component prices into a customer-facing
// total:
//
//  1. basePrice = flight + hotel + transfer
//  2. the single highest-priority candidate rule sets the margin; with
//     no candidates a default 10% margin applies and no rule is recorded
//  3. 20% VAT on basePrice + margin
//  4. an itemized breakdown with one line per positive net component
//     plus the margin and tax lines
//
// Rules never stack. The candidate list is trusted to be pre-filtered by
// activity and matching predicates; only ranking happens here.
func (p *PackagePricer) ComputePackagePrice(in QuoteInput, candidates []domain.MarginRule, now time.Time) (*domain.PackageCalculation, error) {
	flight, err := validNetPrice("flight", in.FlightPrice)
	if err != nil {
		return nil, err
	}
	hotel, err := validNetPrice("hotel", in.HotelPrice)
	if err != nil {
		return nil, err
	}
	transfer, err := validNetPrice("transfer", in.TransferPrice)
	if err != nil {
		return nil, err
	}
	if in.CheckInDate.IsZero() {
		return nil, domain.ErrMissingCheckInDate
	}

	currency := in.Currency
	if currency == "" {
		currency = "EUR"
	}

	basePrice := flight.Add(hotel).Add(transfer)

	margin := domain.Zero()
	var applied []domain.MarginRule
	if rule := domain.TopPriority(candidates); rule != nil {
		margin = rule.MarginFor(basePrice)
		applied = []domain.MarginRule{*rule}
	} else {
		margin = basePrice.Percent(defaultMarginPercent)
	}

	tax := basePrice.Add(margin).Percent(vatPercent)
	total := basePrice.Add(margin).Add(tax)

	components := make([]domain.PriceComponent, 0, 5)
	for _, line := range []struct {
		t   domain.ComponentType
		net *domain.Money
	}{
		{domain.ComponentFlight, flight},
		{domain.ComponentHotel, hotel},
		{domain.ComponentTransfer, transfer},
	} {
		if line.net.IsPositive() {
			components = append(components, domain.NewComponent(line.t, line.net, nil, nil, currency))
		}
	}
	components = append(components,
		domain.NewComponent(domain.ComponentMargin, nil, margin, nil, currency),
		domain.NewComponent(domain.ComponentTax, nil, nil, tax, currency),
	)

	return &domain.PackageCalculation{
		BasePrice:          basePrice,
		Margin:             margin,
		Tax:                tax,
		TotalPrice:         total,
		Currency:           currency,
		Breakdown:          domain.BuildBreakdown(components, currency),
		AppliedRules:       applied,
		OpaquePricing:      in.ApplyOpaqueMask,
		AdvanceBookingDays: AdvanceBookingDays(now, in.CheckInDate),
	}, nil
}

func validNetPrice(name string, price *domain.Money) (*domain.Money, error) {
	if price == nil {
		return domain.Zero(), nil
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%s price: %w", name, domain.ErrNegativePrice)
	}
	return price, nil
}
