package pricing

import (
	"fmt"
	"time"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
)

type componentResponse struct {
	Type         string `json:"type"`
	NetPrice     string `json:"net_price"`
	MarginAmount string `json:"margin_amount"`
	TaxAmount    string `json:"tax_amount"`
	TotalPrice   string `json:"total_price"`
	Currency     string `json:"currency"`
}

type breakdownResponse struct {
	// Components is omitted when opaque pricing hides the itemization.
	Components  []componentResponse `json:"components,omitempty"`
	Subtotal    string              `json:"subtotal"`
	TotalMargin string              `json:"total_margin"`
	TotalTax    string              `json:"total_tax"`
	GrandTotal  string              `json:"grand_total"`
	Currency    string              `json:"currency"`
}

type calculationResponse struct {
	BasePrice          string            `json:"base_price"`
	Margin             string            `json:"margin"`
	Tax                string            `json:"tax"`
	TotalPrice         string            `json:"total_price"`
	Currency           string            `json:"currency"`
	Breakdown          breakdownResponse `json:"breakdown"`
	AppliedRules       []ruleResponse    `json:"applied_rules"`
	OpaquePricing      bool              `json:"opaque_pricing"`
	AdvanceBookingDays int64             `json:"advance_booking_days"`
}

type ruleResponse struct {
	RuleID         string  `json:"rule_id"`
	MinAdvanceDays *int64  `json:"min_advance_days,omitempty"`
	Season         *string `json:"season,omitempty"`
	Category       *string `json:"category,omitempty"`
	MarginPercent  *string `json:"margin_percent,omitempty"`
	MarginFixed    *string `json:"margin_fixed,omitempty"`
	Priority       int64   `json:"priority"`
	IsActive       bool    `json:"is_active"`
}

func mapQuoteRequest(req quoteRequest) (quote_package.Request, error) {
	checkIn, err := parseCheckInDate(req.CheckInDate)
	if err != nil {
		return quote_package.Request{}, err
	}

	// Opaque masking defaults to on; the caller opts out explicitly.
	opaque := true
	if req.ApplyOpaqueMask != nil {
		opaque = *req.ApplyOpaqueMask
	}

	return quote_package.Request{
		FlightPrice:     req.FlightPrice,
		HotelPrice:      req.HotelPrice,
		TransferPrice:   req.TransferPrice,
		CheckInDate:     checkIn,
		Category:        req.Category,
		Season:          req.Season,
		ApplyOpaqueMask: opaque,
		Currency:        req.Currency,
	}, nil
}

// parseCheckInDate accepts a calendar date (2006-01-02) or a full
// RFC3339 timestamp.
func parseCheckInDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("check_in_date must be YYYY-MM-DD or RFC3339")
}

func mapCalculation(calc *domain.PackageCalculation) calculationResponse {
	breakdown := mapBreakdown(calc.Breakdown)
	if calc.OpaquePricing {
		// Presentation policy only: totals stay, itemization goes.
		breakdown.Components = nil
	}

	rules := make([]ruleResponse, 0, len(calc.AppliedRules))
	for _, r := range calc.AppliedRules {
		rules = append(rules, mapRule(r))
	}

	return calculationResponse{
		BasePrice:          calc.BasePrice.String(),
		Margin:             calc.Margin.String(),
		Tax:                calc.Tax.String(),
		TotalPrice:         calc.TotalPrice.String(),
		Currency:           calc.Currency,
		Breakdown:          breakdown,
		AppliedRules:       rules,
		OpaquePricing:      calc.OpaquePricing,
		AdvanceBookingDays: calc.AdvanceBookingDays,
	}
}

func mapBreakdown(b domain.PriceBreakdown) breakdownResponse {
	components := make([]componentResponse, 0, len(b.Components))
	for _, c := range b.Components {
		components = append(components, componentResponse{
			Type:         string(c.Type),
			NetPrice:     c.NetPrice.String(),
			MarginAmount: c.MarginAmount.String(),
			TaxAmount:    c.TaxAmount.String(),
			TotalPrice:   c.TotalPrice.String(),
			Currency:     c.Currency,
		})
	}
	return breakdownResponse{
		Components:  components,
		Subtotal:    b.Subtotal.String(),
		TotalMargin: b.TotalMargin.String(),
		TotalTax:    b.TotalTax.String(),
		GrandTotal:  b.GrandTotal.String(),
		Currency:    b.Currency,
	}
}

func mapRules(rules []domain.MarginRule) []ruleResponse {
	out := make([]ruleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, mapRule(r))
	}
	return out
}

func mapRule(r domain.MarginRule) ruleResponse {
	resp := ruleResponse{
		RuleID:         r.RuleID,
		MinAdvanceDays: r.MinAdvanceDays,
		Season:         r.Season,
		Category:       r.Category,
		Priority:       r.Priority,
		IsActive:       r.IsActive,
	}
	if r.MarginPercent != nil {
		v := r.MarginPercent.String()
		resp.MarginPercent = &v
	}
	if r.MarginFixed != nil {
		v := r.MarginFixed.String()
		resp.MarginFixed = &v
	}
	return resp
}
