package pricing

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// quoteRequest is the JSON body for both the quote and price endpoints.
// Prices are decimal strings so amounts survive the wire exactly; the
// deeper non-negativity check lives in the application layer.
type quoteRequest struct {
	FlightPrice   string `json:"flight_price" validate:"omitempty,numeric"`
	HotelPrice    string `json:"hotel_price" validate:"omitempty,numeric"`
	TransferPrice string `json:"transfer_price" validate:"omitempty,numeric"`

	CheckInDate string `json:"check_in_date" validate:"required"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Season      string `json:"season" validate:"omitempty,max=100"`

	ApplyOpaqueMask *bool  `json:"apply_opaque_mask"`
	Currency        string `json:"currency" validate:"omitempty,iso4217"`
}

func validateRequest(req *quoteRequest) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("field %s failed validation (%s)", e.Field(), e.Tag())
		}
		return err
	}
	return nil
}

// rulesRequest carries the margin-rule lookup context from query params.
type rulesRequest struct {
	AdvanceDays int64
	Category    string
	Season      string
}

func decodeRulesRequest(r *http.Request, out *rulesRequest) error {
	q := r.URL.Query()
	if v := q.Get("advance_days"); v != "" {
		days, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("advance_days must be an integer")
		}
		out.AdvanceDays = days
	}
	out.Category = q.Get("category")
	out.Season = q.Get("season")
	return nil
}
