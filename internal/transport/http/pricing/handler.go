package pricing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/candidate_rules"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/queries/get_breakdown"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/price_package"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/usecases/quote_package"
)

// Commands groups the write interactors.
type Commands struct {
	Price *price_package.Interactor
}

// Queries groups the read handlers. Quoting computes but persists
// nothing, so it sits on the read side.
type Queries struct {
	Quote     *quote_package.Interactor
	Breakdown *get_breakdown.Handler
	Rules     *candidate_rules.Handler
}

// Handler is the thin HTTP adapter: it decodes and validates requests,
// delegates to the application layer and maps domain errors to statuses.
type Handler struct {
	commands Commands
	queries  Queries
}

func NewHandler(cmd Commands, qry Queries) *Handler {
	return &Handler{commands: cmd, queries: qry}
}

// Routes mounts the pricing API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/quotes", h.quote)
	r.Post("/itineraries/{itineraryID}/price", h.price)
	r.Get("/itineraries/{itineraryID}/breakdown", h.breakdown)
	r.Get("/margin-rules", h.marginRules)
	return r
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	appReq, err := mapQuoteRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := h.queries.Quote.Execute(r.Context(), appReq)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapCalculation(calc))
}

func (h *Handler) price(w http.ResponseWriter, r *http.Request) {
	itineraryID := chi.URLParam(r, "itineraryID")
	if itineraryID == "" {
		writeError(w, http.StatusBadRequest, "itinerary id is required")
		return
	}

	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	appReq, err := mapQuoteRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	calc, err := h.commands.Price.Execute(r.Context(), price_package.Request{
		ItineraryID: itineraryID,
		Quote:       appReq,
	})
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapCalculation(calc))
}

func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	itineraryID := chi.URLParam(r, "itineraryID")
	if itineraryID == "" {
		writeError(w, http.StatusBadRequest, "itinerary id is required")
		return
	}

	b, err := h.queries.Breakdown.Execute(r.Context(), itineraryID)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapBreakdown(*b))
}

func (h *Handler) marginRules(w http.ResponseWriter, r *http.Request) {
	var req rulesRequest
	if err := decodeRulesRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rules, err := h.queries.Rules.Execute(r.Context(), contracts.RuleMatch{
		AdvanceDays: req.AdvanceDays,
		Category:    req.Category,
		Season:      req.Season,
	})
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapRules(rules))
}
