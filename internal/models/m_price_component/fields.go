package m_price_component

// Column constants for the price_components table. One row per
// breakdown line, keyed by (itinerary_id, position) so a stored
// breakdown keeps its order. Amounts are persisted as exact
// numerator/denominator pairs.
const (
	TableName = "price_components"

	ColItineraryID = "itinerary_id"
	ColPosition    = "position"
	ColType        = "component_type"

	ColNetNumerator      = "net_numerator"
	ColNetDenominator    = "net_denominator"
	ColMarginNumerator   = "margin_numerator"
	ColMarginDenominator = "margin_denominator"
	ColTaxNumerator      = "tax_numerator"
	ColTaxDenominator    = "tax_denominator"

	ColCurrency  = "currency"
	ColCreatedAt = "created_at"
)
