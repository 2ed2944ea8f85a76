package m_price_component

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the columns for one breakdown line. The line
// total is not stored: it is re-derived on load from the three parts,
// the same formula the calculator uses.
func BuildInsertMap(itineraryID string, position int64, componentType string,
	netNum, netDen, marginNum, marginDen, taxNum, taxDen int64,
	currency string, createdAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColItineraryID:       itineraryID,
		ColPosition:          position,
		ColType:              componentType,
		ColNetNumerator:      netNum,
		ColNetDenominator:    netDen,
		ColMarginNumerator:   marginNum,
		ColMarginDenominator: marginDen,
		ColTaxNumerator:      taxNum,
		ColTaxDenominator:    taxDen,
		ColCurrency:          currency,
		ColCreatedAt:         createdAt,
	}
}

// InsertMutation builds a spanner.Insert for one component row.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// DeleteByItineraryMutation deletes every component row stored for the
// itinerary, the first half of the replace semantics.
func DeleteByItineraryMutation(itineraryID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{itineraryID}.AsPrefix())
}
