package get_breakdown

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

// SpannerBreakdownQuery reconstructs a stored breakdown from its
// component rows. Line totals and the aggregate come from the same
// domain formulas the calculator uses, so a loaded breakdown is
// arithmetically identical to the one that was persisted.
type SpannerBreakdownQuery struct {
	Client *spanner.Client
}

func NewSpannerBreakdownQuery(client *spanner.Client) *SpannerBreakdownQuery {
	return &SpannerBreakdownQuery{Client: client}
}

func (q *SpannerBreakdownQuery) LoadBreakdown(ctx context.Context, itineraryID string) (*domain.PriceBreakdown, error) {
	stmt := spanner.Statement{
		SQL: `SELECT component_type,
		             net_numerator, net_denominator,
		             margin_numerator, margin_denominator,
		             tax_numerator, tax_denominator,
		             currency
		      FROM price_components
		      WHERE itinerary_id = @id
		      ORDER BY position`,
		Params: map[string]interface{}{"id": itineraryID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var (
		components []domain.PriceComponent
		currency   string
	)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var (
			componentType        string
			netNum, netDen       int64
			marginNum, marginDen int64
			taxNum, taxDen       int64
			rowCurrency          string
		)
		if err := row.Columns(&componentType, &netNum, &netDen,
			&marginNum, &marginDen, &taxNum, &taxDen, &rowCurrency); err != nil {
			return nil, err
		}

		currency = rowCurrency
		components = append(components, domain.NewComponent(
			domain.ComponentType(componentType),
			domain.NewMoney(netNum, netDen),
			domain.NewMoney(marginNum, marginDen),
			domain.NewMoney(taxNum, taxDen),
			rowCurrency,
		))
	}

	if len(components) == 0 {
		return nil, domain.ErrBreakdownNotFound
	}

	breakdown := domain.BuildBreakdown(components, currency)
	return &breakdown, nil
}
