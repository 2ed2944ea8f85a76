package get_breakdown

import (
	"context"

	"github.com/voyatra/package-pricing-service/internal/app/pricing/contracts"
	"github.com/voyatra/package-pricing-service/internal/app/pricing/domain"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, itineraryID string) (*domain.PriceBreakdown, error) {
	return h.readModel.LoadBreakdown(ctx, itineraryID)
}
