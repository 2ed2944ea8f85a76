package contracts

import (
	"context"

	commitplan "github.com/voyatra/package-pricing-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. Usecases build
// a plan from repository mutations and hand it over in one call, staying
// independent of the storage driver.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
