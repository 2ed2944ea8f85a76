package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one atomic pricing commit: the
// component replacement plus its outbox event. Nil mutations are
// ignored so repositories can return nil for no-ops.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0, 8)}
}

func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddAll appends every non-nil mutation in ms.
func (p *Plan) AddAll(ms []*spanner.Mutation) {
	for _, m := range ms {
		p.Add(m)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
