package domain

// ComponentType tags one line of a price breakdown.
type ComponentType string

const (
	ComponentFlight   ComponentType = "FLIGHT"
	ComponentHotel    ComponentType = "HOTEL"
	ComponentTransfer ComponentType = "TRANSFER"
	ComponentMargin   ComponentType = "MARGIN"
	ComponentTax      ComponentType = "TAX"
)

// PriceComponent is one itemized line of the priced total. Lines are
// presentational slices of the aggregate: per line,
// TotalPrice = NetPrice + MarginAmount + TaxAmount.
type PriceComponent struct {
	Type         ComponentType
	NetPrice     *Money
	MarginAmount *Money
	TaxAmount    *Money
	TotalPrice   *Money
	Currency     string
}

// NewComponent builds a line and derives its total from the three parts,
// so the per-line invariant holds by construction. Reconstruction from
// stored rows goes through here as well, keeping stored and freshly
// computed lines arithmetically identical.
func NewComponent(t ComponentType, net, margin, tax *Money, currency string) PriceComponent {
	if net == nil {
		net = Zero()
	}
	if margin == nil {
		margin = Zero()
	}
	if tax == nil {
		tax = Zero()
	}
	return PriceComponent{
		Type:         t,
		NetPrice:     net,
		MarginAmount: margin,
		TaxAmount:    tax,
		TotalPrice:   net.Add(margin).Add(tax),
		Currency:     currency,
	}
}

// PriceBreakdown is the aggregate, ordered result. Net supplier lines
// appear only when positive; the margin and tax lines always appear.
// GrandTotal = Subtotal + TotalMargin + TotalTax exactly.
type PriceBreakdown struct {
	Components  []PriceComponent
	Subtotal    *Money
	TotalMargin *Money
	TotalTax    *Money
	GrandTotal  *Money
	Currency    string
}

// BuildBreakdown aggregates components into a PriceBreakdown. The same
// formulas serve the calculator and the stored-row reconstruction, so
// both paths agree exactly on the totals.
func BuildBreakdown(components []PriceComponent, currency string) PriceBreakdown {
	subtotal := Zero()
	totalMargin := Zero()
	totalTax := Zero()
	for _, c := range components {
		subtotal = subtotal.Add(c.NetPrice)
		totalMargin = totalMargin.Add(c.MarginAmount)
		totalTax = totalTax.Add(c.TaxAmount)
	}
	return PriceBreakdown{
		Components:  components,
		Subtotal:    subtotal,
		TotalMargin: totalMargin,
		TotalTax:    totalTax,
		GrandTotal:  subtotal.Add(totalMargin).Add(totalTax),
		Currency:    currency,
	}
}
