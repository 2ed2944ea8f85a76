package domain

// PackageCalculation is the full result of pricing a package. It is a
// value: the calculator has no partial-success state, so a caller either
// gets a complete calculation or an error.
type PackageCalculation struct {
	BasePrice  *Money
	Margin     *Money
	Tax        *Money
	TotalPrice *Money
	Currency   string

	Breakdown PriceBreakdown

	// AppliedRules holds the rules that actually shaped the margin:
	// zero (default-margin fallback) or one, since rules never stack.
	AppliedRules []MarginRule

	// OpaquePricing tells the presentation layer to hide the itemized
	// breakdown from the end customer. Business policy, not a security
	// boundary; it never alters the amounts.
	OpaquePricing bool

	// AdvanceBookingDays is the floor of whole days between the
	// evaluation instant and check-in, derived once per calculation.
	AdvanceBookingDays int64
}
