package m_margin_rule

// Column constants for the margin_rules table. Rows are managed by the
// rule-configuration tooling; this service only reads them, plus test
// seeding.
const (
	TableName = "margin_rules"

	ColRuleID         = "rule_id"
	ColMinAdvanceDays = "min_advance_days"
	ColSeason         = "season"
	ColCategory       = "category"
	ColMarginPercent  = "margin_percent"
	ColMarginFixed    = "margin_fixed"
	ColPriority       = "priority"
	ColIsActive       = "is_active"
	ColCreatedAt      = "created_at"
	ColUpdatedAt      = "updated_at"
)
