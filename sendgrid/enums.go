package sendgrid

// AggregatedBy groups stats by period.
type AggregatedBy string

const (
	AggregatedByDay   AggregatedBy = "day"
	AggregatedByWeek  AggregatedBy = "week"
	AggregatedByMonth AggregatedBy = "month"
)

// Known reports whether a is a documented period.
func (a AggregatedBy) Known() bool {
	switch a {
	case AggregatedByDay, AggregatedByWeek, AggregatedByMonth:
		return true
	}
	return false
}

// TemplateGeneration tells legacy templates from dynamic (handlebars) ones.
type TemplateGeneration string

const (
	TemplateGenerationLegacy  TemplateGeneration = "legacy"
	TemplateGenerationDynamic TemplateGeneration = "dynamic"
)

// Known reports whether g is a documented generation.
func (g TemplateGeneration) Known() bool {
	return g == TemplateGenerationLegacy || g == TemplateGenerationDynamic
}

// ScheduledSendStatus is the state of a cancelled or paused batch.
type ScheduledSendStatus string

const (
	ScheduledSendCancel ScheduledSendStatus = "cancel"
	ScheduledSendPause  ScheduledSendStatus = "pause"
)

// Known reports whether s is a documented status.
func (s ScheduledSendStatus) Known() bool {
	return s == ScheduledSendCancel || s == ScheduledSendPause
}

// SortByDirection orders stats sums.
type SortByDirection string

const (
	SortAsc  SortByDirection = "asc"
	SortDesc SortByDirection = "desc"
)

// Known reports whether d is a documented direction.
func (d SortByDirection) Known() bool {
	return d == SortAsc || d == SortDesc
}

// SuppressionList names one of the per-reason suppression lists.
type SuppressionList string

const (
	SuppressionBounces       SuppressionList = "bounces"
	SuppressionBlocks        SuppressionList = "blocks"
	SuppressionSpamReports   SuppressionList = "spam_reports"
	SuppressionInvalidEmails SuppressionList = "invalid_emails"
)

// Known reports whether l is a documented list.
func (l SuppressionList) Known() bool {
	switch l {
	case SuppressionBounces, SuppressionBlocks, SuppressionSpamReports, SuppressionInvalidEmails:
		return true
	}
	return false
}
