package sendgrid

import "context"

// API is the subset of Client the CLI depends on.
type API interface {
	Send(ctx context.Context, msg *Message) (string, error)
	GlobalStats(ctx context.Context, opts *StatsOptions) ([]Stat, error)
	LookupSuppressions(ctx context.Context, email string) (*SuppressionLookup, error)
	ListBounces(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error)
	ListAllBounces(ctx context.Context, opts *SuppressionListOptions) ([]Suppression, error)
	ListAllTemplates(ctx context.Context, generations ...TemplateGeneration) ([]Template, error)
}

var _ API = (*Client)(nil)
