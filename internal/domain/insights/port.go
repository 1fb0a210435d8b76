package insights

import "context"

// Client port (interface to the insight backend)
type Client interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*Insight, error)
	List(ctx context.Context, search string) ([]Insight, error)
	Get(ctx context.Context, id int64) (*Insight, error)
	Health(ctx context.Context) (*Health, error)
}
