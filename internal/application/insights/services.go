package insights

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bryanwahyu/insight-dashboard/internal/application"
	domain "github.com/bryanwahyu/insight-dashboard/internal/domain/insights"
	"github.com/bryanwahyu/insight-dashboard/internal/validate"
)

var (
	ErrEmptyInput     = errors.New("either text or url must be provided")
	ErrAmbiguousInput = errors.New("provide text or url, not both")
)

// Service implements the dashboard use-cases on top of the backend client.
// It keeps no state between calls; every read goes to the backend.
type Service struct {
	Client domain.Client
	Clock  application.Clock
	// Logger may be nil to disable logging
	Logger *log.Logger
}

func NewService(client domain.Client, logger *log.Logger) *Service {
	return &Service{Client: client, Clock: application.SystemClock{}, Logger: logger}
}

// AnalyzeCommand is the raw form input
type AnalyzeCommand struct {
	Text string
	URL  string
}

// Analyze enforces that exactly one of text or url is set, then submits it.
// Text is sent verbatim; whitespace only matters for the emptiness check.
// The URL is trimmed, as a browser url field would do.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.Insight, error) {
	hasText := strings.TrimSpace(cmd.Text) != ""
	rawURL := strings.TrimSpace(cmd.URL)

	var req domain.AnalyzeRequest
	switch {
	case !hasText && rawURL == "":
		return nil, ErrEmptyInput
	case hasText && rawURL != "":
		return nil, ErrAmbiguousInput
	case rawURL != "":
		if err := validate.URL(rawURL); err != nil {
			return nil, err
		}
		req.URL = rawURL
	default:
		req.Text = cmd.Text
	}

	elapsed := application.Stopwatch(s.Clock)
	insight, err := s.Client.Analyze(ctx, req)
	if err != nil {
		s.logf("op=analyze status=failed error=%q", err.Error())
		return nil, err
	}
	s.logf("op=analyze status=ok id=%d sentiment=%s themes=%d took=%s",
		insight.ID, insight.Sentiment, len(insight.Themes), elapsed())
	return insight, nil
}

// Search lists insights, optionally filtered by query. The query is sent
// verbatim; only the log line carries a sanitized copy.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Insight, error) {
	logged := validate.SanitizeString(query)

	list, err := s.Client.List(ctx, query)
	if err != nil {
		s.logf("op=list search=%q status=failed error=%q", logged, err.Error())
		return nil, err
	}
	s.logf("op=list search=%q status=ok count=%d", logged, len(list))
	return list, nil
}

// Get returns one insight by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Insight, error) {
	if err := validate.ID(id); err != nil {
		return nil, err
	}
	insight, err := s.Client.Get(ctx, id)
	if err != nil {
		s.logf("op=get id=%d status=failed error=%q", id, err.Error())
		return nil, err
	}
	return insight, nil
}

// Health reports whether the backend is reachable.
func (s *Service) Health(ctx context.Context) (*domain.Health, error) {
	return s.Client.Health(ctx)
}

func (s *Service) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
