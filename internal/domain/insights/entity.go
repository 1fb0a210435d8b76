package insights

import (
	"fmt"
	"math"
	"time"
)

// Sentiment enum
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Insight is a stored analysis result as returned by the backend.
type Insight struct {
	ID             int64     `json:"id"`
	SourceText     string    `json:"source_text"`
	SourceURL      *string   `json:"source_url"`
	Summary        string    `json:"summary"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	Themes         []string  `json:"themes"`
	CreatedAt      string    `json:"created_at"`
}

// AnalyzeRequest carries either Text or URL. Exclusivity is the caller's job.
type AnalyzeRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Health is the backend /health payload.
type Health struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// created_at comes either as RFC 3339 or as a naive ISO timestamp (UTC).
var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Created parses CreatedAt.
func (i Insight) Created() (time.Time, error) {
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, i.CreatedAt); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at: %q", i.CreatedAt)
}

// ScorePercent returns the sentiment score as a whole percentage.
func (i Insight) ScorePercent() int {
	return int(math.Round(i.SentimentScore * 100))
}

// Source returns the analyzed URL, or the text when the insight is text based.
func (i Insight) Source() string {
	if i.SourceURL != nil && *i.SourceURL != "" {
		return *i.SourceURL
	}
	return i.SourceText
}
