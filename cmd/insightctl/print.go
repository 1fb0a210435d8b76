package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bryanwahyu/insight-dashboard/internal/domain/insights"
)

const previewLen = 150

func printInsight(w io.Writer, in insights.Insight) {
	created := in.CreatedAt
	if t, err := in.Created(); err == nil {
		created = t.Format("Jan 2, 15:04")
	}
	fmt.Fprintf(w, "#%d %s (%d%%)  %s\n", in.ID, in.Sentiment, in.ScorePercent(), created)
	fmt.Fprintln(w, in.Summary)
	if len(in.Themes) > 0 {
		fmt.Fprintf(w, "themes: %s\n", strings.Join(in.Themes, ", "))
	}
	fmt.Fprintf(w, "source: %s\n", preview(in.Source()))
}

func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLen {
		return text
	}
	return string([]rune(text)[:previewLen]) + "..."
}
