// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research gathers background fact snippets for a topic. The source
// is an interface so a real search index can replace the shipped
// implementation, which asks the text generator to act as one.
package research

import (
	"context"
	"fmt"
	"strings"

	"github.com/amulya/writer-engine/internal/llm"
)

// SnippetSource returns up to max short fact snippets about a topic, in
// relevance order.
type SnippetSource interface {
	Snippets(ctx context.Context, topic string, max int) ([]string, error)
}

// DefaultMaxSnippets is used when a caller passes max <= 0.
const DefaultMaxSnippets = 5

// searchSystemPrompt frames the generator as a search-engine summary.
const searchSystemPrompt = "You act like a search engine summary. Given a query, " +
	"you return several short bullet points with key facts."

// LLMSource simulates web search by asking the generator for key facts.
// There is no retrieval behind it; every snippet is model output.
type LLMSource struct {
	Client llm.Client
}

// Snippets asks the generator for bullet-point facts and returns one snippet
// per non-empty line, markers stripped, capped at max.
func (s *LLMSource) Snippets(ctx context.Context, topic string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxSnippets
	}

	user := fmt.Sprintf("Query: %s\n\nReturn 5-7 short bullet points with key facts, each on a new line.", topic)
	text, err := s.Client.Complete(ctx, searchSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("gathering snippets: %w", err)
	}

	var snippets []string
	for _, line := range strings.Split(text, "\n") {
		snippet := strings.Trim(line, "•·-* \t")
		if snippet == "" {
			continue
		}
		snippets = append(snippets, snippet)
		if len(snippets) == max {
			break
		}
	}
	return snippets, nil
}
