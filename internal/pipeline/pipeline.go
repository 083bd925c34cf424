// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the staged writing workflow: gather snippets,
// summarize, derive insights, compose prose, and optionally render a PDF.
// Stages are stateless and sequential; each consumes the previous stage's
// output and any failure aborts the run. There are no partial results.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amulya/writer-engine/internal/compose"
	"github.com/amulya/writer-engine/internal/layout"
	"github.com/amulya/writer-engine/internal/llm"
	"github.com/amulya/writer-engine/internal/pdfgen"
	"github.com/amulya/writer-engine/internal/research"
	"github.com/amulya/writer-engine/pkg/types"
)

// ErrMissingTopic is returned when a request carries no topic. Callers
// reject these before any external call is made.
var ErrMissingTopic = errors.New("topic is required")

// Stage system prompts.
const (
	summarizerSystemPrompt = "You are an expert summarizer who creates structured, clear overviews."
	insightSystemPrompt    = "You generate deep insights and implications from information."
)

// Pipeline wires the generation stages together. Construct once and share;
// each Run builds its own state and the pipeline itself is immutable.
type Pipeline struct {
	client   llm.Client
	source   research.SnippetSource
	snippets int
	geometry layout.PageGeometry
}

// New builds a Pipeline around a generation client and snippet source.
// A nil source falls back to the LLM-simulated search.
func New(client llm.Client, source research.SnippetSource, cfg types.GenerationConfig, geom layout.PageGeometry) *Pipeline {
	if source == nil {
		source = &research.LLMSource{Client: client}
	}
	max := cfg.MaxSnippets
	if max <= 0 {
		max = research.DefaultMaxSnippets
	}
	return &Pipeline{
		client:   client,
		source:   source,
		snippets: max,
		geometry: geom,
	}
}

// Run executes the full workflow for one request. The returned result is
// complete: on any stage failure the error is returned and the partial
// state discarded.
func (p *Pipeline) Run(ctx context.Context, req types.WriteRequest) (types.WriteResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return types.WriteResult{}, ErrMissingTopic
	}
	if req.WritingType == "" {
		req.WritingType = types.TypeEssay
	}

	res := types.WriteResult{
		Topic:       req.Topic,
		WritingType: req.WritingType,
	}

	snippets, err := p.source.Snippets(ctx, req.Topic, p.snippets)
	if err != nil {
		return types.WriteResult{}, fmt.Errorf("search stage: %w", err)
	}
	res.Snippets = snippets

	res.Summary, err = p.summarize(ctx, req.Topic, snippets)
	if err != nil {
		return types.WriteResult{}, fmt.Errorf("summary stage: %w", err)
	}

	res.Insights, err = p.deriveInsights(ctx, req.Topic, res.Summary)
	if err != nil {
		return types.WriteResult{}, fmt.Errorf("insight stage: %w", err)
	}

	res.Essay, err = p.composeProse(ctx, req, res.Summary, res.Insights)
	if err != nil {
		return types.WriteResult{}, fmt.Errorf("compose stage: %w", err)
	}
	res.WordCount = compose.CountWords(res.Essay)

	if req.PDF {
		title := fmt.Sprintf("%s on %s", req.WritingType.Label(), req.Topic)
		res.PDF, err = pdfgen.RenderProse(title, res.Essay, p.geometry)
		if err != nil {
			return types.WriteResult{}, fmt.Errorf("render stage: %w", err)
		}
	}

	return res, nil
}

// summarize condenses the gathered snippets into a structured overview.
func (p *Pipeline) summarize(ctx context.Context, topic string, snippets []string) (string, error) {
	user := fmt.Sprintf(
		"Topic: %s\n\nHere are web snippets:\n%s\n\n"+
			"Summarize this topic into a structured, clear overview with headings "+
			"and bullet points. Avoid copying exact sentences; synthesize the information.",
		topic, strings.Join(snippets, "\n\n"))
	return p.client.Complete(ctx, summarizerSystemPrompt, user)
}

// deriveInsights expands the summary into implications, trends, and takeaways.
func (p *Pipeline) deriveInsights(ctx context.Context, topic, summary string) (string, error) {
	user := fmt.Sprintf(
		"Topic: %s\n\nSummary:\n%s\n\n"+
			"Generate deep insights about this topic, including:\n"+
			"- Key implications\n- Trends\n- Opportunities and risks\n- Practical takeaways\n"+
			"Return them as bullet points grouped under short section titles.",
		topic, summary)
	return p.client.Complete(ctx, insightSystemPrompt, user)
}

// composeProse generates the final prose from the accumulated context.
func (p *Pipeline) composeProse(ctx context.Context, req types.WriteRequest, summary, insights string) (string, error) {
	prompt, err := compose.BuildFinalPrompt(req, summary, insights)
	if err != nil {
		return "", err
	}
	return p.client.Complete(ctx, compose.WriterSystemPrompt, prompt)
}
