// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds generation prompts for each writing type. The
// writing types form a closed set: each maps to one template, and a single
// selector dispatches between them.
package compose

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/amulya/writer-engine/pkg/types"
)

// WriterSystemPrompt is the system instruction for final prose generation.
const WriterSystemPrompt = "You are an expert multi-format writer."

// promptContext is the data every writing-type template is executed with.
type promptContext struct {
	Topic       string
	WritingType types.WritingType
	Tone        string
	Length      types.LengthBand
}

// base is the shared context block at the top of every prompt.
const base = `Topic: {{.Topic}}
Writing type: {{.WritingType}}
Tone: {{.Tone}}
Length: {{.Length}}`

// lengthGuide maps the coarse length bands to word ranges. Types with a
// fixed length (summary, social post) omit it.
const lengthGuide = `
Length Guide:
- short: 150-300 words
- medium: 400-700 words
- long: 800-1200 words`

// tmpl parses a writing-type template with the shared blocks inlined.
func tmpl(name, text string) *template.Template {
	text = strings.ReplaceAll(text, "{{base}}", base)
	text = strings.ReplaceAll(text, "{{lengthGuide}}", lengthGuide)
	return template.Must(template.New(name).Parse(text))
}

// builders maps each writing type to its prompt template. Dispatch is a map
// lookup; there is no fallthrough between types.
var builders = map[types.WritingType]*template.Template{
	types.TypeEssay: tmpl("essay", `You are an expert academic writer.

Write a well-structured essay.

{{base}}
{{lengthGuide}}

Requirements:
- Strong thesis introduction
- 2-4 body paragraphs with topic sentences
- Logical transitions
- Strong conclusion
`),

	types.TypeReport: tmpl("report", `You are a professional report writer.

Write a formal report.

{{base}}
{{lengthGuide}}

Sections needed:
- Introduction
- Background / Context
- Analysis / Findings
- Recommendations
- Conclusion
`),

	types.TypeSummary: tmpl("summary", `You are an expert summarizer.

Write a clear, simple summary.

{{base}}

Requirements:
- Keep it 150-250 words
- Only important ideas
- No unnecessary details
`),

	types.TypeExplanation: tmpl("explanation", `Explain the topic clearly like a teacher explaining to a smart beginner.

{{base}}
{{lengthGuide}}

Requirements:
- Use simple language
- Use analogies
- Break down concepts step-by-step
`),

	types.TypeAudit: tmpl("audit", `You are an experienced auditor.

Write an audit-style narrative.

{{base}}
{{lengthGuide}}

Requirements:
- Define audit scope and objectives
- Identify risks, controls, gaps
- Provide findings + recommendations
- Clear, formal tone
`),

	types.TypeArticle: tmpl("article", `You are a professional online article writer.

Write an informative article.

{{base}}
{{lengthGuide}}

Requirements:
- Strong opening hook
- Engaging, structured content
- 2-3 subheadings
- Smooth flow
`),

	types.TypeSocialPost: tmpl("social_post", `You are a social media content creator.

Write a short, engaging social post.

{{base}}

Requirements:
- 50-150 words
- Hook in first line
- 1-3 emojis
- Add 3-6 hashtags
`),
}

// BuildPrompt renders the prompt for a request's writing type. Defaults:
// essay type, academic tone, medium length. An unrecognized type falls back
// to a bare topic instruction rather than failing.
func BuildPrompt(req types.WriteRequest) (string, error) {
	pc := promptContext{
		Topic:       req.Topic,
		WritingType: req.WritingType,
		Tone:        req.Tone,
		Length:      req.Length,
	}
	if pc.WritingType == "" {
		pc.WritingType = types.TypeEssay
	}
	if pc.Tone == "" {
		pc.Tone = "academic"
	}
	if pc.Length == "" {
		pc.Length = types.LengthMedium
	}

	t, ok := builders[pc.WritingType]
	if !ok {
		return fmt.Sprintf("Write content about: %s", req.Topic), nil
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, pc); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", pc.WritingType, err)
	}
	return buf.String(), nil
}

// finalTmpl grounds the writing-type prompt in the pipeline's summary and
// insights and pins down the output shape. The layout stage depends on the
// no-markers rule; stray bullets that slip through are handled by the
// normalizer.
var finalTmpl = template.Must(template.New("final").Parse(`{{.TypePrompt}}
Ground the writing in this structured summary of the topic:
{{.Summary}}

And in these deeper insights:
{{.Insights}}
{{if .LengthInstruction}}
{{.LengthInstruction}}{{end}}
Output requirements:
- Use normal prose, not bullet points.
- Do NOT use headings, lists, numbering, or Markdown.
- Do NOT include asterisks (*) or dashes at the start of lines.
- The writing should read like something a thoughtful human wrote.
`))

// BuildFinalPrompt renders the prompt for the final composition stage: the
// writing-type prompt plus the accumulated summary and insights. A positive
// WordLength overrides the coarse length band with an approximate target.
func BuildFinalPrompt(req types.WriteRequest, summary, insights string) (string, error) {
	typePrompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	lengthInstruction := ""
	if req.WordLength > 0 {
		lengthInstruction = fmt.Sprintf("The piece should be approximately %d words long.", req.WordLength)
	}

	var buf bytes.Buffer
	err = finalTmpl.Execute(&buf, struct {
		TypePrompt        string
		Summary           string
		Insights          string
		LengthInstruction string
	}{typePrompt, summary, insights, lengthInstruction})
	if err != nil {
		return "", fmt.Errorf("rendering final prompt: %w", err)
	}
	return buf.String(), nil
}

// CountWords returns the number of whitespace-delimited words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
