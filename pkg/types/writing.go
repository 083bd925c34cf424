// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WritingType selects the content shape of a generation request. The set is
// closed: each value maps to one prompt template.
type WritingType string

const (
	TypeEssay       WritingType = "essay"
	TypeReport      WritingType = "report"
	TypeSummary     WritingType = "summary"
	TypeExplanation WritingType = "explanation"
	TypeAudit       WritingType = "audit"
	TypeArticle     WritingType = "article"
	TypeSocialPost  WritingType = "social_post"
)

// WritingTypes lists the supported writing types in display order.
func WritingTypes() []WritingType {
	return []WritingType{
		TypeEssay, TypeReport, TypeSummary, TypeExplanation,
		TypeAudit, TypeArticle, TypeSocialPost,
	}
}

// Valid reports whether t is one of the supported writing types.
func (t WritingType) Valid() bool {
	switch t {
	case TypeEssay, TypeReport, TypeSummary, TypeExplanation,
		TypeAudit, TypeArticle, TypeSocialPost:
		return true
	}
	return false
}

// Label returns the human-readable form of t, for document titles.
func (t WritingType) Label() string {
	switch t {
	case TypeEssay:
		return "Essay"
	case TypeReport:
		return "Report"
	case TypeSummary:
		return "Summary"
	case TypeExplanation:
		return "Explanation"
	case TypeAudit:
		return "Audit"
	case TypeArticle:
		return "Article"
	case TypeSocialPost:
		return "Social Post"
	}
	return "Essay"
}

// LengthBand is the coarse target-length selector used by prompt templates.
type LengthBand string

const (
	LengthShort  LengthBand = "short"  // 150-300 words
	LengthMedium LengthBand = "medium" // 400-700 words
	LengthLong   LengthBand = "long"   // 800-1200 words
)

// WriteRequest is a single content-generation request, shared between the
// HTTP surface and the CLI.
type WriteRequest struct {
	// Topic is the subject to write about. Required.
	Topic string `json:"topic" yaml:"topic"`

	// WritingType selects the prompt template (default essay).
	WritingType WritingType `json:"writing_type,omitempty" yaml:"writing_type,omitempty"`

	// Tone is a free-form style hint (e.g. "academic", "casual").
	Tone string `json:"tone,omitempty" yaml:"tone,omitempty"`

	// Length is the coarse length band (default medium). Ignored when
	// WordLength is set.
	Length LengthBand `json:"length,omitempty" yaml:"length,omitempty"`

	// WordLength is an approximate word-count target. Zero means unset.
	WordLength int `json:"word_length,omitempty" yaml:"word_length,omitempty"`

	// PDF requests a rendered PDF alongside the text.
	PDF bool `json:"pdf,omitempty" yaml:"pdf,omitempty"`
}

// WriteResult is the accumulated output of a pipeline run.
type WriteResult struct {
	// Topic echoes the request topic.
	Topic string `json:"topic" yaml:"topic"`

	// WritingType echoes the content shape that was generated.
	WritingType WritingType `json:"writing_type" yaml:"writing_type"`

	// Snippets are the background facts gathered before summarizing.
	Snippets []string `json:"snippets,omitempty" yaml:"snippets,omitempty"`

	// Summary is the structured overview built from the snippets.
	Summary string `json:"summary" yaml:"summary"`

	// Insights are the derived implications, trends, and takeaways.
	Insights string `json:"insights" yaml:"insights"`

	// Essay is the final composed prose.
	Essay string `json:"essay" yaml:"essay"`

	// WordCount is the whitespace-delimited word count of Essay.
	WordCount int `json:"word_count" yaml:"word_count"`

	// PDF holds the rendered document bytes when the request asked for one.
	PDF []byte `json:"-" yaml:"-"`
}
