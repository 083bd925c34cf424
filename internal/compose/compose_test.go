// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"strings"
	"testing"

	"github.com/amulya/writer-engine/pkg/types"
)

func TestBuildPromptDispatch(t *testing.T) {
	tests := []struct {
		name     string
		wt       types.WritingType
		contains []string
	}{
		{
			name:     "essay",
			wt:       types.TypeEssay,
			contains: []string{"well-structured essay", "Strong thesis introduction", "Length Guide"},
		},
		{
			name:     "report",
			wt:       types.TypeReport,
			contains: []string{"formal report", "Recommendations", "Background / Context"},
		},
		{
			name:     "summary",
			wt:       types.TypeSummary,
			contains: []string{"clear, simple summary", "150-250 words"},
		},
		{
			name:     "explanation",
			wt:       types.TypeExplanation,
			contains: []string{"smart beginner", "Use analogies"},
		},
		{
			name:     "audit",
			wt:       types.TypeAudit,
			contains: []string{"audit-style narrative", "risks, controls, gaps"},
		},
		{
			name:     "article",
			wt:       types.TypeArticle,
			contains: []string{"informative article", "Strong opening hook"},
		},
		{
			name:     "social post",
			wt:       types.TypeSocialPost,
			contains: []string{"engaging social post", "3-6 hashtags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildPrompt(types.WriteRequest{Topic: "ocean currents", WritingType: tt.wt})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(prompt, "Topic: ocean currents") {
				t.Errorf("prompt missing topic line:\n%s", prompt)
			}
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q:\n%s", want, prompt)
				}
			}
		})
	}
}

func TestBuildPromptSummaryOmitsLengthGuide(t *testing.T) {
	prompt, err := BuildPrompt(types.WriteRequest{Topic: "x", WritingType: types.TypeSummary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(prompt, "Length Guide") {
		t.Error("summary prompt should not carry the length guide")
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt, err := BuildPrompt(types.WriteRequest{Topic: "glaciers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Writing type: essay", "Tone: academic", "Length: medium"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing default %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptUnknownTypeFallsBack(t *testing.T) {
	prompt, err := BuildPrompt(types.WriteRequest{Topic: "glaciers", WritingType: "sonnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "Write content about: glaciers" {
		t.Errorf("fallback prompt = %q", prompt)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two\tthree\nfour", 4},
		{"  padded   words  ", 2},
	}
	for _, tt := range tests {
		if got := CountWords(tt.in); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
