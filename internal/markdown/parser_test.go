// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/deckgen/pkg/types"
)

func TestParse_SectionBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []types.Section
	}{
		{
			name: "single section with body",
			in:   "## Intro\nSome text\nMore text",
			want: []types.Section{
				{Title: "Intro", Content: "Some text\nMore text", Level: 1},
			},
		},
		{
			name: "sub-section body attaches to next top-level section",
			in:   "## Intro\nSome text\n### Sub\nMore text\n## Next\nFinal",
			want: []types.Section{
				{Title: "Intro", Content: "Some text", Level: 1},
				{Title: "Sub", Content: "", Level: 2, Parent: "Intro"},
				{Title: "Next", Content: "More text\nFinal", Level: 1},
			},
		},
		{
			name: "sub-section without pending content flushes nothing",
			in:   "## Intro\n### Sub\ntrailing",
			want: []types.Section{
				{Title: "Sub", Content: "", Level: 2, Parent: "Intro"},
				{Title: "Intro", Content: "trailing", Level: 1},
			},
		},
		{
			name: "level-4 header becomes a highlighted content line",
			in:   "## Intro\nbefore\n#### Deep Dive\nafter",
			want: []types.Section{
				{Title: "Intro", Content: "before\n\nDeep Dive\n\nafter", Level: 1},
			},
		},
		{
			name: "blank lines and rules are dropped",
			in:   "## Intro\n\nkeep\n---\n\nalso keep\n",
			want: []types.Section{
				{Title: "Intro", Content: "keep\nalso keep", Level: 1},
			},
		},
		{
			name: "text before the first header is dropped",
			in:   "orphan text\nmore orphan\n## Intro\nbody",
			want: []types.Section{
				{Title: "Intro", Content: "body", Level: 1},
			},
		},
		{
			name: "bullets append verbatim",
			in:   "## Intro\n- first\n* second\n  - nested",
			want: []types.Section{
				{Title: "Intro", Content: "- first\n* second\n  - nested", Level: 1},
			},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sections, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("section %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_Level1CountMatchesHeaderCount(t *testing.T) {
	inputs := []string{
		"## A\ntext\n## B\n## C\ntail",
		"## Only",
		"no headers at all\njust text",
		"## A\n### sub\nbody\n### sub2\n## B",
	}
	for _, in := range inputs {
		want := CountHeaders(in, 1)
		got := 0
		for _, s := range Parse(in) {
			if s.Level == 1 {
				got++
			}
		}
		if got != want {
			t.Errorf("input %q: level-1 sections = %d, want %d", in, got, want)
		}
	}
}

func TestParse_CodeFenceCap(t *testing.T) {
	fence := func(n int) string {
		var b strings.Builder
		b.WriteString("## Code\n```go\n")
		for i := 1; i <= n; i++ {
			fmt.Fprintf(&b, "line %d\n", i)
		}
		b.WriteString("```\n")
		return b.String()
	}

	tests := []struct {
		name      string
		lines     int
		wantLines int
	}{
		{"under the cap", 3, 3},
		{"exactly the cap", 15, 15},
		{"over the cap", 40, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Parse(fence(tt.lines))
			if len(sections) != 1 {
				t.Fatalf("got %d sections, want 1", len(sections))
			}
			content := sections[0].Content

			if !strings.HasPrefix(content, types.CodeOpen) || !strings.HasSuffix(content, types.CodeClose) {
				t.Fatalf("content not wrapped in sentinels: %q", content)
			}
			inner := strings.TrimSuffix(strings.TrimPrefix(content, types.CodeOpen+"\n"), "\n"+types.CodeClose)
			got := strings.Split(inner, "\n")
			if len(got) != tt.wantLines {
				t.Fatalf("kept %d code lines, want %d", len(got), tt.wantLines)
			}
			for i, line := range got {
				if want := fmt.Sprintf("line %d", i+1); line != want {
					t.Errorf("code line %d = %q, want %q (order must be preserved)", i, line, want)
				}
			}
		})
	}
}

func TestParse_UnterminatedFenceConsumesToEnd(t *testing.T) {
	in := "## Code\n```\nonly line\n## Not A Header\n"
	sections := Parse(in)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1 (fence should swallow the rest)", len(sections))
	}
	if !strings.Contains(sections[0].Content, "## Not A Header") {
		t.Errorf("unterminated fence should consume following lines, got %q", sections[0].Content)
	}
}

func TestParseCapped_CustomCap(t *testing.T) {
	in := "## C\n```\na\nb\nc\nd\n```"
	sections := ParseCapped(in, 2)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if want := types.CodeOpen + "\na\nb\n" + types.CodeClose; sections[0].Content != want {
		t.Errorf("content = %q, want %q", sections[0].Content, want)
	}
}

func TestCountHeaders(t *testing.T) {
	in := "## A\n### a1\n### a2\n## B\n#### deep\ntext ## not a header"
	if got := CountHeaders(in, 1); got != 2 {
		t.Errorf("level 1 = %d, want 2", got)
	}
	if got := CountHeaders(in, 2); got != 2 {
		t.Errorf("level 2 = %d, want 2", got)
	}
}
