// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

func TestWritePDF_ProducesValidHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	story := []Flow{
		{Kind: FlowTitle, Text: "Title"},
		{Kind: FlowPageBreak},
		{Kind: FlowHeading, Text: "Section"},
		{Kind: FlowBody, Text: "a &amp; b"},
		{Kind: FlowBullet, Text: "bullet"},
		{Kind: FlowBullet2, Text: "nested"},
		{Kind: FlowCode, Text: "x := 1"},
		{Kind: FlowSpacer, Pt: 12},
	}

	require.NoError(t, WritePDF(story, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 5)
	require.Equal(t, "%PDF-", string(data[:5]))
}

func TestRender_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	sections := []types.Section{
		{Title: "Overview", Content: "first line\n- a bullet", Level: 1},
		{Title: "Details", Level: 2, Parent: "Overview"},
	}

	require.NoError(t, Render(sections, path, testCfg()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(500), "report should not be trivially small")
}

func TestDecoder_RoundTrip(t *testing.T) {
	in := "a &amp; b &lt;c&gt;"
	if got := decoder.Replace(in); got != "a & b <c>" {
		t.Errorf("decoded = %q, want %q", got, "a & b <c>")
	}
}
