// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/internal/verify"
	"github.com/pdiddy/deckgen/pkg/types"
)

// sampleDoc builds a Markdown source with n top-level sections, one
// sub-section, and one code fence.
func sampleDoc(n int) string {
	var b strings.Builder
	b.WriteString("# Project\n\nintro paragraph\n\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "## Section %d\n\n- point one\n- point two\ntext line\n\n", i)
	}
	b.WriteString("### Appendix\n\n")
	b.WriteString("## Code Sample\n\n```\nfunc main() {}\n```\n")
	return b.String()
}

func testConfig(t *testing.T) types.GeneratorConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := types.DefaultGeneratorConfig()
	cfg.InputPath = filepath.Join(dir, "README.md")
	cfg.DeckPath = filepath.Join(dir, "presentation.pptx")
	cfg.PDFPath = filepath.Join(dir, "presentation.pdf")
	cfg.DocsPath = filepath.Join(dir, "PRESENTATION-README.md")
	cfg.ManifestPath = filepath.Join(dir, "presentation-manifest.yaml")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte(sampleDoc(10)), 0o644))
	return cfg
}

func TestRun_ProducesAllOutputs(t *testing.T) {
	cfg := testConfig(t)
	var log bytes.Buffer

	m, err := Run(cfg, &log)
	require.NoError(t, err)

	for _, path := range []string{cfg.DeckPath, cfg.PDFPath, cfg.DocsPath, cfg.ManifestPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}

	assert.Equal(t, cfg.InputPath, m.Input)
	assert.Equal(t, 11, m.Sections.Level1, "10 sections plus the code sample")
	assert.Equal(t, 1, m.Sections.Level2)
	assert.Len(t, m.Outputs, 3)

	out := log.String()
	for _, step := range []string{"parsed:", "deck:", "report:", "docs:", "manifest:"} {
		assert.Contains(t, out, step)
	}
}

func TestRun_ManifestRoundTrips(t *testing.T) {
	cfg := testConfig(t)
	_, err := Run(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ManifestPath)
	require.NoError(t, err)

	var m types.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))

	assert.NotEmpty(t, m.GeneratedAt)
	for _, o := range m.Outputs {
		assert.Greater(t, o.Bytes, int64(0), "output %s should have a recorded size", o.Path)
		if o.Kind == "deck" {
			// Title slide plus one slide per level-1 section.
			assert.Equal(t, 12, o.Slides)
		}
	}
}

func TestRun_OutputsPassVerification(t *testing.T) {
	cfg := testConfig(t)
	_, err := Run(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	vcfg := types.DefaultVerifyConfig()
	vcfg.DeckPath = cfg.DeckPath
	vcfg.PDFPath = cfg.PDFPath
	vcfg.DocsPath = cfg.DocsPath

	var report bytes.Buffer
	require.True(t, verify.Run(vcfg, &report), "generated outputs should verify:\n%s", report.String())
}

func TestRun_SkipDocs(t *testing.T) {
	cfg := testConfig(t)
	cfg.WriteDocs = false

	m, err := Run(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	_, statErr := os.Stat(cfg.DocsPath)
	assert.True(t, os.IsNotExist(statErr), "docs file should not be written")
	assert.Len(t, m.Outputs, 2)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputPath = filepath.Join(t.TempDir(), "absent.md")

	_, err := Run(cfg, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}
