package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tinne26/ttfasset"
)

func TestOutputName(t *testing.T) {
	require.Equal(t, "arial_s24", outputName("fonts/arial_s24.ttf"))
	require.Equal(t, "arial_s24", outputName("fonts/arial_s24.ttf.gz"))
	require.Equal(t, "mono", outputName("mono.otf"))
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, env.Parse(&cfg))
	require.Equal(t, ".", cfg.Root)
	require.Equal(t, "Info", cfg.Trace)

	t.Setenv("TTFGEN_OUT", "build/fonts")
	require.NoError(t, env.Parse(&cfg))
	require.Equal(t, "build/fonts", cfg.Out)
}

func TestWriteFont(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "fonts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "fonts", "goregular.ttf"), goregular.TTF, 0o644))

	manager := ttfasset.NewManager()
	manager.SetFontLoaders(ttfasset.NewFSResolver(os.DirFS(root)))
	name := "fonts/goregular_s20.ttf"
	font, err := manager.Load(name, ttfasset.ParametersFromFilename(name))
	require.NoError(t, err)
	require.Equal(t, 20, font.Size())

	outDir := filepath.Join(root, "out")
	require.NoError(t, writeFont(font, outDir, outputName(name)))
	require.FileExists(t, filepath.Join(outDir, "goregular_s20.png"))
	fnt, err := os.ReadFile(filepath.Join(outDir, "goregular_s20.fnt"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(fnt), `file="goregular_s20.png"`))
}

func TestReportLoaded(t *testing.T) {
	var out bytes.Buffer
	pterm.DisableColor()
	pterm.SetDefaultOutput(&out)
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
	})

	fsys := ttfasset.NewFSResolver(fstest.MapFS{
		"fonts/goregular.ttf": &fstest.MapFile{Data: goregular.TTF},
	})
	manager := ttfasset.NewManager()
	manager.SetFontLoaders(fsys)
	name := "fonts/goregular_s16.ttf"
	font, err := manager.Load(name, ttfasset.ParametersFromFilename(name))
	require.NoError(t, err)

	reportLoaded(name, font)
	expected := fmt.Sprintf("%s: %d glyphs at 16px (%d missing)\n", name, font.NumGlyphs(), len(font.Missing()))
	require.True(t, strings.HasSuffix(out.String(), expected), "unexpected output %q", out.String())
	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}
