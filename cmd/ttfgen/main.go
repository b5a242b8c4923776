package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/tinne26/ttfasset"
	"github.com/tinne26/ttfasset/generator"
)

// tracer traces with key 'ttfasset'
func tracer() tracing.Trace {
	return tracing.Select("ttfasset")
}

// Config holds the defaults for the command line flags.
type Config struct {
	Root  string `env:"TTFGEN_ROOT"  envDefault:"."`
	Out   string `env:"TTFGEN_OUT"   envDefault:"."`
	Trace string `env:"TTFGEN_TRACE" envDefault:"Info"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		pterm.Error.Printf("parse env: %v\n", err)
		os.Exit(1)
	}

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.ttfasset":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	root := flag.String("root", cfg.Root, "directory that asset names are resolved against")
	outDir := flag.String("out", cfg.Out, "directory for the generated .png and .fnt files")
	size := flag.Int("size", 0, "font size in pixels; if 0, the _sN suffix of each name is used")
	chars := flag.String("chars", "", "characters to include; if empty, the default set is used")
	flip := flag.Bool("flip", false, "generate fonts for y-up targets")
	tlevel := flag.String("trace", cfg.Trace, "Trace level [Debug|Info|Error]")
	flag.Parse()

	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(2)
	}
	if flag.NArg() == 0 {
		pterm.Error.Println("expected at least one asset name, e.g. fonts/arial_s24.ttf")
		flag.Usage()
		os.Exit(2)
	}

	manager := ttfasset.NewManager()
	manager.SetFontLoaders(ttfasset.NewFSResolver(os.DirFS(*root)))

	failures := 0
	for _, name := range flag.Args() {
		params := ttfasset.ParametersFromFilename(name)
		if *size > 0 || *chars != "" || *flip {
			if params == nil { params = &ttfasset.Parameters{} }
			if *size > 0 { params.FontSize = *size }
			params.Characters = *chars
			params.Flip = *flip
		}

		font, err := manager.Load(name, params)
		if err != nil {
			tracer().Errorf("%v", err)
			failures += 1
			continue
		}
		if err := writeFont(font, *outDir, outputName(name)); err != nil {
			tracer().Errorf("writing '%s': %v", name, err)
			failures += 1
			continue
		}
		reportLoaded(name, font)
	}
	if failures > 0 {
		pterm.Error.Printf("%d of %d fonts failed\n", failures, flag.NArg())
		os.Exit(1)
	}
}

// "fonts/arial_s24.ttf.gz" -> "arial_s24"
func outputName(name string) string {
	name = filepath.Base(strings.TrimSuffix(name, ".gz"))
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// reportLoaded prints a one-line summary of a generated font.
func reportLoaded(name string, font *generator.BitmapFont) {
	pterm.Success.Printf("%s: %d glyphs at %dpx (%d missing)\n",
		name, font.NumGlyphs(), font.Size(), len(font.Missing()))
}

func writeFont(font *generator.BitmapFont, outDir string, name string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	pageName := name + ".png"
	pngFile, err := os.Create(filepath.Join(outDir, pageName))
	if err != nil {
		return err
	}
	if err := png.Encode(pngFile, font.Atlas()); err != nil {
		_ = pngFile.Close()
		return err
	}
	if err := pngFile.Close(); err != nil {
		return err
	}

	fntFile, err := os.Create(filepath.Join(outDir, name+".fnt"))
	if err != nil {
		return err
	}
	if err := font.WriteFNT(fntFile, pageName); err != nil {
		_ = fntFile.Close()
		return err
	}
	return fntFile.Close()
}
