// Command weaver-go dry-runs a declaration manifest: it sorts the units,
// applies an integrator profile and prints where each unit would declare
// itself, without touching any real target.
//
//	weaver-go -manifest units.toml [-profile weaver.yaml] [-root name] [-stages] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/weaver-go/weaver/pkg/weaver"
	"github.com/weaver-go/weaver/pkg/weaver/depsort"
	"github.com/weaver-go/weaver/pkg/weaver/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("weaver-go: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("weaver-go", flag.ContinueOnError)
	fs.SetOutput(stderr)
	manifestPath := fs.String("manifest", "", "unit manifest (TOML)")
	profilePath := fs.String("profile", "", "integrator profile (.toml, .yaml or .hcl)")
	root := fs.String("root", "", "root subscope for top-level units")
	stages := fs.Bool("stages", false, "print units grouped by dependency depth")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *manifestPath == "" {
		fs.Usage()
		return errors.New("-manifest is required")
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: true}
	logger := logging.NewZerolog(zerolog.New(output).Level(level).With().Timestamp().Str("app", "weaver-go").Logger())

	fmt.Fprintf(stdout, "weaver runtime %s\n", weaver.RuntimeVersion())

	units, err := loadManifest(*manifestPath)
	if err != nil {
		return err
	}

	if *stages {
		groups, err := depsort.Stages(units)
		if err != nil {
			return err
		}
		for i, g := range groups {
			fmt.Fprintf(stdout, "stage %d: %v\n", i, g)
		}
	}

	m, err := weaver.New(weaver.Config{
		ProfilePath:  *profilePath,
		RootSubscope: *root,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	target := newListing(stdout)
	decl, err := m.Declare(context.Background(), target, units)
	if err != nil {
		return err
	}
	for i, name := range decl.Order() {
		state := "active"
		if u, _ := decl.Unit(name); u.AsScope().IsDisabled() {
			state = "disabled"
		}
		fmt.Fprintf(stdout, "%3d %-8s %s\n", i, state, name)
	}
	return decl.Update()
}
