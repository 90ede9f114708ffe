/*
Package main is the tagspec CLI: it parses tag rule specifications
(type=...,key=value,...), validates and defaults them, and prints the
resulting rule set ordered by descending priority.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/tagspec"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	// Input sources
	OptionsInput OptionsInput `group:"Input"`
	// Output control
	OptionsOutput OptionsOutput `group:"Output"`

	Args struct {
		Specs []string `positional-arg-name:"SPEC" description:"Tag rule specification lines"`
	} `positional-args:"yes"`
}

type OptionsInput struct {
	File         string   `short:"f" long:"file"          description:"YAML file with tags/flavor string lists"`
	Flavor       []string `short:"F" long:"flavor"        description:"Flavor specification line (repeatable)"`
	StrictSemver bool     `short:"s" long:"strict-semver" description:"Require literal semver rule values to parse as SemVer"`
}

type OptionsOutput struct {
	Only  string `short:"o" long:"only"  description:"Print only rules of one kind (schedule|semver|match|edge|ref|raw|sha)"`
	Quiet bool   `short:"q" long:"quiet" description:"Suppress the diagnostic trace"`
}

// configFile mirrors the YAML shape CI workflows use to feed these inputs.
type configFile struct {
	Tags   []string `yaml:"tags"`
	Flavor []string `yaml:"flavor"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `tagspec — tag rule specification parser.
Reads tag rule specifications from arguments, a YAML file, or stdin,
validates and defaults them, and prints the rule set ordered by priority.
With no specifications at all, the built-in default set is used.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := log.New(os.Stderr)
	if opt.OptionsOutput.Quiet {
		logger.SetLevel(log.WarnLevel)
	}

	specs := make([]string, 0, 16)
	flavorSpecs := make([]string, 0, len(opt.OptionsInput.Flavor))

	// File lines come first so explicit arguments override is predictable.
	if path := strings.TrimSpace(opt.OptionsInput.File); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read config", "err", err)
			os.Exit(2)
		}

		var cfg configFile
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Error("parse config", "err", err, "file", path)
			os.Exit(2)
		}

		specs = append(specs, cfg.Tags...)
		flavorSpecs = append(flavorSpecs, cfg.Flavor...)
	}

	specs = append(specs, opt.Args.Specs...)
	flavorSpecs = append(flavorSpecs, opt.OptionsInput.Flavor...)

	// No file and no arguments: read specification lines from piped stdin.
	if len(specs) == 0 && stdinPiped() {
		lines, err := readLines(os.Stdin)
		if err != nil {
			logger.Error("read stdin", "err", err)
			os.Exit(2)
		}
		specs = lines
	}

	var only tagspec.Kind
	filtered := false
	if s := strings.TrimSpace(opt.OptionsOutput.Only); s != "" {
		k, ok := tagspec.ParseKind(s)
		if !ok {
			logger.Error("unknown rule kind", "kind", s)
			os.Exit(2)
		}
		only, filtered = k, true
	}

	flavor, err := tagspec.ParseFlavor(flavorSpecs)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	if len(flavorSpecs) > 0 {
		logger.WithPrefix("Processing flavor input").Info(flavor.String())
	}

	rules, err := tagspec.BuildSetWith(specs, tagspec.Options{
		Logger:       logger,
		StrictSemver: opt.OptionsInput.StrictSemver,
	})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	for _, r := range rules {
		if filtered && r.Kind != only {
			continue
		}
		fmt.Println(r.String())
	}
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice == 0
}

// readLines collects non-empty trimmed lines from r.
func readLines(r io.Reader) ([]string, error) {
	out := make([]string, 0, 64)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
