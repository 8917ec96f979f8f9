package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsonish"
	"github.com/mcncl/jsonish/internal/config"
	"github.com/mcncl/jsonish/internal/keycase"
)

// CLI defines the command-line interface
var CLI struct {
	File    []string `help:"Read JSON from file(s). If not specified, reads from stdin." short:"f" type:"path"`
	Output  string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent  string   `help:"Indent unit repeated per nesting level." short:"i"`
	Compact bool     `help:"Emit compact single-line output." short:"c"`
	Color   bool     `help:"Colorize punctuation, keys, and values."`
	KeyCase string   `help:"Rewrite object keys: snake, camel, pascal, kebab, or screaming." name:"key-case"`
	Config  string   `help:"Path to a config file. Defaults to .jsonish.yml or .jsonish.yaml in the working or home directory." type:"path"`
	Version bool     `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsonish"),
		kong.Description("A formatter for a lenient JSON dialect (comments, unquoted extras, and all)"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonish version %s\n", version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "jsonish: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	build := buildConfig(cfg)

	var convert keycase.Converter
	if cfg.KeyCase != "" {
		convert, err = keycase.ForStyle(cfg.KeyCase)
		if err != nil {
			return err
		}
	}

	var out strings.Builder
	if len(CLI.File) == 0 {
		text, err := readStdin()
		if err != nil {
			return err
		}
		rendered, err := format(text, build, convert)
		if err != nil {
			return err
		}
		out.WriteString(rendered)
		out.WriteByte('\n')
	} else {
		for _, path := range CLI.File {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			rendered, err := format(string(data), build, convert)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if len(CLI.File) > 1 {
				fmt.Fprintf(&out, "%s:\n", path)
			}
			out.WriteString(rendered)
			out.WriteByte('\n')
		}
	}

	return writeOutput(out.String())
}

// applyFlags layers the command-line flags over the config file values.
func applyFlags(cfg *config.Config) {
	if CLI.Indent != "" {
		cfg.Indent = CLI.Indent
	}
	if CLI.Compact {
		cfg.Compact = true
	}
	if CLI.Color {
		cfg.Color = true
	}
	if CLI.KeyCase != "" {
		cfg.KeyCase = CLI.KeyCase
	}
}

func buildConfig(cfg *config.Config) jsonish.BuildConfig {
	if cfg.Color {
		build := jsonish.ColorConfig()
		build.Pretty = !cfg.Compact
		build.Indent = cfg.Indent
		return build
	}
	return jsonish.BuildConfig{
		Pretty: !cfg.Compact,
		Indent: cfg.Indent,
	}
}

// format parses one document and renders it back out.
func format(text string, build jsonish.BuildConfig, convert keycase.Converter) (string, error) {
	value, err := jsonish.Parse(text)
	if err != nil {
		return "", err
	}
	if convert != nil {
		value = keycase.Rewrite(value, convert)
	}
	return value.ToJSON(build), nil
}

// readStdin reads the whole of standard input.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("no input provided: specify a file with -f or pipe JSON to stdin")
	}
	return string(data), nil
}

// writeOutput writes the rendered text to the output file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write to %s: %w", CLI.Output, err)
		}
		return nil
	}
	_, err := fmt.Print(text)
	return err
}
