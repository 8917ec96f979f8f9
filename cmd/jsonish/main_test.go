package main

import (
	"testing"

	"github.com/mcncl/jsonish"
	"github.com/mcncl/jsonish/internal/config"
	"github.com/mcncl/jsonish/internal/keycase"
)

func TestFormat(t *testing.T) {
	build := jsonish.BuildConfig{Pretty: false}
	got, err := format(`{"a" = 1 ; "b" => 2} # lenient`, build, nil)
	if err != nil {
		t.Fatalf("format() error = %v", err)
	}
	if got != `{"a":1,"b":2}` {
		t.Errorf("format() = %q", got)
	}
}

func TestFormat_KeyCase(t *testing.T) {
	convert, err := keycase.ForStyle("snake")
	if err != nil {
		t.Fatalf("ForStyle() error = %v", err)
	}
	got, err := format(`{"userName":"a"}`, jsonish.BuildConfig{}, convert)
	if err != nil {
		t.Fatalf("format() error = %v", err)
	}
	if got != `{"user_name":"a"}` {
		t.Errorf("format() = %q", got)
	}
}

func TestFormat_ParseErrorPropagates(t *testing.T) {
	if _, err := format(`{"a"`, jsonish.BuildConfig{}, nil); err == nil {
		t.Error("format() should fail on malformed input")
	}
}

func TestBuildConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Indent = "\t"
	build := buildConfig(cfg)
	if !build.Pretty || build.Indent != "\t" || build.Control != nil {
		t.Errorf("buildConfig() = %+v", build)
	}

	cfg.Compact = true
	if buildConfig(cfg).Pretty {
		t.Error("compact config should disable pretty")
	}

	cfg.Compact = false
	cfg.Color = true
	build = buildConfig(cfg)
	if build.Control == nil || build.Key == nil || build.Scalar == nil {
		t.Error("color config should install converters")
	}
	if build.Indent != "\t" {
		t.Errorf("color config should keep the configured indent, got %q", build.Indent)
	}
}
