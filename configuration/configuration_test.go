package configuration_test

import (
	"testing"

	"github.com/paluchbiz/go-testing/configuration"
)

type testConfig struct {
	Name    string   `env:"TEST_CONFIG_NAME" validate:"required"`
	Count   int      `env:"TEST_CONFIG_COUNT"`
	Targets []string `env:"TEST_CONFIG_TARGETS"`
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TEST_CONFIG_NAME", "integration")
	t.Setenv("TEST_CONFIG_COUNT", "3")
	t.Setenv("TEST_CONFIG_TARGETS", "one;two;three")

	var config testConfig
	if err := configuration.Load(&config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Name != "integration" || config.Count != 3 {
		t.Fatalf("unexpected config %+v", config)
	}
	if len(config.Targets) != 3 || config.Targets[0] != "one" {
		t.Fatalf("expected semicolon-separated slice, got %+v", config.Targets)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	var config testConfig
	if err := configuration.Load(&config); err == nil {
		t.Fatalf("expected a validation error for the missing required key")
	}
}

func TestLoadDefaultsHaveLowestPriority(t *testing.T) {
	configuration.SetDefault("TEST_CONFIG_NAME", "default")
	t.Setenv("TEST_CONFIG_NAME", "override")

	var config testConfig
	if err := configuration.Load(&config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Name != "override" {
		t.Fatalf("expected environment to win over defaults, got %q", config.Name)
	}
}

func TestLoadWithPrefix(t *testing.T) {
	t.Setenv("ACCEPTANCE_TEST_CONFIG_NAME", "prefixed")

	var config testConfig
	if err := configuration.Load(&config, "ACCEPTANCE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Name != "prefixed" {
		t.Fatalf("expected prefixed key resolved, got %q", config.Name)
	}
}
