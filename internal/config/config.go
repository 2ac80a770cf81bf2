package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"devctl/internal/logger"
)

// Compiled-in defaults. A devctl.yaml file at the project root can override any
// of them; most invocations run without one.
const (
	DefaultImageRepository = "quay.io/edge-operators/fleet-operator"
	DefaultImageTag        = "latest"

	DefaultBundleRepository = "quay.io/edge-operators/fleet-operator-bundle"
	DefaultBundleTag        = "latest"
)

// TestFlagsVar is the environment variable whose value is split into extra
// arguments for the test runner.
const TestFlagsVar = "DEVCTL_TEST_FLAGS"

// ImageRef identifies a container image by repository and tag.
type ImageRef struct {
	Repository string `yaml:"repository"`
	Tag        string `yaml:"tag"`
}

// String renders the reference in the "repository:tag" form expected by podman.
func (r ImageRef) String() string {
	return r.Repository + ":" + r.Tag
}

// TestSettings holds the test-runner settings.
type TestSettings struct {
	// Flags are extra arguments for the test runner, split on whitespace.
	// The DEVCTL_TEST_FLAGS environment variable takes precedence over them.
	Flags string `yaml:"flags"`
}

// Config holds the project settings used to fill in command defaults.
type Config struct {
	Image  ImageRef     `yaml:"image"`
	Bundle ImageRef     `yaml:"bundle"`
	Test   TestSettings `yaml:"test"`
}

// Load reads the optional devctl.yaml override file at the given path and
// returns a fully populated Config. A missing file yields the compiled-in
// defaults; a file that exists but cannot be parsed is a hard error, since
// silently ignoring it would build and push images under the wrong name.
func Load(path string) Config {
	cfg := Config{
		Image:  ImageRef{Repository: DefaultImageRepository, Tag: DefaultImageTag},
		Bundle: ImageRef{Repository: DefaultBundleRepository, Tag: DefaultBundleTag},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		// No override file: run with the defaults.
		logger.Debug("[DEBUG] No config file at %s, using defaults\n", path)
		return cfg
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("Failed to unmarshal " + path + ": " + err.Error())
	}

	// Partial overrides are allowed: restore any field the file left empty.
	if cfg.Image.Repository == "" {
		cfg.Image.Repository = DefaultImageRepository
	}
	if cfg.Image.Tag == "" {
		cfg.Image.Tag = DefaultImageTag
	}
	if cfg.Bundle.Repository == "" {
		cfg.Bundle.Repository = DefaultBundleRepository
	}
	if cfg.Bundle.Tag == "" {
		cfg.Bundle.Tag = DefaultBundleTag
	}

	logger.Debug("[DEBUG] Loaded config from %s\n", path)
	return cfg
}
