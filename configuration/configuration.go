// Package configuration loads typed configuration structs from the process
// environment and an optional .env file, using `env` struct tags. Loaded
// structs are validated with go-playground/validator.
package configuration

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/paluchbiz/go-testing/internal"
)

var globalDefaults = make(map[string]string)
var globalDotEnv = make(map[string]string)

func init() {
	// .env file have higher priority than defaults
	bytes, err := os.ReadFile(".env")
	if err == nil {
		saveEnvironments(globalDotEnv, strings.Split(string(bytes), "\n"))
	}
}

func saveEnvironments(target map[string]string, lines []string) {
	for _, line := range lines {
		split := strings.SplitN(line, "=", 2)
		if len(split) == 2 {
			target[strings.TrimSpace(split[0])] = strings.TrimSpace(split[1])
		}
	}
}

// SetDefault registers a fallback value for a key. Defaults have the lowest
// priority, below the .env file and the process environment.
func SetDefault(key string, value string) {
	globalDefaults[key] = value
}

// Load fills config from the environment and validates it. Keys are resolved
// from the `env` tag, with the optional prefixes joined by underscores
// prepended to every key.
func Load[T any](config *T, prefixes ...string) error {
	prefix := ""
	if len(prefixes) > 0 {
		prefix = strings.Join(prefixes, "_") + "_"
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "env",
		DecodeHook:       internal.SplitSemicolonsDecodeHookFunc,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		Result:           config,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(getEnvironment(prefix)); err != nil {
		return err
	}
	return internal.Validator.Struct(config)
}

// Loader wraps Load into a constructor suitable for dependency injection.
func Loader[T any](config *T, prefixes ...string) func() (*T, error) {
	return func() (*T, error) {
		err := Load(config, prefixes...)
		return config, err
	}
}

func getEnvironment(prefix string) map[string]string {
	environments := make(map[string]string)
	for key, value := range globalDefaults {
		if fixedKey, hasPrefix := strings.CutPrefix(key, prefix); hasPrefix {
			environments[fixedKey] = value
		}
	}
	for key, value := range globalDotEnv {
		if fixedKey, hasPrefix := strings.CutPrefix(key, prefix); hasPrefix {
			environments[fixedKey] = value
		}
	}
	// os.Environ() have the highest priority; read at load time so that
	// changes between loads are picked up
	for _, line := range os.Environ() {
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		if fixedKey, hasPrefix := strings.CutPrefix(strings.TrimSpace(split[0]), prefix); hasPrefix {
			environments[fixedKey] = strings.TrimSpace(split[1])
		}
	}
	return environments
}
