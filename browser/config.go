package browser

import "github.com/paluchbiz/go-testing/configuration"

// Config selects the remote browser endpoint and the browser to request on
// it, resolved from the environment in place of system properties.
type Config struct {
	RemoteURL string `env:"REMOTE_WEBDRIVER_URL" validate:"required,uri"`
	Browser   string `env:"BROWSER_NAME" validate:"oneof=chromium firefox webkit"`
	Verbose   bool   `env:"BROWSER_VERBOSE"`
}

func init() {
	configuration.SetDefault("BROWSER_NAME", "firefox")
	configuration.SetDefault("BROWSER_VERBOSE", "false")
}
