// Package browser provides a remote browser session for acceptance tests: it
// connects a Playwright driver to a remote endpoint, exposes navigation and
// screenshots, and latches a terminal error once the remote session is gone.
package browser

import (
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/paluchbiz/go-testing/exception"
	"github.com/paluchbiz/go-testing/stacktrace"
)

// ErrSessionEnded is returned once the remote session has ended. It is
// terminal: no commands, screenshots or teardown steps are possible on this
// provider anymore.
const ErrSessionEnded = exception.String("remote session has ended; it may have timed out previously")

// ErrNotConnected is returned when an operation is attempted before the
// provider has opened its remote session.
const ErrNotConnected = exception.String("provider is not connected")

const errConnect = exception.String("connecting to remote endpoint failed")

const errCommand = exception.String("remote command failed")

// sessionEndedMarkers are the message fragments the driver produces when the
// remote session is gone.
var sessionEndedMarkers = []string{
	"has been closed",
	"Target closed",
	"browser has been disconnected",
}

// Provider owns one remote browser session. Its lifecycle is bound to fx:
// the session is opened on start and closed on stop.
type Provider struct {
	logger  *zerolog.Logger
	config  *Config
	driver  *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	ended   atomic.Bool
}

func NewProvider(logger *zerolog.Logger, lifecycle fx.Lifecycle, config *Config) *Provider {
	provider := &Provider{
		logger: logger,
		config: config,
	}
	lifecycle.Append(fx.Hook{
		OnStart: provider.onStart,
		OnStop:  provider.onStop,
	})
	return provider
}

func (p *Provider) onStart(_ context.Context) error {
	if err := p.connect(); err != nil {
		if p.config.Verbose {
			p.logger.Error().Msg(stacktrace.Report(err))
		}
		return err
	}
	p.logger.Info().
		Str("url", p.config.RemoteURL).
		Str("browser", p.config.Browser).
		Msg("Connected to remote browser")
	return nil
}

func (p *Provider) connect() error {
	driver, err := playwright.Run(&playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	})
	if err != nil {
		return errConnect.SetMessage("starting driver").WithCause(err).FillStackTrace(0)
	}
	p.driver = driver
	browser, err := p.browserType().Connect(p.config.RemoteURL)
	if err != nil {
		return errConnect.SetMessage("remote URL %q", p.config.RemoteURL).WithCause(err).FillStackTrace(0)
	}
	p.browser = browser
	page, err := browser.NewPage()
	if err != nil {
		return errConnect.SetMessage("opening page").WithCause(err).FillStackTrace(0)
	}
	p.page = page
	return nil
}

func (p *Provider) browserType() playwright.BrowserType {
	switch p.config.Browser {
	case "chromium":
		return p.driver.Chromium
	case "webkit":
		return p.driver.WebKit
	default:
		return p.driver.Firefox
	}
}

func (p *Provider) onStop(_ context.Context) error {
	if p.driver == nil {
		return nil
	}
	// once the remote session is gone, a remote close can no longer succeed
	if !p.ended.Load() && p.browser != nil {
		if err := p.browser.Close(); err != nil {
			p.logger.Warn().Err(err).Msg("Closing remote browser failed")
		}
	}
	return p.driver.Stop()
}

// Page returns the open page of the session.
func (p *Provider) Page() (playwright.Page, error) {
	if p.ended.Load() {
		return nil, ErrSessionEnded
	}
	if p.page == nil {
		return nil, ErrNotConnected
	}
	return p.page, nil
}

// Navigate loads the given URL in the session's page.
func (p *Provider) Navigate(url string) error {
	page, err := p.Page()
	if err != nil {
		return err
	}
	if _, err := page.Goto(url); err != nil {
		return p.commandError(err)
	}
	return nil
}

// Screenshot captures the full page as PNG bytes.
func (p *Provider) Screenshot() ([]byte, error) {
	page, err := p.Page()
	if err != nil {
		return nil, err
	}
	bytes, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return nil, p.commandError(err)
	}
	return bytes, nil
}

// commandError maps a failed remote command into either the terminal
// ErrSessionEnded, latching the provider, or a chained command failure.
func (p *Provider) commandError(err error) error {
	if isSessionEnded(err) {
		p.ended.Store(true)
		return ErrSessionEnded
	}
	return errCommand.WithCause(err).FillStackTrace(1)
}

func isSessionEnded(err error) bool {
	message := err.Error()
	for _, marker := range sessionEndedMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
