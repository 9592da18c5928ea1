// Package winget wraps the winget CLI: probing whether a package is
// installed, installing a single package, and running a bulk upgrade.
package winget

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Binary is the winget executable name resolved via PATH.
const Binary = "winget"

// MatchFunc decides whether the output of a list-by-id query indicates
// that the queried package is installed. The matching rule is pluggable
// because it parses free-form CLI text that can change between winget
// releases; swapping it must not touch the orchestrator.
type MatchFunc func(packageID string, output []byte) bool

// ExactIDMatch reports an exact-id hit row: the identifier at the start
// of a line, followed by whitespace. A plain line scan, so identifiers
// with regex metacharacters (Notepad++.Notepad++) need no escaping and
// repeated probes pay no pattern-compilation cost.
func ExactIDMatch(packageID string, output []byte) bool {
	if packageID == "" {
		return false
	}
	for _, line := range strings.SplitAfter(string(output), "\n") {
		rest, ok := strings.CutPrefix(line, packageID)
		if !ok || rest == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// Runner executes external commands. It matches run.Runner and is
// re-declared here so the package can be tested without importing fakes.
type Runner interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// Client invokes winget through a Runner.
type Client struct {
	runner Runner
	match  MatchFunc
}

// Option configures a Client.
type Option func(*Client)

// WithMatcher overrides the probe's output matching rule.
func WithMatcher(m MatchFunc) Option {
	return func(c *Client) { c.match = m }
}

// New creates a Client using the default exact-id matcher.
func New(r Runner, opts ...Option) *Client {
	c := &Client{runner: r, match: ExactIDMatch}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsInstalled queries winget for the exact package identifier.
//
// Any query failure or unexpected output is reported as not installed.
// That biases toward attempting the install, which winget treats as a
// safe no-op when the package is already present.
func (c *Client) IsInstalled(ctx context.Context, packageID string) bool {
	out, err := c.runner.CombinedOutput(ctx, Binary,
		"list", "--exact", "--id", packageID,
		"--accept-source-agreements", "--disable-interactivity")
	if err != nil {
		return false
	}
	return c.match(packageID, out)
}

// Install runs a silent, agreement-accepting install of the exact
// package identifier and blocks until winget exits.
func (c *Client) Install(ctx context.Context, packageID string) (int, error) {
	return c.runner.Run(ctx, Binary,
		"install", "--exact", "--id", packageID, "--silent",
		"--accept-source-agreements", "--accept-package-agreements")
}

// UpgradeAll runs a silent bulk upgrade of everything winget manages.
func (c *Client) UpgradeAll(ctx context.Context) (int, error) {
	return c.runner.Run(ctx, Binary,
		"upgrade", "--all", "--silent",
		"--accept-source-agreements", "--accept-package-agreements")
}
