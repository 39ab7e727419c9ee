// Package plz invokes the build orchestrator's query interface.
package plz

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the orchestrator binary invoked when none is configured.
const DefaultBinary = "plz"

// Client runs plz queries. Invocations are synchronous and blocking; the
// caller's context is the only cancellation mechanism.
type Client struct {
	Binary string
}

func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{Binary: binary}
}

// QueryOptions parameterize the graph query.
type QueryOptions struct {
	BuildConfig string
	Profile     string
}

// RepoRoot asks the orchestrator for the repository root, which is not
// necessarily the current working directory. Trailing whitespace and
// newlines are stripped from the single-line answer.
func (c *Client) RepoRoot(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "query", "reporoot")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), " \n"), nil
}

// QueryGraph returns the raw build-graph document.
func (c *Client) QueryGraph(ctx context.Context, opts QueryOptions) ([]byte, error) {
	return c.run(ctx, GraphArgs(opts)...)
}

// GraphArgs builds the argument list for the graph query.
func GraphArgs(opts QueryOptions) []string {
	args := []string{"query", "graph"}
	if opts.BuildConfig != "" {
		args = append(args, "-c", opts.BuildConfig)
	}
	if opts.Profile != "" {
		args = append(args, "--profile", opts.Profile)
	}
	return args
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s failed: %w: %s", c.Binary, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s failed: %w", c.Binary, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}
