package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/zenith/internal/app"
	"github.com/alexanderramin/zenith/internal/llm"
	"github.com/alexanderramin/zenith/internal/repository"
	"github.com/alexanderramin/zenith/internal/testutil"
	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// switchableClient answers like the offline fake until told to fail.
type switchableClient struct {
	*llm.FakeClient

	mu   sync.Mutex
	fail bool
}

func (c *switchableClient) setFailing(fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = fail
}

func (c *switchableClient) err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return fmt.Errorf("%w: provider unavailable", llm.ErrRequestFailed)
	}
	return nil
}

func (c *switchableClient) CompleteText(ctx context.Context, req llm.TextRequest) (string, error) {
	if err := c.err(); err != nil {
		return "", err
	}
	return c.FakeClient.CompleteText(ctx, req)
}

func (c *switchableClient) CompleteStructured(ctx context.Context, req llm.StructuredRequest) (json.RawMessage, error) {
	if err := c.err(); err != nil {
		return nil, err
	}
	return c.FakeClient.CompleteStructured(ctx, req)
}

func (c *switchableClient) Chat(ctx context.Context, req llm.ChatRequest) (string, error) {
	if err := c.err(); err != nil {
		return "", err
	}
	return c.FakeClient.Chat(ctx, req)
}

// testApp wires a non-interactive App over a fresh SQLite-backed session.
func testApp(t *testing.T) (*App, *app.Session, *switchableClient) {
	t.Helper()
	client := &switchableClient{FakeClient: llm.NewFakeClient(nil)}
	session := app.NewSession(
		repository.NewSQLiteStore(testutil.NewTestDB(t)),
		client,
		app.WithClock(func() time.Time { return fixedNow }),
	)
	a := &App{
		Session:       session,
		Logger:        zerolog.Nop(),
		Now:           func() time.Time { return fixedNow },
		IsInteractive: func() bool { return false },
	}
	return a, session, client
}

// runCmd executes the command tree and returns its ANSI-stripped output.
func runCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	err := root.Execute()
	return stripANSI(out.String()), err
}
