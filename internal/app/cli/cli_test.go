package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/internal/platform/config"
)

func TestNewLoggerLevelsAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")
	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	buf.Reset()
	NewLogger(&buf, "bogus", "text").Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.False(t, NewLogger(&buf, "", "json").Enabled(context.Background(), slog.LevelDebug))
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "purge-sessions"} {
		assert.True(t, names[want], "missing %s command", want)
	}
	for _, flag := range []string{"addr", "db-url", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	root := NewRootCommand()
	root.SetArgs([]string{"migrate"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

type fakePurger struct {
	cutoff time.Time
	err    error
}

func (f *fakePurger) PurgeSessions(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return 3, f.err
}

func TestRunPurge(t *testing.T) {
	purger := &fakePurger{}
	var out bytes.Buffer
	before := time.Now()

	require.NoError(t, runPurge(context.Background(), &out, purger, config.Config{SessionTTL: time.Hour}))
	assert.Equal(t, "map[deleted:3]\n", out.String())
	assert.WithinDuration(t, before.Add(-time.Hour), purger.cutoff, time.Second)

	purger.err = errors.New("db down")
	err := runPurge(context.Background(), &out, purger, config.Config{SessionTTL: time.Hour})
	assert.EqualError(t, err, "purge sessions: db down")
}
