package cli_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alejandrodnm/polyholders/config"
	"github.com/alejandrodnm/polyholders/internal/adapters/browser"
	"github.com/alejandrodnm/polyholders/internal/adapters/notify"
	"github.com/alejandrodnm/polyholders/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventURL = "https://polymarket.com/event/who-wins"

func TestParseHolderArgs(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		index    int
		max      int
		warnings int
	}{
		{"url only", []string{eventURL}, 0, 5, 0},
		{"url and max", []string{eventURL, "3"}, 0, 3, 0},
		{"url index max", []string{eventURL, "2", "10"}, 2, 10, 0},
		{"invalid max", []string{eventURL, "many"}, 0, 5, 1},
		{"zero max", []string{eventURL, "1", "0"}, 1, 5, 1},
		{"negative index", []string{eventURL, "-1", "4"}, 0, 4, 1},
		{"both invalid", []string{eventURL, "x", "y"}, 0, 5, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cli.ParseHolderArgs(tc.args, 5)
			require.NoError(t, err)
			assert.Equal(t, eventURL, got.URL)
			assert.Equal(t, tc.index, got.MarketIndex)
			assert.Equal(t, tc.max, got.MaxPerSide)
			assert.Len(t, got.Warnings, tc.warnings)
		})
	}
}

func TestParseHolderArgs_BadURL(t *testing.T) {
	_, err := cli.ParseHolderArgs(nil, 5)
	assert.Error(t, err)

	_, err = cli.ParseHolderArgs([]string{"polymarket.com/event/x", "3"}, 5)
	assert.Error(t, err)
}

func TestValidURL(t *testing.T) {
	assert.NoError(t, cli.ValidURL("http://localhost:3000/event/x"))
	assert.NoError(t, cli.ValidURL(eventURL))
	assert.Error(t, cli.ValidURL("ftp://polymarket.com"))
	assert.Error(t, cli.ValidURL(""))
}

func TestSetupLogger_JSONWithRunID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	runID := cli.SetupLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})
	require.NotEmpty(t, runID)

	slog.Info("hidden")
	slog.Warn("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"run_id":"`+runID+`"`)
}

func TestNewRenderer_FromConfig(t *testing.T) {
	cfg := &config.Config{Render: config.RenderConfig{Mode: browser.ModeStatic}}
	r, err := cli.NewRenderer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &browser.Static{}, r)

	cfg.Render.Mode = "lynx"
	_, err = cli.NewRenderer(cfg)
	assert.Error(t, err)
}

func TestNotifiers_JSONAlwaysLast(t *testing.T) {
	out := cli.Notifiers(false)
	require.Len(t, out, 1)
	assert.IsType(t, &notify.JSON{}, out[0])

	out = cli.Notifiers(true)
	require.Len(t, out, 2)
	assert.IsType(t, &notify.Console{}, out[0])
	assert.IsType(t, &notify.JSON{}, out[1])
}
