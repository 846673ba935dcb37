package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/alejandrodnm/polyholders/internal/adapters/notify"
	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_NotifyMarkets(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf)

	markets := []domain.Market{
		{Index: 0, Title: "Candidate A", ConditionID: "0xabc0000000000000000000000000000000000001", YesOdds: "65.0%", NoOdds: "35.0%"},
		{Index: 1, Title: "Will Candidate B win the runoff election scheduled for next spring?", ConditionID: "0xDEF", YesOdds: "N/A", NoOdds: "N/A"},
	}
	require.NoError(t, n.NotifyMarkets(context.Background(), markets))

	out := buf.String()
	assert.Contains(t, out, "Candidate A")
	assert.Contains(t, out, "65.0%")
	assert.Contains(t, out, "0xabc000...0001")
	assert.Contains(t, out, "0xDEF")
	assert.Contains(t, out, "Will Candidate B win the runoff election schedu...")
}

func TestConsole_NotifyMarkets_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, notify.NewConsoleWriter(&buf).NotifyMarkets(context.Background(), nil))
	assert.Contains(t, buf.String(), "no markets found")
}

func TestConsole_NotifyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, notify.NewConsoleWriter(&buf).NotifyReport(context.Background(), sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Candidate A")
	assert.Contains(t, out, "=== Yes holders (1) ===")
	assert.Contains(t, out, "=== No holders (0) ===")
	assert.Contains(t, out, "whale")
	assert.Contains(t, out, "$162,524.15")
	assert.Contains(t, out, "45.5c")
	assert.Contains(t, out, "Error")
}

func TestConsole_NotifyReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, notify.NewConsoleWriter(&buf).NotifyReport(context.Background(), nil))
}
