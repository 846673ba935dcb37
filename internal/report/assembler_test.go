package report_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/report"
)

const eventURL = "https://polymarket.com/event/who-wins"

// fixtureHolders replica holders.json ya mapeado: el bucket No viene primero.
func fixtureHolders() []domain.HolderBucket {
	return []domain.HolderBucket{
		{Token: "tok-no-a", Holders: []domain.Holder{
			{Address: "0xno1", DisplayName: "bear", OutcomeIndex: domain.OutcomeNo, Shares: "5,000"},
			{Address: "0xno2", DisplayName: "0xno2", OutcomeIndex: domain.OutcomeNo, Shares: "1,200"},
		}},
		{Token: "tok-yes-a", Holders: []domain.Holder{
			{Address: "0xyes1", DisplayName: "whale", OutcomeIndex: domain.OutcomeYes, Shares: "250,000"},
			{Address: "0xyes2", DisplayName: "Lucky-Duck", OutcomeIndex: domain.OutcomeYes, Shares: "12,346"},
			{Address: "", DisplayName: "ghost", OutcomeIndex: domain.OutcomeYes, Shares: "10"},
			{Address: "0xyes4", DisplayName: "minnow", OutcomeIndex: domain.OutcomeYes, Shares: "lots"},
		}},
	}
}

func manyHolders(n int, o domain.Outcome) []domain.Holder {
	holders := make([]domain.Holder, n)
	for i := range holders {
		addr := fmt.Sprintf("0x%s%02d", o, i+1)
		holders[i] = domain.Holder{Address: addr, DisplayName: addr, OutcomeIndex: o, Shares: "1"}
	}
	return holders
}

func newFixtureAssembler(t *testing.T, holders *fakeHolders, profiles *fakeProfiles, pacer report.Pacer) *report.Assembler {
	t.Helper()
	return report.NewAssembler(&fakeRenderer{html: loadFixture(t, "next_event.html")}, holders, profiles, pacer)
}

func TestAssemble_FixtureEvent(t *testing.T) {
	profiles := newFakeProfiles()
	profiles.volume["0xyes1"] = amount(`1000`)
	profiles.profit["0xyes1"] = amount(`250.5`)
	profiles.positions["0xyes1"] = fixturePositions(t)
	profiles.volumeErr["0xno1"] = errBoom

	holders := &fakeHolders{buckets: fixtureHolders()}
	r, err := newFixtureAssembler(t, holders, profiles, report.NoPacing).
		Assemble(context.Background(), eventURL, 0, 5)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, "0xABC", holders.lastCID)
	assert.Equal(t, 5, holders.lastLimit)

	assert.Equal(t, domain.MarketInfo{
		Title: "Candidate A", Index: 0, ConditionID: "0xABC", YesOdds: "65.0%", NoOdds: "35.0%",
	}, r.MarketInfo)

	// Yes: ghost no tiene dirección y se salta, pero el ranking conserva la posición
	yes := r.Holders.Yes
	require.Len(t, yes, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{yes[0].Rank, yes[1].Rank, yes[2].Rank})
	assert.Equal(t, "whale", yes[0].Name)
	assert.Equal(t, "250,000", yes[0].SharesInMarket)
	assert.Equal(t, "$1,000.00", yes[0].Volume.String())
	assert.Equal(t, "$250.50", yes[0].PnL.String())
	assert.Equal(t, "$162,524.15", yes[0].PortfolioValue.String())
	require.NotNil(t, yes[0].Target.Detail)
	assert.Equal(t, "45.5c", yes[0].Target.Detail.AvgPrice)
	assert.Equal(t, "minnow", yes[2].Name)

	// Sin datos en el fake: leaderboards vacíos y cartera vacía
	assert.Equal(t, domain.UnavailableMarker, yes[1].Volume.String())
	assert.Equal(t, "$0.00", yes[1].PortfolioValue.String())
	assert.Nil(t, yes[1].Target.Detail)

	no := r.Holders.No
	require.Len(t, no, 2)
	assert.Equal(t, "bear", no[0].Name)
	assert.Equal(t, domain.UnavailableMarker, no[0].Volume.String())
	assert.Equal(t, 2, no[1].Rank)

	// Orden de procesamiento: todo Yes y luego No
	assert.Equal(t, []string{"0xyes1", "0xyes2", "0xyes4", "0xno1", "0xno2"}, profiles.addresses)
}

func TestAssemble_LimitsEachSide(t *testing.T) {
	profiles := newFakeProfiles()
	holders := &fakeHolders{buckets: []domain.HolderBucket{
		{Token: "tok-yes-a", Holders: manyHolders(10, domain.OutcomeYes)},
		{Token: "tok-no-a", Holders: manyHolders(10, domain.OutcomeNo)},
	}}

	r, err := newFixtureAssembler(t, holders, profiles, report.NoPacing).
		Assemble(context.Background(), eventURL, 0, 3)
	require.NoError(t, err)

	for _, side := range domain.Outcomes {
		rows := r.Holders.Side(side)
		require.Len(t, rows, 3, side.String())
		for i, row := range rows {
			assert.Equal(t, i+1, row.Rank)
		}
	}
	assert.Len(t, profiles.addresses, 6)
}

func TestAssemble_InvalidIndex(t *testing.T) {
	holders := &fakeHolders{buckets: fixtureHolders()}
	r, err := newFixtureAssembler(t, holders, newFakeProfiles(), report.NoPacing).
		Assemble(context.Background(), eventURL, 5, 5)

	require.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "max index 2")
	assert.Nil(t, r)
	assert.Zero(t, holders.calls)
}

func TestAssemble_HoldersFailureIsTerminal(t *testing.T) {
	profiles := newFakeProfiles()
	holders := &fakeHolders{err: fmt.Errorf("data-api.FetchHolders: %w", domain.ErrAPI)}

	r, err := newFixtureAssembler(t, holders, profiles, report.NoPacing).
		Assemble(context.Background(), eventURL, 0, 5)
	require.ErrorIs(t, err, domain.ErrAPI)
	assert.Nil(t, r)
	assert.Empty(t, profiles.addresses)
}

func TestAssemble_RenderFailures(t *testing.T) {
	a := report.NewAssembler(&fakeRenderer{err: errBoom}, &fakeHolders{}, newFakeProfiles(), nil)
	_, err := a.Assemble(context.Background(), eventURL, 0, 5)
	assert.ErrorIs(t, err, errBoom)

	a = report.NewAssembler(&fakeRenderer{html: []byte("<html></html>")}, &fakeHolders{}, newFakeProfiles(), nil)
	_, err = a.Assemble(context.Background(), eventURL, 0, 5)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestAssemble_NonPositiveMax(t *testing.T) {
	renderer := &fakeRenderer{html: loadFixture(t, "next_event.html")}
	a := report.NewAssembler(renderer, &fakeHolders{}, newFakeProfiles(), nil)

	r, err := a.Assemble(context.Background(), eventURL, 0, 0)
	assert.Error(t, err)
	assert.Nil(t, r)
	assert.Zero(t, renderer.calls)
}

func TestAssemble_EmptySideSerializesAsEmptyList(t *testing.T) {
	holders := &fakeHolders{buckets: []domain.HolderBucket{
		{Token: "tok-yes-a", Holders: manyHolders(2, domain.OutcomeYes)},
	}}

	r, err := newFixtureAssembler(t, holders, newFakeProfiles(), report.NoPacing).
		Assemble(context.Background(), eventURL, 0, 5)
	require.NoError(t, err)
	assert.Len(t, r.Holders.Yes, 2)
	assert.NotNil(t, r.Holders.No)

	b, err := json.Marshal(r.Holders)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"No":[]`)
}

func TestAssemble_PacesBetweenProfileCalls(t *testing.T) {
	var calls []int
	pacer := func(call int) time.Duration {
		calls = append(calls, call)
		return 0
	}

	_, err := newFixtureAssembler(t, &fakeHolders{buckets: fixtureHolders()}, newFakeProfiles(), pacer).
		Assemble(context.Background(), eventURL, 0, 5)
	require.NoError(t, err)

	// Una consulta al pacer por holder procesado, numeradas desde 0
	assert.Equal(t, []int{0, 1, 2, 3, 4}, calls)
}

func TestAssemble_CancelledWhilePacing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	profiles := newFakeProfiles()
	pacer := func(call int) time.Duration {
		if call == 1 {
			cancel()
			return time.Hour
		}
		return 0
	}

	r, err := newFixtureAssembler(t, &fakeHolders{buckets: fixtureHolders()}, profiles, pacer).
		Assemble(ctx, eventURL, 0, 5)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, r)
	assert.Len(t, profiles.addresses, 1)
}

func TestFixedPacer(t *testing.T) {
	p := report.FixedPacer(time.Second)
	assert.Zero(t, p(0))
	assert.Equal(t, time.Second, p(1))
	assert.Equal(t, time.Second, p(7))
	assert.Zero(t, report.NoPacing(3))
}

func TestSelectMarket(t *testing.T) {
	markets := []domain.Market{{Index: 0, ConditionID: "a"}, {Index: 2, ConditionID: "c"}}

	m, err := report.SelectMarket(markets, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", m.ConditionID)

	_, err = report.SelectMarket(markets, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)

	_, err = report.SelectMarket(nil, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}
