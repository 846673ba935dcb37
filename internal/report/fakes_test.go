package report_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

var errBoom = errors.New("boom")

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	require.NoError(t, err)
	return data
}

// fakeRenderer devuelve siempre el mismo HTML (o error).
type fakeRenderer struct {
	html  []byte
	err   error
	calls int
}

func (f *fakeRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.html, f.err
}

// fakeHolders devuelve buckets fijos y registra el último limitPerSide pedido.
type fakeHolders struct {
	buckets   []domain.HolderBucket
	err       error
	calls     int
	lastCID   string
	lastLimit int
}

func (f *fakeHolders) FetchHolders(_ context.Context, conditionID string, limitPerSide int) ([]domain.HolderBucket, error) {
	f.calls++
	f.lastCID = conditionID
	f.lastLimit = limitPerSide
	return f.buckets, f.err
}

// fakeProfiles responde por dirección; las direcciones desconocidas
// devuelven listas vacías.
type fakeProfiles struct {
	volume    map[string][]domain.AmountEntry
	profit    map[string][]domain.AmountEntry
	positions map[string][]domain.Position

	volumeErr    map[string]error
	profitErr    map[string]error
	positionsErr map[string]error

	addresses []string
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{
		volume:       map[string][]domain.AmountEntry{},
		profit:       map[string][]domain.AmountEntry{},
		positions:    map[string][]domain.Position{},
		volumeErr:    map[string]error{},
		profitErr:    map[string]error{},
		positionsErr: map[string]error{},
	}
}

func (f *fakeProfiles) FetchVolume(_ context.Context, address string) ([]domain.AmountEntry, error) {
	f.addresses = append(f.addresses, address)
	if err := f.volumeErr[address]; err != nil {
		return nil, err
	}
	return f.volume[address], nil
}

func (f *fakeProfiles) FetchProfit(_ context.Context, address string) ([]domain.AmountEntry, error) {
	if err := f.profitErr[address]; err != nil {
		return nil, err
	}
	return f.profit[address], nil
}

func (f *fakeProfiles) FetchPositions(_ context.Context, address string) ([]domain.Position, error) {
	if err := f.positionsErr[address]; err != nil {
		return nil, err
	}
	return f.positions[address], nil
}

func amount(raw string) []domain.AmountEntry {
	return []domain.AmountEntry{{Amount: domain.Number(raw)}}
}
