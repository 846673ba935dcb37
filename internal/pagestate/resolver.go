package pagestate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// Rutas de API cuyas queries traen los mercados de la página.
const (
	RouteEventSlug = "/api/event/slug"
	RouteMarket    = "/api/market"
)

var marketRoutes = map[string]bool{
	RouteEventSlug: true,
	RouteMarket:    true,
}

// ErrUnrecognizedPayload: la query existe pero su data no tiene ninguna forma conocida.
var ErrUnrecognizedPayload = fmt.Errorf("unrecognized query payload: %w", domain.ErrNoMarketsFound)

// payloadKind es la forma del state.data de la query de mercados.
type payloadKind int

const (
	payloadUnknown payloadKind = iota
	payloadEvent               // {"markets": [...], ...} — página de evento
	payloadSingle              // {"conditionId": ..., ...} — página de un mercado
	payloadList                // [...] — lista directa
)

func (k payloadKind) String() string {
	switch k {
	case payloadEvent:
		return "event"
	case payloadSingle:
		return "single"
	case payloadList:
		return "list"
	}
	return "unknown"
}

// rawMarket son los campos del mercado que se leen del estado de la página.
type rawMarket struct {
	ConditionID    string          `json:"conditionId"`
	Question       string          `json:"question"`
	GroupItemTitle string          `json:"groupItemTitle"`
	OutcomePrices  json.RawMessage `json:"outcomePrices"`
	ClobTokenIDs   json.RawMessage `json:"clobTokenIds"`
}

// decodePayload clasifica data y devuelve los mercados raw de cada caso.
func decodePayload(data json.RawMessage) (payloadKind, []json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return payloadUnknown, nil, ErrUnrecognizedPayload
	}

	switch data[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(data, &list); err != nil {
			return payloadUnknown, nil, fmt.Errorf("decode list payload: %w", ErrUnrecognizedPayload)
		}
		return payloadList, list, nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return payloadUnknown, nil, fmt.Errorf("decode object payload: %w", ErrUnrecognizedPayload)
		}
		if raw, ok := obj["markets"]; ok {
			var list []json.RawMessage
			if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
				return payloadEvent, list, nil
			}
		}
		if _, ok := obj["conditionId"]; ok {
			return payloadSingle, []json.RawMessage{data}, nil
		}
	}
	return payloadUnknown, nil, ErrUnrecognizedPayload
}

// Resolve recorre las queries del estado y devuelve los mercados normalizados.
// Solo se examina la primera query con ruta reconocida.
func Resolve(state *State) ([]domain.Market, error) {
	var (
		query Query
		found bool
	)
	for _, q := range state.Queries() {
		if marketRoutes[q.Route()] {
			query, found = q, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("pagestate.Resolve: no market query: %w", domain.ErrNoMarketsFound)
	}

	kind, rawList, err := decodePayload(query.State.Data)
	if err != nil {
		return nil, fmt.Errorf("pagestate.Resolve: route %s: %w", query.Route(), err)
	}
	if len(rawList) == 0 {
		return nil, fmt.Errorf("pagestate.Resolve: route %s: empty %s payload: %w",
			query.Route(), kind, domain.ErrNoMarketsFound)
	}

	slog.Debug("market query resolved", "route", query.Route(), "shape", kind, "entries", len(rawList))

	markets := make([]domain.Market, 0, len(rawList))
	seen := make(map[string]bool, len(rawList))
	for i, raw := range rawList {
		m, err := normalizeMarket(i, raw)
		if err != nil {
			slog.Warn("skipping market entry", "index", i, "err", err)
			continue
		}
		if seen[m.ConditionID] {
			slog.Warn("skipping duplicate market", "index", i, "condition_id", m.ConditionID)
			continue
		}
		seen[m.ConditionID] = true
		markets = append(markets, m)
	}

	if len(markets) == 0 {
		return nil, fmt.Errorf("pagestate.Resolve: no valid market entries: %w", domain.ErrNoMarketsFound)
	}
	return markets, nil
}

var errMissingConditionID = errors.New("missing conditionId")

// normalizeMarket construye un domain.Market a partir de una entrada raw.
// Los precios malos se convierten en markers, nunca en error.
func normalizeMarket(index int, raw json.RawMessage) (domain.Market, error) {
	var rm rawMarket
	if err := json.Unmarshal(raw, &rm); err != nil {
		return domain.Market{}, fmt.Errorf("decode market: %w", err)
	}
	if rm.ConditionID == "" {
		return domain.Market{}, errMissingConditionID
	}

	m := domain.Market{
		Index:       index,
		Title:       domain.MarketTitle(rm.GroupItemTitle, rm.Question, index),
		ConditionID: rm.ConditionID,
		YesOdds:     domain.NoPriceMarker,
		NoOdds:      domain.NoPriceMarker,
		TokenIDs:    decodeStringList(rm.ClobTokenIDs),
	}

	prices := decodeNumberList(rm.OutcomePrices)
	if len(prices) >= 2 {
		m.YesOdds = domain.FormatOdds(prices[0])
		m.NoOdds = domain.FormatOdds(prices[1])
		m.OutcomePrices = []string{prices[0].Literal(), prices[1].Literal()}
	}
	if len(m.TokenIDs) != 2 {
		m.TokenIDs = nil
	}
	return m, nil
}

// decodeNumberList acepta un array JSON o un string que contiene un array JSON
// (Gamma serializa outcomePrices así). Devuelve nil si no es ninguno.
func decodeNumberList(raw json.RawMessage) []domain.Number {
	raw = unwrapStringified(raw)
	var list []domain.Number
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func decodeStringList(raw json.RawMessage) []string {
	raw = unwrapStringified(raw)
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

// unwrapStringified devuelve el contenido de raw si es un string JSON.
func unwrapStringified(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return raw
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return raw
	}
	return json.RawMessage(s)
}
