package domain

import (
	"fmt"
	"strings"
)

// Market es un mercado binario resuelto desde el estado embebido de la página.
// Se construye una vez por ejecución y no se modifica después.
type Market struct {
	Index         int
	Title         string
	ConditionID   string
	OutcomePrices []string // precios raw [yes, no] tal como vienen en la página
	YesOdds       string   // "65.0%", "N/A" o "Error(...)"
	NoOdds        string
	TokenIDs      []string // clobTokenIds [yes, no], si la página los trae
}

// TokenFor devuelve el token id del lado dado, o "" si el mercado no lo trae.
func (m Market) TokenFor(o Outcome) string {
	if len(m.TokenIDs) != 2 || !o.Valid() {
		return ""
	}
	return m.TokenIDs[o]
}

// MarketTitle aplica la cadena de fallback groupItemTitle → question → "Market N".
func MarketTitle(groupItemTitle, question string, index int) string {
	if t := strings.TrimSpace(groupItemTitle); t != "" {
		return t
	}
	if q := strings.TrimSpace(question); q != "" {
		return q
	}
	return fmt.Sprintf("Market %d", index)
}

// MarketListing es la fila que imprime el listado de mercados.
type MarketListing struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	ConditionID string `json:"conditionId"`
	YesOdds     string `json:"yes_odds_%"`
	NoOdds      string `json:"no_odds_%"`
}

// Listing convierte el mercado a su fila de listado.
func (m Market) Listing() MarketListing {
	return MarketListing{
		Index:       m.Index,
		Title:       m.Title,
		ConditionID: m.ConditionID,
		YesOdds:     m.YesOdds,
		NoOdds:      m.NoOdds,
	}
}

// MarketInfo es el resumen del mercado objetivo dentro del reporte.
type MarketInfo struct {
	Title       string `json:"title"`
	Index       int    `json:"index"`
	ConditionID string `json:"conditionId"`
	YesOdds     string `json:"current_yes_odds"`
	NoOdds      string `json:"current_no_odds"`
}

// Info devuelve el resumen del mercado para el reporte.
func (m Market) Info() MarketInfo {
	return MarketInfo{
		Title:       m.Title,
		Index:       m.Index,
		ConditionID: m.ConditionID,
		YesOdds:     m.YesOdds,
		NoOdds:      m.NoOdds,
	}
}
