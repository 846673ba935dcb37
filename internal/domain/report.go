package domain

import "encoding/json"

// HolderStats es la fila final de un holder: identidad + perfil agregado.
type HolderStats struct {
	Rank           int            `json:"rank"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	SharesInMarket string         `json:"shares_in_market"`
	Volume         Metric         `json:"overall_volume"`
	PnL            Metric         `json:"overall_pnl"`
	PortfolioValue Metric         `json:"total_portfolio_value"`
	Target         TargetPosition `json:"target_market_position"`
}

// TargetPosition serializa la posición como objeto, o "Not Found" si no existe.
type TargetPosition struct {
	Detail *PositionDetail
}

func (t TargetPosition) MarshalJSON() ([]byte, error) {
	if t.Detail == nil {
		return json.Marshal(NotFoundMarker)
	}
	return json.Marshal(t.Detail)
}

// HoldersBySide agrupa las filas por lado, en orden de ranking.
type HoldersBySide struct {
	Yes []HolderStats `json:"Yes"`
	No  []HolderStats `json:"No"`
}

// Side devuelve la lista del lado dado.
func (h HoldersBySide) Side(o Outcome) []HolderStats {
	if o == OutcomeNo {
		return h.No
	}
	return h.Yes
}

// ExtractionReport es el resultado completo de una ejecución.
// Lo construye report.Assembler y no se modifica tras construirse.
type ExtractionReport struct {
	MarketInfo MarketInfo    `json:"market_info"`
	Holders    HoldersBySide `json:"holders"`
}
