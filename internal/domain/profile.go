package domain

import "encoding/json"

// Markers que sustituyen a un valor cuando la API falla o el campo no parsea.
const (
	UnavailableMarker = "Error"
	NotFoundMarker    = "Not Found"
	NoPriceMarker     = "N/A"
)

// Metric es un valor agregado ya formateado o el marker de no disponible.
type Metric struct {
	Value     string
	Available bool
}

// MetricOf crea una métrica disponible.
func MetricOf(v string) Metric {
	return Metric{Value: v, Available: true}
}

// Unavailable es la métrica de una llamada fallida.
func Unavailable() Metric {
	return Metric{}
}

func (m Metric) String() string {
	if !m.Available {
		return UnavailableMarker
	}
	return m.Value
}

// MarshalJSON serializa la métrica como string plano.
func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// PositionDetail es la posición del trader en el mercado objetivo.
// Cada campo degrada por separado al literal raw si no parsea.
type PositionDetail struct {
	Size     string `json:"shares_in_position"`
	AvgPrice string `json:"avg_price"`
	CurPrice string `json:"current_price"`
	CashPnl  string `json:"position_pnl"`
}

// TraderProfile agrega volumen, P&L y valor de cartera de una wallet,
// más la posición en el mercado objetivo (nil si no tiene).
type TraderProfile struct {
	Volume         Metric
	PnL            Metric
	PortfolioValue Metric
	Target         *PositionDetail
}

// AmountEntry es una fila de los leaderboards /volume y /profit.
type AmountEntry struct {
	Amount Number `json:"amount"`
}

// Position es una posición de /positions. Los campos numéricos quedan raw
// para que un campo malo no descarte la posición entera.
type Position struct {
	ConditionID  string `json:"conditionId"`
	OutcomeIndex Number `json:"outcomeIndex"`
	Size         Number `json:"size"`
	AvgPrice     Number `json:"avgPrice"`
	CurPrice     Number `json:"curPrice"`
	CurrentValue Number `json:"currentValue"`
	CashPnl      Number `json:"cashPnl"`
	Title        string `json:"title"`
	Outcome      string `json:"outcome"`
}

// Matches devuelve true si la posición es del mercado y lado dados.
// outcomeIndex tiene que ser un número JSON entero igual al lado.
func (p Position) Matches(conditionID string, o Outcome) bool {
	if p.ConditionID != conditionID || !p.OutcomeIndex.IsJSONNumber() {
		return false
	}
	f, err := p.OutcomeIndex.Float()
	return err == nil && f == float64(o)
}
