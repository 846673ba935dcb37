package domain

// Outcome es el lado de un mercado binario.
type Outcome int

const (
	OutcomeYes Outcome = 0
	OutcomeNo  Outcome = 1
)

// Outcomes en el orden en que se procesan.
var Outcomes = [2]Outcome{OutcomeYes, OutcomeNo}

// Valid devuelve true para 0 (Yes) y 1 (No).
func (o Outcome) Valid() bool {
	return o == OutcomeYes || o == OutcomeNo
}

func (o Outcome) String() string {
	switch o {
	case OutcomeYes:
		return "Yes"
	case OutcomeNo:
		return "No"
	}
	return "Unknown"
}

// Holder es una wallet con shares en un lado del mercado.
// El orden de la lista (ranking por shares) lo decide la API y se respeta.
type Holder struct {
	Address      string
	DisplayName  string
	OutcomeIndex Outcome
	Shares       string // ya formateado ("1,234") o literal raw si no parsea
}

// HolderBucket es un grupo de holders tal como lo devuelve /holders (uno por token).
type HolderBucket struct {
	Token   string
	Holders []Holder
}
