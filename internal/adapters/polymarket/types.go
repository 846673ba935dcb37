package polymarket

import (
	"encoding/json"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// DTOs raw de la data-api. Solo se usan dentro de este paquete.
// La conversión a domain se hace en mapping.go.

// holdersBucket es un elemento de GET /holders: los top holders de un token.
type holdersBucket struct {
	Token   string      `json:"token"`
	Holders []rawHolder `json:"holders"`
}

// rawHolder es un holder tal como lo devuelve la API.
type rawHolder struct {
	ProxyWallet  string        `json:"proxyWallet"`
	Name         string        `json:"name"`
	Pseudonym    string        `json:"pseudonym"`
	Amount       domain.Number `json:"amount"`
	OutcomeIndex domain.Number `json:"outcomeIndex"`
}

// positionsResponse se decodifica elemento a elemento para que una posición
// con un campo de tipo inesperado no invalide la lista entera.
type positionsResponse []json.RawMessage

// positionValueOnly rescata el currentValue de una posición que no decodifica.
type positionValueOnly struct {
	CurrentValue domain.Number `json:"currentValue"`
}
