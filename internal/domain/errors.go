package domain

import "errors"

var (
	// ErrStateNotFound: no hay blob __NEXT_DATA__ o no es JSON válido.
	ErrStateNotFound = errors.New("embedded page state not found")
	// ErrNoMarketsFound: el estado no contiene una lista de mercados utilizable.
	ErrNoMarketsFound = errors.New("no markets found in page state")
	// ErrInvalidIndex: el índice pedido no está entre los mercados resueltos.
	ErrInvalidIndex = errors.New("invalid market index")
	// ErrAPI: un endpoint falló o devolvió JSON inválido.
	ErrAPI = errors.New("api error")
	// ErrFieldParse: un campo numérico no parsea. Nunca sale de format.go.
	ErrFieldParse = errors.New("field parse error")
)
