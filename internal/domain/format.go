package domain

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatOdds convierte un precio (0-1) en porcentaje con un decimal.
// Si no parsea devuelve "Error(<raw>)" en lugar de fallar.
func FormatOdds(price Number) string {
	f, err := price.Float()
	if err != nil {
		return fmt.Sprintf("Error(%s)", price.Literal())
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatUSD formatea un importe como "$1,234.56".
func FormatUSD(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatShares formatea shares sin decimales: "1,234".
func FormatShares(v float64) string {
	return humanize.FormatFloat("#,###.", v)
}

// FormatCents formatea un precio 0-1 en centavos: 0.455 → "45.5c".
func FormatCents(v float64) string {
	return fmt.Sprintf("%.1fc", v*100)
}

// USDOrLiteral formatea n como dólares; si no parsea devuelve el literal raw.
// Los campos ausentes cuentan como 0.
func USDOrLiteral(n Number) string {
	f, err := n.FloatOr(0)
	if err != nil {
		return n.Literal()
	}
	return FormatUSD(f)
}

// SharesOrLiteral formatea n como shares; si no parsea devuelve el literal raw.
func SharesOrLiteral(n Number) string {
	f, err := n.FloatOr(0)
	if err != nil {
		return n.Literal()
	}
	return FormatShares(f)
}

// CentsOrLiteral formatea n como centavos; si no parsea devuelve el literal raw.
func CentsOrLiteral(n Number) string {
	f, err := n.FloatOr(0)
	if err != nil {
		return n.Literal()
	}
	return FormatCents(f)
}
