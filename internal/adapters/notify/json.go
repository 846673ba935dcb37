package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/polyholders/internal/domain"
	"github.com/alejandrodnm/polyholders/internal/ports"
)

// Líneas que enmarcan el JSON del reporte para que se pueda recortar de la salida.
const (
	ReportBeginMarker = "========== FINAL JSON OUTPUT =========="
	ReportEndMarker   = "========== END JSON OUTPUT =========="
)

var _ ports.Notifier = (*JSON)(nil)

// JSON implementa ports.Notifier escribiendo el resultado como JSON indentado.
type JSON struct {
	out io.Writer
}

// NewJSON crea un notificador que escribe a stdout.
func NewJSON() *JSON {
	return &JSON{out: os.Stdout}
}

// NewJSONWriter crea un notificador sobre w. Para tests.
func NewJSONWriter(w io.Writer) *JSON {
	return &JSON{out: w}
}

// NotifyMarkets imprime el listado de mercados; una lista vacía sale como [].
func (j *JSON) NotifyMarkets(_ context.Context, markets []domain.Market) error {
	rows := make([]domain.MarketListing, 0, len(markets))
	for _, m := range markets {
		rows = append(rows, m.Listing())
	}
	return j.write(rows)
}

// NotifyReport imprime el reporte entre las líneas marcador.
func (j *JSON) NotifyReport(_ context.Context, report *domain.ExtractionReport) error {
	if report == nil {
		return fmt.Errorf("notify.JSON: nil report")
	}
	if _, err := fmt.Fprintf(j.out, "\n%s\n", ReportBeginMarker); err != nil {
		return err
	}
	if err := j.write(report); err != nil {
		return err
	}
	_, err := fmt.Fprintf(j.out, "%s\n\n", ReportEndMarker)
	return err
}

func (j *JSON) write(v any) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("notify.JSON: encode: %w", err)
	}
	return nil
}
