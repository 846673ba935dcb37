package ports

import "context"

// Renderer carga una URL y devuelve el HTML resultante.
type Renderer interface {
	// Render navega a url y devuelve el contenido de la página una vez que el
	// blob de estado embebido está disponible (o falla tras la espera acotada).
	Render(ctx context.Context, url string) ([]byte, error)
}
