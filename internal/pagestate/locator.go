package pagestate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alejandrodnm/polyholders/internal/domain"
)

// ScriptSelector identifica el blob de hidratación que Next.js embebe en la página.
const ScriptSelector = "script#__NEXT_DATA__"

// State es la parte del blob __NEXT_DATA__ que usa el resolver.
type State struct {
	Props struct {
		PageProps struct {
			DehydratedState struct {
				Queries []Query `json:"queries"`
			} `json:"dehydratedState"`
		} `json:"pageProps"`
	} `json:"props"`
}

// Queries devuelve la lista de queries de react-query deshidratadas.
func (s *State) Queries() []Query {
	if s == nil {
		return nil
	}
	return s.Props.PageProps.DehydratedState.Queries
}

// Query es una entrada de dehydratedState.queries.
type Query struct {
	QueryKey json.RawMessage `json:"queryKey"`
	State    struct {
		Data json.RawMessage `json:"data"`
	} `json:"state"`
}

// Route devuelve queryKey[0] si es un string, o "" en cualquier otro caso.
func (q Query) Route() string {
	var key []json.RawMessage
	if err := json.Unmarshal(q.QueryKey, &key); err != nil || len(key) == 0 {
		return ""
	}
	var route string
	if err := json.Unmarshal(key[0], &route); err != nil {
		return ""
	}
	return route
}

// Locate extrae y parsea el blob __NEXT_DATA__ del HTML renderizado.
func Locate(raw []byte) (*State, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("pagestate.Locate: parse html: %w: %v", domain.ErrStateNotFound, err)
	}

	script := doc.Find(ScriptSelector).First()
	if script.Length() == 0 {
		return nil, fmt.Errorf("pagestate.Locate: %s missing: %w", ScriptSelector, domain.ErrStateNotFound)
	}

	text := strings.TrimSpace(script.Text())
	if text == "" {
		return nil, fmt.Errorf("pagestate.Locate: %s empty: %w", ScriptSelector, domain.ErrStateNotFound)
	}

	var state State
	if err := json.Unmarshal([]byte(text), &state); err != nil {
		return nil, fmt.Errorf("pagestate.Locate: decode json: %w: %v", domain.ErrStateNotFound, err)
	}
	return &state, nil
}
