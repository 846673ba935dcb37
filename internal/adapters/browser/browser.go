package browser

import (
	"fmt"
	"time"

	"github.com/alejandrodnm/polyholders/internal/ports"
)

const (
	ModeChrome = "chrome"
	ModeStatic = "static"

	defaultNavigationTimeout = 60 * time.Second
	defaultActionTimeout     = 30 * time.Second
	defaultScriptWait        = 15 * time.Second
)

// Options configura el renderer. Los timeouts en cero usan los defaults.
type Options struct {
	Mode              string
	Headless          bool
	UserAgent         string
	NavigationTimeout time.Duration
	ActionTimeout     time.Duration
	ScriptWait        time.Duration
}

func (o *Options) setDefaults() {
	if o.NavigationTimeout <= 0 {
		o.NavigationTimeout = defaultNavigationTimeout
	}
	if o.ActionTimeout <= 0 {
		o.ActionTimeout = defaultActionTimeout
	}
	if o.ScriptWait <= 0 {
		o.ScriptWait = defaultScriptWait
	}
}

// New devuelve el renderer del modo pedido.
func New(opts Options) (ports.Renderer, error) {
	opts.setDefaults()
	switch opts.Mode {
	case ModeChrome, "":
		return NewChrome(opts), nil
	case ModeStatic:
		return NewStatic(opts), nil
	}
	return nil, fmt.Errorf("browser.New: unknown render mode %q", opts.Mode)
}
