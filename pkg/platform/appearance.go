// Package platform exposes host-level notifications consumed by the loader.
package platform

import (
	"sync"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/theme"
)

// Appearance is the process-wide appearance service. Hosts forward their
// light/dark mode changes to it with Update or HandleEvent.
var Appearance = NewAppearanceService(theme.BrightnessLight)

// AppearanceHandler is called when the display brightness changes.
type AppearanceHandler func(brightness theme.Brightness)

type appearanceEntry struct {
	id      int
	handler AppearanceHandler
}

// AppearanceService tracks the current display brightness and notifies
// subscribers when it flips.
type AppearanceService struct {
	mu         sync.RWMutex
	brightness theme.Brightness
	handlers   []appearanceEntry
	nextID     int
}

// NewAppearanceService creates a service starting at the given brightness.
func NewAppearanceService(initial theme.Brightness) *AppearanceService {
	return &AppearanceService{brightness: initial}
}

// Brightness returns the current display brightness.
func (a *AppearanceService) Brightness() theme.Brightness {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.brightness
}

// IsDark reports whether the dark appearance is active.
func (a *AppearanceService) IsDark() bool {
	return a.Brightness() == theme.BrightnessDark
}

// AddHandler registers a handler to be called on brightness changes.
// Returns a function that removes the handler.
func (a *AppearanceService) AddHandler(handler AppearanceHandler) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.handlers = append(a.handlers, appearanceEntry{id: id, handler: handler})
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		for i, e := range a.handlers {
			if e.id == id {
				a.handlers = append(a.handlers[:i], a.handlers[i+1:]...)
				return
			}
		}
	}
}

// Update sets the brightness and notifies handlers if it changed. Handlers
// run synchronously on the caller's goroutine, outside the service lock.
// A panicking handler is reported and does not stop the others.
func (a *AppearanceService) Update(brightness theme.Brightness) {
	a.mu.Lock()
	if a.brightness == brightness {
		a.mu.Unlock()
		return
	}
	a.brightness = brightness
	handlers := make([]appearanceEntry, len(a.handlers))
	copy(handlers, a.handlers)
	a.mu.Unlock()

	for _, e := range handlers {
		a.dispatch(e.handler, brightness)
	}
}

func (a *AppearanceService) dispatch(h AppearanceHandler, b theme.Brightness) {
	defer errors.Recover("platform.AppearanceService.Update")
	h(b)
}

// HandleEvent applies a raw host event of the form {"brightness": "dark"}.
// Malformed events are reported and ignored.
func (a *AppearanceService) HandleEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		reportAppearanceParse("event", data)
		return
	}
	raw, ok := m["brightness"].(string)
	if !ok {
		reportAppearanceParse("event.brightness", m["brightness"])
		return
	}
	b, ok := theme.ParseBrightness(raw)
	if !ok {
		reportAppearanceParse("event.brightness", raw)
		return
	}
	a.Update(b)
}

func reportAppearanceParse(field string, got any) {
	errors.ReportError("platform.AppearanceService.HandleEvent", errors.KindParsing,
		&errors.ParseError{Field: field, DataType: "Brightness", Got: got})
}
