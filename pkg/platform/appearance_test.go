package platform

import (
	"testing"

	"github.com/go-drift/skeleton/pkg/errors"
	"github.com/go-drift/skeleton/pkg/theme"
)

func TestAppearanceServiceNotifiesOnChange(t *testing.T) {
	a := NewAppearanceService(theme.BrightnessLight)
	var got []theme.Brightness
	a.AddHandler(func(b theme.Brightness) { got = append(got, b) })

	a.Update(theme.BrightnessLight)
	a.Update(theme.BrightnessDark)
	a.Update(theme.BrightnessDark)

	if len(got) != 1 || got[0] != theme.BrightnessDark {
		t.Errorf("handler calls = %v, want [dark]", got)
	}
	if !a.IsDark() {
		t.Error("IsDark() = false after switching to dark")
	}
}

func TestAppearanceServiceRemoveHandler(t *testing.T) {
	a := NewAppearanceService(theme.BrightnessLight)
	calls := 0
	remove := a.AddHandler(func(theme.Brightness) { calls++ })
	kept := 0
	a.AddHandler(func(theme.Brightness) { kept++ })

	remove()
	a.Update(theme.BrightnessDark)

	if calls != 0 || kept != 1 {
		t.Errorf("calls = %d kept = %d, want 0 and 1", calls, kept)
	}
}

type capturingHandler struct {
	errs   []*errors.LoaderError
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(err *errors.LoaderError) { h.errs = append(h.errs, err) }
func (h *capturingHandler) HandlePanic(err *errors.PanicError)  { h.panics = append(h.panics, err) }

func TestAppearanceServicePanickingHandlerIsReported(t *testing.T) {
	h := &capturingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	a := NewAppearanceService(theme.BrightnessLight)
	a.AddHandler(func(theme.Brightness) { panic("boom") })
	reached := false
	a.AddHandler(func(theme.Brightness) { reached = true })

	a.Update(theme.BrightnessDark)

	if len(h.panics) != 1 {
		t.Fatalf("reported panics = %d, want 1", len(h.panics))
	}
	if !reached {
		t.Error("second handler should still run")
	}
}

func TestAppearanceServiceHandleEvent(t *testing.T) {
	h := &capturingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	a := NewAppearanceService(theme.BrightnessLight)
	a.HandleEvent(map[string]any{"brightness": "dark"})
	if !a.IsDark() {
		t.Error("expected dark after event")
	}

	a.HandleEvent("dark")
	a.HandleEvent(map[string]any{"brightness": 1})
	a.HandleEvent(map[string]any{"brightness": "sepia"})
	if len(h.errs) != 3 {
		t.Errorf("reported errors = %d, want 3", len(h.errs))
	}
	if !a.IsDark() {
		t.Error("malformed events must not change brightness")
	}
}

func TestAppearanceServiceHandleMessage(t *testing.T) {
	h := &capturingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	a := NewAppearanceService(theme.BrightnessLight)
	a.HandleMessage([]byte(`{"brightness":"dark"}`))
	if !a.IsDark() {
		t.Fatal("expected dark after message")
	}

	a.HandleMessage([]byte(`{"brightness":`))
	a.HandleMessage(nil)
	if len(h.errs) != 2 {
		t.Errorf("reported errors = %d, want 2", len(h.errs))
	}
	if !a.IsDark() {
		t.Error("bad messages must not change brightness")
	}
}
