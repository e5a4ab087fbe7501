package outcome

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "outcome.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// ---------------------------------------------------------------------------
// LoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfigStoresProfiles(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
		"handlers": {
			"checkout": {
				"dialog_title": "Offline",
				"retry_label": "Try again",
				"error_styling": true
			}
		}
	}`)

	reg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	hc, ok := reg.Config("checkout")
	if !ok {
		t.Fatal("profile checkout not stored")
	}
	if hc.DialogTitle == nil || *hc.DialogTitle != "Offline" {
		t.Errorf("DialogTitle = %v, want Offline", hc.DialogTitle)
	}
	if hc.ErrorStyling == nil || !*hc.ErrorStyling {
		t.Error("ErrorStyling not decoded")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("LoadConfig on a missing file returned nil error")
	}
}

func TestLoadConfigMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"handlers": `)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig on malformed JSON returned nil error")
	}
}

// ---------------------------------------------------------------------------
// GetHandler: config options applied, user options win
// ---------------------------------------------------------------------------

func TestGetHandlerAppliesProfile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
		"handlers": {
			"checkout": {"dialog_title": "Offline", "retry_label": "Try again"}
		}
	}`)

	reg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	p := &fakePresenter{}
	h := GetHandler[string](reg, "checkout", p)

	h.Handle(NetworkError[string](), nil)

	d := p.dialogs[0]
	if d.title != "Offline" || d.choices[0].Label != "Try again" {
		t.Fatalf("dialog = (%q, %q), want profile values", d.title, d.choices[0].Label)
	}
}

func TestGetHandlerUserOptionsOverrideProfile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{
		"handlers": {"checkout": {"dialog_title": "Offline"}}
	}`)

	reg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	p := &fakePresenter{}
	h := GetHandler[string](reg, "checkout", p, WithDialogTitle("Still Offline"))

	h.Handle(NetworkError[string](), nil)

	if got := p.dialogs[0].title; got != "Still Offline" {
		t.Fatalf("title = %q, want user override", got)
	}
}

func TestGetHandlerUnknownNameUsesDefaults(t *testing.T) {
	t.Parallel()

	p := &fakePresenter{}
	h := GetHandler[string](NewRegistry(), "nope", p)

	h.Handle(NetworkError[string](), nil)

	if got := p.dialogs[0].title; got != DefaultDialogTitle {
		t.Fatalf("title = %q, want package default", got)
	}
}

// ---------------------------------------------------------------------------
// BuildOptions
// ---------------------------------------------------------------------------

func TestBuildOptionsEmptyProfile(t *testing.T) {
	t.Parallel()

	if opts := BuildOptions(&HandlerConfig{}); len(opts) != 0 {
		t.Fatalf("BuildOptions(empty) produced %d options, want 0", len(opts))
	}
}

func TestBuildOptionsRouting(t *testing.T) {
	t.Parallel()

	route := true
	opts := BuildOptions(&HandlerConfig{RouteRawErrors: &route})

	p := &fakePresenter{}
	h := NewHandler[int](p, opts...)

	v := Loading[int]()
	v.SetError(nil)
	Observe(v, h, nil)

	if len(p.dialogs) != 1 {
		t.Fatal("route_raw_errors profile flag was not applied")
	}
}
