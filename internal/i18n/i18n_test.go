package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/danmuck/memberbar/internal/testutil/testlog"
)

func TestTranslatorFallsBackToSource(t *testing.T) {
	testlog.Start(t)
	tr := New("")
	if got := tr.T("Log In"); got != "Log In" {
		t.Fatalf("unexpected base translation: %q", got)
	}
	if tr.Locale() != "en-US" {
		t.Fatalf("unexpected locale: %q", tr.Locale())
	}
}

func TestTranslatorSpanish(t *testing.T) {
	testlog.Start(t)
	tr := New("es-MX")
	if got := tr.T("Log In"); got != "Acceder" {
		t.Fatalf("unexpected spanish translation: %q", got)
	}
	if got := tr.T("Unlisted title"); got != "Unlisted title" {
		t.Fatalf("missing key should pass through, got %q", got)
	}
}

func TestNilTranslatorIsIdentity(t *testing.T) {
	testlog.Start(t)
	var tr *Translator
	if tr.T("Register") != "Register" || tr.Number(3) != "3" {
		t.Fatalf("nil translator should pass through")
	}
}

func TestNumber(t *testing.T) {
	testlog.Start(t)
	if got := New("en-US").Number(7); got != "7" {
		t.Fatalf("unexpected number: %q", got)
	}
}

func TestSupportedIncludesEmbedded(t *testing.T) {
	testlog.Start(t)
	got := Supported()
	if len(got) < 2 || got[0] != "en-US" {
		t.Fatalf("unexpected supported locales: %v", got)
	}
}

func TestLoadFromFSRejectsBadLocale(t *testing.T) {
	testlog.Start(t)
	fsys := fstest.MapFS{
		"locales/bad.yaml": {Data: []byte("locale: \"!!\"\nmessages:\n  a: b\n")},
	}
	if _, _, err := LoadFromFS(fsys); err == nil {
		t.Fatalf("expected locale parse error")
	}
}
