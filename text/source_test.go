package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	defer src.Close()

	if got := src.Name(); got != "Go Regular" {
		t.Errorf("Name() = %q, want %q", got, "Go Regular")
	}
	if got := src.Family(); got != "Go" {
		t.Errorf("Family() = %q, want %q", got, "Go")
	}
	if got := src.Upem(); got != 2048 {
		t.Errorf("Upem() = %d, want 2048", got)
	}
	if got := src.NumGlyphs(); got < 100 {
		t.Errorf("NumGlyphs() = %d, want >= 100", got)
	}
}

func TestNewFontSourceWithName(t *testing.T) {
	src, err := NewFontSource(gobold.TTF, WithName("Headline"))
	if err != nil {
		t.Fatal(err)
	}
	if src.Name() != "Headline" {
		t.Errorf("Name() = %q, want Headline", src.Name())
	}
	if src.FullName() != "Go Bold" {
		t.Errorf("FullName() = %q, want Go Bold", src.FullName())
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	_, err := NewFontSource([]byte("definitely not a font"), WithName("junk"))
	var fe *FontError
	if !errors.As(err, &fe) {
		t.Fatalf("NewFontSource(junk) error = %v, want *FontError", err)
	}
	if fe.Font != "junk" || fe.Err == nil {
		t.Errorf("FontError = %+v", fe)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	if src.Family() != "Go" {
		t.Errorf("Family() = %q", src.Family())
	}
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestFontSourceMetrics(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	m, err := src.Metrics(50)
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics(50) = %+v, want positive ascent and descent", m)
	}
	if m.Ascent > 100 {
		t.Errorf("Ascent = %v, implausible for 50px", m.Ascent)
	}
}

func TestFontSourceClose(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := src.Face(20)
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := NewOutlineExtractor().Extract(face, 36); !errors.Is(err, ErrClosedSource) {
		t.Errorf("Extract after Close error = %v, want ErrClosedSource", err)
	}
	if _, err := src.Metrics(20); !errors.Is(err, ErrClosedSource) {
		t.Errorf("Metrics after Close error = %v, want ErrClosedSource", err)
	}
	if got := GetShaper().Shape("Hi", face); len(got) != 0 {
		t.Errorf("Shape after Close = %d glyphs, want 0", len(got))
	}
}

func TestFaceOptions(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := src.Face(12, WithDirection(DirectionRTL), WithLanguage("ar"))
	if face.Size() != 12 || face.Direction() != DirectionRTL || face.Language() != "ar" {
		t.Errorf("face = size %v dir %v lang %q", face.Size(), face.Direction(), face.Language())
	}
	if face.Source() != src {
		t.Error("Source() does not return the creating source")
	}

	def := src.Face(12)
	if def.Direction() != DirectionLTR || def.Language() != "en" {
		t.Errorf("default face dir %v lang %q", def.Direction(), def.Language())
	}
}

func TestFaceNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face on nil source did not panic")
		}
	}()
	var src *FontSource
	src.Face(10)
}
