package typeset

import (
	"bytes"
	"errors"
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/certgen"
)

func goFonts() FontBuffers {
	return FontBuffers{
		Regular:  goregular.TTF,
		Medium:   gomedium.TTF,
		SemiBold: gobold.TTF,
	}
}

func loadGoFonts(t *testing.T) *FontSet {
	t.Helper()
	fs, err := LoadFontSet(goFonts())
	if err != nil {
		t.Fatalf("LoadFontSet() error = %v", err)
	}
	return fs
}

// TestFontRoleString tests FontRole.String method.
func TestFontRoleString(t *testing.T) {
	tests := []struct {
		role FontRole
		want string
	}{
		{Regular, "Regular"},
		{Medium, "Medium"},
		{SemiBold, "SemiBold"},
		{FontRole(42), unknownStr},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.role.String(); got != tt.want {
				t.Errorf("FontRole(%d).String() = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

// TestLoadFontSetErrors tests that any missing or malformed face is fatal.
func TestLoadFontSetErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*FontBuffers)
		resource string
		missing  bool
	}{
		{"missing regular", func(b *FontBuffers) { b.Regular = nil }, "font:Regular", true},
		{"missing medium", func(b *FontBuffers) { b.Medium = nil }, "font:Medium", true},
		{"missing semibold", func(b *FontBuffers) { b.SemiBold = []byte{} }, "font:SemiBold", true},
		{"malformed medium", func(b *FontBuffers) { b.Medium = []byte("definitely not a font") }, "font:Medium", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffers := goFonts()
			tt.mutate(&buffers)

			fs, err := LoadFontSet(buffers)
			if err == nil {
				t.Fatal("LoadFontSet() error = nil, want error")
			}
			if fs != nil {
				t.Error("LoadFontSet() returned a partial FontSet")
			}

			var loadErr *certgen.ResourceLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error %v is not a *certgen.ResourceLoadError", err)
			}
			if loadErr.Resource != tt.resource {
				t.Errorf("Resource = %q, want %q", loadErr.Resource, tt.resource)
			}
			if got := errors.Is(err, ErrMissingFont); got != tt.missing {
				t.Errorf("errors.Is(err, ErrMissingFont) = %v, want %v", got, tt.missing)
			}
			if !errors.Is(err, certgen.ErrResourceLoad) {
				t.Error("error does not match certgen.ErrResourceLoad")
			}
		})
	}
}

// TestLoadFontSetCopiesData tests that the caller's buffers can be reused.
func TestLoadFontSetCopiesData(t *testing.T) {
	buffers := goFonts()
	regular := append([]byte(nil), buffers.Regular...)
	buffers.Regular = regular

	fs, err := LoadFontSet(buffers)
	if err != nil {
		t.Fatalf("LoadFontSet() error = %v", err)
	}
	before := fs.Measure(Regular, "Constancia", 12)

	for i := range regular {
		regular[i] = 0
	}

	if !bytes.Equal(fs.Bytes(Regular), goregular.TTF) {
		t.Error("FontSet shares the caller's buffer")
	}
	if after := fs.Measure(Regular, "Constancia", 12); after != before {
		t.Errorf("Measure changed after caller mutation: %v != %v", after, before)
	}
}

// TestMeasureAdditive tests the additive width contract.
func TestMeasureAdditive(t *testing.T) {
	fs := loadGoFonts(t)
	const size = 12.0

	for _, role := range Roles {
		t.Run(role.String(), func(t *testing.T) {
			whole := fs.Measure(role, "Taller de Ventas", size)
			parts := fs.Measure(role, "Taller", size) +
				fs.Measure(role, "de", size) +
				fs.Measure(role, "Ventas", size) +
				2*fs.Measure(role, " ", size)
			if math.Abs(whole-parts) > 1e-9 {
				t.Errorf("Measure(%q) = %v, sum of parts = %v", "Taller de Ventas", whole, parts)
			}
		})
	}
}

// TestMeasureScalesWithSize tests linear scaling and determinism.
func TestMeasureScalesWithSize(t *testing.T) {
	fs := loadGoFonts(t)

	w12 := fs.Measure(SemiBold, "“Ventas”,", 12)
	w24 := fs.Measure(SemiBold, "“Ventas”,", 24)
	if w12 <= 0 {
		t.Fatalf("Measure() = %v, want > 0", w12)
	}
	if math.Abs(w24-2*w12) > 1e-9 {
		t.Errorf("Measure at 24pt = %v, want %v", w24, 2*w12)
	}
	if again := fs.Measure(SemiBold, "“Ventas”,", 12); again != w12 {
		t.Errorf("Measure() not deterministic: %v != %v", again, w12)
	}
}

// TestSpaceWidthUsesRegular tests that spaces always come from the Regular face.
func TestSpaceWidthUsesRegular(t *testing.T) {
	fs := loadGoFonts(t)

	got := fs.SpaceWidth(14)
	want := fs.Measure(Regular, " ", 14)
	if got != want || got <= 0 {
		t.Errorf("SpaceWidth(14) = %v, want %v (> 0)", got, want)
	}
}

func TestMeasureEdgeCases(t *testing.T) {
	fs := loadGoFonts(t)

	if got := fs.Measure(Regular, "", 12); got != 0 {
		t.Errorf("Measure(empty) = %v, want 0", got)
	}
	if got := fs.Measure(Regular, "abc", 0); got != 0 {
		t.Errorf("Measure(size 0) = %v, want 0", got)
	}
	if got := fs.Measure(FontRole(9), "abc", 12); got != 0 {
		t.Errorf("Measure(unknown role) = %v, want 0", got)
	}
}

// TestMeasureConcurrent tests that a shared FontSet can be measured from
// many goroutines at once.
func TestMeasureConcurrent(t *testing.T) {
	fs := loadGoFonts(t)
	want := fs.Measure(Medium, "JUAN PÉREZ", 30)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got := fs.Measure(Medium, "JUAN PÉREZ", 30); got != want {
					t.Errorf("concurrent Measure() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
