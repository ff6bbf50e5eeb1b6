package typeset

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignLeft, "Left"},
		{AlignJustify, "Justify"},
		{Alignment(7), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func offsets(runs []PositionedRun) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = r.X
	}
	return out
}

// TestJustify tests justified and left-aligned offsets.
func TestJustify(t *testing.T) {
	tests := []struct {
		name     string
		line     Line
		maxWidth float64
		want     []float64
	}{
		{
			name:     "justified",
			line:     Line{Runs: words("aa", "bb", "cc")},
			maxWidth: 12,
			want:     []float64{0, 5, 10},
		},
		{
			name:     "last line left aligned",
			line:     Line{Runs: words("aa", "bb", "cc"), Last: true},
			maxWidth: 12,
			want:     []float64{0, 3, 6},
		},
		{
			name:     "single run left aligned",
			line:     Line{Runs: words("aaaa")},
			maxWidth: 12,
			want:     []float64{0},
		},
		{
			name:     "already full",
			line:     Line{Runs: words("aa", "bb")},
			maxWidth: 5,
			want:     []float64{0, 3},
		},
		{
			name:     "empty",
			line:     Line{},
			maxWidth: 5,
			want:     []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offsets(Justify(&tt.line, tt.maxWidth, uniform, 10))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Justify() offsets = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestJustifyEndsAtMargin tests that a justified line spans maxWidth exactly.
func TestJustifyEndsAtMargin(t *testing.T) {
	m := unitMeasurer{Regular: 1, SemiBold: 1.5}
	line := Line{Runs: []WordRun{
		{Text: "por", Role: Regular},
		{Text: "“Taller", Role: SemiBold},
		{Text: "de", Role: SemiBold},
	}}

	runs := Justify(&line, 30, m, 10)
	last := runs[len(runs)-1]
	if end := last.X + last.Width; end != 30 {
		t.Errorf("last word ends at %v, want 30", end)
	}
}

// TestJustifyIdempotent tests that justification is deterministic.
func TestJustifyIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	m := unitMeasurer{Regular: 1, Medium: 1.1, SemiBold: 1.3}

	for range 50 {
		runs := make([]WordRun, 2+rng.IntN(8))
		for i := range runs {
			runs[i] = WordRun{Text: strings.Repeat("y", 1+rng.IntN(6)), Role: Roles[rng.IntN(3)]}
		}
		line := Line{Runs: runs}
		maxWidth := line.Width(m, 12) + rng.Float64()*40

		first := Justify(&line, maxWidth, m, 12)
		second := Justify(&line, maxWidth, m, 12)
		if !slices.Equal(first, second) {
			t.Fatalf("Justify() not idempotent: %v != %v", first, second)
		}
	}
}

// TestWrappedLinesNeverShrink tests that every justified line produced by
// Wrap has non-negative extra spacing when each run fits on its own.
func TestWrappedLinesNeverShrink(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	m := unitMeasurer{Regular: 1, Medium: 1.2, SemiBold: 1.4}
	const maxWidth = 60

	for range 200 {
		runs := make([]WordRun, 1+rng.IntN(30))
		for i := range runs {
			runs[i] = WordRun{Text: strings.Repeat("z", 1+rng.IntN(10)), Role: Roles[rng.IntN(3)]}
		}
		for _, l := range Wrap(runs, maxWidth, m, 10) {
			if _, err := JustifyChecked(&l, maxWidth, m, 10); err != nil {
				t.Fatalf("JustifyChecked(%q) error = %v", texts(l), err)
			}
		}
	}
}

func TestJustifyCheckedNegative(t *testing.T) {
	line := Line{Runs: words("aaaa", "bbbb")}
	_, err := JustifyChecked(&line, 5, uniform, 10)
	if !errors.Is(err, ErrNegativeSpacing) {
		t.Errorf("JustifyChecked() error = %v, want ErrNegativeSpacing", err)
	}
}

func TestLineAlignment(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want Alignment
	}{
		{"multi word", Line{Runs: words("a", "b")}, AlignJustify},
		{"last", Line{Runs: words("a", "b"), Last: true}, AlignLeft},
		{"single", Line{Runs: words("a")}, AlignLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineAlignment(&tt.line); got != tt.want {
				t.Errorf("LineAlignment() = %v, want %v", got, tt.want)
			}
		})
	}
}
