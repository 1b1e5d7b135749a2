package blend

import (
	"errors"
	"image/color"
	"testing"
)

func TestPixel(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	clear := color.NRGBA{R: 255, G: 255, B: 255, A: 0}

	tests := []struct {
		name    string
		base    color.NRGBA
		overlay color.NRGBA
		mode    Mode
		opacity float64
		want    color.NRGBA
	}{
		{"opaque normal replaces", red, blue, ModeNormal, 1, blue},
		{"transparent overlay keeps base", red, clear, ModeMultiply, 1, red},
		{"zero opacity keeps base", red, blue, ModeNormal, 0, red},
		{"half normal", red, blue, ModeNormal, 0.5, color.NRGBA{R: 128, G: 0, B: 128, A: 255}},
		{"half multiply red/blue", red, blue, ModeMultiply, 0.5, color.NRGBA{R: 128, G: 0, B: 0, A: 255}},
		{"opaque onto empty", clear, blue, ModeMultiply, 1, blue},
		{
			"half normal onto empty takes overlay color",
			clear, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, ModeNormal, 0.5,
			color.NRGBA{R: 10, G: 20, B: 30, A: 128},
		},
		{
			"screen onto transparent white stays white",
			clear, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, ModeScreen, 0.5,
			color.NRGBA{R: 255, G: 255, B: 255, A: 128},
		},
		{"screen black is identity", color.NRGBA{R: 100, G: 150, B: 200, A: 255}, color.NRGBA{A: 255}, ModeScreen, 1, color.NRGBA{R: 100, G: 150, B: 200, A: 255}},
		{"difference with itself", red, red, ModeDifference, 1, color.NRGBA{A: 255}},
		{"opacity clamped above one", red, blue, ModeNormal, 3, blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pixel(tt.base, tt.overlay, tt.mode, tt.opacity)
			if got != tt.want {
				t.Errorf("Pixel() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPixelAlphaAccumulates verifies result_a = ov_a + base_a*(1-ov_a).
func TestPixelAlphaAccumulates(t *testing.T) {
	base := color.NRGBA{R: 255, A: 128}
	overlay := color.NRGBA{G: 255, A: 128}
	got := Pixel(base, overlay, ModeNormal, 1)

	ovA := 128.0 / 255
	baseA := 128.0 / 255
	wantA := toByte(ovA + baseA*(1-ovA))
	if got.A != wantA {
		t.Errorf("alpha = %d, want %d", got.A, wantA)
	}
	if got.R == 0 || got.G == 0 {
		t.Errorf("both colors should contribute, got %v", got)
	}
}

func TestOver(t *testing.T) {
	dst := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	src := []byte{
		0, 0, 255, 255,
		0, 0, 0, 0,
	}
	if err := Over(dst, src, ModeNormal, 1); err != nil {
		t.Fatalf("Over() error = %v", err)
	}
	want := []byte{
		0, 0, 255, 255,
		0, 255, 0, 255,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d (dst=%v)", i, dst[i], want[i], dst)
		}
	}
}

func TestOverLengthMismatch(t *testing.T) {
	tests := []struct {
		name     string
		dst, src []byte
	}{
		{"different lengths", make([]byte, 8), make([]byte, 4)},
		{"partial pixel", make([]byte, 6), make([]byte, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Over(tt.dst, tt.src, ModeNormal, 1); !errors.Is(err, ErrLengthMismatch) {
				t.Errorf("Over() error = %v, want ErrLengthMismatch", err)
			}
		})
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.5, 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkOver(b *testing.B) {
	const n = 512 * 512 * 4
	dst := make([]byte, n)
	src := make([]byte, n)
	for i := range src {
		src[i] = byte(i)
		dst[i] = byte(255 - i%256)
	}
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range []Mode{ModeNormal, ModeSoftLight} {
			_ = Over(dst, src, m, 0.75)
		}
	}
}
