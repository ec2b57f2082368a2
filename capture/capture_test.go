package capture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "Empty", input: "", ok: false},
		{name: "Blank", input: "   ", ok: false},
		{name: "Already png", input: "shot.png", expected: "shot.png", ok: true},
		{name: "Upper case extension", input: "shot.PNG", expected: "shot.PNG", ok: true},
		{name: "No extension", input: "shot", expected: "shot.png", ok: true},
		{name: "Other extension kept", input: "shot.jpg", expected: "shot.jpg", ok: true},
		{name: "Dot in directory only", input: "out.d/shot", expected: "out.d/shot.png", ok: true},
		{name: "Trimmed", input: "  dir/shot  ", expected: "dir/shot.png", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePath(tt.input)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), DefaultName)
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode written file: %v", err)
	}

	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
	if r, g, b, _ := decoded.At(1, 2).RGBA(); r != 0 || g != 0 || b != 0xffff {
		t.Errorf("Expected blue pixel at (1, 2), got %d %d %d", r, g, b)
	}
}

func TestWritePNGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultName)

	if err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Errorf("Expected error writing into a missing directory")
	}
}
