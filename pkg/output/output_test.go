package output

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

func testImage() *renderer.RenderedImage {
	img := renderer.NewRenderedImage(2, 1)
	img.SetRGB(0, 0, 255, 0, 10)
	img.SetRGB(1, 0, 1, 2, 3)
	return img
}

func TestPPMEncoder_ASCII(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPPMEncoder(255).Encode(&buf, testImage()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 0 10\n1 2 3\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestPPMEncoder_ClampsToMaxColor(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPPMEncoder(2).Encode(&buf, testImage()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := "P3\n2 1\n2\n2 0 2\n1 2 2\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}

	if err := NewPPMEncoder(0).Encode(&buf, testImage()); err == nil {
		t.Error("Expected error for max color 0")
	}
}

func TestPPMEncoder_Binary(t *testing.T) {
	var buf bytes.Buffer
	if err := NewBinaryPPMEncoder().Encode(&buf, testImage()); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	expected := append([]byte("P6\n2 1\n255\n"), 255, 0, 10, 1, 2, 3)
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("Expected %v, got %v", expected, buf.Bytes())
	}
}

func TestEncoderForPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"out.png", false},
		{"out.PNG", false},
		{"dir/out.ppm", false},
		{"out.pnm", true},
		{"out.jpg", true},
		{"out", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := EncoderForPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EncoderForPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "render.png")
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected bounds %v", decoded.Bounds())
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 10 || a>>8 != 255 {
		t.Errorf("Unexpected first pixel (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSaveWithBinaryPPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.ppm")
	if err := SaveWith(path, testImage(), NewBinaryPPMEncoder()); err != nil {
		t.Fatalf("SaveWith failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("P6\n")) || len(data) != len("P6\n2 1\n255\n")+6 {
		t.Errorf("Unexpected P6 file contents %q", data)
	}

	// The extension alone selects ASCII
	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !bytes.HasPrefix(data, []byte("P3\n")) {
		t.Errorf("Expected P3 for .ppm, got %q", data)
	}
}

func TestSaveUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.gif")
	if err := Save(path, testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file for an unsupported format")
	}
}
