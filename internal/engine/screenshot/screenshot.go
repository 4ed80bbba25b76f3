// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Saver writes screenshots into a directory.
type Saver struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// New creates a saver writing <prefix>_<timestamp>.png files to outputDir.
func New(outputDir, prefix string) *Saver {
	return &Saver{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next screenshot is written to.
func (s *Saver) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", s.prefix, timestamp))
}

// Save writes RGBA pixels as read back from OpenGL, bottom row first,
// and returns the file path.
func (s *Saver) Save(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	filename := s.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, flip(pixels, width, height)); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// flip copies bottom-up rows into a top-down image.
func flip(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img
}
