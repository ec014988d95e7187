// Package debug provides frame capture for bug reports.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Format is a screenshot image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat accepts "png" or "bmp". Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatBMP:
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("unknown screenshot format %q", s)
	}
}

func (f Format) encode(w io.Writer, img image.Image) error {
	if f == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// ScreenshotCapture writes frames to timestamped image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string, format Format) *ScreenshotCapture {
	if format == "" {
		format = FormatPNG
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// GenerateFilename returns the path the next capture would be written to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// CaptureFromPixels saves RGBA pixel rows read back from OpenGL, bottom row
// first. It returns the written path.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := sc.format.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	return filename, nil
}
