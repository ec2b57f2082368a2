package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// DefaultName is offered in the save prompt.
const DefaultName = "screenshot.png"

// NormalizePath turns what the user typed into a file path, adding ".png"
// only when the name has no extension. It returns false when there is
// nothing to save to.
func NormalizePath(p string) (string, bool) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", false
	}

	if filepath.Ext(p) == "" {
		p += ".png"
	}

	return p, true
}

// WritePNG encodes img as PNG at path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close screenshot %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode screenshot %s: %w", path, err)
	}

	return nil
}
