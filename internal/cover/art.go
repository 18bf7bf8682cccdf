// Package cover renders track covers for the terminal: image art scaled
// to character cells, embedded tag artwork, and looping video clips.
package cover

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhowden/tag"
	"github.com/nfnt/resize"
)

// Renderer turns cover images into half-block art. Results are cached per
// asset and size, failures included, since a cover is re-rendered on
// every frame.
type Renderer struct {
	mu    sync.Mutex
	cache map[cacheKey]rendered
}

type rendered struct {
	art string
	err error
}

type cacheKey struct {
	asset, source string
	width, height int
}

// NewRenderer creates a renderer with an empty cache.
func NewRenderer() *Renderer {
	return &Renderer{cache: make(map[cacheKey]rendered)}
}

// Render draws the cover image at asset into width x height cells. When
// asset is empty the artwork embedded in the audio file at source is used.
func (r *Renderer) Render(asset, source string, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", nil
	}
	key := cacheKey{asset, source, width, height}

	r.mu.Lock()
	if c, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return c.art, c.err
	}
	r.mu.Unlock()

	var c rendered
	img, err := loadImage(asset, source)
	if err != nil {
		c.err = err
	} else {
		c.art = HalfBlocks(img, width, height)
	}

	r.mu.Lock()
	r.cache[key] = c
	r.mu.Unlock()
	return c.art, c.err
}

func loadImage(asset, source string) (image.Image, error) {
	if asset != "" {
		f, err := os.Open(asset)
		if err != nil {
			return nil, fmt.Errorf("failed to open cover: %w", err)
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode cover %s: %w", asset, err)
		}
		return img, nil
	}
	return Embedded(source)
}

// Embedded returns the artwork stored in an audio file's tags.
func Embedded(source string) (image.Image, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, fmt.Errorf("no embedded artwork in %s", source)
	}
	img, _, err := image.Decode(bytes.NewReader(pic.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode embedded artwork: %w", err)
	}
	return img, nil
}

// HalfBlocks scales img to width x height cells, two pixels per cell, and
// renders each cell as an upper half block.
func HalfBlocks(img image.Image, width, height int) string {
	scaled := resize.Resize(uint(width), uint(height*2), img, resize.Lanczos3)
	b := scaled.Bounds()

	lines := make([]string, 0, height)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var line strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexColor(scaled.At(x, y).RGBA())
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hexColor(scaled.At(x, y+1).RGBA())
			}
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		lines = append(lines, line.String())
		if len(lines) == height {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func hexColor(r, g, b, _ uint32) string {
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
