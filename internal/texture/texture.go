// Package texture decodes texture images and generates stand-in textures
// when no image file is configured.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/aquilax/go-perlin"
)

func Load(fileName string) (image.Image, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open texture %s: %w", fileName, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("error decoding texture %s: %w", fileName, err)
	}
	return img, nil
}

// Decode reads a png, jpeg, gif, bmp, tiff or webp image.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%s image is empty", format)
	}
	return img, nil
}

// Checker draws a cells x cells checkerboard alternating between a and b.
func Checker(width, height, cells int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cells = max(cells, 1)
	for y := 0; y < height; y++ {
		cy := y * cells / height
		for x := 0; x < width; x++ {
			cx := x * cells / width
			if (cx+cy)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 4
	// noiseScale is how many noise periods span the texture width.
	noiseScale = 6.0
)

var planetPalette = []struct {
	level float64
	c     color.RGBA
}{
	{-0.10, color.RGBA{R: 18, G: 46, B: 112, A: 255}},  // deep water
	{0.00, color.RGBA{R: 40, G: 94, B: 170, A: 255}},   // shallow water
	{0.04, color.RGBA{R: 214, G: 196, B: 142, A: 255}}, // beach
	{0.20, color.RGBA{R: 62, G: 128, B: 52, A: 255}},   // lowland
	{0.35, color.RGBA{R: 110, G: 98, B: 80, A: 255}},   // hills
	{math.Inf(1), color.RGBA{R: 240, G: 240, B: 245, A: 255}},
}

// Noise paints a planet-like texture from Perlin noise. The noise is sampled
// on a cylinder so the left and right edges meet without a seam when the
// image is wrapped around a sphere, and the poles fade to ice.
func Noise(width, height int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	r := noiseScale / (2 * math.Pi)

	for y := 0; y < height; y++ {
		v := float64(y) / float64(height)
		// latitude, 0 at the equator and 1 at the poles
		lat := math.Abs(v*2 - 1)
		for x := 0; x < width; x++ {
			angle := 2 * math.Pi * float64(x) / float64(width)
			h := p.Noise3D(r*math.Cos(angle), r*math.Sin(angle), v*noiseScale/2)
			if lat > 0.85 {
				h = math.Inf(1)
			}
			img.SetRGBA(x, y, paletteColor(h))
		}
	}
	return img
}

func paletteColor(h float64) color.RGBA {
	for _, e := range planetPalette {
		if h < e.level {
			return e.c
		}
	}
	return planetPalette[len(planetPalette)-1].c
}
