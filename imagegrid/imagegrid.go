package imagegrid

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrEmptyImage indicates an image whose bounds contain no pixels.
var ErrEmptyImage = errors.New("imagegrid: image bounds contain no pixels")

// DefaultWhiteThreshold marks every pixel that is not pure white as
// foreground, matching the common convention for binarized scans.
const DefaultWhiteThreshold uint8 = 255

// Option configures Binarize via functional arguments.
type Option func(*options)

type options struct {
	whiteThreshold uint8
}

// WithWhiteThreshold sets the grayscale cut-off: pixels with 8-bit luma
// strictly below t become foreground. t == 0 classifies every pixel as
// background.
func WithWhiteThreshold(t uint8) Option {
	return func(o *options) {
		o.whiteThreshold = t
	}
}

// Binarize reduces img to a boolean grid, row-major, one entry per pixel
// of img.Bounds(). A pixel is foreground when its 8-bit grayscale value is
// strictly below the white threshold.
// Returns ErrEmptyImage when the bounds contain no pixels.
// Complexity: O(W×H).
func Binarize(img image.Image, opts ...Option) ([][]bool, error) {
	o := options{whiteThreshold: DefaultWhiteThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	if h == 0 || w == 0 {
		return nil, ErrEmptyImage
	}

	grid := make([][]bool, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			gray := color.GrayModel.Convert(px).(color.Gray)
			grid[y][x] = gray.Y < o.whiteThreshold
		}
	}

	return grid, nil
}

// Render formats a label grid as text: one line per row, cells separated
// by single spaces, '.' for background. Columns are padded to the width
// of the largest label so rows stay aligned.
// Complexity: O(W×H).
func Render(labels [][]int) string {
	width := 1
	for _, row := range labels {
		for _, l := range row {
			if n := len(strconv.Itoa(l)); n > width {
				width = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range labels {
		for x, l := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if l > 0 {
				cell = strconv.Itoa(l)
			}
			for pad := width - len(cell); pad > 0; pad-- {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Colorize paints a label grid into an RGBA image: background pixels are
// black, each label gets a hue stepped around the color wheel by the
// golden angle, which keeps neighboring label values visually distinct.
// Complexity: O(W×H).
func Colorize(labels [][]int) *image.RGBA {
	h := len(labels)
	w := 0
	if h > 0 {
		w = len(labels[0])
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := labels[y][x]
			if l == 0 {
				img.SetRGBA(x, y, color.RGBA{A: 0xff})
				continue
			}
			img.SetRGBA(x, y, labelColor(l))
		}
	}

	return img
}

// goldenAngle in turns: successive labels land far apart on the hue wheel.
const goldenAngle = 0.61803398875

// labelColor maps a positive label to a saturated, fully opaque color.
func labelColor(l int) color.RGBA {
	hue := math.Mod(float64(l)*goldenAngle, 1.0)
	r, g, b := hsvToRGB(hue, 0.85, 0.95)

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// hsvToRGB converts hue (in turns), saturation and value in [0,1] to
// 8-bit RGB channels.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
