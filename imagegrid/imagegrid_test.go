package imagegrid_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccl/imagegrid"
)

// grayImage builds an image.Gray from 8-bit luma rows.
func grayImage(rows [][]uint8) *image.Gray {
	h, w := len(rows), len(rows[0])
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, v := range row {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return img
}

// TestBinarize_DefaultThreshold verifies the default convention: only
// pure white (255) is background.
func TestBinarize_DefaultThreshold(t *testing.T) {
	img := grayImage([][]uint8{
		{0, 255, 254},
		{128, 255, 1},
	})

	grid, err := imagegrid.Binarize(img)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{true, false, true},
		{true, false, true},
	}, grid)
}

// TestBinarize_CustomThreshold checks the strict-below semantics of
// WithWhiteThreshold, including the degenerate t == 0 case.
func TestBinarize_CustomThreshold(t *testing.T) {
	img := grayImage([][]uint8{{10, 127, 128, 200}})

	grid, err := imagegrid.Binarize(img, imagegrid.WithWhiteThreshold(128))
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, true, false, false}}, grid)

	none, err := imagegrid.Binarize(img, imagegrid.WithWhiteThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, false, false, false}}, none)
}

// TestBinarize_EmptyImage rejects images with no pixels.
func TestBinarize_EmptyImage(t *testing.T) {
	_, err := imagegrid.Binarize(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, imagegrid.ErrEmptyImage)
}

// TestBinarize_OffsetBounds ensures images whose bounds do not start at
// the origin are read correctly.
func TestBinarize_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(3, 2, 5, 4))
	img.SetGray(3, 2, color.Gray{Y: 0})   // top-left: foreground
	img.SetGray(4, 3, color.Gray{Y: 255}) // bottom-right: background
	img.SetGray(4, 2, color.Gray{Y: 255})
	img.SetGray(3, 3, color.Gray{Y: 255})

	grid, err := imagegrid.Binarize(img)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{true, false},
		{false, false},
	}, grid)
}

// TestRender_Alignment covers padding once labels grow past one digit.
func TestRender_Alignment(t *testing.T) {
	out := imagegrid.Render([][]int{
		{0, 1, 10},
		{2, 0, 0},
	})
	want := " .  1 10\n" +
		" 2  .  .\n"
	assert.Equal(t, want, out)
}

// TestRender_SingleDigit keeps the compact single-width form when no
// label needs more room.
func TestRender_SingleDigit(t *testing.T) {
	out := imagegrid.Render([][]int{
		{0, 1},
		{2, 0},
	})
	assert.Equal(t, ". 1\n2 .\n", out)
}

// TestColorize_BasicProperties checks dimensions, opaque black background,
// and that distinct labels receive distinct colors while equal labels
// match.
func TestColorize_BasicProperties(t *testing.T) {
	labels := [][]int{
		{0, 1, 1},
		{2, 0, 1},
	}

	img := imagegrid.Colorize(labels)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	background := img.RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{A: 0xff}, background)

	one := img.RGBAAt(1, 0)
	assert.Equal(t, one, img.RGBAAt(2, 0), "same label, same color")
	assert.Equal(t, one, img.RGBAAt(2, 1))

	two := img.RGBAAt(0, 1)
	assert.NotEqual(t, one, two, "distinct labels, distinct colors")
	assert.EqualValues(t, 0xff, two.A, "label colors are opaque")
}
