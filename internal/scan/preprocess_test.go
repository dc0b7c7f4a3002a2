package scan

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayscale(t *testing.T) {
	t.Run("converts RGBA to single channel", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 4, 4))
		src.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

		gray := Grayscale(src)
		require.Equal(t, src.Bounds(), gray.Bounds())
		assert.Equal(t, uint8(255), gray.GrayAt(1, 1).Y)
		assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)
	})

	t.Run("passes grayscale input through", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 4, 4))
		assert.Same(t, src, Grayscale(src))
	})
}

func TestEqualizeHist(t *testing.T) {
	t.Run("stretches a low-contrast image to the full range", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 10, 10))
		// Two intensity levels squeezed into the middle of the range
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if x < 5 {
					src.SetGray(x, y, color.Gray{Y: 100})
				} else {
					src.SetGray(x, y, color.Gray{Y: 110})
				}
			}
		}

		dst := EqualizeHist(src)
		lo := dst.GrayAt(0, 0).Y
		hi := dst.GrayAt(9, 0).Y
		assert.Less(t, lo, hi)
		assert.Equal(t, uint8(255), hi, "highest occupied bin should map to white")
	})

	t.Run("uniform image survives unchanged in shape", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 8, 8))
		dst := EqualizeHist(src)
		assert.Equal(t, src.Bounds(), dst.Bounds())
	})
}

func TestGaussianBlur(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 11, 11))
	src.SetGray(5, 5, color.Gray{Y: 255})

	dst := GaussianBlur(src)
	require.Equal(t, src.Bounds(), dst.Bounds())

	// The impulse spreads into its neighborhood and loses peak intensity
	assert.Less(t, dst.GrayAt(5, 5).Y, uint8(255))
	assert.Greater(t, dst.GrayAt(4, 5).Y, uint8(0))
	assert.Greater(t, dst.GrayAt(5, 4).Y, uint8(0))
	// Far corner stays untouched
	assert.Equal(t, uint8(0), dst.GrayAt(0, 0).Y)
}

func TestAdaptiveThreshold(t *testing.T) {
	t.Run("output is strictly binary", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 32, 32))
		for i := range src.Pix {
			src.Pix[i] = uint8(i % 251)
		}

		dst := AdaptiveThreshold(src, 91, 11)
		for i, p := range dst.Pix {
			if p != 0 && p != 255 {
				t.Fatalf("pixel %d = %d, want 0 or 255", i, p)
			}
		}
	})

	t.Run("separates foreground from background under a gradient", func(t *testing.T) {
		// Dark bars on a bright field; local mean keeps them separable
		src := image.NewGray(image.Rect(0, 0, 20, 20))
		for y := 0; y < 20; y++ {
			for x := 0; x < 20; x++ {
				if x%4 == 0 {
					src.SetGray(x, y, color.Gray{Y: 30})
				} else {
					src.SetGray(x, y, color.Gray{Y: 200})
				}
			}
		}

		dst := AdaptiveThreshold(src, 5, 11)
		assert.Equal(t, uint8(0), dst.GrayAt(4, 10).Y, "bar pixel should binarize black")
		assert.Equal(t, uint8(255), dst.GrayAt(2, 10).Y, "field pixel should binarize white")
	})
}
