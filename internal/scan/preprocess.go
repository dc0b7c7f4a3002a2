package scan

import (
	"image"
	"image/color"
)

// Grayscale converts any raster frame to a single-channel image using the
// standard luminance weights.
func Grayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}

// EqualizeHist stretches the grayscale histogram over the full intensity
// range, improving contrast on washed-out frames.
func EqualizeHist(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return src
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[src.GrayAt(x, y).Y]++
		}
	}

	// Cumulative distribution, remapped so the lowest occupied bin lands at 0
	var lut [256]uint8
	cdf := 0
	cdfMin := -1
	for i, count := range hist {
		cdf += count
		if cdfMin < 0 && count > 0 {
			cdfMin = cdf
		}
		if cdfMin >= 0 && total > cdfMin {
			lut[i] = uint8((cdf - cdfMin) * 255 / (total - cdfMin))
		} else {
			lut[i] = uint8(i)
		}
	}

	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: lut[src.GrayAt(x, y).Y]})
		}
	}
	return dst
}

// gaussian5 is the separable 5-tap binomial kernel (sum 16).
var gaussian5 = [5]int{1, 4, 6, 4, 1}

// GaussianBlur applies a 5x5 Gaussian blur, smoothing sensor noise that can
// break edge detection on grainy frames.
func GaussianBlur(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return src
	}

	clampX := func(x int) int {
		if x < bounds.Min.X {
			return bounds.Min.X
		}
		if x >= bounds.Max.X {
			return bounds.Max.X - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < bounds.Min.Y {
			return bounds.Min.Y
		}
		if y >= bounds.Max.Y {
			return bounds.Max.Y - 1
		}
		return y
	}

	// Horizontal pass
	tmp := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += gaussian5[k+2] * int(src.GrayAt(clampX(x+k), y).Y)
			}
			tmp.SetGray(x, y, color.Gray{Y: uint8(sum / 16)})
		}
	}

	// Vertical pass
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum := 0
			for k := -2; k <= 2; k++ {
				sum += gaussian5[k+2] * int(tmp.GrayAt(x, clampY(y+k)).Y)
			}
			dst.SetGray(x, y, color.Gray{Y: uint8(sum / 16)})
		}
	}
	return dst
}

// AdaptiveThreshold binarizes against a local neighborhood mean: a pixel
// becomes white when it exceeds the mean of its blockSize×blockSize window
// minus the constant c. Local means come from an integral image so the large
// default window stays cheap.
func AdaptiveThreshold(src *image.Gray, blockSize int, c int) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return src
	}
	if blockSize < 3 {
		blockSize = 3
	}
	if blockSize%2 == 0 {
		blockSize++
	}

	// Integral image, one extra row and column of zeros
	integral := make([][]int64, h+1)
	integral[0] = make([]int64, w+1)
	for y := 0; y < h; y++ {
		integral[y+1] = make([]int64, w+1)
		var rowSum int64
		for x := 0; x < w; x++ {
			rowSum += int64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := blockSize / 2
	dst := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		y0, y1 := y-half, y+half+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		for x := 0; x < w; x++ {
			x0, x1 := x-half, x+half+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > w {
				x1 = w
			}

			area := int64((y1 - y0) * (x1 - x0))
			sum := integral[y1][x1] - integral[y0][x1] - integral[y1][x0] + integral[y0][x0]
			mean := sum / area

			pixel := int64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			if pixel > mean-int64(c) {
				dst.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: 255})
			} else {
				dst.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: 0})
			}
		}
	}
	return dst
}
