// A minimal multi band image buffer used to collect decoded pixels
// and write them out as a viewable PNG. The core parsers never depend
// on this; it exists for the demo tooling and tests.

package vicar

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

type ImageBuffer struct {
	width  int
	height int
	bands  int
	data   [][]float32 // band major, rows within a band
}

func NewImageBuffer(width, height, bands int) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 || bands <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%dx%d",
			width, height, bands)
	}
	data := make([][]float32, bands)
	for b := range data {
		data[b] = make([]float32, width*height)
	}
	return &ImageBuffer{
		width:  width,
		height: height,
		bands:  bands,
		data:   data,
	}, nil
}

func (self *ImageBuffer) Width() int {
	return self.width
}

func (self *ImageBuffer) Height() int {
	return self.height
}

func (self *ImageBuffer) Bands() int {
	return self.bands
}

func (self *ImageBuffer) checkBounds(x, y, band int) error {
	if x < 0 || x >= self.width || y < 0 || y >= self.height ||
		band < 0 || band >= self.bands {
		return fmt.Errorf("pixel (%d,%d) band %d out of bounds", x, y, band)
	}
	return nil
}

func (self *ImageBuffer) Put(x, y, band int, value float32) error {
	if err := self.checkBounds(x, y, band); err != nil {
		return err
	}
	self.data[band][y*self.width+x] = value
	return nil
}

func (self *ImageBuffer) Get(x, y, band int) (float32, error) {
	if err := self.checkBounds(x, y, band); err != nil {
		return 0, err
	}
	return self.data[band][y*self.width+x], nil
}

// MinMax scans all bands.
func (self *ImageBuffer) MinMax() (float32, float32) {
	min := float32(math.Inf(1))
	max := float32(math.Inf(-1))
	for _, band := range self.data {
		for _, v := range band {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// NormalizeBetween linearly rescales the buffer so its current
// minimum maps to lo and its maximum to hi. A constant valued buffer
// is left untouched.
func (self *ImageBuffer) NormalizeBetween(lo, hi float32) {
	min, max := self.MinMax()
	if max == min {
		return
	}
	scale := (hi - lo) / (max - min)
	for _, band := range self.data {
		for i, v := range band {
			band[i] = (v-min)*scale + lo
		}
	}
}

func clampUint16(v float32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// SavePNG writes the buffer as a 16 bit PNG: grayscale for a single
// band, RGB for three bands. Values are expected in the 0..65535
// range; NormalizeBetween gets them there.
func (self *ImageBuffer) SavePNG(file_path string) error {
	bounds := image.Rect(0, 0, self.width, self.height)

	var img image.Image
	switch self.bands {
	case 1:
		gray := image.NewGray16(bounds)
		for y := 0; y < self.height; y++ {
			for x := 0; x < self.width; x++ {
				gray.SetGray16(x, y, color.Gray16{
					Y: clampUint16(self.data[0][y*self.width+x]),
				})
			}
		}
		img = gray
	case 3:
		rgba := image.NewRGBA64(bounds)
		for y := 0; y < self.height; y++ {
			for x := 0; x < self.width; x++ {
				i := y*self.width + x
				rgba.SetRGBA64(x, y, color.RGBA64{
					R: clampUint16(self.data[0][i]),
					G: clampUint16(self.data[1][i]),
					B: clampUint16(self.data[2][i]),
					A: 65535,
				})
			}
		}
		img = rgba
	default:
		return fmt.Errorf("cannot encode %d band image as PNG", self.bands)
	}

	f, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
