package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	sgerrors "spritegen/pkg/errors"
)

// PixelBuffer is a row-major RGBA buffer with 4 straight-alpha bytes per pixel.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a fully transparent buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{Width: w, Height: h, Pix: make([]byte, 4*w*h)}
}

// Offset returns the index of the first byte of pixel (x, y).
func (b *PixelBuffer) Offset(x, y int) int { return (y*b.Width + x) * 4 }

// At returns the pixel at (x, y).
func (b *PixelBuffer) At(x, y int) color.NRGBA {
	i := b.Offset(x, y)
	return color.NRGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set stores c at (x, y).
func (b *PixelBuffer) Set(x, y int, c color.NRGBA) {
	i := b.Offset(x, y)
	b.Pix[i+0] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Image views the buffer as an *image.NRGBA sharing the same pixel slice.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// raw views the buffer as an *image.RGBA so x/image/draw copies bytes
// verbatim instead of converting through premultiplied color.
func (b *PixelBuffer) raw() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromImage copies any image into a new straight-alpha buffer.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	out := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out.Set(x, y, c)
		}
	}
	return out
}

// EncodePNG writes the buffer to w as a PNG.
func EncodePNG(w io.Writer, b *PixelBuffer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return sgerrors.Wrap(sgerrors.ErrCodeInternal, err, "encode png")
	}
	return nil
}

// Premultiplied returns the pixels with color scaled by alpha, the layout GPU
// textures expect. dst is reused when it has the right length.
func (b *PixelBuffer) Premultiplied(dst []byte) []byte {
	if len(dst) != len(b.Pix) {
		dst = make([]byte, len(b.Pix))
	}
	for i := 0; i+3 < len(b.Pix); i += 4 {
		a := uint32(b.Pix[i+3])
		dst[i+0] = uint8((uint32(b.Pix[i+0])*a + 127) / 255)
		dst[i+1] = uint8((uint32(b.Pix[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(b.Pix[i+2])*a + 127) / 255)
		dst[i+3] = uint8(a)
	}
	return dst
}
