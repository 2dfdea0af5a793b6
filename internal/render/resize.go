package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Resize upscales src by an integer factor with nearest-neighbor sampling:
// destination (x, y) copies source (x/scale, y/scale). Scales below 1 are
// treated as 1, which returns a copy.
func Resize(src *PixelBuffer, scale int) *PixelBuffer {
	if scale < 1 {
		scale = 1
	}
	dst := NewPixelBuffer(src.Width*scale, src.Height*scale)
	if len(src.Pix) == 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst.raw(), dst.raw().Bounds(), src.raw(), src.raw().Bounds(), xdraw.Src, nil)
	return dst
}

// Sheet lays bufs out left to right, top to bottom, cols per row, separated by
// padding transparent pixels. Cells are sized to the largest buffer.
func Sheet(bufs []*PixelBuffer, cols, padding int) *PixelBuffer {
	if len(bufs) == 0 {
		return NewPixelBuffer(0, 0)
	}
	if cols <= 0 || cols > len(bufs) {
		cols = len(bufs)
	}
	if padding < 0 {
		padding = 0
	}
	cellW, cellH := 0, 0
	for _, b := range bufs {
		cellW = max(cellW, b.Width)
		cellH = max(cellH, b.Height)
	}
	rows := (len(bufs) + cols - 1) / cols
	sheet := NewPixelBuffer(
		cols*cellW+(cols+1)*padding,
		rows*cellH+(rows+1)*padding,
	)
	dst := sheet.raw()
	for i, b := range bufs {
		col, row := i%cols, i/cols
		origin := image.Pt(padding+col*(cellW+padding), padding+row*(cellH+padding))
		src := b.raw()
		xdraw.Copy(dst, origin, src, src.Bounds(), xdraw.Src, nil)
	}
	return sheet
}
