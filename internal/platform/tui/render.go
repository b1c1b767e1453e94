package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// halfBlock shows two vertically stacked pixels in one cell: the foreground
// paints the top half, the background the bottom.
const halfBlock = '▀'

// FitPixels returns the largest pixel size with the aspect ratio of
// srcW x srcH that fits in cols x rows cells. Each cell holds one pixel
// across and two down, so the height is always even.
func FitPixels(srcW, srcH, cols, rows int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	maxH := rows * 2
	w = cols
	h = w * srcH / srcW
	if h > maxH {
		h = maxH
		w = h * srcW / srcH
	}
	h -= h % 2
	if w < 1 || h < 2 {
		return 0, 0
	}
	return w, h
}

// Downscale resizes src to w x h with nearest-neighbor sampling so that
// brick edges stay hard.
func Downscale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// hexColor converts a pixel to a lipgloss color.
func hexColor(c color.RGBA) lipgloss.Color {
	cc := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return lipgloss.Color(cc.Hex())
}

type cellColors struct {
	top, bottom color.RGBA
}

// RenderFrame converts an image to rows of half-block cells, two pixel rows
// per line. Groups adjacent cells with the same colors to minimize ANSI
// escape sequences.
func RenderFrame(img *image.RGBA) string {
	b := img.Bounds()
	styles := make(map[cellColors]lipgloss.Style)
	style := func(cc cellColors) lipgloss.Style {
		s, ok := styles[cc]
		if !ok {
			s = lipgloss.NewStyle().Foreground(hexColor(cc.top)).Background(hexColor(cc.bottom))
			styles[cc] = s
		}
		return s
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(b.Dx() * b.Dy())

	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteRune('\n')
		}

		x := b.Min.X
		for x < b.Max.X {
			start := cellAt(img, x, y)

			// Collect consecutive cells with the same colors
			n := 0
			for x < b.Max.X && cellAt(img, x, y) == start {
				n++
				x++
			}
			sb.WriteString(style(start).Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}

func cellAt(img *image.RGBA, x, y int) cellColors {
	return cellColors{top: img.RGBAAt(x, y), bottom: img.RGBAAt(x, y+1)}
}
