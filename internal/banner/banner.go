// Package banner renders a word as large block art using half-block characters.
package banner

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	fontSize  = 64
	padding   = 4
	threshold = uint8(40)
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error
)

func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			faceErr = err
			return
		}
		face = truetype.NewFace(f, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Render draws text rows terminal lines high. The width follows the text's
// aspect ratio. Empty text or rows < 1 render as "".
func Render(text string, rows int) (string, error) {
	if text == "" || rows < 1 {
		return "", nil
	}
	fc, err := loadFace()
	if err != nil {
		return "", err
	}

	bounds, advance := font.BoundString(fc, text)
	textWidth := advance.Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	srcWidth := textWidth + padding*2
	srcHeight := max(textHeight+padding*2, fontSize)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: fc,
		Dot:  fixed.P(padding, srcHeight-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(text)

	// terminal cells are roughly twice as tall as wide; a half-block cell
	// holds two pixels vertically, so one cell column per pixel row keeps
	// the aspect.
	cols := max(1, srcWidth*rows*2/srcHeight)
	scaled := scaleDown(src, cols, rows*2)
	return halfBlocks(scaled, cols, rows), nil
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(max(int(float64(dx+1)*xRatio), sx1+1), srcWidth)
			sy2 := min(max(int(float64(dy+1)*yRatio), sy1+1), srcHeight)

			sum, count := 0, 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

func halfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder
	for row := 0; row < rows; row++ {
		line := make([]rune, 0, cols)
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold
			switch {
			case top && bottom:
				line = append(line, '█')
			case top:
				line = append(line, '▀')
			case bottom:
				line = append(line, '▄')
			default:
				line = append(line, ' ')
			}
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

type cacheKey struct {
	text string
	rows int
}

// Cached renders through a process-wide cache. The TUI redraws on every
// key press and uses this.
func Cached(text string, rows int) (string, error) {
	key := cacheKey{text, rows}
	cacheMu.Lock()
	s, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return s, nil
	}

	s, err := Render(text, rows)
	if err != nil {
		return "", err
	}
	cacheMu.Lock()
	cache[key] = s
	cacheMu.Unlock()
	return s, nil
}
