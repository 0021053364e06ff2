package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// renderScale is the supersampling factor used before downscaling.
const renderScale = 3

// Rasterize renders SVG data to a size×size image. Text elements are skipped.
func Rasterize(svgData []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}

	// Render at higher resolution, then scale down for smooth edges
	renderSize := size * renderScale
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	big := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, big, big.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Over, nil)
	return out, nil
}

// WritePNG renders d and writes it as a size×size PNG.
func WritePNG(w io.Writer, d Diagram, size int) error {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, d); err != nil {
		return err
	}
	img, err := Rasterize(buf.Bytes(), size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
