package ui

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/icon.svg
var iconSVG []byte

// iconSizes are the resolutions offered to the window manager.
var iconSizes = []int{16, 32, 64}

// WindowIcons rasterizes the embedded SVG icon at each icon size.
func WindowIcons() ([]image.Image, error) {
	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		img, err := rasterizeSVG(iconSVG, size)
		if err != nil {
			return nil, err
		}
		icons = append(icons, img)
	}
	return icons, nil
}

// rasterizeSVG renders SVG data into a size x size RGBA image.
func rasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}
