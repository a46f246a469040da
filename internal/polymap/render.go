package polymap

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Image paints every pixel with the biome color of the cell that owns it.
func Image(w *World) *image.RGBA {
	width, height := w.Config.Width, w.Config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Paint per cell once, then per pixel from the cache.
	palette := make([][4]uint8, len(w.Seeds))
	for i := range w.Seeds {
		c := w.CellBiome(i).Color()
		palette[i] = [4]uint8{c.R, c.G, c.B, c.A}
	}

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			c := palette[w.Owner[y*width+x]]
			copy(row[x*4:x*4+4], c[:])
		}
	}
	return img
}

// EncodePNG writes the rendered world as PNG.
func EncodePNG(w *World, out io.Writer) error {
	if err := png.Encode(out, Image(w)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WritePNG renders the world into the file at path.
func WritePNG(w *World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	buf := bufio.NewWriter(f)
	if err := EncodePNG(w, buf); err != nil {
		f.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
