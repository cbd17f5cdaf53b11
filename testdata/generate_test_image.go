// Test image generator for creating non-square sample inputs for circlecrop
package main

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
)

func main() {
	// Landscape image: the crop keeps the middle 200x200.
	width := 400
	height := 200
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Vertical colour bands make the crop offset easy to see.
	colors := []color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // Red
		{R: 255, G: 128, B: 0, A: 255},   // Orange
		{R: 0, G: 255, B: 0, A: 255},     // Green
		{R: 0, G: 0, B: 255, A: 255},     // Blue
		{R: 128, G: 128, B: 128, A: 255}, // Gray
	}

	bandWidth := width / len(colors)
	for x := range width {
		c := colors[min(x/bandWidth, len(colors)-1)]
		for y := range height {
			img.Set(x, y, c)
		}
	}

	pngFile, err := os.Create("testdata/landscape.png")
	if err != nil {
		panic(err)
	}
	defer pngFile.Close()
	if err := png.Encode(pngFile, img); err != nil {
		panic(err)
	}

	// Same pixels as JPEG, which has no alpha channel.
	jpgFile, err := os.Create("testdata/landscape.jpg")
	if err != nil {
		panic(err)
	}
	defer jpgFile.Close()
	if err := jpeg.Encode(jpgFile, img, &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
}
