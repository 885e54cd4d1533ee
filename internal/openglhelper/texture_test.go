package openglhelper

import (
	"image"
	"image/color"
	"testing"
)

func TestToRGBAFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 12, 13))
	src.Set(10, 10, color.NRGBA{R: 255, A: 255}) // top-left red
	src.Set(11, 12, color.NRGBA{B: 255, A: 255}) // bottom-right blue

	out := ToRGBA(src)

	if out.Rect.Min != (image.Point{}) {
		t.Fatalf("expected origin-anchored image, got %v", out.Rect)
	}
	if out.Stride != 2*4 {
		t.Fatalf("expected tight stride 8, got %d", out.Stride)
	}
	if got := out.RGBAAt(0, 2); got.R != 255 || got.A != 255 {
		t.Errorf("top-left pixel should land on the last row, got %v", got)
	}
	if got := out.RGBAAt(1, 0); got.B != 255 {
		t.Errorf("bottom-right pixel should land on the first row, got %v", got)
	}
}

func TestToRGBAOddHeightKeepsMiddleRow(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 3))
	src.Set(0, 1, color.RGBA{G: 200, A: 255})

	out := ToRGBA(src)

	if got := out.RGBAAt(0, 1); got.G != 200 {
		t.Errorf("middle row moved, got %v", got)
	}
}
