package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, false, true}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buffer = %v, expected %v", buf, want)
	}
}

func TestFillBinaryRGBACustomColors(t *testing.T) {
	cells := []bool{true, false}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	off := color.RGBA{R: 40, G: 50, B: 60, A: 255}

	fillBinaryRGBA(buf, cells, on, off)

	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buffer = %v, expected %v", buf, want)
	}
}
