// seehuhn.de/go/framebuffer - polygon rasterization into bitmap images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/framebuffer"
)

func TestHeaderSmall(t *testing.T) {
	b := framebuffer.New(2, 2)
	b.SetBackground(framebuffer.White)
	b.Clear()

	buf := &bytes.Buffer{}
	if err := Encode(buf, b); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	// 54 header bytes + 2 rows of (6 pixel bytes + 2 padding bytes)
	if len(data) != 70 {
		t.Fatalf("got %d bytes, want 70", len(data))
	}
	if string(data[:2]) != "BM" {
		t.Errorf("wrong magic %q", data[:2])
	}
	checks := []struct {
		name string
		pos  int
		want uint32
	}{
		{"file size", 2, 70},
		{"pixel offset", 10, 54},
		{"info header size", 14, 40},
		{"width", 18, 2},
		{"height", 22, 2},
	}
	for _, c := range checks {
		if got := binary.LittleEndian.Uint32(data[c.pos:]); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
	if planes := binary.LittleEndian.Uint16(data[26:]); planes != 1 {
		t.Errorf("planes: got %d, want 1", planes)
	}
	if bpp := binary.LittleEndian.Uint16(data[28:]); bpp != 24 {
		t.Errorf("bits per pixel: got %d, want 24", bpp)
	}

	wantRow := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0, 0}
	for y := range 2 {
		row := data[54+8*y : 54+8*(y+1)]
		if !bytes.Equal(row, wantRow) {
			t.Errorf("row %d: got % x, want % x", y, row, wantRow)
		}
	}
}

func TestFileSize(t *testing.T) {
	for width := 1; width <= 9; width++ {
		for _, height := range []int{1, 2, 7, 100} {
			b := framebuffer.New(width, height)
			buf := &bytes.Buffer{}
			if err := Encode(buf, b); err != nil {
				t.Fatal(err)
			}

			rowLen := width * 3
			for rowLen%4 != 0 {
				rowLen++
			}
			want := 54 + rowLen*height
			if buf.Len() != want {
				t.Errorf("%dx%d: got %d bytes, want %d", width, height, buf.Len(), want)
			}
			if FileSize(width, height) != want {
				t.Errorf("%dx%d: FileSize=%d, want %d",
					width, height, FileSize(width, height), want)
			}
			got := binary.LittleEndian.Uint32(buf.Bytes()[2:])
			if int(got) != want {
				t.Errorf("%dx%d: header size %d, want %d", width, height, got, want)
			}
		}
	}
}

func TestRowPadding(t *testing.T) {
	want := []int{0, 3, 2, 1, 0, 3, 2, 1, 0}
	for width, pad := range want {
		if got := RowPadding(width); got != pad {
			t.Errorf("RowPadding(%d) = %d, want %d", width, got, pad)
		}
	}
}

func TestPixelOrder(t *testing.T) {
	b := framebuffer.New(3, 2)
	setPixel(b, 0, 0, 0x112233)
	setPixel(b, 1, 0, 0x445566)
	setPixel(b, 2, 0, 0x778899)
	setPixel(b, 0, 1, 0xAABBCC)

	buf := &bytes.Buffer{}
	if err := Encode(buf, b); err != nil {
		t.Fatal(err)
	}
	pixels := buf.Bytes()[HeaderSize:]

	// the bottom row comes first
	want := []byte{
		0xCC, 0xBB, 0xAA, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x33, 0x22, 0x11, 0x66, 0x55, 0x44, 0x99, 0x88, 0x77, 0, 0, 0,
	}
	if !bytes.Equal(pixels, want) {
		t.Errorf("got % x, want % x", pixels, want)
	}
}

func TestDecode(t *testing.T) {
	b := framebuffer.New(13, 7)
	for y := range 7 {
		for x := range 13 {
			setPixel(b, x, y, framebuffer.RGB24(uint8(20*x), uint8(30*y), uint8(x*y)))
		}
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, b); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got.X != 13 || got.Y != 7 {
		t.Fatalf("decoded size %v", got)
	}
	for y := range 7 {
		for x := range 13 {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			r, g, bl := b.Color(x, y).RGB()
			want := color.RGBA{R: r, G: g, B: bl, A: 255}
			if got != want {
				t.Errorf("(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

// setPixel sets a single pixel of b to c.
func setPixel(b *framebuffer.Buffer, x, y int, c framebuffer.DrawColor) {
	b.SetDrawColor(c)
	b.SetPoint(x, y)
}

var errTest = errors.New("test error")

type failingWriter struct {
	n int // number of successful writes before failing
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errTest
	}
	w.n--
	return len(p), nil
}

func TestEncodeWriteError(t *testing.T) {
	b := framebuffer.New(4, 4)
	for n := range 3 {
		err := Encode(&failingWriter{n: n}, b)
		if !errors.Is(err, errTest) {
			t.Errorf("%d writes: got error %v", n, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	b := framebuffer.New(5, 3)
	b.SetDrawColor(0x00FF00)
	b.SetPoint(2, 1)

	name := filepath.Join(t.TempDir(), "out.bmp")
	if err := WriteFile(name, b); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("file contents differ from Encode output")
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	b := framebuffer.New(1, 1)
	name := filepath.Join(t.TempDir(), "missing", "out.bmp")
	err := WriteFile(name, b)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want %v", err, fs.ErrNotExist)
	}
}
