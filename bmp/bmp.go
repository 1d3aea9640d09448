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

// Package bmp writes frame buffers as uncompressed 24-bit Windows bitmaps.
//
// The output consists of a BITMAPFILEHEADER, a BITMAPINFOHEADER and the
// pixel rows in bottom-to-top order. Every row holds three bytes per pixel
// in the order blue, green, red and is padded with zeros to a multiple of
// four bytes.
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/framebuffer"
)

// Sizes of the fixed parts of the file.
const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	HeaderSize     = FileHeaderSize + InfoHeaderSize

	BitsPerPixel = 24
)

// Image is a source of pixel data for the encoder.
// [framebuffer.Buffer] implements this interface.
type Image interface {
	Width() int
	Height() int
	Color(x, y int) framebuffer.DrawColor
}

// RowPadding returns the number of zero bytes appended to each pixel row
// of an image with the given width.
func RowPadding(width int) int {
	return (4 - (width*3)%4) % 4
}

// FileSize returns the total size in bytes of the encoded image.
func FileSize(width, height int) int {
	return HeaderSize + width*height*3 + height*RowPadding(width)
}

// Header returns the 54 header bytes for an image of the given size.
func Header(width, height int) [HeaderSize]byte {
	var h [HeaderSize]byte

	// BITMAPFILEHEADER
	h[0] = 'B'
	h[1] = 'M'
	binary.LittleEndian.PutUint32(h[2:6], uint32(FileSize(width, height)))
	// h[6:10]: two reserved 16-bit fields
	binary.LittleEndian.PutUint32(h[10:14], HeaderSize)

	// BITMAPINFOHEADER
	binary.LittleEndian.PutUint32(h[14:18], InfoHeaderSize)
	binary.LittleEndian.PutUint32(h[18:22], uint32(width))
	binary.LittleEndian.PutUint32(h[22:26], uint32(height))
	binary.LittleEndian.PutUint16(h[26:28], 1) // planes
	binary.LittleEndian.PutUint16(h[28:30], BitsPerPixel)
	// h[30:54]: compression, image size, resolution and palette, all zero

	return h
}

// Encode writes img to w as a 24-bit bitmap.
//
// Rows are written bottom-to-top. For every pixel the low byte of the
// stored value is written as blue, the middle byte as green and bits
// 16-23 as red.
//
// If writing fails, the error is returned and the output is incomplete.
func Encode(w io.Writer, img Image) error {
	width, height := img.Width(), img.Height()
	framebuffer.Logger().Debug("encoding bitmap",
		"width", width, "height", height, "size", FileSize(width, height))

	h := Header(width, height)
	if _, err := w.Write(h[:]); err != nil {
		return fmt.Errorf("bmp: write header: %w", err)
	}

	pad := RowPadding(width)
	row := make([]byte, width*3+pad)
	for y := height - 1; y >= 0; y-- {
		for x := range width {
			c := img.Color(x, y)
			row[x*3] = byte(c)
			row[x*3+1] = byte(c >> 8)
			row[x*3+2] = byte(c >> 16)
		}
		// the padding bytes at the end of row are never written to
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("bmp: write row %d: %w", y, err)
		}
	}
	return nil
}

// WriteFile encodes img as a 24-bit bitmap into the named file.
// The file is created or truncated.
func WriteFile(name string, img Image) error {
	return writeFile(name, img, Encode)
}

// writeFile creates the named file and writes img to it using enc.
// Errors from creating, flushing and closing the file are prefixed
// with "bmp: ", errors from enc are returned unchanged.
func writeFile(name string, img Image, enc func(io.Writer, Image) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("bmp: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("bmp: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := enc(bw, img); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bmp: %w", err)
	}
	return nil
}
