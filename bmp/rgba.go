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
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/framebuffer"
)

// NRGBA converts img to an [image.NRGBA], interpreting every stored value
// as a [framebuffer.PixelRGBA] (0xRRGGBBAA).
//
// This is not the channel order used by [Encode]: a buffer drawn with
// 24-bit colors has zero alpha in this interpretation.
func NRGBA(img Image) *image.NRGBA {
	width, height := img.Width(), img.Height()
	res := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		row := res.Pix[y*res.Stride:]
		for x := range width {
			r, g, b, a := framebuffer.PixelRGBA(img.Color(x, y)).RGBA()
			row[4*x] = r
			row[4*x+1] = g
			row[4*x+2] = b
			row[4*x+3] = a
		}
	}
	return res
}

// EncodeRGBA writes img to w using the generic bitmap encoder from
// golang.org/x/image/bmp, with pixel values read as 0xRRGGBBAA.
//
// This exists for callers which store RGBA quadruples in a buffer.
// The layout of the output file is chosen by the generic encoder.
func EncodeRGBA(w io.Writer, img Image) error {
	if err := bmp.Encode(w, NRGBA(img)); err != nil {
		return fmt.Errorf("bmp: encode RGBA: %w", err)
	}
	return nil
}

// WriteFileRGBA writes img into the named file using [EncodeRGBA].
// The file is created or truncated.
func WriteFileRGBA(name string, img Image) error {
	return writeFile(name, img, EncodeRGBA)
}
