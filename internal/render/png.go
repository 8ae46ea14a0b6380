/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package render turns a finished qrcode.Result into PNG, SVG, or
// terminal output.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/sparrowqr/qrencode/internal/qrcode"
)

// quietZone is the number of light modules of border the standard
// requires around a symbol.
const quietZone = 4

// WritePNG renders result as a PNG with the given pixel size per
// module, including the standard quiet zone, to w.
func WritePNG(w io.Writer, result *qrcode.Result, pixelSize int) error {
	if pixelSize < 1 {
		return fmt.Errorf("render: pixel size must be >= 1, got %d", pixelSize)
	}

	dim := (result.Size + 2*quietZone) * pixelSize
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})

	for i := range img.Pix {
		img.Pix[i] = 0
	}

	for row := 0; row < result.Size; row++ {
		for col := 0; col < result.Size; col++ {
			if !result.Matrix.Get(row, col) {
				continue
			}
			startX := (col + quietZone) * pixelSize
			startY := (row + quietZone) * pixelSize
			for y := 0; y < pixelSize; y++ {
				for x := 0; x < pixelSize; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
