package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// ToImage converts a Planar8 BGRA buffer to a non-premultiplied RGBA image.
// The result does not alias b.
func ToImage(b *Buffer[uint8]) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.samples)
	swapPlanar(img.Pix, Blue, Red)
	return img
}

// FromImage converts any image to a Planar8 BGRA buffer. The image bounds
// are translated so that the top-left pixel lands at (0, 0).
func FromImage(img image.Image) *Buffer[uint8] {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var pix []uint8
	if n, ok := img.(*image.NRGBA); ok && n.Stride == w*4 && len(n.Pix) == w*h*4 {
		pix = make([]uint8, len(n.Pix))
		copy(pix, n.Pix)
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		pix = dst.Pix
	}
	swapPlanar(pix, Blue, Red)
	return &Buffer[uint8]{width: w, height: h, samples: pix}
}

func swapPlanar(s []uint8, i, j Channel) {
	for p := 0; p+3 < len(s); p += 4 {
		s[p+int(i)], s[p+int(j)] = s[p+int(j)], s[p+int(i)]
	}
}
