package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// ResizeWidth returns a nearest-neighbour scaled copy of b that is width
// pixels wide, keeping the aspect ratio.
func ResizeWidth(b *Buffer[uint8], width int) (*Buffer[uint8], error) {
	if width <= 0 || b.width == 0 || b.height == 0 {
		return nil, ErrInvalidDimensions
	}
	return resize(b, width, width*b.height/b.width)
}

// ResizeHeight returns a nearest-neighbour scaled copy of b that is height
// pixels tall, keeping the aspect ratio.
func ResizeHeight(b *Buffer[uint8], height int) (*Buffer[uint8], error) {
	if height <= 0 || b.width == 0 || b.height == 0 {
		return nil, ErrInvalidDimensions
	}
	return resize(b, height*b.width/b.height, height)
}

// resize scales the raw samples. Both sides are presented to the scaler as
// *image.RGBA so nearest-neighbour sampling copies the four bytes of a pixel
// verbatim, whatever their channel order.
func resize(b *Buffer[uint8], width, height int) (*Buffer[uint8], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	src := &image.RGBA{
		Pix:    b.samples,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &Buffer[uint8]{width: width, height: height, samples: dst.Pix}, nil
}
