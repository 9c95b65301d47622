// Package imageio reads and writes raster image files as planar BGRA pixel
// buffers.
//
// Standard image codecs work in RGBA order. The conversions in this package
// swap the blue and red channels exactly once, so a buffer returned by
// LoadFile or Decode is ready for scanning and compositing, and a buffer
// handed to SaveFile or an Encode function is written with correct colors.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP for decoding; PNG,
// JPEG, BMP and TIFF for encoding.
package imageio
