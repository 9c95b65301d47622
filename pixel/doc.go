// Package pixel provides the pixel buffer and channel codec for pixstring.
//
// A Buffer holds width×height pixels in one of two layouts:
//
//   - Planar8: four independent bytes per pixel in B, G, R, A order.
//   - Packed32: one 32-bit word per pixel, with the four bytes placed
//     according to the platform's native byte order.
//
// Both layouts share one generic type, Buffer[T], where T is uint8 for
// Planar8 and uint32 for Packed32. The codec converts between them
// (ToPacked, ToPlanar), exchanges channel positions (SwapChannels) and
// clamps color channels to alpha before alpha-enabled blits (AdjustAlpha).
//
// Buffers never change shape after construction. In-place operations
// mutate sample contents only.
package pixel
