package pixel

import "encoding/binary"

// ToPacked groups every four planar bytes into one native-endian word.
// The first byte of a pixel lands in the least significant position on
// little-endian hosts and in the most significant position on big-endian
// hosts.
func ToPacked(b *Buffer[uint8]) *Buffer[uint32] {
	return toPacked(b, nativeOrder())
}

// ToPlanar is the exact inverse of ToPacked.
func ToPlanar(b *Buffer[uint32]) *Buffer[uint8] {
	return toPlanar(b, nativeOrder())
}

func toPacked(b *Buffer[uint8], order binary.ByteOrder) *Buffer[uint32] {
	src := b.samples
	out := make([]uint32, len(src)/4)
	for i := range out {
		out[i] = order.Uint32(src[i*4 : i*4+4])
	}
	return &Buffer[uint32]{width: b.width, height: b.height, samples: out}
}

func toPlanar(b *Buffer[uint32], order binary.ByteOrder) *Buffer[uint8] {
	out := make([]uint8, len(b.samples)*4)
	for i, p := range b.samples {
		order.PutUint32(out[i*4:i*4+4], p)
	}
	return &Buffer[uint8]{width: b.width, height: b.height, samples: out}
}

// SwapChannels exchanges channels i and j of every pixel in place.
//
// It is a silent no-op when i == j, when either index is outside 0..3, or,
// for Planar8 buffers, when the sample count is not a multiple of four.
// Use SwapChannelsStrict to have those cases reported.
func SwapChannels[T Sample](b *Buffer[T], i, j Channel) {
	swapChannels(b, i, j, nativeTable())
}

// SwapChannelsStrict is SwapChannels but returns a *ChannelIndexError for an
// equal or out-of-range index pair and a *ShapeError for a planar buffer
// whose length is not a multiple of four.
func SwapChannelsStrict[T Sample](b *Buffer[T], i, j Channel) error {
	if i == j || !i.Valid() || !j.Valid() {
		return &ChannelIndexError{I: i, J: j}
	}
	if b.Layout() == Planar8 && len(b.samples)%4 != 0 {
		return &ShapeError{Width: b.width, Height: b.height, UnitsPerPixel: 4, Got: len(b.samples)}
	}
	swapChannels(b, i, j, nativeTable())
	return nil
}

func swapChannels[T Sample](b *Buffer[T], i, j Channel, t *channelTable) {
	if i == j || !i.Valid() || !j.Valid() {
		return
	}
	switch s := any(b.samples).(type) {
	case []uint8:
		if len(s)%4 != 0 {
			return
		}
		for p := 0; p < len(s); p += 4 {
			s[p+int(i)], s[p+int(j)] = s[p+int(j)], s[p+int(i)]
		}
	case []uint32:
		for p, v := range s {
			s[p] = t.swap(v, i, j)
		}
	}
}

// AdjustAlpha returns a copy of b with every color channel clamped to the
// pixel's alpha. This is a clamp, not a multiplicative premultiply: a pixel
// (200, 200, 200, 100) becomes (100, 100, 100, 100) and a fully opaque pixel
// is unchanged.
func AdjustAlpha(b *Buffer[uint8]) *Buffer[uint8] {
	out := b.Clone()
	s := out.samples
	for p := 0; p+3 < len(s); p += 4 {
		a := s[p+3]
		for c := p; c < p+3; c++ {
			if s[c] > a {
				s[c] = a
			}
		}
	}
	return out
}

// AdjustAlphaPacked is AdjustAlpha for Packed32 buffers.
func AdjustAlphaPacked(b *Buffer[uint32]) *Buffer[uint32] {
	return adjustAlphaPacked(b, nativeTable())
}

func adjustAlphaPacked(b *Buffer[uint32], t *channelTable) *Buffer[uint32] {
	out := b.Clone()
	for p, v := range out.samples {
		a := t.get(v, Alpha)
		for _, c := range [...]Channel{Blue, Green, Red} {
			if t.get(v, c) > a {
				v = t.set(v, c, a)
			}
		}
		out.samples[p] = v
	}
	return out
}
