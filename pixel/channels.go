package pixel

import (
	"encoding/binary"
	"sync"

	"golang.org/x/sys/cpu"
)

// Channel is a logical channel position within a pixel.
type Channel int

// Logical channel positions.
const (
	Blue Channel = iota
	Green
	Red
	Alpha
)

// Valid reports whether c is in 0..3.
func (c Channel) Valid() bool {
	return c >= Blue && c <= Alpha
}

// channelTable maps each logical channel to its bit offset and mask inside
// a packed word. Logical channel i is byte i of the planar pixel, so its
// position in the word depends on the byte order used to pack it.
type channelTable struct {
	order binary.ByteOrder
	shift [4]uint32
	mask  [4]uint32
}

func tableFor(order binary.ByteOrder) *channelTable {
	t := &channelTable{order: order}
	for i := range 4 {
		s := uint32(i * 8)
		if order == binary.BigEndian {
			s = 24 - uint32(i*8)
		}
		t.shift[i] = s
		t.mask[i] = 0xFF << s
	}
	return t
}

func nativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

var nativeTable = sync.OnceValue(func() *channelTable {
	return tableFor(nativeOrder())
})

func (t *channelTable) get(p uint32, c Channel) uint8 {
	return uint8((p & t.mask[c]) >> t.shift[c])
}

func (t *channelTable) set(p uint32, c Channel, v uint8) uint32 {
	return p&^t.mask[c] | uint32(v)<<t.shift[c]
}

func (t *channelTable) pack(c BGRA) uint32 {
	return uint32(c.B)<<t.shift[Blue] |
		uint32(c.G)<<t.shift[Green] |
		uint32(c.R)<<t.shift[Red] |
		uint32(c.A)<<t.shift[Alpha]
}

func (t *channelTable) unpack(p uint32) BGRA {
	return BGRA{
		B: t.get(p, Blue),
		G: t.get(p, Green),
		R: t.get(p, Red),
		A: t.get(p, Alpha),
	}
}

// swap exchanges channels i and j of one packed word.
func (t *channelTable) swap(p uint32, i, j Channel) uint32 {
	a := (p & t.mask[i]) >> t.shift[i]
	c := (p & t.mask[j]) >> t.shift[j]
	return p&^(t.mask[i]|t.mask[j]) | a<<t.shift[j] | c<<t.shift[i]
}

// PackBGRA packs c into a native-endian word.
func PackBGRA(c BGRA) uint32 { return nativeTable().pack(c) }

// UnpackBGRA splits a native-endian packed word into channels.
func UnpackBGRA(p uint32) BGRA { return nativeTable().unpack(p) }
