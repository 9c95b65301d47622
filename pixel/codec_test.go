package pixel

import (
	"encoding/binary"
	"errors"
	"slices"
	"testing"
)

var byteOrders = []struct {
	name  string
	order binary.ByteOrder
}{
	{"little endian", binary.LittleEndian},
	{"big endian", binary.BigEndian},
}

func testPlanar(t *testing.T, width, height int) *Buffer[uint8] {
	t.Helper()
	s := make([]uint8, width*height*4)
	for i := range s {
		s[i] = uint8(i*37 + 11)
	}
	b, err := FromSamples(width, height, s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestPackedRoundTrip(t *testing.T) {
	for _, bo := range byteOrders {
		t.Run(bo.name, func(t *testing.T) {
			b := testPlanar(t, 7, 3)
			packed := toPacked(b, bo.order)
			if packed.Len() != 21 || packed.Width() != 7 || packed.Height() != 3 {
				t.Fatalf("packed shape = %dx%d len %d", packed.Width(), packed.Height(), packed.Len())
			}
			back := toPlanar(packed, bo.order)
			if !slices.Equal(back.Samples(), b.Samples()) {
				t.Error("toPlanar(toPacked(b)) != b")
			}
		})
	}

	b := testPlanar(t, 4, 4)
	if !slices.Equal(ToPlanar(ToPacked(b)).Samples(), b.Samples()) {
		t.Error("native round trip differs")
	}
}

func TestPackedChannelPlacement(t *testing.T) {
	tests := []struct {
		order   binary.ByteOrder
		name    string
		packed  uint32
		swapped uint32
	}{
		{binary.LittleEndian, "little endian", 0x7D0000FF, 0x7DFF0000},
		{binary.BigEndian, "big endian", 0xFF00007D, 0x0000FF7D},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := FromSamples(1, 1, []uint8{255, 0, 0, 125})
			p := toPacked(b, tt.order)
			if p.Samples()[0] != tt.packed {
				t.Fatalf("packed = %#08x, want %#08x", p.Samples()[0], tt.packed)
			}

			tbl := tableFor(tt.order)
			swapChannels(p, Blue, Red, tbl)
			if p.Samples()[0] != tt.swapped {
				t.Errorf("swapped = %#08x, want %#08x", p.Samples()[0], tt.swapped)
			}
			if got := tbl.unpack(p.Samples()[0]); got != (BGRA{B: 0, G: 0, R: 255, A: 125}) {
				t.Errorf("unpack = %+v", got)
			}
		})
	}
}

func TestSwapChannelsSelfInverse(t *testing.T) {
	pairs := [][2]Channel{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	for _, pair := range pairs {
		b := testPlanar(t, 5, 2)
		orig := slices.Clone(b.Samples())
		SwapChannels(b, pair[0], pair[1])
		if slices.Equal(b.Samples(), orig) {
			t.Errorf("planar swap %v changed nothing", pair)
		}
		SwapChannels(b, pair[0], pair[1])
		if !slices.Equal(b.Samples(), orig) {
			t.Errorf("planar swap %v is not self-inverse", pair)
		}

		for _, bo := range byteOrders {
			p := toPacked(testPlanar(t, 5, 2), bo.order)
			origP := slices.Clone(p.Samples())
			tbl := tableFor(bo.order)
			swapChannels(p, pair[0], pair[1], tbl)
			swapChannels(p, pair[0], pair[1], tbl)
			if !slices.Equal(p.Samples(), origP) {
				t.Errorf("%s packed swap %v is not self-inverse", bo.name, pair)
			}
		}
	}
}

func TestSwapChannelsMatchesPlanar(t *testing.T) {
	for _, bo := range byteOrders {
		b := testPlanar(t, 3, 3)
		p := toPacked(b, bo.order)
		swapPlanar(b.Samples(), Green, Alpha)
		swapChannels(p, Green, Alpha, tableFor(bo.order))
		if !slices.Equal(toPlanar(p, bo.order).Samples(), b.Samples()) {
			t.Errorf("%s: packed swap disagrees with planar swap", bo.name)
		}
	}
}

func TestSwapChannelsNoOp(t *testing.T) {
	tests := []struct {
		name string
		i, j Channel
	}{
		{"equal", 1, 1},
		{"out of range", 0, 4},
		{"negative", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testPlanar(t, 2, 2)
			orig := slices.Clone(b.Samples())
			SwapChannels(b, tt.i, tt.j)
			if !slices.Equal(b.Samples(), orig) {
				t.Error("permissive swap modified the buffer")
			}
			err := SwapChannelsStrict(b, tt.i, tt.j)
			if !errors.Is(err, ErrInvalidChannelIndex) {
				t.Errorf("strict swap error = %v, want ErrInvalidChannelIndex", err)
			}
		})
	}

	ragged := &Buffer[uint8]{width: 1, height: 1, samples: []uint8{1, 2, 3, 4, 5}}
	SwapChannels(ragged, 0, 2)
	if !slices.Equal(ragged.samples, []uint8{1, 2, 3, 4, 5}) {
		t.Error("swap on a ragged planar buffer modified it")
	}
	if err := SwapChannelsStrict(ragged, 0, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("strict swap on ragged buffer error = %v", err)
	}
}

func TestAdjustAlpha(t *testing.T) {
	tests := []struct {
		in, want BGRA
	}{
		{BGRA{200, 200, 200, 100}, BGRA{100, 100, 100, 100}},
		{BGRA{50, 50, 50, 255}, BGRA{50, 50, 50, 255}},
		{BGRA{10, 120, 90, 100}, BGRA{10, 100, 90, 100}},
		{BGRA{1, 2, 3, 0}, BGRA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		b, _ := New[uint8](1, 1)
		b.SetBGRA(0, 0, tt.in)
		got := AdjustAlpha(b)
		if px := got.BGRA(0, 0); px != tt.want {
			t.Errorf("AdjustAlpha(%v) = %v, want %v", tt.in, px, tt.want)
		}
		if b.BGRA(0, 0) != tt.in {
			t.Errorf("AdjustAlpha modified its input")
		}

		for _, bo := range byteOrders {
			tbl := tableFor(bo.order)
			p, _ := FromSamples(1, 1, []uint32{tbl.pack(tt.in)})
			pa := adjustAlphaPacked(p, tbl)
			if px := tbl.unpack(pa.Samples()[0]); px != tt.want {
				t.Errorf("%s adjustAlphaPacked(%v) = %v, want %v", bo.name, tt.in, px, tt.want)
			}
		}
	}
}
