package ui

import "testing"

func TestDecodeLayoutFlags_Direction(t *testing.T) {
	cases := []struct {
		b    uint8
		want Direction
	}{
		{0x00, DirectionRow},
		{0x01, DirectionColumn},
		{0x02, DirectionAbsolute},
		{0x03, DirectionColumn}, // reserved value falls back to Column
	}
	for _, c := range cases {
		if got := DecodeLayoutFlags(c.b).Direction; got != c.want {
			t.Errorf("DecodeLayoutFlags(%#02x).Direction = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestDecodeLayoutFlags_Alignment(t *testing.T) {
	cases := []struct {
		b    uint8
		want Alignment
	}{
		{0x00, AlignStart},
		{0x04, AlignCenter},
		{0x08, AlignEnd},
		{0x0C, AlignSpaceBetween},
	}
	for _, c := range cases {
		if got := DecodeLayoutFlags(c.b).Alignment; got != c.want {
			t.Errorf("DecodeLayoutFlags(%#02x).Alignment = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestDecodeLayoutFlags_WrapAndGrow(t *testing.T) {
	ls := DecodeLayoutFlags(0x10)
	if !ls.Wrap || ls.Grow {
		t.Errorf("0x10: wrap=%v grow=%v, want wrap only", ls.Wrap, ls.Grow)
	}
	ls = DecodeLayoutFlags(0x20)
	if ls.Wrap || !ls.Grow {
		t.Errorf("0x20: wrap=%v grow=%v, want grow only", ls.Wrap, ls.Grow)
	}
}

func TestDecodeLayoutFlags_ReservedHighBitsIgnored(t *testing.T) {
	ls := DecodeLayoutFlags(0xC0 | 0x02)
	if ls.Direction != DirectionAbsolute || ls.Wrap || ls.Grow {
		t.Errorf("high bits leaked into decode: %+v", ls)
	}
}

func TestLayoutStyle_EncodeRoundTrip(t *testing.T) {
	for b := 0; b < 0x40; b++ {
		in := uint8(b)
		if in&layoutDirectionMask == 3 {
			continue // reserved direction does not round-trip
		}
		ls := DecodeLayoutFlags(in)
		if got := ls.Encode(); got != in {
			t.Errorf("Encode(Decode(%#02x)) = %#02x", in, got)
		}
	}
}
