package codec

import "testing"

func TestByteOrderFromFlag(t *testing.T) {
	tests := []struct {
		flag byte
		want ByteOrder
	}{
		{0x00, BigEndian},
		{0x01, LittleEndian},
		{0xFF, LittleEndian},
	}
	for _, tt := range tests {
		if got := byteOrderFromFlag(tt.flag); got != tt.want {
			t.Errorf("byteOrderFromFlag(0x%02X) = %v, want %v", tt.flag, got, tt.want)
		}
	}
}

func TestByteOrderString(t *testing.T) {
	if LittleEndian.String() != "little-endian" {
		t.Errorf("got %q", LittleEndian.String())
	}
	if BigEndian.String() != "big-endian" {
		t.Errorf("got %q", BigEndian.String())
	}
}
