package bitreader

import (
	"errors"
	"testing"

	"github.com/go-vorbis/floor"
)

func TestReadBitsLSBFirst(t *testing.T) {
	// byte 0b1011_0100 read LSB-first: bits are 0,0,1,0,1,1,0,1
	r := New([]byte{0xB4})
	want := []bool{false, false, true, false, true, true, false, true}
	for i, w := range want {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("bit %d = %v, want %v", i, got, w)
		}
	}
}

func TestReadBitsAssemblesLSBFirst(t *testing.T) {
	// 0x05 = 0b0000_0101; reading 4 bits gives the low nibble unchanged.
	r := New([]byte{0x05})
	v, err := r.ReadBits(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Errorf("ReadBits(4) = %d, want 5", v)
	}
}

func TestReadBitsAcrossByteBoundary(t *testing.T) {
	r := New([]byte{0xFF, 0x01})
	v, err := r.ReadBits(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1FF {
		t.Errorf("ReadBits(9) = %#x, want 0x1ff", v)
	}
}

func TestReadBitsEndOfPacket(t *testing.T) {
	r := New([]byte{0x00})
	if _, err := r.ReadBits(16); !errors.Is(err, floor.ErrEndOfPacket) {
		t.Errorf("ReadBits past end = %v, want ErrEndOfPacket", err)
	}
}

func TestAtEndAndBitsRead(t *testing.T) {
	r := New([]byte{0xFF, 0xFF})
	if r.AtEnd() {
		t.Fatal("fresh reader reports AtEnd")
	}
	if _, err := r.ReadBits(12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.BitsRead() != 12 {
		t.Errorf("BitsRead() = %d, want 12", r.BitsRead())
	}
	if _, err := r.ReadBits(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.AtEnd() {
		t.Error("reader should report AtEnd after consuming both bytes")
	}
}

func TestReadBitsZero(t *testing.T) {
	r := New([]byte{0x42})
	v, err := r.ReadBits(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("ReadBits(0) = %d, want 0", v)
	}
}
