package binary

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestReadLE(t *testing.T) {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint16(513))
	binary.Write(buf, binary.LittleEndian, uint32(0x80000001))
	binary.Write(buf, binary.LittleEndian, uint64(578437695752307201))

	data := buf.Bytes()
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "tag.bin")

	u16, err := ReadLE[uint16](sr, 0, "uint16")
	if err != nil || u16 != 513 {
		t.Errorf("ReadLE[uint16] = %d, %v; want 513", u16, err)
	}

	u32, err := ReadLE[uint32](sr, 2, "uint32")
	if err != nil || u32 != 0x80000001 {
		t.Errorf("ReadLE[uint32] = 0x%08x, %v; want 0x80000001", u32, err)
	}

	u64, err := ReadLE[uint64](sr, 6, "uint64")
	if err != nil || u64 != 578437695752307201 {
		t.Errorf("ReadLE[uint64] = %d, %v", u64, err)
	}
}

func TestReadLE_Bytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test")

	t.Run("uint32 least significant byte first", func(t *testing.T) {
		val, err := ReadLE[uint32](sr, 0, "test")
		if err != nil {
			t.Fatalf("ReadLE failed: %v", err)
		}
		if val != 0x04030201 {
			t.Errorf("ReadLE = 0x%08x, want 0x04030201", val)
		}
	})

	t.Run("uint8", func(t *testing.T) {
		val, err := ReadLE[uint8](sr, 1, "byte")
		if err != nil || val != 0x02 {
			t.Errorf("ReadLE[uint8] = %d, %v; want 2", val, err)
		}
	})

	t.Run("past the end", func(t *testing.T) {
		if _, err := ReadLE[uint32](sr, 2, "test"); err == nil {
			t.Error("expected error for read past the end")
		}
	})
}

func BenchmarkReadLE_Uint32(b *testing.B) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReadLE[uint32](sr, 0, "uint32")
	}
}
