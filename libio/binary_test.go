package libio_test

import (
	"bytes"
	"testing"

	"opengl-sandbox/libio"
)

func TestBinaryRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	bw := libio.NewBinaryWriter(buf)

	bw.WriteUInt16(0xbeef)
	bw.WriteUInt32(0xdeadbeef)
	bw.WriteString("cube")
	bw.WriteRef([]float32{1, 2.5, -3})
	if bw.Err != nil {
		t.Fatal(bw.Err)
	}

	br := libio.NewBinaryReader(buf)
	var u16, u32 int
	var s string
	floats := make([]float32, 3)
	br.ReadUInt16(&u16)
	br.ReadUInt32(&u32)
	br.ReadString(&s)
	br.ReadRef(floats)
	if br.Err != nil {
		t.Fatal(br.Err)
	}

	if u16 != 0xbeef {
		t.Errorf("uint16 should be 0xbeef but was %#x", u16)
	}
	if u32 != 0xdeadbeef {
		t.Errorf("uint32 should be 0xdeadbeef but was %#x", u32)
	}
	if s != "cube" {
		t.Errorf("string should be %q but was %q", "cube", s)
	}
	want := []float32{1, 2.5, -3}
	for i := range want {
		if floats[i] != want[i] {
			t.Errorf("float %d should be %v but was %v", i, want[i], floats[i])
		}
	}
}

func TestBinaryReaderLatchesError(t *testing.T) {
	br := libio.NewBinaryReader(bytes.NewReader([]byte{0x01}))

	var i int
	if br.ReadUInt32(&i) {
		t.Error("short read should fail")
	}
	if br.Err == nil {
		t.Fatal("short read should latch an error")
	}
	first := br.Err
	if br.ReadUInt16(&i) {
		t.Error("reads after a failure should keep failing")
	}
	if br.Err != first {
		t.Errorf("latched error should not change, was %v", br.Err)
	}
}
