package libio

import (
	"encoding/binary"
	"io"
)

// BinaryReader reads fixed-layout values from Src and latches the first
// error; after a failure every further read reports false.
type BinaryReader struct {
	Order binary.ByteOrder
	Src   io.Reader
	Index int
	Err   error
	buf   []byte
}

func NewBinaryReader(src io.Reader) *BinaryReader {
	return &BinaryReader{Order: binary.LittleEndian, Src: src}
}

func (br *BinaryReader) ReadBytes(n int) (ok bool) {
	if br.Err != nil {
		return false
	}

	if cap(br.buf) <= n {
		br.buf = make([]byte, n)
	} else {
		br.buf = br.buf[:n]
	}

	nread, err := io.ReadFull(br.Src, br.buf)
	br.Index += nread
	if err != nil {
		br.Err = err
		return false
	}
	return true
}

func (br *BinaryReader) ReadUInt16(i *int) (ok bool) {
	if !br.ReadBytes(2) {
		return false
	}
	*i = int(br.Order.Uint16(br.buf))
	return true
}

func (br *BinaryReader) ReadUInt32(i *int) (ok bool) {
	if !br.ReadBytes(4) {
		return false
	}
	*i = int(br.Order.Uint32(br.buf))
	return true
}

// ReadString reads a uint16 length prefix followed by the string bytes.
func (br *BinaryReader) ReadString(s *string) (ok bool) {
	var n int
	if !br.ReadUInt16(&n) {
		return false
	}
	if !br.ReadBytes(n) {
		return false
	}
	*s = string(br.buf)
	return true
}

// ReadRef reads into data, which must be a pointer to a fixed-size value or
// a slice of fixed-size values.
func (br *BinaryReader) ReadRef(data any) (ok bool) {
	if br.Err != nil {
		return false
	}
	err := binary.Read(br.Src, br.Order, data)
	if err != nil {
		br.Err = err
		return false
	}
	br.Index += binary.Size(data)
	return true
}

// BinaryWriter is the counterpart of BinaryReader with the same latched
// error discipline.
type BinaryWriter struct {
	Order binary.ByteOrder
	Dst   io.Writer
	Err   error
}

func NewBinaryWriter(dst io.Writer) *BinaryWriter {
	return &BinaryWriter{Order: binary.LittleEndian, Dst: dst}
}

func (bw *BinaryWriter) WriteBytes(p []byte) (ok bool) {
	if bw.Err != nil {
		return false
	}

	_, err := bw.Dst.Write(p)
	if err != nil {
		bw.Err = err
		return false
	}
	return true
}

func (bw *BinaryWriter) WriteUInt16(i uint16) (ok bool) {
	buf := make([]byte, 2)
	bw.Order.PutUint16(buf, i)
	return bw.WriteBytes(buf)
}

func (bw *BinaryWriter) WriteUInt32(i uint32) (ok bool) {
	buf := make([]byte, 4)
	bw.Order.PutUint32(buf, i)
	return bw.WriteBytes(buf)
}

func (bw *BinaryWriter) WriteString(s string) (ok bool) {
	if !bw.WriteUInt16(uint16(len(s))) {
		return false
	}
	return bw.WriteBytes([]byte(s))
}

func (bw *BinaryWriter) WriteRef(data any) (ok bool) {
	if bw.Err != nil {
		return false
	}
	err := binary.Write(bw.Dst, bw.Order, data)
	if err != nil {
		bw.Err = err
		return false
	}
	return true
}
