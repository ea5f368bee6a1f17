package record

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FixedCodec encodes every record to exactly FixedSize bytes: a 12-byte
// numeric header followed by the five string fields, each right-padded
// with Filler to its declared width. All integers are big-endian.
type FixedCodec struct{}

// MaxEncodedLength is the constant slot size required by slot-based
// packing. Every EncodeFixed output has exactly this length.
func (FixedCodec) MaxEncodedLength() int { return FixedSize }

// Encode serializes s into a FixedSize-byte slice.
func (FixedCodec) Encode(s *Student) ([]byte, error) {
	buf := make([]byte, FixedSize)
	binary.BigEndian.PutUint32(buf[0:4], s.Matricula)
	binary.BigEndian.PutUint32(buf[4:8], s.Ano)
	binary.BigEndian.PutUint32(buf[8:12], math.Float32bits(s.CA))

	off := numericHeaderSize
	for _, f := range []struct {
		name  string
		value string
		width int
	}{
		{"nome", s.Nome, MaxNome},
		{"cpf", s.CPF, CPFLen},
		{"curso", s.Curso, MaxCurso},
		{"mae", s.Mae, MaxMae},
		{"pai", s.Pai, MaxPai},
	} {
		if err := packField(buf[off:off+f.width], f.name, f.value); err != nil {
			return nil, err
		}
		off += f.width
	}
	return buf, nil
}

// Decode is the exact inverse of Encode for any buffer Encode produced.
func (FixedCodec) Decode(buf []byte) (*Student, error) {
	if len(buf) != FixedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDecode, len(buf), FixedSize)
	}
	s := &Student{
		Matricula: binary.BigEndian.Uint32(buf[0:4]),
		Ano:       binary.BigEndian.Uint32(buf[4:8]),
		CA:        math.Float32frombits(binary.BigEndian.Uint32(buf[8:12])),
	}

	off := numericHeaderSize
	for _, f := range []struct {
		dst   *string
		width int
	}{
		{&s.Nome, MaxNome},
		{&s.CPF, CPFLen},
		{&s.Curso, MaxCurso},
		{&s.Mae, MaxMae},
		{&s.Pai, MaxPai},
	} {
		v, err := unpackField(buf[off : off+f.width])
		if err != nil {
			return nil, err
		}
		*f.dst = v
		off += f.width
	}
	return s, nil
}

// packField writes value into dst and fills the tail with Filler.
// The value may not contain the filler byte, otherwise trimming on
// decode would not be reversible.
func packField(dst []byte, name, value string) error {
	if len(value) > len(dst) {
		return fmt.Errorf("%w: %s is %d bytes, max %d", ErrEncode, name, len(value), len(dst))
	}
	for i := range value {
		if value[i] == Filler {
			return fmt.Errorf("%w: %s contains reserved filler byte %q", ErrEncode, name, Filler)
		}
	}
	n := copy(dst, value)
	for i := n; i < len(dst); i++ {
		dst[i] = Filler
	}
	return nil
}

// unpackField strips the filler tail. Filler may only appear as an
// unbroken run at the end of the field.
func unpackField(src []byte) (string, error) {
	end := len(src)
	for end > 0 && src[end-1] == Filler {
		end--
	}
	for i := 0; i < end; i++ {
		if src[i] == Filler {
			return "", fmt.Errorf("%w: filler byte inside field data", ErrDecode)
		}
	}
	return string(src[:end]), nil
}
