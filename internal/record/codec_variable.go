package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// delim terminates each string field in the variable encoding.
const delim = 0x00

// VariableCodec encodes a record as the 12-byte numeric header followed
// by the five string fields, each terminated by a NUL byte. The encoded
// length depends on the field contents; callers that need to recover it
// from raw storage prepend their own length prefix.
type VariableCodec struct{}

// MaxEncodedLength is the worst case across all valid field values,
// reached when every string field is at its declared maximum width.
func (VariableCodec) MaxEncodedLength() int {
	return numericHeaderSize + MaxNome + CPFLen + MaxCurso + MaxMae + MaxPai + 5
}

// Encode serializes s. Field widths are validated against the same
// declared maxima the fixed encoding uses, so both encodings accept the
// same set of records.
func (VariableCodec) Encode(s *Student) ([]byte, error) {
	buf := make([]byte, 0, s.VariableSize())

	var hdr [numericHeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], s.Matricula)
	binary.BigEndian.PutUint32(hdr[4:8], s.Ano)
	binary.BigEndian.PutUint32(hdr[8:12], math.Float32bits(s.CA))
	buf = append(buf, hdr[:]...)

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
		if len(f.value) > f.width {
			return nil, fmt.Errorf("%w: %s is %d bytes, max %d", ErrEncode, f.name, len(f.value), f.width)
		}
		if bytes.IndexByte([]byte(f.value), delim) >= 0 {
			return nil, fmt.Errorf("%w: %s contains NUL delimiter byte", ErrEncode, f.name)
		}
		buf = append(buf, f.value...)
		buf = append(buf, delim)
	}
	return buf, nil
}

// Decode is the exact inverse of Encode. It rejects buffers with a
// missing delimiter, a short header, or trailing garbage.
func (VariableCodec) Decode(buf []byte) (*Student, error) {
	if len(buf) < numericHeaderSize+5 {
		return nil, fmt.Errorf("%w: %d bytes is below the minimum record size", ErrDecode, len(buf))
	}
	s := &Student{
		Matricula: binary.BigEndian.Uint32(buf[0:4]),
		Ano:       binary.BigEndian.Uint32(buf[4:8]),
		CA:        math.Float32frombits(binary.BigEndian.Uint32(buf[8:12])),
	}

	rest := buf[numericHeaderSize:]
	for _, dst := range []*string{&s.Nome, &s.CPF, &s.Curso, &s.Mae, &s.Pai} {
		i := bytes.IndexByte(rest, delim)
		if i < 0 {
			return nil, fmt.Errorf("%w: unterminated string field", ErrDecode)
		}
		*dst = string(rest[:i])
		rest = rest[i+1:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after last field", ErrDecode, len(rest))
	}
	return s, nil
}
