// Package record defines the student record schema and its two on-disk
// encodings: a fixed-width form used by slot-based packing and a
// delimited variable-width form used by the variable packing strategies.
package record

// Maximum widths for the string fields. The fixed encoding pads every
// string to its width; the variable encoding stores only the bytes
// actually present.
const (
	MaxNome  = 50
	CPFLen   = 11
	MaxCurso = 30
	MaxMae   = 30
	MaxPai   = 30

	// numericHeaderSize covers Matricula(4) + Ano(4) + CA(4).
	numericHeaderSize = 12
)

// FixedSize is the length of every fixed-width encoded record.
const FixedSize = numericHeaderSize + MaxNome + CPFLen + MaxCurso + MaxMae + MaxPai

// Filler pads unused trailing positions inside fixed-width string fields.
// It is reserved: no real field byte may equal it.
const Filler = '#'

// Student is one logical record.
type Student struct {
	Matricula uint32
	Nome      string
	CPF       string
	Curso     string
	Mae       string
	Pai       string
	Ano       uint32
	CA        float32
}

// VariableSize returns the number of bytes the variable encoding of s
// occupies: numeric header, the raw string bytes, and one delimiter per
// string field. This is also the "useful bytes" measure the storage
// efficiency metric is computed against.
func (s *Student) VariableSize() int {
	return numericHeaderSize +
		len(s.Nome) + len(s.CPF) + len(s.Curso) + len(s.Mae) + len(s.Pai) +
		5
}
