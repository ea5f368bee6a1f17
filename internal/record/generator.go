package record

import (
	"fmt"
	"math/rand/v2"
)

var (
	firstNames = []string{
		"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela",
		"Henrique", "Isabela", "Joao", "Larissa", "Marcos", "Natalia",
		"Otavio", "Paula", "Rafael", "Sofia", "Thiago", "Vanessa", "William",
	}
	lastNames = []string{
		"Almeida", "Barbosa", "Cardoso", "Dias", "Ferreira", "Gomes",
		"Lima", "Martins", "Nunes", "Oliveira", "Pereira", "Ribeiro",
		"Santos", "Souza", "Teixeira",
	}
	courses = []string{
		"Ciencia da Computacao", "Engenharia Civil", "Medicina", "Direito",
		"Administracao", "Arquitetura", "Psicologia", "Enfermagem",
		"Engenharia Eletrica", "Sistemas de Informacao",
	}
)

// Generator produces fake student records. A given seed always yields
// the same sequence, which keeps simulation runs reproducible.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (g *Generator) name() string {
	return firstNames[g.rng.IntN(len(firstNames))] + " " + lastNames[g.rng.IntN(len(lastNames))]
}

// Next returns one fake student. Matricula values are unique within a
// generator because they embed the sequence position.
func (g *Generator) Next(i int) *Student {
	return &Student{
		Matricula: uint32(100000000 + i),
		Nome:      g.name(),
		CPF:       fmt.Sprintf("%011d", g.rng.Int64N(100000000000)),
		Curso:     courses[g.rng.IntN(len(courses))],
		Mae:       g.name(),
		Pai:       g.name(),
		Ano:       uint32(2015 + g.rng.IntN(10)),
		CA:        float32(500+g.rng.IntN(501)) / 100,
	}
}

// Generate returns n fake students.
func (g *Generator) Generate(n int) []*Student {
	students := make([]*Student, n)
	for i := range students {
		students[i] = g.Next(i)
	}
	return students
}
