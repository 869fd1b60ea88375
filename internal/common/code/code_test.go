package code

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) TestNewSessionCode_Format() {
	gen := New(&Config{Seed: 42})

	for i := 0; i < 200; i++ {
		c := gen.NewSessionCode()
		s.Require().Len(c, Length)
		for _, r := range c {
			s.True((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected rune %q in %s", r, c)
		}
	}
}

func (s *GeneratorTestSuite) TestNewSessionCode_SeedIsDeterministic() {
	first := New(&Config{Seed: 7})
	second := New(&Config{Seed: 7})

	for i := 0; i < 10; i++ {
		s.Equal(first.NewSessionCode(), second.NewSessionCode())
	}
}

func (s *GeneratorTestSuite) TestNewSessionCode_NilConfig() {
	gen := New(nil)
	s.Len(gen.NewSessionCode(), Length)
}

func (s *GeneratorTestSuite) TestNormalize() {
	s.Equal("AB12C", Normalize(" ab12c "))
	s.Equal("XYZ00", Normalize("XYZ00"))
	s.Equal("", Normalize("   "))
}
