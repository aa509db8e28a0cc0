package banking

import (
	"math/rand"
	"strings"
)

const AccountNumberLength = 10

type NumberGenerator interface {
	Generate() string
}

// RandomNumbers produces 10-digit account numbers with a non-zero first digit.
type RandomNumbers struct{}

func NewRandomNumbers() *RandomNumbers {
	return &RandomNumbers{}
}

func (RandomNumbers) Generate() string {
	var sb strings.Builder
	sb.Grow(AccountNumberLength)
	sb.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < AccountNumberLength; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}
