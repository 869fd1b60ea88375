package code

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/studyhall/internal/common/code Generator

const (
	// Length is the number of characters in a session code
	Length = 5

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator produces short session codes. It does not check for collisions;
// callers own uniqueness against whatever is currently registered.
type Generator interface {
	NewSessionCode() string
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomGenerator draws codes uniformly from an uppercase alphanumeric alphabet
type RandomGenerator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new code generator
func New(cfg *Config) *RandomGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// NewSessionCode returns a fresh code such as "K3Z9Q"
func (g *RandomGenerator) NewSessionCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(alphabet[g.random.Intn(len(alphabet))])
	}
	return b.String()
}

// Normalize maps user input onto the canonical code form so lookups are case-insensitive
func Normalize(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}
