package profile

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"sync"
)

const (
	// OrderIDPrefix precedes the numeric part of every order id.
	OrderIDPrefix = "ORD-"
	// OrderIDRange is the exclusive upper bound of the numeric part.
	OrderIDRange = 10000
)

var orderIDPattern = regexp.MustCompile(`^ORD-(\d{1,4})$`)

// IDGenerator produces display strings tagging a successful submission.
type IDGenerator interface {
	NextOrderID() string
}

// FormatOrderID renders n as an order id.
func FormatOrderID(n int) string {
	return OrderIDPrefix + strconv.Itoa(n)
}

// ParseOrderID extracts the numeric part of an order id.
// Returns false if s is not of the form ORD-<0..9999>.
func ParseOrderID(s string) (int, bool) {
	m := orderIDPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n >= OrderIDRange {
		return 0, false
	}
	return n, true
}

// RandomGenerator draws order ids uniformly from [0, OrderIDRange).
type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomGenerator creates a generator backed by the global random source.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewSeededGenerator creates a generator with a fixed seed, so runs repeat.
func NewSeededGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextOrderID implements IDGenerator
func (g *RandomGenerator) NextOrderID() string {
	if g.rng == nil {
		return FormatOrderID(rand.IntN(OrderIDRange))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return FormatOrderID(g.rng.IntN(OrderIDRange))
}

// SequenceGenerator returns ids from a fixed list, repeating the last one
// once the list is exhausted.
type SequenceGenerator struct {
	ids  []string
	next int
}

// NewSequenceGenerator creates a generator that yields ids in order.
func NewSequenceGenerator(ids ...string) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

// NextOrderID implements IDGenerator
func (g *SequenceGenerator) NextOrderID() string {
	if len(g.ids) == 0 {
		return FormatOrderID(0)
	}
	if g.next >= len(g.ids) {
		return g.ids[len(g.ids)-1]
	}
	id := g.ids[g.next]
	g.next++
	return id
}

// GeneratorFunc adapts a plain function to IDGenerator.
type GeneratorFunc func() string

// NextOrderID implements IDGenerator
func (f GeneratorFunc) NextOrderID() string {
	return f()
}
