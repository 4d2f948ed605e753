package identifier

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Prefixes used by the support service.
const (
	PrefixTransaction = "TXN"
	PrefixRefund      = "REF"
	PrefixTicket      = "TICKET"
)

const initialSequence = 1000

// Generator produces unique, human-readable IDs of the form
// PREFIX-yymmdd-000123, sequential within each prefix family.
type Generator struct {
	mu        sync.Mutex
	sequences map[string]int64
}

// NewGenerator constructs a generator with fresh counters.
func NewGenerator() *Generator {
	return &Generator{sequences: make(map[string]int64)}
}

// Next returns the next ID for the given prefix. Safe for concurrent use.
func (g *Generator) Next(prefix string) string {
	prefix = strings.ToUpper(prefix)

	g.mu.Lock()
	seq, ok := g.sequences[prefix]
	if !ok {
		seq = initialSequence
	}
	g.sequences[prefix] = seq + 1
	g.mu.Unlock()

	return fmt.Sprintf("%s-%s-%06d", prefix, time.Now().Format("060102"), seq)
}

// NextTransactionID returns a payment transaction ID.
func (g *Generator) NextTransactionID() string {
	return g.Next(PrefixTransaction)
}

// NextRefundID returns a refund ID.
func (g *Generator) NextRefundID() string {
	return g.Next(PrefixRefund)
}

// NextTicketID returns a support ticket ID.
func (g *Generator) NextTicketID() string {
	return g.Next(PrefixTicket)
}

// Reset clears all sequence counters. Intended for tests.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.sequences = make(map[string]int64)
	g.mu.Unlock()
}
