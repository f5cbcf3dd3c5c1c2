// Package docnum provides requisition document numbering.
//
// Numbers are human-traceable, not globally unique: a prefix, an 8-digit
// date code and a 3-digit random suffix (e.g. REQ-20240115-042). Collisions
// within a day are accepted; the store remains authoritative for documents.
package docnum

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g. "REQ")
	Prefix string

	// SuffixWidth is the random suffix width (default 3)
	SuffixWidth int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		SuffixWidth: 3,
	}
}

// Generator produces document numbers.
type Generator interface {
	Next(period time.Time) string
}

// Service generates document numbers with a random suffix.
type Service struct {
	cfg Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a numbering service seeded from the clock.
func New(cfg Config) *Service {
	return NewWithSource(cfg, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a numbering service with an explicit random source.
// Use in tests for reproducible output.
func NewWithSource(cfg Config, src rand.Source) *Service {
	if cfg.SuffixWidth <= 0 {
		cfg.SuffixWidth = 3
	}
	return &Service{
		cfg: cfg,
		rnd: rand.New(src),
	}
}

// Next generates a number for the given period.
// Pattern: PREFIX-YYYYMMDD-NNN.
func (s *Service) Next(period time.Time) string {
	s.mu.Lock()
	suffix := s.rnd.Intn(pow10(s.cfg.SuffixWidth))
	s.mu.Unlock()

	return fmt.Sprintf("%s-%s-%0*d", s.cfg.Prefix, period.Format("20060102"), s.cfg.SuffixWidth, suffix)
}

// Parse splits a formatted number into prefix, date code and suffix.
// Returns false if the input does not match the expected shape.
func Parse(formatted string) (prefix, dateCode string, suffix int, ok bool) {
	parts := strings.Split(formatted, "-")
	if len(parts) != 3 || len(parts[1]) != 8 {
		return "", "", 0, false
	}
	if _, err := time.Parse("20060102", parts[1]); err != nil {
		return "", "", 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 0 {
		return "", "", 0, false
	}
	return parts[0], parts[1], n, true
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
