package docnum

import (
	"math/rand"
	"regexp"
	"testing"
	"time"
)

func TestNext_Format(t *testing.T) {
	svc := NewWithSource(DefaultConfig("REQ"), rand.NewSource(1))
	period := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	num := svc.Next(period)

	matched, err := regexp.MatchString(`^REQ-20240115-\d{3}$`, num)
	if err != nil {
		t.Fatalf("regexp error: %v", err)
	}
	if !matched {
		t.Errorf("expected REQ-20240115-NNN shape, got %s", num)
	}
}

func TestNext_SuffixPadded(t *testing.T) {
	svc := NewWithSource(DefaultConfig("REQ"), rand.NewSource(42))
	period := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		num := svc.Next(period)
		if len(num) != len("REQ-20240115-000") {
			t.Fatalf("suffix not padded to 3 digits: %s", num)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantOK  bool
		prefix  string
		date    string
		suffix  int
	}{
		{name: "valid", in: "REQ-20240115-042", wantOK: true, prefix: "REQ", date: "20240115", suffix: 42},
		{name: "bad date", in: "REQ-20241315-042", wantOK: false},
		{name: "short date", in: "REQ-2024-042", wantOK: false},
		{name: "missing suffix", in: "REQ-20240115", wantOK: false},
		{name: "garbage suffix", in: "REQ-20240115-xx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, date, suffix, ok := Parse(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if prefix != tt.prefix || date != tt.date || suffix != tt.suffix {
				t.Errorf("Parse(%q) = (%s, %s, %d)", tt.in, prefix, date, suffix)
			}
		})
	}
}
