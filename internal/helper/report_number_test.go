package helper

import (
	"strings"
	"testing"
)

func TestNewReportNumberFormat(t *testing.T) {
	n := NewReportNumber()
	if !ValidReportNumber(n) {
		t.Fatalf("generated number %q does not match the expected format", n)
	}
	if !strings.HasPrefix(n, "REP-") {
		t.Fatalf("expected REP- prefix, got %q", n)
	}
}

func TestValidReportNumber(t *testing.T) {
	valid := []string{"REP-1756700000000-007", "REP-1756700000000-999"}
	for _, n := range valid {
		if !ValidReportNumber(n) {
			t.Fatalf("expected %q to be valid", n)
		}
	}

	invalid := []string{
		"",
		"REP-123-001",
		"REP-1756700000000-1234",
		"rep-1756700000000-001",
		"REP-1756700000000-01",
		"REP-1756700000000-001x",
	}
	for _, n := range invalid {
		if ValidReportNumber(n) {
			t.Fatalf("expected %q to be invalid", n)
		}
	}
}
