package helper

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

var reportNumberPattern = regexp.MustCompile(`^REP-\d{13}-\d{3}$`)

// NewReportNumber produces a human-readable report identifier of the form
// REP-<unixMillis>-<3-digit zero-padded random>. The format is not
// collision-free; callers must retry on a uniqueness violation.
func NewReportNumber() string {
	return fmt.Sprintf("REP-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

func ValidReportNumber(n string) bool {
	return reportNumberPattern.MatchString(n)
}
