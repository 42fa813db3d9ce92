package service

import (
	"CivicPulseAPI/ent/report"
	"testing"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to report.Status }{
		{report.StatusSubmitted, report.StatusValidated},
		{report.StatusSubmitted, report.StatusRejected},
		{report.StatusSubmitted, report.StatusDuplicate},
		{report.StatusValidated, report.StatusInProgress},
		{report.StatusValidated, report.StatusRejected},
		{report.StatusValidated, report.StatusDuplicate},
		{report.StatusInProgress, report.StatusResolved},
		{report.StatusInProgress, report.StatusRejected},
		{report.StatusInProgress, report.StatusDuplicate},
	}
	for _, tc := range allowed {
		if !canTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to report.Status }{
		{report.StatusSubmitted, report.StatusInProgress},
		{report.StatusSubmitted, report.StatusResolved},
		{report.StatusValidated, report.StatusResolved},
		{report.StatusValidated, report.StatusSubmitted},
		{report.StatusInProgress, report.StatusValidated},
	}
	for _, tc := range denied {
		if canTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	terminal := []report.Status{report.StatusResolved, report.StatusRejected, report.StatusDuplicate}
	all := []report.Status{
		report.StatusSubmitted, report.StatusValidated, report.StatusInProgress,
		report.StatusResolved, report.StatusRejected, report.StatusDuplicate,
	}

	for _, from := range terminal {
		for _, to := range all {
			if canTransition(from, to) {
				t.Fatalf("terminal status %s should not transition to %s", from, to)
			}
		}
	}
}
