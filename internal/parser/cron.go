package parser

import (
	"strings"

	"github.com/robfig/cron/v3"
)

// cronSyntax validates a cron expression syntactically only (spec §4.B
// point 6) — it never computes occurrences. Six-field (with-seconds)
// expressions are rejected rather than guessed, per the open question in
// spec §9.
//
// BOUNDARY: this is the only place internal/parser calls robfig/cron.
// internal/occurrence owns the separate boundary that actually computes
// Schedule.Next(), mirroring the teacher's split between
// internal/cronx/parser.go (validates) and internal/cronx/scheduler.go
// (computes).
var cronSyntaxParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

func validateCronSyntax(expr string, pos int) error {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return newParseError(pos, "cron expression")
	}
	if !strings.HasPrefix(trimmed, "@") {
		fields := strings.Fields(trimmed)
		if len(fields) == 6 {
			return newParseError(pos, "5-field cron (6-field rejected)")
		}
		if len(fields) != 5 {
			return newParseError(pos, "5-field cron expression")
		}
	}
	if _, err := cronSyntaxParser.Parse(trimmed); err != nil {
		return newParseError(pos, "valid cron expression")
	}
	return nil
}
