package lint

// Diagnostic codes, adapted from the teacher's check.CodeXxx constants
// (internal/check/codes.go) to the reminder domain.
const (
	// CodeUnreachable indicates a bounded recurring span whose until
	// precedes its own first occurrence, so it can never fire.
	CodeUnreachable = "REM-001"
	// CodeNagExceedsPeriod indicates a nag interval longer than the
	// reminder's own recurrence period, making the nag moot.
	CodeNagExceedsPeriod = "REM-002"
	// CodeExcessiveFrequency indicates a pattern firing more often than
	// a sane threshold (spec §9's "excessive cron frequency", widened
	// here to cover recurring divisors too).
	CodeExcessiveFrequency = "REM-003"
	// CodeZeroDivisor indicates a divisor that does not actually advance.
	CodeZeroDivisor = "REM-004"
)

// Hint returns a human-facing suggestion for a diagnostic code.
func Hint(code string) string {
	switch code {
	case CodeUnreachable:
		return "The until date is before the pattern's first possible occurrence; this reminder will never fire."
	case CodeNagExceedsPeriod:
		return "The nag interval is longer than how often this reminder recurs; consider shortening it or removing the nag."
	case CodeExcessiveFrequency:
		return "This pattern fires very frequently. Consider whether that's intentional."
	case CodeZeroDivisor:
		return "This divisor never advances; the pattern would fire on a single instant only."
	default:
		return ""
	}
}
