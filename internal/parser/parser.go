// Package parser tokenises and parses a free-form reminder string into a
// reminder.PatternTree plus its trailing description, per spec §4.A. The
// grammar tries four top-level alternatives in order — cron, countdown,
// recurring, one-time — exactly as spec §4.A prescribes.
package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hzerrad/remindee/internal/reminder"
)

var decorative = map[string]bool{
	"on": true, "at": true, "every": true, "in": true, "after": true,
}

// compactDurationRe recognises a bare countdown/duration token so the
// Countdown alternative can be tried before Recurring, per spec §4.A.
var compactDurationRe = regexp.MustCompile(`^\d+(y|mo|w|d|h|m|s)`)

// cronFieldRe matches a word made only of numeric cron-field characters.
var cronFieldRe = regexp.MustCompile(`^[0-9*?/,\-]+$`)

// Result is the outcome of a successful parse: the compiled pattern plus the
// trimmed free-text description that followed it.
type Result struct {
	Pattern     reminder.PatternTree
	Description string
}

// Parse tokenises and parses raw into a Result, or returns a *ParseError.
func Parse(raw string) (Result, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Result{}, newParseError(0, "non-empty reminder text")
	}
	trimOffset := strings.Index(raw, trimmed)
	if trimOffset < 0 {
		trimOffset = 0
	}

	words, rel := fieldsWithPos(trimmed)
	pos := make([]int, len(rel))
	for k, p := range rel {
		pos[k] = trimOffset + p
	}
	i := 0

	if strings.EqualFold(words[0], "cron") {
		return parseCronTop(words, pos)
	}

	i = skipDecorative(words, i)
	if i >= len(words) {
		return Result{}, newParseError(posOrEnd(words, pos, i), "date, time, or duration")
	}

	if looksLikeDuration(words[i]) {
		return parseCountdownTop(words, pos, i)
	}

	// Determine the date/time prefix so we can decide Recurring vs OneTime.
	// Both alternatives consume one or two tokens (date, time) separated by
	// optional decorative words.
	dateIdx := i
	hasDateToken := containsAny(words[dateIdx], "/", "-", ",")

	if hasDateToken {
		return parseRecurringTop(words, pos, dateIdx)
	}

	// No explicit date separators in the first token: it's either a bare
	// time (OneTime, date omitted) or the start of a one-time date that
	// turns out to also need recurring separators in its *time* token, so
	// peek ahead before committing.
	timeIdx := skipDecorative(words, dateIdx+1)
	if timeIdx < len(words) && containsAny(words[timeIdx], "-", "/", ",") && !looksLikeDuration(words[timeIdx]) {
		return parseRecurringTop(words, pos, dateIdx)
	}

	return parseOneTimeTop(words, pos, dateIdx)
}

// fieldsWithPos splits s on whitespace like strings.Fields, but also returns
// each word's byte offset within s, so callers can translate a word index
// back into a position in the original input.
func fieldsWithPos(s string) (words []string, positions []int) {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		words = append(words, s[start:i])
		positions = append(positions, start)
	}
	return words, positions
}

func skipDecorative(words []string, i int) int {
	for i < len(words) && decorative[strings.ToLower(words[i])] {
		i++
	}
	return i
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func looksLikeDuration(tok string) bool {
	body := tok
	if idx := strings.IndexByte(body, '!'); idx >= 0 {
		body = body[:idx]
	}
	if containsAny(body, ".", "/", "-", ":", ",") {
		return false
	}
	return compactDurationRe.MatchString(body)
}

// splitNag splits a token on its first '!' into the pattern body and the
// nag-duration string (empty when absent), per spec §4.A: "a `!` immediately
// following the time pattern, followed by a duration".
func splitNag(tok string) (string, string) {
	idx := strings.IndexByte(tok, '!')
	if idx < 0 {
		return tok, ""
	}
	return tok[:idx], tok[idx+1:]
}

func joinDescription(words []string, from int) string {
	return strings.TrimSpace(strings.Join(words[from:], " "))
}

// posOrEnd returns the byte offset of words[i], or, when i has run past the
// end of words, the offset just past the last token — used when the grammar
// expected another token and none was left.
func posOrEnd(words []string, pos []int, i int) int {
	if i < len(words) {
		return pos[i]
	}
	if len(words) == 0 {
		return 0
	}
	last := len(words) - 1
	return pos[last] + len(words[last])
}

// --- Cron -------------------------------------------------------------

func parseCronTop(words []string, pos []int) (Result, error) {
	if len(words) < 6 {
		return Result{}, newParseError(posOrEnd(words, pos, len(words)), "cron <5-field-expr> <description>")
	}
	// A sixth word made only of cron-field characters makes this a
	// seconds-bearing six-field expression, which is rejected; a description
	// therefore cannot start with such a word.
	if len(words) > 6 && cronFieldRe.MatchString(words[6]) {
		return Result{}, validateCronSyntax(strings.Join(words[1:7], " "), pos[1])
	}
	fields := append([]string{}, words[1:6]...)
	last, nagStr := splitNag(fields[4])
	fields[4] = last
	expr := strings.Join(fields, " ")

	if err := validateCronSyntax(expr, pos[1]); err != nil {
		return Result{}, err
	}

	body := &reminder.CronBody{Expr: expr}
	if nagStr != "" {
		nag, err := parseNagDuration(nagStr, pos[5])
		if err != nil {
			return Result{}, err
		}
		body.Nag = &nag
	}

	return Result{
		Pattern:     reminder.PatternTree{Kind: reminder.KindCron, Cron: body},
		Description: joinDescription(words, 6),
	}, nil
}

// --- Countdown ----------------------------------------------------------

func parseCountdownTop(words []string, pos []int, i int) (Result, error) {
	tok := words[i]
	tokPos := pos[i]
	durStr, nagStr := splitNag(tok)

	u, err := parseUnitToken(durStr, tokPos)
	if err != nil {
		return Result{}, err
	}
	dur, err := u.asDuration(tokPos)
	if err != nil {
		return Result{}, err
	}
	if dur <= 0 {
		return Result{}, newParseError(tokPos, "positive duration")
	}

	body := &reminder.CountdownBody{Duration: dur}
	if nagStr != "" {
		nag, err := parseNagDuration(nagStr, tokPos)
		if err != nil {
			return Result{}, err
		}
		body.Nag = &nag
	}

	return Result{
		Pattern:     reminder.PatternTree{Kind: reminder.KindCountdown, Countdown: body},
		Description: joinDescription(words, i+1),
	}, nil
}

func parseNagDuration(s string, pos int) (time.Duration, error) {
	u, err := parseUnitToken(s, pos)
	if err != nil {
		return 0, err
	}
	return u.asDuration(pos)
}

// --- OneTime --------------------------------------------------------------

func parseOneTimeTop(words []string, pos []int, i int) (Result, error) {
	var dateTok, timeTok string
	var datePos, timeTokPos int
	hasDate := containsAny(words[i], ".", "/")

	if hasDate {
		dateTok = words[i]
		datePos = pos[i]
		i++
		i = skipDecorative(words, i)
		if i >= len(words) {
			return Result{}, newParseError(posOrEnd(words, pos, i), "time")
		}
		timeTok = words[i]
		timeTokPos = pos[i]
		i++
	} else {
		timeTok = words[i]
		timeTokPos = pos[i]
		i++
	}

	if strings.ContainsRune(timeTok, '!') {
		return Result{}, newParseError(timeTokPos, "one-time reminders cannot nag")
	}

	date, err := parsePartialDate(dateTok, datePos)
	if err != nil {
		return Result{}, err
	}
	t, err := parsePartialTime(timeTok, timeTokPos)
	if err != nil {
		return Result{}, err
	}

	var pd reminder.PartialDate
	if date != nil {
		pd = *date
	}

	return Result{
		Pattern:     reminder.PatternTree{Kind: reminder.KindOneTime, OneTime: &reminder.OneTimeBody{Date: pd, Time: t}},
		Description: joinDescription(words, i),
	}, nil
}

// --- Recurring --------------------------------------------------------

func parseRecurringTop(words []string, pos []int, i int) (Result, error) {
	dateTok := words[i]
	datePos := pos[i]
	i++
	i = skipDecorative(words, i)
	if i >= len(words) {
		return Result{}, newParseError(posOrEnd(words, pos, i), "time pattern")
	}
	timeTok := words[i]
	timeTokPos := pos[i]
	i++

	timeTok, nagStr := splitNag(timeTok)

	dateSegments := splitTopLevelDateSegments(dateTok)
	datePatterns := make([]reminder.DateSpan, 0, len(dateSegments))
	for _, seg := range dateSegments {
		span, err := parseDateSpan(seg, datePos)
		if err != nil {
			return Result{}, err
		}
		datePatterns = append(datePatterns, span)
	}

	timeSegments := strings.Split(timeTok, ",")
	timePatterns := make([]reminder.TimeSpan, 0, len(timeSegments))
	for _, seg := range timeSegments {
		span, err := parseTimeSpan(seg, timeTokPos)
		if err != nil {
			return Result{}, err
		}
		timePatterns = append(timePatterns, span)
	}

	body := &reminder.RecurringBody{DatePatterns: datePatterns, TimePatterns: timePatterns}
	if nagStr != "" {
		nag, err := parseNagDuration(nagStr, timeTokPos)
		if err != nil {
			return Result{}, err
		}
		body.Nag = &nag
	}

	return Result{
		Pattern:     reminder.PatternTree{Kind: reminder.KindRecurring, Recurring: body},
		Description: joinDescription(words, i),
	}, nil
}
