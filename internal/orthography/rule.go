package orthography

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stage identifies a step of the correction pipeline. Stages run in
// ascending order.
type Stage int

const (
	StageLexicon Stage = iota + 1
	StageSuffixCin
	StageSuffixSin
	StageFuture
	StagePhrase
)

func (s Stage) String() string {
	switch s {
	case StageLexicon:
		return "lexicon"
	case StageSuffixCin:
		return "suffix-cin"
	case StageSuffixSin:
		return "suffix-sin"
	case StageFuture:
		return "future"
	case StagePhrase:
		return "phrase"
	default:
		return "unknown"
	}
}

// Rule is a single text transform in the pipeline.
type Rule interface {
	// Name describes the rule for listings and logs, e.g. "codigo → código".
	Name() string
	Stage() Stage
	// Ambiguous reports whether the pattern is also a legitimate word in
	// correct Spanish text.
	Ambiguous() bool
	// Apply returns the rewritten text and the number of replacements made.
	Apply(text string) (string, int)
}

// Decision receives a matched word and the stem captured by the rule's
// pattern and returns the replacement, or word itself to leave it as is.
type Decision func(word, stem string) string

// isWordRune mirrors a Unicode-aware \w: letters, digits, combining marks and
// underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// atWordBoundary reports whether text[start:end] is neither preceded nor
// followed by a word rune.
func atWordBoundary(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// replaceWords is the match, decide, replace primitive shared by every
// regex-based rule. Matches that touch a word rune on either side are left
// alone. The stem passed to decide is the first capture group, or the whole
// match when the pattern has no groups.
func replaceWords(re *regexp.Regexp, text string, decide Decision) (string, int) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	last, count := 0, 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !atWordBoundary(text, start, end) {
			continue
		}
		word := text[start:end]
		stem := word
		if len(m) >= 4 && m[2] >= 0 {
			stem = text[m[2]:m[3]]
		}
		replacement := decide(word, stem)
		if replacement == word {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(replacement)
		last = end
		count++
	}
	if count == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), count
}

// wordRule replaces a fixed whole word (or fixed run of words) with a fixed
// correction.
type wordRule struct {
	re          *regexp.Regexp
	pattern     string
	replacement string
	stage       Stage
	ambiguous   bool
}

func newWordRule(stage Stage, pattern, replacement string, ambiguous bool) *wordRule {
	return &wordRule{
		re:          regexp.MustCompile(regexp.QuoteMeta(pattern)),
		pattern:     pattern,
		replacement: replacement,
		stage:       stage,
		ambiguous:   ambiguous,
	}
}

func (r *wordRule) Name() string    { return r.pattern + " → " + r.replacement }
func (r *wordRule) Stage() Stage    { return r.stage }
func (r *wordRule) Ambiguous() bool { return r.ambiguous }

func (r *wordRule) Apply(text string) (string, int) {
	return replaceWords(r.re, text, func(string, string) string { return r.replacement })
}

// suffixRule matches words ending in a stripped suffix and lets a Decision
// pick the correction from the captured stem.
type suffixRule struct {
	re     *regexp.Regexp
	name   string
	stage  Stage
	decide Decision
}

// stemLetters is the set of letters a suffix rule accepts in a stem.
const stemLetters = `[a-zA-ZáéíóúÁÉÍÓÚüÜ]`

func newSuffixRule(stage Stage, name, suffix string, decide Decision) *suffixRule {
	return &suffixRule{
		re:     regexp.MustCompile(`(` + stemLetters + `+)` + regexp.QuoteMeta(suffix)),
		name:   name,
		stage:  stage,
		decide: decide,
	}
}

func (r *suffixRule) Name() string  { return r.name }
func (r *suffixRule) Stage() Stage  { return r.stage }
func (*suffixRule) Ambiguous() bool { return false }

func (r *suffixRule) Apply(text string) (string, int) {
	return replaceWords(r.re, text, r.decide)
}

// phraseRule is a plain substring replacement.
type phraseRule struct {
	from string
	to   string
}

func (r *phraseRule) Name() string  { return r.from + " → " + r.to }
func (*phraseRule) Stage() Stage    { return StagePhrase }
func (*phraseRule) Ambiguous() bool { return false }

func (r *phraseRule) Apply(text string) (string, int) {
	n := strings.Count(text, r.from)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, r.from, r.to), n
}
