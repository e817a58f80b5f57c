// Package orthography restores accents stripped from Spanish text using an
// ordered pipeline of correction rules.
//
// The pipeline runs five stages in a fixed order: the static lexicon, the
// "-cin" and "-sin" suffix repairs, the future-tense stem repair and finally
// literal phrase touch-ups. Lexicon entries run before the suffix heuristics
// so that words listed explicitly win over the generic rules.
//
// An Engine holds no mutable state and is safe for concurrent use.
package orthography

// Change records how many times a rule fired on a text.
type Change struct {
	Rule      string
	Stage     Stage
	Count     int
	Ambiguous bool
}

// Result is the outcome of running the pipeline over one text.
type Result struct {
	Original string
	Text     string
	Changes  []Change
}

// Changed reports whether the corrected text differs from the input.
func (r Result) Changed() bool {
	return r.Original != r.Text
}

// Replacements returns the total number of replacements across all rules.
func (r Result) Replacements() int {
	total := 0
	for _, c := range r.Changes {
		total += c.Count
	}
	return total
}

// AmbiguousReplacements returns the number of replacements made by rules
// flagged as ambiguous.
func (r Result) AmbiguousReplacements() int {
	total := 0
	for _, c := range r.Changes {
		if c.Ambiguous {
			total += c.Count
		}
	}
	return total
}

// Engine applies the correction rules in order.
type Engine struct {
	rules []Rule
}

// New builds an Engine with the built-in rule set.
func New() *Engine {
	return &Engine{rules: defaultRules()}
}

func defaultRules() []Rule {
	rules := make([]Rule, 0, len(lexicon)+2+len(futureStems)+len(phrases))

	for _, e := range lexicon {
		rules = append(rules, newWordRule(StageLexicon, e.pattern, e.replacement, e.ambiguous))
	}

	rules = append(rules,
		newSuffixRule(StageSuffixCin, "-cin → -ción", "cin", decideCion),
		newSuffixRule(StageSuffixSin, "-sin → -sión", "sin", decideSion),
	)

	for _, stem := range futureStems {
		_, ambiguous := ambiguousStems[stem]
		rules = append(rules, newWordRule(StageFuture, stem, stem+"á", ambiguous))
	}

	for i := range phrases {
		rules = append(rules, &phrases[i])
	}

	return rules
}

// Rules returns the ordered rule table.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Correct returns text with every rule applied.
func (e *Engine) Correct(text string) string {
	for _, rule := range e.rules {
		text, _ = rule.Apply(text)
	}
	return text
}

// Apply is Correct plus a record of the rules that fired.
func (e *Engine) Apply(text string) Result {
	result := Result{Original: text}
	for _, rule := range e.rules {
		var n int
		text, n = rule.Apply(text)
		if n > 0 {
			result.Changes = append(result.Changes, Change{
				Rule:      rule.Name(),
				Stage:     rule.Stage(),
				Count:     n,
				Ambiguous: rule.Ambiguous(),
			})
		}
	}
	result.Text = text
	return result
}
