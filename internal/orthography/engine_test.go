package orthography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Static lexicon
		{"lexicon single word", "codigo", "código"},
		{"lexicon in sentence", "el codigo es bueno", "el código es bueno"},
		{"lexicon ignores embedded fragment", "decodigo", "decodigo"},
		{"lexicon ignores prefix of longer word", "codigos", "codigos"},
		{"lexicon is case sensitive", "Codigo", "Codigo"},
		{"lexicon capitalised entry", "Cmo funciona", "Cómo funciona"},
		{"lexicon multiple matches", "ms y ms", "más y más"},
		{"lexicon next to punctuation", "(codigo), codigo.", "(código), código."},

		// -cin
		{"cin lexicon entry", "formacin", "formación"},
		{"cin generic", "informacin", "información"},
		{"cin generic capitalised", "Instalacin", "Instalación"},
		{"cin excluded f", "fcin", "fcin"},
		{"cin excluded fi", "ficin", "ficin"},
		{"cin excluded case insensitive", "FIcin", "FIcin"},
		{"cin excluded with space", "fi cin", "fi cin"},
		{"cin bare word untouched", "cin", "cin"},
		{"cin inside word untouched", "cincuenta", "cincuenta"},

		// -sin
		{"sin lexicon entry", "comisin", "comisión"},
		{"sin generic", "expresin", "expresión"},
		{"sin lexicon versin", "versin", "versión"},
		{"sin override capitalised", "Versin", "versión"},
		{"sin bare word untouched", "sin embargo", "sin embargo"},

		// Future stems
		{"future standalone", "Yo dir que si", "Yo dirá que si"},
		{"future longer word untouched", "dirigir", "dirigir"},
		{"future already accented", "dirá", "dirá"},
		{"future several stems", "tendr y habr", "tendrá y habrá"},

		// Phrases
		{"phrase missing space", "para que seformen", "para que se formen"},
		{"phrase missing accent", "el sector esta creciendo", "el sector está creciendo"},
		{"phrase esta listo", "todo esta listo", "todo está listo"},

		// Unicode boundaries
		{"accented word not rematched", "está", "está"},
		{"accented neighbour blocks match", "pasó", "pasó"},
		{"empty input", "", ""},
	}

	engine := New()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, engine.Correct(tt.input))
		})
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	t.Parallel()

	samples := []string{
		"El ao pasado la tcnica de fotogrametra mejor mucho.",
		"La informacin y la decisin de la comisin est lista.",
		"Yo dir que Canad tendr ms drones an.",
		"## Versin 2\n\nLa regin necesita capacitacin tcnica, por qu no?",
		"Qu es la termografa? Cmo se usa en minera?",
		"El sector esta creciendo y todo esta listo para que seformen pilotos.",
		"texto ya correcto: la formación técnica está aquí",
		"",
	}

	engine := New()

	for _, sample := range samples {
		once := engine.Correct(sample)
		assert.Equal(t, once, engine.Correct(once), "input %q", sample)
	}
}

func TestCorrectLeavesCorrectTextUntouched(t *testing.T) {
	t.Parallel()

	text := "---\ntitle: \"Guía de drones\"\n---\n\n" +
		"La formación técnica está aquí. Después de la inspección, " +
		"el análisis económico muestra que el número de vehículos autónomos " +
		"crecerá en la región durante el próximo año."

	result := New().Apply(text)
	assert.False(t, result.Changed())
	assert.Equal(t, text, result.Text)
	assert.Empty(t, result.Changes)
}

func TestLexiconTakesPrecedenceOverSuffixRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		rule  string
		want  string
	}{
		{"comisin", "comisin → comisión", "comisión"},
		{"versin", "versin → versión", "versión"},
		{"Direccin", "Direccin → Dirección", "Dirección"},
	}

	engine := New()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			result := engine.Apply(tt.input)
			assert.Equal(t, tt.want, result.Text)
			require.Len(t, result.Changes, 1)
			assert.Equal(t, tt.rule, result.Changes[0].Rule)
			assert.Equal(t, StageLexicon, result.Changes[0].Stage)
		})
	}
}

func TestApplyReportsChanges(t *testing.T) {
	t.Parallel()

	result := New().Apply("La informacin est en el codigo y el codigo funciona.")

	assert.True(t, result.Changed())
	assert.Equal(t, "La información está en el código y el código funciona.", result.Text)
	assert.Equal(t, 4, result.Replacements())
	assert.Equal(t, 1, result.AmbiguousReplacements())

	require.Len(t, result.Changes, 3)
	assert.Equal(t, Change{Rule: "codigo → código", Stage: StageLexicon, Count: 2}, result.Changes[0])
	assert.Equal(t, Change{Rule: "est → está", Stage: StageLexicon, Count: 1, Ambiguous: true}, result.Changes[1])
	assert.Equal(t, Change{Rule: "-cin → -ción", Stage: StageSuffixCin, Count: 1}, result.Changes[2])
}

func TestAmbiguousFutureStem(t *testing.T) {
	t.Parallel()

	result := New().Apply("puede ser")

	assert.Equal(t, "puede será", result.Text)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, StageFuture, result.Changes[0].Stage)
	assert.True(t, result.Changes[0].Ambiguous)
}

func TestRulesOrder(t *testing.T) {
	t.Parallel()

	rules := New().Rules()
	require.NotEmpty(t, rules)

	// Stages never go backwards.
	for i := 1; i < len(rules); i++ {
		assert.GreaterOrEqual(t, rules[i].Stage(), rules[i-1].Stage(), "rule %d (%s)", i, rules[i].Name())
	}

	assert.Equal(t, StageLexicon, rules[0].Stage())
	assert.Equal(t, StagePhrase, rules[len(rules)-1].Stage())
	assert.Len(t, rules, len(lexicon)+2+len(futureStems)+len(phrases))
}

func TestRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	engine := New()
	rules := engine.Rules()
	rules[0] = nil

	assert.NotNil(t, engine.Rules()[0])
	assert.Equal(t, "código", engine.Correct("codigo"))
}

func TestStageString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lexicon", StageLexicon.String())
	assert.Equal(t, "suffix-cin", StageSuffixCin.String())
	assert.Equal(t, "suffix-sin", StageSuffixSin.String())
	assert.Equal(t, "future", StageFuture.String())
	assert.Equal(t, "phrase", StagePhrase.String())
	assert.Equal(t, "unknown", Stage(0).String())
}
