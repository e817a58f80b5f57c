package orthography

// lexiconEntry is a whole-word correction applied verbatim.
type lexiconEntry struct {
	pattern     string
	replacement string
	ambiguous   bool
}

// lexicon is applied in order, once per entry. No replacement reintroduces an
// earlier pattern, so a single pass is enough.
//
// Entries flagged ambiguous are real Spanish words in their own right; they
// are kept because the corpus only uses them in stripped form, and every
// firing is reported so callers can review it.
var lexicon = []lexiconEntry{
	{"Direccin", "Dirección", false},
	{"Aeronutica", "Aeronáutica", false},
	{"Aeronutico", "Aeronáutico", false},
	{"Aeronuticos", "Aeronáuticos", false},
	{"versin", "versión", false},
	{"reas", "áreas", false},
	{"rea", "área", false},
	{"ms", "más", false},
	{"ao", "año", false},
	{"aos", "años", false},
	{"dcada", "década", false},
	{"tcnica", "técnica", false},
	{"tcnicas", "técnicas", false},
	{"tcnico", "técnico", false},
	{"tcnicos", "técnicos", false},
	{"mximo", "máximo", false},
	{"mxima", "máxima", false},
	{"travs", "través", false},
	{"tambin", "también", false},
	{"lnea", "línea", false},
	{"lneas", "líneas", false},
	{"elctrica", "eléctrica", false},
	{"elctrico", "eléctrico", false},
	{"elctricos", "eléctricos", false},
	{"elctricas", "eléctricas", false},
	{"qumica", "química", false},
	{"atencin", "atención", false},
	{"despus", "después", false},
	{"obtencin", "obtención", false},
	{"formacin", "formación", false},
	{"capacitacin", "capacitación", false},
	{"certificacin", "certificación", false},
	{"regin", "región", false},
	{"pblico", "público", false},
	{"pblica", "pública", false},
	{"pblicos", "públicos", false},
	{"pblicas", "públicas", false},
	{"tecnologa", "tecnología", false},
	{"tecnolgica", "tecnológica", false},
	{"tecnolgico", "tecnológico", false},
	{"tecnolgicos", "tecnológicos", false},
	{"tecnolgicas", "tecnológicas", false},
	{"podrs", "podrás", false},
	{"estarn", "estarán", false},
	{"podr", "podrá", false},
	{"tendrs", "tendrás", false},
	{"tendrn", "tendrán", false},
	{"encontrars", "encontrarás", false},
	{"encontrarn", "encontrarán", false},
	{"reunin", "reunión", false},
	{"comisin", "comisión", false},
	{"posicin", "posición", false},
	{"crtica", "crítica", false},
	{"crtico", "crítico", false},
	{"crticos", "críticos", false},
	{"crticas", "críticas", false},
	{"dinmico", "dinámico", false},
	{"fotogrametra", "fotogrametría", false},
	{"Fotogrametra", "Fotogrametría", false},
	{"topografa", "topografía", false},
	{"termografa", "termografía", false},
	{"Termografa", "Termografía", false},
	{"geografa", "geografía", false},
	{"drasticamente", "drásticamente", false},
	{"facil", "fácil", false},
	{"dificil", "difícil", false},
	{"unico", "único", false},
	{"unica", "única", false},
	{"ultimo", "último", false},
	{"ultima", "última", false},
	{"codigo", "código", false},
	{"basico", "básico", false},
	{"nmero", "número", false},
	{"analisis", "análisis", false},
	{"anlisis", "análisis", false},
	{"estratgico", "estratégico", false},
	{"estratgica", "estratégica", false},
	{"estratgicos", "estratégicos", false},
	{"estratgicas", "estratégicas", false},
	{"logstica", "logística", false},
	{"minera", "minería", false},
	{"autnomo", "autónomo", false},
	{"autnoma", "autónoma", false},
	{"autnomos", "autónomos", false},
	{"autnomas", "autónomas", false},
	{"rabes", "árabes", false},
	{"Canad", "Canadá", false},
	{"prctica", "práctica", false},
	{"prctico", "práctico", false},
	{"prcticos", "prácticos", false},
	{"prcticas", "prácticas", false},
	{"terica", "teórica", false},
	{"terico", "teórico", false},
	{"tericos", "teóricos", false},
	{"tericas", "teóricas", false},
	{"est", "está", true},
	{"estn", "están", false},
	{"estas", "estás", false},
	{"decisin", "decisión", false},
	{"mnima", "mínima", false},
	{"mnimo", "mínimo", false},
	{"mnimos", "mínimos", false},
	{"mnimas", "mínimas", false},
	{"vehculo", "vehículo", false},
	{"vehculos", "vehículos", false},
	{"artculo", "artículo", false},
	{"quines", "quiénes", false},
	{"quin", "quién", false},
	{"cmo", "cómo", false},
	{"Cmo", "Cómo", false},
	{"qu", "qué", false},
	{"Qu", "Qué", false},
	{"por qu", "por qué", false},
	{"Por qu", "Por qué", false},
	{"Ests", "Estás", false},
	{"Est", "Está", false},
	{"proximas", "próximas", false},
	{"proxima", "próxima", false},
	{"proximo", "próximo", false},
	{"proximos", "próximos", false},
	{"rpido", "rápido", false},
	{"rpida", "rápida", false},
	{"rpidamente", "rápidamente", false},
	{"pas", "país", false},
	{"pases", "países", false},
	{"energa", "energía", false},
	{"gestin", "gestión", false},
	{"investigacin", "investigación", false},
	{"prevencin", "prevención", false},
	{"proteccin", "protección", false},
	{"expansin", "expansión", false},
	{"regulacin", "regulación", false},
	{"produccin", "producción", false},
	{"inspeccin", "inspección", false},
	{"inspecciones", "inspecciones", false},
	{"prxima", "próxima", false},
	{"prximo", "próximo", false},
	{"autonoma", "autonomía", false},
	{"an", "aún", true},
	{"all", "allá", true},
	{"Ser", "Será", true},
	{"econmico", "económico", false},
	{"econmica", "económica", false},
	{"econmicos", "económicos", false},
	{"econmicas", "económicas", false},
	{"area", "área", false},
	{"astronutica", "aeronáutica", false},
}
