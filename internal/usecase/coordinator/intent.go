package coordinator

import (
	"strings"

	"github.com/tishinatyt/meetus/internal/domain"
)

// intentMatch reports which trigger vocabularies a message hits. Both can
// match at once; the caller resolves the tie (place flow wins).
type intentMatch struct {
	Place bool
	Time  bool
}

// vocabulary is the per-language keyword set. This is deliberately a
// substring heuristic, not NLP: detection has to be deterministic and
// testable independently of the model. Near-miss phrasing falls through to
// the default free-text flow.
type vocabulary struct {
	place []string
	time  []string
}

var vocabularies = map[domain.Language]vocabulary{
	domain.LanguageUA: {
		place: []string{"ок", "окей", "згоден", "згодна", "місце", "agree"},
		time:  []string{"час", "о ", "time", "at "},
	},
	domain.LanguageEN: {
		place: []string{"ok", "okay", "agree", "deal", "place"},
		time:  []string{"time", "at ", "pm", "o'clock"},
	},
}

// classifyIntent matches a participant message against the language's
// trigger vocabulary, case-insensitive.
func classifyIntent(lang domain.Language, text string) intentMatch {
	vocab, ok := vocabularies[lang]
	if !ok {
		vocab = vocabularies[domain.LanguageUA]
	}

	lower := strings.ToLower(text)
	var m intentMatch
	for _, kw := range vocab.place {
		if strings.Contains(lower, kw) {
			m.Place = true
			break
		}
	}
	for _, kw := range vocab.time {
		if strings.Contains(lower, kw) {
			m.Time = true
			break
		}
	}
	return m
}
