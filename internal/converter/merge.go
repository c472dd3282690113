package converter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumns indicates the table lacks one or more required headers.
// Callers treat it as a designed fallback: keep the flattened CSV and skip
// the question-info merge.
var ErrMissingColumns = errors.New("missing required columns")

// MergeQuestionInfo derives the question-info column and appends it to the
// table. Each row's value is the ordered concatenation of its labeled,
// non-blank sections, joined by blank lines. Rows with no qualifying section
// get an empty value; the column is still appended.
func MergeQuestionInfo(t *Table, cfg Config) error {
	var missing []string
	for _, name := range cfg.RequiredHeaders() {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	hasInstructions := cfg.InstructionsHeader != "" && t.HasColumn(cfg.InstructionsHeader)

	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		var parts []string

		appendSection := func(header string) {
			v, _ := t.Field(i, header)
			if v = strings.TrimSpace(v); v != "" {
				parts = append(parts, sectionLabel(header)+"：\n"+v)
			}
		}

		appendSection(cfg.MaterialHeader)
		if hasInstructions {
			appendSection(cfg.InstructionsHeader)
		}
		appendSection(cfg.QuestionTypeHeader)
		appendSection(cfg.StemHeader)
		appendSection(cfg.AnswerHeader)

		var options []string
		for _, letter := range OptionLetters {
			v, ok := t.Field(i, cfg.OptionPrefix+string(letter))
			if !ok {
				continue
			}
			if v = strings.TrimSpace(v); v != "" {
				options = append(options, fmt.Sprintf("%c. %s", letter, v))
			}
		}
		if len(options) > 0 {
			parts = append(parts, sectionLabel(cfg.OptionPrefix)+"：\n"+strings.Join(options, "\n"))
		}

		values[i] = strings.Join(parts, "\n\n")
	}

	return t.AppendColumn(cfg.QuestionInfoHeader, values)
}

// sectionLabel turns a header name into its display label. The upstream
// template marks mandatory headers with a leading asterisk that is not part
// of the label.
func sectionLabel(header string) string {
	return strings.TrimPrefix(header, "*")
}
