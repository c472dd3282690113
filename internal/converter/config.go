package converter

// Config describes the upstream spreadsheet schema. The header names are an
// external contract with the question-bank template, so they are carried as
// configuration rather than scattered literals.
type Config struct {
	// InstructionsMarker locates the instructions column by header substring.
	InstructionsMarker string

	// Required headers for the question-info merge. All four must be present.
	MaterialHeader     string
	QuestionTypeHeader string
	StemHeader         string
	AnswerHeader       string

	// InstructionsHeader is optional; it contributes a section only when the
	// column exists.
	InstructionsHeader string

	// OptionPrefix names the lettered option columns: OptionPrefix + "A".."K".
	OptionPrefix string

	// QuestionInfoHeader names the derived column appended by the merge.
	QuestionInfoHeader string
}

// OptionLetters are the fixed option slots, in render order.
const OptionLetters = "ABCDEFGHIJK"

// DefaultConfig returns the schema used by the upstream question-bank template.
func DefaultConfig() Config {
	return Config{
		InstructionsMarker: "答题说明",
		MaterialHeader:     "材料内容",
		QuestionTypeHeader: "*题目类型",
		StemHeader:         "*题干",
		AnswerHeader:       "*正确答案",
		InstructionsHeader: "答题说明",
		OptionPrefix:       "选项",
		QuestionInfoHeader: "题目信息",
	}
}

// RequiredHeaders lists the headers the merge stage cannot run without.
func (c Config) RequiredHeaders() []string {
	return []string{c.MaterialHeader, c.QuestionTypeHeader, c.StemHeader, c.AnswerHeader}
}
