package converter

import (
	"errors"
	"strings"
	"testing"
)

func TestMergeQuestionInfoMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{"No required columns", []string{"题号", "备注"}},
		{"Missing answer", []string{"材料内容", "*题目类型", "*题干"}},
		{"Missing material", []string{"*题目类型", "*题干", "*正确答案"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Headers: tt.headers, Rows: [][]string{make([]string, len(tt.headers))}}
			err := MergeQuestionInfo(table, DefaultConfig())
			if !errors.Is(err, ErrMissingColumns) {
				t.Fatalf("MergeQuestionInfo() error = %v; want ErrMissingColumns", err)
			}
			if len(table.Headers) != len(tt.headers) {
				t.Errorf("failed merge modified the table headers: %v", table.Headers)
			}
		})
	}
}

func TestMergeQuestionInfoSectionOrder(t *testing.T) {
	table := &Table{
		Headers: []string{"材料内容", "答题说明", "*题目类型", "*题干", "*正确答案", "选项A", "选项B", "选项C"},
		Rows: [][]string{
			{"阅读下文", "单选", "单选题", "下列正确的是？", "A", "甲", "", "丙"},
		},
	}

	if err := MergeQuestionInfo(table, DefaultConfig()); err != nil {
		t.Fatalf("MergeQuestionInfo() error = %v", err)
	}

	got, ok := table.Field(0, "题目信息")
	if !ok {
		t.Fatal("derived column not found")
	}

	want := strings.Join([]string{
		"材料内容：\n阅读下文",
		"答题说明：\n单选",
		"题目类型：\n单选题",
		"题干：\n下列正确的是？",
		"正确答案：\nA",
		"选项：\nA. 甲\nC. 丙",
	}, "\n\n")

	if got != want {
		t.Errorf("question info = %q; want %q", got, want)
	}
}

func TestMergeQuestionInfo(t *testing.T) {
	headers := []string{"材料内容", "*题目类型", "*题干", "*正确答案", "选项A"}

	tests := []struct {
		name     string
		row      []string
		expected string
	}{
		{
			name:     "All blank row gets empty value",
			row:      []string{"", "", "", "", ""},
			expected: "",
		},
		{
			name:     "Whitespace counts as blank",
			row:      []string{"  ", "单选题", "", "", ""},
			expected: "题目类型：\n单选题",
		},
		{
			name:     "Values are trimmed",
			row:      []string{"", " 判断题 ", " 对错？", "", ""},
			expected: "题目类型：\n判断题\n\n题干：\n对错？",
		},
		{
			name:     "Short row tolerated",
			row:      []string{"", "填空题"},
			expected: "题目类型：\n填空题",
		},
		{
			name:     "Single option renders with its letter",
			row:      []string{"", "", "", "", "某个选项"},
			expected: "选项：\nA. 某个选项",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{
				Headers: append([]string(nil), headers...),
				Rows:    [][]string{append([]string(nil), tt.row...)},
			}

			if err := MergeQuestionInfo(table, DefaultConfig()); err != nil {
				t.Fatalf("MergeQuestionInfo() error = %v", err)
			}

			if table.Headers[len(table.Headers)-1] != "题目信息" {
				t.Fatalf("derived column not appended last: %v", table.Headers)
			}

			got, ok := table.Field(0, "题目信息")
			if !ok {
				t.Fatal("derived value absent")
			}
			if got != tt.expected {
				t.Errorf("question info = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestMergeQuestionInfoPreservesOriginalColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"材料内容", "*题目类型", "*题干", "*正确答案", "备注"},
		Rows: [][]string{
			{"m", "单选题", "s", "A", "note"},
			{"", "多选题", "s2", "BC", ""},
		},
	}

	if err := MergeQuestionInfo(table, DefaultConfig()); err != nil {
		t.Fatalf("MergeQuestionInfo() error = %v", err)
	}

	if len(table.Headers) != 6 {
		t.Fatalf("headers = %v; want 6 columns", table.Headers)
	}
	for i, want := range []string{"材料内容", "*题目类型", "*题干", "*正确答案", "备注"} {
		if table.Headers[i] != want {
			t.Errorf("header[%d] = %q; want %q", i, table.Headers[i], want)
		}
	}
	if v, _ := table.Field(0, "备注"); v != "note" {
		t.Errorf("original cell changed: %q", v)
	}
	if v, _ := table.Field(1, "*正确答案"); v != "BC" {
		t.Errorf("original cell changed: %q", v)
	}
}
