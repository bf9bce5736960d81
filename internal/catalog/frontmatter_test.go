package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Frontmatter
		body    string
		wantErr error
	}{
		{
			name:    "valid header",
			content: "---\ntitle: Git\ntags: [vcs, collaboration]\nring: adopt\n---\n# Git\n",
			want: Frontmatter{
				"title": "Git",
				"tags":  []any{"vcs", "collaboration"},
				"ring":  "adopt",
			},
			body: "# Git\n",
		},
		{
			name:    "scalar types",
			content: "---\ntitle: 1984\ndraft: true\nweight: 2.5\n---\n",
			want:    Frontmatter{"title": 1984, "draft": true, "weight": 2.5},
			body:    "",
		},
		{
			name:    "keys are lower cased",
			content: "---\nTitle: Go\n---\nbody",
			want:    Frontmatter{"title": "Go"},
			body:    "body",
		},
		{
			name:    "trailing spaces and CRLF on delimiters",
			content: "---  \r\ntitle: Go\r\n---\r\nbody\r\n",
			want:    Frontmatter{"title": "Go"},
			body:    "body\r\n",
		},
		{
			name:    "byte order mark",
			content: "\ufeff---\ntitle: Go\n---\n",
			want:    Frontmatter{"title": "Go"},
			body:    "",
		},
		{
			name:    "closing delimiter at end of file",
			content: "---\ntitle: Go\n---",
			want:    Frontmatter{"title": "Go"},
			body:    "",
		},
		{
			name:    "empty block",
			content: "---\n---\nbody\n",
			want:    Frontmatter{},
			body:    "body\n",
		},
		{
			name:    "no header",
			content: "# Just markdown\n",
			want:    Frontmatter{},
			body:    "# Just markdown\n",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "header not at start",
			content: "\n---\ntitle: Go\n---\n",
			want:    Frontmatter{},
			body:    "\n---\ntitle: Go\n---\n",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "unterminated header",
			content: "---\ntitle: Go\nbody\n",
			want:    Frontmatter{},
			body:    "---\ntitle: Go\nbody\n",
			wantErr: ErrNoFrontmatter,
		},
		{
			name:    "invalid yaml",
			content: "---\ntitle: [unclosed\n---\nbody\n",
			want:    Frontmatter{},
			body:    "body\n",
			wantErr: ErrMalformedFrontmatter,
		},
		{
			name:    "sequence scalars keep their header text",
			content: "---\ntags: [1.0, \" ci \", true, ~, 0x1F]\n---\n",
			want:    Frontmatter{"tags": []any{"1.0", " ci ", "true", nil, "0x1F"}},
			body:    "",
		},
		{
			name:    "yaml list is not a mapping",
			content: "---\n- a\n- b\n---\nbody\n",
			want:    Frontmatter{},
			body:    "body\n",
			wantErr: ErrMalformedFrontmatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseFrontmatter(tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("frontmatter mismatch (-want +got):\n%s", diff)
			}
			if body != tt.body {
				t.Fatalf("body = %q, want %q", body, tt.body)
			}
		})
	}
}

func TestFrontmatterText(t *testing.T) {
	fm := Frontmatter{"ring": "  ", "stage": "trial", "title": 1984, "tags": []any{"a"}}
	if got := fm.Text("ring", "stage"); got != "trial" {
		t.Fatalf("Text(ring, stage) = %q, want trial", got)
	}
	if got := fm.Text("title"); got != "1984" {
		t.Fatalf("Text(title) = %q, want 1984", got)
	}
	if got := fm.Text("tags", "missing"); got != "" {
		t.Fatalf("Text(tags) = %q, want empty", got)
	}
}

func TestFrontmatterList(t *testing.T) {
	tests := []struct {
		name string
		fm   Frontmatter
		want []string
	}{
		{"sequence", Frontmatter{"tags": []any{"ci", " build ", 3}}, []string{"ci", " build ", "3"}},
		{"single scalar", Frontmatter{"tags": "ci"}, []string{"ci"}},
		{"missing", Frontmatter{}, []string{}},
		{"null", Frontmatter{"tags": nil}, []string{}},
		{"drops null and nested", Frontmatter{"tags": []any{"", nil, map[string]any{"a": 1}, []any{"y"}, "x"}}, []string{"", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.fm.List("tags")); diff != "" {
				t.Fatalf("List mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrontmatterList_ExactHeaderValues(t *testing.T) {
	fm, _, err := ParseFrontmatter("---\nTags:\n  - 1.0\n  - \"  spaced \"\n  - v2\n---\n")
	if err != nil {
		t.Fatalf("ParseFrontmatter: %v", err)
	}
	if diff := cmp.Diff([]string{"1.0", "  spaced ", "v2"}, fm.List("tags")); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}
