package catalog

import "testing"

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "section followed by another heading",
			body: "# Widget\n\n## Description\n\nA build widget.\n\n## Usage\n\nRun it.\n",
			want: "A build widget.",
		},
		{
			name: "multi-line paragraph stops at blank line",
			body: "## Description\n\nLine one\nline two.\n\nSecond paragraph.\n",
			want: "Line one\nline two.",
		},
		{
			name: "paragraph interrupted by heading",
			body: "## Description\n\nText here\n## Next\n",
			want: "Text here",
		},
		{
			name: "paragraph at end of file",
			body: "## Description\n\nLast words",
			want: "Last words",
		},
		{
			name: "deeper heading level",
			body: "### Description\n\nNested.\n",
			want: "Nested.",
		},
		{
			name: "inline markup kept verbatim",
			body: "## Description\n\n**Bold** text with [a link](https://example.com).\n",
			want: "**Bold** text with [a link](https://example.com).",
		},
		{
			name: "no blank line after heading",
			body: "## Description\nText\n",
			want: "",
		},
		{
			name: "level one heading ignored",
			body: "# Description\n\nText\n",
			want: "",
		},
		{
			name: "heading with extra words",
			body: "## Description of things\n\nText\n",
			want: "",
		},
		{
			name: "section followed by a list",
			body: "## Description\n\n- item\n",
			want: "",
		},
		{
			name: "no section",
			body: "# Widget\n\nSome text.\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.body); got != tt.want {
				t.Fatalf("ExtractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
