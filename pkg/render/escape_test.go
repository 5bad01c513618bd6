package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{`"q" 'q'`, "&quot;q&quot; &#39;q&#39;"},
		{"line\nbreak", "line\nbreak"},
	}
	for _, tt := range tests {
		if got := escapeHTML(tt.in); got != tt.want {
			t.Errorf("escapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	if got, want := escapeAttr("a\tb\r\nc<"), "a&#9;b&#13;&#10;c&lt;"; got != want {
		t.Errorf("escapeAttr = %q, want %q", got, want)
	}
}
