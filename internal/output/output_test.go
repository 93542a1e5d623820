package output

import (
	"strings"
	"testing"
)

type stringered struct {
	Msg string `json:"msg" yaml:"msg"`
}

func (s stringered) String() string { return "msg=" + s.Msg }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	v := stringered{Msg: "hello"}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "msg=hello\n"},
		{FormatJSON, "{\n  \"msg\": \"hello\"\n}\n"},
		{FormatYAML, "msg: hello\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var sb strings.Builder
			if err := Render(&sb, tt.format, v); err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("Render = %q, want %q", sb.String(), tt.want)
			}
		})
	}
}
