package cli

import (
	"strings"
	"testing"
)

func TestEnumValue(t *testing.T) {
	v := newEnumValue("text", "text", "json", "yaml")

	if v.String() != "text" || v.Type() != "string" {
		t.Fatalf("default = %q (%s), want text (string)", v.String(), v.Type())
	}

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "json", want: "json"},
		{input: " YAML ", want: "yaml"},
		{input: "xml", want: "yaml", wantErr: true},
		{input: "", want: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := v.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "text, json, yaml") {
				t.Errorf("error %q does not list allowed values", err)
			}
			if v.String() != tt.want {
				t.Errorf("value = %q, want %q", v.String(), tt.want)
			}
		})
	}
}
