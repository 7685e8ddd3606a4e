package colour

import (
	"errors"
	"testing"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{name: "hex with hash", input: "#001978", wantHex: "#001978"},
		{name: "hex without hash", input: "262626", wantHex: "#262626"},
		{name: "uppercase hex", input: "#FFA500", wantHex: "#ffa500"},
		{name: "short hex", input: "#fa0", wantHex: "#ffaa00"},
		{name: "decimal text", input: "0, 25, 120", wantHex: "#001978"},
		{name: "decimal without spaces", input: "255,165,0", wantHex: "#ffa500"},
		{name: "rgb function", input: "rgb(102, 51, 153)", wantHex: "#663399"},
		{name: "surrounding whitespace", input: "  #ffffff  ", wantHex: "#ffffff"},
		{name: "empty", input: "", wantErr: true},
		{name: "bad hex digits", input: "#zzzzzz", wantErr: true},
		{name: "wrong hex length", input: "#12345", wantErr: true},
		{name: "two channels", input: "1, 2", wantErr: true},
		{name: "channel out of range", input: "256, 0, 0", wantErr: true},
		{name: "negative channel", input: "-1, 0, 0", wantErr: true},
		{name: "fractional channel", input: "0.5, 0, 0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColour(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColour(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidColour) {
					t.Errorf("ParseColour(%q) error = %v, want ErrInvalidColour", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) unexpected error: %v", tt.input, err)
			}
			if hex := Hex(got); hex != tt.wantHex {
				t.Errorf("ParseColour(%q) = %s, want %s", tt.input, hex, tt.wantHex)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	c := FromBytes(0, 128, 255)
	if c.R != 0 || c.G != 128.0/255.0 || c.B != 1 {
		t.Errorf("FromBytes(0, 128, 255) = %+v", c)
	}
	r, g, b := c.Bytes()
	if r != 0 || g != 128 || b != 255 {
		t.Errorf("Bytes() = (%d, %d, %d), want (0, 128, 255)", r, g, b)
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		color RGB
		want  bool
	}{
		{RGB{}, true},
		{RGB{R: 1, G: 1, B: 1}, true},
		{RGB{R: 0.3, G: 0.7, B: 0.2}, true},
		{RGB{R: -0.01}, false},
		{RGB{G: 1.01}, false},
	}

	for _, tt := range tests {
		if got := tt.color.InRange(); got != tt.want {
			t.Errorf("%+v.InRange() = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestRGBString(t *testing.T) {
	if got := DefaultReferences.Blue.String(); got != "rgb(0, 25, 120)" {
		t.Errorf("String() = %s, want rgb(0, 25, 120)", got)
	}
}
