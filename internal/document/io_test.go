package document

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path           string
		wantFormat     Format
		wantCompressed bool
		wantErr        bool
	}{
		{path: "cards.json", wantFormat: FormatJSON},
		{path: "CARDS.JSON", wantFormat: FormatJSON},
		{path: "cards.yaml", wantFormat: FormatYAML},
		{path: "dir/cards.yml", wantFormat: FormatYAML},
		{path: "cards.json.xz", wantFormat: FormatJSON, wantCompressed: true},
		{path: "cards.yaml.xz", wantFormat: FormatYAML, wantCompressed: true},
		{path: "cards.txt", wantErr: true},
		{path: "cards.xz", wantErr: true},
		{path: "cards", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, compressed, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("FormatFromPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFromPath(%q) unexpected error: %v", tt.path, err)
			}
			if format != tt.wantFormat || compressed != tt.wantCompressed {
				t.Errorf("FormatFromPath(%q) = (%s, %v), want (%s, %v)",
					tt.path, format, compressed, tt.wantFormat, tt.wantCompressed)
			}
		})
	}
}

func TestLoadFixture(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "cards.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.Name != "Brand colours" {
		t.Errorf("Name = %q, want %q", doc.Name, "Brand colours")
	}
	frame := doc.SelectedFrame()
	if frame == nil {
		t.Fatal("SelectedFrame() = nil, want the palette frame")
	}
	if len(frame.Children) != 2 {
		t.Fatalf("frame has %d children, want 2", len(frame.Children))
	}

	report, err := NewUpdater(nil).Update(context.Background(), doc)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(report.Updated) != 1 || report.Updated[0] != "Orange" {
		t.Errorf("Updated = %v, want [Orange]", report.Updated)
	}
	if len(report.Skipped) != 1 || report.Skipped[0].Instance != "Empty" {
		t.Errorf("Skipped = %v, want [Empty]", report.Skipped)
	}

	orange := doc.Find("card-orange")
	if got := child(orange, TextHex).Characters; got != "#ffa500" {
		t.Errorf("HEX = %q, want #ffa500", got)
	}
	if got := child(orange, TextHSL).Characters; got != "39, 100%, 50%" {
		t.Errorf("HSL = %q, want 39, 100%%, 50%%", got)
	}
	white := child(child(orange, ContrastsFrame), "White")
	if white.Characters != "1.97" || white.IsVisible() {
		t.Errorf("White = (%q, %v), want (1.97, false)", white.Characters, white.IsVisible())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "cards.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := NewUpdater(nil).Update(context.Background(), src); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	for _, name := range []string{"out.json", "out.yaml", "out.yml", "out.json.xz", "out.yaml.xz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, src); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			var want, have bytes.Buffer
			if err := Encode(&want, src, FormatJSON); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if err := Encode(&have, got, FormatJSON); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if want.String() != have.String() {
				t.Errorf("round trip through %s changed the document:\n%s\nwant:\n%s", name, have.String(), want.String())
			}
		})
	}
}

func TestSaveCompressesXZ(t *testing.T) {
	doc := selectedFrame()
	path := filepath.Join(t.TempDir(), "doc.json.xz")
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	// xz stream magic.
	if !bytes.HasPrefix(data, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}) {
		t.Errorf("saved file does not start with the xz header: %x", data[:6])
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	subdir := filepath.Join(dir, "folder.json")
	if err := os.Mkdir(subdir, 0o700); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}
	notXZ := filepath.Join(dir, "plain.json.xz")
	if err := os.WriteFile(notXZ, []byte("{}"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "missing.json"), "not found"},
		{"directory", subdir, "is a directory"},
		{"unsupported extension", filepath.Join(dir, "doc.toml"), "unsupported document format"},
		{"malformed json", broken, "failed to parse JSON document"},
		{"not xz", notXZ, "xz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load(%q) error = %v, want containing %q", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	src := `
name: Sheet
selection: [f]
children:
  - id: f
    name: Frame
    type: FRAME
    children:
      - name: Card
        type: INSTANCE
        children:
          - name: Swatch
            type: RECTANGLE
            fills:
              - type: SOLID
                color: {r: 0, g: 0, b: 0}
          - name: HEX
            type: TEXT
`
	doc, err := Decode(strings.NewReader(src), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, err := NewUpdater(nil).Update(context.Background(), doc); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	hex := doc.SelectedFrame().Children[0].Children[1]
	if hex.Characters != "#000000" {
		t.Errorf("HEX = %q, want #000000", hex.Characters)
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Document{}, Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Decode(strings.NewReader(""), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}
