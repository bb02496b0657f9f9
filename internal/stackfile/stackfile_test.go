package stackfile

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/framefx"
)

const sample = `
effects:
  - kind: chroma-key
    params:
      keyColor: "#00ff00"
      similarity: 0.3
      spillSuppression: 1
  - kind: GaussianBlur
    enabled: false
    params:
      radius: 4
  - kind: blend-mode
    params:
      mode: multiply
      opacity: 80
  - kind: fade
    keyframes:
      opacity:
        - {time: 0, value: 0}
        - {time: 2, value: 1, easing: ease-out}
        - time: 3
          value: 0.5
          easing: bezier
          bezier: [0, 0.2, 0.8, 1]
`

func TestDecode(t *testing.T) {
	stack, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(stack) != 4 {
		t.Fatalf("len(stack) = %d, want 4", len(stack))
	}

	wantKinds := []framefx.Kind{framefx.KindChromaKey, framefx.KindGaussianBlur, framefx.KindBlendMode, framefx.KindFade}
	for i, k := range wantKinds {
		if stack[i].Kind != k {
			t.Errorf("stack[%d].Kind = %v, want %v", i, stack[i].Kind, k)
		}
	}

	if !stack[0].Enabled || stack[1].Enabled {
		t.Errorf("Enabled = %v, %v, want true, false", stack[0].Enabled, stack[1].Enabled)
	}

	if s, ok := stack[0].Params["keyColor"].AsString(); !ok || s != "#00ff00" {
		t.Errorf("keyColor = %v, want \"#00ff00\"", stack[0].Params["keyColor"])
	}
	if n, ok := stack[0].Params["similarity"].AsNumber(); !ok || n != 0.3 {
		t.Errorf("similarity = %v, want 0.3", stack[0].Params["similarity"])
	}
	if n, ok := stack[2].Params["opacity"].AsNumber(); !ok || n != 80 {
		t.Errorf("opacity = %v, want 80", stack[2].Params["opacity"])
	}

	kfs := stack[3].Keyframes["opacity"]
	if len(kfs) != 3 {
		t.Fatalf("len(keyframes) = %d, want 3", len(kfs))
	}
	if kfs[1].Time != 2 || kfs[1].Easing != framefx.EaseOut {
		t.Errorf("keyframe 1 = %+v, want time 2 ease-out", kfs[1])
	}
	if kfs[2].Easing != framefx.EaseBezier || kfs[2].Bezier == nil || *kfs[2].Bezier != [4]float64{0, 0.2, 0.8, 1} {
		t.Errorf("keyframe 2 = %+v, want bezier [0 0.2 0.8 1]", kfs[2])
	}
}

func TestDecodeRenders(t *testing.T) {
	stack, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	src := framefx.NewFrame(8, 8)
	src.Fill(255, 0, 0, 255)

	out, err := framefx.Render(src, stack, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out.Width != 8 || out.Height != 8 {
		t.Errorf("output size = %dx%d, want 8x8", out.Width, out.Height)
	}
}

func TestDecodeScalarTypes(t *testing.T) {
	doc := `
effects:
  - kind: chroma-key
    params:
      keyColor: 0x00ff00
      flag: true
      name: plain
`
	stack, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	p := stack[0].Params
	if n, ok := p["keyColor"].AsNumber(); !ok || n != 0x00ff00 {
		t.Errorf("keyColor = %v, want number 0x00ff00", p["keyColor"])
	}
	if b, ok := p["flag"].AsBool(); !ok || !b {
		t.Errorf("flag = %v, want true", p["flag"])
	}
	if s, ok := p["name"].AsString(); !ok || s != "plain" {
		t.Errorf("name = %v, want plain", p["name"])
	}
}

func TestDecodeUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	framefx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer framefx.SetLogger(nil)

	stack, err := Decode(strings.NewReader("effects:\n  - kind: sharpen\n"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if stack[0].Kind != framefx.KindUnknown {
		t.Errorf("Kind = %v, want unknown", stack[0].Kind)
	}
	if !strings.Contains(buf.String(), "sharpen") {
		t.Errorf("expected a warning naming the kind, got %q", buf.String())
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, doc := range []string{"", "effects: []\n"} {
		stack, err := Decode(strings.NewReader(doc))
		if err != nil || len(stack) != 0 {
			t.Errorf("Decode(%q) = %d effects, %v, want empty", doc, len(stack), err)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "effects:\n  - kind: fade\n    strength: 2\n"},
		{"missing kind", "effects:\n  - params: {value: 1}\n"},
		{"list param", "effects:\n  - kind: fade\n    params: {opacity: [1, 2]}\n"},
		{"null keyframe value", "effects:\n  - kind: fade\n    keyframes: {opacity: [{time: 0}]}\n"},
		{"bad easing", "effects:\n  - kind: fade\n    keyframes: {opacity: [{time: 0, value: 1, easing: wobble}]}\n"},
		{"not a mapping", "- 1\n- 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); !errors.Is(err, ErrInvalidStack) {
				t.Errorf("Decode() error = %v, want ErrInvalidStack", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}

	stack, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(stack) != 4 {
		t.Errorf("len(stack) = %d, want 4", len(stack))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
