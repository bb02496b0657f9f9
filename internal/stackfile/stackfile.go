// Package stackfile loads effect stacks from YAML documents.
//
// A stack file lists effects in compositing order:
//
//	effects:
//	  - kind: chroma-key
//	    params:
//	      keyColor: "#00ff00"
//	      similarity: 0.3
//	  - kind: fade
//	    keyframes:
//	      opacity:
//	        - {time: 0, value: 0}
//	        - {time: 2, value: 1, easing: ease-out}
//
// Names of kinds, easings and enums are matched the same way as by the
// framefx Parse functions. An effect of unknown kind is kept as
// framefx.KindUnknown so the compositor skips it, mirroring how a render
// treats an unknown operator.
package stackfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/framefx"
)

// ErrInvalidStack is returned for documents that are not a valid stack.
var ErrInvalidStack = errors.New("stackfile: invalid stack")

type document struct {
	Effects []effectDoc `yaml:"effects"`
}

type effectDoc struct {
	Kind      string                   `yaml:"kind"`
	Enabled   *bool                    `yaml:"enabled"`
	Params    map[string]yaml.Node     `yaml:"params"`
	Keyframes map[string][]keyframeDoc `yaml:"keyframes"`
}

type keyframeDoc struct {
	Time   float64     `yaml:"time"`
	Value  yaml.Node   `yaml:"value"`
	Easing string      `yaml:"easing"`
	Bezier *[4]float64 `yaml:"bezier"`
}

// Load reads and decodes the stack file at path.
func Load(path string) (framefx.Stack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stackfile: open: %w", err)
	}
	defer f.Close()

	stack, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stack, nil
}

// Decode reads one YAML stack document from r. Unknown fields are errors.
func Decode(r io.Reader) (framefx.Stack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return framefx.Stack{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidStack, err)
	}

	stack := make(framefx.Stack, 0, len(doc.Effects))
	for i, ed := range doc.Effects {
		e, err := ed.effect(i)
		if err != nil {
			return nil, err
		}
		stack = append(stack, e)
	}
	return stack, nil
}

func (ed effectDoc) effect(index int) (framefx.Effect, error) {
	if ed.Kind == "" {
		return framefx.Effect{}, fmt.Errorf("%w: effect %d has no kind", ErrInvalidStack, index)
	}

	kind, err := framefx.ParseKind(ed.Kind)
	if err != nil {
		framefx.Logger().Warn("stackfile: unknown effect kind, effect will be skipped",
			"index", index, "kind", ed.Kind)
	}

	e := framefx.NewEffect(kind)
	if ed.Enabled != nil {
		e.Enabled = *ed.Enabled
	}

	for name, node := range ed.Params {
		v, err := scalar(&node)
		if err != nil {
			return framefx.Effect{}, fmt.Errorf("%w: effect %d parameter %q: %v", ErrInvalidStack, index, name, err)
		}
		e = e.With(name, v)
	}

	for name, kds := range ed.Keyframes {
		kfs := make([]framefx.Keyframe, 0, len(kds))
		for j, kd := range kds {
			kf, err := kd.keyframe()
			if err != nil {
				return framefx.Effect{}, fmt.Errorf("%w: effect %d keyframe %q[%d]: %v", ErrInvalidStack, index, name, j, err)
			}
			kfs = append(kfs, kf)
		}
		e = e.WithKeyframes(name, kfs...)
	}
	return e, nil
}

func (kd keyframeDoc) keyframe() (framefx.Keyframe, error) {
	v, err := scalar(&kd.Value)
	if err != nil {
		return framefx.Keyframe{}, err
	}

	easing := framefx.EaseLinear
	if kd.Easing != "" {
		if easing, err = framefx.ParseEasing(kd.Easing); err != nil {
			return framefx.Keyframe{}, err
		}
	}
	return framefx.Keyframe{Time: kd.Time, Value: v, Easing: easing, Bezier: kd.Bezier}, nil
}

// scalar converts a YAML scalar to a Value by its resolved tag.
func scalar(n *yaml.Node) (framefx.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return framefx.Value{}, fmt.Errorf("line %d: expected a scalar value", n.Line)
	}

	switch n.ShortTag() {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return framefx.Value{}, err
		}
		return framefx.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return framefx.Value{}, err
		}
		return framefx.Number(f), nil
	case "!!str":
		return framefx.String(n.Value), nil
	default:
		return framefx.Value{}, fmt.Errorf("line %d: unsupported value %s", n.Line, n.ShortTag())
	}
}
