package framefx

import "testing"

func TestValueVariants(t *testing.T) {
	if n, ok := Number(2.5).AsNumber(); !ok || n != 2.5 {
		t.Errorf("Number(2.5).AsNumber() = %v, %v", n, ok)
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("Bool(true).AsBool() = %v, %v", b, ok)
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Errorf("String(\"x\").AsString() = %q, %v", s, ok)
	}
	if _, ok := String("1").AsNumber(); ok {
		t.Error("String value should not report a number")
	}
}

func TestValueZeroIsNumberZero(t *testing.T) {
	var v Value
	if n, ok := v.AsNumber(); !ok || n != 0 {
		t.Errorf("zero Value = %v, %v, want Number(0)", n, ok)
	}
	if v != Number(0) {
		t.Error("zero Value != Number(0)")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1.5), "1.5"},
		{Bool(false), "false"},
		{String("normal"), `"normal"`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if TypeString.String() != "string" || TypeBool.String() != "bool" || TypeNumber.String() != "number" {
		t.Error("ValueType names mismatch")
	}
}
