package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	var s sample
	if err := Unmarshal([]byte("name: test\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if s.Name != "test" || s.Count != 3 {
		t.Errorf("Unmarshal() = %+v", s)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	var s sample

	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Unmarshal(_, nil) error = %v, want ErrNilDestination", err)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Unmarshal(big) error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	var s sample
	if err := UnmarshalStrict([]byte("name: x\nunknown: y\n"), &s); err == nil {
		t.Error("UnmarshalStrict() accepted unknown field")
	}
	if err := UnmarshalStrict([]byte("name: x\n"), &s); err != nil {
		t.Errorf("UnmarshalStrict() error: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := sample{Name: "round", Count: 7}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var out sample
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
