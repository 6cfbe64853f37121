package assoc

import (
	"errors"
	"testing"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name       string
		s, t, a, b int
		want       Method
		wantErr    bool
	}{
		{name: "S and A resolve to MAC", s: 3, a: 2, want: MethodMAC},
		{name: "S A B resolve to RND", s: 3, a: 2, b: 2, want: MethodRND},
		{name: "all four resolve to WEAT", s: 3, t: 3, a: 2, b: 2, want: MethodWEAT},
		{name: "S alone is ambiguous", s: 3, wantErr: true},
		{name: "nothing is ambiguous", wantErr: true},
		{name: "missing B with T is ambiguous", s: 3, t: 3, a: 2, wantErr: true},
		{name: "T without S is ambiguous", t: 3, a: 2, b: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.s, tt.t, tt.a, tt.b)
			if tt.wantErr {
				if !errors.Is(err, ErrAmbiguousMethod) {
					t.Fatalf("Infer error = %v, want ErrAmbiguousMethod", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Infer error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Infer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{in: "weat", want: MethodWEAT},
		{in: "WEAT", want: MethodWEAT},
		{in: " mac ", want: MethodMAC},
		{in: "semaxis", want: MethodSemAxis},
		{in: "", want: MethodGuess},
		{in: "guess", want: MethodGuess},
		{in: "bogus", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMethod(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMethod(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMethodString(t *testing.T) {
	if got := MethodWEAT.String(); got != "weat" {
		t.Errorf("MethodWEAT.String() = %q, want weat", got)
	}
	if got := Method(99).String(); got != "method(99)" {
		t.Errorf("unknown method String() = %q", got)
	}
}
