package assoc

import (
	"errors"
	"testing"
)

func TestQueryGuessDispatch(t *testing.T) {
	space := weatTestSpace(t)
	tests := []struct {
		name       string
		s, t, a, b []string
		wantMethod string
	}{
		{
			name: "S and A guess MAC",
			s:    []string{"s1", "s2"}, a: []string{"a1", "a2"},
			wantMethod: "mac",
		},
		{
			name: "S A B guess RND",
			s:    []string{"s1", "s2"}, a: []string{"a1"}, b: []string{"b1"},
			wantMethod: "rnd",
		},
		{
			name: "all four guess WEAT",
			s:    []string{"s1", "s2"}, t: []string{"t1", "t2"},
			a: []string{"a1", "a2"}, b: []string{"b1", "b2"},
			wantMethod: "weat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Query(space, tt.s, tt.t, tt.a, tt.b, MethodGuess)
			if err != nil {
				t.Fatalf("Query error = %v", err)
			}
			if res.Method != tt.wantMethod {
				t.Errorf("Query resolved to %q, want %q", res.Method, tt.wantMethod)
			}
		})
	}
}

func TestQueryGuessAmbiguous(t *testing.T) {
	space := weatTestSpace(t)
	_, err := Query(space, []string{"s1"}, nil, nil, nil, MethodGuess)
	if !errors.Is(err, ErrAmbiguousMethod) {
		t.Errorf("Query error = %v, want ErrAmbiguousMethod", err)
	}
}

func TestQueryExplicitMethod(t *testing.T) {
	space := weatTestSpace(t)
	res, err := Query(space, []string{"s1"}, nil, []string{"a1"}, []string{"b1"}, MethodSemAxis)
	if err != nil {
		t.Fatalf("Query error = %v", err)
	}
	if res.Method != "semaxis" {
		t.Errorf("Query method = %q, want semaxis", res.Method)
	}
}

func TestQueryValidationErrors(t *testing.T) {
	space := weatTestSpace(t)
	if _, err := Query(space, nil, nil, []string{"a1"}, nil, MethodMAC); !errors.Is(err, ErrEmptyWordSet) {
		t.Errorf("empty S error = %v, want ErrEmptyWordSet", err)
	}
	if _, err := Query(space, []string{"missing"}, nil, []string{"a1"}, nil, MethodMAC); !errors.Is(err, ErrMissingWord) {
		t.Errorf("absent word error = %v, want ErrMissingWord", err)
	}
	if _, err := Query(nil, []string{"s1"}, nil, []string{"a1"}, nil, MethodMAC); err == nil {
		t.Error("nil space should error")
	}
}

func TestQueryDoesNotMutateInputs(t *testing.T) {
	space := weatTestSpace(t)
	s := []string{"s2", "s1"}
	a := []string{"a2", "a1"}
	if _, err := Query(space, s, nil, a, nil, MethodMAC); err != nil {
		t.Fatalf("Query error = %v", err)
	}
	if s[0] != "s2" || a[0] != "a2" {
		t.Error("Query reordered caller word sets")
	}
}
