package assoc

import (
	"fmt"
	"strings"
)

// Method identifies one bias-quantification metric. The zero value is Guess,
// which resolves to a concrete method by inspecting which word sets are
// non-empty.
type Method int

const (
	MethodGuess Method = iota
	MethodMAC
	MethodRND
	MethodRNSB
	MethodSemAxis
	MethodNAS
	MethodECT
	MethodWEAT
)

var methodNames = map[Method]string{
	MethodGuess:   "guess",
	MethodMAC:     "mac",
	MethodRND:     "rnd",
	MethodRNSB:    "rnsb",
	MethodSemAxis: "semaxis",
	MethodNAS:     "nas",
	MethodECT:     "ect",
	MethodWEAT:    "weat",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod maps a method name to its tag. Names are case-insensitive.
func ParseMethod(name string) (Method, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return MethodGuess, nil
	}
	for m, n := range methodNames {
		if n == want {
			return m, nil
		}
	}
	return MethodGuess, fmt.Errorf("unknown method %q", name)
}

// Infer resolves guess mode from the sizes of the four word sets.
//
// Precedence: methods requiring more of the provided sets win, so all four
// sets resolve to WEAT rather than any three-set method. For the S/A/B
// signature five methods tie; RND is the documented choice and the others
// must be requested by name. Every remaining combination is ambiguous.
func Infer(sLen, tLen, aLen, bLen int) (Method, error) {
	switch {
	case sLen > 0 && tLen > 0 && aLen > 0 && bLen > 0:
		return MethodWEAT, nil
	case sLen > 0 && tLen == 0 && aLen > 0 && bLen > 0:
		return MethodRND, nil
	case sLen > 0 && tLen == 0 && aLen > 0 && bLen == 0:
		return MethodMAC, nil
	}
	return MethodGuess, fmt.Errorf("%w: S=%d T=%d A=%d B=%d words given",
		ErrAmbiguousMethod, sLen, tLen, aLen, bLen)
}
