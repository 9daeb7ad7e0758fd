package precession

import "fmt"

// Term identifies one precession quantity.
type Term int

const (
	TermP        Term = iota // P_A, ecliptic pole: sin π_A sin Π_A
	TermQ                    // Q_A, ecliptic pole: sin π_A cos Π_A
	TermEta                  // π_A, inclination of the ecliptic of date
	TermPi                   // Π_A, longitude of the ecliptic node
	TermSmallP               // p_A, general precession in longitude
	TermEpsilon0             // ε0, obliquity at J2000.0
	TermEpsilon              // ε_A, mean obliquity of date
	TermChi                  // χ_A, planetary precession
	TermOmega                // ω_A, obliquity w.r.t. the J2000 ecliptic
	TermPsi                  // ψ_A, luni-solar precession
	TermTheta                // θ_A, equatorial precession angle
	TermZeta                 // ζ_A, equatorial precession angle
	TermZ                    // z_A, equatorial precession angle

	numTerms
)

var termNames = [numTerms]string{
	TermP:        "P",
	TermQ:        "Q",
	TermEta:      "eta",
	TermPi:       "pi",
	TermSmallP:   "p",
	TermEpsilon0: "epsilon0",
	TermEpsilon:  "epsilon",
	TermChi:      "chi",
	TermOmega:    "omega",
	TermPsi:      "psi",
	TermTheta:    "theta",
	TermZeta:     "zeta",
	TermZ:        "z",
}

var termsByName = func() map[string]Term {
	m := make(map[string]Term, numTerms)
	for t, name := range termNames {
		m[name] = Term(t)
	}
	return m
}()

// ParseTerm resolves a term name. Matching is case-sensitive: "P" and "p"
// are different terms.
func ParseTerm(name string) (Term, error) {
	t, ok := termsByName[name]
	if !ok {
		return 0, invalidArgument("illegal key %q", name)
	}
	return t, nil
}

// Terms returns every term, including epsilon0.
func Terms() []Term {
	out := make([]Term, numTerms)
	for i := range out {
		out[i] = Term(i)
	}
	return out
}

// PolynomialTerms returns every term evaluated from a coefficient
// sequence, which is all of them except epsilon0.
func PolynomialTerms() []Term {
	out := make([]Term, 0, numTerms-1)
	for _, t := range Terms() {
		if t != TermEpsilon0 {
			out = append(out, t)
		}
	}
	return out
}

// String returns the term's key, e.g. "psi".
func (t Term) String() string {
	if !t.valid() {
		return fmt.Sprintf("Term(%d)", int(t))
	}
	return termNames[t]
}

func (t Term) valid() bool {
	return t >= 0 && t < numTerms
}
