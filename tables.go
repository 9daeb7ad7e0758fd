package precession

import "slices"

// Table maps each polynomial term to its coefficients in arcseconds.
// Index 0 is the constant term; index i multiplies T^i.
type Table map[Term][]float64

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for term, coeffs := range t {
		out[term] = slices.Clone(coeffs)
	}
	return out
}

// Epsilon0 returns the constant term of epsilon, or false if the table has
// no epsilon coefficients.
func (t Table) Epsilon0() (float64, bool) {
	coeffs := t[TermEpsilon]
	if len(coeffs) == 0 {
		return 0, false
	}
	return coeffs[0], true
}

// TableFor returns a copy of the built-in coefficients for m.
func TableFor(m Model) (Table, error) {
	if !m.valid() {
		return nil, invalidArgument("unknown model %v", m)
	}
	return builtinTables[m].Clone(), nil
}

var builtinTables = [numModels]Table{
	IAU1976: iau1976,
	IAU2000: iau2000,
	IAU2006: iau2006,
}

// Lieske, Lederle, Fricke & Morando (1977), A&A 58, 1.
var iau1976 = Table{
	TermP:       {0, 4.1976, 0.19447, -0.000179},
	TermQ:       {0, -46.8150, 0.05059, 0.000344},
	TermEta:     {0, 47.0029, -0.03302, 0.000060},
	TermPi:      {629554.9824, -869.8089, 0.03536},
	TermSmallP:  {0, 5029.0966, 1.11113, -0.000006},
	TermEpsilon: {84381.448, -46.8150, -0.00059, 0.001813},
	TermChi:     {0, 10.5526, -2.38064, -0.001125},
	TermOmega:   {84381.448, 0, 0.05127, -0.007726},
	TermPsi:     {0, 5038.7784, -1.07259, -0.001147},
	TermTheta:   {0, 2004.3109, -0.42665, -0.041833},
	TermZeta:    {0, 2306.2181, 0.30188, 0.017998},
	TermZ:       {0, 2306.2181, 1.09468, 0.018203},
}

// IAU1976 with the IAU2000 precession-rate corrections (IERS Conventions
// 2003) and the Capitaine et al. (2003) equatorial angles.
var iau2000 = Table{
	TermP:       {0, 4.1976, 0.19447, -0.000179},
	TermQ:       {0, -46.8150, 0.05059, 0.000344},
	TermEta:     {0, 47.0029, -0.03302, 0.000060},
	TermPi:      {629554.9824, -869.8089, 0.03536},
	TermSmallP:  {0, 5028.79695, 1.11113, -0.000006},
	TermEpsilon: {84381.448, -46.84024, -0.00059, 0.001813},
	TermChi:     {0, 10.5526, -2.38064, -0.001125},
	TermOmega:   {84381.448, -0.02524, 0.05127, -0.007726},
	TermPsi:     {0, 5038.47875, -1.07259, -0.001147},
	TermTheta:   {0, 2004.1917476, -0.4269353, -0.0418251, -0.0000601, -0.0000001},
	TermZeta:    {2.5976176, 2306.0809506, 0.3019015, 0.0180203, -0.0000058, -0.0000003},
	TermZ:       {-2.5976176, 2306.0803226, 1.0947790, 0.0182273, 0.0000470, -0.0000003},
}

// Capitaine, Wallace & Chapront (2003), A&A 412, 567 (P03).
var iau2006 = Table{
	TermP:       {0, 4.199094, 0.1939873, -0.00022466, -0.000000912, 0.0000000120},
	TermQ:       {0, -46.811015, 0.0510283, 0.00052413, -0.000000646, -0.0000000172},
	TermEta:     {0, 46.998973, -0.0334926, -0.00012559, 0.000000113, -0.0000000022},
	TermPi:      {629546.7936, -867.95758, 0.157992, -0.0005371, -0.00004797, 0.000000072},
	TermSmallP:  {0, 5028.796195, 1.1054348, 0.00007964, -0.000023857, -0.0000000383},
	TermEpsilon: {84381.406, -46.836769, -0.0001831, 0.00200340, -0.000000576, -0.0000000434},
	TermChi:     {0, 10.556403, -2.3814292, -0.00121197, 0.000170663, -0.0000000560},
	TermOmega:   {84381.406, -0.025754, 0.0512623, -0.00772503, -0.000000467, 0.0000003337},
	TermPsi:     {0, 5038.481507, -1.0790069, -0.00114045, 0.000132851, -0.0000000951},
	TermTheta:   {0, 2004.191903, -0.4294934, -0.04182264, -0.000007089, -0.0000001274},
	TermZeta:    {2.650545, 2306.083227, 0.2988499, 0.01801828, -0.000005971, -0.0000003173},
	TermZ:       {-2.650545, 2306.077181, 1.0927348, 0.01826837, -0.000028596, -0.0000002904},
}
