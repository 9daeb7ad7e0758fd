package precession

import (
	"fmt"
	"strings"
)

// Model selects the coefficient set used to evaluate terms.
type Model int

const (
	IAU1976 Model = iota // Lieske et al. (1977)
	IAU2000              // IAU2000 precession, IERS Conventions 2003
	IAU2006              // Capitaine, Wallace & Chapront (2003), P03

	numModels
)

// DefaultModel is used when no model is configured.
const DefaultModel = IAU2006

var modelNames = [numModels]string{
	IAU1976: "iau1976",
	IAU2000: "iau2000",
	IAU2006: "iau2006",
}

// ParseModel resolves a model name case-insensitively.
func ParseModel(name string) (Model, error) {
	lower := strings.ToLower(name)
	for m, n := range modelNames {
		if n == lower {
			return Model(m), nil
		}
	}
	return 0, invalidArgument("model %q should be iau1976, iau2000 or iau2006", name)
}

// Models returns every supported model.
func Models() []Model {
	return []Model{IAU1976, IAU2000, IAU2006}
}

// String returns the normalized lowercase model name.
func (m Model) String() string {
	if !m.valid() {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

func (m Model) valid() bool {
	return m >= 0 && m < numModels
}
