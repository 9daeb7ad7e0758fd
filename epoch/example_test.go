package epoch_test

import (
	"fmt"

	"github.com/behaver/precession/epoch"
)

func ExampleFromCenturies() {
	d, err := epoch.FromCenturies(0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(d)
	fmt.Println("T^0:", d.CenturyPower(0))
	fmt.Println("T^2:", d.CenturyPower(2))
	// Output:
	// JDE 2469807.500000
	// T^0: 1
	// T^2: 0.25
}
