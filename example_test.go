package precession_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/behaver/precession"
	"github.com/behaver/precession/epoch"
)

func ExampleNew() {
	e, err := precession.New(epoch.AtJ2000())
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Model:", e.Model())
	fmt.Printf("epsilon: %.3f\n", e.Epsilon())
	fmt.Printf("zeta: %.6f\n", e.Zeta())
	// Output:
	// Model: iau2006
	// epsilon: 84381.406
	// zeta: 2.650545
}

func ExampleEngine_SetModel() {
	e, _ := precession.New(epoch.AtJ2000())
	fmt.Printf("iau2006 epsilon0: %.3f\n", e.Epsilon0())

	_ = e.SetModel("IAU1976")
	fmt.Printf("%s epsilon0: %.3f\n", e.Model(), e.Epsilon0())

	err := e.SetModel("iau1999")
	fmt.Println("invalid argument:", errors.Is(err, precession.ErrInvalidArgument))
	// Output:
	// iau2006 epsilon0: 84381.406
	// iau1976 epsilon0: 84381.448
	// invalid argument: true
}

func ExampleEngine_Get() {
	ep, _ := epoch.FromCenturies(1)
	e, _ := precession.New(ep)

	eps, _ := e.Get("epsilon")
	fmt.Printf("epsilon: %.4f\n", eps)

	_, err := e.Get("bogus")
	fmt.Println(err)
	// Output:
	// epsilon: 84334.5711
	// precession: invalid argument: illegal key "bogus"
}

func ExampleEvaluate() {
	ep, _ := epoch.FromCenturies(2)
	fmt.Println(precession.Evaluate([]float64{1, 1, 1}, ep))
	// Output: 7
}

func ExampleCheckTables() {
	status, results := precession.CheckTables(context.Background())
	fmt.Println(status, len(results))
	// Output: healthy 3
}
