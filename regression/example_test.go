package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/confplot/regression"
)

// ExampleFit demonstrates a straight-line fit and its residuals.
func ExampleFit() {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	m, err := regression.Fit(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("intercept=%.2f slope=%.2f R²=%.2f\n", m.Coefficients[0], m.Coefficients[1], m.RSquared)
	fmt.Printf("prediction at 10: %.2f\n", m.Predict(10))

	// Output:
	// intercept=1.00 slope=2.00 R²=1.00
	// prediction at 10: 21.00
}
