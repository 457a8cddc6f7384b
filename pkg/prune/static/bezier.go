package static

import (
	"math"

	"github.com/gucio321/iconport/pkg/placement"
)

// curveSteps is how many segments a curve is split into when measured.
const curveSteps = 16

type point = placement.Point[placement.SourcePos]

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// bezier evaluates the Bezier curve of any order given by points at t.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func bezier(t float64, points []point) point {
	var result point

	n := len(points) - 1
	for i, p := range points {
		d := float64(factorial(n)) /
			float64(factorial(i)*factorial(n-i)) *
			math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		result = result.Add(p.Mul(placement.SourcePos(d)))
	}

	return result
}

// sampleCurve returns steps+1 points of the curve, both ends included.
func sampleCurve(steps int, points ...point) []point {
	result := make([]point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		result = append(result, bezier(float64(i)/float64(steps), points))
	}

	return result
}
