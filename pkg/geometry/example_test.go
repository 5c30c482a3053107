package geometry_test

import (
	"fmt"

	"github.com/matzehuels/scatterangle/pkg/geometry"
)

func ExampleInstrument_ScatteringAngle() {
	inst := geometry.Default()
	angle := inst.ScatteringAngle(200)

	fmt.Printf("angle: %.5f rad (%.1f°)\n", angle, geometry.Degrees(angle))
	// Output:
	// angle: 0.08728 rad (5.0°)
}

func ExampleInstrument_Coverage() {
	inst := geometry.Default()

	fmt.Printf("coverage: %.1f mm\n", inst.Coverage(200, 800))
	// Output:
	// coverage: 140.0 mm
}

func ExampleInstrument_ScatteringAngle_degenerate() {
	inst := geometry.Default()

	// The downstream face of the cell sits on the sample.
	fmt.Println(inst.ScatteringAngle(-40))
	fmt.Println(inst.Coverage(-40, 800))
	// Output:
	// +Inf
	// NaN
}
