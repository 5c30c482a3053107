package layout_test

import (
	"fmt"

	"github.com/matzehuels/scatterangle/pkg/geometry"
	"github.com/matzehuels/scatterangle/pkg/layout"
)

func ExampleBuild() {
	scene := layout.Build(geometry.Default(), 200, layout.WithDetector(800))

	for _, r := range scene.Rects {
		fmt.Printf("%-10s x=%g w=%g h=%g\n", r.Kind, r.X, r.W, r.H)
	}
	for _, line := range scene.Annotation {
		fmt.Println(line)
	}
	fmt.Printf("x: [%g, %g] y: [%g, %g]\n", scene.Bounds.XMin, scene.Bounds.XMax, scene.Bounds.YMin, scene.Bounds.YMax)
	// Output:
	// Glass cell x=160 w=80 h=21
	// Coil       x=50 w=300 h=100
	// Detector   x=800 w=1 h=128
	// Scattering angle: 5.0°
	// Detector coverage: 140.0 mm
	// x: [-50, 850] y: [0, 178]
}

func ExampleBuild_withoutDetector() {
	scene := layout.Build(geometry.Default(), 200)

	fmt.Println(len(scene.Rects), "rectangles")
	for _, ray := range scene.Rays {
		fmt.Printf("ray to (%g, %g)\n", ray.X2, ray.Y2)
	}
	fmt.Println(scene.Annotation)
	// Output:
	// 2 rectangles
	// ray to (240, 0)
	// ray to (240, 21)
	// [Scattering angle: 5.0°]
}
