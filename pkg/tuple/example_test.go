package tuple_test

import (
	"fmt"

	"github.com/kyverno/tupleargs/pkg/tuple"
	"github.com/spf13/pflag"
)

func ExampleFloat64s() {
	parse := tuple.Float64s(0)

	point, err := parse("1.0,2.0,3.0")
	fmt.Println(point, err)

	_, err = tuple.Float64s(2)("1.0,2.0,3.0")
	fmt.Println(err)

	_, err = parse("x,y")
	fmt.Println(err)
	// Output:
	// (1, 2, 3) <nil>
	// Expected 2 items
	// Expect comma-separated tuple
}

func ExampleVar() {
	var spacing tuple.Tuple[float64]

	fs := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
	tuple.Var(fs, &spacing, "spacing", "1,1,1", "voxel spacing", tuple.Float64s(3))

	_ = fs.Parse([]string{"--spacing", "0.5,0.5,2"})
	fmt.Println(spacing)
	// Output:
	// (0.5, 0.5, 2)
}
