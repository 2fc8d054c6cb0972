package method_test

import (
	"fmt"

	"github.com/katalvlaran/limes/method"
)

// ExampleMethod_Species groups five specimens into the species of one
// delimitation method.
func ExampleMethod_Species() {
	m, err := method.New("ABGD",
		[]string{"s1", "s2", "s3", "s4", "s5"},
		[]method.Code{
			method.IntCode(1), method.IntCode(2), method.IntCode(1),
			method.IntCode(3), method.IntCode(2),
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, sp := range m.Species() {
		fmt.Println(sp.Code, sp.Samples)
	}
	// Output:
	// 1 [s1 s3]
	// 2 [s2 s5]
	// 3 [s4]
}
