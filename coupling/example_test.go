package coupling_test

import (
	"fmt"

	"github.com/katalvlaran/qubitmap/coupling"
)

// ExampleMap_Distance measures hop counts on a 5-qubit line.
func ExampleMap_Distance() {
	cm, err := coupling.FromEdges(5, []coupling.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, _ := cm.Distance(0, 4)
	fmt.Println(d, cm.Neighbors(2), cm.IsComplete())
	// Output:
	// 4 [1 3] false
}
