package mesh_test

import (
	"fmt"

	"github.com/avoskre/matsu/mesh"
)

// ExampleNewImFreqMesh shows the slot↔index map and the frequency parity
// of the two statistics at β=1.
func ExampleNewImFreqMesh() {
	fm, _ := mesh.NewImFreqMesh(1.0, mesh.Fermion, 2)
	bm, _ := mesh.NewImFreqMesh(1.0, mesh.Boson, 2)

	slot, _ := fm.Slot(0)
	fmt.Println(fm.Len(), imag(fm.Omega(slot))) // ω_0 = π/β

	slot, _ = bm.Slot(0)
	fmt.Println(bm.Len(), imag(bm.Omega(slot))) // Ω_0 = 0
	// Output:
	// 4 3.141592653589793
	// 4 0
}

// ExampleImTimeMesh_Reflect shows the β−τ reflection, including the
// fermionic sign on the τ=0 wrap.
func ExampleImTimeMesh_Reflect() {
	tm, _ := mesh.NewImTimeMesh(2.0, mesh.Fermion, 4)

	j, sign := tm.Reflect(1)
	fmt.Println(j, sign)

	j, sign = tm.Reflect(0)
	fmt.Println(j, sign)
	// Output:
	// 3 (1+0i)
	// 0 (-1+0i)
}
