package mesh

// Statistics selects the imaginary-time boundary condition of a
// finite-temperature object.
//
//   - Fermion — antiperiodic in τ with period β: f(τ+β) = −f(τ).
//     Matsubara frequencies are odd multiples of π/β.
//
//   - Boson   — periodic in τ with period β: f(τ+β) = +f(τ).
//     Matsubara frequencies are even multiples of π/β.
//
// The tag is set at mesh construction and never inferred: single-particle
// Green's functions are fermionic, while two-particle objects such as the
// bubble χ0 are bosonic even though they are built from fermionic parts.
type Statistics int

const (
	// Fermion marks antiperiodic (odd-frequency) objects.
	Fermion Statistics = iota
	// Boson marks periodic (even-frequency) objects.
	Boson
)

// Sign returns the boundary sign picked up on wrapping τ by one period β:
// −1 for fermions, +1 for bosons.
func (s Statistics) Sign() complex128 {
	if s == Fermion {
		return -1
	}

	return 1
}

// String implements fmt.Stringer.
func (s Statistics) String() string {
	switch s {
	case Fermion:
		return "Fermion"
	case Boson:
		return "Boson"
	default:
		return "Unknown"
	}
}
