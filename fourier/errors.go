package fourier

import "errors"

var (
	// ErrSpaceAxis indicates the spatial axis has the wrong mesh kind for
	// the requested transform direction.
	ErrSpaceAxis = errors.New("fourier: unexpected spatial axis mesh")
	// ErrTimeAxis indicates the temperature axis has the wrong mesh kind
	// for the requested transform direction.
	ErrTimeAxis = errors.New("fourier: unexpected temperature axis mesh")
	// ErrOddTimeMesh indicates an imaginary-time mesh with an odd slice
	// count, which has no symmetric Matsubara window.
	ErrOddTimeMesh = errors.New("fourier: imaginary-time mesh must have an even number of slices")
)
