package mesh

import "errors"

var (
	// ErrNonPositiveBeta indicates an inverse temperature β ≤ 0.
	ErrNonPositiveBeta = errors.New("mesh: inverse temperature beta must be positive")
	// ErrNonPositiveSize indicates a grid resolution or frequency count ≤ 0.
	ErrNonPositiveSize = errors.New("mesh: mesh size must be positive")
)
