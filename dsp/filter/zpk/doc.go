// Package zpk holds analog transfer functions in zero/pole/gain form and
// evaluates them on the imaginary axis.
//
// Besides point evaluation (magnitude, attenuation, phase and group delay)
// the package provides a vectorized magnitude sweep over frequency grids and
// factors a transfer function into first- and second-order sections with
// their natural frequency and quality factor.
package zpk
