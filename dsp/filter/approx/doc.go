// Package approx computes analog filter transfer functions from attenuation
// or group-delay templates.
//
// An [Engine] validates a [FilterSpec], normalizes it into a low-pass
// prototype template with the passband edge at 1 rad/s, searches the lowest
// order whose prototype meets the template (or honours a fixed order or a
// maximum pole selectivity), and denormalizes the accepted prototype into
// the requested low-pass, high-pass, band-pass or band-stop filter.
//
// A [DelayEngine] does the same for group-delay templates using the Bessel
// and Gauss families.
//
// Neither engine is safe for concurrent use; distinct engines are
// independent.
package approx
