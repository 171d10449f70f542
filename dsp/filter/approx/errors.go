package approx

import "fmt"

// ErrorKind is the outcome of a computation. OK is the only success value;
// every other kind also satisfies the error interface.
type ErrorKind int

const (
	OK ErrorKind = iota
	InvalidType
	InvalidGain
	InvalidFrequency
	InvalidAttenuation
	InvalidQ
	InvalidOrder
	InvalidDenorm
	InvalidGroupDelay
	InvalidTolerance
	MaximumOrderReached
	UndefinedApproximation
)

var errorNames = [...]string{
	OK:                     "ok",
	InvalidType:            "invalid filter type",
	InvalidGain:            "invalid gain",
	InvalidFrequency:       "invalid frequency",
	InvalidAttenuation:     "invalid attenuation",
	InvalidQ:               "invalid selectivity",
	InvalidOrder:           "invalid order",
	InvalidDenorm:          "invalid denormalization",
	InvalidGroupDelay:      "invalid group delay",
	InvalidTolerance:       "invalid tolerance",
	MaximumOrderReached:    "maximum order reached",
	UndefinedApproximation: "undefined approximation",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return errorNames[k]
}

func (k ErrorKind) Error() string {
	return "approx: " + k.String()
}

// Err returns nil for OK and k otherwise, for use with errors.Is.
func (k ErrorKind) Err() error {
	if k == OK {
		return nil
	}
	return k
}
