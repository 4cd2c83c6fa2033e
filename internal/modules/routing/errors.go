package routing

import "strings"

// PairError carries the independent outcomes of the two leg estimates.
// Either field may be nil; at least one is set. The pair calculation is
// abandoned whenever a PairError is returned.
type PairError struct {
	In  error
	Out error
}

func (e *PairError) Error() string {
	var parts []string
	if e.In != nil {
		parts = append(parts, "leg_in: "+e.In.Error())
	}
	if e.Out != nil {
		parts = append(parts, "leg_out: "+e.Out.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes both leg errors to errors.Is / errors.As.
func (e *PairError) Unwrap() []error {
	var errs []error
	if e.In != nil {
		errs = append(errs, e.In)
	}
	if e.Out != nil {
		errs = append(errs, e.Out)
	}
	return errs
}
