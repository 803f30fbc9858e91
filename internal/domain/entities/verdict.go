package entities

// IndicatedUpdateRequirement is the binary verdict of a checker run.
//
// For checkers that shell out to an external tool, the verdict comes from
// the tool's exit status alone, never from the contents of its report.
type IndicatedUpdateRequirement int

const (
	// UpToDate means no eligible dependency updates were found.
	UpToDate IndicatedUpdateRequirement = iota
	// UpdateRequired means at least one eligible update exists.
	UpdateRequired
)

// String renders the verdict for human-facing output.
func (r IndicatedUpdateRequirement) String() string {
	switch r {
	case UpdateRequired:
		return "update-required"
	default:
		return "up-to-date"
	}
}

// MarshalJSON renders the verdict as its display string.
func (r IndicatedUpdateRequirement) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}
