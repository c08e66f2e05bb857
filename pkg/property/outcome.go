package property

// Outcome is the result discriminator shared by every driver operation.
type Outcome int

const (
	// NotHandled means the property is foreign to the driver; try another one.
	NotHandled Outcome = iota
	// Failure means the driver knows the property but the operation was rejected
	// or the device channel failed.
	Failure
	Success
)

func (o Outcome) String() string {
	switch o {
	case NotHandled:
		return "not handled"
	case Failure:
		return "failure"
	case Success:
		return "success"
	}
	return "unknown"
}

// Handled reports whether the driver recognized the property.
func (o Outcome) Handled() bool {
	return o == Failure || o == Success
}

// Result is the answer to a Get. Value is only meaningful when Outcome is Success.
type Result struct {
	Outcome Outcome
	Value   float64
}

func Succeeded(v float64) Result { return Result{Outcome: Success, Value: v} }

// Range is the answer to a Range query. Min and Max are reported even on Failure,
// where they describe the fixed value of a property without hardware support.
type Range struct {
	Outcome Outcome
	Min     float64
	Max     float64
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
