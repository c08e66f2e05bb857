package property

// Driver translates properties for one device.
type Driver interface {
	Get(id ID) Result
	Range(id ID) Range
	Set(id ID, v float64) Outcome
	// FrameFixup describes a frame format quirk of the device model.
	FrameFixup() int
}

// Factory builds the driver for a device.
type Factory func(dev Device) Driver

// Chain dispatches to the first driver that handles a property. Drivers are
// consulted in order; a Failure stops the search.
type Chain []Driver

func (c Chain) Get(id ID) Result {
	for _, d := range c {
		if r := d.Get(id); r.Outcome.Handled() {
			return r
		}
	}
	return Result{}
}

func (c Chain) Range(id ID) Range {
	for _, d := range c {
		if r := d.Range(id); r.Outcome.Handled() {
			return r
		}
	}
	return Range{}
}

func (c Chain) Set(id ID, v float64) Outcome {
	for _, d := range c {
		if o := d.Set(id, v); o.Handled() {
			return o
		}
	}
	return NotHandled
}

// FrameFixup returns the first non-zero fixup in the chain.
func (c Chain) FrameFixup() int {
	for _, d := range c {
		if f := d.FrameFixup(); f != 0 {
			return f
		}
	}
	return 0
}
