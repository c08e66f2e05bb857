// Package property defines the camera property abstraction that per-device
// drivers translate onto processing unit and extension unit controls.
//
// A Driver answers three questions about a property: its current value, its
// valid range and whether a new value can be applied. Every answer carries an
// Outcome so callers can tell a property the driver does not know about
// (NotHandled) from one it knows but could not service (Failure).
//
// Drivers are looked up by USB vendor and product id through a Registry:
//
//	reg := property.NewRegistry()
//	rigel.Register(reg)
//	drv, err := reg.Open(dev.ID(), dev)
package property
