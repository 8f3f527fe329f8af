package lights

import (
	"errors"
	"fmt"
)

// ErrUnknownLight is returned when a light identifier is not recognized.
var ErrUnknownLight = errors.New("unknown light")

// Device is a handle on one logical light of a Controller.
type Device interface {
	ID() ID
	Set(state LightState)
}

type device struct {
	id  ID
	set func(LightState)
}

func (d *device) ID() ID { return d.id }

func (d *device) Set(state LightState) { d.set(state) }

// Open returns a handle for the named logical light. The setter is bound
// once here; unrecognized names fail with ErrUnknownLight.
func Open(ctrl *Controller, name string) (Device, error) {
	id := ID(name)

	var set func(LightState)
	switch id {
	case Backlight:
		set = ctrl.SetBacklight
	case Battery:
		set = ctrl.SetBattery
	case Notifications:
		set = ctrl.SetNotification
	case Attention:
		set = ctrl.SetAttention
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLight, name)
	}

	return &device{id: id, set: set}, nil
}
