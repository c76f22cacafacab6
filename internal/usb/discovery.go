package usb

import (
	"fmt"

	"github.com/rs/zerolog/log"
	hid "github.com/sstallion/go-hid"

	"github.com/dokzlo13/luxctl/internal/light"
)

// Luxafor flag HID identifiers.
const (
	VendorID  = 0x04D8
	ProductID = 0xF372
)

// Open discovers the first connected Luxafor light and returns a Device
// bound to its HID handle. The caller should Close the device when done.
func Open() (*Device, error) {
	if err := hid.Init(); err != nil {
		log.Error().Err(err).Msg("Could not initialize the HID API")
		return nil, fmt.Errorf("%w: %v", light.ErrDeviceNotFound, err)
	}
	dev, err := hid.OpenFirst(VendorID, ProductID)
	if err != nil {
		log.Error().Err(err).Msg("Could not open HID device")
		return nil, fmt.Errorf("%w: %v", light.ErrDeviceNotFound, err)
	}
	id := deviceID(dev)
	log.Debug().Stringer("device", id).Msg("Opened USB device")
	return NewDevice(dev, id), nil
}

// deviceID builds the composite manufacturer::product::serial identifier.
// Descriptor strings the device does not report become placeholders.
func deviceID(dev *hid.Device) light.DeviceID {
	mfr, err := dev.GetMfrStr()
	if err != nil {
		mfr = "<unknown>"
	}
	product, err := dev.GetProductStr()
	if err != nil {
		product = "<unknown>"
	}
	serial, err := dev.GetSerialNbr()
	if err != nil {
		serial = "<unknown>"
	}
	return light.DeviceID(fmt.Sprintf("%s::%s::%s", mfr, product, serial))
}
