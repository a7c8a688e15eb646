package layout

// MMPerInch is the number of millimeters in one inch.
const MMPerInch = 25.4

// DefaultDPI is the raster density used for print output.
const DefaultDPI = 300.0

// ToDeviceUnits converts a physical length in millimeters to device units
// at the given density. No rounding happens here; callers round when they
// rasterize.
func ToDeviceUnits(lengthMM, dpi float64) float64 {
	return lengthMM * dpi / MMPerInch
}

// FromDeviceUnits converts a device-unit length back to millimeters.
func FromDeviceUnits(length, dpi float64) float64 {
	return length * MMPerInch / dpi
}
