package thermal

// ADCSource abstracts the converter the thermal channels sample from.
// Raw codes drive the preferred ratiometric path; the voltage methods exist
// for supply-ripple compensation and for converters whose reference is not
// the sensor supply rail.
type ADCSource interface {
	// ReadRaw returns the latest conversion code for the given input.
	ReadRaw(ch int) (uint32, error)
	// FullScale returns the code corresponding to the reference voltage.
	FullScale() uint32
	// ReadVoltage returns the input voltage in volts.
	ReadVoltage(ch int) (float64, error)
	// RefVoltage returns the converter reference in volts.
	RefVoltage() float64
}
