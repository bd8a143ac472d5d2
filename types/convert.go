package types

// Temperature unit conversions applied uniformly to raw and filtered
// readings.

const kelvinOffset = 273.15

func DegCToDegF(c float64) float64 { return 1.8*c + 32.0 }

func DegCToKelvin(c float64) float64 { return c + kelvinOffset }

func KelvinToDegC(k float64) float64 { return k - kelvinOffset }
