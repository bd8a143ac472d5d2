package sense

import (
	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
)

// Classify folds one filtered temperature into the channel status.
//
// A permanent-latch channel holds any non-OK status until an explicit reset;
// a floating channel re-evaluates every tick. Readings exactly at the range
// boundary are in range. Which fault an out-of-range reading implies depends
// on the sensor family's resistance polarity.
func Classify(prev types.ChannelStatus, tempC float64, c *config.Channel) types.ChannelStatus {
	if prev != types.StatusOK && c.Latch == types.LatchPermanent {
		return prev
	}
	p := profileFor(c.Sensor)
	switch {
	case tempC > c.RangeMaxC:
		return p.over
	case tempC < c.RangeMinC:
		return p.under
	default:
		return types.StatusOK
	}
}
