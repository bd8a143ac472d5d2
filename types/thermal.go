package types

// ---- Sensor model ----

// SensorType selects the resistance-to-temperature model for a channel.
type SensorType string

const (
	SensorNTC    SensorType = "ntc"
	SensorPT100  SensorType = "pt100"
	SensorPT500  SensorType = "pt500"
	SensorPT1000 SensorType = "pt1000"
)

// HWConn is the sensor position in the divider network. Low side means the
// sensor sits between the measurement node and ground, high side between the
// supply rail and the measurement node.
type HWConn string

const (
	ConnLowSide  HWConn = "low_side"
	ConnHighSide HWConn = "high_side"
)

// PullMode names the fixed resistor(s) completing the divider.
type PullMode string

const (
	PullUp   PullMode = "up"
	PullDown PullMode = "down"
	PullBoth PullMode = "both"
)

// LatchMode controls whether a detected fault self-clears once the reading
// re-enters range (floating) or persists until explicit reset (permanent).
type LatchMode string

const (
	LatchFloating  LatchMode = "floating"
	LatchPermanent LatchMode = "permanent"
)

// ---- Channel status ----

// ChannelStatus is the classified health of one channel. Open/short are
// first-class sensor conditions, not programming errors.
type ChannelStatus uint8

const (
	StatusOK ChannelStatus = iota
	StatusGeneralError
	StatusOpen
	StatusShort
)

func (s ChannelStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusOpen:
		return "open"
	case StatusShort:
		return "short"
	default:
		return "error"
	}
}

// ---- Bus payloads ----

// ChannelValue is published per handler tick for each channel.
type ChannelValue struct {
	DegC          float64 `json:"deg_c"`
	DegCFiltered  float64 `json:"deg_c_filt"`
	ResistanceOhm float64 `json:"resistance_ohm"`
	TSms          int64   `json:"ts_ms"`
}

// ChannelHealth is the retained per-channel status document.
type ChannelHealth struct {
	Status string `json:"status"`
	TSms   int64  `json:"ts_ms"`
}
