package types

// ---- Common module state (retained) ----

type ModuleState struct {
	Level  string `json:"level"`  // e.g. "idle", "ready", "stopped", "error"
	Status string `json:"status"` // freeform short code
	TSms   int64  `json:"ts_ms"`
}

// ---- Capability kinds & info ----

type Kind string

const (
	KindTemperature Kind = "temperature"
	KindResistance  Kind = "resistance"
)

// Info envelope each channel exposes (retained).
type Info struct {
	SchemaVersion int         `json:"schema_version"`
	Driver        string      `json:"driver"`
	Detail        interface{} `json:"detail,omitempty"`
}

// ChannelInfo is the Detail payload for one sensing channel.
type ChannelInfo struct {
	Kind       Kind       `json:"kind"`
	Sensor     SensorType `json:"sensor"`
	ADCChannel int        `json:"adc_channel"`
	Conn       HWConn     `json:"conn"`
	Pull       PullMode   `json:"pull"`
}

// ---- Generic replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
