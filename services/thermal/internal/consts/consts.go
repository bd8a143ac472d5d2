// Package consts holds the bus topic tokens and control verbs of the thermal
// service in one place so the service and its callers cannot drift.
package consts

// ---- Topic tokens ----

const (
	TopConfig  = "config"
	TopThermal = "thermal"
	TopState   = "state"
	TopChannel = "channel"
	TopValue   = "value"
	TopStatus  = "status"
	TopInfo    = "info"
	TopControl = "control"
)

// ---- Control verbs (thermal/channel/<i>/control/<verb>) ----

const (
	VerbSetLPFFc   = "set_lpf_fc"
	VerbGetLPFFc   = "get_lpf_fc"
	VerbResetError = "reset_error"
	VerbReadNow    = "read_now"
)

// ---- Module state levels (thermal/state, retained) ----

const (
	LevelIdle    = "idle"
	LevelReady   = "ready"
	LevelStopped = "stopped"
	LevelError   = "error"
)
