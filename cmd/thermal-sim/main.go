// Host demo: a simulated ADC behind the thermal service, with the sensor
// code wobbling so the filter and classifier have something to do.
//
//	go run ./cmd/thermal-sim
package main

import (
	"context"
	"math"
	"time"

	"thermistor-go/bus"
	"thermistor-go/services/thermal"
	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
	"thermistor-go/x/fmtx"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	println("[sim] bootstrapping bus ...")
	b := bus.NewBus(16)

	sim := thermal.NewSimADC(65536, 3.3)
	sim.SetCode(0, 32767) // 10 kOhm NTC at 25 degC

	svc := thermal.NewService(sim)
	if err := svc.Start(ctx, b.NewConnection("thermal")); err != nil {
		println("[sim] start failed:", err.Error())
		return
	}

	ui := b.NewConnection("ui")
	vals := ui.Subscribe(bus.T("thermal", "channel", 0, "value"))
	stats := ui.Subscribe(bus.T("thermal", "channel", "+", "status"))

	tbl := &config.Table{
		Channels: []config.Channel{{
			ADCChannel:    0,
			Conn:          types.ConnLowSide,
			Pull:          types.PullUp,
			PullUpOhm:     10000,
			Sensor:        types.SensorNTC,
			NTCBeta:       3380,
			NTCNominalOhm: 10000,
			LPFCutoffHz:   0.5,
			RangeMinC:     -20,
			RangeMaxC:     60,
			Latch:         types.LatchFloating,
		}},
		PeriodMS: 100,
	}
	println("[sim] publishing config/thermal ...")
	ui.Publish(ui.NewMessage(bus.T("config", "thermal"), tbl, true))

	// Wobble the divider code; the swing is wide enough to trip the range
	// classifier at the extremes.
	go func() {
		t0 := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(50 * time.Millisecond):
				phase := time.Since(t0).Seconds() / 3.0
				sim.SetCode(0, uint32(32767+20000*math.Sin(2*math.Pi*phase)))
			}
		}
	}()

	// Halve the cutoff mid-run over the control topic.
	go func() {
		time.Sleep(5 * time.Second)
		rctx, done := context.WithTimeout(ctx, time.Second)
		defer done()
		topic := bus.T("thermal", "channel", 0, "control", "set_lpf_fc")
		if _, err := ui.RequestWait(rctx, ui.NewMessage(topic, 0.25, false)); err != nil {
			println("[sim] set_lpf_fc error:", err.Error())
		} else {
			println("[sim] cutoff lowered to 0.25 Hz")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			println("[sim] done")
			return
		case m := <-vals.Channel():
			v := m.Payload.(types.ChannelValue)
			fmtx.Printf("[sim] degC=%f filt=%f ohm=%f\n", v.DegC, v.DegCFiltered, v.ResistanceOhm)
		case m := <-stats.Channel():
			h := m.Payload.(types.ChannelHealth)
			fmtx.Printf("[sim] status=%s\n", h.Status)
		}
	}
}
