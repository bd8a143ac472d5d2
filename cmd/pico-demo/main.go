//go:build rp2040

// Pico demo: an NTC on ADC0 and a PT1000 on ADC1, both ratiometric against
// the 3.3 V rail, telemetry out over UART0.
package main

import (
	"context"
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"thermistor-go/bus"
	"thermistor-go/services/thermal"
	"thermistor-go/services/thermal/config"
	"thermistor-go/types"
	"thermistor-go/x/fmtx"
)

func main() {
	time.Sleep(3 * time.Second)

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	fmtx.DefaultOutput = u

	ctx := context.Background()
	b := bus.NewBus(8)

	adc := thermal.NewRP2ADC(machine.ADC0, machine.ADC1)
	svc := thermal.NewService(adc)
	_ = svc.Start(ctx, b.NewConnection("thermal"))

	ui := b.NewConnection("ui")
	vals := ui.Subscribe(bus.T("thermal", "channel", "+", "value"))
	stats := ui.Subscribe(bus.T("thermal", "channel", "+", "status"))

	tbl := &config.Table{
		Channels: []config.Channel{
			{
				ADCChannel:    0,
				Conn:          types.ConnLowSide,
				Pull:          types.PullUp,
				PullUpOhm:     10000,
				Sensor:        types.SensorNTC,
				NTCBeta:       3380,
				NTCNominalOhm: 10000,
				LPFCutoffHz:   0.5,
				RangeMinC:     -25,
				RangeMaxC:     125,
				Latch:         types.LatchFloating,
			},
			{
				ADCChannel:  1,
				Conn:        types.ConnLowSide,
				Pull:        types.PullUp,
				PullUpOhm:   2000,
				Sensor:      types.SensorPT1000,
				LPFCutoffHz: 0.5,
				RangeMinC:   -50,
				RangeMaxC:   200,
				Latch:       types.LatchPermanent,
			},
		},
		PeriodMS: 200,
	}
	ui.Publish(ui.NewMessage(bus.T("config", "thermal"), tbl, true))

	for {
		select {
		case m := <-vals.Channel():
			ch, _ := m.Topic[2].Int()
			v := m.Payload.(types.ChannelValue)
			fmtx.Printf("ch%d degC=%f filt=%f ohm=%f\n", ch, v.DegC, v.DegCFiltered, v.ResistanceOhm)
		case m := <-stats.Channel():
			ch, _ := m.Topic[2].Int()
			h := m.Payload.(types.ChannelHealth)
			fmtx.Printf("ch%d status=%s\n", ch, h.Status)
		}
	}
}
