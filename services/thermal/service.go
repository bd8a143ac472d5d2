package thermal

import (
	"context"
	"time"

	"thermistor-go/bus"
	"thermistor-go/errcode"
	"thermistor-go/services/thermal/config"
	"thermistor-go/services/thermal/internal/consts"
	"thermistor-go/types"
	"thermistor-go/x/timex"
)

// Service exposes a Manager over the bus. All Manager calls happen in the
// one service goroutine, which is what makes the lock-free Manager safe.
//
// Topics:
//
//	config/thermal                        in, retained config.Table
//	thermal/state                         out, retained types.ModuleState
//	thermal/channel/<i>/value             out, per tick
//	thermal/channel/<i>/status            out, retained, on change
//	thermal/channel/<i>/info              out, retained, on config
//	thermal/channel/<i>/control/<verb>    in, replied via ReplyTo
type Service struct {
	adc ADCSource

	mgr  *Manager
	tbl  *config.Table
	last []types.ChannelStatus // published status per channel
}

// NewService wraps an ADC source. Configuration arrives over the bus.
func NewService(adc ADCSource) *Service {
	return &Service{adc: adc}
}

// Start launches the service loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(bus.T(consts.TopConfig, consts.TopThermal))
	defer conn.Unsubscribe(cfgSub)
	ctrlSub := conn.Subscribe(bus.T(consts.TopThermal, consts.TopChannel, bus.Plus, consts.TopControl, bus.Plus))
	defer conn.Unsubscribe(ctrlSub)

	s.publishState(conn, consts.LevelIdle, "waiting for config")

	// Armed by the first valid config.
	tick := time.NewTicker(time.Hour)
	tick.Stop()
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: thermal service stopping")
			s.publishState(conn, consts.LevelStopped, "context done")
			return
		case <-tick.C:
			s.sample(conn)
		case msg := <-cfgSub.Channel():
			if s.applyConfig(conn, msg) {
				tick.Reset(timex.PeriodFromMs(s.tbl.PeriodMS))
			} else {
				tick.Stop()
			}
		case msg := <-ctrlSub.Channel():
			s.handleControl(conn, msg)
		}
	}
}

// applyConfig replaces the manager with one built from the new table.
// Returns true when the service is ready to tick.
func (s *Service) applyConfig(conn *bus.Connection, msg *bus.Message) bool {
	var tbl *config.Table
	switch p := msg.Payload.(type) {
	case *config.Table:
		tbl = p
	case config.Table:
		tbl = &p
	default:
		println("Error: thermal config payload has wrong type")
		s.publishState(conn, consts.LevelError, string(errcode.InvalidPayload))
		return false
	}

	if s.mgr != nil {
		s.mgr.Deinit()
		s.mgr = nil
	}
	mgr := NewManager(tbl, s.adc)
	if err := mgr.Init(); err != nil {
		println("Error: thermal init failed:", err.Error())
		s.publishState(conn, consts.LevelError, string(errcode.Of(err)))
		return false
	}
	s.mgr = mgr
	s.tbl = tbl
	s.last = make([]types.ChannelStatus, len(tbl.Channels))
	println("Info: thermal service ready,", len(tbl.Channels), "channel(s)")
	s.publishState(conn, consts.LevelReady, "ok")
	// Seed the retained info and status documents.
	for i := range tbl.Channels {
		c := &tbl.Channels[i]
		conn.Publish(conn.NewMessage(
			bus.T(consts.TopThermal, consts.TopChannel, i, consts.TopInfo),
			types.Info{
				SchemaVersion: 1,
				Driver:        "thermistor",
				Detail: types.ChannelInfo{
					Kind:       types.KindTemperature,
					Sensor:     c.Sensor,
					ADCChannel: c.ADCChannel,
					Conn:       c.Conn,
					Pull:       c.Pull,
				},
			},
			true))
		s.publishStatus(conn, i)
	}
	return true
}

// sample runs one Manager tick and publishes the results.
func (s *Service) sample(conn *bus.Connection) {
	if s.mgr == nil {
		return
	}
	if err := s.mgr.Handle(); err != nil {
		println("Error: thermal tick:", err.Error())
	}
	now := timex.NowMs()
	for i := 0; i < s.mgr.Channels(); i++ {
		tc, err := s.mgr.DegC(i)
		if err != nil {
			continue
		}
		tf, _ := s.mgr.DegCFiltered(i)
		r, _ := s.mgr.Resistance(i)
		conn.Publish(conn.NewMessage(
			bus.T(consts.TopThermal, consts.TopChannel, i, consts.TopValue),
			types.ChannelValue{DegC: tc, DegCFiltered: tf, ResistanceOhm: r, TSms: now},
			false))
		if st, _ := s.mgr.Status(i); st != s.last[i] {
			s.publishStatus(conn, i)
		}
	}
}

func (s *Service) publishStatus(conn *bus.Connection, ch int) {
	st, err := s.mgr.Status(ch)
	if err != nil {
		return
	}
	s.last[ch] = st
	conn.Publish(conn.NewMessage(
		bus.T(consts.TopThermal, consts.TopChannel, ch, consts.TopStatus),
		types.ChannelHealth{Status: st.String(), TSms: timex.NowMs()},
		true))
}

func (s *Service) publishState(conn *bus.Connection, level, status string) {
	conn.Publish(conn.NewMessage(
		bus.T(consts.TopThermal, consts.TopState),
		types.ModuleState{Level: level, Status: status, TSms: timex.NowMs()},
		true))
}

// fcReply answers get_lpf_fc.
type fcReply struct {
	OK   bool    `json:"ok"`
	FcHz float64 `json:"fc_hz"`
}

func (s *Service) handleControl(conn *bus.Connection, msg *bus.Message) {
	fail := func(err error) {
		conn.Reply(msg, types.ErrorReply{OK: false, Error: string(errcode.Of(err))}, false)
	}
	if len(msg.Topic) != 5 {
		fail(errcode.InvalidTopic)
		return
	}
	ch, ok := msg.Topic[2].Int()
	if !ok {
		fail(errcode.InvalidTopic)
		return
	}
	if s.mgr == nil {
		fail(errcode.NotInitialized)
		return
	}

	switch msg.Topic[4].String() {
	case consts.VerbSetLPFFc:
		fc, ok := toFloat(msg.Payload)
		if !ok {
			fail(errcode.InvalidPayload)
			return
		}
		if err := s.mgr.SetLPFCutoff(ch, fc); err != nil {
			fail(err)
			return
		}
		conn.Reply(msg, types.OKReply{OK: true}, false)

	case consts.VerbGetLPFFc:
		fc, err := s.mgr.LPFCutoff(ch)
		if err != nil {
			fail(err)
			return
		}
		conn.Reply(msg, fcReply{OK: true, FcHz: fc}, false)

	case consts.VerbResetError:
		if err := s.mgr.ResetStatus(ch); err != nil {
			fail(err)
			return
		}
		s.publishStatus(conn, ch)
		conn.Reply(msg, types.OKReply{OK: true}, false)

	case consts.VerbReadNow:
		// Off-cadence sample; the filter treats it as a regular tick.
		s.sample(conn)
		if _, err := s.mgr.DegC(ch); err != nil {
			fail(err)
			return
		}
		conn.Reply(msg, types.OKReply{OK: true}, false)

	default:
		fail(errcode.Unsupported)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
