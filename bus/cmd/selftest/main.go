// On-target smoke test for the bus: exact delivery, wildcards, retained
// messages, request/reply and drop-oldest. Runs on host and MCU alike; the
// per-case PASS/FAIL lines go out over println so a serial console is enough.
package main

import (
	"context"
	"time"

	"thermistor-go/bus"
)

var failures int

func check(name string, ok bool) {
	if ok {
		println("[bus-selftest] PASS:", name)
	} else {
		failures++
		println("[bus-selftest] FAIL:", name)
	}
}

func recvWithin(sub *bus.Subscription, d time.Duration) *bus.Message {
	select {
	case m := <-sub.Channel():
		return m
	case <-time.After(d):
		return nil
	}
}

func main() {
	time.Sleep(2 * time.Second)
	println("[bus-selftest] start")

	b := bus.NewBus(2)
	c := b.NewConnection("selftest")

	// Exact topic delivery.
	exact := c.Subscribe(bus.T("t", "channel", 0, "value"))
	c.Publish(c.NewMessage(bus.T("t", "channel", 0, "value"), 1, false))
	m := recvWithin(exact, time.Second)
	check("exact delivery", m != nil && m.Payload.(int) == 1)
	c.Unsubscribe(exact)

	// '+' wildcard matches one token, '#' the rest.
	plus := c.Subscribe(bus.T("t", "channel", bus.Plus, "value"))
	hash := c.Subscribe(bus.T("t", bus.Hash))
	c.Publish(c.NewMessage(bus.T("t", "channel", 7, "value"), 2, false))
	mp := recvWithin(plus, time.Second)
	mh := recvWithin(hash, time.Second)
	idx := -1
	if mp != nil {
		idx, _ = mp.Topic[2].Int()
	}
	check("plus wildcard", mp != nil && idx == 7)
	check("hash wildcard", mh != nil && mh.Payload.(int) == 2)
	c.Unsubscribe(plus)
	c.Unsubscribe(hash)

	// Retained message reaches a late subscriber.
	c.Publish(c.NewMessage(bus.T("t", "state"), "ready", true))
	late := c.Subscribe(bus.T("t", "state"))
	m = recvWithin(late, time.Second)
	check("retained delivery", m != nil && m.Payload.(string) == "ready")
	c.Unsubscribe(late)

	// Request/reply round trip.
	svc := b.NewConnection("svc")
	ctrl := svc.Subscribe(bus.T("t", "control", "ping"))
	go func() {
		if req := recvWithin(ctrl, time.Second); req != nil {
			svc.Reply(req, "pong", false)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	reply, err := c.RequestWait(ctx, c.NewMessage(bus.T("t", "control", "ping"), nil, false))
	cancel()
	check("request reply", err == nil && reply.Payload.(string) == "pong")
	svc.Unsubscribe(ctrl)

	// Full queue drops the oldest, never blocks the publisher.
	slow := c.Subscribe(bus.T("t", "burst"))
	for i := 0; i < 5; i++ {
		c.Publish(c.NewMessage(bus.T("t", "burst"), i, false))
	}
	first := recvWithin(slow, time.Second)
	second := recvWithin(slow, time.Second)
	check("drop oldest", first != nil && second != nil &&
		first.Payload.(int) == 3 && second.Payload.(int) == 4)
	c.Unsubscribe(slow)

	if failures == 0 {
		println("[bus-selftest] all tests passed")
	} else {
		println("[bus-selftest] failures:", failures)
	}
}
