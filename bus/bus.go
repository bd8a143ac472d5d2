// Package bus is a small in-process pub/sub bus with retained messages,
// single-level (+) and multi-level (#) wildcards, and reply-to plumbing.
// It is the only coupling between the thermal service and its callers.
package bus

import (
	"context"
	"errors"
	"sync"
)

// -----------------------------------------------------------------------------
// Tokens + Topics
// -----------------------------------------------------------------------------

// Token is a single element in a topic path: a string or an integer
// (integers address channel indexes without allocation).
type Token struct {
	kind byte // 0 = string, 1 = int
	sval string
	ival int
}

// Constructors.
func S(s string) Token { return Token{kind: 0, sval: s} }
func I(i int) Token    { return Token{kind: 1, ival: i} }

// Wildcard tokens. Plus matches exactly one token, Hash matches the rest of
// the topic. Wildcards are only meaningful in subscriptions.
var (
	Plus = S("+")
	Hash = S("#")
)

// String returns the token as text (ints in decimal).
func (t Token) String() string {
	if t.kind == 0 {
		return t.sval
	}
	return itoa(t.ival)
}

// Int returns the integer value and whether the token is an int.
func (t Token) Int() (int, bool) { return t.ival, t.kind == 1 }

// Topic is a sequence of tokens.
type Topic []Token

// T builds a topic from strings and ints.
func T(parts ...any) Topic {
	tp := make(Topic, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			tp = append(tp, S(v))
		case int:
			tp = append(tp, I(v))
		case Token:
			tp = append(tp, v)
		}
	}
	return tp
}

// String renders the topic as a/b/c for diagnostics.
func (t Topic) String() string {
	s := ""
	for i, tok := range t {
		if i > 0 {
			s += "/"
		}
		s += tok.String()
	}
	return s
}

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
	ReplyTo  Topic
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Trie
// -----------------------------------------------------------------------------

type node struct {
	children map[Token]*node
	subs     []*Subscription
	retained *Message
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu   sync.RWMutex
	root *node
	qLen int
}

// NewBus creates a bus with the given per-subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{root: &node{}, qLen: queueLen}
}

func (b *Bus) addSubscription(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, tok := range topic {
		if n.children == nil {
			n.children = make(map[Token]*node)
		}
		child, ok := n.children[tok]
		if !ok {
			child = &node{}
			n.children[tok] = child
		}
		n = child
	}
	n.subs = append(n.subs, sub)

	// Deliver the retained message for an exact-topic subscription.
	// Wildcard subscriptions only observe traffic from now on.
	if n.retained != nil {
		deliver(sub, n.retained)
	}
}

// Publish delivers a message to every matching subscriber and stores or
// clears the retained copy when msg.Retained is set.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.match(b.root, msg.Topic, msg)

	if !msg.Retained {
		return
	}
	// Walk/extend the exact path for retained storage.
	n := b.root
	for _, tok := range msg.Topic {
		if n.children == nil {
			n.children = make(map[Token]*node)
		}
		child, ok := n.children[tok]
		if !ok {
			child = &node{}
			n.children[tok] = child
		}
		n = child
	}
	if msg.Payload == nil {
		n.retained = nil
	} else {
		n.retained = msg
	}
}

// match walks the trie following exact tokens, '+' and '#' branches.
func (b *Bus) match(n *node, rest Topic, msg *Message) {
	if n == nil {
		return
	}
	if len(rest) == 0 {
		for _, sub := range n.subs {
			deliver(sub, msg)
		}
		if h := n.children[Hash]; h != nil {
			// '#' also matches zero remaining tokens.
			for _, sub := range h.subs {
				deliver(sub, msg)
			}
		}
		return
	}
	if n.children == nil {
		return
	}
	b.match(n.children[rest[0]], rest[1:], msg)
	b.match(n.children[Plus], rest[1:], msg)
	if h := n.children[Hash]; h != nil {
		for _, sub := range h.subs {
			deliver(sub, msg)
		}
	}
}

func deliver(sub *Subscription, msg *Message) {
	select {
	case sub.ch <- msg:
	default:
		// Drop the oldest queued message rather than blocking the publisher.
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- msg:
		default:
		}
	}
}

func (b *Bus) unsubscribe(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	var stack []*node
	for _, t := range topic {
		if n.children == nil {
			return
		}
		child, ok := n.children[t]
		if !ok {
			return
		}
		stack = append(stack, n)
		n = child
	}
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}
	// Prune empty nodes.
	for i := len(topic) - 1; i >= 0; i-- {
		parent := stack[i]
		key := topic[i]
		child := parent.children[key]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, key)
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	mu   sync.Mutex
	subs []*Subscription
	id   string
	seq  int
}

// NewConnection creates a connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

// NewMessage builds a message ready for Publish.
func (c *Connection) NewMessage(topic Topic, payload any, retained bool) *Message {
	return &Message{Topic: topic, Payload: payload, Retained: retained}
}

// Publish sends a message via the bus.
func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

// Subscribe registers a subscription owned by this connection.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.bus.addSubscription(topic, sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub.topic, sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Reply publishes a payload to the request's ReplyTo topic, if present.
func (c *Connection) Reply(req *Message, payload any, retained bool) {
	if len(req.ReplyTo) == 0 {
		return
	}
	c.bus.Publish(&Message{Topic: req.ReplyTo, Payload: payload, Retained: retained})
}

// ErrNoReply is returned by RequestWait when the context ends first.
var ErrNoReply = errors.New("bus: no reply")

// RequestWait publishes msg with a fresh ReplyTo topic and waits for a single
// reply or context cancellation.
func (c *Connection) RequestWait(ctx context.Context, msg *Message) (*Message, error) {
	c.mu.Lock()
	c.seq++
	replyTo := T("_reply", c.id, c.seq)
	c.mu.Unlock()

	sub := c.Subscribe(replyTo)
	defer c.Unsubscribe(sub)

	msg.ReplyTo = replyTo
	c.bus.Publish(msg)

	select {
	case m := <-sub.ch:
		return m, nil
	case <-ctx.Done():
		return nil, ErrNoReply
	}
}

// Disconnect closes all subscriptions and clears them.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, sub := range subs {
		c.bus.unsubscribe(sub.topic, sub)
		close(sub.ch)
	}
}

// itoa is a tiny local helper so Token.String stays fmt-free.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [12]byte
	b := len(buf)
	for i > 0 {
		b--
		buf[b] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		b--
		buf[b] = '-'
	}
	return string(buf[b:])
}
