package network

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/1siamBot/kickoff/engine/core"
)

// MsgType identifies a spectator message
type MsgType uint8

const (
	MsgHello MsgType = iota
	MsgSnapshot
	MsgEvent
)

func (t MsgType) String() string {
	switch t {
	case MsgHello:
		return "hello"
	case MsgSnapshot:
		return "snapshot"
	case MsgEvent:
		return "event"
	}
	return "unknown"
}

// Hello is sent once on connect with what a viewer needs to lay out the pitch
type Hello struct {
	MatchID   uuid.UUID `msgpack:"id"`
	Width     float64   `msgpack:"w"`
	Height    float64   `msgpack:"h"`
	Pad       float64   `msgpack:"pad"`
	GoalWidth float64   `msgpack:"goal"`
	Teams     [2]string `msgpack:"teams"`
}

// HelloFor describes m
func HelloFor(m *core.Match) Hello {
	f := m.Tune.Field
	return Hello{
		MatchID:   m.ID,
		Width:     f.Width,
		Height:    f.Height,
		Pad:       f.Pad,
		GoalWidth: f.GoalWidth,
		Teams:     [2]string{m.Teams[core.Left].Name, m.Teams[core.Right].Name},
	}
}

// Message is one websocket binary frame
type Message struct {
	Type     MsgType        `msgpack:"t"`
	Hello    *Hello         `msgpack:"hello,omitempty"`
	Snapshot *core.Snapshot `msgpack:"snap,omitempty"`
	Event    *core.Event    `msgpack:"evt,omitempty"`
}

// Encode writes msg as msgpack
func Encode(msg *Message) ([]byte, error) {
	b, err := msgpack.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", msg.Type)
	}
	return b, nil
}

// Decode reads a msgpack message and checks that its payload matches its type
func Decode(b []byte) (*Message, error) {
	var msg Message
	if err := msgpack.Unmarshal(b, &msg); err != nil {
		return nil, errors.Wrap(err, "decode message")
	}
	ok := false
	switch msg.Type {
	case MsgHello:
		ok = msg.Hello != nil
	case MsgSnapshot:
		ok = msg.Snapshot != nil
	case MsgEvent:
		ok = msg.Event != nil
	}
	if !ok {
		return nil, errors.Errorf("decode message: %s without payload", msg.Type)
	}
	return &msg, nil
}
