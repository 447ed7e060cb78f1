package network

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Client is a spectator connection to a Hub
type Client struct {
	Hello Hello
	conn  *websocket.Conn
}

// Dial connects to a spectator feed and waits for its hello
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", url)
	}
	c := &Client{conn: conn}
	msg, err := c.Next()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if msg.Type != MsgHello {
		conn.Close()
		return nil, errors.Errorf("dial %s: expected hello, got %s", url, msg.Type)
	}
	c.Hello = *msg.Hello
	return c, nil
}

// Next blocks for the next message
func (c *Client) Next() (*Message, error) {
	kind, b, err := c.conn.ReadMessage()
	if err != nil {
		return nil, errors.Wrap(err, "read spectator feed")
	}
	if kind != websocket.BinaryMessage {
		return nil, errors.Errorf("read spectator feed: unexpected frame type %d", kind)
	}
	return Decode(b)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
