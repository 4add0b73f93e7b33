package citadels

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/citadels-live/citadels-go/citadels/internal"

	"github.com/coder/websocket"
	"github.com/jonboulle/clockwork"
)

// transport is the minimal connection surface the client drives. Satisfied
// by *internal.Conn; tests inject scripted implementations through the dial
// seam.
type transport interface {
	Read(ctx context.Context, v any) error
	Write(ctx context.Context, v any) error
	Close(code websocket.StatusCode, reason string) error
}

type dialFunc func(ctx context.Context, addr string) (transport, error)

// Client owns one persistent duplex connection to the game server and keeps
// it alive: a dropped connection is retried forever with exponential backoff
// (floor 1s, doubling, ceiling 10s; reset to floor on a successful open).
//
// At most one live connection exists at a time. Callbacks are invoked from a
// single goroutine, in arrival order, each running to completion before the
// next. The client has no game knowledge; it moves envelopes.
type Client struct {
	cfg    Config
	logger Logger
	clock  clockwork.Clock
	dial   dialFunc

	onEnvelope func(Envelope)
	onOpen     func()
	onClose    func()

	mu     sync.Mutex
	conn   transport
	state  ConnectionState
	delay  time.Duration
	cancel context.CancelFunc
}

// NewClient constructs a client with the provided config.
// Use DefaultConfig() as a starting point and modify as needed.
func NewClient(cfg Config) *Client {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	c := &Client{
		cfg:    cfg,
		logger: noopLogger{},
		clock:  cfg.Clock,
		state:  StateDisconnected,
		delay:  cfg.ReconnectFloor,
	}
	c.dial = c.dialWebsocket
	return c
}

// SetLogger overrides the logger (optional).
func (c *Client) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}

// OnEnvelope registers the callback for decoded inbound envelopes.
func (c *Client) OnEnvelope(fn func(Envelope)) { c.onEnvelope = fn }

// OnOpen registers the callback invoked after each successful open.
func (c *Client) OnOpen(fn func()) { c.onOpen = fn }

// OnClose registers the callback invoked after each close, however caused.
func (c *Client) OnClose(fn func()) { c.onClose = fn }

// Start validates the config and launches the connect loop. The loop runs
// until ctx is cancelled or Close is called, reconnecting indefinitely.
func (c *Client) Start(ctx context.Context) error {
	if c.cfg.URL == "" {
		return NewError(ErrorInvalidConfig, "empty URL")
	}
	if _, err := url.Parse(c.cfg.URL); err != nil {
		return WrapError(ErrorInvalidConfig, "parse URL", err)
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return NewError(ErrorBadState, "already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state = StateConnecting
	c.delay = c.cfg.ReconnectFloor
	c.mu.Unlock()

	go c.run(runCtx)
	return nil
}

// State reports the current connection state.
func (c *Client) State() ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Send encodes an intent envelope and writes it to the live connection.
// When no connection is open the envelope is silently dropped, not queued;
// callers must not assume delivery.
func (c *Client) Send(typ string, payload any) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		c.logger.Debug("send dropped: not connected", map[string]any{"type": typ})
		return
	}

	env, err := NewEnvelope(typ, payload)
	if err != nil {
		c.logger.Error("send dropped: encode failed", map[string]any{"type": typ, "error": err.Error()})
		return
	}
	if err := conn.Write(context.Background(), env); err != nil {
		c.logger.Warn("send failed", map[string]any{"type": typ, "error": err.Error()})
	}
}

// Close shuts down the connect loop and closes the live connection, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	conn := c.conn
	c.conn = nil
	c.state = StateClosed
	c.mu.Unlock()
	if conn != nil {
		return conn.Close(websocket.StatusNormalClosure, "client close")
	}
	return nil
}

// run is the reconnect loop: connect, drain, back off, repeat.
func (c *Client) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.connectOnce(ctx)
		if ctx.Err() != nil {
			return
		}

		c.mu.Lock()
		c.state = StateReconnecting
		delay := c.delay
		c.delay = min(delay*2, c.cfg.ReconnectCeiling)
		c.mu.Unlock()

		// A pending backoff timer is never cancelled early; teardown just
		// means it no longer matters when it fires.
		select {
		case <-c.clock.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

// connectOnce dials, announces the open, and drains the connection until it
// dies. Every exit path, including a failed dial, announces a close.
func (c *Client) connectOnce(ctx context.Context) {
	dialCtx := ctx
	if c.cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
		defer cancel()
	}

	conn, err := c.dial(dialCtx, c.cfg.URL)
	if err != nil {
		c.logger.Warn("dial failed", map[string]any{"url": c.cfg.URL, "error": err.Error()})
		c.fireClose()
		return
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.delay = c.cfg.ReconnectFloor
	c.mu.Unlock()
	c.fireOpen()

	c.readLoop(ctx, conn)

	c.mu.Lock()
	c.conn = nil
	c.mu.Unlock()
	_ = conn.Close(websocket.StatusNormalClosure, "read loop exit")
	c.fireClose()
}

func (c *Client) readLoop(ctx context.Context, conn transport) {
	for {
		var env Envelope
		if err := conn.Read(ctx, &env); err != nil {
			if isDecodeError(err) {
				// Malformed frames are not fatal: drop and keep reading.
				c.logger.Warn("dropping malformed frame", map[string]any{"error": err.Error()})
				continue
			}
			if !isExpectedDisconnect(ctx, err) {
				c.logger.Warn("read loop exit", map[string]any{"error": err.Error()})
			}
			return
		}
		if c.onEnvelope != nil {
			c.onEnvelope(env)
		}
	}
}

func (c *Client) dialWebsocket(ctx context.Context, addr string) (transport, error) {
	ws, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, err
	}
	return internal.NewConn(ws, c.cfg.ReadTimeout, c.cfg.WriteTimeout), nil
}

func (c *Client) fireOpen() {
	if c.onOpen != nil {
		c.onOpen()
	}
}

func (c *Client) fireClose() {
	if c.onClose != nil {
		c.onClose()
	}
}

// isDecodeError reports whether a read failed on the payload rather than the
// connection: the frame arrived but was not a valid envelope.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

func isExpectedDisconnect(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if ctx != nil && ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	default:
		return false
	}
}
