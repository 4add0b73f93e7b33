package citadels

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// fakeConn is a scripted transport: Read yields queued envelopes or errors,
// Write records outbound envelopes.
type fakeConn struct {
	reads chan any // Envelope or error

	mu     sync.Mutex
	writes []Envelope
}

func newFakeConn() *fakeConn {
	return &fakeConn{reads: make(chan any, 16)}
}

func (f *fakeConn) Read(ctx context.Context, v any) error {
	select {
	case item := <-f.reads:
		if err, ok := item.(error); ok {
			return err
		}
		*(v.(*Envelope)) = item.(Envelope)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeConn) Write(ctx context.Context, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, v.(Envelope))
	return nil
}

func (f *fakeConn) Close(websocket.StatusCode, string) error {
	return nil
}

func (f *fakeConn) sentTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.writes))
	for i, env := range f.writes {
		types[i] = env.Type
	}
	return types
}

func testClient(fc clockwork.Clock) *Client {
	cfg := DefaultConfig()
	cfg.URL = "ws://localhost:8080/ws?game=G1&type=player"
	cfg.Clock = fc
	return NewClient(cfg)
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestBackoffProgression(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := testClient(fc)
	c.dial = func(context.Context, string) (transport, error) {
		return nil, errors.New("connection refused")
	}

	closed := make(chan struct{}, 16)
	c.OnClose(func() { closed <- struct{}{} })

	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	want := []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		4000 * time.Millisecond,
		8000 * time.Millisecond,
		10000 * time.Millisecond,
		10000 * time.Millisecond,
	}
	for _, delay := range want {
		waitSignal(t, closed, "close callback")
		fc.BlockUntil(1)

		// Advancing one tick short of the delay must not reconnect.
		fc.Advance(delay - time.Millisecond)
		select {
		case <-closed:
			t.Fatalf("reconnected before %v elapsed", delay)
		case <-time.After(20 * time.Millisecond):
		}
		fc.Advance(time.Millisecond)
	}
}

func TestBackoffResetsAfterSuccessfulOpen(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := testClient(fc)

	conn := newFakeConn()
	attempts := 0
	c.dial = func(context.Context, string) (transport, error) {
		attempts++
		if attempts <= 2 {
			return nil, errors.New("connection refused")
		}
		return conn, nil
	}

	opened := make(chan struct{}, 16)
	closed := make(chan struct{}, 16)
	c.OnOpen(func() { opened <- struct{}{} })
	c.OnClose(func() { closed <- struct{}{} })

	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	// Two failures: wait out 1s then 2s.
	waitSignal(t, closed, "first failure")
	fc.BlockUntil(1)
	fc.Advance(1000 * time.Millisecond)
	waitSignal(t, closed, "second failure")
	fc.BlockUntil(1)
	fc.Advance(2000 * time.Millisecond)

	// Third attempt succeeds; then the server drops us.
	waitSignal(t, opened, "open callback")
	conn.reads <- errors.New("connection reset")
	waitSignal(t, closed, "drop after open")

	// Backoff is back at the floor: 1s reconnects.
	fc.BlockUntil(1)
	fc.Advance(1000 * time.Millisecond)
	waitSignal(t, opened, "reconnect at floor delay")
}

func TestSendDroppedWhenNotConnected(t *testing.T) {
	c := testClient(clockwork.NewFakeClock())
	// Never started: must not panic, must not queue.
	c.Send(MsgTakeGold, struct{}{})
	require.Equal(t, StateDisconnected, c.State())
}

func TestSendWritesEnvelope(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := testClient(fc)
	conn := newFakeConn()
	c.dial = func(context.Context, string) (transport, error) { return conn, nil }

	opened := make(chan struct{}, 1)
	c.OnOpen(func() { opened <- struct{}{} })
	require.NoError(t, c.Start(context.Background()))
	defer c.Close()
	waitSignal(t, opened, "open callback")

	c.Send(MsgBuild, BuildMsg{DistrictName: "Castle"})
	require.Equal(t, []string{MsgBuild}, conn.sentTypes())

	var bm BuildMsg
	require.NoError(t, conn.writes[0].Decode(&bm))
	require.Equal(t, "Castle", bm.DistrictName)
}

func TestMalformedFrameDroppedConnectionSurvives(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := testClient(fc)
	conn := newFakeConn()
	c.dial = func(context.Context, string) (transport, error) { return conn, nil }

	received := make(chan Envelope, 4)
	closed := make(chan struct{}, 4)
	c.OnEnvelope(func(env Envelope) { received <- env })
	c.OnClose(func() { closed <- struct{}{} })

	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	conn.reads <- &json.SyntaxError{}
	conn.reads <- Envelope{Type: MsgEvent}

	select {
	case env := <-received:
		require.Equal(t, MsgEvent, env.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("valid envelope after malformed frame never arrived")
	}
	select {
	case <-closed:
		t.Fatal("malformed frame tore down the connection")
	default:
	}
}

func TestStartRejectsEmptyURL(t *testing.T) {
	cfg := DefaultConfig()
	c := NewClient(cfg)
	err := c.Start(context.Background())
	require.ErrorIs(t, err, NewError(ErrorInvalidConfig, ""))
}
