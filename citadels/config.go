package citadels

import (
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config controls how the client connects and reconnects.
type Config struct {
	URL              string // full ws:// or wss:// endpoint, including query
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration // 0 disables; state pushes can be far apart
	WriteTimeout     time.Duration
	ReconnectFloor   time.Duration // backoff after a successful open
	ReconnectCeiling time.Duration // backoff never exceeds this
	Clock            clockwork.Clock
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: 10 * time.Second,
		WriteTimeout:     10 * time.Second,
		ReconnectFloor:   1000 * time.Millisecond,
		ReconnectCeiling: 10000 * time.Millisecond,
		Clock:            clockwork.NewRealClock(),
	}
}

// ControllerURL builds the websocket endpoint for a personal-controller
// client. A missing game id is fatal: there is no session to attach to.
func ControllerURL(base, gameID, playerID string) (string, error) {
	return wsURL(base, gameID, url.Values{"player": {playerID}, "type": {"player"}})
}

// DisplayURL builds the websocket endpoint for a shared-display client.
func DisplayURL(base, gameID string) (string, error) {
	return wsURL(base, gameID, url.Values{"type": {"tv"}})
}

func wsURL(base, gameID string, extra url.Values) (string, error) {
	if gameID == "" {
		return "", NewError(ErrorInvalidConfig, "missing game id")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", WrapError(ErrorInvalidConfig, "parse server url", err)
	}
	q := u.Query()
	q.Set("game", gameID)
	for k, vs := range extra {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
