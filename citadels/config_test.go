package citadels

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, time.Second, cfg.ReconnectFloor)
	require.Equal(t, 10*time.Second, cfg.ReconnectCeiling)
	require.Equal(t, 10*time.Second, cfg.HandshakeTimeout)
	require.Zero(t, cfg.ReadTimeout)
	require.NotNil(t, cfg.Clock)
}

func TestControllerURL(t *testing.T) {
	got, err := ControllerURL("ws://host:8080/ws", "G42", "p_abc123def")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "ws", u.Scheme)
	require.Equal(t, "/ws", u.Path)
	require.Equal(t, "G42", u.Query().Get("game"))
	require.Equal(t, "p_abc123def", u.Query().Get("player"))
	require.Equal(t, "player", u.Query().Get("type"))
}

func TestDisplayURL(t *testing.T) {
	got, err := DisplayURL("wss://host/ws?token=x", "G42")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "G42", u.Query().Get("game"))
	require.Equal(t, "tv", u.Query().Get("type"))
	// Pre-existing query parameters survive.
	require.Equal(t, "x", u.Query().Get("token"))
}

func TestURLRequiresGameID(t *testing.T) {
	_, err := ControllerURL("ws://host/ws", "", "p_abc")
	require.ErrorIs(t, err, NewError(ErrorInvalidConfig, ""))

	_, err = DisplayURL("ws://host/ws", "")
	require.ErrorIs(t, err, NewError(ErrorInvalidConfig, ""))
}
