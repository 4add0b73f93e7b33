package citadels

// ConnectionState represents the current state of the connection manager.
type ConnectionState int

const (
	// StateDisconnected means the client has not been started.
	StateDisconnected ConnectionState = iota

	// StateConnecting means the client is establishing a connection.
	StateConnecting

	// StateConnected means the client is connected and ready.
	StateConnected

	// StateReconnecting means the client is waiting out a backoff delay
	// before the next connect attempt. Reconnection never gives up.
	StateReconnecting

	// StateClosed means the client has been explicitly closed.
	StateClosed
)

// String returns the string representation of a ConnectionState.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
