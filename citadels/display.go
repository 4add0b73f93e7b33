package citadels

import (
	"sync"

	qrcode "github.com/skip2/go-qrcode"
)

// maxLogEntries bounds the display's event log: append at tail, evict from
// head once full.
const maxLogEntries = 50

// LogEntry is one rendered event-log line: localized text plus a style tag.
// Entries are derived once, at append time, and never re-fetched.
type LogEntry struct {
	Text  string
	Style string
}

// Display is the shared-screen session: it has no user input, owns the
// latest authoritative snapshot plus the bounded event log, and purely
// projects pushes into a continuously updated view.
type Display struct {
	logger Logger
	loc    Localizer

	mu      sync.Mutex
	lobby   *LobbyUpdate
	state   *GameState
	entries []LogEntry
}

// NewDisplay constructs the display session.
func NewDisplay(loc Localizer, logger Logger) *Display {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Display{logger: logger, loc: loc}
}

// Attach wires the session to a connection manager.
func (d *Display) Attach(c *Client) {
	c.OnEnvelope(d.ApplyEnvelope)
}

// ApplyEnvelope is the single mutation entry point for inbound envelopes.
func (d *Display) ApplyEnvelope(env Envelope) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch env.Type {
	case MsgLobbyUpdate:
		var lu LobbyUpdate
		if err := env.Decode(&lu); err != nil {
			d.logger.Warn("dropping lobby_update", map[string]any{"error": err.Error()})
			return
		}
		d.lobby = &lu

	case MsgGameState:
		var gs GameState
		if err := env.Decode(&gs); err != nil {
			d.logger.Warn("dropping game_state", map[string]any{"error": err.Error()})
			return
		}
		d.state = &gs

	case MsgEvent:
		var ev Event
		if err := env.Decode(&ev); err != nil {
			d.logger.Warn("dropping event", map[string]any{"error": err.Error()})
			return
		}
		d.appendEvent(ev)

	case MsgError:
		var se ServerError
		if err := env.Decode(&se); err != nil {
			return
		}
		d.logger.Warn("server error", map[string]any{"message": se.Message})

	default:
		d.logger.Debug("unknown envelope dropped", map[string]any{"type": env.Type})
	}
}

// appendEvent converts an event into at most one log entry. Unrecognized
// event types are dropped.
func (d *Display) appendEvent(ev Event) {
	entry, ok := d.formatEvent(ev)
	if !ok {
		d.logger.Debug("unrecognized event dropped", map[string]any{"type": ev.Type})
		return
	}
	d.entries = append(d.entries, entry)
	if len(d.entries) > maxLogEntries {
		d.entries = d.entries[len(d.entries)-maxLogEntries:]
	}
}

// JoinQR renders the controller join URL as a PNG for the lobby's
// scan-to-join affordance.
func (d *Display) JoinQR(joinURL string) ([]byte, error) {
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		return nil, WrapError(ErrorUnknown, "encode join qr", err)
	}
	return png, nil
}

// DisplayKind discriminates the display's top-level screens.
type DisplayKind int

const (
	DisplayLobby DisplayKind = iota
	DisplayGame
	DisplayGameOver
)

// DisplayView is the display's view projection, recomputed on every push.
type DisplayView struct {
	Kind      DisplayKind
	Lobby     *DisplayLobbyView
	Game      *DisplayGameView
	Standings []StandingRow
}

type DisplayLobbyView struct {
	GameID      string
	Players     []LobbyPlayer
	JoinedCount int
}

type DisplayGameView struct {
	Phase    string // localized
	Round    int
	DeckSize int

	Draft *DraftBanner
	Call  *CallBanner

	Players []PlayerCardView
	Log     []LogEntry

	// LogAtTail signals the renderer to scroll to the newest entry.
	LogAtTail bool
}

type DraftBanner struct {
	Round     int
	FaceUp    []string // localized
	Available int
	Picker    string
}

type CallBanner struct {
	Role   string // localized
	Player string
}

type PlayerCardView struct {
	Name     string
	Gold     int
	HandSize int
	HasCrown bool
	Active   bool
	Revealed []string // localized roles
	City     []CityChip
}

type CityChip struct {
	Name       string // localized
	Cost       int
	ColorClass string
}

// Render recomputes the view from the current snapshot and log.
func (d *Display) Render() DisplayView {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == nil {
		return DisplayView{Kind: DisplayLobby, Lobby: d.lobbyView()}
	}
	if d.state.Phase == PhaseGameOver {
		return DisplayView{
			Kind:      DisplayGameOver,
			Standings: standings(d.state.Scores, d.state.Players, d.cityChipsAsCards),
		}
	}
	return DisplayView{Kind: DisplayGame, Game: d.gameView()}
}

func (d *Display) lobbyView() *DisplayLobbyView {
	lv := &DisplayLobbyView{}
	if d.lobby != nil {
		lv.GameID = d.lobby.GameID
		lv.Players = d.lobby.Players
		lv.JoinedCount = len(d.lobby.Players)
	}
	return lv
}

func (d *Display) gameView() *DisplayGameView {
	st := d.state
	gv := &DisplayGameView{
		Phase:     d.loc.T(string(st.Phase), nil),
		Round:     st.Round,
		DeckSize:  st.DeckSize,
		Log:       append([]LogEntry(nil), d.entries...),
		LogAtTail: true,
	}

	if st.Phase == PhaseDraftPick {
		b := &DraftBanner{Round: st.Round, Available: st.DraftAvailable, Picker: st.DraftPicker}
		for _, c := range st.DraftFaceUp {
			b.FaceUp = append(b.FaceUp, d.loc.T(c, nil))
		}
		gv.Draft = b
	}

	switch st.Phase {
	case PhasePlayerTurn, PhaseDrawChoice, PhaseAbility:
		gv.Call = &CallBanner{Player: st.CurrentTurn}
		if st.CurrentRole != "" {
			gv.Call.Role = d.loc.T(st.CurrentRole, nil)
		}
	}

	for _, p := range st.Players {
		pc := PlayerCardView{
			Name:     p.Name,
			Gold:     p.Gold,
			HandSize: p.HandSize,
			HasCrown: p.HasCrown,
			Active:   st.CurrentTurn == p.Name,
			City:     d.cityChips(p.City),
		}
		for _, r := range p.RevealedRoles {
			pc.Revealed = append(pc.Revealed, d.loc.T(r, nil))
		}
		gv.Players = append(gv.Players, pc)
	}

	return gv
}

func (d *Display) cityChips(city []District) []CityChip {
	chips := make([]CityChip, 0, len(city))
	for _, dist := range city {
		chips = append(chips, CityChip{
			Name:       d.loc.T(dist.Name, nil),
			Cost:       dist.Cost,
			ColorClass: d.loc.ColorClass(dist.Color),
		})
	}
	return chips
}

// cityChipsAsCards adapts city chips to the shared standings row shape.
func (d *Display) cityChipsAsCards(city []District) []CardView {
	cards := make([]CardView, 0, len(city))
	for i, dist := range city {
		cards = append(cards, CardView{
			Index:      i,
			Name:       d.loc.T(dist.Name, nil),
			RawName:    dist.Name,
			ColorLabel: d.loc.T(dist.Color.String(), nil),
			ColorClass: d.loc.ColorClass(dist.Color),
			Cost:       dist.Cost,
		})
	}
	return cards
}
