package citadels

import "encoding/json"

// Message types: server -> client.
const (
	MsgLobbyUpdate = "lobby_update"
	MsgPlayerState = "player_state"
	MsgGameState   = "game_state"
	MsgEvent       = "event"
	MsgError       = "error"
)

// Message types: client -> server.
const (
	MsgJoin             = "join"
	MsgReady            = "ready"
	MsgStartGame        = "start_game"
	MsgDraftPick        = "draft_pick"
	MsgKeepCard         = "keep_card"
	MsgTakeGold         = "take_gold"
	MsgDrawCards        = "draw_cards"
	MsgBuild            = "build"
	MsgAbility          = "ability"
	MsgLabDiscard       = "lab_discard"
	MsgSmithyDraw       = "smithy_draw"
	MsgGraveyardRespond = "graveyard_respond"
	MsgEndTurn          = "end_turn"
)

// Envelope is the unit of wire exchange: a discriminant plus an opaque
// payload. There are no sequence numbers; ordering is whatever the transport
// preserves within a single connection's lifetime.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope wraps a payload value into an envelope with the given type.
func NewEnvelope(typ string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: typ}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, WrapError(ErrorSerialization, "encode "+typ+" payload", err)
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// Decode unmarshals the envelope payload into v.
func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return WrapError(ErrorDecode, "decode "+e.Type+" payload", err)
	}
	return nil
}

// LobbyUpdate is pushed to every client whenever the lobby roster changes.
type LobbyUpdate struct {
	GameID  string        `json:"game_id"`
	Players []LobbyPlayer `json:"players"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// District is a single district card.
type District struct {
	Name  string        `json:"name"`
	Color DistrictColor `json:"color"`
	Cost  int           `json:"cost"`
}

// PublicPlayer is the aggregate per-player view visible to everyone.
type PublicPlayer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Gold          int        `json:"gold"`
	HandSize      int        `json:"hand_size"`
	City          []District `json:"city"`
	HasCrown      bool       `json:"has_crown"`
	RevealedRoles []string   `json:"revealed_roles,omitempty"`
}

// GameState is the display-scoped authoritative snapshot: the public view of
// the whole game. It is always replaced wholesale, never patched.
type GameState struct {
	Phase          Phase          `json:"phase"`
	Round          int            `json:"round"`
	Players        []PublicPlayer `json:"players"`
	CurrentCall    string         `json:"current_call,omitempty"`
	CurrentTurn    string         `json:"current_turn,omitempty"`
	CurrentRole    string         `json:"current_role,omitempty"`
	DraftFaceUp    []string       `json:"draft_face_up,omitempty"`
	DraftPicker    string         `json:"draft_picker,omitempty"`
	DraftAvailable int            `json:"draft_available,omitempty"`
	Scores         []ScoreEntry   `json:"scores,omitempty"`
	DeckSize       int            `json:"deck_size"`
}

// PlayerState is the controller-scoped authoritative snapshot: the public
// view plus the owning player's private hand, characters and capability
// flags. A capability flag being false means the corresponding affordance is
// not currently legal, and any ephemeral interaction built on it is stale.
type PlayerState struct {
	GameState
	Hand            []District       `json:"hand"`
	Characters      []string         `json:"characters"`
	IsMyTurn        bool             `json:"is_my_turn"`
	CanBuild        bool             `json:"can_build"`
	CanUseAbility   bool             `json:"can_use_ability"`
	CanTakeAction   bool             `json:"can_take_action"`
	DraftChoices    []string         `json:"draft_choices,omitempty"`
	DrawnCards      []District       `json:"drawn_cards,omitempty"`
	KeepCount       int              `json:"keep_count,omitempty"`
	ValidTargets    []string         `json:"valid_targets,omitempty"`
	CanUseLab       bool             `json:"can_use_lab,omitempty"`
	CanUseSmithy    bool             `json:"can_use_smithy,omitempty"`
	GraveyardChoice *GraveyardChoice `json:"graveyard_choice,omitempty"`
}

// GraveyardChoice is a standing accept/decline prompt tied to a previously
// destroyed district. It may be present regardless of whose turn it is.
type GraveyardChoice struct {
	DistrictName string `json:"district_name"`
	DistrictCost int    `json:"district_cost"`
}

// ScoreEntry is one row of the final standings.
type ScoreEntry struct {
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name"`
	DistrictScore int    `json:"district_score"`
	ColorBonus    int    `json:"color_bonus"`
	FirstComplete int    `json:"first_complete"`
	OtherComplete int    `json:"other_complete"`
	SpecialBonus  int    `json:"special_bonus"`
	Total         int    `json:"total"`
}

// Event is a push notification about something that happened in the game.
// Data fields are event-type specific.
type Event struct {
	Type   string         `json:"type"`
	Player string         `json:"player,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// ServerError is an application-level fault from the remote authority.
// Informational, never fatal to the session.
type ServerError struct {
	Message string `json:"message"`
}

// JoinMsg establishes (or re-attaches) identity. It is resent verbatim on
// every rejoin.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type ReadyMsg struct {
	Ready bool `json:"ready"`
}

type DraftPickMsg struct {
	Character Role `json:"character"`
}

type KeepCardMsg struct {
	Index int `json:"index"`
}

type BuildMsg struct {
	DistrictName string `json:"district_name"`
}

// AbilityMsg carries the role-specific fields of an ability invocation.
// Which fields are set depends on the acting role.
type AbilityMsg struct {
	Character    Role   `json:"character,omitempty"`
	DistrictName string `json:"district_name,omitempty"`
	Target       string `json:"target,omitempty"`
	ExtraData    string `json:"extra_data,omitempty"`
	Indices      []int  `json:"indices,omitempty"`
}

type LabDiscardMsg struct {
	DistrictName string `json:"district_name"`
}

type GraveyardRespondMsg struct {
	ExtraData string `json:"extra_data"` // "accept" or "decline"
}
