package citadels

import (
	"sort"
	"strings"
	"sync"
)

// SubMode is the controller's nullable interaction sub-mode selector. The
// sub-modes are mutually exclusive two-step interactions; everything else is
// a single intent.
type SubMode int

const (
	SubModeNone SubMode = iota

	// SubModeSwapTarget lists peers; picking one sends the swap intent
	// and exits immediately. Single step, no confirmation.
	SubModeSwapTarget

	// SubModeDiscardSet renders the hand as a multi-select list; a
	// non-empty selection enables confirm, which sends the intent.
	SubModeDiscardSet
)

// Magician ability modes as they appear in the target list.
const (
	TargetSwapHand    = "swap_hand"
	TargetDiscardDraw = "discard_draw"
)

// Sender is the outbound half of the connection manager as the sessions see
// it. Satisfied by *Client.
type Sender interface {
	Send(typ string, payload any)
}

// Controller is the personal-device session: it owns identity, the latest
// authoritative snapshot and a small set of ephemeral interaction-mode
// variables, translates user input into outbound intents, and re-derives its
// view on every state change.
//
// The snapshot is wholesale-replaced on every receipt; ephemeral state is
// reset whenever the snapshot no longer reports the capability it was built
// on. Stale affordances are never rendered.
type Controller struct {
	logger Logger
	loc    Localizer
	store  *IdentityStore

	mu     sync.Mutex
	send   Sender
	id     Identity
	joined bool
	lobby  *LobbyUpdate
	state  *PlayerState

	// Ephemeral interaction state. Local-only; never transmitted except as
	// the outcome of a completed sub-interaction.
	subMode    SubMode
	labMode    bool
	discardSel map[int]struct{}
}

// NewController loads the persisted identity and constructs the session.
func NewController(store *IdentityStore, loc Localizer, logger Logger) (*Controller, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	id, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Controller{
		logger: logger,
		loc:    loc,
		store:  store,
		id:     id,
	}, nil
}

// Identity returns the persisted identity.
func (s *Controller) Identity() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Attach wires the session to a connection manager: inbound envelopes feed
// ApplyEnvelope, and every open triggers a rejoin if the player had joined.
func (s *Controller) Attach(c *Client) {
	s.mu.Lock()
	s.send = c
	s.mu.Unlock()
	c.OnEnvelope(s.ApplyEnvelope)
	c.OnOpen(s.HandleOpen)
}

// HandleOpen resends the identity-establishing join after a reconnect,
// before any other action. The server treats it as idempotent re-attachment.
func (s *Controller) HandleOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined {
		s.sendLocked(MsgJoin, JoinMsg{PlayerID: s.id.PlayerID, Name: s.id.Name})
	}
}

// ApplyEnvelope is the single mutation entry point for inbound envelopes.
func (s *Controller) ApplyEnvelope(env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch env.Type {
	case MsgLobbyUpdate:
		var lu LobbyUpdate
		if err := env.Decode(&lu); err != nil {
			s.logger.Warn("dropping lobby_update", map[string]any{"error": err.Error()})
			return
		}
		s.lobby = &lu

	case MsgPlayerState:
		var ps PlayerState
		if err := env.Decode(&ps); err != nil {
			s.logger.Warn("dropping player_state", map[string]any{"error": err.Error()})
			return
		}
		s.applySnapshot(&ps)

	case MsgError:
		var se ServerError
		if err := env.Decode(&se); err != nil {
			s.logger.Warn("dropping error envelope", map[string]any{"error": err.Error()})
			return
		}
		// Diagnostic only; interaction continues.
		s.logger.Warn("server error", map[string]any{"message": se.Message})

	case MsgEvent:
		var ev Event
		if err := env.Decode(&ev); err != nil {
			return
		}
		s.logger.Debug("event", map[string]any{"type": ev.Type, "player": ev.Player})

	default:
		s.logger.Debug("unknown envelope dropped", map[string]any{"type": env.Type})
	}
}

// applySnapshot replaces the authoritative snapshot wholesale and resets any
// ephemeral state whose capability the new snapshot no longer reports. The
// reset is idempotent: it holds for any prior sub-mode value.
func (s *Controller) applySnapshot(ps *PlayerState) {
	prevRole := ""
	if s.state != nil {
		prevRole = s.state.CurrentRole
	}
	s.state = ps

	if !ps.IsMyTurn || !ps.CanUseAbility || ps.CurrentRole != prevRole {
		s.subMode = SubModeNone
		s.discardSel = nil
	}
	if !ps.CanUseLab {
		s.labMode = false
	}
}

// Join submits the chosen display name, persists it and sends the join
// intent. Marks the session joined so every reconnect rejoins.
func (s *Controller) Join(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewError(ErrorBadState, "empty name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.id.Name = name
	if err := s.store.Save(s.id); err != nil {
		return err
	}
	s.joined = true
	s.sendLocked(MsgJoin, JoinMsg{PlayerID: s.id.PlayerID, Name: s.id.Name})
	return nil
}

// ToggleReady flips the player's lobby readiness.
func (s *Controller) ToggleReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	ready := false
	if s.lobby != nil {
		for _, p := range s.lobby.Players {
			if p.ID == s.id.PlayerID {
				ready = p.Ready
				break
			}
		}
	}
	s.sendLocked(MsgReady, ReadyMsg{Ready: !ready})
}

// StartGame requests the game start. The view offers this only once the
// roster has two players; legality is judged server-side regardless.
func (s *Controller) StartGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(MsgStartGame, struct{}{})
}

// PickDraft selects the i-th offered draft choice and sends its numeric
// character code.
func (s *Controller) PickDraft(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || s.state.Phase != PhaseDraftPick {
		return NewError(ErrorBadState, "no draft in progress")
	}
	if i < 0 || i >= len(s.state.DraftChoices) {
		return NewError(ErrorBadState, "draft choice out of range")
	}
	role := RoleFromName(s.state.DraftChoices[i])
	s.sendLocked(MsgDraftPick, DraftPickMsg{Character: role})
	return nil
}

// KeepCard selects which of the offered drawn cards to keep.
func (s *Controller) KeepCard(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || s.state.Phase != PhaseDrawChoice {
		return NewError(ErrorBadState, "no draw choice in progress")
	}
	if i < 0 || i >= len(s.state.DrawnCards) {
		return NewError(ErrorBadState, "drawn card out of range")
	}
	s.sendLocked(MsgKeepCard, KeepCardMsg{Index: i})
	return nil
}

// TakeGold sends the take-gold primitive action.
func (s *Controller) TakeGold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(MsgTakeGold, struct{}{})
}

// DrawCards sends the draw-cards primitive action.
func (s *Controller) DrawCards() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(MsgDrawCards, struct{}{})
}

// EndTurn ends the player's turn.
func (s *Controller) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(MsgEndTurn, struct{}{})
}

// Build sends a build intent for the named hand district, unconditionally;
// legality is judged server-side.
func (s *Controller) Build(districtName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendLocked(MsgBuild, BuildMsg{DistrictName: districtName})
}

// SelectTarget reacts to picking an entry from the rendered ability target
// list. Depending on the acting role the pick either completes the ability
// in one step or enters a two-step sub-mode.
func (s *Controller) SelectTarget(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || !s.state.CanUseAbility {
		return NewError(ErrorBadState, "ability not usable")
	}
	if s.subMode != SubModeNone {
		return NewError(ErrorBadState, "sub-interaction already active")
	}

	role := RoleFromName(s.state.CurrentRole)
	switch {
	case target == TargetSwapHand:
		s.subMode = SubModeSwapTarget
		return nil
	case target == TargetDiscardDraw:
		s.subMode = SubModeDiscardSet
		s.discardSel = map[int]struct{}{}
		return nil
	case role == RoleWarlord:
		peerID, district, ok := strings.Cut(target, ":")
		if !ok {
			return NewError(ErrorBadState, "malformed warlord target")
		}
		s.sendLocked(MsgAbility, AbilityMsg{Target: peerID, DistrictName: district})
		return nil
	case role == RoleAssassin || role == RoleThief:
		victim := RoleFromName(target)
		if victim == RoleNone {
			return NewError(ErrorBadState, "unknown character target")
		}
		s.sendLocked(MsgAbility, AbilityMsg{Character: victim})
		return nil
	default:
		return NewError(ErrorBadState, "role has no target pick")
	}
}

// SelectSwapPeer completes the swap-hand sub-mode: sends the intent with the
// chosen peer and exits immediately.
func (s *Controller) SelectSwapPeer(peerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subMode != SubModeSwapTarget {
		return NewError(ErrorBadState, "not choosing a swap target")
	}
	if peerID == s.id.PlayerID {
		return NewError(ErrorBadState, "cannot swap with self")
	}
	s.sendLocked(MsgAbility, AbilityMsg{ExtraData: TargetSwapHand, Target: peerID})
	s.subMode = SubModeNone
	return nil
}

// ToggleDiscard flips hand index i's membership in the discard selection.
func (s *Controller) ToggleDiscard(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subMode != SubModeDiscardSet {
		return NewError(ErrorBadState, "not choosing a discard set")
	}
	if s.state == nil || i < 0 || i >= len(s.state.Hand) {
		return NewError(ErrorBadState, "hand index out of range")
	}
	if _, ok := s.discardSel[i]; ok {
		delete(s.discardSel, i)
	} else {
		s.discardSel[i] = struct{}{}
	}
	return nil
}

// ConfirmDiscard sends the discard-then-redraw intent with the selected
// indices and exits the sub-mode. Requires a non-empty selection.
func (s *Controller) ConfirmDiscard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subMode != SubModeDiscardSet {
		return NewError(ErrorBadState, "not choosing a discard set")
	}
	if len(s.discardSel) == 0 {
		return NewError(ErrorBadState, "empty discard selection")
	}
	indices := make([]int, 0, len(s.discardSel))
	for i := range s.discardSel {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	s.sendLocked(MsgAbility, AbilityMsg{ExtraData: TargetDiscardDraw, Indices: indices})
	s.subMode = SubModeNone
	s.discardSel = nil
	return nil
}

// ToggleLabMode enters or exits the discard-one-for-gold mode. While active
// the normal build affordance is hidden.
func (s *Controller) ToggleLabMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || !s.state.CanUseLab {
		return NewError(ErrorBadState, "laboratory not usable")
	}
	s.labMode = !s.labMode
	return nil
}

// LabDiscard discards the named hand card for one gold and exits the mode.
func (s *Controller) LabDiscard(districtName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.labMode {
		return NewError(ErrorBadState, "laboratory mode not active")
	}
	s.sendLocked(MsgLabDiscard, LabDiscardMsg{DistrictName: districtName})
	s.labMode = false
	return nil
}

// SmithyDraw pays gold to draw three cards. One-shot; no sub-mode.
func (s *Controller) SmithyDraw() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || !s.state.CanUseSmithy {
		return NewError(ErrorBadState, "smithy not usable")
	}
	s.sendLocked(MsgSmithyDraw, struct{}{})
	return nil
}

// RespondGraveyard answers the standing graveyard prompt.
func (s *Controller) RespondGraveyard(accept bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || s.state.GraveyardChoice == nil {
		return NewError(ErrorBadState, "no graveyard prompt")
	}
	answer := "decline"
	if accept {
		answer = "accept"
	}
	s.sendLocked(MsgGraveyardRespond, GraveyardRespondMsg{ExtraData: answer})
	return nil
}

func (s *Controller) sendLocked(typ string, payload any) {
	if s.send == nil {
		s.logger.Debug("intent dropped: no sender", map[string]any{"type": typ})
		return
	}
	s.send.Send(typ, payload)
}
