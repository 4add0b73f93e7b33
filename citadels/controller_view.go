package citadels

import (
	"sort"
	"strings"
)

// ViewKind discriminates the controller's top-level screens.
type ViewKind int

const (
	ViewJoin ViewKind = iota
	ViewLobby
	ViewGame
	ViewGameOver
)

func (k ViewKind) String() string {
	switch k {
	case ViewJoin:
		return "join"
	case ViewLobby:
		return "lobby"
	case ViewGame:
		return "game"
	case ViewGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ControllerView is the controller's view projection: pure data for a UI to
// draw, recomputed from scratch on every state change.
type ControllerView struct {
	Kind ViewKind

	// Join screen.
	Name string

	// Lobby screen.
	Lobby *LobbyView

	// Game screens.
	Header     *HeaderView
	Characters []string
	Draft      *DraftView
	Draw       *DrawView
	Turn       *TurnView
	WaitingOn  string // localized role currently playing, when not our turn
	Hand       []CardView
	City       []CardView
	Graveyard  *GraveyardPrompt

	// Game-over screen.
	Standings []StandingRow
}

type LobbyView struct {
	Players  []LobbyPlayer
	Ready    bool // own readiness
	CanStart bool // roster size >= 2
}

type HeaderView struct {
	Name     string
	Gold     int
	HandSize int
}

// CardView is one rendered hand, draw-choice or city entry.
type CardView struct {
	Index      int
	Name       string // localized
	RawName    string // wire name, for intents
	ColorLabel string // localized color
	ColorClass string
	Cost       int
	Effect     string // localized effect line, "" if none
	Buildable  bool
	Selected   bool // discard multi-select membership
}

type DraftView struct {
	Choices []string // localized, selectable in order
	Waiting bool     // true when no choices are offered to us
}

type DrawView struct {
	Cards     []CardView
	KeepCount int
}

// TurnView is rendered only when it is the player's turn.
type TurnView struct {
	Role          string // localized acting role
	CanTakeAction bool
	CanUseAbility bool
	CanUseLab     bool
	CanUseSmithy  bool
	LabMode       bool
	SubMode       SubMode

	// Flat target list; nil in warlord turns (grouped list used instead)
	// and while a sub-mode is active.
	Targets []TargetView

	// Peer list for the swap-hand sub-mode.
	SwapPeers []PeerView

	// Grouped (peer, district) targets with effective cost, warlord only.
	PeerTargets []PeerTargets

	// Buildable hand entries; hidden while the lab discard mode is active.
	Build []CardView
}

type TargetView struct {
	ID    string // raw target, passed back to SelectTarget
	Label string // localized
}

type PeerView struct {
	ID   string
	Name string
}

type PeerTargets struct {
	PeerID   string
	PeerName string
	Targets  []WarlordTarget
}

// WarlordTarget is one destroyable district annotated with what destroying
// it would cost: base cost minus one, except no discount when the peer holds
// the cost-floor district.
type WarlordTarget struct {
	Raw           string // "peerID:district", passed back to SelectTarget
	District      string // localized
	Cost          int
	EffectiveCost int
	Discounted    bool
}

type GraveyardPrompt struct {
	District string // localized
	Cost     int
}

// StandingRow is one row of the final standings, sorted descending by total.
type StandingRow struct {
	Name      string
	Districts int
	Colors    int
	Complete  int
	Special   int
	Total     int
	Winner    bool
	City      []CardView // filled on the display's mirror of the table
}

// Render recomputes the view from the current snapshot and ephemeral state.
func (s *Controller) Render() ControllerView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.joined {
		return ControllerView{Kind: ViewJoin, Name: s.id.Name}
	}
	if s.state == nil {
		return ControllerView{Kind: ViewLobby, Lobby: s.lobbyView()}
	}
	if s.state.Phase == PhaseGameOver {
		return ControllerView{
			Kind:      ViewGameOver,
			Standings: standings(s.state.Scores, nil, nil),
		}
	}
	return s.gameView()
}

func (s *Controller) lobbyView() *LobbyView {
	lv := &LobbyView{}
	if s.lobby == nil {
		return lv
	}
	lv.Players = s.lobby.Players
	lv.CanStart = len(s.lobby.Players) >= 2
	for _, p := range s.lobby.Players {
		if p.ID == s.id.PlayerID {
			lv.Ready = p.Ready
		}
	}
	return lv
}

func (s *Controller) gameView() ControllerView {
	st := s.state
	v := ControllerView{Kind: ViewGame}

	v.Header = &HeaderView{Name: s.id.Name, HandSize: len(st.Hand)}
	if me := findPlayer(st.Players, s.id.PlayerID); me != nil {
		v.Header.Gold = me.Gold
	}

	for _, c := range st.Characters {
		v.Characters = append(v.Characters, s.loc.T(c, nil))
	}

	switch st.Phase {
	case PhaseDraftPick:
		d := &DraftView{Waiting: len(st.DraftChoices) == 0}
		for _, c := range st.DraftChoices {
			d.Choices = append(d.Choices, s.loc.T(c, nil))
		}
		v.Draft = d

	case PhaseDrawChoice:
		v.Draw = &DrawView{
			Cards:     s.cardViews(st.DrawnCards, false),
			KeepCount: st.KeepCount,
		}
	}

	if st.Phase == PhasePlayerTurn {
		if st.IsMyTurn {
			v.Turn = s.turnView()
		} else if st.CurrentRole != "" {
			v.WaitingOn = s.loc.T(st.CurrentRole, nil)
		}
	}

	// Hand and city are always visible; hand entries double as the build
	// list during the turn, so skip the duplicate section there.
	if v.Turn == nil || len(v.Turn.Build) == 0 {
		v.Hand = s.cardViews(st.Hand, false)
	}
	if me := findPlayer(st.Players, s.id.PlayerID); me != nil {
		v.City = s.cardViews(me.City, false)
	}

	// The graveyard prompt is phase-independent: standing until answered.
	if st.GraveyardChoice != nil {
		v.Graveyard = &GraveyardPrompt{
			District: s.loc.T(st.GraveyardChoice.DistrictName, nil),
			Cost:     st.GraveyardChoice.DistrictCost,
		}
	}

	return v
}

func (s *Controller) turnView() *TurnView {
	st := s.state
	tv := &TurnView{
		Role:          s.loc.T(st.CurrentRole, nil),
		CanTakeAction: st.CanTakeAction,
		CanUseAbility: st.CanUseAbility && len(st.ValidTargets) > 0,
		CanUseLab:     st.CanUseLab,
		CanUseSmithy:  st.CanUseSmithy,
		LabMode:       s.labMode,
		SubMode:       s.subMode,
	}

	role := RoleFromName(st.CurrentRole)
	switch s.subMode {
	case SubModeSwapTarget:
		for _, p := range st.Players {
			if p.ID == s.id.PlayerID {
				continue
			}
			tv.SwapPeers = append(tv.SwapPeers, PeerView{ID: p.ID, Name: p.Name})
		}
	case SubModeDiscardSet:
		// Hand multi-select is rendered through Build/Hand card views below.
	default:
		if tv.CanUseAbility {
			if role == RoleWarlord {
				tv.PeerTargets = s.warlordTargets()
			} else {
				for _, t := range st.ValidTargets {
					tv.Targets = append(tv.Targets, TargetView{ID: t, Label: s.targetLabel(t)})
				}
			}
		}
	}

	// Entering the lab discard mode hides the normal build affordance.
	if st.CanBuild && !s.labMode && s.subMode == SubModeNone {
		tv.Build = s.cardViews(st.Hand, true)
	}
	if s.subMode == SubModeDiscardSet {
		tv.Build = s.cardViews(st.Hand, false)
		for i := range tv.Build {
			_, tv.Build[i].Selected = s.discardSel[i]
		}
	}

	return tv
}

// warlordTargets groups the raw "peerID:district" targets by peer, in order
// of first appearance, annotating each with its effective destruction cost.
func (s *Controller) warlordTargets() []PeerTargets {
	st := s.state
	var groups []PeerTargets
	index := map[string]int{}

	for _, raw := range st.ValidTargets {
		peerID, district, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		gi, seen := index[peerID]
		if !seen {
			name := peerID
			if p := findPlayer(st.Players, peerID); p != nil {
				name = p.Name
			}
			index[peerID] = len(groups)
			gi = len(groups)
			groups = append(groups, PeerTargets{PeerID: peerID, PeerName: name})
		}

		wt := WarlordTarget{Raw: raw, District: s.loc.T(district, nil)}
		peer := findPlayer(st.Players, peerID)
		if peer != nil {
			for _, d := range peer.City {
				if d.Name == district {
					wt.Cost = d.Cost
					break
				}
			}
		}
		wt.EffectiveCost = wt.Cost - 1
		wt.Discounted = true
		if peer != nil && cityHas(peer.City, costFloorDistrict) {
			wt.EffectiveCost = wt.Cost
			wt.Discounted = false
		}
		if wt.EffectiveCost < 0 {
			wt.EffectiveCost = 0
		}
		groups[gi].Targets = append(groups[gi].Targets, wt)
	}
	return groups
}

func (s *Controller) targetLabel(target string) string {
	if peerID, district, ok := strings.Cut(target, ":"); ok {
		return peerID + ":" + s.loc.T(district, nil)
	}
	return s.loc.T(target, nil)
}

func (s *Controller) cardViews(cards []District, buildable bool) []CardView {
	out := make([]CardView, 0, len(cards))
	for i, d := range cards {
		out = append(out, CardView{
			Index:      i,
			Name:       s.loc.T(d.Name, nil),
			RawName:    d.Name,
			ColorLabel: s.loc.T(d.Color.String(), nil),
			ColorClass: s.loc.ColorClass(d.Color),
			Cost:       d.Cost,
			Effect:     s.loc.DistrictEffect(d.Name),
			Buildable:  buildable,
		})
	}
	return out
}

// standings sorts score rows descending by total and marks the top row.
// cityOf, when non-nil, fills per-row built districts (display table only).
func standings(scores []ScoreEntry, players []PublicPlayer, cityView func([]District) []CardView) []StandingRow {
	rows := make([]StandingRow, 0, len(scores))
	for _, sc := range scores {
		row := StandingRow{
			Name:      sc.PlayerName,
			Districts: sc.DistrictScore,
			Colors:    sc.ColorBonus,
			Complete:  sc.FirstComplete + sc.OtherComplete,
			Special:   sc.SpecialBonus,
			Total:     sc.Total,
		}
		if cityView != nil {
			if p := findPlayer(players, sc.PlayerID); p != nil {
				row.City = cityView(p.City)
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	if len(rows) > 0 {
		rows[0].Winner = true
	}
	return rows
}

func findPlayer(players []PublicPlayer, id string) *PublicPlayer {
	for i := range players {
		if players[i].ID == id {
			return &players[i]
		}
	}
	return nil
}

func cityHas(city []District, name string) bool {
	for _, d := range city {
		if d.Name == name {
			return true
		}
	}
	return false
}
