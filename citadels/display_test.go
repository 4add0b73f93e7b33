package citadels

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// tmplLoc interpolates {param} templates for the keys it knows and passes
// everything else through, mirroring the catalog's interpolation rules.
type tmplLoc struct {
	templates map[string]string
}

func (l tmplLoc) T(key string, params map[string]any) string {
	s, ok := l.templates[key]
	if !ok {
		s = key
	}
	for k, v := range params {
		val := fmt.Sprint(v)
		if f, isFloat := v.(float64); isFloat && f == float64(int64(f)) {
			val = fmt.Sprintf("%d", int64(f))
		}
		s = strings.ReplaceAll(s, "{"+k+"}", val)
	}
	return s
}

func (l tmplLoc) ColorClass(c DistrictColor) string { return "color-" + c.String() }
func (l tmplLoc) DistrictEffect(name string) string { return "" }

func applyDisplay(t *testing.T, d *Display, typ string, payload any) {
	t.Helper()
	env, err := NewEnvelope(typ, payload)
	require.NoError(t, err)
	d.ApplyEnvelope(env)
}

func TestDisplayLobbyView(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)
	applyDisplay(t, d, MsgLobbyUpdate, LobbyUpdate{
		GameID: "G42",
		Players: []LobbyPlayer{
			{ID: "p1", Name: "Alice", Ready: true},
			{ID: "p2", Name: "Bob"},
		},
	})

	view := d.Render()
	require.Equal(t, DisplayLobby, view.Kind)
	require.Equal(t, "G42", view.Lobby.GameID)
	require.Equal(t, 2, view.Lobby.JoinedCount)
}

func TestJoinQRProducesPNG(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)
	png, err := d.JoinQR("https://example.com/join?game=G42")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes.
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestDistrictBuiltEntry(t *testing.T) {
	d := NewDisplay(tmplLoc{templates: map[string]string{
		"ev_district_built": "{player} built {district} ({cost}g)",
	}}, nil)

	applyDisplay(t, d, MsgGameState, GameState{
		Phase:       PhasePlayerTurn,
		Players:     []PublicPlayer{{ID: "p1", Name: "Alice"}},
		CurrentTurn: "Alice",
	})
	applyDisplay(t, d, MsgEvent, Event{
		Type:   "district_built",
		Player: "p1",
		Data:   map[string]any{"district": "Castle", "cost": 3},
	})

	view := d.Render()
	require.Equal(t, DisplayGame, view.Kind)
	require.Len(t, view.Game.Log, 1)
	require.Equal(t, "Alice built Castle (3g)", view.Game.Log[0].Text)
	require.Equal(t, "ev-build", view.Game.Log[0].Style)
	require.True(t, view.Game.LogAtTail)
}

func TestEventNameFallsBackToRawID(t *testing.T) {
	d := NewDisplay(tmplLoc{templates: map[string]string{
		"ev_draft_pick": "{player} picked a character",
	}}, nil)
	// No snapshot yet: the id cannot be resolved.
	applyDisplay(t, d, MsgEvent, Event{Type: "draft_pick", Player: "p9"})
	require.Equal(t, "p9 picked a character", d.entries[0].Text)
}

func TestUnknownEventDropped(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)
	applyDisplay(t, d, MsgEvent, Event{Type: "telemetry_blob"})
	require.Empty(t, d.entries)
}

func TestEventLogEvictsFromHead(t *testing.T) {
	d := NewDisplay(tmplLoc{templates: map[string]string{
		"ev_gold_taken": "{player} took {gold} gold",
	}}, nil)

	for i := 0; i < maxLogEntries+5; i++ {
		applyDisplay(t, d, MsgEvent, Event{
			Type:   "gold_taken",
			Player: fmt.Sprintf("p%d", i),
			Data:   map[string]any{"gold": 2},
		})
	}

	require.Len(t, d.entries, maxLogEntries)
	// The five oldest lines are gone; the head is now the sixth event.
	require.Equal(t, "p5 took 2 gold", d.entries[0].Text)
	require.Equal(t, fmt.Sprintf("p%d took 2 gold", maxLogEntries+4), d.entries[maxLogEntries-1].Text)
}

func TestGameViewBanners(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)

	applyDisplay(t, d, MsgGameState, GameState{
		Phase:          PhaseDraftPick,
		Round:          2,
		DraftFaceUp:    []string{"King"},
		DraftPicker:    "Alice",
		DraftAvailable: 5,
		DeckSize:       40,
	})
	view := d.Render()
	require.NotNil(t, view.Game.Draft)
	require.Equal(t, []string{"King"}, view.Game.Draft.FaceUp)
	require.Equal(t, "Alice", view.Game.Draft.Picker)
	require.Nil(t, view.Game.Call)

	applyDisplay(t, d, MsgGameState, GameState{
		Phase:       PhasePlayerTurn,
		CurrentRole: "Bishop",
		CurrentTurn: "Alice",
		Players: []PublicPlayer{
			{ID: "p1", Name: "Alice", Gold: 4, HandSize: 3, HasCrown: true},
			{ID: "p2", Name: "Bob"},
		},
	})
	view = d.Render()
	require.Nil(t, view.Game.Draft)
	require.Equal(t, &CallBanner{Role: "Bishop", Player: "Alice"}, view.Game.Call)
	require.Len(t, view.Game.Players, 2)
	require.True(t, view.Game.Players[0].Active)
	require.True(t, view.Game.Players[0].HasCrown)
	require.False(t, view.Game.Players[1].Active)
}

func TestGameOverStandingsWithCities(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)
	applyDisplay(t, d, MsgGameState, GameState{
		Phase: PhaseGameOver,
		Players: []PublicPlayer{
			{ID: "p1", Name: "Alice", City: []District{{Name: "Castle", Color: ColorNoble, Cost: 4}}},
			{ID: "p2", Name: "Bob", City: []District{{Name: "Temple", Color: ColorReligious, Cost: 1}}},
		},
		Scores: []ScoreEntry{
			{PlayerID: "p1", PlayerName: "Alice", DistrictScore: 12, Total: 15},
			{PlayerID: "p2", PlayerName: "Bob", DistrictScore: 17, Total: 21},
		},
	})

	view := d.Render()
	require.Equal(t, DisplayGameOver, view.Kind)
	require.Len(t, view.Standings, 2)
	require.Equal(t, "Bob", view.Standings[0].Name)
	require.True(t, view.Standings[0].Winner)
	require.Len(t, view.Standings[0].City, 1)
	require.Equal(t, "Temple", view.Standings[0].City[0].RawName)
}

func TestMalformedGameStateDropped(t *testing.T) {
	d := NewDisplay(rawLoc{}, nil)
	applyDisplay(t, d, MsgGameState, GameState{Phase: PhasePlayerTurn, Round: 3})

	d.ApplyEnvelope(Envelope{Type: MsgGameState, Payload: []byte(`{"round":"x"}`)})
	require.Equal(t, 3, d.state.Round)
}
