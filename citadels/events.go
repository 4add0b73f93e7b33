package citadels

// Event log style tags, matched by the display's stylesheet.
const (
	styleRound   = "ev-round"
	styleDraft   = "ev-draft"
	styleCall    = "ev-call"
	styleDanger  = "ev-danger"
	styleAction  = "ev-action"
	styleBuild   = "ev-build"
	styleAbility = "ev-ability"
	styleMinor   = "ev-minor"
)

// formatEvent maps an event to its log template. Role, district and color
// values inside the payload are localized before interpolation; player ids
// resolve to display names through the current snapshot.
func (d *Display) formatEvent(ev Event) (LogEntry, bool) {
	data := ev.Data
	get := func(key string) any {
		if data == nil {
			return ""
		}
		return data[key]
	}
	loc := func(key string) string {
		s, _ := get(key).(string)
		return d.loc.T(s, nil)
	}

	switch ev.Type {
	case "draft_start":
		return d.entry(styleRound, "ev_draft_start", map[string]any{"round": get("round")}), true
	case "draft_pick":
		return d.entry(styleDraft, "ev_draft_pick", map[string]any{"player": d.playerName(ev.Player)}), true
	case "draft_done":
		return d.entry(styleRound, "ev_draft_done", nil), true
	case "character_call":
		return d.entry(styleCall, "ev_character_call", map[string]any{
			"number": get("number"), "role": loc("role"),
		}), true
	case "murdered":
		return d.entry(styleDanger, "ev_murdered", map[string]any{
			"role": loc("role"), "player": d.playerName(ev.Player),
		}), true
	case "robbed":
		return d.entry(styleDanger, "ev_robbed", map[string]any{
			"role": loc("role"), "player": d.playerName(ev.Player),
			"stolen": get("stolen"), "thief": loc("thief"),
		}), true
	case "gold_taken":
		return d.entry(styleAction, "ev_gold_taken", map[string]any{
			"player": d.playerName(ev.Player), "gold": get("gold"),
		}), true
	case "cards_drawn":
		return d.entry(styleAction, "ev_cards_drawn", map[string]any{"player": d.playerName(ev.Player)}), true
	case "district_built":
		return d.entry(styleBuild, "ev_district_built", map[string]any{
			"player": d.playerName(ev.Player), "district": loc("district"), "cost": get("cost"),
		}), true
	case "ability_used":
		return d.entry(styleAbility, "ev_ability_used", map[string]any{
			"player": d.playerName(ev.Player), "ability": loc("ability"),
		}), true
	case "gold_collected":
		return d.entry(styleAction, "ev_gold_collected", map[string]any{
			"player": d.playerName(ev.Player), "count": get("count"), "color": loc("color"),
		}), true
	case "crown_passed":
		return d.entry(styleRound, "ev_crown_passed", map[string]any{"player": d.playerName(ev.Player)}), true
	case "turn_end":
		return d.entry(styleMinor, "ev_turn_end", map[string]any{
			"player": d.playerName(ev.Player), "role": loc("role"),
		}), true
	case "round_end":
		return d.entry(styleRound, "ev_round_end", map[string]any{"round": get("round")}), true
	case "game_over":
		return d.entry(styleRound, "ev_game_over", nil), true
	default:
		return LogEntry{}, false
	}
}

func (d *Display) entry(style, key string, params map[string]any) LogEntry {
	return LogEntry{Text: d.loc.T(key, params), Style: style}
}

// playerName resolves a player id against the current snapshot, falling back
// to the raw id when unknown.
func (d *Display) playerName(id string) string {
	if d.state != nil {
		if p := findPlayer(d.state.Players, id); p != nil {
			return p.Name
		}
	}
	return id
}
