package citadels

// Role identifies the 8 base-game characters by their numeric wire code.
type Role int

const (
	RoleNone      Role = 0
	RoleAssassin  Role = 1
	RoleThief     Role = 2
	RoleMagician  Role = 3
	RoleKing      Role = 4
	RoleBishop    Role = 5
	RoleMerchant  Role = 6
	RoleArchitect Role = 7
	RoleWarlord   Role = 8
)

var roleNames = map[Role]string{
	RoleAssassin:  "Assassin",
	RoleThief:     "Thief",
	RoleMagician:  "Magician",
	RoleKing:      "King",
	RoleBishop:    "Bishop",
	RoleMerchant:  "Merchant",
	RoleArchitect: "Architect",
	RoleWarlord:   "Warlord",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// RoleFromName maps a wire role name back to its numeric code.
// Returns RoleNone for unrecognized names.
func RoleFromName(name string) Role {
	for r, n := range roleNames {
		if n == name {
			return r
		}
	}
	return RoleNone
}

// DistrictColor is the category of a district card.
type DistrictColor int

const (
	ColorNone      DistrictColor = 0
	ColorNoble     DistrictColor = 1
	ColorReligious DistrictColor = 2
	ColorTrade     DistrictColor = 3
	ColorMilitary  DistrictColor = 4
	ColorSpecial   DistrictColor = 5
)

var colorNames = map[DistrictColor]string{
	ColorNoble:     "Noble",
	ColorReligious: "Religious",
	ColorTrade:     "Trade",
	ColorMilitary:  "Military",
	ColorSpecial:   "Special",
}

func (c DistrictColor) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return ""
}

// Phase is the authoritative snapshot's phase field. Values are wire strings
// produced by the remote authority.
type Phase string

const (
	PhaseLobby      Phase = "Lobby"
	PhaseDraftSetup Phase = "DraftSetup"
	PhaseDraftPick  Phase = "DraftPick"
	PhaseResolution Phase = "Resolution"
	PhasePlayerTurn Phase = "PlayerTurn"
	PhaseAbility    Phase = "Ability"
	PhaseDrawChoice Phase = "DrawChoice"
	PhaseGameOver   Phase = "GameOver"
)

// costFloorDistrict, when present in a target's city, removes the warlord's
// one-gold destruction discount.
const costFloorDistrict = "Great Wall"
