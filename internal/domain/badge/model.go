package badge

// Badge is a pure value derived from a player's aggregate statistics and
// optional profile. Badges are recomputed on demand, never persisted.
type Badge struct {
	Icon        string
	Name        string
	Description string
}

// iconByName is the fixed glyph per badge name. Opaque to the rule engine,
// which only looks names up here when emitting a badge.
var iconByName = map[string]string{
	"Legend":               "👑",
	"MVP Champion":         "🏆",
	"Goal God":             "⚡",
	"Goal Machine":         "🔥",
	"Sharp Shooter":        "🎯",
	"Dominator":            "💪",
	"Champion":             "🥇",
	"Winner":               "🏅",
	"Hall of Famer":        "🏛️",
	"Warrior":              "⚔️",
	"Veteran":              "🎖️",
	"Elite Performer":      "💎",
	"Consistent":           "📈",
	"Black Hole":           "🕳️",
	"Goal Leaker":          "🚿",
	"Diplomat":             "🤝",
	"Peacekeeper":          "🕊️",
	"Cursed":               "💀",
	"Unlucky":              "🪦",
	"Maestro":              "🎼",
	"Skilled":              "🛠️",
	"Speed Demon":          "💨",
	"Sniper":               "🔫",
	"Wall":                 "🧱",
	"Magician":             "🪄",
	"Playmaker":            "🎩",
	"Beast":                "🦍",
	"Showboat":             "🎪",
	"Acrobat":              "🤸",
	"Humiliator":           "😈",
	"Artist":               "🎨",
	"Swiss Army Knife":     "🔧",
	"On Fire":              "🚀",
	"Stormy Weather":       "⛈️",
	"Trying Hard":          "😅",
	"Team Player":          "🫂",
	"Unstoppable":          "🚄",
	"Balanced":             "⚖️",
	"Fresh Meat":           "🍖",
	"Chaos Agent":          "🌀",
	"Participation Trophy": "🎗️",
	"Drama Queen":          "🎭",
	"Slow Starter":         "🐢",
	"Perfectionist":        "📉",
	"Hero of Lost Causes":  "🦸",
	"Mathematician":        "🧮",
	"One Hit Wonder":       "🎸",
	"Cardio King":          "🏃",
	"Star of the Show":     "🌟",
}

func newBadge(name, description string) Badge {
	return Badge{
		Icon:        iconByName[name],
		Name:        name,
		Description: description,
	}
}
