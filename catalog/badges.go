package catalog

// BadgeKey identifies a badge in the static badge table.
type BadgeKey string

const (
	BadgeFreeMoneyFinder BadgeKey = "FREE_MONEY_FINDER"
	BadgeSafetyNetShield BadgeKey = "SAFETY_NET_SHIELD"
	BadgeTechVisionary   BadgeKey = "TECH_VISIONARY"
	BadgeWarSurvivor     BadgeKey = "WAR_SURVIVOR"
	BadgeLegacyBuilder   BadgeKey = "LEGACY_BUILDER"
	BadgeHodlHero        BadgeKey = "HODL_HERO"
)

// Badge is awarded at most once per name per session.
type Badge struct {
	Name        string
	Description string
	Icon        string
}

var badges = map[BadgeKey]Badge{
	BadgeFreeMoneyFinder: {Name: "Free Money Finder", Description: "Maximized your 401(k) match", Icon: "[F]"},
	BadgeSafetyNetShield: {Name: "Safety Net Shield", Description: "Built an emergency fund", Icon: "[S]"},
	BadgeTechVisionary:   {Name: "Tech Visionary", Description: "Capitalized on tech boom", Icon: "[T]"},
	BadgeWarSurvivor:     {Name: "War Survivor", Description: "Held through market crash", Icon: "[W]"},
	BadgeLegacyBuilder:   {Name: "Legacy Builder", Description: "Started 529 plan for family", Icon: "[L]"},
	BadgeHodlHero:        {Name: "HODL Hero", Description: "Never panic sold", Icon: "[H]"},
}

// BadgeByKey resolves a badge definition.
func BadgeByKey(key BadgeKey) (Badge, bool) {
	b, ok := badges[key]
	return b, ok
}
