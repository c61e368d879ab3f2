package models

// Gear categories and priorities, matching the checklist screens.
const (
	GearEssential   = "essential"
	GearRecommended = "recommended"
	GearOptional    = "optional"
)

// ValidGearCategory reports whether c names a known gear category.
func ValidGearCategory(c string) bool {
	switch c {
	case "rods", "reels", "lures", "tackle", "electronics", "safety", "other":
		return true
	}
	return false
}

// GearItem is one entry of a member's personal tournament checklist.
type GearItem struct {
	ID       string `json:"id"`
	OwnerUID string `json:"-"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Checked  bool   `json:"is_checked"`
	Priority string `json:"priority"`
	Notes    string `json:"notes,omitempty"`
}
