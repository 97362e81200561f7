package models

// Category represents the sport categories covered by the daily report.
type Category string

const (
	Football Category = "football"
	Tennis   Category = "tennis"
	MMA      Category = "mma"
)

// OddsKey returns the sport key used by The Odds API for this category.
func (c Category) OddsKey() string {
	switch c {
	case Football:
		return "soccer"
	case Tennis:
		return "tennis"
	case MMA:
		return "mma_mixed_martial_arts"
	default:
		return ""
	}
}

// IsValid checks if the category is supported.
func (c Category) IsValid() bool {
	switch c {
	case Football, Tennis, MMA:
		return true
	default:
		return false
	}
}

// String returns string representation.
func (c Category) String() string {
	return string(c)
}

// AllCategories returns the supported categories in report order.
// Report sections are always rendered in this order regardless of
// which category pipeline finishes first.
func AllCategories() []Category {
	return []Category{Football, Tennis, MMA}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsValid()
}
