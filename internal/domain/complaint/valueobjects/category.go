package valueobjects

import "fmt"

type Category string

const (
	CategoryGarbage     Category = "garbage"
	CategoryRoadDamage  Category = "road_damage"
	CategoryStreetlight Category = "streetlight_issue"
	CategoryWaterLeak   Category = "water_leakage"
	CategoryDrainage    Category = "drainage"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]bool{
	CategoryGarbage:     true,
	CategoryRoadDamage:  true,
	CategoryStreetlight: true,
	CategoryWaterLeak:   true,
	CategoryDrainage:    true,
	CategoryOther:       true,
}

// categoryMultipliers weight the priority score by issue type. Unknown or
// absent categories fall back to 1.0.
var categoryMultipliers = map[Category]float64{
	CategoryDrainage:    1.5,
	CategoryGarbage:     1.3,
	CategoryWaterLeak:   1.2,
	CategoryRoadDamage:  1.1,
	CategoryStreetlight: 1.0,
	CategoryOther:       1.0,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) IsOther() bool {
	return c == CategoryOther
}

// Multiplier returns the priority weighting for this category.
func (c Category) Multiplier() float64 {
	if m, ok := categoryMultipliers[c]; ok {
		return m
	}
	return 1.0
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// AllCategories lists every valid category in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryGarbage,
		CategoryRoadDamage,
		CategoryStreetlight,
		CategoryWaterLeak,
		CategoryDrainage,
		CategoryOther,
	}
}
