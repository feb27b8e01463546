package model

// RoomCategory is the closed set of bookable room types.
type RoomCategory string

const (
	CategoryStandard RoomCategory = "Standard"
	CategoryDeluxe   RoomCategory = "Deluxe"
	CategorySuite    RoomCategory = "Suite"
	CategoryFamily   RoomCategory = "Family"
)

// ValidCategory reports whether c is one of the known room categories.
func ValidCategory(c RoomCategory) bool {
	switch c {
	case CategoryStandard, CategoryDeluxe, CategorySuite, CategoryFamily:
		return true
	}
	return false
}

// Room is a bookable inventory record. Rooms are loaded once at startup and
// are read-only to the reservation core.
type Room struct {
	ID          string       `json:"id" bson:"_id"`
	Name        string       `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Category    RoomCategory `json:"category" bson:"category" validate:"required,oneof=Standard Deluxe Suite Family"`
	Description string       `json:"description" bson:"description"`
	NightlyRate float64      `json:"nightly_rate" bson:"nightly_rate" validate:"required,gt=0"`
	Capacity    int          `json:"capacity" bson:"capacity" validate:"required,min=1"`
	SizeSqm     float64      `json:"size_sqm" bson:"size_sqm"`
	Amenities   []string     `json:"amenities" bson:"amenities"`
	Images      []string     `json:"images" bson:"images"`
	Featured    bool         `json:"featured" bson:"featured"`
}
