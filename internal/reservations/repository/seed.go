package repository

import "innkeep/pkg/model"

// seedRooms returns the built-in inventory used when no catalog file is
// configured. In production the inventory comes from ROOM_CATALOG_FILE.
func seedRooms() []*model.Room {
	return []*model.Room{
		{
			ID:          "1",
			Name:        "Deluxe Ocean View",
			Category:    model.CategoryDeluxe,
			Description: "Spacious deluxe room with a king-size bed and a private balcony overlooking the ocean.",
			NightlyRate: 299,
			Capacity:    2,
			SizeSqm:     45,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Minibar", "Coffee machine", "Safe"},
			Images:      []string{"rooms/deluxe-ocean-1.jpg", "rooms/deluxe-ocean-2.jpg"},
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Premium King Suite",
			Category:    model.CategorySuite,
			Description: "Suite with a separate living area, premium king-size bed and panoramic city views.",
			NightlyRate: 499,
			Capacity:    2,
			SizeSqm:     65,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Minibar", "Separate living area", "Rain shower"},
			Images:      []string{"rooms/premium-king-1.jpg", "rooms/premium-king-2.jpg"},
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Standard Twin Room",
			Category:    model.CategoryStandard,
			Description: "Comfortable twin room with two single beds and all the essentials.",
			NightlyRate: 199,
			Capacity:    2,
			SizeSqm:     30,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Safe"},
			Images:      []string{"rooms/standard-twin-1.jpg"},
			Featured:    false,
		},
		{
			ID:          "4",
			Name:        "Family Room",
			Category:    model.CategoryFamily,
			Description: "Spacious room with a king-size bed and two single beds, ideal for families with children.",
			NightlyRate: 349,
			Capacity:    4,
			SizeSqm:     55,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Minibar", "Extra space for children"},
			Images:      []string{"rooms/family-1.jpg", "rooms/family-2.jpg"},
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "Executive Suite",
			Category:    model.CategorySuite,
			Description: "Separate bedroom, spacious living area and skyline views.",
			NightlyRate: 599,
			Capacity:    2,
			SizeSqm:     75,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Minibar", "Separate living area", "Jacuzzi"},
			Images:      []string{"rooms/executive-1.jpg"},
			Featured:    false,
		},
		{
			ID:          "6",
			Name:        "Cozy Single Room",
			Category:    model.CategoryStandard,
			Description: "Compact single room for solo travellers.",
			NightlyRate: 149,
			Capacity:    1,
			SizeSqm:     20,
			Amenities:   []string{"Free WiFi", "Flat-screen TV", "Air conditioning", "Safe"},
			Images:      []string{"rooms/single-1.jpg"},
			Featured:    false,
		},
	}
}
