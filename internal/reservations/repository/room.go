package repository

import (
	"encoding/json"
	"fmt"
	"os"

	reserrors "innkeep/internal/reservations/errors"
	"innkeep/pkg/model"
)

// RoomCatalog is the read-only room inventory. Loaded once at startup;
// the reservation core never mutates it.
type RoomCatalog interface {
	FindByID(id string) (*model.Room, error)
	All() []*model.Room
	Featured() []*model.Room
}

type memoryRoomCatalog struct {
	rooms []*model.Room
	byID  map[string]*model.Room
}

// NewRoomCatalog builds a catalog from the given rooms, preserving order.
// Room invariants (positive rate, capacity of at least one, known category)
// are enforced here so the rest of the core can rely on them.
func NewRoomCatalog(rooms []*model.Room) (RoomCatalog, error) {
	byID := make(map[string]*model.Room, len(rooms))
	for _, room := range rooms {
		if room.ID == "" {
			return nil, fmt.Errorf("room without id in catalog")
		}
		if _, exists := byID[room.ID]; exists {
			return nil, fmt.Errorf("duplicate room id in catalog: %s", room.ID)
		}
		if room.NightlyRate <= 0 {
			return nil, fmt.Errorf("room %s: nightly rate must be positive, got %v", room.ID, room.NightlyRate)
		}
		if room.Capacity < 1 {
			return nil, fmt.Errorf("room %s: capacity must be at least 1, got %d", room.ID, room.Capacity)
		}
		if !model.ValidCategory(room.Category) {
			return nil, fmt.Errorf("room %s: unknown category %q", room.ID, room.Category)
		}
		byID[room.ID] = room
	}

	return &memoryRoomCatalog{
		rooms: rooms,
		byID:  byID,
	}, nil
}

// NewRoomCatalogFromFile loads a JSON room inventory from path. An empty
// path falls back to the built-in seed inventory.
func NewRoomCatalogFromFile(path string) (RoomCatalog, error) {
	if path == "" {
		return NewRoomCatalog(seedRooms())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room catalog: %w", err)
	}

	var rooms []*model.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("failed to parse room catalog: %w", err)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("room catalog %s contains no rooms", path)
	}

	return NewRoomCatalog(rooms)
}

func (c *memoryRoomCatalog) FindByID(id string) (*model.Room, error) {
	room, ok := c.byID[id]
	if !ok {
		return nil, reserrors.ErrRoomNotFound
	}
	return room, nil
}

func (c *memoryRoomCatalog) All() []*model.Room {
	out := make([]*model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *memoryRoomCatalog) Featured() []*model.Room {
	var out []*model.Room
	for _, room := range c.rooms {
		if room.Featured {
			out = append(out, room)
		}
	}
	return out
}
