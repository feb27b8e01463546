package service

import (
	"context"
	"time"

	"innkeep/internal/reservations/repository"
	"innkeep/internal/reservations/validator"
	"innkeep/pkg/config"
	"innkeep/pkg/kafka"
	"innkeep/pkg/lock"
	"innkeep/pkg/model"
)

// ReservationService is the reservation core: room catalog queries,
// availability checks, pricing, and the booking workflow.
type ReservationService interface {
	GetRoom(ctx context.Context, id string) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	ListFeaturedRooms(ctx context.Context) ([]*model.Room, error)
	SearchRooms(ctx context.Context, query RoomQuery) ([]*model.Room, error)
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	QuotePrice(ctx context.Context, roomID string, checkIn, checkOut time.Time) (float64, error)
	CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	CancelBooking(ctx context.Context, id string) (*model.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*model.Booking, error)
}

type reservationService struct {
	catalog   repository.RoomCatalog
	ledger    repository.BookingRepository
	validator *validator.BookingValidator
	locks     *lock.KeyedMutex
	events    kafka.Publisher
	cfg       *config.Config
}

func NewReservationService(
	catalog repository.RoomCatalog,
	ledger repository.BookingRepository,
	validator *validator.BookingValidator,
	events kafka.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		catalog:   catalog,
		ledger:    ledger,
		validator: validator,
		locks:     lock.NewKeyedMutex(),
		events:    events,
		cfg:       cfg,
	}
}

// RoomQuery filters the catalog. Zero values mean "no constraint"; when a
// date range is given, only rooms free for that range are returned.
type RoomQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Category model.RoomCategory
	MaxRate  float64
}

func (s *reservationService) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.catalog.FindByID(id)
	if err != nil {
		return nil, errRoomNotFound(id)
	}
	return room, nil
}

func (s *reservationService) ListRooms(ctx context.Context) ([]*model.Room, error) {
	return s.catalog.All(), nil
}

func (s *reservationService) ListFeaturedRooms(ctx context.Context) ([]*model.Room, error) {
	return s.catalog.Featured(), nil
}

func (s *reservationService) SearchRooms(ctx context.Context, query RoomQuery) ([]*model.Room, error) {
	byDates := !query.CheckIn.IsZero() || !query.CheckOut.IsZero()
	if byDates && !query.CheckOut.After(query.CheckIn) {
		return nil, errInvalidDateRange()
	}

	results := []*model.Room{}
	for _, room := range s.catalog.All() {
		if query.Guests > 0 && room.Capacity < query.Guests {
			continue
		}
		if query.Category != "" && room.Category != query.Category {
			continue
		}
		if query.MaxRate > 0 && room.NightlyRate > query.MaxRate {
			continue
		}
		if byDates {
			available, err := s.isAvailable(ctx, room.ID, query.CheckIn, query.CheckOut)
			if err != nil {
				return nil, err
			}
			if !available {
				continue
			}
		}
		results = append(results, room)
	}
	return results, nil
}
