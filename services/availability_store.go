package services

import (
	"time"

	"gorm.io/gorm"

	"resort-backend/models"
)

// GormAvailabilityStore implements AvailabilityStore on top of gorm. It is a
// thin adapter: coarse range pre-filtering happens in SQL, the exact overlap
// decision stays in the resolver.
type GormAvailabilityStore struct {
	DB *gorm.DB
}

func NewGormAvailabilityStore(db *gorm.DB) *GormAvailabilityStore {
	return &GormAvailabilityStore{DB: db}
}

func (s *GormAvailabilityStore) ListRooms(roomGroupID *uint, roomIDs []uint) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{}).Order("rooms.id")
	if roomGroupID != nil {
		q = q.Where("room_group_id = ?", *roomGroupID)
	}
	if len(roomIDs) > 0 {
		q = q.Where("id IN ?", roomIDs)
	}

	var rooms []models.Room
	err := q.Find(&rooms).Error
	return rooms, err
}

func (s *GormAvailabilityStore) ListAssignmentsNear(roomIDs []uint, window StayWindow, excludeReservationID *uint) ([]AssignmentStay, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	q := s.DB.Model(&models.Assignment{}).
		Select("assignments.id AS assignment_id, assignments.room_id, assignments.reservation_id, reservations.stay_start_at, reservations.stay_end_at").
		Joins("JOIN reservations ON reservations.id = assignments.reservation_id AND reservations.deleted_at IS NULL").
		Where("assignments.room_id IN ?", roomIDs).
		// coarse superset of the overlap predicate; the resolver re-checks exactly
		Where("reservations.stay_start_at <= ? AND reservations.stay_end_at >= ?", window.End, window.Start)
	if excludeReservationID != nil {
		q = q.Where("assignments.reservation_id <> ?", *excludeReservationID)
	}

	var stays []AssignmentStay
	err := q.Scan(&stays).Error
	return stays, err
}

func (s *GormAvailabilityStore) LastCheckoutsBefore(roomIDs []uint, start time.Time) (map[uint]time.Time, error) {
	out := make(map[uint]time.Time, len(roomIDs))
	if len(roomIDs) == 0 {
		return out, nil
	}

	// one batched query instead of a per-room lookup
	var rows []struct {
		RoomID       uint
		LastCheckout time.Time
	}
	err := s.DB.Model(&models.Assignment{}).
		Select("assignments.room_id, MAX(reservations.stay_end_at) AS last_checkout").
		Joins("JOIN reservations ON reservations.id = assignments.reservation_id AND reservations.deleted_at IS NULL").
		Where("assignments.room_id IN ?", roomIDs).
		Where("reservations.stay_end_at <= ?", start).
		Group("assignments.room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.RoomID] = DateOnly(row.LastCheckout)
	}
	return out, nil
}
