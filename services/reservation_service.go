package services

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resort-backend/models"
	"resort-backend/utils"
)

// ReservationService owns the reservation write path. Every create/update
// that touches the room set or the stay window re-runs the conflict guard
// inside the same transaction that performs the write, with the candidate
// room rows locked, so the guard's answer still holds when the assignments
// land.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// ReservationInput carries the validated fields of a create/update request.
// Dates arrive already parsed; the controller rejects start > end before
// this service ever sees it.
type ReservationInput struct {
	StayStartAt     time.Time
	StayEndAt       time.Time
	RoomIDs         []uint
	GuestName       string
	GuestEmail      string
	NumberOfGuests  int
	GuestList       datatypes.JSON
	Status          string
	TotalAmount     float64
	PaymentMethodID *uint
}

func (in ReservationInput) window() (StayWindow, error) {
	return NewStayWindow(in.StayStartAt, in.StayEndAt)
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.DB.Preload("Assignments.Room").Preload("PaymentMethod").
		Order("stay_start_at DESC").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Assignments.Room").Preload("PaymentMethod").
		First(&reservation, id).Error
	return reservation, err
}

// Create books a reservation and assigns its rooms atomically.
func (s *ReservationService) Create(in ReservationInput) (models.Reservation, error) {
	window, err := in.window()
	if err != nil {
		return models.Reservation{}, err
	}

	status := in.Status
	if status == "" {
		status = models.ReservationStatusPending
	}

	reservation := models.Reservation{
		ReferenceCode:   utils.GenerateReferenceCode(),
		Status:          status,
		StayStartAt:     window.Start,
		StayEndAt:       window.End,
		GuestName:       in.GuestName,
		GuestEmail:      in.GuestEmail,
		NumberOfGuests:  in.NumberOfGuests,
		GuestList:       in.GuestList,
		TotalAmount:     in.TotalAmount,
		PaymentMethodID: in.PaymentMethodID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := guardRooms(tx, in.RoomIDs, window, nil); err != nil {
			return err
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		return replaceAssignments(tx, reservation.ID, in.RoomIDs)
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(reservation.ID)
}

// Update mutates a reservation's fields, window and room set. The guard runs
// with the reservation's own id excluded, so an edit that keeps (part of)
// its current rooms never conflicts with itself.
func (s *ReservationService) Update(id uint, in ReservationInput) (models.Reservation, error) {
	window, err := in.window()
	if err != nil {
		return models.Reservation{}, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}

		excludeID := reservation.ID
		if err := guardRooms(tx, in.RoomIDs, window, &excludeID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"stay_start_at":     window.Start,
			"stay_end_at":       window.End,
			"guest_name":        in.GuestName,
			"guest_email":       in.GuestEmail,
			"number_of_guests":  in.NumberOfGuests,
			"total_amount":      in.TotalAmount,
			"payment_method_id": in.PaymentMethodID,
		}
		if in.Status != "" {
			updates["status"] = in.Status
		}
		if in.GuestList != nil {
			updates["guest_list"] = in.GuestList
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		return replaceAssignments(tx, reservation.ID, in.RoomIDs)
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return s.GetByID(id)
}

// Delete removes a reservation and its assignments.
func (s *ReservationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		return tx.Delete(&reservation).Error
	})
}

// guardRooms locks the candidate room rows and re-runs the conflict guard
// against that locked snapshot. Locking first means two concurrent writers
// targeting the same room serialize here instead of both passing the check.
func guardRooms(tx *gorm.DB, roomIDs []uint, window StayWindow, excludeReservationID *uint) error {
	if len(roomIDs) == 0 {
		return nil
	}

	var locked []models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", roomIDs).Find(&locked).Error; err != nil {
		return fmt.Errorf("lock rooms: %w", err)
	}
	if len(locked) != len(uniqueIDs(roomIDs)) {
		return gorm.ErrRecordNotFound
	}

	resolver := NewAvailabilityResolver(NewGormAvailabilityStore(tx))
	return resolver.AssertAssignable(roomIDs, window, excludeReservationID)
}

// replaceAssignments swaps a reservation's room set wholesale. A duplicate
// key from the unique (room_id, reservation_id) index is mapped to the same
// unavailable error the guard raises, so races surface uniformly.
func replaceAssignments(tx *gorm.DB, reservationID uint, roomIDs []uint) error {
	if err := tx.Unscoped().Where("reservation_id = ?", reservationID).
		Delete(&models.Assignment{}).Error; err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}

	ids := uniqueIDs(roomIDs)
	if len(ids) == 0 {
		return nil
	}

	assignments := make([]models.Assignment, 0, len(ids))
	for _, roomID := range ids {
		assignments = append(assignments, models.Assignment{
			ReservationID: reservationID,
			RoomID:        roomID,
		})
	}
	if err := tx.Create(&assignments).Error; err != nil {
		if isDuplicateKey(err) {
			return &RoomsUnavailableError{RoomNumbers: roomNumbersFor(tx, ids)}
		}
		return fmt.Errorf("create assignments: %w", err)
	}
	return nil
}

func roomNumbersFor(tx *gorm.DB, roomIDs []uint) []string {
	var numbers []string
	tx.Model(&models.Room{}).Where("id IN ?", roomIDs).Pluck("room_number", &numbers)
	return numbers
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
