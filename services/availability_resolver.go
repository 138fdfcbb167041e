package services

import (
	"fmt"
	"sort"
	"time"

	"resort-backend/models"
)

// AssignmentStay is an assignment joined with its reservation's stay dates,
// which is all the resolver ever needs from a persisted assignment.
type AssignmentStay struct {
	AssignmentID  uint
	RoomID        uint
	ReservationID uint
	StayStartAt   time.Time
	StayEndAt     time.Time
}

// Window returns the assignment's stay window.
func (a AssignmentStay) Window() StayWindow {
	return StayWindow{Start: DateOnly(a.StayStartAt), End: DateOnly(a.StayEndAt)}
}

// AvailabilityStore is the persistence port the resolver reads from. The
// store may pre-filter assignments with a coarse range query; the resolver
// always re-applies the exact overlap predicate itself, so the store only
// has to be a superset, never exact.
type AvailabilityStore interface {
	// ListRooms returns candidate rooms, restricted to one group and/or an
	// explicit id set when given.
	ListRooms(roomGroupID *uint, roomIDs []uint) ([]models.Room, error)

	// ListAssignmentsNear returns assignments (with reservation stay dates)
	// for the given rooms whose reservation could plausibly overlap the
	// window, excluding assignments owned by excludeReservationID when set.
	ListAssignmentsNear(roomIDs []uint, window StayWindow, excludeReservationID *uint) ([]AssignmentStay, error)

	// LastCheckoutsBefore returns, per room, the latest reservation
	// stay-end date that is on or before start. Rooms with no prior stay
	// are simply absent from the map.
	LastCheckoutsBefore(roomIDs []uint, start time.Time) (map[uint]time.Time, error)
}

// AvailabilityFilter mirrors the query surface of the availability
// endpoints. A window is only in effect when BOTH bounds are present;
// otherwise status alone governs the result.
type AvailabilityFilter struct {
	RoomGroupID          *uint
	RoomIDs              []uint
	Status               *string
	StayStartAt          *time.Time
	StayEndAt            *time.Time
	ExcludeReservationID *uint
}

func (f AvailabilityFilter) window() (*StayWindow, error) {
	if f.StayStartAt == nil || f.StayEndAt == nil {
		return nil, nil
	}
	w, err := NewStayWindow(*f.StayStartAt, *f.StayEndAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// AvailabilityResolver answers exactly two questions: which rooms are free
// for a stay window, and whether a specific room set may be assigned to a
// reservation for that window. It holds no state of its own and is safe for
// concurrent use.
type AvailabilityResolver struct {
	store AvailabilityStore
}

func NewAvailabilityResolver(store AvailabilityStore) *AvailabilityResolver {
	return &AvailabilityResolver{store: store}
}

// FindAvailableRooms returns the rooms matching the filter that have no
// conflicting assignment in the filter's stay window.
func (r *AvailabilityResolver) FindAvailableRooms(f AvailabilityFilter) ([]models.Room, error) {
	window, err := f.window()
	if err != nil {
		return nil, err
	}

	rooms, err := r.store.ListRooms(f.RoomGroupID, f.RoomIDs)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if f.Status != nil {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.Status == *f.Status {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}
	if window == nil || len(rooms) == 0 {
		return rooms, nil
	}

	conflicted, err := r.conflictingRoomIDs(roomIDsOf(rooms), *window, f.ExcludeReservationID)
	if err != nil {
		return nil, err
	}

	available := rooms[:0]
	for _, room := range rooms {
		if _, taken := conflicted[room.ID]; !taken {
			available = append(available, room)
		}
	}
	return available, nil
}

// FindAvailableRoomsRanked is the browsing path: availability filtering
// followed by idle ranking, so the room that has sat empty the longest is
// the first recommendation.
func (r *AvailabilityResolver) FindAvailableRoomsRanked(f AvailabilityFilter) ([]models.Room, error) {
	rooms, err := r.FindAvailableRooms(f)
	if err != nil {
		return nil, err
	}
	if f.StayStartAt == nil || len(rooms) < 2 {
		return rooms, nil
	}
	return r.rankByIdle(rooms, *f.StayStartAt)
}

// rankByIdle orders rooms ascending by the end date of their most recent
// stay finishing on or before windowStart. Rooms with no prior stay sort
// first; ties keep their incoming relative order.
func (r *AvailabilityResolver) rankByIdle(rooms []models.Room, windowStart time.Time) ([]models.Room, error) {
	lastOut, err := r.store.LastCheckoutsBefore(roomIDsOf(rooms), DateOnly(windowStart))
	if err != nil {
		return nil, fmt.Errorf("last checkouts: %w", err)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		a, aOK := lastOut[rooms[i].ID]
		b, bOK := lastOut[rooms[j].ID]
		if !aOK {
			return bOK // never-reserved sorts before any history
		}
		if !bOK {
			return false
		}
		return a.Before(b)
	})
	return rooms, nil
}

// ReservedAmong is the inverse query used by the write path: the subset of
// a specific candidate room-id set that conflicts with the window.
func (r *AvailabilityResolver) ReservedAmong(roomIDs []uint, window StayWindow, excludeReservationID *uint) ([]models.Room, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	rooms, err := r.store.ListRooms(nil, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	conflicted, err := r.conflictingRoomIDs(roomIDs, window, excludeReservationID)
	if err != nil {
		return nil, err
	}

	reserved := make([]models.Room, 0, len(conflicted))
	for _, room := range rooms {
		if _, taken := conflicted[room.ID]; taken {
			reserved = append(reserved, room)
		}
	}
	return reserved, nil
}

// AssertAssignable guards the reservation write path. It returns a
// *RoomsUnavailableError naming every conflicting room number, or nil when
// all requested rooms are free for the window. The decision is stateless:
// callers that need it to hold through a subsequent write must run it
// inside the same transaction as the write (see ReservationService).
func (r *AvailabilityResolver) AssertAssignable(roomIDs []uint, window StayWindow, excludeReservationID *uint) error {
	reserved, err := r.ReservedAmong(roomIDs, window, excludeReservationID)
	if err != nil {
		return err
	}
	if len(reserved) == 0 {
		return nil
	}

	numbers := make([]string, 0, len(reserved))
	for _, room := range reserved {
		numbers = append(numbers, room.RoomNumber)
	}
	return &RoomsUnavailableError{RoomNumbers: numbers}
}

func (r *AvailabilityResolver) conflictingRoomIDs(roomIDs []uint, window StayWindow, excludeReservationID *uint) (map[uint]struct{}, error) {
	stays, err := r.store.ListAssignmentsNear(roomIDs, window, excludeReservationID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	conflicted := make(map[uint]struct{})
	for _, stay := range stays {
		if window.ConflictsWith(stay.Window()) {
			conflicted[stay.RoomID] = struct{}{}
		}
	}
	return conflicted, nil
}

func roomIDsOf(rooms []models.Room) []uint {
	ids := make([]uint, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
	}
	return ids
}
