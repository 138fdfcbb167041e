package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-backend/models"
)

// fakeStore is an in-memory AvailabilityStore. ListAssignmentsNear returns
// every assignment for the requested rooms (a superset is allowed; the
// resolver applies the exact predicate itself).
type fakeStore struct {
	rooms []models.Room
	stays []AssignmentStay
}

func (f *fakeStore) ListRooms(roomGroupID *uint, roomIDs []uint) ([]models.Room, error) {
	idSet := make(map[uint]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		idSet[id] = struct{}{}
	}
	var out []models.Room
	for _, room := range f.rooms {
		if roomGroupID != nil && room.RoomGroupID != *roomGroupID {
			continue
		}
		if len(roomIDs) > 0 {
			if _, ok := idSet[room.ID]; !ok {
				continue
			}
		}
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeStore) ListAssignmentsNear(roomIDs []uint, window StayWindow, excludeReservationID *uint) ([]AssignmentStay, error) {
	idSet := make(map[uint]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		idSet[id] = struct{}{}
	}
	var out []AssignmentStay
	for _, stay := range f.stays {
		if _, ok := idSet[stay.RoomID]; !ok {
			continue
		}
		if excludeReservationID != nil && stay.ReservationID == *excludeReservationID {
			continue
		}
		out = append(out, stay)
	}
	return out, nil
}

func (f *fakeStore) LastCheckoutsBefore(roomIDs []uint, start time.Time) (map[uint]time.Time, error) {
	idSet := make(map[uint]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		idSet[id] = struct{}{}
	}
	out := make(map[uint]time.Time)
	for _, stay := range f.stays {
		if _, ok := idSet[stay.RoomID]; !ok {
			continue
		}
		end := DateOnly(stay.StayEndAt)
		if end.After(start) {
			continue
		}
		if last, ok := out[stay.RoomID]; !ok || end.After(last) {
			out[stay.RoomID] = end
		}
	}
	return out, nil
}

func room(id uint, group uint, number, status string) models.Room {
	r := models.Room{RoomGroupID: group, RoomNumber: number, Status: status}
	r.ID = id
	return r
}

func stay(reservationID, roomID uint, start, end string) AssignmentStay {
	return AssignmentStay{
		AssignmentID:  reservationID*100 + roomID,
		RoomID:        roomID,
		ReservationID: reservationID,
		StayStartAt:   date(start),
		StayEndAt:     date(end),
	}
}

func roomNumbers(rooms []models.Room) []string {
	out := make([]string, len(rooms))
	for i, r := range rooms {
		out[i] = r.RoomNumber
	}
	return out
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestFindAvailableRoomsFiltersConflicts(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusNormal),
			room(3, 1, "103", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-08", "2023-11-12"), // overlaps
			stay(11, 2, "2023-11-01", "2023-11-10"), // turnover, not a conflict
			stay(12, 3, "2023-11-20", "2023-11-25"), // after the window
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRooms(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-11-10"),
		StayEndAt:   datePtr("2023-11-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"102", "103"}, roomNumbers(rooms))
}

func TestFindAvailableRoomsStatusFilter(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusDamaged),
			room(3, 1, "103", models.RoomStatusNormal),
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRooms(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		Status:      strPtr(models.RoomStatusNormal),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "103"}, roomNumbers(rooms))

	// no status filter: any status is eligible, an admin may knowingly
	// assign a DAMAGED room
	rooms, err = resolver.FindAvailableRooms(AvailabilityFilter{RoomGroupID: uintPtr(1)})
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

// Absent window bounds disable overlap filtering entirely, even for rooms
// fully booked that month.
func TestFindAvailableRoomsWithoutWindow(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{room(1, 1, "101", models.RoomStatusNormal)},
		stays: []AssignmentStay{stay(10, 1, "2023-11-01", "2023-11-30")},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRooms(AvailabilityFilter{RoomGroupID: uintPtr(1)})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	// only one bound set behaves the same as none
	rooms, err = resolver.FindAvailableRooms(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-11-10"),
	})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

// A reservation being edited must always see its own rooms as available for
// its own window.
func TestFindAvailableRoomsExcludesOwnReservation(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-10", "2023-11-15"),
			stay(11, 2, "2023-11-12", "2023-11-14"),
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRooms(AvailabilityFilter{
		RoomGroupID:          uintPtr(1),
		StayStartAt:          datePtr("2023-11-10"),
		StayEndAt:            datePtr("2023-11-15"),
		ExcludeReservationID: uintPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, roomNumbers(rooms))
}

// Ranking surfaces the longest-idle room first: never-reserved rooms ahead
// of everything, then ascending by last checkout before the request start.
func TestRankingDeterminism(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal), // last checkout 2023-11-12
			room(2, 1, "102", models.RoomStatusNormal), // last checkout 2023-11-10
			room(3, 1, "103", models.RoomStatusNormal), // never reserved
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-08", "2023-11-12"),
			stay(11, 2, "2023-11-05", "2023-11-10"),
			stay(12, 1, "2023-10-01", "2023-10-05"), // older stay, must not win
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRoomsRanked(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-12-09"),
		StayEndAt:   datePtr("2023-12-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"103", "102", "101"}, roomNumbers(rooms))
}

func TestRankingStableTies(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusNormal),
			room(3, 1, "103", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-05", "2023-11-10"),
			stay(11, 2, "2023-11-07", "2023-11-10"), // same checkout as room 1
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRoomsRanked(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-12-01"),
		StayEndAt:   datePtr("2023-12-02"),
	})
	require.NoError(t, err)
	// 103 has no history; 101 and 102 tie and keep their incoming order
	assert.Equal(t, []string{"103", "101", "102"}, roomNumbers(rooms))
}

// Domain fixture: a 5-room pool with 17 interleaved reservations. The
// request window [2023-12-08, 2023-12-09] must return exactly the rooms
// with no overlapping assignment, ordered ascending by last checkout before
// the request start, never-reserved room first.
func TestSeededPoolScenario(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "201", models.RoomStatusNormal),
			room(2, 1, "202", models.RoomStatusNormal),
			room(3, 1, "203", models.RoomStatusNormal),
			room(4, 1, "204", models.RoomStatusNormal),
			room(5, 1, "205", models.RoomStatusNormal), // never reserved
		},
		stays: []AssignmentStay{
			// room 1: history ending 2023-11-10, free in December
			stay(1, 1, "2023-10-01", "2023-10-04"),
			stay(2, 1, "2023-10-20", "2023-10-25"),
			stay(3, 1, "2023-11-06", "2023-11-10"),
			// room 2: history ending 2023-11-12, free in December
			stay(4, 2, "2023-09-15", "2023-09-20"),
			stay(5, 2, "2023-11-08", "2023-11-12"),
			// room 3: history ending 2023-11-10 plus a December stay that
			// overlaps the request window
			stay(6, 3, "2023-10-02", "2023-10-06"),
			stay(7, 3, "2023-11-03", "2023-11-10"),
			stay(8, 3, "2023-12-07", "2023-12-09"),
			// room 4: busy across the request window
			stay(9, 4, "2023-11-20", "2023-11-25"),
			stay(10, 4, "2023-12-01", "2023-12-20"),
			stay(11, 4, "2023-10-10", "2023-10-12"),
			// backfill noise on rooms 1 and 2, all before December
			stay(12, 1, "2023-09-01", "2023-09-03"),
			stay(13, 2, "2023-10-28", "2023-11-02"),
			stay(14, 1, "2023-08-14", "2023-08-20"),
			stay(15, 2, "2023-08-01", "2023-08-05"),
			stay(16, 4, "2023-09-09", "2023-09-12"),
			stay(17, 3, "2023-12-09", "2023-12-11"), // turnover against the window end
		},
	}
	resolver := NewAvailabilityResolver(store)

	rooms, err := resolver.FindAvailableRoomsRanked(AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-12-08"),
		StayEndAt:   datePtr("2023-12-09"),
	})
	require.NoError(t, err)
	// rooms 3 and 4 conflict; 205 never reserved, then 201 (11-10), then 202 (11-12)
	assert.Equal(t, []string{"205", "201", "202"}, roomNumbers(rooms))
}

// Seven rooms, each holding one reservation that overlaps the window under
// at least one of the three overlap cases: nothing is available. Excluding
// the first reservation frees exactly the one room that only conflicted
// through it.
func TestAllRoomsConflictingAndExcludeRelease(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "301", models.RoomStatusNormal),
			room(2, 1, "302", models.RoomStatusNormal),
			room(3, 1, "303", models.RoomStatusNormal),
			room(4, 1, "304", models.RoomStatusNormal),
			room(5, 1, "305", models.RoomStatusNormal),
			room(6, 1, "306", models.RoomStatusNormal),
			room(7, 1, "307", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(21, 1, "2023-11-05", "2023-11-12"), // covers window start
			stay(22, 2, "2023-11-15", "2023-11-25"), // covers window end
			stay(23, 3, "2023-11-12", "2023-11-18"), // fully inside
			stay(24, 4, "2023-11-01", "2023-11-30"), // fully covers
			stay(25, 5, "2023-11-10", "2023-11-20"), // identical
			stay(26, 6, "2023-11-19", "2023-11-21"), // clips the end
			stay(27, 7, "2023-11-09", "2023-11-11"), // clips the start
		},
	}
	resolver := NewAvailabilityResolver(store)

	filter := AvailabilityFilter{
		RoomGroupID: uintPtr(1),
		StayStartAt: datePtr("2023-11-10"),
		StayEndAt:   datePtr("2023-11-20"),
	}
	rooms, err := resolver.FindAvailableRooms(filter)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	filter.ExcludeReservationID = uintPtr(21)
	rooms, err = resolver.FindAvailableRooms(filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"301"}, roomNumbers(rooms))
}

func TestReservedAmong(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusNormal),
			room(3, 2, "V1", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-08", "2023-11-12"),
			stay(11, 3, "2023-11-14", "2023-11-16"),
		},
	}
	resolver := NewAvailabilityResolver(store)
	w := window("2023-11-10", "2023-11-15")

	reserved, err := resolver.ReservedAmong([]uint{1, 2, 3}, w, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "V1"}, roomNumbers(reserved))

	reserved, err = resolver.ReservedAmong([]uint{2}, w, nil)
	require.NoError(t, err)
	assert.Empty(t, reserved)
}

func TestAssertAssignable(t *testing.T) {
	store := &fakeStore{
		rooms: []models.Room{
			room(1, 1, "101", models.RoomStatusNormal),
			room(2, 1, "102", models.RoomStatusNormal),
		},
		stays: []AssignmentStay{
			stay(10, 1, "2023-11-08", "2023-11-12"),
		},
	}
	resolver := NewAvailabilityResolver(store)
	w := window("2023-11-10", "2023-11-15")

	err := resolver.AssertAssignable([]uint{2}, w, nil)
	assert.NoError(t, err)

	err = resolver.AssertAssignable([]uint{1, 2}, w, nil)
	var unavailable *RoomsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"101"}, unavailable.RoomNumbers)
	assert.Contains(t, unavailable.Error(), "101")

	// excluding the conflicting reservation clears the guard
	err = resolver.AssertAssignable([]uint{1, 2}, w, uintPtr(10))
	assert.NoError(t, err)
}
