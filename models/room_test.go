package models

import "testing"

func TestValidRoomStatus(t *testing.T) {
	valid := []string{RoomStatusNormal, RoomStatusInactive, RoomStatusConstruction, RoomStatusDamaged}
	for _, s := range valid {
		if !ValidRoomStatus(s) {
			t.Errorf("ValidRoomStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "normal", "BROKEN", "NORMAL "} {
		if ValidRoomStatus(s) {
			t.Errorf("ValidRoomStatus(%q) = true, want false", s)
		}
	}
}
