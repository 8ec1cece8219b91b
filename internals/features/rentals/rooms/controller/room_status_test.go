package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kostku_backend/internals/features/rentals/rooms/model"
)

func TestRoomStatusDerivation(t *testing.T) {
	tests := []struct {
		name             string
		underMaintenance bool
		occupied         bool
		want             string
	}{
		{"kosong", false, false, "available"},
		{"ada kontrak aktif", false, true, "occupied"},
		{"maintenance", true, false, "maintenance"},
		{"maintenance menang atas occupied", true, true, "maintenance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := model.RoomModel{RoomIsUnderMaintenance: tt.underMaintenance}
			assert.Equal(t, tt.want, roomStatus(room, tt.occupied))
		})
	}
}
