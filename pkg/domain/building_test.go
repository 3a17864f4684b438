package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildingValidateRejectsRoomOnTwoFloors(t *testing.T) {
	b := &Building{ID: "bldg-1", Type: BuildingAcademic}
	b.AddRoomToFloor(1, "room-101")
	b.Floors[2] = &Floor{Number: 2, RoomIDs: []string{"room-101"}}

	issues := b.Validate()
	require.NotEmpty(t, issues)
}

func TestBuildingAddRoomToFloorIsIdempotent(t *testing.T) {
	b := &Building{ID: "bldg-1", Type: BuildingAcademic}
	b.AddRoomToFloor(1, "room-101")
	b.AddRoomToFloor(1, "room-101")

	require.Len(t, b.Floors[1].RoomIDs, 1)
	floor, ok := b.GetRoomFloor("room-101")
	require.True(t, ok)
	require.Equal(t, 1, floor)
}

func TestBuildingHasAmenity(t *testing.T) {
	b := &Building{ID: "bldg-1", Type: BuildingLab, Amenities: []string{"projector", "whiteboard"}}
	require.True(t, b.HasAmenity("projector"))
	require.False(t, b.HasAmenity("pool"))
}
