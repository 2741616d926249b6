package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/JhonFredyH/LuxeHotel/models"
)

func TestListRoomFloors(t *testing.T) {
	db := newRouteTestDB(t)
	app := buildTestApp()
	token := signTestToken("front_desk")

	active := true
	inactive := false
	rooms := []models.Room{
		{Slug: "standard-queen", Name: "Standard Queen", PricePerNight: 80, MaxGuests: 2, Floor: "2", IsActive: &active},
		{Slug: "deluxe-king", Name: "Deluxe King", PricePerNight: 120, MaxGuests: 2, Floor: "1", IsActive: &active},
		{Slug: "junior-suite", Name: "Junior Suite", PricePerNight: 160, MaxGuests: 3, Floor: "1", IsActive: &active},
		{Slug: "old-wing", Name: "Old Wing", PricePerNight: 60, MaxGuests: 2, Floor: "5", IsActive: &inactive},
		{Slug: "garden-villa", Name: "Garden Villa", PricePerNight: 300, MaxGuests: 4, IsActive: &active},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/floors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Floors []string `json:"floors"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Inactive and floorless rooms are excluded; duplicates collapse.
	want := []string{"All", "1", "2"}
	if !reflect.DeepEqual(out.Floors, want) {
		t.Fatalf("expected floors %v, got %v", want, out.Floors)
	}
}
