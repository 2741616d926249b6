package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JhonFredyH/LuxeHotel/models"
)

func TestUpdateGuestDuplicateEmail(t *testing.T) {
	db := newRouteTestDB(t)
	app := buildTestApp()
	token := signTestToken("front_desk")

	first := models.Guest{FirstName: "Ana", LastName: "Rivera", Email: "ana.rivera@example.com", Phone: "+34600111222"}
	second := models.Guest{FirstName: "Luis", LastName: "Mora", Email: "luis.mora@example.com", Phone: "+573001112233"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	// Taking over another guest's email hits the unique index and must come
	// back as a conflict, not a server error.
	body := `{"firstName":"Luis","lastName":"Mora","email":"ana.rivera@example.com","phone":"+573001112233"}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/guests/%d", second.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d: %s", resp.Code, resp.Body.String())
	}

	var unchanged models.Guest
	if err := db.First(&unchanged, second.ID).Error; err != nil {
		t.Fatalf("reload guest: %v", err)
	}
	if unchanged.Email != "luis.mora@example.com" {
		t.Fatalf("expected email to stay unchanged, got %q", unchanged.Email)
	}

	// Keeping the own email updates fine
	body2 := `{"firstName":"Luis Alberto","lastName":"Mora","email":"luis.mora@example.com","phone":"+573001112233"}`
	req2 := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/guests/%d", second.ID), strings.NewReader(body2))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+token)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid update, got %d: %s", resp2.Code, resp2.Body.String())
	}
}
