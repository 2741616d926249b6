package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/storage"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildTestApp wires the staff reservation routes behind a JWT verifier, the
// same way main.go does.
func buildTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(mockAccessToken) })

	staff := app.Party("/api", accessTokenVerifierMiddleware, mockStaffOnlyMiddleware)
	{
		staff.Post("/reservations", FrontDeskCreateReservation)
		staff.Post("/reservations/{id:uint}/payments", RecordPayment)
		staff.Put("/guests/{id:uint}", UpdateGuest)
		staff.Get("/rooms/floors", ListRoomFloors)
	}
	app.Post("/api/guest-booking", GuestBooking)
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

// newRouteTestDB points the global DB at a per-test in-memory database.
func newRouteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Guest{},
		&models.Amenity{},
		&models.Room{},
		&models.RoomUnit{},
		&models.Reservation{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := storage.DB
	storage.DB = db
	t.Cleanup(func() { storage.DB = prev })
	return db
}

type mockAccessToken struct {
	ID   uint
	Role string
}

func mockStaffOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*mockAccessToken)
	switch claims.Role {
	case "admin", "manager", "front_desk":
		ctx.Next()
	default:
		ctx.StatusCode(iris.StatusForbidden)
	}
}

func signTestToken(role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(mockAccessToken{ID: 1, Role: role})
	return string(token)
}

func TestFrontDeskReservationRBAC(t *testing.T) {
	app := buildTestApp()

	// No token
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader("{}"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK || resp.Code == http.StatusCreated {
		t.Fatalf("expected failure without token, got %d", resp.Code)
	}

	// Guest role is not staff
	req2 := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader("{}"))
	req2.Header.Set("Authorization", "Bearer "+signTestToken("guest"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for guest role, got %d", resp2.Code)
	}
}

func TestGuestBookingRejectsBadPayload(t *testing.T) {
	app := buildTestApp()

	// Missing required fields fails validation before any storage access
	req := httptest.NewRequest(http.MethodPost, "/api/guest-booking", strings.NewReader(`{"roomID": 1}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for incomplete payload, got %d", resp.Code)
	}

	// Malformed dates as well
	body := `{"roomID":1,"checkInDate":"June 1","checkOutDate":"June 4","adults":2,"firstName":"A","lastName":"B","email":"a@b.com","phone":"123"}`
	req2 := httptest.NewRequest(http.MethodPost, "/api/guest-booking", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed dates, got %d", resp2.Code)
	}
}

func TestRecordPayment(t *testing.T) {
	db := newRouteTestDB(t)
	app := buildTestApp()
	token := signTestToken("front_desk")

	guest := models.Guest{FirstName: "Ana", LastName: "Rivera", Email: "ana.rivera@example.com"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	room := models.Room{Slug: "suite", Name: "Suite", PricePerNight: 100, MaxGuests: 2}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	reservation := models.Reservation{
		GuestID:      guest.ID,
		RoomID:       room.ID,
		CheckInDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:       models.ReservationStatusConfirmed,
		TotalAmount:  334.20,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	body := `{"method":"card","amount":334.20,"status":"paid","cardLast4":"4242","cardBrand":"visa"}`
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/reservations/%d/payments", reservation.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var payment models.Payment
	if err := json.Unmarshal(resp.Body.Bytes(), &payment); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payment.Status != models.PaymentStatusPaid || payment.PaidAt == nil {
		t.Fatalf("expected a paid payment with paidAt set, got %+v", payment)
	}
	if payment.Currency != "USD" {
		t.Fatalf("expected currency to default to USD, got %q", payment.Currency)
	}

	var count int64
	db.Model(&models.Payment{}).Where("reservation_id = ?", reservation.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 persisted payment, got %d", count)
	}

	// Unknown method fails validation
	req2 := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/reservations/%d/payments", reservation.ID), strings.NewReader(`{"method":"cash","amount":10}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+token)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown method, got %d", resp2.Code)
	}

	// Unknown reservation
	req3 := httptest.NewRequest(http.MethodPost, "/api/reservations/9999/payments", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("Authorization", "Bearer "+token)
	resp3 := httptest.NewRecorder()
	app.ServeHTTP(resp3, req3)
	if resp3.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown reservation, got %d", resp3.Code)
	}
}
