package routes

import (
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/services"
	"github.com/JhonFredyH/LuxeHotel/storage"
	"github.com/JhonFredyH/LuxeHotel/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

type BookingInput struct {
	RoomID          uint   `json:"roomID" validate:"required"`
	CheckInDate     string `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Adults          int    `json:"adults" validate:"required,gte=1"`
	Children        int    `json:"children" validate:"gte=0"`
	SpecialRequests string `json:"specialRequests"`
	UnitNumber      string `json:"unitNumber"`
	FirstName       string `json:"firstName" validate:"required,max=80"`
	LastName        string `json:"lastName" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=30"`
}

func (in *BookingInput) toCreateInput() services.CreateReservationInput {
	checkIn, _ := time.Parse("2006-01-02", in.CheckInDate)
	checkOut, _ := time.Parse("2006-01-02", in.CheckOutDate)
	return services.CreateReservationInput{
		RoomID:          in.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Adults:          in.Adults,
		Children:        in.Children,
		SpecialRequests: in.SpecialRequests,
		UnitNumber:      in.UnitNumber,
		Guest: services.GuestProfile{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Phone:     utils.FormatPhoneNumber(in.Phone),
		},
	}
}

// POST /guest-booking — public self-service booking, no authentication.
func GuestBooking(ctx iris.Context) {
	var input BookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	confirmation, err := services.CreateGuestReservation(storage.DB, input.toCreateInput())
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"data":    confirmation,
		"message": "Reservation created successfully! Check your email for confirmation.",
	})
}

// POST /reservations — front-desk booking, confirmed immediately.
func FrontDeskCreateReservation(ctx iris.Context) {
	var input BookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	createInput := input.toCreateInput()
	createInput.CreatedByUserID = utils.UserIDFromContext(ctx)

	confirmation, err := services.CreateFrontDeskReservation(storage.DB, createInput)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	utils.Audit(ctx, "reservation.create", "reservation", confirmation.ReservationID, nil, confirmation)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": confirmation})
}

// POST /reservations/:id/checkin
func CheckInReservation(ctx iris.Context) {
	applyTransition(ctx, "reservation.checkin", services.CheckIn)
}

// POST /reservations/:id/checkout
func CheckOutReservation(ctx iris.Context) {
	applyTransition(ctx, "reservation.checkout", services.CheckOut)
}

// POST /reservations/:id/cancel
func CancelReservation(ctx iris.Context) {
	applyTransition(ctx, "reservation.cancel", services.Cancel)
}

func applyTransition(ctx iris.Context, action string, fn func(db *gorm.DB, id uint) (*models.Reservation, error)) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	reservation, err := fn(storage.DB, id)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	utils.Audit(ctx, action, "reservation", reservation.ID, nil, reservation)
	ctx.JSON(iris.Map{"message": "OK", "status": reservation.Status, "data": reservation})
}

type UpdateReservationInput struct {
	CheckInDate     *string `json:"checkInDate" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string `json:"checkOutDate" validate:"omitempty,datetime=2006-01-02"`
	SpecialRequests *string `json:"specialRequests"`
}

// PUT /reservations/:id — edits dates and notes only; status and money
// fields are untouchable here.
func UpdateReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input UpdateReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	patch := services.ReservationPatch{SpecialRequests: input.SpecialRequests}
	if input.CheckInDate != nil {
		if t := parseDate(*input.CheckInDate); t != nil {
			patch.CheckInDate = t
		}
	}
	if input.CheckOutDate != nil {
		if t := parseDate(*input.CheckOutDate); t != nil {
			patch.CheckOutDate = t
		}
	}

	reservation, err := services.UpdateReservation(storage.DB, id, patch)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	utils.Audit(ctx, "reservation.update", "reservation", reservation.ID, nil, reservation)
	ctx.JSON(iris.Map{"message": "Reservation updated", "data": reservation})
}

// GET /reservations/:id
func GetReservation(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}
	var reservation models.Reservation
	if err := storage.DB.Preload("Guest").Preload("Room").Preload("RoomUnit").Preload("Payments").First(&reservation, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "reservation not found", ctx)
		return
	}
	ctx.JSON(&reservation)
}

type PaymentInput struct {
	Method        string  `json:"method" validate:"required,oneof=card wallet"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	Status        string  `json:"status" validate:"omitempty,oneof=pending authorized paid failed refunded"`
	Provider      string  `json:"provider" validate:"omitempty,max=80"`
	ProviderTxnID string  `json:"providerTxnID" validate:"omitempty,max=120"`
	CardLast4     string  `json:"cardLast4" validate:"omitempty,len=4"`
	CardBrand     string  `json:"cardBrand" validate:"omitempty,max=30"`
}

// POST /reservations/:id/payments — records a charge taken at the desk.
func RecordPayment(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input PaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var reservation models.Reservation
	if err := storage.DB.First(&reservation, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "reservation not found", ctx)
		return
	}

	payment := models.Payment{
		ReservationID: reservation.ID,
		Method:        input.Method,
		Status:        input.Status,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Provider:      input.Provider,
		ProviderTxnID: input.ProviderTxnID,
		CardLast4:     input.CardLast4,
		CardBrand:     input.CardBrand,
	}
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if payment.Currency == "" {
		payment.Currency = "USD"
	}
	if payment.Status == models.PaymentStatusPaid {
		now := time.Now()
		payment.PaidAt = &now
	}

	if err := storage.DB.Create(&payment).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "payment.record", "payment", payment.ID, nil, payment)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&payment)
}

// GET /reservations/:id/payments
func ListPayments(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var payments []models.Payment
	if err := storage.DB.Where("reservation_id = ?", id).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(&payments)
}

// GET /reservations?page=&limit=&status=
//
// The checked_in and checked_out filters are date views for the front desk:
// they return today's arrivals and departures rather than rows in those
// statuses.
func ListReservations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	today := time.Now().Format("2006-01-02")
	q := storage.DB.Model(&models.Reservation{})

	switch ctx.URLParamDefault("status", "") {
	case models.ReservationStatusPending:
		q = q.Where("status = ?", models.ReservationStatusPending)
	case models.ReservationStatusConfirmed:
		q = q.Where("status = ?", models.ReservationStatusConfirmed)
	case models.ReservationStatusCheckedIn:
		q = q.Where("check_in_date = ?", today)
	case models.ReservationStatusCheckedOut:
		q = q.Where("check_out_date = ?", today)
	case models.ReservationStatusCancelled:
		q = q.Where("status = ?", models.ReservationStatusCancelled)
	}

	var total int64
	q.Count(&total)

	var reservations []models.Reservation
	if err := q.Preload("Guest").Preload("Room").Preload("RoomUnit").
		Offset((page - 1) * limit).Limit(limit).
		Order("check_in_date DESC").
		Find(&reservations).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	rows := make([]iris.Map, 0, len(reservations))
	for _, r := range reservations {
		row := iris.Map{
			"id":              r.ID,
			"reference":       services.ReferenceNumber(r.ID),
			"checkInDate":     r.CheckInDate.Format("2006-01-02"),
			"checkOutDate":    r.CheckOutDate.Format("2006-01-02"),
			"status":          r.Status,
			"adults":          r.Adults,
			"children":        r.Children,
			"specialRequests": r.SpecialRequests,
			"subtotal":        r.Subtotal,
			"taxes":           r.Taxes,
			"serviceFee":      r.ServiceFee,
			"totalAmount":     r.TotalAmount,
		}
		if r.Guest != nil {
			row["guestName"] = r.Guest.FullName()
			row["email"] = r.Guest.Email
			row["phone"] = r.Guest.Phone
		}
		if r.Room != nil {
			row["roomName"] = r.Room.Name
			row["roomType"] = r.Room.Slug
		}
		if r.RoomUnit != nil {
			row["unitNumber"] = r.RoomUnit.UnitNumber
		}
		rows = append(rows, row)
	}

	utils.JSONPage(ctx, rows, page, limit, total)
}
