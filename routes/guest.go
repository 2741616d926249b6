package routes

import (
	"errors"
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/storage"
	"github.com/JhonFredyH/LuxeHotel/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type GuestInput struct {
	FirstName      string `json:"firstName" validate:"required,max=80"`
	LastName       string `json:"lastName" validate:"required,max=80"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,max=30"`
	DocumentType   string `json:"documentType" validate:"omitempty,max=30"`
	DocumentNumber string `json:"documentNumber" validate:"omitempty,max=60"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Address        string `json:"address" validate:"omitempty,max=180"`
	City           string `json:"city" validate:"omitempty,max=80"`
	Country        string `json:"country" validate:"omitempty,max=80"`
	Notes          string `json:"notes"`
}

func (in *GuestInput) apply(guest *models.Guest) {
	guest.FirstName = in.FirstName
	guest.LastName = in.LastName
	guest.Email = in.Email
	guest.Phone = utils.FormatPhoneNumber(in.Phone)
	guest.DocumentType = in.DocumentType
	guest.DocumentNumber = in.DocumentNumber
	guest.DateOfBirth = parseDate(in.DateOfBirth)
	guest.Address = in.Address
	guest.City = in.City
	guest.Country = in.Country
	guest.Notes = in.Notes
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// POST /guests (front desk)
func CreateGuest(ctx iris.Context) {
	var input GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var guest models.Guest
	input.apply(&guest)

	if err := storage.DB.Create(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "a guest with this email already exists", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&guest)
}

// GET /guests?page=&limit=&search=
func ListGuests(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	search := ctx.URLParamDefault("search", "")

	q := storage.DB.Model(&models.Guest{})
	if search != "" {
		s := "%" + search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", s, s, s)
	}

	var total int64
	q.Count(&total)

	var guests []models.Guest
	if err := q.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&guests).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, guests, page, limit, total)
}

// GET /guests/:id
func GetGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}
	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "guest not found", ctx)
		return
	}
	ctx.JSON(&guest)
}

// PUT /guests/:id
func UpdateGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "guest not found", ctx)
		return
	}

	before := guest
	input.apply(&guest)

	// The unique index is the authority on email ownership; a pre-read would
	// race with concurrent writers.
	if err := storage.DB.Save(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "this email is already in use", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "guest.update", "guest", guest.ID, before, guest)
	ctx.JSON(&guest)
}

// DELETE /guests/:id — refused while the guest owns reservations.
func DeleteGuest(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "guest not found", ctx)
		return
	}

	var reservations int64
	storage.DB.Model(&models.Reservation{}).Where("guest_id = ?", id).Count(&reservations)
	if reservations > 0 {
		utils.CreateError(iris.StatusConflict, "Conflict", "cannot delete: guest has associated reservations", ctx)
		return
	}

	if err := storage.DB.Delete(&guest).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "guest.delete", "guest", guest.ID, guest, nil)
	ctx.StatusCode(iris.StatusNoContent)
}

type RegisterGuestInput struct {
	FirstName       string `json:"firstName" validate:"required,max=80"`
	LastName        string `json:"lastName" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=30"`
	DocumentType    string `json:"documentType" validate:"omitempty,max=30"`
	DocumentNumber  string `json:"documentNumber" validate:"omitempty,max=60"`
	DateOfBirth     string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// POST /guests/register — self-service guest account sign-up.
func RegisterGuest(ctx iris.Context) {
	var input RegisterGuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hashed, err := hashAndSaltPassword(input.Password)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	guest := models.Guest{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          utils.FormatPhoneNumber(input.Phone),
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		DateOfBirth:    parseDate(input.DateOfBirth),
		Password:       hashed,
	}
	if err := storage.DB.Create(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "this email is already registered", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&guest)
}

// POST /guests/login
func LoginGuest(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.Where("email = ?", input.Email).First(&guest).Error; err != nil || guest.Password == "" {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "invalid email or password", ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(guest.Password), []byte(input.Password)) != nil {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "invalid email or password", ctx)
		return
	}

	tokenPair, err := utils.CreateTokenPair(guest.ID, guest.Email, guest.FullName(), "guest")
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
		"guest":        &guest,
	})
}
