package routes

import (
	"encoding/json"
	"errors"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/storage"
	"github.com/JhonFredyH/LuxeHotel/utils"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GET /rooms — public catalog with filters.
func ListRooms(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	limit := ctx.URLParamIntDefault("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := storage.DB.Model(&models.Room{})

	if isActive := ctx.URLParamDefault("is_active", ""); isActive != "" {
		q = q.Where("is_active = ?", isActive == "true")
	}
	if minPrice, err := ctx.URLParamFloat64("min_price"); err == nil {
		q = q.Where("price_per_night >= ?", minPrice)
	}
	if maxPrice, err := ctx.URLParamFloat64("max_price"); err == nil {
		q = q.Where("price_per_night <= ?", maxPrice)
	}
	if maxGuests := ctx.URLParamIntDefault("max_guests", 0); maxGuests > 0 {
		q = q.Where("max_guests >= ?", maxGuests)
	}
	if viewType := ctx.URLParamDefault("view_type", ""); viewType != "" {
		q = q.Where("view_type ILIKE ?", "%"+viewType+"%")
	}

	var total int64
	q.Count(&total)

	var rooms []models.Room
	if err := q.Preload("Amenities").
		Offset((page - 1) * limit).Limit(limit).
		Order("rating DESC, price_per_night ASC").
		Find(&rooms).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, rooms, page, limit, total)
}

// GET /rooms/floors — distinct floors of active rooms, for the admin filter
// dropdown. "All" is always the first entry.
func ListRoomFloors(ctx iris.Context) {
	var floors []string
	if err := storage.DB.Model(&models.Room{}).
		Distinct("floor").
		Where("is_active = ? AND floor <> ''", true).
		Order("floor").
		Pluck("floor", &floors).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(iris.Map{"floors": append([]string{"All"}, floors...)})
}

// GET /rooms/:id
func GetRoom(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}
	var room models.Room
	if err := storage.DB.Preload("Amenities").Preload("Units").First(&room, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "room not found", ctx)
		return
	}
	ctx.JSON(&room)
}

type RoomInput struct {
	Slug               string   `json:"slug" validate:"required,max=120"`
	Name               string   `json:"name" validate:"required,max=120"`
	Description        string   `json:"description"`
	PricePerNight      float64  `json:"pricePerNight" validate:"required,gt=0"`
	SizeM2             int      `json:"sizeM2" validate:"omitempty,gt=0"`
	ViewType           string   `json:"viewType" validate:"omitempty,max=50"`
	Floor              string   `json:"floor" validate:"omitempty,max=30"`
	MaxAdults          int      `json:"maxAdults" validate:"required,gte=1"`
	MaxChildren        int      `json:"maxChildren" validate:"gte=0"`
	MaxGuests          int      `json:"maxGuests" validate:"required,gte=1"`
	Quantity           int      `json:"quantity" validate:"omitempty,gte=1"`
	CheckInTime        string   `json:"checkInTime" validate:"omitempty,max=10"`
	CheckOutTime       string   `json:"checkOutTime" validate:"omitempty,max=10"`
	CancellationPolicy string   `json:"cancellationPolicy"`
	IsActive           *bool    `json:"isActive"`
	AmenityCodes       []string `json:"amenityCodes"`
}

// POST /rooms (admin)
func CreateRoom(ctx iris.Context) {
	var input RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	room := models.Room{
		Slug:               input.Slug,
		Name:               input.Name,
		Description:        input.Description,
		PricePerNight:      input.PricePerNight,
		SizeM2:             input.SizeM2,
		ViewType:           input.ViewType,
		Floor:              input.Floor,
		MaxAdults:          input.MaxAdults,
		MaxChildren:        input.MaxChildren,
		MaxGuests:          input.MaxGuests,
		Quantity:           input.Quantity,
		CheckInTime:        input.CheckInTime,
		CheckOutTime:       input.CheckOutTime,
		CancellationPolicy: input.CancellationPolicy,
		IsActive:           input.IsActive,
	}

	if len(input.AmenityCodes) > 0 {
		var amenities []models.Amenity
		if err := storage.DB.Where("code IN ?", input.AmenityCodes).Find(&amenities).Error; err == nil {
			room.Amenities = amenities
		}
	}

	if err := storage.DB.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "a room with this slug already exists", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "room.create", "room", room.ID, nil, room)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&room)
}

// PUT /rooms/:id (admin)
func UpdateRoom(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "room not found", ctx)
		return
	}

	before := room
	room.Slug = input.Slug
	room.Name = input.Name
	room.Description = input.Description
	room.PricePerNight = input.PricePerNight
	room.SizeM2 = input.SizeM2
	room.ViewType = input.ViewType
	room.Floor = input.Floor
	room.MaxAdults = input.MaxAdults
	room.MaxChildren = input.MaxChildren
	room.MaxGuests = input.MaxGuests
	room.Quantity = input.Quantity
	room.CheckInTime = input.CheckInTime
	room.CheckOutTime = input.CheckOutTime
	room.CancellationPolicy = input.CancellationPolicy
	if input.IsActive != nil {
		room.IsActive = input.IsActive
	}

	if err := storage.DB.Save(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "a room with this slug already exists", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if len(input.AmenityCodes) > 0 {
		var amenities []models.Amenity
		if err := storage.DB.Where("code IN ?", input.AmenityCodes).Find(&amenities).Error; err == nil {
			storage.DB.Model(&room).Association("Amenities").Replace(amenities)
		}
	}

	utils.Audit(ctx, "room.update", "room", room.ID, before, room)
	ctx.JSON(&room)
}

type UploadRoomImageInput struct {
	Image string `json:"image" validate:"required"` // base64 payload
}

// POST /rooms/:id/images (admin) — uploads to Cloudinary and appends the URL
// to the room's gallery.
func UploadRoomImage(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input UploadRoomImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "room not found", ctx)
		return
	}

	url := storage.UploadBase64Image(input.Image, "rooms/"+uuid.NewString())
	if url == "" {
		utils.CreateError(iris.StatusBadGateway, "Upload Failed", "image could not be uploaded", ctx)
		return
	}

	var images []string
	if room.Images != nil {
		json.Unmarshal(room.Images, &images)
	}
	images = append(images, url)
	imagesJSON, _ := json.Marshal(images)
	room.Images = datatypes.JSON(imagesJSON)

	if err := storage.DB.Save(&room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "room.image_upload", "room", room.ID, nil, iris.Map{"url": url})
	ctx.JSON(iris.Map{"url": url, "images": images})
}
