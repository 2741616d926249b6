package routes

import (
	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/services"
	"github.com/JhonFredyH/LuxeHotel/storage"
	"github.com/JhonFredyH/LuxeHotel/utils"

	"github.com/kataras/iris/v12"
)

// GET /rooms/:id/units?status=
func ListRoomUnits(ctx iris.Context) {
	roomID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	q := storage.DB.Where("room_id = ?", roomID)
	if status := ctx.URLParamDefault("status", ""); status != "" {
		if !models.ValidUnitStatus(status) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid status filter", ctx)
			return
		}
		q = q.Where("status = ?", status)
	}

	var units []models.RoomUnit
	if err := q.Order("unit_number ASC").Find(&units).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(units)
}

type CreateUnitInput struct {
	UnitNumber string `json:"unitNumber" validate:"required,max=10"`
	Notes      string `json:"notes"`
}

// POST /rooms/:id/units (admin)
func CreateRoomUnit(ctx iris.Context) {
	roomID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}

	var input CreateUnitInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	unit, err := services.CreateUnit(storage.DB, roomID, input.UnitNumber, input.Notes)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	utils.Audit(ctx, "unit.create", "room_unit", unit.ID, nil, unit)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(unit)
}

type UpdateUnitStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// PATCH /rooms/:id/units/:number/status (front desk override). Setting a
// unit available through here marks it freshly cleaned.
func UpdateRoomUnitStatus(ctx iris.Context) {
	roomID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "invalid id", ctx)
		return
	}
	unitNumber := ctx.Params().Get("number")

	var input UpdateUnitStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var before *models.RoomUnit
	if u, err := services.FindUnit(storage.DB, roomID, unitNumber); err == nil {
		copied := *u
		before = &copied
	}

	unit, err := services.UpdateUnitStatus(storage.DB, roomID, unitNumber, input.Status)
	if err != nil {
		utils.HandleServiceError(err, ctx)
		return
	}

	utils.Audit(ctx, "unit.status_update", "room_unit", unit.ID, before, unit)
	ctx.JSON(unit)
}
