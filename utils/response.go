package utils

import (
	"errors"
	"math"
	"net/http"

	"github.com/JhonFredyH/LuxeHotel/services"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func JSONPage(ctx iris.Context, data interface{}, page, limit int, total int64) {
	totalPages := 1
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	ctx.JSON(iris.Map{
		"data":        data,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
	})
}

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": title, "message": detail})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "resource not found", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", ctx)
}

// HandleValidationErrors renders payload binding failures: a 422 with
// per-field details when validator rejected the payload, a 400 otherwise.
func HandleValidationErrors(err error, ctx iris.Context) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]iris.Map, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"value": fieldErr.Param(),
			})
		}
		ctx.StopWithJSON(iris.StatusUnprocessableEntity, iris.Map{
			"error":   "Validation Error",
			"message": "one or more fields failed validation",
			"fields":  fields,
		})
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", err.Error(), ctx)
}

// HandleServiceError maps the services error taxonomy onto HTTP statuses:
// input problems are 400s, missing records 404s, state conflicts 409s,
// everything else an opaque 500.
func HandleServiceError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		CreateError(http.StatusNotFound, "Not Found", err.Error(), ctx)
	case errors.Is(err, services.ErrRoomUnavailable):
		CreateError(http.StatusBadRequest, "Room Unavailable", err.Error(), ctx)
	case errors.Is(err, services.ErrDuplicateEmail), errors.Is(err, services.ErrDuplicateUnit):
		CreateError(http.StatusConflict, "Conflict", err.Error(), ctx)
	case services.IsValidationError(err) != nil:
		CreateError(http.StatusBadRequest, "Validation Error", err.Error(), ctx)
	case services.IsInvalidTransitionError(err) != nil:
		CreateError(http.StatusConflict, "Conflict", err.Error(), ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
