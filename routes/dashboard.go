package routes

import (
	"time"

	"github.com/JhonFredyH/LuxeHotel/models"
	"github.com/JhonFredyH/LuxeHotel/storage"

	"github.com/kataras/iris/v12"
)

// GET /dashboard/stats — unit occupancy counts and today's movements.
func DashboardStats(ctx iris.Context) {
	unitCounts := iris.Map{}
	var totalUnits int64
	for _, status := range []string{
		models.UnitStatusAvailable,
		models.UnitStatusOccupied,
		models.UnitStatusMaintenance,
		models.UnitStatusCleaning,
	} {
		var count int64
		storage.DB.Model(&models.RoomUnit{}).Where("status = ?", status).Count(&count)
		unitCounts[status] = count
		totalUnits += count
	}
	unitCounts["total"] = totalUnits

	today := time.Now().Format("2006-01-02")

	var arrivals int64
	storage.DB.Model(&models.Reservation{}).
		Where("check_in_date = ? AND status IN ?", today,
			[]string{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		Count(&arrivals)

	var departures int64
	storage.DB.Model(&models.Reservation{}).
		Where("check_out_date = ? AND status = ?", today, models.ReservationStatusCheckedIn).
		Count(&departures)

	var inHouse int64
	storage.DB.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationStatusCheckedIn).
		Count(&inHouse)

	ctx.JSON(iris.Map{
		"units": unitCounts,
		"today": iris.Map{
			"arrivals":   arrivals,
			"departures": departures,
			"inHouse":    inHouse,
		},
	})
}

// GET /dashboard/revenue — monthly booked revenue for the last 12 months,
// cancelled reservations excluded.
func DashboardRevenue(ctx iris.Context) {
	type monthlyRevenue struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
		Count   int64   `json:"count"`
	}

	var rows []monthlyRevenue
	err := storage.DB.Model(&models.Reservation{}).
		Select("to_char(date_trunc('month', check_in_date), 'YYYY-MM') AS month, SUM(total_amount) AS revenue, COUNT(*) AS count").
		Where("status <> ?", models.ReservationStatusCancelled).
		Where("check_in_date >= ?", time.Now().AddDate(-1, 0, 0)).
		Group("month").
		Order("month DESC").
		Scan(&rows).Error
	if err != nil {
		ctx.StopWithJSON(iris.StatusInternalServerError, iris.Map{"error": "server_error", "message": err.Error()})
		return
	}

	ctx.JSON(iris.Map{"data": rows})
}
