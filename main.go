package main

import (
	"os"

	"github.com/JhonFredyH/LuxeHotel/routes"
	"github.com/JhonFredyH/LuxeHotel/storage"
	"github.com/JhonFredyH/LuxeHotel/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	app.Get("/", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"message": "LuxeHotel API - Hotel Management System", "version": "1.0.0"})
	})

	api := app.Party("/api")
	{
		api.Post("/register", routes.Register)
		api.Post("/login", routes.Login)
		api.Post("/refresh", refreshTokenVerifierMiddleware, routes.Refresh)

		// Public surface: room catalog and guest self-service booking
		api.Get("/rooms", routes.ListRooms)
		api.Get("/rooms/{id:uint}", routes.GetRoom)
		api.Post("/guest-booking", routes.GuestBooking)
		api.Post("/guests/register", routes.RegisterGuest)
		api.Post("/guests/login", routes.LoginGuest)

		staff := api.Party("", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
		{
			staff.Post("/guests", routes.CreateGuest)
			staff.Get("/guests", routes.ListGuests)
			staff.Get("/guests/{id:uint}", routes.GetGuest)
			staff.Put("/guests/{id:uint}", routes.UpdateGuest)

			staff.Get("/rooms/floors", routes.ListRoomFloors)
			staff.Get("/rooms/{id:uint}/units", routes.ListRoomUnits)
			staff.Patch("/rooms/{id:uint}/units/{number}/status", routes.UpdateRoomUnitStatus)

			staff.Post("/reservations", routes.FrontDeskCreateReservation)
			staff.Get("/reservations", routes.ListReservations)
			staff.Get("/reservations/{id:uint}", routes.GetReservation)
			staff.Put("/reservations/{id:uint}", routes.UpdateReservation)
			staff.Post("/reservations/{id:uint}/checkin", routes.CheckInReservation)
			staff.Post("/reservations/{id:uint}/checkout", routes.CheckOutReservation)
			staff.Post("/reservations/{id:uint}/cancel", routes.CancelReservation)
			staff.Post("/reservations/{id:uint}/payments", routes.RecordPayment)
			staff.Get("/reservations/{id:uint}/payments", routes.ListPayments)

			staff.Get("/dashboard/stats", routes.DashboardStats)
			staff.Get("/dashboard/revenue", routes.DashboardRevenue)
		}

		admin := api.Party("", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
		{
			admin.Post("/rooms", routes.CreateRoom)
			admin.Put("/rooms/{id:uint}", routes.UpdateRoom)
			admin.Post("/rooms/{id:uint}/images", routes.UploadRoomImage)
			admin.Post("/rooms/{id:uint}/units", routes.CreateRoomUnit)
			admin.Delete("/guests/{id:uint}", routes.DeleteGuest)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	app.Listen(addr)
}
