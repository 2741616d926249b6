package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// StaffOnlyMiddleware lets any authenticated staff member through and makes
// the user id available to downstream handlers.
func StaffOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	switch claims.Role {
	case "admin", "manager", "front_desk":
		ctx.Values().Set("userID", claims.ID)
		ctx.Next()
	default:
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "staff access required"})
	}
}

// AdminOnlyMiddleware restricts a route to admins and managers.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != "admin" && claims.Role != "manager" {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// UserIDFromContext returns the staff user id stored by the role middleware,
// or nil when the route was reached without one.
func UserIDFromContext(ctx iris.Context) *uint {
	v := ctx.Values().Get("userID")
	if v == nil {
		return nil
	}
	if id, ok := v.(uint); ok {
		return &id
	}
	return nil
}
