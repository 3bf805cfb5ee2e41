// Package handler contains the Gin HTTP handlers. Handlers parse and
// validate path/query/body input, call a service, and render the result
// through the response package. They hold no business logic.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
	"blogapi/src/app/middleware"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// a 400 response and returns ok=false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// parseUserIDQuery reads the user_id query parameter that creation
// endpoints use to name the owning user.
func parseUserIDQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid user_id", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
