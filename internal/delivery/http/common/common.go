package http_common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UserIDHeader = "X-User-ID"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// QuotaErrorResponse is the quota-exceeded payload clients render.
type QuotaErrorResponse struct {
	Error   string `json:"error"`
	Limit   int    `json:"limit"`
	Current int    `json:"current"`
}

// UserID pulls the authenticated user from the gateway-injected header.
// Auth itself happens upstream; a missing header means a misrouted request.
func UserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(ctx.GetHeader(UserIDHeader))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "missing or invalid user identity",
			Code:  http.StatusUnauthorized,
		})
		return uuid.Nil, false
	}
	return userID, true
}

// PathUUID parses a UUID path parameter, replying 400 on garbage.
func PathUUID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid " + param,
			Code:  http.StatusBadRequest,
		})
		return uuid.Nil, false
	}
	return id, true
}
