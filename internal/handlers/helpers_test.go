package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/ukydev/moto-maintenance/internal/middleware"
	"github.com/ukydev/moto-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authedRequest builds a request carrying authenticated-user claims, the way
// the auth middleware would hand it to a handler.
func authedRequest(method, target string, body []byte, claims *models.Claims) *http.Request {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	return req.WithContext(ctx)
}

func ownerClaims(userID primitive.ObjectID) *models.Claims {
	return &models.Claims{
		UserID:   userID.Hex(),
		Username: "owner",
		Role:     models.RoleOwner,
	}
}
