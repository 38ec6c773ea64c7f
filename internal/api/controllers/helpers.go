package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentAccountID reads the identity the auth middleware stored.
// Every entitlement and payment operation takes this explicitly; no
// handler reaches into ambient globals.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
