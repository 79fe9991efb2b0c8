package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/DanCouper/joust/internal/models"

	"github.com/gin-gonic/gin"
)

func ListSessionsHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		sessions, err := models.ListSessions(db, limit)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		if sessions == nil {
			sessions = []models.Session{}
		}
		c.JSON(http.StatusOK, gin.H{"sessions": sessions})
	}
}

func GetSessionHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := models.GetSession(db, c.Param("token"))
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
