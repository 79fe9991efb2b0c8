package handlers

import (
	"database/sql"

	"github.com/DanCouper/joust/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterGameRoutes(rg *gin.RouterGroup, svc *session.Service) {
	rg.POST("/games", StartGameHandler(svc))
	rg.GET("/games/:id", GetGameHandler(svc))
	rg.POST("/games/:id/players", AddPlayerHandler(svc))
	rg.POST("/games/:id/ships", PositionShipHandler(svc))
	rg.POST("/games/:id/ships/finalise", SetShipPlacementHandler(svc))
	rg.POST("/games/:id/guesses", GuessCoordinateHandler(svc))
	rg.POST("/games/:id/marks", PlaceMarkHandler(svc))
}

func RegisterSessionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	rg.GET("/sessions", ListSessionsHandler(db))
	rg.GET("/sessions/:token", GetSessionHandler(db))
}
