package handlers

import (
	"net/http"

	"github.com/DanCouper/joust/internal/models"
	"github.com/DanCouper/joust/internal/session"

	"github.com/gin-gonic/gin"
)

type startGameRequest struct {
	GameType string `json:"game_type"`
}

func StartGameHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req startGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		token, err := svc.StartGame(req.GameType)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

func GetGameHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Snapshot(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

func AddPlayerHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("id")
		var req addPlayerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		res, err := svc.AddPlayer(c.Request.Context(), token, req.Name)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		broadcastGameEvent(token, "player_added", res)
		c.JSON(http.StatusOK, res)
	}
}

type positionShipRequest struct {
	Player    int    `json:"player"`
	ShipType  string `json:"ship_type"`
	Direction string `json:"direction"`
	Col       int    `json:"col"`
	Row       int    `json:"row"`
}

func PositionShipHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("id")
		var req positionShipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		res, err := svc.PositionShip(c.Request.Context(), token, req.Player, req.ShipType, req.Direction, req.Col, req.Row)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		broadcastGameEvent(token, "ship_positioned", res)
		c.JSON(http.StatusOK, res)
	}
}

func SetShipPlacementHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("id")
		res, err := svc.SetShipPlacement(c.Request.Context(), token)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		broadcastGameEvent(token, "placement_finalised", res)
		c.JSON(http.StatusOK, res)
	}
}

type coordinateRequest struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func GuessCoordinateHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("id")
		var req coordinateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		res, err := svc.GuessCoordinate(c.Request.Context(), token, req.Col, req.Row)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		broadcastGameEvent(token, "guess_resolved", res)
		c.JSON(http.StatusOK, res)
	}
}

func PlaceMarkHandler(svc *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("id")
		var req coordinateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeAPIError(c, models.ErrInvalidJSON)
			return
		}
		res, err := svc.PlaceMark(c.Request.Context(), token, req.Col, req.Row)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		broadcastGameEvent(token, "mark_placed", res)
		c.JSON(http.StatusOK, res)
	}
}
