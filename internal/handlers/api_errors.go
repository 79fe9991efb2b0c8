package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/DanCouper/joust/internal/models"

	"github.com/gin-gonic/gin"
)

func writeAPIError(c *gin.Context, err error) {
	if err == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if errors.Is(err, models.ErrGameNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	// Safe typed validation / protocol errors (do NOT echo raw errors).
	switch {
	case errors.Is(err, models.ErrInvalidJSON):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	case errors.Is(err, models.ErrInvalidCoordinate):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate"})
		return
	case errors.Is(err, models.ErrInvalidName):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid name"})
		return
	case errors.Is(err, models.ErrInvalidShipType):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid ship type"})
		return
	case errors.Is(err, models.ErrInvalidDirection):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid direction"})
		return
	case errors.Is(err, models.ErrOverlappingShip):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "overlapping ship"})
		return
	case errors.Is(err, models.ErrCoordinateAlreadyGuessed):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "coordinate already guessed"})
		return
	case errors.Is(err, models.ErrInvalidOperation):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "invalid operation"})
		return
	case errors.Is(err, models.ErrAllPlayerShipsPlaced):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "all player ships placed"})
		return
	case errors.Is(err, models.ErrShipPlacementNotFinalised):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "ship placement not finalised"})
		return
	case errors.Is(err, models.ErrAllPlayersAlreadyJoined):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "all players already joined"})
		return
	case errors.Is(err, models.ErrNoPlayerMatchingID):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "no player matching id"})
		return
	case errors.Is(err, models.ErrNonexistentGameType):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "nonexistent game type"})
		return
	case errors.Is(err, context.DeadlineExceeded):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "game busy"})
		return
	}

	// Unknown/internal errors: log details, return generic message.
	log.Printf("internal error: %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
