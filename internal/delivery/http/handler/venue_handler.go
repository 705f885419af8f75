package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tishinatyt/meetus/internal/domain"
	"github.com/tishinatyt/meetus/internal/usecase/explore"
)

type VenueHandler struct {
	exploreUseCase *explore.ExploreUseCase
}

func NewVenueHandler(exploreUseCase *explore.ExploreUseCase) *VenueHandler {
	return &VenueHandler{
		exploreUseCase: exploreUseCase,
	}
}

// ListVenues handles GET /venues
// @Summary List partner venues
// @Description Returns the catalog, with distance/ETA when lat and lng query params are supplied
// @Tags venues
// @Produce json
// @Param lat query number false "User latitude"
// @Param lng query number false "User longitude"
// @Success 200 {array} explore.VenueView
// @Failure 500 {object} ErrorResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	var coords *domain.Coordinates
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		// Unparseable coordinates degrade to the plain list
		if errLat == nil && errLng == nil {
			coords = &domain.Coordinates{Lat: lat, Lng: lng}
		}
	}

	views, err := h.exploreUseCase.ListVenues(c.Request.Context(), coords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list venues"})
		return
	}

	c.JSON(http.StatusOK, views)
}
