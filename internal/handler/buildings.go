package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flushfinder/flushfinder/internal/service"
)

// BuildingHandler serves the map-facing building listing and the
// building-wide review aggregate.
type BuildingHandler struct {
	Agg *service.Aggregator
}

// buildingResponse is a building as exposed on the wire. Coordinates are
// raw strings exactly as stored; rows with unparsable values are served
// too, and map clients decide what to render.
type buildingResponse struct {
	ID            uint64  `json:"id"`
	RecordNumber  string  `json:"building_record_number"`
	Name          string  `json:"building_name"`
	AddressNumber *string `json:"building_address_number"`
	Street        *string `json:"building_street"`
	Lat           *string `json:"building_lat"`
	Long          *string `json:"building_long"`
	NumBathrooms  uint32  `json:"num_bathrooms"`
}

// GetBuildings handles GET /building.
func (h *BuildingHandler) GetBuildings(c echo.Context) error {
	buildings, err := h.Agg.ListBuildings(c.Request().Context())
	if err != nil {
		return writeRepoError(c, err)
	}
	out := make([]buildingResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, buildingResponse{
			ID:            b.ID,
			RecordNumber:  b.RecordNumber,
			Name:          b.Name,
			AddressNumber: b.AddressNumber,
			Street:        b.Street,
			Lat:           b.Lat,
			Long:          b.Long,
			NumBathrooms:  b.NumBathrooms,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"buildings": out})
}

// GetBuildingReviews handles GET /building/:brn/reviews. The reviews of
// every room in the building come back most recent first together with the
// building-wide average; a building with no reviews gets rating 0 and an
// empty list.
func (h *BuildingHandler) GetBuildingReviews(c echo.Context) error {
	brn := c.Param("brn")
	rating, err := h.Agg.AverageBuildingRating(c.Request().Context(), brn)
	if err != nil {
		return writeRepoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"building_id": brn,
		"avg_stars":   rating.Rating,
		"reviews":     toReviewResponses(rating.Reviews),
	})
}
