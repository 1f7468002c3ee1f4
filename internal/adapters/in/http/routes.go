package http

import (
	"net/http"

	"cleanings/api"
	"cleanings/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Route names, usable with echo's Reverse for URL generation.
const (
	RouteGetAllCleanings    = "cleanings:get-all-cleanings"
	RouteCreateCleaning     = "cleanings:create-cleaning"
	RouteGetCleaningByID    = "cleanings:get-cleaning-by-id"
	RouteUpdateCleaningByID = "cleanings:update-cleaning-by-id"
	RouteDeleteCleaningByID = "cleanings:delete-cleaning-by-id"
)

// RegisterRoutes attaches all cleaning endpoints to the echo instance and
// names them so they can be reversed.
func RegisterRoutes(e *echo.Echo, server *Server) {
	servers.RegisterHandlers(e, server)

	for _, route := range e.Routes() {
		switch {
		case route.Method == http.MethodGet && route.Path == "/api/cleanings/":
			route.Name = RouteGetAllCleanings
		case route.Method == http.MethodPost && route.Path == "/api/cleanings/":
			route.Name = RouteCreateCleaning
		case route.Method == http.MethodGet && route.Path == "/api/cleanings/:cleaning_id/":
			route.Name = RouteGetCleaningByID
		case route.Method == http.MethodPut && route.Path == "/api/cleanings/:cleaning_id/":
			route.Name = RouteUpdateCleaningByID
		case route.Method == http.MethodDelete && route.Path == "/api/cleanings/:cleaning_id/":
			route.Name = RouteDeleteCleaningByID
		}
	}

	e.GET("/api/openapi.json", getOpenAPIDocument)
}

func getOpenAPIDocument(ctx echo.Context) error {
	doc, err := api.Spec(ctx.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load openapi document")
	}

	return ctx.JSON(http.StatusOK, doc)
}
