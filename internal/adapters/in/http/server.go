package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cleanings/internal/core/application/usecases/commands"
	"cleanings/internal/core/application/usecases/queries"
	"cleanings/internal/core/domain/model/cleaning"
	"cleanings/internal/generated/servers"
	"cleanings/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/nullable"
)

const msgNotFound = "no cleaning found with that id"

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCleaningHandler commands.CreateCleaningCommandHandler
	updateCleaningHandler commands.UpdateCleaningCommandHandler
	deleteCleaningHandler commands.DeleteCleaningCommandHandler

	// Query handlers
	getAllCleaningsHandler queries.GetAllCleaningsQueryHandler
	getCleaningByIDHandler queries.GetCleaningByIDQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCleaningHandler commands.CreateCleaningCommandHandler,
	updateCleaningHandler commands.UpdateCleaningCommandHandler,
	deleteCleaningHandler commands.DeleteCleaningCommandHandler,
	getAllCleaningsHandler queries.GetAllCleaningsQueryHandler,
	getCleaningByIDHandler queries.GetCleaningByIDQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createCleaningHandler:  createCleaningHandler,
		updateCleaningHandler:  updateCleaningHandler,
		deleteCleaningHandler:  deleteCleaningHandler,
		getAllCleaningsHandler: getAllCleaningsHandler,
		getCleaningByIDHandler: getCleaningByIDHandler,
		logger:                 logger,
	}
}

// GetAllCleanings handles GET /api/cleanings/ - retrieves all cleaning jobs.
func (s *Server) GetAllCleanings(ctx echo.Context) error {
	query := queries.NewGetAllCleaningsQuery()

	cleanings, err := s.getAllCleaningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("get all cleanings failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve cleanings",
		})
	}

	response := make([]servers.Cleaning, len(cleanings))
	for i, item := range cleanings {
		response[i] = servers.Cleaning{
			Id:           item.ID,
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price,
			CleaningType: servers.CleaningType(item.CleaningType),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCleaning handles POST /api/cleanings/ - registers a new cleaning job.
func (s *Server) CreateCleaning(ctx echo.Context) error {
	var request servers.CreateCleaningJSONRequestBody
	if err := ctx.Bind(&request); err != nil {
		return unprocessable(ctx, "Invalid request body")
	}

	newCleaning := request.NewCleaning
	if newCleaning.Name == nil || newCleaning.Price == nil {
		return unprocessable(ctx, "name and price are required")
	}

	var cleaningType cleaning.Type
	if newCleaning.CleaningType != nil {
		parsed, err := cleaning.ParseType(string(*newCleaning.CleaningType))
		if err != nil {
			return unprocessable(ctx, "Invalid cleaning type")
		}
		cleaningType = parsed
	}

	cmd, err := commands.NewCreateCleaningCommand(
		*newCleaning.Name,
		newCleaning.Description,
		*newCleaning.Price,
		cleaningType,
	)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning data: "+err.Error())
	}

	created, err := s.createCleaningHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("create cleaning failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create cleaning",
		})
	}

	return ctx.JSON(http.StatusCreated, toCleaningResponse(created))
}

// GetCleaningById handles GET /api/cleanings/{cleaning_id}/ - retrieves one cleaning job.
func (s *Server) GetCleaningById(ctx echo.Context, cleaningId string) error {
	id, err := parseCleaningID(cleaningId)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	query, err := queries.NewGetCleaningByIDQuery(id)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	item, err := s.getCleaningByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: msgNotFound,
			})
		}

		s.logger.Error("get cleaning failed", "error", err, "cleaning_id", id)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve cleaning",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Cleaning{
		Id:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		CleaningType: servers.CleaningType(item.CleaningType),
	})
}

// UpdateCleaningById handles PUT /api/cleanings/{cleaning_id}/ - merges a
// partial update onto an existing cleaning job.
func (s *Server) UpdateCleaningById(ctx echo.Context, cleaningId string) error {
	id, err := parseCleaningID(cleaningId)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	var request servers.UpdateCleaningByIdJSONRequestBody
	if err = ctx.Bind(&request); err != nil {
		return unprocessable(ctx, "Invalid request body")
	}

	patch, err := toPatch(request.CleaningUpdate)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning type")
	}
	if patch.IsEmpty() {
		return unprocessable(ctx, "No update parameters provided")
	}

	cmd, err := commands.NewUpdateCleaningCommand(id, patch)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	updated, err := s.updateCleaningHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.updateError(ctx, id, err)
	}

	return ctx.JSON(http.StatusOK, toCleaningResponse(updated))
}

// DeleteCleaningById handles DELETE /api/cleanings/{cleaning_id}/ - removes a
// cleaning job and returns its id.
func (s *Server) DeleteCleaningById(ctx echo.Context, cleaningId string) error {
	id, err := parseCleaningID(cleaningId)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	cmd, err := commands.NewDeleteCleaningCommand(id)
	if err != nil {
		return unprocessable(ctx, "Invalid cleaning id")
	}

	if err = s.deleteCleaningHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: msgNotFound,
			})
		}

		s.logger.Error("delete cleaning failed", "error", err, "cleaning_id", id)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete cleaning",
		})
	}

	return ctx.JSON(http.StatusOK, id)
}

func (s *Server) updateError(ctx echo.Context, id int64, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: msgNotFound,
		})
	case errors.Is(err, cleaning.ErrCleaningTypeIsNull):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "invalid cleaning type",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "invalid update params",
		})
	default:
		s.logger.Error("update cleaning failed", "error", err, "cleaning_id", id)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update cleaning",
		})
	}
}

// parseCleaningID converts the raw path segment into a positive id.
func parseCleaningID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, commands.ErrCleaningIDIsInvalid
	}

	return id, nil
}

// toPatch converts the transport-level update body into a domain patch.
// A non-null cleaning_type is validated eagerly so unknown variants are
// rejected at the boundary; an explicit null is passed through for the
// domain to refuse.
func toPatch(update servers.CleaningUpdate) (cleaning.Patch, error) {
	patch := cleaning.Patch{
		Name:        update.Name,
		Description: update.Description,
		Price:       update.Price,
	}

	if update.CleaningType.IsSpecified() {
		if update.CleaningType.IsNull() {
			patch.CleaningType = nullable.NewNullNullable[cleaning.Type]()
		} else {
			parsed, err := cleaning.ParseType(string(update.CleaningType.MustGet()))
			if err != nil {
				return cleaning.Patch{}, err
			}
			patch.CleaningType = nullable.NewNullableWithValue(parsed)
		}
	}

	return patch, nil
}

func toCleaningResponse(c *cleaning.Cleaning) servers.Cleaning {
	return servers.Cleaning{
		Id:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		Price:        c.Price(),
		CleaningType: servers.CleaningType(c.CleaningType()),
	}
}

func unprocessable(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	})
}
