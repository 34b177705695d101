package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/torus-maze/maze"
	"github.com/beka-birhanu/torus-maze/service"
	"github.com/beka-birhanu/torus-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MapController serves the map registry and solve previews.
type MapController struct {
	mazeService i.MazeService
}

// NewMapController initializes a MapController.
func NewMapController(ms i.MazeService) (*MapController, error) {
	if ms == nil {
		return nil, errors.New("nil maze service")
	}
	return &MapController{mazeService: ms}, nil
}

// RegisterPublic registers read-only routes.
func (mc *MapController) RegisterPublic(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.GET("", mc.list)
		maps.GET("/:id", mc.get)
		maps.GET("/:id/solve", mc.solve)
	}
}

// RegisterProtected registers routes that change the registry.
func (mc *MapController) RegisterProtected(route *gin.RouterGroup) {
	maps := route.Group("/maps")
	{
		maps.POST("", mc.create)
		maps.DELETE("/:id", mc.delete)
	}
}

// create stores a new map.
func (mc *MapController) create(ctx *gin.Context) {
	var request CreateMapRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	view, err := mc.mazeService.Create(*request.MapString)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response[MapResponse]{Data: MapResponse{ID: view.ID, MapString: view.MapString}})
}

// list returns all stored maps.
func (mc *MapController) list(ctx *gin.Context) {
	views := mc.mazeService.List()
	maps := make([]MapResponse, 0, len(views))
	for _, v := range views {
		maps = append(maps, MapResponse{ID: v.ID, MapString: v.MapString})
	}

	ctx.JSON(http.StatusOK, Response[[]MapResponse]{Data: maps})
}

// get returns a single map.
func (mc *MapController) get(ctx *gin.Context) {
	id, ok := mapID(ctx)
	if !ok {
		return
	}

	view, err := mc.mazeService.Get(id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response[MapResponse]{Data: MapResponse{ID: view.ID, MapString: view.MapString}})
}

// delete removes a map.
func (mc *MapController) delete(ctx *gin.Context) {
	id, ok := mapID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// solve returns a solved copy of a map; the stored map is not changed.
func (mc *MapController) solve(ctx *gin.Context) {
	id, ok := mapID(ctx)
	if !ok {
		return
	}

	var query SolveQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid solve parameters", Details: err.Error()})
		return
	}

	start, end := query.Points()
	solution, err := mc.mazeService.Solve(ctx.Request.Context(), id, start, end)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, Response[SolveResponse]{Data: SolveResponse{
		SolutionMap: solution.SolutionMap,
		PathFound:   solution.PathFound,
		Steps:       solution.Steps,
	}})
}

func mapID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid map id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps service errors to HTTP responses.
func writeError(ctx *gin.Context, err error) {
	var formatErr *maze.FormatError
	switch {
	case errors.As(err, &formatErr):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid map format", Details: formatErr.Error()})
	case errors.Is(err, service.ErrMapTooLarge):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Map is too large", Details: err.Error()})
	case errors.Is(err, service.ErrMapNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Map not found"})
	case errors.Is(err, service.ErrInvalidStart):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Start position is invalid", Details: err.Error()})
	case errors.Is(err, service.ErrInvalidEnd):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "End position is invalid", Details: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
