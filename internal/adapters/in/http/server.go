package http

import (
	"fmt"
	"net/http"

	"dispatch/internal/core/application/documents"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server binds the dispatch board use cases to HTTP. Handlers return errors
// and leave the status mapping to the error handler installed by NewHTTPServer.
type Server struct {
	// Command handlers
	reassignOrderHandler      commands.ReassignOrderCommandHandler
	resetBoardHandler         commands.ResetBoardCommandHandler
	publishDailyReportHandler commands.PublishDailyReportCommandHandler
	publishInstructionHandler commands.PublishInstructionCommandHandler

	// Query handlers
	getBoardHandler       queries.GetBoardQueryHandler
	getDailyReportHandler queries.GetDailyReportQueryHandler
	getInstructionHandler queries.GetInstructionQueryHandler
}

func NewServer(
	reassignOrderHandler commands.ReassignOrderCommandHandler,
	resetBoardHandler commands.ResetBoardCommandHandler,
	publishDailyReportHandler commands.PublishDailyReportCommandHandler,
	publishInstructionHandler commands.PublishInstructionCommandHandler,
	getBoardHandler queries.GetBoardQueryHandler,
	getDailyReportHandler queries.GetDailyReportQueryHandler,
	getInstructionHandler queries.GetInstructionQueryHandler,
) *Server {
	return &Server{
		reassignOrderHandler:      reassignOrderHandler,
		resetBoardHandler:         resetBoardHandler,
		publishDailyReportHandler: publishDailyReportHandler,
		publishInstructionHandler: publishInstructionHandler,
		getBoardHandler:           getBoardHandler,
		getDailyReportHandler:     getDailyReportHandler,
		getInstructionHandler:     getInstructionHandler,
	}
}

// RegisterHandlers mounts every operation of the API document on router.
func RegisterHandlers(router *echo.Group, s *Server) {
	router.GET("/board", s.GetBoard)
	router.POST("/board/reassignments", s.ReassignOrder)
	router.POST("/board/reset", s.ResetBoard)
	router.POST("/reports/daily", s.PublishDailyReport)
	router.GET("/reports/daily", s.GetDailyReport)
	router.POST("/days/:dayId/routes/:routeId/instruction", s.PublishInstruction)
	router.GET("/reports/instruction/:routeId", s.GetInstruction)
}

// GetBoard handles GET /api/v1/board.
func (s *Server) GetBoard(ctx echo.Context) error {
	view, err := s.getBoardHandler.Handle(ctx.Request().Context(), queries.NewGetBoardQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// ReassignOrder handles POST /api/v1/board/reassignments and answers with the
// board as it is after the drop.
func (s *Server) ReassignOrder(ctx echo.Context) error {
	var req ReassignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	cmd, err := req.ToCommand()
	if err != nil {
		return err
	}

	b, err := s.reassignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, queries.NewBoardView(b))
}

// ResetBoard handles POST /api/v1/board/reset.
func (s *Server) ResetBoard(ctx echo.Context) error {
	b, err := s.resetBoardHandler.Handle(ctx.Request().Context(), commands.NewResetBoardCommand())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, queries.NewBoardView(b))
}

// PublishDailyReport handles POST /api/v1/reports/daily.
func (s *Server) PublishDailyReport(ctx echo.Context) error {
	published, err := s.publishDailyReportHandler.Handle(ctx.Request().Context(), commands.NewPublishDailyReportCommand())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusAccepted, toPublishedResponse(published))
}

// GetDailyReport handles GET /api/v1/reports/daily?day=N. The day index defaults to 0.
func (s *Server) GetDailyReport(ctx echo.Context) error {
	var day *int
	if err := runtime.BindQueryParameter("form", true, false, "day", ctx.QueryParams(), &day); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter day: %s", err))
	}

	dayIndex := 0
	if day != nil {
		dayIndex = *day
	}

	view, err := s.getDailyReportHandler.Handle(ctx.Request().Context(), queries.NewGetDailyReportQuery(dayIndex))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

// PublishInstruction handles POST /api/v1/days/{dayId}/routes/{routeId}/instruction.
func (s *Server) PublishInstruction(ctx echo.Context) error {
	dayID, err := bindPathParameter(ctx, "dayId")
	if err != nil {
		return err
	}
	routeID, err := bindPathParameter(ctx, "routeId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPublishInstructionCommand(dayID, routeID)
	if err != nil {
		return err
	}

	published, err := s.publishInstructionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusAccepted, toPublishedResponse(published))
}

// GetInstruction handles GET /api/v1/reports/instruction/{routeId}.
func (s *Server) GetInstruction(ctx echo.Context) error {
	routeID, err := bindPathParameter(ctx, "routeId")
	if err != nil {
		return err
	}

	query, err := queries.NewGetInstructionQuery(routeID)
	if err != nil {
		return err
	}

	view, err := s.getInstructionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

func toPublishedResponse(p commands.Published) PublishedResponse {
	return PublishedResponse{
		Key:         p.Key,
		GeneratedAt: documents.FormatTimestamp(p.GeneratedAt),
	}
}
