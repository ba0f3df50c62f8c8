package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeshu2004/real-time-pooling/api/models"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/session"
)

type PollController struct {
	coordinator *session.Coordinator
}

func NewPollController(coordinator *session.Coordinator) *PollController {
	return &PollController{
		coordinator: coordinator,
	}
}

func (c *PollController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/poll", c.createPoll)
	group.GET("/poll/current", c.getCurrentPoll)
	group.POST("/answer", c.submitAnswer)
}

// createPoll godoc
// @Summary Create a poll
// @Description Starts a new poll, superseding any currently active one
// @Tags polls
// @Accept json
// @Produce json
// @Param poll body models.CreatePollRequest true "Poll definition"
// @Success 201 {object} models.PollResponse
// @Failure 400 {object} models.ErrorResponse "Malformed poll"
// @Failure 403 {object} models.ErrorResponse "Creator is not a presenter"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/poll [post]
func (c *PollController) createPoll(g *gin.Context) {
	var req models.CreatePollRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	poll, err := c.coordinator.CreatePoll(
		g.Request.Context(),
		req.Question,
		models.TransformOptionsToStorage(req.Options),
		req.TimeLimitSeconds,
		req.CreatorID,
	)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidCreator):
			g.JSON(http.StatusForbidden, &models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, session.ErrInvalidPollSpec):
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		default:
			logging.Log.Errorf("failed to create poll: %v", err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create poll"})
		}
		return
	}

	g.JSON(http.StatusCreated, models.TransformPollToResponse(poll))
}

// getCurrentPoll godoc
// @Summary Get the active poll
// @Description Returns the active poll with correctness flags stripped, for late joiners
// @Tags polls
// @Produce json
// @Success 200 {object} session.Snapshot
// @Failure 404 {object} models.ErrorResponse "No active poll"
// @Router /api/poll/current [get]
func (c *PollController) getCurrentPoll(g *gin.Context) {
	snapshot := c.coordinator.ActivePollSnapshot()
	if snapshot == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no active poll"})
		return
	}
	g.JSON(http.StatusOK, snapshot)
}

// submitAnswer godoc
// @Summary Submit an answer
// @Description Fire-and-forget answer submission; stale, out-of-range, and duplicate answers are dropped silently
// @Tags polls
// @Accept json
// @Produce json
// @Param answer body models.SubmitAnswerRequest true "Answer submission"
// @Success 202 {object} models.SubmitAnswerResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Router /api/answer [post]
func (c *PollController) submitAnswer(g *gin.Context) {
	var req models.SubmitAnswerRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.PollID == "" || req.RespondentID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "pollId and respondentId are required"})
		return
	}

	c.coordinator.SubmitAnswer(g.Request.Context(), req.PollID, req.RespondentID, req.SelectedOption)

	g.JSON(http.StatusAccepted, &models.SubmitAnswerResponse{Message: "answer received"})
}
