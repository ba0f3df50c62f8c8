package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeshu2004/real-time-pooling/api/models"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/storage"
)

type IdentityController struct {
	identitiesStorage storage.IdentityStorage
}

func NewIdentityController(identityStorage storage.IdentityStorage) *IdentityController {
	return &IdentityController{
		identitiesStorage: identityStorage,
	}
}

func (c *IdentityController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/identity", c.registerIdentity)
}

// registerIdentity godoc
// @Summary Register a presenter or respondent identity
// @Description Returns a stable identity for a display name and role; repeated identical registrations return the same identity
// @Tags identity
// @Accept json
// @Produce json
// @Param identity body models.RegisterIdentityRequest true "Display name and role"
// @Success 201 {object} models.IdentityResponse
// @Failure 400 {object} models.ErrorResponse "Invalid name or role"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/identity [post]
func (c *IdentityController) registerIdentity(g *gin.Context) {
	var req models.RegisterIdentityRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "name is required"})
		return
	}
	if req.Role != storage.RolePresenter && req.Role != storage.RoleRespondent {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "role must be presenter or respondent"})
		return
	}

	// Registration is idempotent per (name, role).
	existing, err := c.identitiesStorage.FindByNameAndRole(g.Request.Context(), req.Name, req.Role)
	if err == nil {
		g.JSON(http.StatusCreated, models.TransformIdentityToResponse(existing))
		return
	}
	if !errors.Is(err, storage.ErrIdentityNotFound) {
		logging.Log.Errorf("failed to look up identity %s/%s: %v", req.Name, req.Role, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not look up identity"})
		return
	}

	identity := &storage.Identity{
		ID:   uuid.NewString(),
		Name: req.Name,
		Role: req.Role,
	}
	if err := c.identitiesStorage.Create(g.Request.Context(), identity); err != nil {
		logging.Log.Errorf("failed to create identity %s/%s: %v", req.Name, req.Role, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create identity"})
		return
	}

	g.JSON(http.StatusCreated, models.TransformIdentityToResponse(identity))
}
