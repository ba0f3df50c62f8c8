package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testutils "github.com/yeshu2004/real-time-pooling/api/controllers/testing"
	"github.com/yeshu2004/real-time-pooling/api/models"
	"github.com/yeshu2004/real-time-pooling/logging"
	"github.com/yeshu2004/real-time-pooling/storage"
)

func setupTestIdentityController(t *testing.T) *gin.Engine {
	t.Helper()
	logging.Log = logrus.New()

	identityStorage := storage.NewMemoryIdentityStorage()
	identityController := NewIdentityController(identityStorage)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	identityController.RegisterRoutes(r)
	return r
}

func TestRegisterIdentity(t *testing.T) {
	router := setupTestIdentityController(t)

	t.Run("Happy path - register presenter", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Ms Frizzle",
			Role: storage.RolePresenter,
		})
		require.Equal(t, http.StatusCreated, res.Code)

		var identity models.IdentityResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &identity))
		assert.NotEmpty(t, identity.ID)
		assert.Equal(t, "Ms Frizzle", identity.Name)
		assert.Equal(t, storage.RolePresenter, identity.Role)
	})

	t.Run("Registration is idempotent per name and role", func(t *testing.T) {
		first := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Arnold",
			Role: storage.RoleRespondent,
		})
		require.Equal(t, http.StatusCreated, first.Code)
		second := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Arnold",
			Role: storage.RoleRespondent,
		})
		require.Equal(t, http.StatusCreated, second.Code)

		var firstIdentity, secondIdentity models.IdentityResponse
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstIdentity))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondIdentity))
		assert.Equal(t, firstIdentity.ID, secondIdentity.ID)
	})

	t.Run("Same name with different role is a new identity", func(t *testing.T) {
		asRespondent := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Dorothy",
			Role: storage.RoleRespondent,
		})
		asPresenter := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Dorothy",
			Role: storage.RolePresenter,
		})

		var respondent, presenter models.IdentityResponse
		require.NoError(t, json.Unmarshal(asRespondent.Body.Bytes(), &respondent))
		require.NoError(t, json.Unmarshal(asPresenter.Body.Bytes(), &presenter))
		assert.NotEqual(t, respondent.ID, presenter.ID)
	})

	t.Run("Missing name is rejected", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Role: storage.RoleRespondent,
		})
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unknown role is rejected", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/identity", models.RegisterIdentityRequest{
			Name: "Janet",
			Role: "admin",
		})
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
