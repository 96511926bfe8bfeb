package controller

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"bookhive-be/internal/dto"
	"bookhive-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubReorderService struct {
	gotReq *dto.ReorderRequest
}

func (s *stubReorderService) Reorder(ctx context.Context, userId uuid.UUID, req *dto.ReorderRequest) (*dto.ReorderResponse, error) {
	s.gotReq = req
	return &dto.ReorderResponse{Updated: len(req.Items)}, nil
}

func newReorderTestApp(t *testing.T, svc *stubReorderService) (*fiber.App, string) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(noopLogger{}))
	NewReorderController(svc).RegisterRoutes(app.Group("/api"))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "editor",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return app, signed
}

func postReorder(t *testing.T, app *fiber.App, token, body string) *http.Response {
	req, err := http.NewRequest(http.MethodPost, "/api/reorder/v1", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestReorderMalformedBodyIsBadRequest(t *testing.T) {
	svc := &stubReorderService{}
	app, token := newReorderTestApp(t, svc)

	// items must be an array of ids; a string does not unmarshal.
	resp := postReorder(t, app, token, `{"type":"chapters","items":"not-an-array"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.gotReq)

	resp = postReorder(t, app, token, `{not json at all`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.gotReq)
}

func TestReorderEmptyItemsIsBadRequest(t *testing.T) {
	svc := &stubReorderService{}
	app, token := newReorderTestApp(t, svc)

	resp := postReorder(t, app, token, `{"type":"chapters","items":[]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.gotReq)
}

func TestReorderWellFormedBodyReachesService(t *testing.T) {
	svc := &stubReorderService{}
	app, token := newReorderTestApp(t, svc)

	id := uuid.New()
	resp := postReorder(t, app, token, `{"type":"chapters","items":["`+id.String()+`"]}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, []uuid.UUID{id}, svc.gotReq.Items)
}
