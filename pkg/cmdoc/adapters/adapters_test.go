package adapters

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/cmdoc/pkg/cmdoc"
)

func testRegistry() *cmdoc.Registry {
	return cmdoc.NewRegistry(&cmdoc.DocSet{
		Title: "API Commands",
		Groups: []cmdoc.GroupDoc{
			{
				Name: "element",
				Commands: []cmdoc.CommandDoc{
					{
						Name:           "click",
						Kind:           cmdoc.KindCommand,
						Group:          "element",
						Route:          "/session/:sessionId/element/:elementId/click",
						HTTPMethod:     "POST",
						RequiredParams: []string{"elementId"},
						OptionalParams: []string{},
					},
				},
			},
		},
	})
}

func TestEchoAdapter(t *testing.T) {
	e := echo.New()
	NewEchoAdapter(testRegistry()).Register(e, "/docs")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var set cmdoc.DocSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, "API Commands", set.Title)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/commands/click", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cmd cmdoc.CommandDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmd))
	assert.Equal(t, "click", cmd.Name)
	assert.Equal(t, "POST", cmd.HTTPMethod)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/commands/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGinAdapter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewGinAdapter(testRegistry()).Register(router, "/docs")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var set cmdoc.DocSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, "API Commands", set.Title)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/commands/click", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cmd cmdoc.CommandDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmd))
	assert.Equal(t, "click", cmd.Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/commands/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFiberAdapter(t *testing.T) {
	app := fiber.New()
	NewFiberAdapter(testRegistry()).Register(app, "/docs")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var set cmdoc.DocSet
	require.NoError(t, json.Unmarshal(body, &set))
	assert.Equal(t, "API Commands", set.Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs/commands/click", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)

	var cmd cmdoc.CommandDoc
	require.NoError(t, json.Unmarshal(body, &cmd))
	assert.Equal(t, "click", cmd.Name)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs/commands/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
