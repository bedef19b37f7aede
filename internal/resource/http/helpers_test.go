package http

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/allisson/resourceapi/internal/httputil"
	"github.com/allisson/resourceapi/internal/resource/http/mocks"
	resourceUseCase "github.com/allisson/resourceapi/internal/resource/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the resource routes behind ResourceTypeMiddleware with a registry
// holding only the given adapter.
func newTestRouter(adapter *mocks.MockResourceAdapter) *gin.Engine {
	registry := resourceUseCase.NewRegistry(adapter)
	handler := NewResourceHandler(newTestLogger())

	router := gin.New()
	router.Use(httputil.ErrorMiddleware(nil, newTestLogger()))
	group := router.Group("/api/v1/:model", ResourceTypeMiddleware(registry, newTestLogger()))
	group.GET("", handler.ListHandler)
	group.POST("", handler.CreateHandler)
	group.GET("/:id", handler.GetHandler)
	group.PUT("/:id", handler.UpdateHandler)
	group.DELETE("/:id", handler.DeleteHandler)
	return router
}

func do(router *gin.Engine, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
