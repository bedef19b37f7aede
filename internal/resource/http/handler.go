package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/allisson/resourceapi/internal/httputil"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
	"github.com/allisson/resourceapi/internal/resource/http/dto"
	resourceUseCase "github.com/allisson/resourceapi/internal/resource/usecase"
)

var errAdapterMissing = errors.New("resource type was not resolved")

// ResourceHandler serves CRUD for whichever resource type ResourceTypeMiddleware resolved.
type ResourceHandler struct {
	logger *slog.Logger
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler(logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{logger: logger}
}

// ListHandler returns every record of the type as {count, results}.
// GET /api/v1/:model - Requires the read capability.
func (h *ResourceHandler) ListHandler(c *gin.Context) {
	adapter, ok := h.adapter(c)
	if !ok {
		return
	}

	records, err := adapter.List(c.Request.Context())
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapRecordsToListResponse(records))
}

// GetHandler returns one record.
// GET /api/v1/:model/:id - Requires the read capability.
func (h *ResourceHandler) GetHandler(c *gin.Context) {
	adapter, ok := h.adapter(c)
	if !ok {
		return
	}

	id := c.Param("id")
	record, err := adapter.Get(c.Request.Context(), id)
	h.respond(c, http.StatusOK, id, record, err)
}

// CreateHandler stores a new record.
// POST /api/v1/:model - Requires the create capability. Responds 201 with the record.
func (h *ResourceHandler) CreateHandler(c *gin.Context) {
	adapter, ok := h.adapter(c)
	if !ok {
		return
	}

	fields, err := bindFields(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	record, err := adapter.Create(c.Request.Context(), fields)
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateHandler merges the body into an existing record.
// PUT /api/v1/:model/:id - Requires the update capability.
func (h *ResourceHandler) UpdateHandler(c *gin.Context) {
	adapter, ok := h.adapter(c)
	if !ok {
		return
	}

	fields, err := bindFields(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	id := c.Param("id")
	record, err := adapter.Update(c.Request.Context(), id, fields)
	h.respond(c, http.StatusOK, id, record, err)
}

// DeleteHandler removes a record and returns it.
// DELETE /api/v1/:model/:id - Requires the delete capability.
func (h *ResourceHandler) DeleteHandler(c *gin.Context) {
	adapter, ok := h.adapter(c)
	if !ok {
		return
	}

	id := c.Param("id")
	record, err := adapter.Delete(c.Request.Context(), id)
	h.respond(c, http.StatusOK, id, record, err)
}

func (h *ResourceHandler) adapter(c *gin.Context) (resourceUseCase.ResourceAdapter, bool) {
	adapter, ok := GetAdapter(c.Request.Context())
	if !ok {
		h.logger.Error("resource handler mounted without ResourceTypeMiddleware")
		httputil.AbortWithError(c, errAdapterMissing)
	}
	return adapter, ok
}

// respond turns an absent record into the not-found error.
func (h *ResourceHandler) respond(
	c *gin.Context,
	status int,
	id string,
	record *resourceDomain.Record,
	err error,
) {
	if err != nil {
		httputil.AbortWithError(c, err)
		return
	}
	if record == nil {
		httputil.AbortWithError(c, resourceDomain.NewRecordNotFoundError(id))
		return
	}
	c.JSON(status, record)
}

// bindFields decodes a JSON object or a form-encoded body. Form values arrive as strings.
func bindFields(c *gin.Context) (map[string]any, error) {
	fields := map[string]any{}

	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for name, values := range c.Request.PostForm {
			if len(values) > 0 {
				fields[name] = values[0]
			}
		}
		return fields, nil
	default:
		if c.Request.ContentLength == 0 {
			return fields, nil
		}
		if err := c.ShouldBindJSON(&fields); err != nil {
			return nil, err
		}
		return fields, nil
	}
}
