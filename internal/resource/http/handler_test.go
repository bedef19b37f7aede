package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/allisson/resourceapi/internal/errors"
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
	"github.com/allisson/resourceapi/internal/resource/http/mocks"
)

func newCategory() *resourceDomain.Record {
	return &resourceDomain.Record{
		ID:     uuid.Must(uuid.NewV7()),
		Type:   "categories",
		Fields: map[string]any{"name": "Test", "description": "Description"},
	}
}

func TestResourceHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		record := newCategory()
		adapter.On("List", mock.Anything).Return([]*resourceDomain.Record{record}, nil).Once()

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/categories", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"count":1,"results":[{"_id":"`+record.ID.String()+`","name":"Test","description":"Description"}]}`,
			w.Body.String())
		adapter.AssertExpectations(t)
	})

	t.Run("Success_CaseInsensitiveType", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		adapter.On("List", mock.Anything).Return([]*resourceDomain.Record{}, nil).Once()

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/Categories", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":0,"results":[]}`, w.Body.String())
	})

	t.Run("Error_UnknownType", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/widgets", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No data-model exists for \"widgets\""}`, w.Body.String())
		adapter.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Error_StoreFailure", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		adapter.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/categories", "", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"db down"}`, w.Body.String())
	})
}

func TestResourceHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		record := newCategory()
		adapter.On("Get", mock.Anything, record.ID.String()).Return(record, nil).Once()

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/categories/"+record.ID.String(), "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"_id":"`+record.ID.String()+`"`)
	})

	t.Run("Error_Absent", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		adapter.On("Get", mock.Anything, "3123123123").Return(nil, nil).Once()

		w := do(newTestRouter(adapter), http.MethodGet, "/api/v1/categories/3123123123", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No item exists with id 3123123123"}`, w.Body.String())
	})
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("Success_JSON", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		record := newCategory()
		adapter.On("Create", mock.Anything, map[string]any{"name": "Test", "description": "Description"}).
			Return(record, nil).
			Once()

		w := do(newTestRouter(adapter), http.MethodPost, "/api/v1/categories",
			"application/json", `{"name":"Test","description":"Description"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"_id":"`+record.ID.String()+`"`)
		adapter.AssertExpectations(t)
	})

	t.Run("Success_Form", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		adapter.On("Create", mock.Anything, map[string]any{"name": "Test"}).Return(newCategory(), nil).Once()

		w := do(newTestRouter(adapter), http.MethodPost, "/api/v1/categories",
			"application/x-www-form-urlencoded", "name=Test")

		assert.Equal(t, http.StatusCreated, w.Code)
		adapter.AssertExpectations(t)
	})

	t.Run("Error_MalformedBody", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}

		w := do(newTestRouter(adapter), http.MethodPost, "/api/v1/categories", "application/json", `[1,2]`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		adapter.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidRecord", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		adapter.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name: cannot be blank.")).
			Once()

		w := do(newTestRouter(adapter), http.MethodPost, "/api/v1/categories", "application/json", `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"name: cannot be blank."}`, w.Body.String())
	})
}

func TestResourceHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		record := newCategory()
		record.Fields["description"] = "Updated, yay!"
		adapter.On("Update", mock.Anything, record.ID.String(), map[string]any{"description": "Updated, yay!"}).
			Return(record, nil).
			Once()

		w := do(newTestRouter(adapter), http.MethodPut, "/api/v1/categories/"+record.ID.String(),
			"application/json", `{"description":"Updated, yay!"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"description":"Updated, yay!"`)
	})

	t.Run("Error_Absent", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		id := "555555555555555555555555"
		adapter.On("Update", mock.Anything, id, mock.Anything).Return(nil, nil).Once()

		w := do(newTestRouter(adapter), http.MethodPut, "/api/v1/categories/"+id,
			"application/json", `{"description":"Updated, yay!"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"No item exists with id `+id+`"}`, w.Body.String())
	})
}

func TestResourceHandler_Delete(t *testing.T) {
	t.Run("Success_ReturnsDeletedRecord", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		record := newCategory()
		adapter.On("Delete", mock.Anything, record.ID.String()).Return(record, nil).Once()

		w := do(newTestRouter(adapter), http.MethodDelete, "/api/v1/categories/"+record.ID.String(), "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Test"`)
	})

	t.Run("Error_Absent", func(t *testing.T) {
		adapter := &mocks.MockResourceAdapter{ResourceName: "categories"}
		id := uuid.Must(uuid.NewV7()).String()
		adapter.On("Delete", mock.Anything, id).Return(nil, nil).Once()

		w := do(newTestRouter(adapter), http.MethodDelete, "/api/v1/categories/"+id, "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
