package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

func TestMapRecordsToListResponse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		response := MapRecordsToListResponse([]*resourceDomain.Record{
			{ID: id, Fields: map[string]any{"name": "Test"}},
		})

		data, err := json.Marshal(response)
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":1,"results":[{"_id":"`+id.String()+`","name":"Test"}]}`, string(data))
	})

	t.Run("Success_Empty", func(t *testing.T) {
		data, err := json.Marshal(MapRecordsToListResponse(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"count":0,"results":[]}`, string(data))
	})
}
