// Package dto provides the response bodies of the resource endpoints.
package dto

import (
	resourceDomain "github.com/allisson/resourceapi/internal/resource/domain"
)

// ListResponse is the body of a collection read.
type ListResponse struct {
	Count   int                      `json:"count"`
	Results []*resourceDomain.Record `json:"results"`
}

// MapRecordsToListResponse wraps records with their count. Results is never null.
func MapRecordsToListResponse(records []*resourceDomain.Record) ListResponse {
	if records == nil {
		records = []*resourceDomain.Record{}
	}
	return ListResponse{
		Count:   len(records),
		Results: records,
	}
}
