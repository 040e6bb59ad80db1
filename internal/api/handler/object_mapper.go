package handler

import (
	"time"

	"github.com/registrydesk/object-service/internal/core/domain"
)

func toObjectResponse(o *domain.Object) objectResponse {
	return objectResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Age:       o.Age,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toObjectList(items []domain.Object, total int64, limit, offset int) listObjectsResponse {
	out := make([]objectResponse, 0, len(items))
	for i := range items {
		out = append(out, toObjectResponse(&items[i]))
	}
	return listObjectsResponse{Items: out, Total: total, Limit: limit, Offset: offset}
}
