package models

// PaginatedResponse is the envelope for every list endpoint
type PaginatedResponse[T any] struct {
	Count      int64   `json:"count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
	Results    []T     `json:"results"`
}
