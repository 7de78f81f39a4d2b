package dto

import "inventory-system/pkg/types"

// ListData wraps list payloads together with their pagination metadata.
type ListData struct {
	Items      interface{}      `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}
