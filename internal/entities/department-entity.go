package entities

type Department struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	OrganizationID uint64 `json:"organization_id"`
}
