package dto

type CreateDepartmentDTO struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	OrganizationID uint64 `json:"organization_id" validate:"required,min=1"`
}
