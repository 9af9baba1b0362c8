package dto

// Category / Language / Tag are flat records, responses serialize the models
// directly. Only the request payloads get their own shapes.

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateLanguageDTO struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required,min=2,max=10"`
}

type UpdateLanguageDTO struct {
	Name *string `json:"name,omitempty"`
	Code *string `json:"code,omitempty"`
}

type CreateTagDTO struct {
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Color *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

type UpdateTagDTO struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}
