package dto

type CreateCategoriesReq struct {
	Categories []string `json:"categories" validate:"required,min=1,dive,required,max=100"`
}

type UpdateCategoryReq struct {
	Name *string `json:"name" validate:"required,min=1,max=100"`
}
