package model

import "time"

// Draft is the persisted drafting unit. The id is generated by the service
// before the row is inserted and never changes afterwards.
type Draft struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateDraftRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateDraftRequest carries a partial update. Nil means "leave the field
// as it is"; an explicit empty string is a valid new value.
type UpdateDraftRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type DeleteDraftResponse struct {
	Message string `json:"message"`
}
