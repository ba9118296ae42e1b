package models

import "time"

// Item is a user-owned record with an optional free-text category.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ItemsPublic struct {
	Data  []Item `json:"data"`
	Count int    `json:"count"`
}

type ItemCreate struct {
	Title       string  `json:"title" form:"title" validate:"required,notblank,max=255"`
	Description *string `json:"description" form:"description" validate:"omitnil,max=255"`
	Category    *string `json:"category" form:"category" validate:"omitnil,max=100"`
}

type ItemUpdate struct {
	Title       *string `json:"title" validate:"omitnil,notblank,max=255"`
	Description *string `json:"description" validate:"omitnil,max=255"`
	Category    *string `json:"category" validate:"omitnil,max=100"`
}

// ItemFilter narrows a listing. An empty OwnerID means every owner.
type ItemFilter struct {
	OwnerID  string
	Category string
	Limit    int
	Offset   int
}
