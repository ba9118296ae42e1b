package models

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       *string   `json:"full_name"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UsersPublic struct {
	Data  []User `json:"data"`
	Count int    `json:"count"`
}

// UserCreate is the superuser-facing payload for creating accounts.
type UserCreate struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=40"`
	FullName    *string `json:"full_name" validate:"omitnil,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
}

type UserRegister struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=40"`
	FullName *string `json:"full_name" validate:"omitnil,max=255"`
}

type UserUpdate struct {
	Email       *string `json:"email" validate:"omitnil,email,max=255"`
	Password    *string `json:"password" validate:"omitnil,min=8,max=40"`
	FullName    *string `json:"full_name" validate:"omitnil,max=255"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

type UserUpdateMe struct {
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
	FullName *string `json:"full_name" validate:"omitnil,max=255"`
}

type UpdatePassword struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8,max=40"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}
