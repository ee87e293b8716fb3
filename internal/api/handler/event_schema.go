package handler

import "time"

type createEventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date"        validate:"required"`
	Time        string    `json:"time"        validate:"required"`
	Location    string    `json:"location"    validate:"required"`
	Status      string    `json:"status"      validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
	Location    *string    `json:"location"`
	Status      *string    `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
}
