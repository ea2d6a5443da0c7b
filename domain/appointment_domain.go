package domain

import (
	"errors"
)

var (
	MessageSuccessGetAppointments   = "appointments retrieved successfully"
	MessageSuccessAddAppointment    = "appointment added successfully"
	MessageSuccessUpdateAppointment = "appointment updated successfully"
	MessageSuccessDeleteAppointment = "appointment deleted successfully"

	MessageFailedGetAppointments   = "failed to retrieve appointments"
	MessageFailedAddAppointment    = "failed to add appointment"
	MessageFailedUpdateAppointment = "failed to update appointment"
	MessageFailedDeleteAppointment = "failed to delete appointment"

	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrAppointmentIDRequired = errors.New("appointment id required")
)

type (
	AddAppointmentRequest struct {
		Title    string `json:"title" validate:"required"`
		Date     string `json:"date" validate:"required,datetime=2006-01-02"`
		Time     string `json:"time" validate:"omitempty,datetime=15:04"`
		Location string `json:"location"`
		Notes    string `json:"notes"`
	}

	UpdateAppointmentRequest struct {
		ID       uint    `json:"id" validate:"required"`
		Title    *string `json:"title" validate:"omitempty"`
		Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		Time     *string `json:"time" validate:"omitempty"`
		Location *string `json:"location"`
		Notes    *string `json:"notes"`
		Done     *bool   `json:"done"`
	}
)
