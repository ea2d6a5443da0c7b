package domain

import (
	"Household-Planner-Backend/entities"
)

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"
)

type (
	DashboardProgress struct {
		Done    int `json:"done"`
		Total   int `json:"total"`
		Percent int `json:"percent"`
	}

	DashboardResponse struct {
		Date                 string                 `json:"date"`
		Tasks                []entities.Task        `json:"tasks"`
		AppointmentsToday    []entities.Appointment `json:"appointments_today"`
		AppointmentsUpcoming []entities.Appointment `json:"appointments_upcoming"`
		Meals                []Meal                 `json:"meals"`
		Progress             DashboardProgress      `json:"progress"`
	}
)
