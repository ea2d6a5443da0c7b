package handlers

import (
	"errors"
	"strconv"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/internal/api/presenters"
	"Household-Planner-Backend/pkg/appointment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AppointmentHandler interface {
		GetAppointments(c *fiber.Ctx) error
		AddAppointment(c *fiber.Ctx) error
		UpdateAppointment(c *fiber.Ctx) error
		DeleteAppointment(c *fiber.Ctx) error
	}

	appointmentHandler struct {
		appointmentService appointment.AppointmentService
		validator          *validator.Validate
	}
)

func NewAppointmentHandler(appointmentService appointment.AppointmentService, validator *validator.Validate) AppointmentHandler {
	return &appointmentHandler{
		appointmentService: appointmentService,
		validator:          validator,
	}
}

func (h *appointmentHandler) GetAppointments(c *fiber.Ctx) error {
	upcoming := c.QueryBool("upcoming", false)

	appointments, err := h.appointmentService.GetAppointments(c.Context(), upcoming)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetAppointments, err)
	}

	return presenters.SuccessResponse(c, appointments, fiber.StatusOK, domain.MessageSuccessGetAppointments)
}

func (h *appointmentHandler) AddAppointment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddAppointmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddAppointment, err)
	}

	res, err := h.appointmentService.AddAppointment(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddAppointment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddAppointment)
}

func (h *appointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateAppointmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAppointment, err)
	}

	res, err := h.appointmentService.UpdateAppointment(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAppointment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateAppointment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAppointment)
}

func (h *appointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	id, err := strconv.Atoi(c.Query("id", ""))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAppointment, domain.ErrAppointmentIDRequired)
	}

	if err := h.appointmentService.DeleteAppointment(c.Context(), uint(id), userID); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteAppointment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteAppointment, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"success": true}, fiber.StatusOK, domain.MessageSuccessDeleteAppointment)
}
