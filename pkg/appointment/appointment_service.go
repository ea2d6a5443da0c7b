package appointment

import (
	"context"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
)

type (
	AppointmentService interface {
		GetAppointments(ctx context.Context, upcoming bool) ([]entities.Appointment, error)
		AddAppointment(ctx context.Context, req domain.AddAppointmentRequest, userID string) (*entities.Appointment, error)
		UpdateAppointment(ctx context.Context, req domain.UpdateAppointmentRequest, userID string) (*entities.Appointment, error)
		DeleteAppointment(ctx context.Context, id uint, userID string) error
	}

	appointmentService struct {
		appointmentRepository AppointmentRepository
		now                   func() time.Time
	}
)

func NewAppointmentService(appointmentRepository AppointmentRepository) AppointmentService {
	return &appointmentService{
		appointmentRepository: appointmentRepository,
		now:                   time.Now,
	}
}

func (s *appointmentService) GetAppointments(ctx context.Context, upcoming bool) ([]entities.Appointment, error) {
	from := ""
	if upcoming {
		from = s.now().Format("2006-01-02")
	}
	return s.appointmentRepository.GetAppointments(ctx, from)
}

func (s *appointmentService) AddAppointment(ctx context.Context, req domain.AddAppointmentRequest, userID string) (*entities.Appointment, error) {
	appointment := &entities.Appointment{
		UserID:   userID,
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
	}

	if err := s.appointmentRepository.AddAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, req domain.UpdateAppointmentRequest, userID string) (*entities.Appointment, error) {
	appointment, err := s.appointmentRepository.GetAppointmentByID(ctx, req.ID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Location != nil {
		appointment.Location = *req.Location
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Done != nil {
		appointment.Done = *req.Done
	}

	if err := s.appointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id uint, userID string) error {
	return s.appointmentRepository.DeleteAppointment(ctx, id, userID)
}
