package appointment

import (
	"context"
	"errors"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"gorm.io/gorm"
)

type (
	AppointmentRepository interface {
		AddAppointment(ctx context.Context, appointment *entities.Appointment) error
		GetAppointments(ctx context.Context, upcomingFrom string) ([]entities.Appointment, error)
		GetAppointmentsByDate(ctx context.Context, date string) ([]entities.Appointment, error)
		GetAppointmentsBetween(ctx context.Context, after, until string) ([]entities.Appointment, error)
		GetAppointmentByID(ctx context.Context, id uint, userID string) (*entities.Appointment, error)
		UpdateAppointment(ctx context.Context, appointment *entities.Appointment) error
		DeleteAppointment(ctx context.Context, id uint, userID string) error
	}

	appointmentRepository struct {
		db *gorm.DB
	}
)

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) AddAppointment(ctx context.Context, appointment *entities.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// GetAppointments returns all appointments sorted by date and time. When
// upcomingFrom is set, only open appointments on or after that date are
// returned.
func (r *appointmentRepository) GetAppointments(ctx context.Context, upcomingFrom string) ([]entities.Appointment, error) {
	var appointments []entities.Appointment

	query := r.db.WithContext(ctx)
	if upcomingFrom != "" {
		query = query.Where("date >= ? AND done = ?", upcomingFrom, false)
	}

	if err := query.Order("date asc, time asc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) GetAppointmentsByDate(ctx context.Context, date string) ([]entities.Appointment, error) {
	var appointments []entities.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time asc").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// GetAppointmentsBetween returns appointments with after < date <= until,
// sorted by date.
func (r *appointmentRepository) GetAppointmentsBetween(ctx context.Context, after, until string) ([]entities.Appointment, error) {
	var appointments []entities.Appointment
	if err := r.db.WithContext(ctx).
		Where("date > ? AND date <= ?", after, until).
		Order("date asc").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) GetAppointmentByID(ctx context.Context, id uint, userID string) (*entities.Appointment, error) {
	var appointment entities.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateAppointment(ctx context.Context, appointment *entities.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) DeleteAppointment(ctx context.Context, id uint, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}
