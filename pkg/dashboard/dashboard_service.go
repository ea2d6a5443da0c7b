package dashboard

import (
	"context"
	"math"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/pkg/appointment"
	"Household-Planner-Backend/pkg/mealplan"
	"Household-Planner-Backend/pkg/task"
)

type (
	DashboardService interface {
		GetDashboard(ctx context.Context) (domain.DashboardResponse, error)
	}

	dashboardService struct {
		taskRepository        task.TaskRepository
		appointmentRepository appointment.AppointmentRepository
		mealRepository        mealplan.MealRepository
		now                   func() time.Time
	}
)

func NewDashboardService(
	taskRepository task.TaskRepository,
	appointmentRepository appointment.AppointmentRepository,
	mealRepository mealplan.MealRepository,
) DashboardService {
	return &dashboardService{
		taskRepository:        taskRepository,
		appointmentRepository: appointmentRepository,
		mealRepository:        mealRepository,
		now:                   time.Now,
	}
}

// GetDashboard composes today's tasks, appointments and meals plus the
// appointments of the coming seven days into a single read-only view.
func (s *dashboardService) GetDashboard(ctx context.Context) (domain.DashboardResponse, error) {
	now := s.now()
	today := now.Format("2006-01-02")
	weekAhead := now.AddDate(0, 0, 7).Format("2006-01-02")

	tasks, err := s.taskRepository.GetTasksByDate(ctx, today)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	appointmentsToday, err := s.appointmentRepository.GetAppointmentsByDate(ctx, today)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	appointmentsUpcoming, err := s.appointmentRepository.GetAppointmentsBetween(ctx, today, weekAhead)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	mealRows, err := s.mealRepository.GetMealsByDates(ctx, []string{today})
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	meals := make([]domain.Meal, 0, len(mealRows))
	for i := range mealRows {
		meals = append(meals, domain.Meal{
			ID:          mealRows[i].ID,
			Date:        mealRows[i].Date,
			Slot:        mealRows[i].Slot,
			Description: mealRows[i].Description,
			RecipeID:    mealRows[i].RecipeID,
			Done:        mealRows[i].Done,
		})
	}

	done := 0
	for i := range tasks {
		if tasks[i].Done {
			done++
		}
	}

	return domain.DashboardResponse{
		Date:                 today,
		Tasks:                tasks,
		AppointmentsToday:    appointmentsToday,
		AppointmentsUpcoming: appointmentsUpcoming,
		Meals:                meals,
		Progress: domain.DashboardProgress{
			Done:    done,
			Total:   len(tasks),
			Percent: completionPercent(done, len(tasks)),
		},
	}, nil
}

// completionPercent is done/total rounded to the nearest integer, with 0
// for an empty day.
func completionPercent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
