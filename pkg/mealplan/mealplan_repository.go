package mealplan

import (
	"context"
	"errors"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		AddMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id uint) (*entities.Meal, error)
		GetMealsByDates(ctx context.Context, dates []string) ([]entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id uint) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) AddMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id uint) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) GetMealsByDates(ctx context.Context, dates []string) ([]entities.Meal, error) {
	var meals []entities.Meal
	if err := r.db.WithContext(ctx).
		Where("date IN ?", dates).
		Order("date asc, slot asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
