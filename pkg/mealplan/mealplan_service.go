package mealplan

import (
	"context"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
	"Household-Planner-Backend/pkg/recipe"
)

type (
	MealPlanService interface {
		GetWeekPlan(ctx context.Context, week string) (domain.WeekPlanResponse, error)
		AddMeal(ctx context.Context, req domain.AddMealRequest) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, req domain.UpdateMealRequest) (*entities.Meal, error)
		DeleteMeal(ctx context.Context, id uint) error
	}

	mealPlanService struct {
		mealRepository   MealRepository
		recipeRepository recipe.RecipeRepository
		now              func() time.Time
	}
)

func NewMealPlanService(mealRepository MealRepository, recipeRepository recipe.RecipeRepository) MealPlanService {
	return &mealPlanService{
		mealRepository:   mealRepository,
		recipeRepository: recipeRepository,
		now:              time.Now,
	}
}

func (s *mealPlanService) GetWeekPlan(ctx context.Context, week string) (domain.WeekPlanResponse, error) {
	if week == "" {
		week = CurrentWeek(s.now())
	}

	year, weekNum, err := ParseWeek(week)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}
	dates := WeekDates(year, weekNum)

	meals, err := s.mealRepository.GetMealsByDates(ctx, dates)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}

	recipes, err := s.recipesFor(ctx, meals)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}

	res := domain.WeekPlanResponse{
		Week:           week,
		Dates:          dates,
		Meals:          make([]domain.Meal, 0, len(meals)),
		TargetServings: domain.TargetServingsPerWeek,
	}

	for i := range meals {
		m := domain.Meal{
			ID:          meals[i].ID,
			Date:        meals[i].Date,
			Slot:        meals[i].Slot,
			Description: meals[i].Description,
			RecipeID:    meals[i].RecipeID,
			Done:        meals[i].Done,
		}

		// A meal without a resolvable recipe still counts as one serving.
		servings := 1
		if meals[i].RecipeID != nil {
			if r, ok := recipes[*meals[i].RecipeID]; ok {
				m.Recipe = &r
				if r.Servings > 0 {
					servings = r.Servings
				}
			}
		}
		res.TotalServings += servings
		res.Meals = append(res.Meals, m)
	}

	return res, nil
}

// recipesFor resolves the distinct recipes referenced by the given meals.
// Dangling references simply stay absent from the map.
func (s *mealPlanService) recipesFor(ctx context.Context, meals []entities.Meal) (map[uint]domain.Recipe, error) {
	ids := make([]uint, 0, len(meals))
	seen := make(map[uint]bool)
	for i := range meals {
		if meals[i].RecipeID == nil || seen[*meals[i].RecipeID] {
			continue
		}
		seen[*meals[i].RecipeID] = true
		ids = append(ids, *meals[i].RecipeID)
	}

	rows, err := s.recipeRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	recipes := make(map[uint]domain.Recipe, len(rows))
	for i := range rows {
		r, err := recipe.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		recipes[rows[i].ID] = r
	}
	return recipes, nil
}

func (s *mealPlanService) AddMeal(ctx context.Context, req domain.AddMealRequest) (*entities.Meal, error) {
	meal := &entities.Meal{
		Date:        req.Date,
		Slot:        req.Slot,
		Description: req.Description,
		RecipeID:    req.RecipeID,
	}

	if err := s.mealRepository.AddMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *mealPlanService) UpdateMeal(ctx context.Context, req domain.UpdateMealRequest) (*entities.Meal, error) {
	meal, err := s.mealRepository.GetMealByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		meal.Date = *req.Date
	}
	if req.Slot != nil {
		meal.Slot = *req.Slot
	}
	if req.Description != nil {
		meal.Description = *req.Description
	}
	if req.RecipeID != nil {
		meal.RecipeID = req.RecipeID
	}
	if req.Done != nil {
		meal.Done = *req.Done
	}

	if err := s.mealRepository.UpdateMeal(ctx, meal); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *mealPlanService) DeleteMeal(ctx context.Context, id uint) error {
	return s.mealRepository.DeleteMeal(ctx, id)
}
