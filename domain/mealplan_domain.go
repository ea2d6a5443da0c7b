package domain

import (
	"errors"
)

// A full week of meals covers breakfast, lunch and dinner for seven days.
const TargetServingsPerWeek = 14

var (
	MessageSuccessGetMealPlan = "meal plan retrieved successfully"
	MessageSuccessAddMeal     = "meal added successfully"
	MessageSuccessUpdateMeal  = "meal updated successfully"
	MessageSuccessDeleteMeal  = "meal deleted successfully"

	MessageFailedGetMealPlan = "failed to retrieve meal plan"
	MessageFailedAddMeal     = "failed to add meal"
	MessageFailedUpdateMeal  = "failed to update meal"
	MessageFailedDeleteMeal  = "failed to delete meal"

	ErrMealNotFound         = errors.New("meal not found")
	ErrMealIDRequired       = errors.New("meal id required")
	ErrInvalidWeekSpecifier = errors.New("invalid week specifier, expected YYYY-Wnn")
)

type (
	AddMealRequest struct {
		Date        string `json:"date" validate:"required,datetime=2006-01-02"`
		Slot        string `json:"slot" validate:"required,oneof=breakfast lunch dinner"`
		Description string `json:"description"`
		RecipeID    *uint  `json:"recipe_id"`
	}

	UpdateMealRequest struct {
		ID          uint    `json:"id" validate:"required"`
		Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
		Slot        *string `json:"slot" validate:"omitempty,oneof=breakfast lunch dinner"`
		Description *string `json:"description"`
		RecipeID    *uint   `json:"recipe_id"`
		Done        *bool   `json:"done"`
	}

	Meal struct {
		ID          uint    `json:"id"`
		Date        string  `json:"date"`
		Slot        string  `json:"slot"`
		Description string  `json:"description,omitempty"`
		RecipeID    *uint   `json:"recipe_id,omitempty"`
		Done        bool    `json:"done"`
		Recipe      *Recipe `json:"recipe,omitempty"`
	}

	WeekPlanResponse struct {
		Week           string   `json:"week"`
		Dates          []string `json:"dates"`
		Meals          []Meal   `json:"meals"`
		TotalServings  int      `json:"total_servings"`
		TargetServings int      `json:"target_servings"`
	}
)
