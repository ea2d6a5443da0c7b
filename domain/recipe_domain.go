package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrRecipeIDRequired = errors.New("recipe id required")
)

type (
	RecipeIngredient struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"` // "g", "ml", "piece", "tbsp", "tsp"
		Optional bool    `json:"optional"`
	}

	Recipe struct {
		ID              uint               `json:"id"`
		Name            string             `json:"name"`
		Category        string             `json:"category"`
		Servings        int                `json:"servings"`
		PrepTimeMinutes int                `json:"prep_time_minutes"`
		Ingredients     []RecipeIngredient `json:"ingredients"`
		Instructions    []string           `json:"instructions"`
		Tags            []string           `json:"tags"`
		CreatedAt       time.Time          `json:"created_at"`
	}

	AddRecipeRequest struct {
		Name            string             `json:"name" validate:"required"`
		Category        string             `json:"category" validate:"omitempty,oneof=iranian italian japanese other"`
		Servings        int                `json:"servings" validate:"omitempty,min=1"`
		PrepTimeMinutes int                `json:"prep_time_minutes" validate:"omitempty,min=1"`
		Ingredients     []RecipeIngredient `json:"ingredients" validate:"required,dive"`
		Instructions    []string           `json:"instructions" validate:"required"`
		Tags            []string           `json:"tags"`
	}

	UpdateRecipeRequest struct {
		ID              uint                `json:"id" validate:"required"`
		Name            *string             `json:"name" validate:"omitempty"`
		Category        *string             `json:"category" validate:"omitempty,oneof=iranian italian japanese other"`
		Servings        *int                `json:"servings" validate:"omitempty,min=1"`
		PrepTimeMinutes *int                `json:"prep_time_minutes" validate:"omitempty,min=1"`
		Ingredients     *[]RecipeIngredient `json:"ingredients" validate:"omitempty,dive"`
		Instructions    *[]string           `json:"instructions"`
		Tags            *[]string           `json:"tags"`
	}
)
