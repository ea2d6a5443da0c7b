package domain

import (
	"errors"

	"Household-Planner-Backend/entities"
)

const (
	ShoppingCategoryUrgent   = "urgent"
	ShoppingCategoryThisWeek = "this-week"
	ShoppingCategoryOther    = "other"
)

var (
	MessageSuccessGetShoppingItems   = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessClearDoneItems     = "completed items cleared"
	MessageSuccessGenerateList       = "shopping list generated from meal plan"

	MessageFailedGetShoppingItems   = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"
	MessageFailedClearDoneItems     = "failed to clear completed items"
	MessageFailedGenerateList       = "failed to generate shopping list"

	ErrShoppingItemNotFound   = errors.New("shopping item not found")
	ErrShoppingItemIDRequired = errors.New("shopping item id required")
)

type (
	AddShoppingItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity"`
		Category string `json:"category" validate:"omitempty,oneof=urgent this-week other"`
	}

	UpdateShoppingItemRequest struct {
		ID       uint    `json:"id" validate:"required"`
		Name     *string `json:"name" validate:"omitempty"`
		Quantity *string `json:"quantity"`
		Category *string `json:"category" validate:"omitempty,oneof=urgent this-week other"`
		Done     *bool   `json:"done"`
	}

	GenerateShoppingListRequest struct {
		Week string `json:"week"`
	}

	GenerateShoppingListResponse struct {
		Success      bool                    `json:"success"`
		Added        int                     `json:"added"`
		Items        []entities.ShoppingItem `json:"items"`
		SkippedMeals int                     `json:"skipped_meals"`
	}
)
