package mealplan

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMealRepo struct {
	meals  []entities.Meal
	nextID uint
}

func (f *fakeMealRepo) AddMeal(_ context.Context, meal *entities.Meal) error {
	f.nextID++
	meal.ID = f.nextID
	f.meals = append(f.meals, *meal)
	return nil
}

func (f *fakeMealRepo) GetMealByID(_ context.Context, id uint) (*entities.Meal, error) {
	for i := range f.meals {
		if f.meals[i].ID == id {
			meal := f.meals[i]
			return &meal, nil
		}
	}
	return nil, domain.ErrMealNotFound
}

func (f *fakeMealRepo) GetMealsByDates(_ context.Context, dates []string) ([]entities.Meal, error) {
	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
	}
	var res []entities.Meal
	for _, m := range f.meals {
		if wanted[m.Date] {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *fakeMealRepo) UpdateMeal(_ context.Context, meal *entities.Meal) error {
	for i := range f.meals {
		if f.meals[i].ID == meal.ID {
			f.meals[i] = *meal
			return nil
		}
	}
	return domain.ErrMealNotFound
}

func (f *fakeMealRepo) DeleteMeal(_ context.Context, id uint) error {
	for i := range f.meals {
		if f.meals[i].ID == id {
			f.meals = append(f.meals[:i], f.meals[i+1:]...)
			return nil
		}
	}
	return domain.ErrMealNotFound
}

type fakeRecipeRepo struct {
	recipes []entities.Recipe
}

func (f *fakeRecipeRepo) AddRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes = append(f.recipes, *recipe)
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(_ context.Context, id uint) (*entities.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			r := f.recipes[i]
			return &r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) GetRecipes(_ context.Context, _ string) ([]entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeRecipeRepo) GetRecipesByIDs(_ context.Context, ids []uint) ([]entities.Recipe, error) {
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var res []entities.Recipe
	for _, r := range f.recipes {
		if wanted[r.ID] {
			res = append(res, r)
		}
	}
	return res, nil
}

func (f *fakeRecipeRepo) UpdateRecipe(_ context.Context, _ *entities.Recipe) error { return nil }
func (f *fakeRecipeRepo) DeleteRecipe(_ context.Context, _ uint) error             { return nil }

func uintPtr(v uint) *uint {
	return &v
}

func storedRecipe(t *testing.T, id uint, name string, servings int) entities.Recipe {
	t.Helper()
	ingredients, err := json.Marshal([]domain.RecipeIngredient{
		{Name: "Reis", Quantity: 200, Unit: "g"},
	})
	require.NoError(t, err)
	return entities.Recipe{
		ID:          id,
		Name:        name,
		Servings:    servings,
		Ingredients: string(ingredients),
	}
}

func newTestService(mealRepo *fakeMealRepo, recipeRepo *fakeRecipeRepo) *mealPlanService {
	return &mealPlanService{
		mealRepository:   mealRepo,
		recipeRepository: recipeRepo,
		now:              func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) },
	}
}

func TestGetWeekPlan(t *testing.T) {
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(1)},
		{ID: 2, Date: "2026-01-06", Slot: "dinner", Description: "leftovers"},
		{ID: 3, Date: "2026-01-20", Slot: "lunch"}, // outside the week
	}, nextID: 3}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		storedRecipe(t, 1, "Reisgericht", 4),
	}}

	s := newTestService(mealRepo, recipeRepo)

	res, err := s.GetWeekPlan(context.Background(), "2026-W02")
	require.NoError(t, err)

	assert.Equal(t, "2026-W02", res.Week)
	require.Len(t, res.Dates, 7)
	assert.Equal(t, "2026-01-05", res.Dates[0])
	assert.Equal(t, "2026-01-11", res.Dates[6])

	require.Len(t, res.Meals, 2)
	require.NotNil(t, res.Meals[0].Recipe)
	assert.Equal(t, "Reisgericht", res.Meals[0].Recipe.Name)
	assert.Len(t, res.Meals[0].Recipe.Ingredients, 1)
	assert.Nil(t, res.Meals[1].Recipe)

	// 4 servings from the recipe plus 1 for the recipe-less meal.
	assert.Equal(t, 5, res.TotalServings)
	assert.Equal(t, domain.TargetServingsPerWeek, res.TargetServings)
}

func TestGetWeekPlan_DanglingRecipeCountsAsOneServing(t *testing.T) {
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(99)},
	}, nextID: 1}

	s := newTestService(mealRepo, &fakeRecipeRepo{})

	res, err := s.GetWeekPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	require.Len(t, res.Meals, 1)
	assert.Nil(t, res.Meals[0].Recipe)
	assert.Equal(t, 1, res.TotalServings)
}

func TestGetWeekPlan_DefaultsToCurrentWeek(t *testing.T) {
	s := newTestService(&fakeMealRepo{}, &fakeRecipeRepo{})

	res, err := s.GetWeekPlan(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2026-W02", res.Week)
}

func TestGetWeekPlan_InvalidWeek(t *testing.T) {
	s := newTestService(&fakeMealRepo{}, &fakeRecipeRepo{})

	_, err := s.GetWeekPlan(context.Background(), "2026-02")
	assert.ErrorIs(t, err, domain.ErrInvalidWeekSpecifier)
}

func TestAddMeal(t *testing.T) {
	mealRepo := &fakeMealRepo{}
	s := newTestService(mealRepo, &fakeRecipeRepo{})

	meal, err := s.AddMeal(context.Background(), domain.AddMealRequest{
		Date:     "2026-01-05",
		Slot:     "breakfast",
		RecipeID: uintPtr(1),
	})
	require.NoError(t, err)
	assert.NotZero(t, meal.ID)
	assert.Equal(t, "breakfast", meal.Slot)
	assert.False(t, meal.Done)
}

func TestUpdateMeal(t *testing.T) {
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch"},
	}, nextID: 1}
	s := newTestService(mealRepo, &fakeRecipeRepo{})

	done := true
	slot := "dinner"
	meal, err := s.UpdateMeal(context.Background(), domain.UpdateMealRequest{
		ID:   1,
		Slot: &slot,
		Done: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, "dinner", meal.Slot)
	assert.True(t, meal.Done)
	assert.Equal(t, "2026-01-05", meal.Date)
}

func TestUpdateMeal_NotFound(t *testing.T) {
	s := newTestService(&fakeMealRepo{}, &fakeRecipeRepo{})

	_, err := s.UpdateMeal(context.Background(), domain.UpdateMealRequest{ID: 7})
	assert.ErrorIs(t, err, domain.ErrMealNotFound)
}
