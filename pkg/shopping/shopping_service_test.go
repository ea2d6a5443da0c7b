package shopping

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

type fakeShoppingRepo struct {
	items  []entities.ShoppingItem
	nextID uint
}

func (f *fakeShoppingRepo) AddItem(_ context.Context, item *entities.ShoppingItem) error {
	f.nextID++
	item.ID = f.nextID
	item.CreatedAt = time.Now()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeShoppingRepo) GetItems(_ context.Context) ([]entities.ShoppingItem, error) {
	return f.items, nil
}

func (f *fakeShoppingRepo) GetItemByID(_ context.Context, id uint) (*entities.ShoppingItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrShoppingItemNotFound
}

func (f *fakeShoppingRepo) UpdateItem(_ context.Context, item *entities.ShoppingItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return domain.ErrShoppingItemNotFound
}

func (f *fakeShoppingRepo) DeleteItem(_ context.Context, id uint) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrShoppingItemNotFound
}

func (f *fakeShoppingRepo) ClearDone(_ context.Context) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if !item.Done {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeMealRepo struct {
	meals []entities.Meal
}

func (f *fakeMealRepo) AddMeal(_ context.Context, meal *entities.Meal) error {
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

func (f *fakeMealRepo) UpdateMeal(_ context.Context, _ *entities.Meal) error { return nil }
func (f *fakeMealRepo) DeleteMeal(_ context.Context, _ uint) error          { return nil }

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

func recipeEntity(t *testing.T, id uint, name string, servings int, ingredients []domain.RecipeIngredient) entities.Recipe {
	t.Helper()
	encoded, err := json.Marshal(ingredients)
	require.NoError(t, err)
	return entities.Recipe{
		ID:          id,
		Name:        name,
		Servings:    servings,
		Ingredients: string(encoded),
	}
}

func newTestService(shoppingRepo *fakeShoppingRepo, mealRepo *fakeMealRepo, recipeRepo *fakeRecipeRepo, splitUnits bool) *shoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepo,
		mealRepository:     mealRepo,
		recipeRepository:   recipeRepo,
		splitUnits:         splitUnits,
		now:                func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) },
	}
}

func TestGenerateFromMealPlan_WeekScenario(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-12", Slot: "lunch", RecipeID: uintPtr(1)},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		recipeEntity(t, 1, "Reis mit Safran", 2, []domain.RecipeIngredient{
			{Name: "Reis", Quantity: 200, Unit: "g"},
			{Name: "Safran", Quantity: 1, Unit: "Prise", Optional: true},
		}),
	}}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	// 2026-01-12 is the Monday of ISO week 3.
	res, err := s.GenerateFromMealPlan(context.Background(), "2026-W03")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 0, res.SkippedMeals)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Reis", res.Items[0].Name)
	assert.Equal(t, "200 g", res.Items[0].Quantity)
	assert.Equal(t, domain.ShoppingCategoryThisWeek, res.Items[0].Category)
	assert.True(t, res.Items[0].Generated)
	assert.False(t, res.Items[0].Done)
	// Generation runs without an owner; the uuid column must stay NULL
	// rather than receive an empty string.
	assert.Nil(t, res.Items[0].UserID)
}

func TestGenerateFromMealPlan_MergesAcrossRecipes(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(1)},
		{ID: 2, Date: "2026-01-07", Slot: "dinner", RecipeID: uintPtr(2)},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		recipeEntity(t, 1, "Eintopf", 4, []domain.RecipeIngredient{
			{Name: "Zwiebeln", Quantity: 2, Unit: "Stück"},
		}),
		recipeEntity(t, 2, "Curry", 4, []domain.RecipeIngredient{
			{Name: "Zwiebeln", Quantity: 1, Unit: "Stück"},
		}),
	}}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	res, err := s.GenerateFromMealPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Zwiebeln", res.Items[0].Name)
	assert.Equal(t, "3 Stück", res.Items[0].Quantity)
}

func TestGenerateFromMealPlan_SkipsAlreadyListedItems(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{items: []entities.ShoppingItem{
		{ID: 1, Name: "REIS", Category: domain.ShoppingCategoryUrgent},
	}, nextID: 1}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(1)},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		recipeEntity(t, 1, "Reisgericht", 2, []domain.RecipeIngredient{
			{Name: "reis", Quantity: 200, Unit: "g"},
		}),
	}}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	res, err := s.GenerateFromMealPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Empty(t, res.Items)
	assert.Len(t, shoppingRepo.items, 1)
}

func TestGenerateFromMealPlan_RerunAddsNothing(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(1)},
		{ID: 2, Date: "2026-01-06", Slot: "dinner", RecipeID: uintPtr(2)},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		recipeEntity(t, 1, "Eintopf", 4, []domain.RecipeIngredient{
			{Name: "Zwiebeln", Quantity: 2, Unit: "Stück"},
			{Name: "Kartoffeln", Quantity: 500, Unit: "g"},
		}),
		recipeEntity(t, 2, "Curry", 4, []domain.RecipeIngredient{
			{Name: "Zwiebeln", Quantity: 1, Unit: "Stück"},
			{Name: "Reis", Quantity: 200, Unit: "g"},
		}),
	}}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	first, err := s.GenerateFromMealPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Added)

	second, err := s.GenerateFromMealPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Empty(t, second.Items)
	assert.Len(t, shoppingRepo.items, 3)
}

func TestGenerateFromMealPlan_CountsSkippedMeals(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		{ID: 1, Date: "2026-01-05", Slot: "lunch", RecipeID: uintPtr(42)},
		{ID: 2, Date: "2026-01-06", Slot: "dinner", Description: "eating out"},
	}}
	recipeRepo := &fakeRecipeRepo{}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	res, err := s.GenerateFromMealPlan(context.Background(), "2026-W02")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 1, res.SkippedMeals)
}

func TestGenerateFromMealPlan_DefaultsToCurrentWeek(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	mealRepo := &fakeMealRepo{meals: []entities.Meal{
		// 2026-01-07 lies in the week of the fixed test clock.
		{ID: 1, Date: "2026-01-07", Slot: "dinner", RecipeID: uintPtr(1)},
	}}
	recipeRepo := &fakeRecipeRepo{recipes: []entities.Recipe{
		recipeEntity(t, 1, "Suppe", 2, []domain.RecipeIngredient{
			{Name: "Lauch", Quantity: 1, Unit: "Stück"},
		}),
	}}

	s := newTestService(shoppingRepo, mealRepo, recipeRepo, false)

	res, err := s.GenerateFromMealPlan(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
}

func TestGenerateFromMealPlan_InvalidWeek(t *testing.T) {
	s := newTestService(&fakeShoppingRepo{}, &fakeMealRepo{}, &fakeRecipeRepo{}, false)

	_, err := s.GenerateFromMealPlan(context.Background(), "not-a-week")
	assert.ErrorIs(t, err, domain.ErrInvalidWeekSpecifier)
}

func TestAddItem_DefaultsCategory(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{}
	s := newTestService(shoppingRepo, &fakeMealRepo{}, &fakeRecipeRepo{}, false)

	item, err := s.AddItem(context.Background(), domain.AddShoppingItemRequest{Name: "Milch"}, "3b9b4f64-9a3e-4af2-b7b5-6f4bb49c2a01")
	require.NoError(t, err)
	assert.Equal(t, domain.ShoppingCategoryOther, item.Category)
	assert.False(t, item.Generated)
	assert.NotZero(t, item.ID)
	require.NotNil(t, item.UserID)
	assert.Equal(t, "3b9b4f64-9a3e-4af2-b7b5-6f4bb49c2a01", *item.UserID)
}

func TestClearDone(t *testing.T) {
	shoppingRepo := &fakeShoppingRepo{items: []entities.ShoppingItem{
		{ID: 1, Name: "Milch", Done: true},
		{ID: 2, Name: "Brot"},
	}, nextID: 2}
	s := newTestService(shoppingRepo, &fakeMealRepo{}, &fakeRecipeRepo{}, false)

	require.NoError(t, s.ClearDone(context.Background()))
	require.Len(t, shoppingRepo.items, 1)
	assert.Equal(t, "Brot", shoppingRepo.items[0].Name)
}
