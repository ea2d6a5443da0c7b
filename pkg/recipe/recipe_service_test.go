package recipe

import (
	"context"
	"testing"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeRepo struct {
	recipes []entities.Recipe
	nextID  uint
}

func (f *fakeRecipeRepo) AddRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.nextID++
	recipe.ID = f.nextID
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

func (f *fakeRecipeRepo) GetRecipes(_ context.Context, category string) ([]entities.Recipe, error) {
	if category == "" {
		return f.recipes, nil
	}
	var res []entities.Recipe
	for _, r := range f.recipes {
		if r.Category == category {
			res = append(res, r)
		}
	}
	return res, nil
}

func (f *fakeRecipeRepo) GetRecipesByIDs(_ context.Context, _ []uint) ([]entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeRecipeRepo) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	for i := range f.recipes {
		if f.recipes[i].ID == recipe.ID {
			f.recipes[i] = *recipe
			return nil
		}
	}
	return domain.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) DeleteRecipe(_ context.Context, id uint) error {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecipeNotFound
}

func TestAddRecipe_DefaultsAndRoundTrip(t *testing.T) {
	repo := &fakeRecipeRepo{}
	s := NewRecipeService(repo)

	res, err := s.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name: "Ghormeh Sabzi",
		Ingredients: []domain.RecipeIngredient{
			{Name: "Kräuter", Quantity: 500, Unit: "g"},
			{Name: "Limetten", Quantity: 4, Unit: "Stück", Optional: true},
		},
		Instructions: []string{"Kräuter anbraten", "Schmoren lassen"},
	})
	require.NoError(t, err)

	assert.Equal(t, "other", res.Category)
	assert.Equal(t, 4, res.Servings)
	assert.Equal(t, 30, res.PrepTimeMinutes)
	require.Len(t, res.Ingredients, 2)
	assert.True(t, res.Ingredients[1].Optional)
	assert.Equal(t, []string{"Kräuter anbraten", "Schmoren lassen"}, res.Instructions)
	assert.Empty(t, res.Tags)
}

func TestToDomain_EmptyColumns(t *testing.T) {
	r, err := ToDomain(&entities.Recipe{ID: 1, Name: "Leer"})
	require.NoError(t, err)
	assert.Empty(t, r.Ingredients)
	assert.Empty(t, r.Instructions)
	assert.Empty(t, r.Tags)
}

func TestGetRecipes_SearchMatchesNameOrTags(t *testing.T) {
	repo := &fakeRecipeRepo{}
	s := NewRecipeService(repo)

	_, err := s.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name:         "Spaghetti Carbonara",
		Category:     "italian",
		Ingredients:  []domain.RecipeIngredient{{Name: "Spaghetti", Quantity: 500, Unit: "g"}},
		Instructions: []string{"Kochen"},
		Tags:         []string{"schnell"},
	})
	require.NoError(t, err)
	_, err = s.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name:         "Onigiri",
		Category:     "japanese",
		Ingredients:  []domain.RecipeIngredient{{Name: "Reis", Quantity: 300, Unit: "g"}},
		Instructions: []string{"Formen"},
		Tags:         []string{"meal-prep"},
	})
	require.NoError(t, err)

	byName, err := s.GetRecipes(context.Background(), "", "carbo")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Spaghetti Carbonara", byName[0].Name)

	byTag, err := s.GetRecipes(context.Background(), "", "MEAL")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, "Onigiri", byTag[0].Name)

	byCategory, err := s.GetRecipes(context.Background(), "italian", "")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	none, err := s.GetRecipes(context.Background(), "", "pizza")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateRecipe_ReplacesIngredientList(t *testing.T) {
	repo := &fakeRecipeRepo{}
	s := NewRecipeService(repo)

	created, err := s.AddRecipe(context.Background(), domain.AddRecipeRequest{
		Name:         "Suppe",
		Ingredients:  []domain.RecipeIngredient{{Name: "Lauch", Quantity: 1, Unit: "Stück"}},
		Instructions: []string{"Kochen"},
	})
	require.NoError(t, err)

	newIngredients := []domain.RecipeIngredient{
		{Name: "Lauch", Quantity: 2, Unit: "Stück"},
		{Name: "Kartoffeln", Quantity: 400, Unit: "g"},
	}
	updated, err := s.UpdateRecipe(context.Background(), domain.UpdateRecipeRequest{
		ID:          created.ID,
		Ingredients: &newIngredients,
	})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 2)
	assert.Equal(t, "Suppe", updated.Name)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	s := NewRecipeService(&fakeRecipeRepo{})

	_, err := s.UpdateRecipe(context.Background(), domain.UpdateRecipeRequest{ID: 9})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
