package recipe

import (
	"context"
	"encoding/json"
	"strings"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, category, search string) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.Recipe, error)
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

// ToDomain decodes the JSON text columns of a stored recipe into its
// API representation. Used by the meal-plan and shopping services as well.
func ToDomain(e *entities.Recipe) (domain.Recipe, error) {
	res := domain.Recipe{
		ID:              e.ID,
		Name:            e.Name,
		Category:        e.Category,
		Servings:        e.Servings,
		PrepTimeMinutes: e.PrepTimeMinutes,
		Ingredients:     []domain.RecipeIngredient{},
		Instructions:    []string{},
		Tags:            []string{},
		CreatedAt:       e.CreatedAt,
	}

	if e.Ingredients != "" {
		if err := json.Unmarshal([]byte(e.Ingredients), &res.Ingredients); err != nil {
			return domain.Recipe{}, err
		}
	}
	if e.Instructions != "" {
		if err := json.Unmarshal([]byte(e.Instructions), &res.Instructions); err != nil {
			return domain.Recipe{}, err
		}
	}
	if e.Tags != "" {
		if err := json.Unmarshal([]byte(e.Tags), &res.Tags); err != nil {
			return domain.Recipe{}, err
		}
	}

	return res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, category, search string) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, category)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	res := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		r, err := ToDomain(&recipes[i])
		if err != nil {
			return nil, err
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		res = append(res, r)
	}

	return res, nil
}

// matchesSearch reports whether the lowercased search term occurs in the
// recipe name or any of its tags.
func matchesSearch(r domain.Recipe, search string) bool {
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.Recipe, error) {
	e, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	return ToDomain(e)
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.Recipe, error) {
	if req.Category == "" {
		req.Category = "other"
	}
	if req.Servings == 0 {
		req.Servings = 4
	}
	if req.PrepTimeMinutes == 0 {
		req.PrepTimeMinutes = 30
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}
	instructions, err := json.Marshal(req.Instructions)
	if err != nil {
		return domain.Recipe{}, err
	}
	tags, err := json.Marshal(req.Tags)
	if err != nil {
		return domain.Recipe{}, err
	}

	e := &entities.Recipe{
		Name:            req.Name,
		Category:        req.Category,
		Servings:        req.Servings,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Ingredients:     string(ingredients),
		Instructions:    string(instructions),
		Tags:            string(tags),
	}

	if err := s.recipeRepository.AddRecipe(ctx, e); err != nil {
		return domain.Recipe{}, err
	}

	return ToDomain(e)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest) (domain.Recipe, error) {
	e, err := s.recipeRepository.GetRecipeByID(ctx, req.ID)
	if err != nil {
		return domain.Recipe{}, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Servings != nil {
		e.Servings = *req.Servings
	}
	if req.PrepTimeMinutes != nil {
		e.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.Ingredients != nil {
		ingredients, err := json.Marshal(*req.Ingredients)
		if err != nil {
			return domain.Recipe{}, err
		}
		e.Ingredients = string(ingredients)
	}
	if req.Instructions != nil {
		instructions, err := json.Marshal(*req.Instructions)
		if err != nil {
			return domain.Recipe{}, err
		}
		e.Instructions = string(instructions)
	}
	if req.Tags != nil {
		tags, err := json.Marshal(*req.Tags)
		if err != nil {
			return domain.Recipe{}, err
		}
		e.Tags = string(tags)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, e); err != nil {
		return domain.Recipe{}, err
	}

	return ToDomain(e)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return s.recipeRepository.DeleteRecipe(ctx, id)
}
