package shopping

import (
	"context"
	"time"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/entities"
	"Household-Planner-Backend/pkg/mealplan"
	"Household-Planner-Backend/pkg/recipe"
)

type (
	ShoppingService interface {
		GetItems(ctx context.Context) ([]entities.ShoppingItem, error)
		AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (*entities.ShoppingItem, error)
		UpdateItem(ctx context.Context, req domain.UpdateShoppingItemRequest) (*entities.ShoppingItem, error)
		DeleteItem(ctx context.Context, id uint) error
		ClearDone(ctx context.Context) error
		GenerateFromMealPlan(ctx context.Context, week string) (domain.GenerateShoppingListResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		mealRepository     mealplan.MealRepository
		recipeRepository   recipe.RecipeRepository
		splitUnits         bool
		now                func() time.Time
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	mealRepository mealplan.MealRepository,
	recipeRepository recipe.RecipeRepository,
	splitUnits bool,
) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		mealRepository:     mealRepository,
		recipeRepository:   recipeRepository,
		splitUnits:         splitUnits,
		now:                time.Now,
	}
}

func (s *shoppingService) GetItems(ctx context.Context) ([]entities.ShoppingItem, error) {
	return s.shoppingRepository.GetItems(ctx)
}

func (s *shoppingService) AddItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (*entities.ShoppingItem, error) {
	if req.Category == "" {
		req.Category = domain.ShoppingCategoryOther
	}

	item := &entities.ShoppingItem{
		UserID:   &userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Category: req.Category,
	}

	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingService) UpdateItem(ctx context.Context, req domain.UpdateShoppingItemRequest) (*entities.ShoppingItem, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Done != nil {
		item.Done = *req.Done
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingService) DeleteItem(ctx context.Context, id uint) error {
	return s.shoppingRepository.DeleteItem(ctx, id)
}

func (s *shoppingService) ClearDone(ctx context.Context) error {
	return s.shoppingRepository.ClearDone(ctx)
}

// GenerateFromMealPlan aggregates the ingredients of every recipe planned
// for the given week and appends the ones not already covered by the
// existing list. Item creation is not transactional: a failure partway
// through leaves the items created so far in place.
func (s *shoppingService) GenerateFromMealPlan(ctx context.Context, week string) (domain.GenerateShoppingListResponse, error) {
	if week == "" {
		week = mealplan.CurrentWeek(s.now())
	}

	year, weekNum, err := mealplan.ParseWeek(week)
	if err != nil {
		return domain.GenerateShoppingListResponse{}, err
	}
	dates := mealplan.WeekDates(year, weekNum)

	meals, err := s.mealRepository.GetMealsByDates(ctx, dates)
	if err != nil {
		return domain.GenerateShoppingListResponse{}, err
	}

	recipes, err := s.recipesFor(ctx, meals)
	if err != nil {
		return domain.GenerateShoppingListResponse{}, err
	}

	existing, err := s.shoppingRepository.GetItems(ctx)
	if err != nil {
		return domain.GenerateShoppingListResponse{}, err
	}

	merged, skipped := aggregateIngredients(meals, recipes, s.splitUnits)

	res := domain.GenerateShoppingListResponse{
		Success:      true,
		Items:        []entities.ShoppingItem{},
		SkippedMeals: skipped,
	}

	for _, ing := range merged {
		if covered(existing, ing.Key) {
			continue
		}

		item := &entities.ShoppingItem{
			Name:      itemName(ing.Key),
			Quantity:  quantityText(ing.Quantity, ing.Unit),
			Category:  domain.ShoppingCategoryThisWeek,
			Generated: true,
		}
		if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
			return domain.GenerateShoppingListResponse{}, err
		}

		res.Items = append(res.Items, *item)
		res.Added++
	}

	return res, nil
}

func covered(existing []entities.ShoppingItem, key string) bool {
	for i := range existing {
		if looseMatch(existing[i].Name, key) {
			return true
		}
	}
	return false
}

func (s *shoppingService) recipesFor(ctx context.Context, meals []entities.Meal) (map[uint]domain.Recipe, error) {
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
