package routes

import (
	"Household-Planner-Backend/internal/api/handlers"
	"Household-Planner-Backend/internal/middleware"
	"Household-Planner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	TaskHandler        handlers.TaskHandler
	AppointmentHandler handlers.AppointmentHandler
	RecipeHandler      handlers.RecipeHandler
	MealPlanHandler    handlers.MealPlanHandler
	ShoppingHandler    handlers.ShoppingHandler
	DashboardHandler   handlers.DashboardHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Tasks()
	c.Appointments()
	c.Recipes()
	c.MealPlan()
	c.ShoppingList()
	c.Dashboard()
	c.GuestRoute()
}

func (c *Config) Tasks() {
	owner := c.Middleware.OwnerMiddleware(c.JWTService)
	tasks := c.App.Group("/api/v1/tasks")
	{
		tasks.Get("", c.TaskHandler.GetTasks)
		tasks.Post("", owner, c.TaskHandler.AddTask)
		tasks.Patch("", owner, c.TaskHandler.UpdateTask)
		tasks.Delete("", owner, c.TaskHandler.DeleteTask)
	}
}

func (c *Config) Appointments() {
	owner := c.Middleware.OwnerMiddleware(c.JWTService)
	appointments := c.App.Group("/api/v1/appointments")
	{
		appointments.Get("", c.AppointmentHandler.GetAppointments)
		appointments.Post("", owner, c.AppointmentHandler.AddAppointment)
		appointments.Patch("", owner, c.AppointmentHandler.UpdateAppointment)
		appointments.Delete("", owner, c.AppointmentHandler.DeleteAppointment)
	}
}

// Recipes and the meal plan are household-shared: no owner header needed.
func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Post("", c.RecipeHandler.AddRecipe)
		recipes.Patch("", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) MealPlan() {
	mealPlan := c.App.Group("/api/v1/meal-plan")
	{
		mealPlan.Get("", c.MealPlanHandler.GetWeekPlan)
		mealPlan.Post("", c.MealPlanHandler.AddMeal)
		mealPlan.Patch("", c.MealPlanHandler.UpdateMeal)
		mealPlan.Delete("", c.MealPlanHandler.DeleteMeal)
		mealPlan.Post("/shopping-list", c.ShoppingHandler.GenerateFromMealPlan)
	}
}

func (c *Config) ShoppingList() {
	owner := c.Middleware.OwnerMiddleware(c.JWTService)
	shoppingList := c.App.Group("/api/v1/shopping-list")
	{
		shoppingList.Get("", c.ShoppingHandler.GetItems)
		shoppingList.Post("", owner, c.ShoppingHandler.AddItem)
		shoppingList.Patch("", owner, c.ShoppingHandler.UpdateItem)
		shoppingList.Delete("", owner, c.ShoppingHandler.DeleteItem)
	}
}

func (c *Config) Dashboard() {
	c.App.Get("/api/v1/dashboard", c.DashboardHandler.GetDashboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
