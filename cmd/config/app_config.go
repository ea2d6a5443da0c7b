package config

import (
	"os"
	"time"

	"Household-Planner-Backend/internal/api/handlers"
	"Household-Planner-Backend/internal/api/routes"
	"Household-Planner-Backend/internal/middleware"
	"Household-Planner-Backend/internal/utils"
	"Household-Planner-Backend/pkg/appointment"
	"Household-Planner-Backend/pkg/dashboard"
	"Household-Planner-Backend/pkg/jwt"
	"Household-Planner-Backend/pkg/mealplan"
	"Household-Planner-Backend/pkg/recipe"
	"Household-Planner-Backend/pkg/shopping"
	"Household-Planner-Backend/pkg/task"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Berlin",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	splitUnits := utils.GetConfig("SPLIT_UNITS") == "true"

	// Repository
	taskRepository := task.NewTaskRepository(db)
	appointmentRepository := appointment.NewAppointmentRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealRepository := mealplan.NewMealRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	taskService := task.NewTaskService(taskRepository)
	appointmentService := appointment.NewAppointmentService(appointmentRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	mealPlanService := mealplan.NewMealPlanService(mealRepository, recipeRepository)
	shoppingService := shopping.NewShoppingService(shoppingRepository, mealRepository, recipeRepository, splitUnits)
	dashboardService := dashboard.NewDashboardService(taskRepository, appointmentRepository, mealRepository)

	// Handler
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		TaskHandler:        taskHandler,
		AppointmentHandler: appointmentHandler,
		RecipeHandler:      recipeHandler,
		MealPlanHandler:    mealPlanHandler,
		ShoppingHandler:    shoppingHandler,
		DashboardHandler:   dashboardHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
