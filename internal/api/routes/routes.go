package routes

import (
	"event-decor-backend/internal/api/handlers"
	"event-decor-backend/internal/api/middleware"
	"event-decor-backend/internal/config"
	"event-decor-backend/internal/repository"
	"event-decor-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	scheduleRepo := repository.NewScheduleEntryRepository(db)
	bookingRepo := repository.NewVenueBookingRepository(db)
	availabilityRepo := repository.NewVenueAvailabilityRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryItemRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	venueService := service.NewVenueService(venueRepo, validator)
	scheduleService := service.NewScheduleService(scheduleRepo, employeeRepo, validator)
	bookingService := service.NewBookingService(bookingRepo, venueRepo, validator)
	availabilityService := service.NewAvailabilityService(availabilityRepo, venueRepo, validator)
	orderService := service.NewOrderService(orderRepo, validator)
	inventoryService := service.NewInventoryService(inventoryRepo, validator)
	vendorService := service.NewVendorService(vendorRepo, validator)
	reportService := service.NewReportService(scheduleRepo, bookingRepo, orderRepo, inventoryRepo, employeeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, scheduleService)
	venueHandler := handlers.NewVenueHandler(venueService, bookingService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		schedules := v1.Group("/schedules")
		{
			schedules.POST("", scheduleHandler.Create)
			schedules.POST("/bulk", scheduleHandler.CreateBulk)
			schedules.GET("", scheduleHandler.List)
			schedules.GET("/:id", scheduleHandler.GetByID)
			schedules.PUT("/:id", scheduleHandler.Update)
			schedules.PATCH("/:id/status", scheduleHandler.UpdateStatus)
			schedules.DELETE("/:id", scheduleHandler.Delete)
		}

		bookings := v1.Group("/bookings")
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/:id", bookingHandler.GetByID)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.GetByID)
			employees.GET("/:id/schedules", employeeHandler.GetSchedules)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		venues := v1.Group("/venues")
		{
			venues.POST("", venueHandler.Create)
			venues.GET("", venueHandler.List)
			venues.GET("/:id", venueHandler.GetByID)
			venues.GET("/:id/bookings", venueHandler.GetBookings)
			venues.GET("/:id/availability", availabilityHandler.GetCalendar)
			venues.PUT("/:id/availability/:date", availabilityHandler.SetDay)
			venues.PUT("/:id", venueHandler.Update)
			venues.DELETE("/:id", venueHandler.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.GetByID)
			orders.PUT("/:id", orderHandler.Update)
			orders.PATCH("/:id/payment", orderHandler.RecordPayment)
			orders.DELETE("/:id", orderHandler.Delete)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", inventoryHandler.Create)
			inventory.GET("", inventoryHandler.List)
			inventory.GET("/:id", inventoryHandler.GetByID)
			inventory.PUT("/:id", inventoryHandler.Update)
			inventory.DELETE("/:id", inventoryHandler.Delete)
		}

		vendors := v1.Group("/vendors")
		{
			vendors.POST("", vendorHandler.Create)
			vendors.GET("", vendorHandler.List)
			vendors.GET("/:id", vendorHandler.GetByID)
			vendors.PUT("/:id", vendorHandler.Update)
			vendors.DELETE("/:id", vendorHandler.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/schedule-calendar", reportHandler.ScheduleCalendar)
			reports.GET("/schedule-calendar/export", reportHandler.ExportScheduleCalendar)
			reports.GET("/bookings", reportHandler.BookingSummary)
			reports.GET("/financial", reportHandler.Financial)
			reports.GET("/inventory", reportHandler.Inventory)
		}
	}

	return router
}
