package routes

import (
	"hrm/constants"
	"hrm/controllers"
	middlewares "hrm/middleware"
	"hrm/services"
	"hrm/services/logger"
	"hrm/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	log := logger.NewDefaultLogger(logger.InfoLevel)
	storage := services.NewCloudinaryStorage(cld, redisCli)
	accountService := services.NewAccountService(services.AccountServiceOptions{
		DB:     db,
		Logger: log,
	})
	vacationService := services.NewVacationService(services.VacationServiceOptions{
		DB:     db,
		Logger: log,
	})
	deletionService := services.NewDeletionService(services.DeletionServiceOptions{
		DB:       db,
		Storage:  storage,
		Identity: accountService,
		Logger:   log,
	})

	controllers.Init(controllers.Options{
		AccountService:  accountService,
		VacationService: vacationService,
		DeletionService: deletionService,
		Storage:         storage,
		Notifier:        notification.NewMelodyService(m),
	})

	admin := constants.RoleAdmin
	maintainer := constants.RoleMaintainer
	hr := constants.RoleHumanResources
	employee := constants.RoleEmployee

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.GoogleLogin)
	v1.DELETE("/auth/logout", controllers.Logout)

	v1.GET("/employees", middlewares.AuthMiddleware(admin, maintainer, hr), controllers.ListEmployees)
	v1.POST("/employees", middlewares.AuthMiddleware(admin), controllers.CreateEmployee)
	v1.GET("/employees/:uid", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetEmployee)
	v1.PUT("/employees/:uid", middlewares.AuthMiddleware(admin, hr), controllers.UpdateEmployee)
	v1.DELETE("/employees/:uid", middlewares.AuthMiddleware(admin), controllers.DeleteEmployee)

	v1.GET("/vacations", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListVacations)
	v1.GET("/employees/:uid/vacations/current", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetCurrentVacation)
	v1.PUT("/employees/:uid/vacations", middlewares.AuthMiddleware(admin, hr), controllers.UpsertVacationDays)

	v1.GET("/permissions", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListPermissions)
	v1.POST("/permissions", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.CreatePermission)
	v1.GET("/permissions/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetPermission)
	v1.PUT("/permissions/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.UpdatePermission)
	v1.PUT("/permissions/:id/status", middlewares.AuthMiddleware(admin, hr), controllers.UpdatePermissionStatus)
	v1.DELETE("/permissions/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.DeletePermission)

	v1.GET("/payments", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListPayments)
	v1.POST("/payments", middlewares.AuthMiddleware(admin, hr), controllers.CreatePayment)
	v1.GET("/payments/:id/receipt", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetReceipt)
	v1.PUT("/payments/:id/receipt", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.UploadReceipt)
	v1.DELETE("/payments/:id", middlewares.AuthMiddleware(admin), controllers.DeletePayment)

	v1.GET("/transactions", middlewares.AuthMiddleware(admin, maintainer, hr), controllers.ListTransactions)
	v1.POST("/transactions", middlewares.AuthMiddleware(admin, maintainer, hr), controllers.CreateTransaction)
	v1.GET("/transactions/:id", middlewares.AuthMiddleware(admin, maintainer, hr), controllers.GetTransaction)
	v1.PUT("/transactions/:id", middlewares.AuthMiddleware(admin, maintainer, hr), controllers.UpdateTransaction)
	v1.DELETE("/transactions/:id", middlewares.AuthMiddleware(admin), controllers.DeleteTransaction)

	v1.GET("/expenses", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListExpenses)
	v1.POST("/expenses", middlewares.AuthMiddleware(admin, hr), controllers.CreateExpense)
	v1.GET("/expenses/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetExpense)
	v1.PUT("/expenses/:id", middlewares.AuthMiddleware(admin, hr), controllers.UpdateExpense)
	v1.DELETE("/expenses/:id", middlewares.AuthMiddleware(admin), controllers.DeleteExpense)

	v1.GET("/checkins", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListCheckIns)
	v1.POST("/checkins", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.CreateCheckIn)

	v1.GET("/attendances", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListAttendances)
	v1.POST("/attendances", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.CreateAttendance)
	v1.POST("/attendances/batch", middlewares.AuthMiddleware(admin, hr), controllers.SaveAttendances)
	v1.GET("/attendances/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetAttendance)
	v1.PUT("/attendances/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.CloseAttendance)

	v1.GET("/articles", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListArticles)
	v1.POST("/articles", middlewares.AuthMiddleware(admin, hr), controllers.CreateArticle)
	v1.GET("/articles/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetArticle)
	v1.PUT("/articles/:id", middlewares.AuthMiddleware(admin, hr), controllers.UpdateArticle)
	v1.DELETE("/articles/:id", middlewares.AuthMiddleware(admin, hr), controllers.DeleteArticle)

	v1.GET("/payrolls", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.ListPayrolls)
	v1.POST("/payrolls", middlewares.AuthMiddleware(admin, hr), controllers.CreatePayroll)
	v1.GET("/payrolls/:id", middlewares.AuthMiddleware(admin, maintainer, hr, employee), controllers.GetPayroll)
	v1.DELETE("/payrolls/:id", middlewares.AuthMiddleware(admin, hr, employee), controllers.DeletePayroll)

	v1.GET("/contracts", middlewares.AuthMiddleware(admin, maintainer), controllers.ListContracts)
	v1.POST("/contracts", middlewares.AuthMiddleware(admin, maintainer), controllers.CreateContract)
	v1.PUT("/contracts/:id", middlewares.AuthMiddleware(admin, maintainer), controllers.UpdateContract)
	v1.DELETE("/contracts/:id", middlewares.AuthMiddleware(admin), controllers.DeleteContract)
}
