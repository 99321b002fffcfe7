// file: routes/router.go
package routes

import (
	"DevOlympus/controllers"
	"DevOlympus/middlewares"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 公开路由：活动主页与登录 ---
		apiV1.GET("/event", controllers.GetEventInfo)

		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.GET("/google/login", controllers.GoogleLogin)
			authRoutes.GET("/google/callback", controllers.GoogleCallback)
			authRoutes.POST("/admin/login", controllers.AdminLogin)
		}

		// --- 需要登录的参赛者路由 ---
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			userRoutes.GET("/me", controllers.GetMe)
		}

		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			teamRoutes.POST("/register", controllers.RegisterTeam)
			teamRoutes.GET("/mine", controllers.GetMyTeam)
		}

		submissionRoutes := apiV1.Group("/submissions")
		submissionRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			submissionRoutes.POST("/payment", controllers.SubmitPayment)
			submissionRoutes.POST("/consent-letter", controllers.UploadConsentLetter)
		}

		// --- 管理员路由 ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.AdminAuthMiddleware())
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.PUT("/users/:id/block", controllers.UpdateUserBlock)

			adminRoutes.GET("/teams", controllers.AdminGetTeams)
			adminRoutes.GET("/teams/:id", controllers.AdminGetTeamDetail)
			adminRoutes.PUT("/teams/:id/round2", controllers.AdminUpdateRound2Status)
			adminRoutes.GET("/teams/:id/status-logs", controllers.AdminGetStatusLogs)
			adminRoutes.PUT("/teams/:id/payment/verify", controllers.AdminVerifyPayment)

			adminRoutes.PUT("/event", controllers.UpsertEventInfo)
		}
	}

	return r
}
