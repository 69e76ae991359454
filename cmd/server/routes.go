package main

import (
	"github.com/gin-gonic/gin"
	"ecomus.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	profileHandler        *handlers.ProfileHandler
	categoryHandler       *handlers.CategoryHandler
	storeHandler          *handlers.StoreHandler
	sizeHandler           *handlers.SizeHandler
	colorHandler          *handlers.ColorHandler
	productHandler        *handlers.ProductHandler
	sessionAuthMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Account routes (public)
		account := v1.Group("/account")
		{
			account.POST("/register", d.authHandler.Register)
			account.GET("/activate/:uid/:token", d.authHandler.Activate)
			account.POST("/activate", d.authHandler.ActivateConfirm)
			account.GET("/reset_password/:uid/:token", d.authHandler.ResetPasswordLanding)
			account.POST("/reset_password_confirm", d.authHandler.ResetPasswordConfirm)
		}

		// Session routes
		v1.POST("/login", d.authHandler.Login)
		v1.POST("/logout", d.authHandler.Logout)
		v1.POST("/reset_password", d.authHandler.ResetPassword)
		v1.GET("/checkauth", d.sessionAuthMiddleware, d.authHandler.CheckAuth)
		v1.POST("/change_password", d.sessionAuthMiddleware, d.authHandler.ChangePassword)

		// Profile routes (public read)
		v1.GET("/profile/:id", d.profileHandler.Get)

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.POST("", d.categoryHandler.Create)
			categories.GET("/:id", d.categoryHandler.Get)
			categories.PUT("/:id", d.categoryHandler.Replace)
			categories.PATCH("/:id", d.categoryHandler.Patch)
			categories.DELETE("/:id", d.categoryHandler.Delete)
		}

		// Store routes
		stores := v1.Group("/stores")
		{
			stores.POST("", d.storeHandler.Create)
			stores.GET("/:id", d.storeHandler.Get)
			stores.PUT("/:id", d.storeHandler.Replace)
			stores.PATCH("/:id", d.storeHandler.Patch)
			stores.DELETE("/:id", d.storeHandler.Delete)
		}

		// Size variant routes
		sizes := v1.Group("/sizes")
		{
			sizes.GET("", d.sizeHandler.List)
			sizes.POST("", d.sizeHandler.Create)
			sizes.GET("/:id", d.sizeHandler.Get)
			sizes.PUT("/:id", d.sizeHandler.Replace)
			sizes.DELETE("/:id", d.sizeHandler.Delete)
		}

		// Color variant routes
		colors := v1.Group("/colors")
		{
			colors.GET("", d.colorHandler.List)
			colors.POST("", d.colorHandler.Create)
			colors.GET("/:id", d.colorHandler.Get)
			colors.PUT("/:id", d.colorHandler.Replace)
			colors.DELETE("/:id", d.colorHandler.Delete)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.List)
			products.POST("", d.productHandler.Create)
			products.GET("/:id", d.productHandler.Get)
			products.PUT("/:id", d.productHandler.Replace)
			products.PATCH("/:id", d.productHandler.Patch)
			products.DELETE("/:id", d.productHandler.Delete)
		}
	}
}
