package main

import (
	"github.com/gin-gonic/gin"
	"pay-chain.backend/internal/interfaces/http/handlers"
	"pay-chain.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	profileHandler     *handlers.ProfileHandler
	loanRequestHandler *handlers.LoanRequestHandler
	contractHandler    *handlers.ContractHandler
	walletAuth         gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/session", d.authHandler.CreateSession)
			auth.GET("/session-expiry", d.authHandler.GetSessionExpiry)
		}

		// Platform catalog (public)
		v1.GET("/platforms", d.profileHandler.ListPlatforms)

		// Merchant profile routes (public read, owner-only refresh)
		merchants := v1.Group("/merchants")
		{
			merchants.GET("/:address/profile", d.profileHandler.GetProfile)
			merchants.POST("/:address/profile/refresh", d.walletAuth, d.profileHandler.RefreshProfile)
			merchants.POST("/:address/simulate", d.profileHandler.SimulateScore)
		}

		// Loan request routes (public read, protected write)
		loans := v1.Group("/loans")
		{
			loans.GET("", d.loanRequestHandler.List)
			loans.GET("/:id", d.loanRequestHandler.Get)
			loans.POST("", d.walletAuth, middleware.IdempotencyMiddleware(), d.loanRequestHandler.Create)
			loans.POST("/:id/fund", d.walletAuth, d.loanRequestHandler.Fund)
		}

		// On-chain contract status (public)
		v1.GET("/contract/status", d.contractHandler.Status)
	}
}
