package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jjongdev/votings-backend/internal/handlers"
	"github.com/jjongdev/votings-backend/internal/middleware"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler, filter *middleware.ExpiryFilter) {
	{
		rg.GET("/votings", filter.NotExpired(), handler.ListVotings)
		rg.GET("/votings/expired", filter.Expired(), handler.ListVotings)

		rg.GET("/votings/new", handler.ViewNewVoting)
	}
}

func RegisterPrivateRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.GET("/votings/success", handler.ViewSuccess)
		rg.GET("/votings/participated", handler.ParticipatedVotings)
		rg.GET("/votings/:id", handler.SelectedVoting)

		rg.POST("/votings", handler.CreateVoting)
		rg.POST("/votings/:id", handler.Participate)
		rg.DELETE("/votings/:id", handler.DeleteVoting)
	}
}
