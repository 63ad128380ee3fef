package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jjongdev/votings-backend/internal/services"
)

// FilteredVotingsKey is the gin context key the list handler reads the
// pre-filtered votings from.
const FilteredVotingsKey = "filteredVotings"

type ExpiryFilter struct {
	log     *slog.Logger
	votings *services.Votings
}

func NewExpiryFilter(log *slog.Logger, votings *services.Votings) *ExpiryFilter {
	return &ExpiryFilter{log: log, votings: votings}
}

// NotExpired loads every voting still open at request time into the context.
func (f *ExpiryFilter) NotExpired() gin.HandlerFunc {
	return func(c *gin.Context) {
		votings, err := f.votings.FilterNotExpired(c.Request.Context(), time.Now())
		if err != nil {
			f.log.Error("failed to filter votings", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
			return
		}

		c.Set(FilteredVotingsKey, votings)
		c.Next()
	}
}

// Expired loads every voting already past its deadline into the context.
func (f *ExpiryFilter) Expired() gin.HandlerFunc {
	return func(c *gin.Context) {
		votings, err := f.votings.FilterExpired(c.Request.Context(), time.Now())
		if err != nil {
			f.log.Error("failed to filter votings", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
			return
		}

		c.Set(FilteredVotingsKey, votings)
		c.Next()
	}
}
