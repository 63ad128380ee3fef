package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jjongdev/votings-backend/internal/entity"
	"github.com/jjongdev/votings-backend/internal/middleware"
	"github.com/jjongdev/votings-backend/internal/repo"
	"github.com/jjongdev/votings-backend/internal/services"
)

const (
	RouteMain    = "/"
	RouteSuccess = "/api/votings/success"
)

// User-facing messages, kept in Korean like the rest of the product.
const (
	msgEmptyBody   = "빈칸을 모두 입력하고 투표만들기 버튼을 눌러주세요"
	msgEmptyOption = "비어있는 선택지가 없도록 모두 입력해주세요"
	msgServerError = "Server Error"
)

// fieldLabels maps request fields to the labels used in validation messages.
var fieldLabels = map[string]string{
	"Title":     "투표 주제",
	"ExpiredAt": "투표 마감시간",
	"Options":   "선택지",
}

type VotingHandler struct {
	votings *services.Votings
}

type CreateVotingRequest struct {
	Title     string   `json:"title" binding:"required"`
	ExpiredAt string   `json:"expiredAt" binding:"required"`
	Options   []string `json:"options" binding:"required,min=1"`
}

type ParticipateRequest struct {
	Option int64 `json:"option" binding:"required"`
}

func NewVotingHandler(votings *services.Votings) *VotingHandler {
	return &VotingHandler{votings: votings}
}

// ViewNewVoting serves the new-voting form payload.
func (v *VotingHandler) ViewNewVoting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": "newVoting"})
}

// ViewSuccess derives the display id from the local part of the email.
func (v *VotingHandler) ViewSuccess(c *gin.Context) {
	emailValue, exists := c.Get("userEmail")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	email, ok := emailValue.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user email in context"})
		return
	}

	userId := strings.Split(email, "@")[0]
	c.JSON(http.StatusOK, gin.H{"userId": userId})
}

// ListVotings renders whichever list the expiry-filter middleware prepared.
func (v *VotingHandler) ListVotings(c *gin.Context) {
	filtered, exists := c.Get(middleware.FilteredVotingsKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	votings, ok := filtered.([]entity.Voting)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"votings": votings})
}

func (v *VotingHandler) CreateVoting(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.Redirect(http.StatusFound, middleware.RouteLogin)
		return
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return
	}

	var req CreateVotingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	expiredAt, err := parseExpiredAt(req.ExpiredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fieldLabels["ExpiredAt"] + " 항목을 조건에 맞게 다시 입력해주세요.",
		})
		return
	}

	_, err = v.votings.CreateVoting(c.Request.Context(), userID, req.Title, expiredAt, req.Options)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOption) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmptyOption})
			return
		}
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgEmptyBody})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	c.Redirect(http.StatusFound, RouteSuccess)
}

func (v *VotingHandler) SelectedVoting(c *gin.Context) {
	votingIDStr := c.Param("id")
	votingID, err := strconv.Atoi(votingIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voting id"})
		return
	}

	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return
	}

	detail, err := v.votings.SelectedVoting(c.Request.Context(), userID, int64(votingID), time.Now())
	if err != nil {
		// A missing voting still surfaces as a server error here.
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           votingID,
		"voting":       detail.Voting,
		"options":      detail.Voting.Options,
		"comment":      detail.Comment,
		"isActive":     detail.IsActive,
		"isCreateUser": detail.IsCreateUser,
		"isExpired":    detail.IsExpired,
	})
}

func (v *VotingHandler) Participate(c *gin.Context) {
	votingIDStr := c.Param("id")
	votingID, err := strconv.Atoi(votingIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voting id"})
		return
	}

	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return
	}

	var req ParticipateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	err = v.votings.Participate(c.Request.Context(), userID, int64(votingID), req.Option)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	c.Status(http.StatusOK)
}

func (v *VotingHandler) DeleteVoting(c *gin.Context) {
	votingIDStr := c.Param("id")
	votingID, err := strconv.Atoi(votingIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voting id"})
		return
	}

	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return
	}

	err = v.votings.DeleteVoting(c.Request.Context(), userID, int64(votingID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	// Non-owners land here too: the delete was silently skipped.
	c.Redirect(http.StatusFound, RouteMain)
}

// ParticipatedVotings lists the voting ids the requester has voted in.
func (v *VotingHandler) ParticipatedVotings(c *gin.Context) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user id in context"})
		return
	}

	ids, err := v.votings.ParticipatedVotings(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			c.JSON(http.StatusOK, gin.H{"votings": []int64{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
		return
	}

	c.JSON(http.StatusOK, gin.H{"votings": ids})
}

// bindErrorMessage turns binding failures into the product's Korean
// validation message, joining the labels of every failed field.
func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return msgEmptyBody
	}

	labels := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		if label, ok := fieldLabels[fieldError.Field()]; ok {
			labels = append(labels, label)
		}
	}

	if len(labels) == 0 {
		return msgEmptyBody
	}

	return strings.Join(labels, ", ") + " 항목을 조건에 맞게 다시 입력해주세요."
}

func parseExpiredAt(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	// datetime-local inputs come without zone or seconds
	return time.Parse("2006-01-02T15:04", value)
}
