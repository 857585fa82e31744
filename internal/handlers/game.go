package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fabianengeln/paarspiel/internal/middleware"
	"github.com/fabianengeln/paarspiel/internal/models"
	"github.com/fabianengeln/paarspiel/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GameHandler struct {
	contentService *services.ContentService
	gameService    *services.GameService
	sessions       *services.SessionStore
}

func NewGameHandler(contentService *services.ContentService, gameService *services.GameService, sessions *services.SessionStore) *GameHandler {
	return &GameHandler{contentService: contentService, gameService: gameService, sessions: sessions}
}

func (h *GameHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "start.html", nil)
}

// StartGame godoc
// @Summary      Start a game for two players
// @Tags         game
// @Accept       x-www-form-urlencoded
// @Param        person1 formData string true "First player name"
// @Param        person2 formData string true "Second player name"
// @Success      302
// @Router       /start_game [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	person1 := strings.TrimSpace(c.PostForm("person1"))
	person2 := strings.TrimSpace(c.PostForm("person2"))

	token := uuid.NewString()
	game, err := models.NewGameSession(token, person1, person2)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	// A restart drops the previous binding outright.
	if old, err := c.Cookie(middleware.CookieName); err == nil {
		h.sessions.Clear(old)
	}
	h.sessions.Put(token, game)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/game")
}

func (h *GameHandler) Game(c *gin.Context) {
	game := middleware.CurrentGame(c)
	c.HTML(http.StatusOK, "game.html", gin.H{
		"Person1":     game.PlayerA,
		"Person2":     game.PlayerB,
		"CurrentTurn": game.CurrentTurn,
	})
}

// GetContent godoc
// @Summary      Draw a random content item
// @Tags         game
// @Produce      json
// @Param        type query string false "Content type: question, mini_task, compliment or any" default(question)
// @Param        category query string false "Category label, or all" default(all)
// @Success      200 {object} ContentItem
// @Failure      404 {object} ErrorResponse
// @Router       /get_content [get]
func (h *GameHandler) GetContent(c *gin.Context) {
	contentType := c.DefaultQuery("type", models.ContentTypeQuestion)
	category := c.DefaultQuery("category", models.CategoryAll)

	item, err := h.contentService.Select(contentType, category)
	if err != nil {
		if errors.Is(err, services.ErrNoContent) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no content available"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       item.ID,
		"text":     item.Text,
		"type":     item.Type,
		"category": item.Category,
	})
}

// GetCategories godoc
// @Summary      List categories for a content type
// @Tags         game
// @Produce      json
// @Param        type query string false "Content type" default(question)
// @Success      200 {object} CategoriesResponse
// @Router       /get_categories [get]
func (h *GameHandler) GetCategories(c *gin.Context) {
	contentType := c.DefaultQuery("type", models.ContentTypeQuestion)

	categories, err := h.contentService.ListCategories(contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type SaveAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

// SaveAnswer godoc
// @Summary      Record the current player's answer and flip the turn
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body SaveAnswerRequest true "Answer data"
// @Success      200 {object} SaveAnswerResponse
// @Failure      400 {object} StatusErrorResponse
// @Router       /save_answer [post]
func (h *GameHandler) SaveAnswer(c *gin.Context) {
	game := middleware.CurrentGame(c)

	var req SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, StatusErrorResponse{Status: "error", Message: services.ErrMissingData.Error()})
		return
	}

	if _, err := h.gameService.SubmitAnswer(game, req.QuestionID, strings.TrimSpace(req.Answer)); err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, services.ErrMissingData) && !errors.Is(err, services.ErrNoTurn) && !errors.Is(err, services.ErrItemNotFound) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, StatusErrorResponse{Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SaveAnswerResponse{
		Status:      "success",
		CurrentTurn: game.CurrentTurn,
		Person1:     game.PlayerA,
		Person2:     game.PlayerB,
	})
}

type SaveAnswerResponse struct {
	Status      string `json:"status"`
	CurrentTurn string `json:"current_turn"`
	Person1     string `json:"person1"`
	Person2     string `json:"person2"`
}

type StatusErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SwitchTurn godoc
// @Summary      Pass the turn without answering
// @Tags         game
// @Produce      json
// @Success      200 {object} SwitchTurnResponse
// @Failure      400 {object} ErrorResponse
// @Router       /switch_turn [post]
func (h *GameHandler) SwitchTurn(c *gin.Context) {
	game := middleware.CurrentGame(c)
	next := game.SwitchTurn()
	c.JSON(http.StatusOK, SwitchTurnResponse{Success: true, CurrentTurn: next})
}

type SwitchTurnResponse struct {
	Success     bool   `json:"success"`
	CurrentTurn string `json:"current_turn"`
}

// EndGame clears the session binding and returns to the start screen.
func (h *GameHandler) EndGame(c *gin.Context) {
	if token, err := c.Cookie(middleware.CookieName); err == nil {
		h.sessions.Clear(token)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *GameHandler) Summary(c *gin.Context) {
	entries, err := h.gameService.Summary()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "summary.html", gin.H{"Entries": nil})
		return
	}
	c.HTML(http.StatusOK, "summary.html", gin.H{"Entries": entries})
}
