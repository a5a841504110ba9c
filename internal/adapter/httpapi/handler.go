package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/blinkvocab/internal/entity"
	"github.com/eslsoft/blinkvocab/internal/usecase"
)

// Handler exposes the application over a JSON HTTP API consumed by the SPA
// frontend.
type Handler struct {
	progress usecase.ProgressUsecase
	words    usecase.WordUsecase
	quiz     usecase.QuizUsecase
	store    usecase.StoreUsecase
	logger   *logrus.Logger
}

// NewHandler wires the usecases into one HTTP adapter.
func NewHandler(progress usecase.ProgressUsecase, words usecase.WordUsecase, quiz usecase.QuizUsecase, store usecase.StoreUsecase, logger *logrus.Logger) *Handler {
	return &Handler{
		progress: progress,
		words:    words,
		quiz:     quiz,
		store:    store,
		logger:   logger,
	}
}

// Register mounts all API routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.GET("/profile", h.getProfile)
	api.POST("/profile/save", h.saveProfile)

	api.GET("/words", h.listWords)
	api.GET("/words/:word", h.getWord)

	api.POST("/quiz/sessions", h.startQuiz)
	api.GET("/quiz/sessions/:id", h.getQuizSession)
	api.POST("/quiz/sessions/:id/answers", h.submitAnswer)

	api.GET("/store/items", h.listStoreItems)
	api.POST("/store/items/:id/purchase", h.purchaseItem)
	api.POST("/store/items/:id/image", h.generateItemImage)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getProfile(c *gin.Context) {
	profile := h.progress.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"profile":  profile,
		"chart":    h.progress.ChartData(),
		"dueCount": len(usecase.DueRecords(profile.MistakeBank, timeNow())),
	})
}

func (h *Handler) saveProfile(c *gin.Context) {
	if err := h.progress.Persist(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

type wordSummary struct {
	Word       string                 `json:"word"`
	Difficulty entity.DifficultyLevel `json:"difficulty"`
}

func (h *Handler) listWords(c *gin.Context) {
	words := make([]wordSummary, 0, len(entity.WordList))
	for _, w := range entity.WordList {
		words = append(words, wordSummary{Word: w, Difficulty: entity.WordDifficulty(w)})
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

func (h *Handler) getWord(c *gin.Context) {
	difficulty := entity.ParseDifficulty(c.Query("difficulty"))
	detail, err := h.words.Lookup(c.Request.Context(), c.Param("word"), difficulty)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type startQuizRequest struct {
	QuestionCount   int    `json:"question_count"`
	Source          string `json:"source"`
	IncludeUpcoming bool   `json:"include_upcoming"`
}

func (h *Handler) startQuiz(c *gin.Context) {
	var req startQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	source := usecase.SourceAllWords
	if req.Source == string(usecase.SourceMistakes) {
		source = usecase.SourceMistakes
	}

	session, err := h.quiz.Start(c.Request.Context(), usecase.StartOptions{
		QuestionCount:   req.QuestionCount,
		Source:          source,
		IncludeUpcoming: req.IncludeUpcoming,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) getQuizSession(c *gin.Context) {
	session, err := h.quiz.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.quiz.Submit(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) listStoreItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.ListItems(c.Query("category"))})
}

func (h *Handler) purchaseItem(c *gin.Context) {
	item, err := h.store.Purchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"item":  item,
		"coins": h.progress.Snapshot().Coins,
	})
}

func (h *Handler) generateItemImage(c *gin.Context) {
	image, err := h.store.GeneratePreview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": image})
}
