// Package v1 exposes the wizard orchestrator as a JSON API
package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatureforge/card-api/internal/entities/creature"
	"github.com/creatureforge/card-api/internal/errors"
	"github.com/creatureforge/card-api/internal/orchestrators/wizard"
)

// Handler handles HTTP requests for the wizard API
type Handler struct {
	service wizard.Service
}

// NewHandler creates a new wizard API handler
func NewHandler(service wizard.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the v1 API onto a router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.GetQuestions)
	rg.GET("/catalog", h.GetCatalog)

	sessions := rg.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/reset", h.ResetSession)
	sessions.POST("/:id/start", h.StartWizard)
	sessions.POST("/:id/sketch", h.UploadSketch)
	sessions.POST("/:id/sketch/retake", h.RetakeSketch)
	sessions.POST("/:id/sketch/confirm", h.ConfirmSketch)
	sessions.POST("/:id/answer", h.AnswerQuestion)
	sessions.POST("/:id/advance", h.AdvanceInterview)
	sessions.POST("/:id/back", h.RetreatInterview)
	sessions.POST("/:id/voice", h.ApplyVoiceAnswer)
	sessions.POST("/:id/colors/toggle", h.ToggleColor)
	sessions.POST("/:id/harmony", h.SetColorHarmony)
	sessions.POST("/:id/generate", h.GenerateCard)
	sessions.POST("/:id/edit/start", h.StartEdit)
	sessions.POST("/:id/edit/cancel", h.CancelEdit)
	sessions.POST("/:id/edit", h.SubmitEdit)
	sessions.POST("/:id/edit/voice", h.ApplyEditVoice)
	sessions.GET("/:id/card", h.GetCard)
}

// CreatureView is the creature as presented over the API. Image payloads
// travel as data URIs so the browser can drop them into an <img> tag.
type CreatureView struct {
	Name                 string                `json:"name"`
	Type                 creature.MonsterType  `json:"type"`
	HP                   int32                 `json:"hp"`
	Description          string                `json:"description"`
	SpecialAbility       string                `json:"special_ability"`
	SpecialAbilityDamage int32                 `json:"special_ability_damage"`
	SketchDataURI        string                `json:"sketch_data_uri,omitempty"`
	SketchFeatures       string                `json:"sketch_features"`
	SelectedColors       []string              `json:"selected_colors"`
	ColorHarmony         creature.ColorHarmony `json:"color_harmony"`
}

// SessionView is the wizard session as presented over the API
type SessionView struct {
	ID                   string           `json:"id"`
	PlayerID             string           `json:"player_id"`
	Step                 creature.AppStep `json:"step"`
	Creature             CreatureView     `json:"creature"`
	QuestionIndex        int              `json:"question_index"`
	PendingSketchDataURI string           `json:"pending_sketch_data_uri,omitempty"`
	CardDataURI          string           `json:"card_data_uri,omitempty"`
	Editing              bool             `json:"editing"`
	EditInstruction      string           `json:"edit_instruction"`
	Regenerating         bool             `json:"regenerating"`
	LastError            string           `json:"last_error,omitempty"`
}

func toSessionView(sess *creature.WizardSession) SessionView {
	view := SessionView{
		ID:            sess.ID,
		PlayerID:      sess.PlayerID,
		Step:          sess.Step,
		QuestionIndex: sess.QuestionIndex,
		Creature: CreatureView{
			Name:                 sess.Creature.Name,
			Type:                 sess.Creature.Type,
			HP:                   sess.Creature.HP,
			Description:          sess.Creature.Description,
			SpecialAbility:       sess.Creature.SpecialAbility,
			SpecialAbilityDamage: sess.Creature.SpecialAbilityDamage,
			SketchFeatures:       sess.Creature.SketchFeatures,
			SelectedColors:       sess.Creature.SelectedColors,
			ColorHarmony:         sess.Creature.ColorHarmony,
		},
		Editing:         sess.Editing,
		EditInstruction: sess.EditInstruction,
		Regenerating:    sess.Regenerating,
		LastError:       sess.LastError,
	}
	if !sess.Creature.Sketch.IsEmpty() {
		view.Creature.SketchDataURI = sess.Creature.Sketch.DataURI()
	}
	if !sess.PendingSketch.IsEmpty() {
		view.PendingSketchDataURI = sess.PendingSketch.DataURI()
	}
	if !sess.Card.IsEmpty() {
		view.CardDataURI = sess.Card.DataURI()
	}
	return view
}

// writeError maps an orchestrator error onto an HTTP status via its code
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.JSON(code.HTTPStatus(), gin.H{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}

func (h *Handler) respondSession(c *gin.Context, status int, sess *creature.WizardSession) {
	c.JSON(status, toSessionView(sess))
}

// CreateSessionRequest is the body for POST /sessions
type CreateSessionRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// CreateSession starts a new wizard session for a player
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player_id is required"})
		return
	}

	output, err := h.service.CreateSession(c.Request.Context(), &wizard.CreateSessionInput{
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusCreated, output.Session)
}

// GetSession returns a session by ID
func (h *Handler) GetSession(c *gin.Context) {
	output, err := h.service.GetSession(c.Request.Context(), &wizard.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// ResetSession returns a session to the landing screen
func (h *Handler) ResetSession(c *gin.Context) {
	output, err := h.service.ResetSession(c.Request.Context(), &wizard.ResetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// StartWizard moves a session from landing to sketch upload
func (h *Handler) StartWizard(c *gin.Context) {
	output, err := h.service.StartWizard(c.Request.Context(), &wizard.StartWizardInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// UploadSketch accepts a multipart sketch upload (field "sketch")
func (h *Handler) UploadSketch(c *gin.Context) {
	file, err := c.FormFile("sketch")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'sketch' is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read sketch upload"})
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read sketch upload"})
		return
	}

	output, err := h.service.UploadSketch(c.Request.Context(), &wizard.UploadSketchInput{
		SessionID: c.Param("id"),
		Data:      data,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// RetakeSketch discards the pending sketch
func (h *Handler) RetakeSketch(c *gin.Context) {
	output, err := h.service.RetakeSketch(c.Request.Context(), &wizard.RetakeSketchInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// ConfirmSketch commits the pending sketch and starts the interview
func (h *Handler) ConfirmSketch(c *gin.Context) {
	output, err := h.service.ConfirmSketch(c.Request.Context(), &wizard.ConfirmSketchInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// AnswerQuestionRequest is the body for POST /sessions/:id/answer
type AnswerQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      string `json:"value"`
}

// AnswerQuestion records an answer to the current interview question
func (h *Handler) AnswerQuestion(c *gin.Context) {
	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id is required"})
		return
	}

	output, err := h.service.AnswerQuestion(c.Request.Context(), &wizard.AnswerQuestionInput{
		SessionID:  c.Param("id"),
		QuestionID: creature.QuestionID(req.QuestionID),
		Value:      req.Value,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// AdvanceInterview moves to the next question or completes the interview
func (h *Handler) AdvanceInterview(c *gin.Context) {
	output, err := h.service.AdvanceInterview(c.Request.Context(), &wizard.AdvanceInterviewInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// RetreatInterview moves back one question
func (h *Handler) RetreatInterview(c *gin.Context) {
	output, err := h.service.RetreatInterview(c.Request.Context(), &wizard.RetreatInterviewInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// VoiceAnswerRequest is the body for POST /sessions/:id/voice
type VoiceAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Transcript string `json:"transcript" binding:"required"`
}

// VoiceAnswerResponse wraps the session view with the applied flag
type VoiceAnswerResponse struct {
	SessionView
	Applied bool `json:"applied"`
}

// ApplyVoiceAnswer merges a voice transcript into the current answer
func (h *Handler) ApplyVoiceAnswer(c *gin.Context) {
	var req VoiceAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id and transcript are required"})
		return
	}

	output, err := h.service.ApplyVoiceAnswer(c.Request.Context(), &wizard.ApplyVoiceAnswerInput{
		SessionID:  c.Param("id"),
		QuestionID: creature.QuestionID(req.QuestionID),
		Transcript: req.Transcript,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, VoiceAnswerResponse{
		SessionView: toSessionView(output.Session),
		Applied:     output.Applied,
	})
}

// ToggleColorRequest is the body for POST /sessions/:id/colors/toggle
type ToggleColorRequest struct {
	Color string `json:"color" binding:"required"`
}

// ToggleColor adds or removes a palette color
func (h *Handler) ToggleColor(c *gin.Context) {
	var req ToggleColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "color is required"})
		return
	}

	output, err := h.service.ToggleColor(c.Request.Context(), &wizard.ToggleColorInput{
		SessionID: c.Param("id"),
		Color:     req.Color,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// SetHarmonyRequest is the body for POST /sessions/:id/harmony
type SetHarmonyRequest struct {
	Harmony string `json:"harmony" binding:"required"`
}

// SetColorHarmony sets the color harmony mode
func (h *Handler) SetColorHarmony(c *gin.Context) {
	var req SetHarmonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "harmony is required"})
		return
	}

	output, err := h.service.SetColorHarmony(c.Request.Context(), &wizard.SetColorHarmonyInput{
		SessionID: c.Param("id"),
		Harmony:   creature.ColorHarmony(req.Harmony),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// GenerateCard kicks off card generation. A generation service failure is
// reported inside the session (step back to INTERVIEW, last_error set), not
// as an HTTP error.
func (h *Handler) GenerateCard(c *gin.Context) {
	output, err := h.service.GenerateCard(c.Request.Context(), &wizard.GenerateCardInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// StartEdit enters edit mode
func (h *Handler) StartEdit(c *gin.Context) {
	output, err := h.service.StartEdit(c.Request.Context(), &wizard.StartEditInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// CancelEdit leaves edit mode
func (h *Handler) CancelEdit(c *gin.Context) {
	output, err := h.service.CancelEdit(c.Request.Context(), &wizard.CancelEditInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// SubmitEditRequest is the body for POST /sessions/:id/edit
type SubmitEditRequest struct {
	Instruction string `json:"instruction"`
}

// SubmitEdit applies an edit instruction to the generated card. An edit
// service failure surfaces as 503 so the client can show a blocking alert.
func (h *Handler) SubmitEdit(c *gin.Context) {
	var req SubmitEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := h.service.SubmitEdit(c.Request.Context(), &wizard.SubmitEditInput{
		SessionID:   c.Param("id"),
		Instruction: req.Instruction,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// EditVoiceRequest is the body for POST /sessions/:id/edit/voice
type EditVoiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// ApplyEditVoice merges a voice transcript into the edit instruction
func (h *Handler) ApplyEditVoice(c *gin.Context) {
	var req EditVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript is required"})
		return
	}

	output, err := h.service.ApplyEditVoice(c.Request.Context(), &wizard.ApplyEditVoiceInput{
		SessionID:  c.Param("id"),
		Transcript: req.Transcript,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, output.Session)
}

// GetCard streams the generated card image for download
func (h *Handler) GetCard(c *gin.Context) {
	output, err := h.service.GetCard(c.Request.Context(), &wizard.GetCardInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, output.Card.MIMEType, output.Card.Data)
}

// GetQuestions returns the interview question catalog
func (h *Handler) GetQuestions(c *gin.Context) {
	output, err := h.service.GetQuestions(c.Request.Context(), &wizard.GetQuestionsInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": output.Questions})
}

// GetCatalog returns the type, color, and harmony catalogs
func (h *Handler) GetCatalog(c *gin.Context) {
	output, err := h.service.GetCatalog(c.Request.Context(), &wizard.GetCatalogInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"monster_types": output.MonsterTypes,
		"colors":        output.Colors,
		"harmonies":     output.Harmonies,
		"min_colors":    output.MinColors,
		"max_colors":    output.MaxColors,
	})
}
