package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/creatureforge/card-api/internal/clients/cardgen"
	cardgenmock "github.com/creatureforge/card-api/internal/clients/cardgen/mock"
	"github.com/creatureforge/card-api/internal/entities/creature"
	"github.com/creatureforge/card-api/internal/errors"
	v1 "github.com/creatureforge/card-api/internal/handlers/api/v1"
	"github.com/creatureforge/card-api/internal/orchestrators/wizard"
	"github.com/creatureforge/card-api/internal/pkg/clock"
	"github.com/creatureforge/card-api/internal/pkg/idgen"
	"github.com/creatureforge/card-api/internal/pkg/roller"
	sessionrepo "github.com/creatureforge/card-api/internal/repositories/session"
	"github.com/creatureforge/card-api/internal/testutils"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCardGen *cardgenmock.MockClient
	router      *gin.Engine
	cleanup     func()
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockCardGen = cardgenmock.NewMockClient(s.ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := sessionrepo.NewRedisRepository(&sessionrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	orch, err := wizard.New(&wizard.Config{
		SessionRepo: repo,
		CardGen:     s.mockCardGen,
		IDGenerator: idgen.NewSequential("sess"),
		Roller:      roller.NewFixed(21),
		Clock:       clock.New(),
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler := v1.NewHandler(orch)
	handler.RegisterRoutes(s.router.Group("/api/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

// do runs a request and returns the recorder
func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// session decodes a session view from a response body
func (s *HandlerTestSuite) session(w *httptest.ResponseRecorder) v1.SessionView {
	var view v1.SessionView
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

// createSession creates a session over HTTP and returns its ID
func (s *HandlerTestSuite) createSession() string {
	w := s.do(http.MethodPost, "/api/v1/sessions", gin.H{"player_id": "player_1"})
	s.Require().Equal(http.StatusCreated, w.Code)
	return s.session(w).ID
}

// uploadSketch sends a multipart sketch upload
func (s *HandlerTestSuite) uploadSketch(id string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("sketch", "sketch.png")
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/sessions/%s/sketch", id), &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// sessionAtResult drives a session to a generated card over HTTP
func (s *HandlerTestSuite) sessionAtResult() string {
	id := s.createSession()
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/start", nil).Code)
	s.Require().Equal(http.StatusOK, s.uploadSketch(id, pngBytes).Code)
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/sketch/confirm", nil).Code)

	answers := []gin.H{
		{"question_id": "name", "value": "Blazewing"},
		{"question_id": "type", "value": "Fire"},
		{"question_id": "hp", "value": "120"},
		{"question_id": "sketchFeatures", "value": "The triangles are spikes"},
		{"question_id": "specialAbility", "value": "Lava Burst"},
		{"question_id": "description", "value": "Lives inside volcanoes."},
	}
	for _, a := range answers {
		s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/answer", a).Code)
		s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/sessions/"+id+"/advance", nil).Code)
	}

	for _, c := range []string{"Red", "Orange"} {
		s.Require().Equal(http.StatusOK,
			s.do(http.MethodPost, "/api/v1/sessions/"+id+"/colors/toggle", gin.H{"color": c}).Code)
	}

	s.mockCardGen.EXPECT().
		GenerateCard(gomock.Any(), gomock.Any()).
		Return(&cardgen.GenerateCardOutput{
			Card: &creature.ImageBlob{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/sessions/"+id+"/generate", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().Equal(creature.StepResult, s.session(w).Step)
	return id
}

func (s *HandlerTestSuite) TestCreateSession() {
	w := s.do(http.MethodPost, "/api/v1/sessions", gin.H{"player_id": "player_1"})
	s.Require().Equal(http.StatusCreated, w.Code)

	view := s.session(w)
	s.Equal(creature.StepLanding, view.Step)
	s.Equal("player_1", view.PlayerID)
	s.Equal(creature.MonsterTypeFire, view.Creature.Type)
}

func (s *HandlerTestSuite) TestCreateSession_MissingPlayerID() {
	w := s.do(http.MethodPost, "/api/v1/sessions", gin.H{})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetSession_NotFound() {
	w := s.do(http.MethodGet, "/api/v1/sessions/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "NOT_FOUND")
}

func (s *HandlerTestSuite) TestWrongStepMapsToPreconditionFailed() {
	id := s.createSession()

	// Cannot advance the interview from the landing screen
	w := s.do(http.MethodPost, "/api/v1/sessions/"+id+"/advance", nil)
	s.Equal(http.StatusPreconditionFailed, w.Code)
}

func (s *HandlerTestSuite) TestUploadSketch_ShowsPendingPreview() {
	id := s.createSession()
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)

	w := s.uploadSketch(id, pngBytes)
	s.Require().Equal(http.StatusOK, w.Code)

	view := s.session(w)
	s.True(strings.HasPrefix(view.PendingSketchDataURI, "data:image/png;base64,"))
	s.Empty(view.Creature.SketchDataURI)
}

func (s *HandlerTestSuite) TestFullFlowAndCardDownload() {
	id := s.sessionAtResult()

	w := s.do(http.MethodGet, "/api/v1/sessions/"+id+"/card", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="Blazewing-card.png"`, w.Header().Get("Content-Disposition"))
	s.Equal([]byte{1, 2, 3}, w.Body.Bytes())
}

func (s *HandlerTestSuite) TestGenerateFailure_Returns200WithFallbackSession() {
	id := s.createSession()
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	s.uploadSketch(id, pngBytes)
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/sketch/confirm", nil)
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/answer", gin.H{"question_id": "name", "value": "Blazewing"})
	for i := 0; i < creature.QuestionCount(); i++ {
		s.do(http.MethodPost, "/api/v1/sessions/"+id+"/advance", nil)
	}
	for _, c := range []string{"Red", "Orange"} {
		s.do(http.MethodPost, "/api/v1/sessions/"+id+"/colors/toggle", gin.H{"color": c})
	}

	s.mockCardGen.EXPECT().
		GenerateCard(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("down"))

	w := s.do(http.MethodPost, "/api/v1/sessions/"+id+"/generate", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	view := s.session(w)
	s.Equal(creature.StepInterview, view.Step)
	s.NotEmpty(view.LastError)
	s.Empty(view.CardDataURI)
}

func (s *HandlerTestSuite) TestSubmitEditFailure_Returns503() {
	id := s.sessionAtResult()
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/edit/start", nil)

	s.mockCardGen.EXPECT().
		EditCard(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("down"))

	w := s.do(http.MethodPost, "/api/v1/sessions/"+id+"/edit", gin.H{"instruction": "add more fire"})
	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Contains(w.Body.String(), "UNAVAILABLE")

	// The card survived the failed edit
	get := s.do(http.MethodGet, "/api/v1/sessions/"+id, nil)
	view := s.session(get)
	s.NotEmpty(view.CardDataURI)
	s.True(view.Editing)
	s.Equal("add more fire", view.EditInstruction)
}

func (s *HandlerTestSuite) TestVoiceAnswer_ReportsApplied() {
	id := s.createSession()
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	s.uploadSketch(id, pngBytes)
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/sketch/confirm", nil)

	w := s.do(http.MethodPost, "/api/v1/sessions/"+id+"/voice",
		gin.H{"question_id": "name", "transcript": "sparky"})
	s.Require().Equal(http.StatusOK, w.Code)

	var resp v1.VoiceAnswerResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Applied)
	s.Equal("Sparky", resp.Creature.Name)

	// Stale transcript is dropped
	s.do(http.MethodPost, "/api/v1/sessions/"+id+"/advance", nil)
	w = s.do(http.MethodPost, "/api/v1/sessions/"+id+"/voice",
		gin.H{"question_id": "name", "transcript": "zappy"})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Applied)
	s.Equal("Sparky", resp.Creature.Name)
}

func (s *HandlerTestSuite) TestStaticCatalogs() {
	w := s.do(http.MethodGet, "/api/v1/questions", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var questions struct {
		Questions []creature.Question `json:"questions"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &questions))
	s.Len(questions.Questions, 6)

	w = s.do(http.MethodGet, "/api/v1/catalog", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var catalog struct {
		Colors    []creature.Color `json:"colors"`
		MaxColors int              `json:"max_colors"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &catalog))
	s.Len(catalog.Colors, 18)
	s.Equal(3, catalog.MaxColors)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
