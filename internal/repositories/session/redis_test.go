package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/creatureforge/card-api/internal/entities/creature"
	"github.com/creatureforge/card-api/internal/errors"
	"github.com/creatureforge/card-api/internal/repositories/session"
	"github.com/creatureforge/card-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    session.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := session.NewRedisRepository(&session.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testSession(id, playerID string) *creature.WizardSession {
	return &creature.WizardSession{
		ID:        id,
		PlayerID:  playerID,
		Step:      creature.StepLanding,
		Creature:  creature.NewCreature(),
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	sess := testSession("sess_1", "player_1")

	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal("sess_1", output.Session.ID)
	s.Equal("player_1", output.Session.PlayerID)
	s.Equal(creature.StepLanding, output.Session.Step)
	s.Equal(creature.MonsterTypeFire, output.Session.Creature.Type)
	s.Equal(int32(50), output.Session.Creature.HP)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	s.Run("nil session", func() {
		_, err := s.repo.Create(s.ctx, session.CreateInput{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing ID", func() {
		_, err := s.repo.Create(s.ctx, session.CreateInput{Session: testSession("", "player_1")})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing player ID", func() {
		_, err := s.repo.Create(s.ctx, session.CreateInput{Session: testSession("sess_1", "")})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestCreate_ReplacesExistingSession() {
	first := testSession("sess_1", "player_1")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: first})
	s.Require().NoError(err)

	second := testSession("sess_2", "player_1")
	_, err = s.repo.Create(s.ctx, session.CreateInput{Session: second})
	s.Require().NoError(err)

	// Old session is gone
	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	// Player mapping points at the new one
	output, err := s.repo.GetByPlayerID(s.ctx, session.GetByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Equal("sess_2", output.Session.ID)
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, session.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetByPlayerID_NotFound() {
	_, err := s.repo.GetByPlayerID(s.ctx, session.GetByPlayerIDInput{PlayerID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	sess := testSession("sess_1", "player_1")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	sess.Step = creature.StepInterview
	sess.Creature.Name = "Blazewing"
	_, err = s.repo.Update(s.ctx, session.UpdateInput{Session: sess})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal(creature.StepInterview, output.Session.Step)
	s.Equal("Blazewing", output.Session.Creature.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(s.ctx, session.UpdateInput{Session: testSession("ghost", "player_1")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	sess := testSession("sess_1", "player_1")
	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, session.DeleteInput{ID: "sess_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.True(errors.IsNotFound(err))

	// Player mapping is cleaned up too
	_, err = s.repo.GetByPlayerID(s.ctx, session.GetByPlayerIDInput{PlayerID: "player_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_NotFound() {
	_, err := s.repo.Delete(s.ctx, session.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSessionCarriesImages() {
	sess := testSession("sess_1", "player_1")
	sess.Creature.Sketch = &creature.ImageBlob{MIMEType: "image/png", Data: []byte{0x89, 0x50, 0x4E, 0x47}}
	sess.Card = &creature.ImageBlob{MIMEType: "image/png", Data: []byte{0x01, 0x02}}

	_, err := s.repo.Create(s.ctx, session.CreateInput{Session: sess})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, session.GetInput{ID: "sess_1"})
	s.Require().NoError(err)
	s.Equal([]byte{0x89, 0x50, 0x4E, 0x47}, output.Session.Creature.Sketch.Data)
	s.Equal("image/png", output.Session.Card.MIMEType)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func TestSessionExpiry(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithMiniredis(t)
	defer cleanup()

	repo, err := session.NewRedisRepository(&session.RedisConfig{
		Client: client,
		TTL:    time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if _, err := repo.Create(ctx, session.CreateInput{Session: testSession("sess_1", "player_1")}); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := repo.Get(ctx, session.GetInput{ID: "sess_1"}); !errors.IsNotFound(err) {
		t.Fatalf("expected not found after expiry, got %v", err)
	}
}
