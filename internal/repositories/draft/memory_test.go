package draft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/doomforge/ngplus/internal/catalog"
	"github.com/doomforge/ngplus/internal/entities/loadout"
	"github.com/doomforge/ngplus/internal/errors"
	"github.com/doomforge/ngplus/internal/repositories/draft"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *draft.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = draft.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) newDraft(id string) *loadout.Draft {
	return &loadout.Draft{
		ID:        id,
		Selection: loadout.NewSelection(),
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, &draft.CreateInput{Draft: s.newDraft("draft_1")})
	s.Require().NoError(err)
	s.Equal("draft_1", created.Draft.ID)

	got, err := s.repo.Get(s.ctx, &draft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.Equal("draft_1", got.Draft.ID)
	s.NotNil(got.Draft.Selection)
}

func (s *InMemoryRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, &draft.CreateInput{Draft: s.newDraft("draft_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &draft.CreateInput{Draft: s.newDraft("draft_1")})
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &draft.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetReturnsCopy() {
	_, err := s.repo.Create(s.ctx, &draft.CreateInput{Draft: s.newDraft("draft_1")})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &draft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	got.Draft.Selection.SetWeapon("chainsaw", true)
	got.Draft.Selection.ArgentLevels[catalog.ArgentHealth] = 4

	fresh, err := s.repo.Get(s.ctx, &draft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.False(fresh.Draft.Selection.Weapons["chainsaw"])
	s.Equal(0, fresh.Draft.Selection.ArgentLevels[catalog.ArgentHealth])
}

func (s *InMemoryRepositoryTestSuite) TestUpdate() {
	d := s.newDraft("draft_1")
	_, err := s.repo.Create(s.ctx, &draft.CreateInput{Draft: d})
	s.Require().NoError(err)

	d.Selection.SetWeapon("combatShotgun", true)
	d.UpdatedAt = 1700000100
	_, err = s.repo.Update(s.ctx, &draft.UpdateInput{Draft: d})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, &draft.GetInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.True(got.Draft.Selection.Weapons["combatShotgun"])
	s.Equal(int64(1700000100), got.Draft.UpdatedAt)
}

func (s *InMemoryRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, &draft.UpdateInput{Draft: s.newDraft("missing")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, &draft.CreateInput{Draft: s.newDraft("draft_1")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, &draft.DeleteInput{ID: "draft_1"})
	s.Require().NoError(err)
	s.True(out.Success)

	_, err = s.repo.Get(s.ctx, &draft.GetInput{ID: "draft_1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDeleteMissing() {
	_, err := s.repo.Delete(s.ctx, &draft.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &draft.CreateInput{Draft: &loadout.Draft{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &draft.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
