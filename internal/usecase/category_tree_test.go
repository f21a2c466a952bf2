package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CategoryTreeTestSuite struct {
	suite.Suite
	db   *gorm.DB
	tree *usecase.CategoryTree
}

func (s *CategoryTreeTestSuite) SetupTest() {
	store, db := newTestStore(s.T())
	s.db = db
	s.tree = usecase.NewCategoryTree(store)
}

func (s *CategoryTreeTestSuite) TestCreate() {
	c, err := s.tree.Create(context.Background(), usecase.CreateCategoryInput{
		Name:        "Electronics",
		Description: "Gadgets",
	})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), c.ID)
	require.Nil(s.T(), c.ParentID)
}

func (s *CategoryTreeTestSuite) TestCreateRequiresName() {
	_, err := s.tree.Create(context.Background(), usecase.CreateCategoryInput{})
	require.ErrorIs(s.T(), err, domain.ErrValidation)
}

func (s *CategoryTreeTestSuite) TestCreateDuplicateName() {
	ctx := context.Background()
	_, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Books"})
	require.NoError(s.T(), err)

	_, err = s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Books"})
	require.ErrorIs(s.T(), err, domain.ErrConflict)
}

func (s *CategoryTreeTestSuite) TestCreateWithMissingParent() {
	missing := "00000000-0000-0000-0000-000000000000"
	_, err := s.tree.Create(context.Background(), usecase.CreateCategoryInput{
		Name:     "Orphan",
		ParentID: &missing,
	})
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func (s *CategoryTreeTestSuite) TestSelfParentRejected() {
	ctx := context.Background()
	c, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Loop"})
	require.NoError(s.T(), err)

	_, err = s.tree.SetParent(ctx, c.ID, c.ID)
	require.ErrorIs(s.T(), err, domain.ErrValidation)
}

func (s *CategoryTreeTestSuite) TestCycleRejected() {
	ctx := context.Background()
	a, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "A"})
	require.NoError(s.T(), err)
	b, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "B", ParentID: &a.ID})
	require.NoError(s.T(), err)
	c, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "C", ParentID: &b.ID})
	require.NoError(s.T(), err)

	// a <- b <- c; re-pointing a under c would close the loop
	_, err = s.tree.SetParent(ctx, a.ID, c.ID)
	require.ErrorIs(s.T(), err, domain.ErrCycle)

	// the failed reparent must not have been persisted
	var fresh model.Category
	require.NoError(s.T(), s.db.First(&fresh, "id = ?", a.ID).Error)
	require.Nil(s.T(), fresh.ParentID)
}

func (s *CategoryTreeTestSuite) TestCorruptedChainReadsAsCycle() {
	ctx := context.Background()
	a, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "A"})
	require.NoError(s.T(), err)
	b, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "B", ParentID: &a.ID})
	require.NoError(s.T(), err)

	// corrupt the chain under the usecase: a already points at b
	require.NoError(s.T(), s.db.Model(&model.Category{}).
		Where("id = ?", a.ID).Update("parent_id", b.ID).Error)

	c, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "C"})
	require.NoError(s.T(), err)
	_, err = s.tree.SetParent(ctx, c.ID, a.ID)
	require.ErrorIs(s.T(), err, domain.ErrCycle)
}

func (s *CategoryTreeTestSuite) TestReparent() {
	ctx := context.Background()
	a, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "A"})
	require.NoError(s.T(), err)
	b, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "B"})
	require.NoError(s.T(), err)

	moved, err := s.tree.SetParent(ctx, b.ID, a.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), moved.ParentID)
	require.Equal(s.T(), a.ID, *moved.ParentID)
}

func (s *CategoryTreeTestSuite) TestUpdateRename() {
	ctx := context.Background()
	c, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Old"})
	require.NoError(s.T(), err)

	name := "New"
	updated, err := s.tree.Update(ctx, c.ID, usecase.UpdateCategoryInput{Name: &name})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "New", updated.Name)

	taken := "New"
	other, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Other"})
	require.NoError(s.T(), err)
	_, err = s.tree.Update(ctx, other.ID, usecase.UpdateCategoryInput{Name: &taken})
	require.ErrorIs(s.T(), err, domain.ErrConflict)
}

func (s *CategoryTreeTestSuite) TestDeleteBlockedByChildren() {
	ctx := context.Background()
	parent, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Parent"})
	require.NoError(s.T(), err)
	_, err = s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Child", ParentID: &parent.ID})
	require.NoError(s.T(), err)

	err = s.tree.Delete(ctx, parent.ID)
	require.ErrorIs(s.T(), err, domain.ErrConflict)
}

func (s *CategoryTreeTestSuite) TestDeleteBlockedByProducts() {
	ctx := context.Background()
	product := seedProduct(s.T(), s.db, "Keyboard", "99.90", 5)

	err := s.tree.Delete(ctx, product.CategoryID)
	require.ErrorIs(s.T(), err, domain.ErrConflict)
}

func (s *CategoryTreeTestSuite) TestDeleteLeaf() {
	ctx := context.Background()
	c, err := s.tree.Create(ctx, usecase.CreateCategoryInput{Name: "Leaf"})
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.tree.Delete(ctx, c.ID))
	err = s.db.First(&model.Category{}, "id = ?", c.ID).Error
	require.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *CategoryTreeTestSuite) TestDeleteMissing() {
	err := s.tree.Delete(context.Background(), "nope")
	require.ErrorIs(s.T(), err, domain.ErrNotFound)
}

func TestCategoryTreeTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryTreeTestSuite))
}
