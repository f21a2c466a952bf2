package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

// CategoryTree keeps the category hierarchy consistent: unique names,
// resolvable parents, an acyclic parent chain, and no deletion while
// children or products hang off a node.
type CategoryTree struct {
	store Store
}

func NewCategoryTree(store Store) *CategoryTree {
	return &CategoryTree{store: store}
}

type CreateCategoryInput struct {
	Name        string
	Description string
	ParentID    *string
}

func (t *CategoryTree) Create(ctx context.Context, in CreateCategoryInput) (*model.Category, error) {
	if in.Name == "" {
		return nil, domain.Validationf("category name is required")
	}
	var created *model.Category
	err := t.store.Tx(ctx, func(s Store) error {
		existing, err := s.Categories().GetByName(ctx, in.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflictf("category with name %q already exists", in.Name)
		}
		if in.ParentID != nil {
			if _, err := s.Categories().Get(ctx, *in.ParentID); err != nil {
				return err
			}
		}
		c := &model.Category{
			Name:        in.Name,
			Description: in.Description,
			ParentID:    in.ParentID,
		}
		if err := s.Categories().Create(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	return created, err
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ParentID    *string
}

func (t *CategoryTree) Update(ctx context.Context, id string, in UpdateCategoryInput) (*model.Category, error) {
	var updated *model.Category
	err := t.store.Tx(ctx, func(s Store) error {
		c, err := s.Categories().Get(ctx, id)
		if err != nil {
			return err
		}
		if in.Name != nil && *in.Name != c.Name {
			existing, err := s.Categories().GetByName(ctx, *in.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.Conflictf("category with name %q already exists", *in.Name)
			}
			c.Name = *in.Name
		}
		if in.Description != nil {
			c.Description = *in.Description
		}
		if in.ParentID != nil && (c.ParentID == nil || *c.ParentID != *in.ParentID) {
			if err := checkParent(ctx, s, c.ID, *in.ParentID); err != nil {
				return err
			}
			c.ParentID = in.ParentID
		}
		c.UpdatedAt = time.Now().UTC()
		if err := s.Categories().Save(ctx, c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	return updated, err
}

// SetParent re-points the category at a new parent after the cycle check.
func (t *CategoryTree) SetParent(ctx context.Context, id, parentID string) (*model.Category, error) {
	return t.Update(ctx, id, UpdateCategoryInput{ParentID: &parentID})
}

// checkParent validates that parentID resolves and that adopting it
// keeps the tree acyclic. The ancestor walk is iterative and carries a
// visited set, so a corrupted parent chain terminates as a cycle
// instead of looping forever.
func checkParent(ctx context.Context, s Store, id, parentID string) error {
	if parentID == id {
		return domain.Validationf("category cannot be its own parent")
	}
	parent, err := s.Categories().Get(ctx, parentID)
	if err != nil {
		return err
	}

	visited := map[string]bool{id: true}
	for cur := parent; cur != nil; {
		if visited[cur.ID] {
			return fmt.Errorf("parent %s is a descendant of %s: %w", parentID, id, domain.ErrCycle)
		}
		visited[cur.ID] = true
		if cur.ParentID == nil {
			break
		}
		next, err := s.Categories().Get(ctx, *cur.ParentID)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

func (t *CategoryTree) Delete(ctx context.Context, id string) error {
	return t.store.Tx(ctx, func(s Store) error {
		if _, err := s.Categories().Get(ctx, id); err != nil {
			return err
		}
		children, err := s.Categories().CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if children > 0 {
			return domain.Conflictf("category has %d child categories", children)
		}
		products, err := s.Categories().CountProducts(ctx, id)
		if err != nil {
			return err
		}
		if products > 0 {
			return domain.Conflictf("category has %d associated products", products)
		}
		return s.Categories().Delete(ctx, id)
	})
}
