package session

import (
	"context"

	"github.com/budget-zero/backend/pkg/models"
)

func (s *Session) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.taxonomy.Categories()
}

func (s *Session) Category(name string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.taxonomy.Category(name)
}

func (s *Session) AddCategory(ctx context.Context, name string, subcategories ...string) (c models.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "add category", func() error {
		c, err = s.taxonomy.AddCategory(name, subcategories...)
		return err
	})
	return
}

func (s *Session) DeleteCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.change(ctx, "delete category", func() error {
		return s.taxonomy.DeleteCategory(name)
	})
}

// RenameCategory renames the category and all transactions referencing it.
func (s *Session) RenameCategory(ctx context.Context, old, name string) (c models.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "rename category", func() error {
		c, err = s.taxonomy.RenameCategory(old, name)
		return err
	})
	return
}

func (s *Session) AddSubcategory(ctx context.Context, category, name string) (c models.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "add subcategory", func() error {
		c, err = s.taxonomy.AddSubcategory(category, name)
		return err
	})
	return
}

func (s *Session) DeleteSubcategory(ctx context.Context, category, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.change(ctx, "delete subcategory", func() error {
		return s.taxonomy.DeleteSubcategory(category, name)
	})
}

func (s *Session) RenameSubcategory(ctx context.Context, category, old, name string) (c models.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "rename subcategory", func() error {
		c, err = s.taxonomy.RenameSubcategory(category, old, name)
		return err
	})
	return
}

func (s *Session) Labels() []models.Label {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.taxonomy.Labels()
}

func (s *Session) Label(name string) (models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.taxonomy.Label(name)
}

func (s *Session) AddLabel(ctx context.Context, label models.Label) (l models.Label, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "add label", func() error {
		l, err = s.taxonomy.AddLabel(label)
		return err
	})
	return
}

// UpdateLabel sets color and icon of the label. An empty color resets it to
// the default color.
func (s *Session) UpdateLabel(ctx context.Context, name, color, icon string) (l models.Label, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "update label", func() error {
		l, err = s.taxonomy.UpdateLabel(name, color, icon)
		return err
	})
	return
}

func (s *Session) DeleteLabel(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.change(ctx, "delete label", func() error {
		return s.taxonomy.DeleteLabel(name)
	})
}

func (s *Session) RenameLabel(ctx context.Context, old, name string) (l models.Label, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.change(ctx, "rename label", func() error {
		l, err = s.taxonomy.RenameLabel(old, name)
		return err
	})
	return
}
