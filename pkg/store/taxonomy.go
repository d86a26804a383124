package store

import (
	"fmt"

	"github.com/budget-zero/backend/pkg/models"
	"golang.org/x/exp/slices"
)

// Taxonomy is the taxonomy store. It owns the categories with their
// subcategories and the labels, and guards them against the transactions
// referencing them.
//
// Lookups by name ignore case. Categories and labels are kept ordered by name.
type Taxonomy struct {
	transactions *Transactions
	categories   []models.Category
	labels       []models.Label
}

// NewTaxonomy returns an empty taxonomy guarding the transactions.
func NewTaxonomy(transactions *Transactions) *Taxonomy {
	return &Taxonomy{transactions: transactions}
}

// Categories returns a copy of all categories, ordered by name.
func (s *Taxonomy) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Clone()
	}
	return out
}

// Category returns the category with the name.
func (s *Taxonomy) Category(name string) (models.Category, error) {
	idx := s.categoryIndex(name)
	if idx == -1 {
		return models.Category{}, fmt.Errorf("%w category %q", models.ErrNotFound, name)
	}
	return s.categories[idx].Clone(), nil
}

// Labels returns a copy of all labels, ordered by name.
func (s *Taxonomy) Labels() []models.Label {
	return append([]models.Label{}, s.labels...)
}

// Label returns the label with the name.
func (s *Taxonomy) Label(name string) (models.Label, error) {
	idx := s.labelIndex(name)
	if idx == -1 {
		return models.Label{}, fmt.Errorf("%w label %q", models.ErrNotFound, name)
	}
	return s.labels[idx], nil
}

// AddCategory creates a category. Without subcategories, the category gets
// the default subcategory.
func (s *Taxonomy) AddCategory(name string, subcategories ...string) (models.Category, error) {
	name, err := models.CleanName(name)
	if err != nil {
		return models.Category{}, err
	}

	if s.categoryIndex(name) != -1 {
		return models.Category{}, fmt.Errorf("category %q: %w", name, models.ErrDuplicateName)
	}

	if len(subcategories) == 0 {
		subcategories = []string{models.DefaultSubcategory}
	}

	c := models.Category{Name: name}
	for _, sub := range subcategories {
		sub, err := models.CleanName(sub)
		if err != nil {
			return models.Category{}, fmt.Errorf("subcategory of %q: %w", name, err)
		}

		if c.HasSubcategory(sub) {
			return models.Category{}, fmt.Errorf("subcategory %q of %q: %w", sub, name, models.ErrDuplicateName)
		}
		c.Subcategories = append(c.Subcategories, sub)
	}

	s.categories = append(s.categories, c)
	s.sortCategories()

	return c.Clone(), nil
}

// DeleteCategory removes a category. It fails with ErrInUse while any
// transaction references the category.
func (s *Taxonomy) DeleteCategory(name string) error {
	idx := s.categoryIndex(name)
	if idx == -1 {
		return fmt.Errorf("%w category %q", models.ErrNotFound, name)
	}

	canonical := s.categories[idx].Name
	if s.transactions.any(func(t models.Transaction) bool { return models.SameName(t.Category, canonical) }) {
		return fmt.Errorf("category %q: %w", canonical, models.ErrInUse)
	}

	s.categories = slices.Delete(s.categories, idx, idx+1)
	return nil
}

// RenameCategory renames a category and every transaction referencing it,
// whatever the case of the name they hold. Changing only the case of a
// name is allowed.
func (s *Taxonomy) RenameCategory(old, name string) (models.Category, error) {
	name, err := models.CleanName(name)
	if err != nil {
		return models.Category{}, err
	}

	idx := s.categoryIndex(old)
	if idx == -1 {
		return models.Category{}, fmt.Errorf("%w category %q", models.ErrNotFound, old)
	}

	if other := s.categoryIndex(name); other != -1 && other != idx {
		return models.Category{}, fmt.Errorf("category %q: %w", name, models.ErrDuplicateName)
	}

	previous := s.categories[idx].Name
	s.categories[idx].Name = name
	c := s.categories[idx].Clone()
	s.sortCategories()

	s.transactions.rewrite(func(t *models.Transaction) {
		if models.SameName(t.Category, previous) {
			t.Category = name
		}
	})

	return c, nil
}

// AddSubcategory adds a subcategory to a category.
func (s *Taxonomy) AddSubcategory(category, name string) (models.Category, error) {
	name, err := models.CleanName(name)
	if err != nil {
		return models.Category{}, err
	}

	idx := s.categoryIndex(category)
	if idx == -1 {
		return models.Category{}, fmt.Errorf("%w category %q", models.ErrNotFound, category)
	}

	c := &s.categories[idx]
	if c.HasSubcategory(name) {
		return models.Category{}, fmt.Errorf("subcategory %q of %q: %w", name, c.Name, models.ErrDuplicateName)
	}

	c.Subcategories = append(c.Subcategories, name)
	return c.Clone(), nil
}

// DeleteSubcategory removes a subcategory from a category. It fails with
// ErrInUse while any transaction of the category uses the subcategory.
func (s *Taxonomy) DeleteSubcategory(category, name string) error {
	idx := s.categoryIndex(category)
	if idx == -1 {
		return fmt.Errorf("%w category %q", models.ErrNotFound, category)
	}

	c := &s.categories[idx]
	sub := c.SubcategoryIndex(name)
	if sub == -1 {
		return fmt.Errorf("%w subcategory %q in category %q", models.ErrNotFound, name, c.Name)
	}

	canonical := c.Subcategories[sub]
	if s.transactions.any(func(t models.Transaction) bool {
		return models.SameName(t.Category, c.Name) && models.SameName(t.Subcategory, canonical)
	}) {
		return fmt.Errorf("subcategory %q of %q: %w", canonical, c.Name, models.ErrInUse)
	}

	c.Subcategories = slices.Delete(c.Subcategories, sub, sub+1)
	return nil
}

// RenameSubcategory renames a subcategory and updates the transactions of
// the category that use it.
func (s *Taxonomy) RenameSubcategory(category, old, name string) (models.Category, error) {
	name, err := models.CleanName(name)
	if err != nil {
		return models.Category{}, err
	}

	idx := s.categoryIndex(category)
	if idx == -1 {
		return models.Category{}, fmt.Errorf("%w category %q", models.ErrNotFound, category)
	}

	c := &s.categories[idx]
	sub := c.SubcategoryIndex(old)
	if sub == -1 {
		return models.Category{}, fmt.Errorf("%w subcategory %q in category %q", models.ErrNotFound, old, c.Name)
	}

	if other := c.SubcategoryIndex(name); other != -1 && other != sub {
		return models.Category{}, fmt.Errorf("subcategory %q of %q: %w", name, c.Name, models.ErrDuplicateName)
	}

	previous := c.Subcategories[sub]
	c.Subcategories[sub] = name

	s.transactions.rewrite(func(t *models.Transaction) {
		if models.SameName(t.Category, c.Name) && models.SameName(t.Subcategory, previous) {
			t.Subcategory = name
		}
	})

	return c.Clone(), nil
}

// AddLabel creates a label. A label without color gets the default color.
func (s *Taxonomy) AddLabel(label models.Label) (models.Label, error) {
	name, err := models.CleanName(label.Name)
	if err != nil {
		return models.Label{}, err
	}
	label.Name = name

	if s.labelIndex(name) != -1 {
		return models.Label{}, fmt.Errorf("label %q: %w", name, models.ErrDuplicateName)
	}

	if label.Color == "" {
		label.Color = models.DefaultLabelColor
	}

	s.labels = append(s.labels, label)
	s.sortLabels()

	return label, nil
}

// UpdateLabel sets the color and icon of a label. An empty color resets it
// to the default color.
func (s *Taxonomy) UpdateLabel(name, color, icon string) (models.Label, error) {
	idx := s.labelIndex(name)
	if idx == -1 {
		return models.Label{}, fmt.Errorf("%w label %q", models.ErrNotFound, name)
	}

	if color == "" {
		color = models.DefaultLabelColor
	}

	s.labels[idx].Color = color
	s.labels[idx].Icon = icon
	return s.labels[idx], nil
}

// DeleteLabel removes a label. It fails with ErrInUse while any transaction
// carries the label.
func (s *Taxonomy) DeleteLabel(name string) error {
	idx := s.labelIndex(name)
	if idx == -1 {
		return fmt.Errorf("%w label %q", models.ErrNotFound, name)
	}

	canonical := s.labels[idx].Name
	if s.transactions.any(func(t models.Transaction) bool {
		return slices.ContainsFunc(t.Labels, func(l string) bool { return models.SameName(l, canonical) })
	}) {
		return fmt.Errorf("label %q: %w", canonical, models.ErrInUse)
	}

	s.labels = slices.Delete(s.labels, idx, idx+1)
	return nil
}

// RenameLabel renames a label and replaces it in the label set of every
// transaction carrying it.
func (s *Taxonomy) RenameLabel(old, name string) (models.Label, error) {
	name, err := models.CleanName(name)
	if err != nil {
		return models.Label{}, err
	}

	idx := s.labelIndex(old)
	if idx == -1 {
		return models.Label{}, fmt.Errorf("%w label %q", models.ErrNotFound, old)
	}

	if other := s.labelIndex(name); other != -1 && other != idx {
		return models.Label{}, fmt.Errorf("label %q: %w", name, models.ErrDuplicateName)
	}

	previous := s.labels[idx].Name
	s.labels[idx].Name = name
	l := s.labels[idx]
	s.sortLabels()

	s.transactions.rewrite(func(t *models.Transaction) {
		renamed := false
		for i := range t.Labels {
			if models.SameName(t.Labels[i], previous) {
				t.Labels[i] = name
				renamed = true
			}
		}
		if renamed {
			t.TransactionDraft = t.TransactionDraft.Normalize()
		}
	})

	return l, nil
}

// Merge adds the categories, subcategories and labels that are not known
// yet. Existing entries are never changed or removed. Nothing is merged if
// any name is blank.
func (s *Taxonomy) Merge(categories []models.Category, labels []models.Label) error {
	merged := NewTaxonomy(s.transactions)
	merged.categories = s.Categories()
	merged.labels = s.Labels()

	for _, c := range categories {
		name, err := models.CleanName(c.Name)
		if err != nil {
			return err
		}

		idx := merged.categoryIndex(name)
		if idx == -1 {
			subcategories := c.Subcategories
			if len(subcategories) == 0 {
				subcategories = []string{models.DefaultSubcategory}
			}

			merged.categories = append(merged.categories, models.Category{Name: name})
			idx = len(merged.categories) - 1
			c.Subcategories = subcategories
		}

		target := &merged.categories[idx]
		for _, sub := range c.Subcategories {
			sub, err := models.CleanName(sub)
			if err != nil {
				return fmt.Errorf("subcategory of %q: %w", name, err)
			}

			if !target.HasSubcategory(sub) {
				target.Subcategories = append(target.Subcategories, sub)
			}
		}
		merged.sortCategories()
	}

	for _, l := range labels {
		name, err := models.CleanName(l.Name)
		if err != nil {
			return err
		}

		if merged.labelIndex(name) != -1 {
			continue
		}

		l.Name = name
		if l.Color == "" {
			l.Color = models.DefaultLabelColor
		}
		merged.labels = append(merged.labels, l)
	}
	merged.sortLabels()

	s.categories = merged.categories
	s.labels = merged.labels
	return nil
}

// restore loads a previously captured state.
func (s *Taxonomy) restore(categories []models.Category, labels []models.Label) {
	s.categories = categories
	s.labels = labels
	s.sortCategories()
	s.sortLabels()
}

func (s *Taxonomy) categoryIndex(name string) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool {
		return models.SameName(c.Name, name)
	})
}

func (s *Taxonomy) labelIndex(name string) int {
	return slices.IndexFunc(s.labels, func(l models.Label) bool {
		return models.SameName(l.Name, name)
	})
}

func (s *Taxonomy) sortCategories() {
	slices.SortStableFunc(s.categories, func(a, b models.Category) int {
		return models.CompareNames(a.Name, b.Name)
	})
}

func (s *Taxonomy) sortLabels() {
	slices.SortStableFunc(s.labels, func(a, b models.Label) int {
		return models.CompareNames(a.Name, b.Name)
	})
}
