package codec

import (
	"github.com/budget-zero/backend/pkg/models"
)

// deriver collects the taxonomy entries an import adds.
type deriver struct {
	known      []models.Category
	knownCount int

	categories []models.Category
	labels     []models.Label

	// canonical spelling of labels, known and derived, by key
	labelNames map[string]string
}

func newDeriver(taxonomy Taxonomy) *deriver {
	d := &deriver{labelNames: make(map[string]string)}
	if taxonomy == nil {
		return d
	}

	d.known = taxonomy.Categories()
	for _, l := range taxonomy.Labels() {
		d.labelNames[models.Key(l.Name)] = l.Name
		d.knownCount++
	}
	return d
}

// canonicalize rewrites the names of the draft to the spelling already in
// use and records the names that are new.
func (d *deriver) canonicalize(t models.TransactionDraft) models.TransactionDraft {
	known := find(d.known, t.Category)
	derived := find(d.categories, t.Category)

	switch {
	case known != nil:
		t.Category = known.Name
	case derived != nil:
		t.Category = derived.Name
	default:
		d.categories = append(d.categories, models.Category{Name: t.Category})
		derived = &d.categories[len(d.categories)-1]
	}

	if t.Subcategory != "" {
		t.Subcategory = d.subcategory(known, derived, t.Category, t.Subcategory)
	}

	for i, l := range t.Labels {
		t.Labels[i] = d.label(l)
	}

	return t
}

func (d *deriver) subcategory(known, derived *models.Category, category, name string) string {
	if known != nil {
		if i := known.SubcategoryIndex(name); i != -1 {
			return known.Subcategories[i]
		}
	}

	if derived == nil {
		d.categories = append(d.categories, models.Category{Name: category})
		derived = &d.categories[len(d.categories)-1]
	}

	if i := derived.SubcategoryIndex(name); i != -1 {
		return derived.Subcategories[i]
	}

	derived.Subcategories = append(derived.Subcategories, name)
	return name
}

func (d *deriver) label(name string) string {
	if canonical, ok := d.labelNames[models.Key(name)]; ok {
		return canonical
	}

	color := models.LabelColors[(d.knownCount+len(d.labels))%len(models.LabelColors)]
	d.labels = append(d.labels, models.Label{Name: name, Color: color})
	d.labelNames[models.Key(name)] = name
	return name
}

// result returns the derived categories. New categories without any
// subcategory get the default one.
func (d *deriver) result() []models.Category {
	for i := range d.categories {
		c := &d.categories[i]
		if len(c.Subcategories) == 0 && find(d.known, c.Name) == nil {
			c.Subcategories = []string{models.DefaultSubcategory}
		}
	}
	return d.categories
}

// Canonicalize rewrites the names of a single draft to the spelling used by
// the taxonomy. It also returns the taxonomy entries the draft needs that
// do not exist yet.
func Canonicalize(taxonomy Taxonomy, draft models.TransactionDraft) (models.TransactionDraft, []models.Category, []models.Label) {
	d := newDeriver(taxonomy)
	draft = d.canonicalize(draft.Clone())
	return draft, d.result(), d.labels
}

func find(categories []models.Category, name string) *models.Category {
	for i := range categories {
		if models.SameName(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}
