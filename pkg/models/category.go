package models

import (
	"golang.org/x/exp/slices"
)

// DefaultSubcategory is used for categories created without subcategories
// and for transactions without a subcategory in the flow graph.
const DefaultSubcategory = "General"

// BaseCategories are offered on a fresh budget.
var BaseCategories = []string{"Nourriture", "Logement", "Transport", "Loisirs", "Santé", "Salaire", "Autre"}

// BaseMethods are the payment methods always offered, in addition to the
// ones found on transactions.
var BaseMethods = []string{"Carte", "Espèce", "Virement", "Chèque"}

// Category is a named group of transactions with its subcategories.
type Category struct {
	Name          string   `json:"name" example:"Logement"`         // Name of the category, unique regardless of case
	Subcategories []string `json:"subcategories" example:"General"` // Subcategory names, unique within the category
}

// HasSubcategory reports whether the category has a subcategory with that
// name, regardless of case.
func (c Category) HasSubcategory(name string) bool {
	return c.SubcategoryIndex(name) != -1
}

// SubcategoryIndex returns the index of the subcategory or -1.
func (c Category) SubcategoryIndex(name string) int {
	return slices.IndexFunc(c.Subcategories, func(s string) bool {
		return SameName(s, name)
	})
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	c.Subcategories = append([]string(nil), c.Subcategories...)
	return c
}
