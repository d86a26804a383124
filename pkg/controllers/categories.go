package controllers

import (
	"net/http"
	"net/url"

	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/budget-zero/backend/pkg/httputil"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type CategoryListResponse struct {
	Data []Category `json:"data"` // List of categories
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

type CategoryLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/categories/Logement"`                        // The category itself
	Subcategories string `json:"subcategories" example:"https://example.com/api/v1/categories/Logement/subcategories"` // Endpoint to add subcategories
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Logement"`     // Transactions of the category
}

type CategoryCreate struct {
	Name          string   `json:"name" example:"Logement"`               // Name of the category
	Subcategories []string `json:"subcategories" example:"Loyer,Énergie"` // Subcategories. Without any, the category gets the subcategory "General"
}

// NameEditable renames a category or subcategory.
type NameEditable struct {
	Name string `json:"name" example:"Maison"` // The new name
}

func newCategory(c *gin.Context, category models.Category) Category {
	if category.Subcategories == nil {
		category.Subcategories = []string{}
	}

	self := httputil.URL(c, categoryPath(category.Name))
	return Category{
		Category: category,
		Links: CategoryLinks{
			Self:          self,
			Subcategories: self + "/subcategories",
			Transactions:  httputil.URL(c, "/v1/transactions?category="+url.QueryEscape(category.Name)),
		},
	}
}

// RegisterCategoryRoutes registers the routes for categories and their
// subcategories with the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with name
	{
		r.OPTIONS("/:category", co.OptionsCategoryDetail)
		r.GET("/:category", co.GetCategory)
		r.PATCH("/:category", co.RenameCategory)
		r.DELETE("/:category", co.DeleteCategory)
	}

	// Subcategories
	{
		r.OPTIONS("/:category/subcategories", httputil.OptionsPost)
		r.POST("/:category/subcategories", co.CreateSubcategory)
		r.OPTIONS("/:category/subcategories/:subcategory", httputil.OptionsPatchDelete)
		r.PATCH("/:category/subcategories/:subcategory", co.RenameSubcategory)
		r.DELETE("/:category/subcategories/:subcategory", co.DeleteSubcategory)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Categories
// @Success     204
// @Failure     404      {object} httperrors.HTTPError
// @Param       category path     string true "Name of the category"
// @Router      /v1/categories/{category} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	if _, err := co.Session.Category(c.Param("category")); err != nil {
		httperrors.Handler(c, err)
		return
	}
	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Get categories
// @Description Returns all categories ordered by name
// @Tags        Categories
// @Produce     json
// @Success     200 {object} CategoryListResponse
// @Router      /v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories := make([]Category, 0)
	for _, category := range co.Session.Categories() {
		categories = append(categories, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary     Create category
// @Description Creates a new category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Success     201      {object} CategoryResponse
// @Failure     400      {object} httperrors.HTTPError
// @Failure     409      {object} httperrors.HTTPError
// @Param       category body     CategoryCreate true "Category"
// @Router      /v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var create CategoryCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	category, err := co.Session.AddCategory(c.Request.Context(), create.Name, create.Subcategories...)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary     Get category
// @Description Returns a specific category
// @Tags        Categories
// @Produce     json
// @Success     200      {object} CategoryResponse
// @Failure     404      {object} httperrors.HTTPError
// @Param       category path     string true "Name of the category"
// @Router      /v1/categories/{category} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.Session.Category(c.Param("category"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary     Rename category
// @Description Renames a category. All transactions of the category are updated.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Success     200      {object} CategoryResponse
// @Failure     400      {object} httperrors.HTTPError
// @Failure     404      {object} httperrors.HTTPError
// @Failure     409      {object} httperrors.HTTPError
// @Param       category path     string       true "Name of the category"
// @Param       name     body     NameEditable true "New name"
// @Router      /v1/categories/{category} [patch]
func (co Controller) RenameCategory(c *gin.Context) {
	var data NameEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	category, err := co.Session.RenameCategory(c.Request.Context(), c.Param("category"), data.Name)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary     Delete category
// @Description Deletes a category that no transaction uses
// @Tags        Categories
// @Success     204
// @Failure     404      {object} httperrors.HTTPError
// @Failure     409      {object} httperrors.HTTPError
// @Param       category path     string true "Name of the category"
// @Router      /v1/categories/{category} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	if err := co.Session.DeleteCategory(c.Request.Context(), c.Param("category")); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary     Create subcategory
// @Description Adds a subcategory to a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Success     201         {object} CategoryResponse
// @Failure     400         {object} httperrors.HTTPError
// @Failure     404         {object} httperrors.HTTPError
// @Failure     409         {object} httperrors.HTTPError
// @Param       category    path     string       true "Name of the category"
// @Param       subcategory body     NameEditable true "Subcategory"
// @Router      /v1/categories/{category}/subcategories [post]
func (co Controller) CreateSubcategory(c *gin.Context) {
	var data NameEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	category, err := co.Session.AddSubcategory(c.Request.Context(), c.Param("category"), data.Name)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary     Rename subcategory
// @Description Renames a subcategory. All transactions of the subcategory are updated.
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Success     200         {object} CategoryResponse
// @Failure     400         {object} httperrors.HTTPError
// @Failure     404         {object} httperrors.HTTPError
// @Failure     409         {object} httperrors.HTTPError
// @Param       category    path     string       true "Name of the category"
// @Param       subcategory path     string       true "Name of the subcategory"
// @Param       name        body     NameEditable true "New name"
// @Router      /v1/categories/{category}/subcategories/{subcategory} [patch]
func (co Controller) RenameSubcategory(c *gin.Context) {
	var data NameEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	category, err := co.Session.RenameSubcategory(c.Request.Context(), c.Param("category"), c.Param("subcategory"), data.Name)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: newCategory(c, category)})
}

// @Summary     Delete subcategory
// @Description Removes a subcategory that no transaction uses
// @Tags        Categories
// @Success     204
// @Failure     404         {object} httperrors.HTTPError
// @Failure     409         {object} httperrors.HTTPError
// @Param       category    path     string true "Name of the category"
// @Param       subcategory path     string true "Name of the subcategory"
// @Router      /v1/categories/{category}/subcategories/{subcategory} [delete]
func (co Controller) DeleteSubcategory(c *gin.Context) {
	if err := co.Session.DeleteSubcategory(c.Request.Context(), c.Param("category"), c.Param("subcategory")); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
