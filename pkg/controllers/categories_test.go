package controllers_test

import (
	"net/http"

	"github.com/budget-zero/backend/pkg/controllers"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/test"
)

func (suite *TestSuiteStandard) createTestCategory(c controllers.CategoryCreate, expectedStatus ...int) controllers.CategoryResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := suite.request(http.MethodPost, "http://example.com/v1/categories", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var category controllers.CategoryResponse
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &category)
	}

	return category
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	category := suite.createTestCategory(controllers.CategoryCreate{Name: "Santé"})

	suite.Equal("Santé", category.Data.Name)
	suite.Equal([]string{models.DefaultSubcategory}, category.Data.Subcategories)
	suite.Equal("http://example.com/v1/categories/Sant%C3%A9", category.Data.Links.Self)
	suite.Equal("http://example.com/v1/categories/Sant%C3%A9/subcategories", category.Data.Links.Subcategories)
	suite.Equal("http://example.com/v1/transactions?category=Sant%C3%A9", category.Data.Links.Transactions)

	r := suite.request(http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.createTestCategory(controllers.CategoryCreate{Name: "SANTÉ"}, http.StatusConflict)
	suite.createTestCategory(controllers.CategoryCreate{Name: "  "}, http.StatusBadRequest)
	suite.createTestCategory(controllers.CategoryCreate{Name: "Logement", Subcategories: []string{"Loyer", "loyer"}}, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	suite.createTestCategory(controllers.CategoryCreate{Name: "Transport"})
	suite.createTestCategory(controllers.CategoryCreate{Name: "alimentation", Subcategories: []string{"Courses"}})
	suite.createTestCategory(controllers.CategoryCreate{Name: "Logement"})

	r := suite.request(http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	names := make([]string, 0)
	for _, c := range response.Data {
		names = append(names, c.Name)
	}
	suite.Equal([]string{"alimentation", "Logement", "Transport"}, names)
}

func (suite *TestSuiteStandard) TestCategoryWithSlash() {
	category := suite.createTestCategory(controllers.CategoryCreate{Name: "Sport/Loisirs"})
	suite.Equal("http://example.com/v1/categories/Sport%2FLoisirs", category.Data.Links.Self)

	r := suite.request(http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal("Sport/Loisirs", response.Data.Name)
}

func (suite *TestSuiteStandard) TestRenameCategory() {
	suite.createTestCategory(controllers.CategoryCreate{Name: "Logement", Subcategories: []string{"Loyer"}})
	suite.createTestCategory(controllers.CategoryCreate{Name: "Transport"})
	transaction := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300")})

	r := suite.request(http.MethodPatch, "http://example.com/v1/categories/Logement", controllers.NameEditable{Name: "Maison"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	suite.Equal("Maison", category.Data.Name)

	r = suite.request(http.MethodGet, transaction.Data.Links.Self, "")
	var updated controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Equal("Maison", updated.Data.Category, "transactions follow the rename")

	r = suite.request(http.MethodGet, "http://example.com/v1/categories/Logement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodPatch, "http://example.com/v1/categories/Maison", controllers.NameEditable{Name: "transport"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodPatch, "http://example.com/v1/categories/Maison", controllers.NameEditable{Name: "MAISON"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	suite.createTestCategory(controllers.CategoryCreate{Name: "Logement"})
	suite.createTestCategory(controllers.CategoryCreate{Name: "Transport"})
	suite.createTestTransaction(models.TransactionDraft{Category: "logement", Amount: amount("300")})

	r := suite.request(http.MethodDelete, "http://example.com/v1/categories/Logement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodDelete, "http://example.com/v1/categories/Transport", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodDelete, "http://example.com/v1/categories/Transport", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSubcategories() {
	category := suite.createTestCategory(controllers.CategoryCreate{Name: "Logement"})

	r := suite.request(http.MethodPost, category.Data.Links.Subcategories, controllers.NameEditable{Name: "Loyer"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal([]string{models.DefaultSubcategory, "Loyer"}, response.Data.Subcategories)

	r = suite.request(http.MethodPost, category.Data.Links.Subcategories, controllers.NameEditable{Name: "LOYER"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodPost, "http://example.com/v1/categories/Unknown/subcategories", controllers.NameEditable{Name: "Loyer"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	transaction := suite.createTestTransaction(models.TransactionDraft{Category: "Logement", Subcategory: "Loyer", Amount: amount("300")})

	r = suite.request(http.MethodPatch, category.Data.Links.Subcategories+"/Loyer", controllers.NameEditable{Name: "Location"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal([]string{models.DefaultSubcategory, "Location"}, response.Data.Subcategories)

	r = suite.request(http.MethodGet, transaction.Data.Links.Self, "")
	var updated controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Equal("Location", updated.Data.Subcategory)

	r = suite.request(http.MethodDelete, category.Data.Links.Subcategories+"/Location", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = suite.request(http.MethodDelete, category.Data.Links.Subcategories+"/General", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodOptions, category.Data.Links.Subcategories+"/Location", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsCategory() {
	r := suite.request(http.MethodOptions, "http://example.com/v1/categories/Logement", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	category := suite.createTestCategory(controllers.CategoryCreate{Name: "Logement"})
	r = suite.request(http.MethodOptions, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}
