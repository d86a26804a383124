package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/budget-zero/backend/pkg/codec"
	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/budget-zero/backend/pkg/httputil"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

var ErrNoFilePost = errors.New("you must send a file to this endpoint")

type ImportQuery struct {
	Confirm *int `form:"confirm" binding:"required" example:"12"` // Number of transactions the import replaces
}

type ImportResponse struct {
	Data ImportResult `json:"data"` // Result of the import
}

type ImportResult struct {
	Transactions      int               `json:"transactions" example:"42"` // Number of imported transactions
	DerivedCategories []models.Category `json:"derivedCategories"`         // Categories and subcategories that were created
	DerivedLabels     []models.Label    `json:"derivedLabels"`             // Labels that were created
}

func (co Controller) RegisterDocumentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.Export)

	r.OPTIONS("/import", httputil.OptionsPost)
	r.POST("/import", co.Import)

	r.OPTIONS("/backup", httputil.OptionsGet)
	r.GET("/backup", co.GetBackup)
}

// @Summary     Export
// @Description Exports all transactions as a JSON document that can be imported again
// @Tags        Import
// @Produce     json
// @Success     200 {array}  codec.Record
// @Failure     500 {object} httperrors.HTTPError
// @Router      /v1/export [get]
func (co Controller) Export(c *gin.Context) {
	data, err := co.Session.Export()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", codec.FileName(time.Now())))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// @Summary     Import
// @Description Replaces all transactions with the ones in the document. Categories, subcategories and labels
// @Description the transactions use are created if they do not exist. The document is either the request body
// @Description or a file uploaded as "file".
// @Tags        Import
// @Accept      json
// @Accept      multipart/form-data
// @Produce     json
// @Success     200     {object} ImportResponse
// @Failure     400     {object} httperrors.HTTPError
// @Failure     409     {object} httperrors.HTTPError
// @Failure     500     {object} httperrors.HTTPError
// @Param       confirm query    int            true  "Number of transactions that are replaced"
// @Param       file    formData file           false "File to import"
// @Param       records body     []codec.Record false "Document to import"
// @Router      /v1/import [post]
func (co Controller) Import(c *gin.Context) {
	var params ImportQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		httperrors.New(c, http.StatusBadRequest, "The number of transactions the import replaces must be confirmed with the confirm parameter")
		return
	}

	data, err := readDocument(c)
	if err != nil {
		httperrors.New(c, http.StatusBadRequest, err.Error())
		return
	}

	document, err := co.Session.Import(c.Request.Context(), data, *params.Confirm)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	result := ImportResult{
		Transactions:      len(document.Transactions),
		DerivedCategories: document.DerivedCategories,
		DerivedLabels:     document.DerivedLabels,
	}

	if result.DerivedCategories == nil {
		result.DerivedCategories = []models.Category{}
	}
	if result.DerivedLabels == nil {
		result.DerivedLabels = []models.Label{}
	}

	c.JSON(http.StatusOK, ImportResponse{Data: result})
}

// readDocument reads the uploaded file or, if there is none, the body.
func readDocument(c *gin.Context) ([]byte, error) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}

		if len(data) == 0 {
			return nil, httputil.ErrRequestBodyEmpty
		}
		return data, nil
	}

	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, ErrNoFilePost
	}
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, ".json") {
		return nil, errors.New("this endpoint only supports .json files")
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// @Summary     Backup
// @Description Returns the complete budget: all transactions, categories and labels
// @Tags        Import
// @Produce     json
// @Success     200 {object} codec.Backup
// @Router      /v1/backup [get]
func (co Controller) GetBackup(c *gin.Context) {
	c.JSON(http.StatusOK, co.Session.Backup())
}
