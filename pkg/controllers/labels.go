package controllers

import (
	"net/http"
	"net/url"

	"github.com/budget-zero/backend/pkg/httperrors"
	"github.com/budget-zero/backend/pkg/httputil"
	"github.com/budget-zero/backend/pkg/models"
	"github.com/budget-zero/backend/pkg/query"
	"github.com/gin-gonic/gin"
)

type LabelListResponse struct {
	Data []Label `json:"data"` // List of labels
}

type LabelResponse struct {
	Data Label `json:"data"` // Data for the label
}

type LabelStatsResponse struct {
	Data query.Totals `json:"data"` // Totals of the transactions carrying the label
}

type Label struct {
	models.Label
	Links LabelLinks `json:"links"`
}

type LabelLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/labels/Vacances"`                     // The label itself
	Stats        string `json:"stats" example:"https://example.com/api/v1/labels/Vacances/stats"`              // Totals of the label
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?label=Vacances"` // Transactions carrying the label
}

// LabelEditable changes a label. Fields that are not set keep their value.
type LabelEditable struct {
	Name  *string `json:"name,omitempty" example:"Voyages"`  // New name. Transactions carrying the label are updated
	Color *string `json:"color,omitempty" example:"#ec4899"` // New color. The empty string resets it to the default color
	Icon  *string `json:"icon,omitempty" example:"🧳"`        // New icon
}

func newLabel(c *gin.Context, l models.Label) Label {
	self := httputil.URL(c, labelPath(l.Name))
	return Label{
		Label: l,
		Links: LabelLinks{
			Self:         self,
			Stats:        self + "/stats",
			Transactions: httputil.URL(c, "/v1/transactions?label="+url.QueryEscape(l.Name)),
		},
	}
}

// RegisterLabelRoutes registers the routes for labels with
// the RouterGroup that is passed.
func (co Controller) RegisterLabelRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetLabels)
		r.POST("", co.CreateLabel)
	}

	// Label with name
	{
		r.OPTIONS("/:label", co.OptionsLabelDetail)
		r.GET("/:label", co.GetLabel)
		r.PATCH("/:label", co.UpdateLabel)
		r.DELETE("/:label", co.DeleteLabel)
		r.OPTIONS("/:label/stats", httputil.OptionsGet)
		r.GET("/:label/stats", co.GetLabelStats)
	}
}

// @Summary     Allowed HTTP verbs
// @Description Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags        Labels
// @Success     204
// @Failure     404   {object} httperrors.HTTPError
// @Param       label path     string true "Name of the label"
// @Router      /v1/labels/{label} [options]
func (co Controller) OptionsLabelDetail(c *gin.Context) {
	if _, err := co.Session.Label(c.Param("label")); err != nil {
		httperrors.Handler(c, err)
		return
	}
	httputil.OptionsGetPatchDelete(c)
}

// @Summary     Get labels
// @Description Returns all labels ordered by name
// @Tags        Labels
// @Produce     json
// @Success     200 {object} LabelListResponse
// @Router      /v1/labels [get]
func (co Controller) GetLabels(c *gin.Context) {
	labels := make([]Label, 0)
	for _, l := range co.Session.Labels() {
		labels = append(labels, newLabel(c, l))
	}

	c.JSON(http.StatusOK, LabelListResponse{Data: labels})
}

// @Summary     Create label
// @Description Creates a new label
// @Tags        Labels
// @Accept      json
// @Produce     json
// @Success     201   {object} LabelResponse
// @Failure     400   {object} httperrors.HTTPError
// @Failure     409   {object} httperrors.HTTPError
// @Param       label body     models.Label true "Label"
// @Router      /v1/labels [post]
func (co Controller) CreateLabel(c *gin.Context) {
	var label models.Label
	if err := httputil.BindData(c, &label); err != nil {
		return
	}

	label, err := co.Session.AddLabel(c.Request.Context(), label)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, LabelResponse{Data: newLabel(c, label)})
}

// @Summary     Get label
// @Description Returns a specific label
// @Tags        Labels
// @Produce     json
// @Success     200   {object} LabelResponse
// @Failure     404   {object} httperrors.HTTPError
// @Param       label path     string true "Name of the label"
// @Router      /v1/labels/{label} [get]
func (co Controller) GetLabel(c *gin.Context) {
	label, err := co.Session.Label(c.Param("label"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, LabelResponse{Data: newLabel(c, label)})
}

// @Summary     Update label
// @Description Renames a label or changes its color and icon. Only values to be updated need to be specified.
// @Tags        Labels
// @Accept      json
// @Produce     json
// @Success     200   {object} LabelResponse
// @Failure     400   {object} httperrors.HTTPError
// @Failure     404   {object} httperrors.HTTPError
// @Failure     409   {object} httperrors.HTTPError
// @Param       label path     string        true "Name of the label"
// @Param       data  body     LabelEditable true "Label"
// @Router      /v1/labels/{label} [patch]
func (co Controller) UpdateLabel(c *gin.Context) {
	label, err := co.Session.Label(c.Param("label"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	var data LabelEditable
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if data.Name != nil {
		label, err = co.Session.RenameLabel(c.Request.Context(), label.Name, *data.Name)
		if err != nil {
			httperrors.Handler(c, err)
			return
		}
	}

	if data.Color != nil || data.Icon != nil {
		color, icon := label.Color, label.Icon
		if data.Color != nil {
			color = *data.Color
		}
		if data.Icon != nil {
			icon = *data.Icon
		}

		label, err = co.Session.UpdateLabel(c.Request.Context(), label.Name, color, icon)
		if err != nil {
			httperrors.Handler(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, LabelResponse{Data: newLabel(c, label)})
}

// @Summary     Delete label
// @Description Deletes a label that no transaction carries
// @Tags        Labels
// @Success     204
// @Failure     404   {object} httperrors.HTTPError
// @Failure     409   {object} httperrors.HTTPError
// @Param       label path     string true "Name of the label"
// @Router      /v1/labels/{label} [delete]
func (co Controller) DeleteLabel(c *gin.Context) {
	if err := co.Session.DeleteLabel(c.Request.Context(), c.Param("label")); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary     Get label stats
// @Description Returns the totals of the transactions carrying the label
// @Tags        Labels
// @Produce     json
// @Success     200      {object} LabelStatsResponse
// @Failure     400      {object} httperrors.HTTPError
// @Failure     404      {object} httperrors.HTTPError
// @Param       label    path     string true  "Name of the label"
// @Param       month    query    string false "Month of the transaction date, YYYY-MM"
// @Param       category query    string false "Exact category name"
// @Router      /v1/labels/{label}/stats [get]
func (co Controller) GetLabelStats(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	totals, err := co.Session.LabelStats(c.Param("label"), f)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, LabelStatsResponse{Data: totals})
}
