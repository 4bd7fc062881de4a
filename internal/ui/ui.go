// Package ui serves the wiki form. A submission is handled in-page: the same
// page is rendered again with the output region filled by the coordinator.
package ui

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/dtnitsch/wikilens/models"
	"github.com/dtnitsch/wikilens/pkg/coordinator"
	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Submitter runs one form submission into an output region.
type Submitter interface {
	Submit(ctx context.Context, input models.FormInput, out coordinator.Output) coordinator.Result
}

type pageData struct {
	Wikilink string
	Yes      bool
	No       bool
	Output   template.HTML
}

type Handler struct {
	submitter Submitter
}

func NewHandler(s Submitter) *Handler {
	return &Handler{submitter: s}
}

// Register adds the form routes to router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", h.Index)
}

// Index renders the empty form, or runs the submission when the form was
// submitted (the wikilink parameter is present, even if blank).
func (h *Handler) Index(c *gin.Context) {
	wikilink, submitted := c.GetQuery("wikilink")
	input := models.FormInput{
		Wikilink: wikilink,
		Choice:   models.ParseChoice(c.Query("check")),
	}

	data := pageData{
		Wikilink: input.Wikilink,
		Yes:      input.Choice == models.ChoiceYes,
		No:       input.Choice == models.ChoiceNo,
	}

	if submitted {
		// Each request owns its region, so overlapping submissions never share output.
		out := &coordinator.Region{}
		h.submitter.Submit(c.Request.Context(), input, out)
		// Backend content is sanitized before it is stored.
		data.Output = template.HTML(out.String())
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := indexTemplate.Execute(c.Writer, data); err != nil {
		_ = c.Error(err)
	}
}
