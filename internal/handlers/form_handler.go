package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"employee-directory/internal/client"
	"employee-directory/internal/form"
	"employee-directory/internal/models"
)

// FormHandler renders the add view and submits drafts. Every request gets
// its own form.Form; the draft travels in the posted fields.
type FormHandler struct {
	Creator form.Creator
	Logger  zerolog.Logger
	Now     func() time.Time
	// OnCreated runs after every successful create.
	OnCreated func()
}

func NewFormHandler(creator form.Creator, logger zerolog.Logger) *FormHandler {
	return &FormHandler{Creator: creator, Logger: logger, Now: time.Now}
}

// GET /add
func (h *FormHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, models.Draft{}, nil)
}

// POST /add
func (h *FormHandler) Submit(c *gin.Context) {
	opts := []form.Option{form.WithClock(h.Now), form.WithLogger(h.Logger)}
	if h.OnCreated != nil {
		opts = append(opts, form.OnCreated(func(models.Draft) { h.OnCreated() }))
	}
	f := form.New(h.Creator, opts...)

	for _, field := range models.DraftFields {
		if err := f.Set(field, c.PostForm(field)); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
	}

	out := f.Submit(c.Request.Context())

	status := http.StatusOK
	switch out.Kind {
	case form.Invalid:
		status = http.StatusUnprocessableEntity
	case form.Rejected:
		status = http.StatusBadGateway
		var apiErr *client.APIError
		if errors.As(out.Err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
	case form.Failed:
		status = http.StatusBadGateway
	}

	h.render(c, status, f.Draft(), &out)
}

func (h *FormHandler) render(c *gin.Context, status int, d models.Draft, out *form.Outcome) {
	c.HTML(status, "add.html", gin.H{
		"Title":       "Add New Employee",
		"Draft":       d,
		"Departments": models.Departments,
		"MaxDate":     h.Now().Format("2006-01-02"),
		"Outcome":     out,
	})
}
