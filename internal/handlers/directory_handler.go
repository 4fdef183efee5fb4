package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"employee-directory/internal/directory"
)

type DirectoryHandler struct {
	Directory *directory.Directory
}

func NewDirectoryHandler(d *directory.Directory) *DirectoryHandler {
	return &DirectoryHandler{Directory: d}
}

// GET /?q=&reload=1
func (h *DirectoryHandler) List(c *gin.Context) {
	if reload, _ := strconv.ParseBool(c.Query("reload")); reload {
		h.Directory.Load(c.Request.Context())
	} else {
		h.Directory.Mount(c.Request.Context())
	}

	query := c.Query("q")
	c.HTML(http.StatusOK, "list.html", gin.H{
		"Title":   "Employee Details",
		"Query":   query,
		"Columns": directory.Columns,
		"Rows":    directory.Rows(h.Directory.Filter(query)),
	})
}

// GET /rows?q= renders only the table body, for filter-as-you-type.
func (h *DirectoryHandler) Rows(c *gin.Context) {
	h.Directory.Mount(c.Request.Context())

	c.HTML(http.StatusOK, "rows", gin.H{
		"Columns": directory.Columns,
		"Rows":    directory.Rows(h.Directory.Filter(c.Query("q"))),
	})
}
