package web

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"todo-list/internal/errors"
)

const messageIndexMissing = "Could not find index.html. Make sure the file exists in the static directory."

// mountStatic serves the asset directory under the configured prefix.
// Everything under the prefix is treated as immutable.
func (s *Server) mountStatic() {
	assets := s.Router.Group(s.Config.Static.Prefix, CacheControlMiddleware(s.Config.Static.CacheControl))
	assets.Static("/", s.Config.Static.Dir)
}

// index returns the front-end entry page. A missing page is reported in the body, not
// through the status code.
func (s *Server) index(c *gin.Context) {
	path := s.Config.GetIndexPath()

	page, err := os.ReadFile(path)
	if err != nil {
		appErr := errors.NewAssetMissingError(path, err)
		s.log.Printf("request %s: %v", requestID(c), appErr)
		s.renderMessage(c, http.StatusOK, messageError, messageIndexMissing)
		return
	}

	c.Data(http.StatusOK, htmlContentType, page)
}
