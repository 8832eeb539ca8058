// Package spa serves a prebuilt single-page frontend. Paths that do not name
// a regular file under the build root are answered with the entry document so
// client-side routes survive a page reload.
package spa

import (
	"net/http"
	"net/url"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
)

// IndexFile is the frontend entry document, relative to the build root.
const IndexFile = "/index.html"

// Handler serves files from a build directory.
type Handler struct {
	fs afero.Fs
}

// NewHandler serves files from fsys, which must be rooted at the build
// directory.
func NewHandler(fsys afero.Fs) *Handler {
	return &Handler{fs: fsys}
}

// NewDirHandler serves files from dir on the local disk.
func NewDirHandler(dir string) *Handler {
	return NewHandler(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

// RegisterRoutes mounts the frontend for GET and HEAD on / and every path
// not claimed by a more specific route.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	methods := []string{http.MethodGet, http.MethodHead}
	e.Match(methods, "/", h.Serve)
	e.Match(methods, "/*", h.Serve)
}

// Serve handles GET / and GET /*
func (h *Handler) Serve(c echo.Context) error {
	if name := cleanPath(c.Param("*")); name != "/" && h.isFile(name) {
		return h.serveFile(c, name)
	}
	if !h.isFile(IndexFile) {
		return echo.ErrNotFound
	}
	return h.serveFile(c, IndexFile)
}

// cleanPath unescapes a wildcard parameter and roots it, so ".." segments
// cannot climb above the build directory.
func cleanPath(p string) string {
	if u, err := url.PathUnescape(p); err == nil {
		p = u
	}
	return path.Clean("/" + p)
}

func (h *Handler) isFile(name string) bool {
	fi, err := h.fs.Stat(name)
	return err == nil && fi.Mode().IsRegular()
}

func (h *Handler) serveFile(c echo.Context, name string) error {
	f, err := h.fs.Open(name)
	if err != nil {
		return echo.ErrNotFound
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	http.ServeContent(c.Response(), c.Request(), fi.Name(), fi.ModTime(), f)
	return nil
}
