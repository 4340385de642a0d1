package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const staticMaxAge = 24 * time.Hour

type asset struct {
	data []byte
	etag string
}

// Static serves every file of fsys under prefix with a one day
// Cache-Control, a content-hash ETag and the process start as
// Last-Modified. Conditional requests are answered by http.ServeContent.
func Static(r gin.IRouter, prefix string, fsys fs.FS) error {
	assets := make(map[string]asset)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		assets[p] = asset{data: data, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
		return nil
	})
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	loaded := time.Now().UTC().Truncate(time.Second)
	cacheControl := fmt.Sprintf("public, max-age=%d", int(staticMaxAge.Seconds()))
	serve := func(c *gin.Context) {
		name := strings.TrimPrefix(path.Clean(c.Param("filepath")), "/")
		a, ok := assets[name]
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.Header("Cache-Control", cacheControl)
		c.Header("ETag", a.etag)
		http.ServeContent(c.Writer, c.Request, name, loaded, bytes.NewReader(a.data))
	}

	group := r.Group(prefix)
	group.GET("/*filepath", serve)
	group.HEAD("/*filepath", serve)
	return nil
}
