// Package webui serves the transcript form as a single HTML page.
package webui

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anatolykoptev/go_transcript/internal/form"
)

const (
	pageTitle   = "YouTube Transcript Extractor"
	pageCaption = "Paste a YouTube link to get its transcript."
)

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Title       string
	Caption     string
	URL         string
	Banners     []form.Banner
	OutputLabel string
	Result      *form.Result
}

// NewRouter builds the gin engine: GET / shows the form, POST / submits it.
func NewRouter(c *form.Controller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.SetHTMLTemplate(pageTmpl)

	r.GET("/", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "page", newPageData(c, "", nil))
	})
	r.POST("/", func(ctx *gin.Context) {
		raw := ctx.PostForm("url")
		res := c.Submit(ctx.Request.Context(), raw)
		ctx.HTML(http.StatusOK, "page", newPageData(c, raw, &res))
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newPageData(c *form.Controller, raw string, res *form.Result) pageData {
	d := pageData{
		Title:       pageTitle,
		Caption:     pageCaption,
		URL:         raw,
		OutputLabel: c.OutputLabel(),
		Result:      res,
	}
	if res != nil {
		d.Banners = res.Banners
	}
	return d
}

// requestLogger logs every non-health request through slog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}
		if status >= 500 {
			slog.Error("request completed", attrs...)
			return
		}
		slog.Debug("request completed", attrs...)
	}
}
