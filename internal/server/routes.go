package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danmuck/memberbar/internal/app"
	"github.com/danmuck/memberbar/internal/toolbar"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type toolbarResponse struct {
	Visible bool             `json:"visible"`
	Nodes   []toolbar.Node   `json:"nodes,omitempty"`
	Tree    []toolbar.Branch `json:"tree,omitempty"`
}

type hookEntry struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": "memberbar",
			"site":    s.site.Name,
		})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/", s.requireToken())
	api.GET("/hooks", s.handleHooks)
	api.GET("/toolbar", s.handleToolbar)
}

func (s *Server) handleHooks(c *gin.Context) {
	h := s.composer.Hooks()
	out := make(map[string][]hookEntry)
	for _, hook := range h.Hooks() {
		for _, e := range h.Entries(hook) {
			out[hook] = append(out[hook], hookEntry{Name: e.Name, Priority: e.Priority})
		}
	}
	c.JSON(http.StatusOK, out)
}

// handleToolbar previews the toolbar for
// ?viewer=<slug>&displayed=<slug>&url=<page>&edit=<link>&ajax=<bool>&tree=<bool>.
// An empty viewer renders for an anonymous visitor.
func (s *Server) handleToolbar(c *gin.Context) {
	p := app.Preview{
		Viewer:    c.Query("viewer"),
		Displayed: c.Query("displayed"),
		URL:       c.Query("url"),
		EditLink:  c.Query("edit"),
	}
	if raw := c.Query("ajax"); raw != "" {
		ajax, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ajax must be a boolean"})
			return
		}
		p.Ajax = ajax
	}
	env, err := app.NewEnv(s.site, s.directory, p)
	if errors.Is(err, app.ErrUnknownMember) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bar := s.composer.Build(env)
	resp := toolbarResponse{Visible: bar.Visible()}
	if tree, _ := strconv.ParseBool(c.Query("tree")); tree {
		resp.Tree = bar.Tree()
	} else {
		resp.Nodes = bar.Nodes()
	}
	c.JSON(http.StatusOK, resp)
}
