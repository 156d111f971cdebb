package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SeamusWaldron/cubeengine"
	"github.com/SeamusWaldron/cubeengine/internal/analysis"
	"github.com/SeamusWaldron/cubeengine/internal/session"
)

const listLimit = 100

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleCreate(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	st, err := s.svc.Create(req.Dim, req.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sessionsCreated.Inc()
	c.JSON(http.StatusCreated, st)
}

func (s *Server) handleList(c *gin.Context) {
	rows, err := s.svc.List(listLimit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]SessionSummary, len(rows))
	for i, r := range rows {
		out[i] = SessionSummary{
			ID:        r.SessionID,
			Dim:       r.Dim,
			UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
		}
		if r.Notes != nil {
			out[i].Notes = *r.Notes
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleImport(c *gin.Context) {
	var doc session.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		abortBadRequest(c, err)
		return
	}

	st, err := s.svc.Import(&doc)
	if err != nil {
		abortWithError(c, err)
		return
	}
	sessionsCreated.Inc()
	c.JSON(http.StatusCreated, st)
}

func (s *Server) handleGet(c *gin.Context) {
	st, err := s.svc.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.svc.Delete(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respond writes a mutation result and counts its moves.
func (s *Server) respond(c *gin.Context, op string, res *session.Result, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	movesApplied.WithLabelValues(op).Add(float64(len(res.Applied)))
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleRotate(c *gin.Context) {
	var req RotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := s.svc.Rotate(c.Param("id"), req.Moves)
	s.respond(c, "rotate", res, err)
}

func (s *Server) handleScramble(c *gin.Context) {
	var req ScrambleRequest
	// An empty body takes every default
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, err)
			return
		}
	}

	n := s.scrambleLength
	if req.Count != nil {
		n = *req.Count
	}
	var opts []cubeengine.ScrambleOption
	if req.RandomLayers != nil {
		opts = append(opts, cubeengine.WithRandomLayers(*req.RandomLayers))
	}
	if req.RandomTurns != nil {
		opts = append(opts, cubeengine.WithRandomTurns(*req.RandomTurns))
	}

	res, err := s.svc.Scramble(c.Param("id"), n, opts...)
	s.respond(c, "scramble", res, err)
}

func (s *Server) handleRevert(c *gin.Context) {
	var req RevertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	res, err := s.svc.RevertTo(c.Param("id"), *req.Index)
	s.respond(c, "revert", res, err)
}

func (s *Server) handleUndo(c *gin.Context) {
	res, err := s.svc.Undo(c.Param("id"))
	s.respond(c, "undo", res, err)
}

func (s *Server) handleSolve(c *gin.Context) {
	res, err := s.svc.Solve(c.Param("id"))
	s.respond(c, "solve", res, err)
}

func (s *Server) handleExport(c *gin.Context) {
	doc, err := s.svc.Export(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handlePhases(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.svc.Get(id); err != nil {
		abortWithError(c, err)
		return
	}
	events, err := s.svc.Phases(id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	type phaseJSON struct {
		MoveIndex int    `json:"move_index"`
		Phase     string `json:"phase"`
		ReachedAt string `json:"reached_at"`
	}
	out := make([]phaseJSON, len(events))
	for i, e := range events {
		out[i] = phaseJSON{MoveIndex: e.MoveIndex, Phase: e.Phase, ReachedAt: e.ReachedAt.Format(time.RFC3339)}
	}
	c.JSON(http.StatusOK, out)
}

// withCube loads a session and passes its engine to fn.
func (s *Server) withCube(c *gin.Context, fn func(*cubeengine.Cube) any) {
	st, err := s.svc.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fn(st.Cube()))
}

func (s *Server) handleWireframe(c *gin.Context) {
	s.withCube(c, func(cube *cubeengine.Cube) any { return cube.Wireframe() })
}

func (s *Server) handleMesh(c *gin.Context) {
	perQuad := true
	if v := c.Query("per_quad"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		perQuad = b
	}
	s.withCube(c, func(cube *cubeengine.Cube) any { return cube.Mesh(perQuad) })
}

func (s *Server) handleLabels(c *gin.Context) {
	s.withCube(c, func(cube *cubeengine.Cube) any { return cube.FaceLabels() })
}

func (s *Server) handleStats(c *gin.Context) {
	s.withCube(c, func(cube *cubeengine.Cube) any { return analysis.Summarize(cube.History()) })
}
