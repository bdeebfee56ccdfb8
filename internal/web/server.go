// Package web serves the world form, the world page and the JSON API.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/apex/log"

	"life-web/internal/form"
	"life-web/internal/sim"
	"life-web/pkg/life"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Server routes HTTP requests to a shared simulation state.
type Server struct {
	state *sim.State
	pages map[string]*template.Template
	mux   *http.ServeMux
}

// New constructs a Server for state.
func New(state *sim.State) (*Server, error) {
	s := &Server{state: state, pages: map[string]*template.Template{}, mux: http.NewServeMux()}
	for _, name := range []string{"index", "life"} {
		t, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		s.pages[name] = t
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /{$}", s.handleCreate)
	s.mux.HandleFunc("GET /life", s.handleLife)
	s.mux.HandleFunc("GET /api/life", s.handleSnapshot)
	s.mux.HandleFunc("POST /api/life", s.handleAdvance)
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	return s, nil
}

// Handler returns the request-logging root handler.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

type field struct {
	Name  string
	Label string
	Value string
	Error string
}

type indexPage struct {
	Fields []field
}

func (s *Server) indexPage(values map[string]string, errs form.Errors) indexPage {
	labels := form.Labels(s.state.Limits())
	var p indexPage
	for _, name := range []string{form.FieldWidth, form.FieldHeight, form.FieldVelocity} {
		p.Fields = append(p.Fields, field{Name: name, Label: labels[name], Value: values[name], Error: errs[name]})
	}
	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	values := map[string]string{
		form.FieldVelocity: strconv.FormatFloat(s.state.DefaultVelocity(), 'g', -1, 64),
	}
	if snap, err := s.state.Snapshot(); err == nil {
		values[form.FieldWidth] = strconv.Itoa(snap.Width)
		values[form.FieldHeight] = strconv.Itoa(snap.Height)
	}
	s.render(w, http.StatusOK, "index", s.indexPage(values, nil))
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	world, err := form.Parse(r.PostForm, s.state.Limits(), s.state.DefaultVelocity())
	if err == nil {
		err = s.state.Initialize(world.Width, world.Height, world.Velocity)
	}
	if err != nil {
		var errs form.Errors
		if !errors.As(err, &errs) {
			errs = form.Errors{"form": err.Error()}
		}
		values := map[string]string{}
		for k := range r.PostForm {
			values[k] = r.PostForm.Get(k)
		}
		s.render(w, http.StatusBadRequest, "index", s.indexPage(values, errs))
		return
	}
	http.Redirect(w, r, "/life", http.StatusSeeOther)
}

type lifePage struct {
	Generation int
	Velocity   float64
	Rows       [][]string
}

// cellClasses marks alive cells and cells that died in the last generation.
func cellClasses(snap sim.Snapshot) [][]string {
	rows := make([][]string, snap.World.Height())
	for y := range rows {
		row := make([]string, snap.World.Width())
		for x := range row {
			switch {
			case snap.World.Alive(y, x):
				row[x] = "alive"
			case snap.Previous.Alive(y, x):
				row[x] = "dead"
			}
		}
		rows[y] = row
	}
	return rows
}

func (s *Server) handleLife(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Snapshot()
	if errors.Is(err, life.ErrNotInitialized) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "life", lifePage{
		Generation: snap.Generation,
		Velocity:   snap.Velocity,
		Rows:       cellClasses(snap),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Snapshot()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	snap, err := s.state.Advance()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages[page].ExecuteTemplate(w, "base", data); err != nil {
		log.WithError(err).WithField("page", page).Error("render failed")
	}
}

// fail maps engine errors onto JSON error responses.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, life.ErrNotInitialized):
		status = http.StatusConflict
	case errors.Is(err, life.ErrInvalidDimensions), errors.Is(err, sim.ErrInvalidVelocity):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("encode response")
		http.Error(w, `{"error":"encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
