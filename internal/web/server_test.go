package web

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"life-web/internal/sim"
)

func newServer(t *testing.T) (*Server, *sim.State) {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Seed = 7
	state := sim.New(cfg)
	srv, err := New(state)
	if err != nil {
		t.Fatal(err)
	}
	return srv, state
}

func do(t *testing.T, h http.Handler, method, target string, body url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type snapshotJSON struct {
	LifeCount int      `json:"life_count"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Velocity  float64  `json:"velocity"`
	World     [][]bool `json:"world"`
	Previous  [][]bool `json:"previous_world"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) snapshotJSON {
	t.Helper()
	var s snapshotJSON
	if err := json.NewDecoder(rec.Body).Decode(&s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return s
}

func TestAPIBeforeInitialize(t *testing.T) {
	srv, _ := newServer(t)
	h := srv.Handler()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := do(t, h, method, "/api/life", nil)
		if rec.Code != http.StatusConflict {
			t.Fatalf("%s /api/life status = %d, want 409", method, rec.Code)
		}
	}

	rec := do(t, h, http.MethodGet, "/life", nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("GET /life = %d %q, want redirect to /", rec.Code, rec.Header().Get("Location"))
	}
}

func TestCreateAndAdvance(t *testing.T) {
	srv, state := newServer(t)
	h := srv.Handler()

	rec := do(t, h, http.MethodPost, "/", url.Values{"width": {"6"}, "height": {"5"}, "velocity": {"0.5"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/life" {
		t.Fatalf("POST / = %d %q, want redirect to /life", rec.Code, rec.Header().Get("Location"))
	}
	if state.Width() != 6 || state.Height() != 5 || state.Velocity() != 0.5 {
		t.Fatalf("state not initialized from form: %s", state)
	}

	snap := decode(t, do(t, h, http.MethodGet, "/api/life", nil))
	if snap.LifeCount != 0 || len(snap.World) != 5 || len(snap.World[0]) != 6 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	before := snap.World

	rec = do(t, h, http.MethodPost, "/api/life", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/life status = %d", rec.Code)
	}
	snap = decode(t, rec)
	if snap.LifeCount != 1 {
		t.Fatalf("life_count = %d, want 1", snap.LifeCount)
	}
	for y := range before {
		for x := range before[y] {
			if snap.Previous[y][x] != before[y][x] {
				t.Fatalf("previous_world differs at (%d,%d)", x, y)
			}
		}
	}

	// Reading does not advance.
	if again := decode(t, do(t, h, http.MethodGet, "/api/life", nil)); again.LifeCount != 1 {
		t.Fatalf("GET advanced the world to %d", again.LifeCount)
	}
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	srv, state := newServer(t)
	rec := do(t, srv.Handler(), http.MethodPost, "/", url.Values{"width": {"2"}, "height": {"50"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "must be between 4 and 30") {
		t.Fatalf("form errors not rendered: %s", body)
	}
	if state.Ready() {
		t.Fatal("invalid form initialized the world")
	}
}

func TestCreateRejectsNaNVelocity(t *testing.T) {
	srv, state := newServer(t)
	h := srv.Handler()
	if err := state.Initialize(5, 5, 1); err != nil {
		t.Fatal(err)
	}

	rec := do(t, h, http.MethodPost, "/", url.Values{"width": {"5"}, "height": {"5"}, "velocity": {"NaN"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if state.Velocity() != 1 {
		t.Fatalf("velocity = %g, want the previous 1", state.Velocity())
	}

	rec = do(t, h, http.MethodPost, "/api/life", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/life status = %d", rec.Code)
	}
	if snap := decode(t, rec); snap.LifeCount != 1 || snap.Velocity != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestWriteJSONUnencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"v": math.NaN()})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestLifePageRendersCells(t *testing.T) {
	srv, state := newServer(t)
	if err := state.Initialize(4, 4, 1); err != nil {
		t.Fatal(err)
	}
	rec := do(t, srv.Handler(), http.MethodGet, "/life", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, "<td "); got != 16 {
		t.Fatalf("rendered %d cells, want 16", got)
	}
	if !strings.Contains(body, `<span id="counter">0</span>`) {
		t.Fatalf("generation counter missing: %s", body)
	}
}

func TestIndexAndStatic(t *testing.T) {
	srv, _ := newServer(t)
	h := srv.Handler()

	rec := do(t, h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "World width (from 4 to 30)") {
		t.Fatalf("GET / = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/static/life.js", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "fetchGameState") {
		t.Fatalf("GET /static/life.js = %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("GET /healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestCellClasses(t *testing.T) {
	_, state := newServer(t)
	if err := state.Initialize(5, 5, 1); err != nil {
		t.Fatal(err)
	}
	snap, err := state.Advance()
	if err != nil {
		t.Fatal(err)
	}
	rows := cellClasses(snap)
	for y := range rows {
		for x, class := range rows[y] {
			alive, was := snap.World.Alive(y, x), snap.Previous.Alive(y, x)
			want := ""
			if alive {
				want = "alive"
			} else if was {
				want = "dead"
			}
			if class != want {
				t.Fatalf("cell (%d,%d) class %q, want %q", x, y, class, want)
			}
		}
	}
}
