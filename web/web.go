// Package web serves the subset grouping and sequence sum operations over a
// JSON API.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bcspragu/subsums"
	"github.com/bcspragu/subsums/combos"
	"github.com/bcspragu/subsums/sums"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxElements caps the input to 2^20 subsets.
	DefaultMaxElements = 20
	// DefaultMaxTuples caps the number of sequences summed per request.
	DefaultMaxTuples = 1 << 20
)

// Config bounds how much work a single request can ask for. The engine itself
// will happily run forever, so the limits live here.
type Config struct {
	// MaxElements is the longest input /api/groups accepts.
	MaxElements int
	// MaxTuples is the largest alphabet size to the power of k that /api/sums
	// accepts.
	MaxTuples uint64
}

type Srv struct {
	cfg *Config
	mux *mux.Router
	log *log.Entry
}

// New returns an initialized server. A nil config uses the defaults.
func New(cfg *Config) *Srv {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	if c.MaxElements <= 0 {
		c.MaxElements = DefaultMaxElements
	}
	if c.MaxTuples == 0 {
		c.MaxTuples = DefaultMaxTuples
	}

	s := &Srv{
		cfg: &c,
		log: log.WithField("component", "web"),
	}
	s.mux = s.initMux()
	return s
}

func (s *Srv) initMux() *mux.Router {
	m := mux.NewRouter()
	// Group every subset of the input by sum.
	m.HandleFunc("/api/groups", s.serveGroups).Methods("POST")
	// Distinct sums of fixed-length sequences.
	m.HandleFunc("/api/sums", s.serveSums).Methods("POST")
	m.HandleFunc("/api/health", s.serveHealth).Methods("GET")

	m.Use(s.logRequests)
	return m
}

func (s *Srv) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type groupsRequest struct {
	Elements []int `json:"elements"`
}

type groupsResponse struct {
	Count  int               `json:"count"`
	Groups *subsums.SumGroup `json:"groups"`
}

func (s *Srv) serveGroups(w http.ResponseWriter, r *http.Request) {
	var req groupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, errors.Wrap(err, "malformed request").Error(), http.StatusBadRequest)
		return
	}

	if n := len(req.Elements); n > s.cfg.MaxElements {
		http.Error(w, errors.Errorf("%d elements given, at most %d allowed", n, s.cfg.MaxElements).Error(), http.StatusBadRequest)
		return
	}

	g := sums.GroupSubsetsBySum(req.Elements)
	jsonResp(w, &groupsResponse{Count: g.Count(), Groups: g})
}

type sumsRequest struct {
	K        int   `json:"k"`
	Alphabet []int `json:"alphabet"`
	// Sorted is accepted for parity with the command line tools, sums are
	// always returned in ascending order.
	Sorted bool `json:"sorted"`
}

type sumsResponse struct {
	Sums []int `json:"sums"`
}

func (s *Srv) serveSums(w http.ResponseWriter, r *http.Request) {
	var req sumsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, errors.Wrap(err, "malformed request").Error(), http.StatusBadRequest)
		return
	}

	if req.K >= 0 {
		n, ok := combos.CountSequences(len(req.Alphabet), req.K)
		if !ok || n > s.cfg.MaxTuples {
			http.Error(w, errors.Errorf("%d^%d sequences requested, at most %d allowed", len(req.Alphabet), req.K, s.cfg.MaxTuples).Error(), http.StatusBadRequest)
			return
		}
	}

	out, err := sums.SortedSumsOfLength(req.K, req.Alphabet)
	if errors.Is(err, subsums.ErrInvalidArgument) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResp(w, &sumsResponse{Sums: out})
}

func (s *Srv) serveHealth(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, struct {
		Success bool `json:"success"`
	}{true})
}

func jsonResp(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("jsonResp: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// statusRecorder remembers the status code a handler wrote, for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Srv) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		s.log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sr.status,
			"duration": time.Since(start),
		}).Info("handled request")
	})
}
