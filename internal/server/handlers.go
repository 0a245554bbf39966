package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/abhisek/estudia/internal/numeric"
)

const maxBodyBytes = 1 << 16

type statusResponse struct {
	Mensaje string `json:"mensaje"`
}

type riskRequest struct {
	Promedio      float64 `json:"promedio"`
	Inasistencias int     `json:"inasistencias"`
	Participacion int     `json:"participacion"`
	HorasEstudio  float64 `json:"horas_estudio"`
}

type riskResponse struct {
	NivelRiesgo string `json:"nivel_riesgo"`
}

type stressResponse struct {
	ValorFuzzy float64 `json:"valor_fuzzy"`
	Nivel      string  `json:"nivel"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{Mensaje: StatusMessage})
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, &ValidationError{Err: err})
		return
	}
	if err := validateJSON("risk-request", riskRequestSchema, raw); err != nil {
		s.writeError(w, err)
		return
	}

	var req riskRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		s.writeError(w, &ValidationError{Err: err})
		return
	}

	nivel := s.eval.ClassifyRisk(req.Promedio, req.Inasistencias, req.Participacion, req.HorasEstudio)
	s.writeJSON(w, http.StatusOK, riskResponse{NivelRiesgo: nivel})
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	inst := make(map[string]any, 3)
	for _, key := range []string{"sueno", "carga", "ansiedad"} {
		if !q.Has(key) {
			continue
		}
		v := q.Get(key)
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			inst[key] = json.Number(v)
		} else {
			inst[key] = v
		}
	}
	if err := validateValue("stress-query", stressQuerySchema, inst); err != nil {
		s.writeError(w, err)
		return
	}

	vals := make(map[string]int, 3)
	for key, v := range inst {
		n, err := strconv.Atoi(string(v.(json.Number)))
		if err != nil {
			s.writeError(w, &ValidationError{Err: err})
			return
		}
		vals[key] = n
	}

	res := s.eval.ClassifyStress(vals["sueno"], vals["carga"], vals["ansiedad"])
	s.writeJSON(w, http.StatusOK, stressResponse{
		ValorFuzzy: numeric.Round(res.Score, 2),
		Nivel:      res.Label,
	})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: verr.Err.Error()})
		return
	}
	s.logger.Printf("internal error: %v", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("encode response: %v", err)
	}
}
