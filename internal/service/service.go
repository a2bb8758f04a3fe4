// Package service exposes the rewrite engine over HTTP for the host replay
// environment's tooling: integration debugging, archive audits, and anything
// that cannot link the engine in directly.
package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/arcpath/arcpath/internal/fuzzy"
	"github.com/arcpath/arcpath/internal/logging"
	"github.com/arcpath/arcpath/internal/observability"
	"github.com/arcpath/arcpath/internal/replay"
	"github.com/arcpath/arcpath/internal/rewrite"
)

const maxBodyBytes = 1 << 20

type Service struct {
	ctx         *rewrite.Context
	mux         *http.ServeMux
	decisionLog *logging.DecisionLogger
}

func New(ctx *rewrite.Context) (*Service, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	s := &Service{ctx: ctx, mux: http.NewServeMux()}
	s.mux.HandleFunc("/rewrite", s.handleRewrite)
	s.mux.HandleFunc("/reduce", s.handleReduce)
	s.mux.HandleFunc("/rules", s.handleRules)
	s.mux.HandleFunc("/replay", s.handleReplay)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	return s, nil
}

func (s *Service) SetDecisionLogger(logger *logging.DecisionLogger) {
	s.decisionLog = logger
}

func (s *Service) SetMetrics(metrics *observability.Metrics) {
	s.ctx.SetMetrics(metrics)
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type rewriteRequest struct {
	URLs []string `json:"urls"`
}

type rewriteResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Rule   string `json:"rule,omitempty"`
	Error  string `json:"error,omitempty"`
}

type rewriteResponse struct {
	Results []rewriteResult `json:"results"`
}

func (s *Service) handleRewrite(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLs(w, r)
	if !ok {
		return
	}

	resp := rewriteResponse{Results: make([]rewriteResult, 0, len(req.URLs))}
	for _, input := range req.URLs {
		start := time.Now()
		res, err := s.ctx.RewriteDetail(input)

		result := rewriteResult{Input: input, Output: res.URL, Rule: res.Rule}
		if err != nil {
			result.Error = err.Error()
			result.Output = ""
		}
		resp.Results = append(resp.Results, result)

		s.logDecision(logging.Decision{
			Timestamp:  start,
			Input:      input,
			Output:     result.Output,
			Outcome:    res.Outcome,
			Rule:       res.Rule,
			DurationUS: time.Since(start).Microseconds(),
			Error:      result.Error,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleReduce(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeURLs(w, r)
	if !ok {
		return
	}

	resp := rewriteResponse{Results: make([]rewriteResult, 0, len(req.URLs))}
	for _, input := range req.URLs {
		out, rule := fuzzy.Match(input)
		result := rewriteResult{Input: input, Output: out}
		if rule != nil {
			result.Rule = rule.Name
		}
		resp.Results = append(resp.Results, result)
	}

	writeJSON(w, http.StatusOK, resp)
}

type ruleInfo struct {
	Name     string `json:"name"`
	Pattern  string `json:"pattern"`
	Template string `json:"template"`
}

func (s *Service) handleRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rules := make([]ruleInfo, 0, len(fuzzy.Rules))
	for i := range fuzzy.Rules {
		rules = append(rules, ruleInfo{
			Name:     fuzzy.Rules[i].Name,
			Pattern:  fuzzy.Rules[i].Pattern,
			Template: fuzzy.Rules[i].Template,
		})
	}
	writeJSON(w, http.StatusOK, rules)
}

func (s *Service) handleReplay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, replay.NewConfig(s.ctx))
}

func (s *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) decodeURLs(w http.ResponseWriter, r *http.Request) (rewriteRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return rewriteRequest{}, false
	}

	var req rewriteRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return rewriteRequest{}, false
	}
	if len(req.URLs) == 0 {
		http.Error(w, "urls is required", http.StatusBadRequest)
		return rewriteRequest{}, false
	}
	return req, true
}

func (s *Service) logDecision(decision logging.Decision) {
	if s.decisionLog == nil {
		return
	}
	_ = s.decisionLog.Write(decision)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
