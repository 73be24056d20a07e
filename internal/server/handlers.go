package server

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tally/internal/driver"
)

type evaluateRequest struct {
	Expression string `json:"expression"`
}

type evaluateResponse struct {
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}

type errorDetail struct {
	Code     string  `json:"code"`
	Stage    string  `json:"stage"`
	Message  string  `json:"message"`
	Position *uint32 `json:"position,omitempty"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req evaluateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
			Code:    "BAD_REQUEST",
			Stage:   "transport",
			Message: "request body must be JSON with an \"expression\" field",
		}})
		return
	}
	// An empty expression still goes through the pipeline so the caller gets
	// the same EmptyExpression diagnostic the CLI would print.
	res := driver.Evaluate(req.Expression, s.cfg.Eval)
	if d, failed := res.Bag.First(); failed {
		pos := d.Primary.Start
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorDetail{
			Code:     d.Code.ID(),
			Stage:    d.Code.Stage(),
			Message:  d.Message,
			Position: &pos,
		}})
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Result:    res.Value,
		Formatted: driver.FormatValue(res.Value, -1),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
