package httpserver

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"stockdash-service/internal/application"
	"stockdash-service/internal/domain"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	svc     *application.DashboardService
	popular []string
}

func NewServer(svc *application.DashboardService, popular []string) *Server {
	return &Server{svc: svc, popular: popular}
}

func (s *Server) GetOverview(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	tf, err := rangeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := s.svc.Overview(r.Context(), symbol, tf)
	if err != nil {
		s.respondError(w, symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, newOverviewResponse(o))
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	tf, err := rangeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h, err := s.svc.History(r.Context(), symbol, tf)
	if err != nil {
		s.respondError(w, symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, newHistoryResponse(h))
}

func (s *Server) GetHistoryCSV(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	tf, err := rangeParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h, err := s.svc.History(r.Context(), symbol, tf)
	if err != nil {
		s.respondError(w, symbol, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s_historical_data.csv"`, h.Symbol))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Date", "Open", "High", "Low", "Close", "Volume"})
	for _, c := range h.Candles {
		_ = cw.Write([]string{
			c.Date.Format("2006-01-02"),
			strconv.FormatFloat(c.Open, 'f', -1, 64),
			strconv.FormatFloat(c.High, 'f', -1, 64),
			strconv.FormatFloat(c.Low, 'f', -1, 64),
			strconv.FormatFloat(c.Close, 'f', -1, 64),
			strconv.FormatInt(c.Volume, 10),
		})
	}
	cw.Flush()
}

func (s *Server) GetNews(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	items, err := s.svc.News(r.Context(), symbol)
	if err != nil {
		s.respondError(w, symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, newNewsResponse(symbol, items))
}

func (s *Server) GetFinancials(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	st, err := statementParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stmt, err := s.svc.Financials(r.Context(), symbol, st)
	if err != nil {
		s.respondError(w, symbol, err)
		return
	}
	writeJSON(w, http.StatusOK, newStatementResponse(stmt))
}

// rangeParam reads ?range= and defaults to the 1y window.
func rangeParam(r *http.Request) (domain.Timeframe, error) {
	raw := r.URL.Query().Get("range")
	if raw == "" {
		return domain.DefaultTimeframe, nil
	}
	return domain.ParseTimeframe(raw)
}

// statementParam reads ?statement= and defaults to the income table.
func statementParam(r *http.Request) (domain.StatementType, error) {
	raw := r.URL.Query().Get("statement")
	if raw == "" {
		return domain.StatementIncome, nil
	}
	return domain.ParseStatementType(raw)
}

// respondError collapses every upstream failure into the single
// user-facing wording; only malformed input gets its own 400.
func (s *Server) respondError(w http.ResponseWriter, symbol string, err error) {
	if errors.Is(err, application.ErrBadRequest) {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	if sym, nerr := domain.NormalizeSymbol(symbol); nerr == nil {
		symbol = sym
	}
	writeError(w, http.StatusBadGateway,
		fmt.Sprintf("could not fetch data for ticker '%s'", symbol))
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Code: status, Message: msg})
}
