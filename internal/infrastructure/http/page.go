package httpserver

import (
	_ "embed"
	"html/template"
	"net/http"

	"stockdash-service/internal/domain"
)

//go:embed dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

type timeframeOption struct {
	Value string
	Label string
}

type pageData struct {
	Popular       []string
	Timeframes    []timeframeOption
	DefaultSymbol string
	DefaultRange  string
}

func (s *Server) GetPage(w http.ResponseWriter, _ *http.Request) {
	data := pageData{
		Popular:       s.popular,
		DefaultSymbol: "AAPL",
		DefaultRange:  domain.DefaultTimeframe.String(),
	}
	if len(s.popular) > 0 {
		data.DefaultSymbol = s.popular[0]
	}
	for _, tf := range domain.Timeframes {
		data.Timeframes = append(data.Timeframes, timeframeOption{Value: tf.String(), Label: tf.Label()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = dashboardTmpl.Execute(w, data)
}
