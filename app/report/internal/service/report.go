package service

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	dm "github.com/iWorld-y/report_forge/app/composer/pkg/model"
	"github.com/iWorld-y/report_forge/app/composer/pkg/render"
	"github.com/iWorld-y/report_forge/app/report/internal/conf"
	"github.com/iWorld-y/report_forge/app/report/internal/domain"
	"github.com/iWorld-y/report_forge/app/report/internal/usecase"
)

// ReportService HTTP 适配层，把表单转换成 ReportRequest
type ReportService struct {
	uc      *usecase.ReportUseCase
	verbose bool
	log     *log.Helper
}

func NewReportService(uc *usecase.ReportUseCase, c *conf.Server, logger log.Logger) *ReportService {
	return &ReportService{
		uc:      uc,
		verbose: c.Development(),
		log:     log.NewHelper(logger),
	}
}

// GenerateReport POST /api/generate-report
func (s *ReportService) GenerateReport(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	switch r.Method {
	case nethttp.MethodOptions:
		w.WriteHeader(nethttp.StatusOK)
		return
	case nethttp.MethodPost:
	default:
		s.Error(w, domain.ErrMethodNotAllowed())
		return
	}

	req := &domain.ReportRequest{
		Event: dm.Event{
			Title:     r.FormValue("eventTitle"),
			Type:      r.FormValue("eventType"),
			Date:      r.FormValue("eventDate"),
			Location:  r.FormValue("location"),
			Organizer: r.FormValue("organizer"),
			Attendees: r.FormValue("attendees"),
			Agenda:    r.FormValue("agenda"),
			Summary:   r.FormValue("summary"),
			Decisions: r.FormValue("decisions"),
			Notes:     r.FormValue("notes"),
		},
		Photos: domain.PhotosFromContext(r.Context()),
		Format: render.ParseFormat(r.FormValue("format")),
	}

	res, err := s.uc.Generate(r.Context(), req)
	if err != nil {
		s.log.WithContext(r.Context()).Errorf("Error generating report: %v", err)
		s.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(res.Body); err != nil {
		s.log.Errorf("write response: %v", err)
	}
}

// Health GET /api/health
func (s *ReportService) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "OK", "message": "Server is running"})
}

type errorReply struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error 以 {error, details?} 的 JSON 形式输出错误，状态码取自 kratos 错误码
func (s *ReportService) Error(w nethttp.ResponseWriter, err error) {
	e := errors.FromError(err)
	reply := errorReply{Error: e.Message}
	if reply.Error == "" {
		reply.Error = "Failed to generate report"
	}
	if s.verbose {
		if cause := e.Unwrap(); cause != nil {
			reply.Details = cause.Error()
		}
	}
	writeJSON(w, int(e.Code), reply)
}

func writeJSON(w nethttp.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
