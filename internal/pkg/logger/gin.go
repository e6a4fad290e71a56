package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessRecord struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
}

// SetupGin 注册访问日志与 panic 恢复
func SetupGin(r *gin.Engine, index string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		SkipPaths: []string{"/metrics"},
		Formatter: func(p gin.LogFormatterParams) string {
			return formatAccess(p, index)
		},
	}))

	r.Use(gin.Recovery())
}

func formatAccess(p gin.LogFormatterParams, index string) string {
	var traceID string
	if p.Keys != nil {
		if id, ok := p.Keys[TraceIDKey].(string); ok {
			traceID = id
		}
	}
	if traceID == "" && p.Request != nil {
		traceID = TraceID(p.Request.Context())
	}

	level := "INFO"
	if p.StatusCode >= 500 {
		level = "ERROR"
	}

	b, err := json.Marshal(accessRecord{
		Time:        p.TimeStamp.Format(time.RFC3339),
		Level:       level,
		Msg:         "GIN_ACCESS",
		TraceID:     traceID,
		TargetIndex: index,
		Method:      p.Method,
		Path:        p.Path,
		Status:      p.StatusCode,
		Latency:     p.Latency.String(),
		ClientIP:    p.ClientIP,
	})
	if err != nil {
		return fmt.Sprintf("%s %s %d\n", p.Method, p.Path, p.StatusCode)
	}
	return string(b) + "\n"
}
