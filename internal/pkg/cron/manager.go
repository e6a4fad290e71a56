package cron

import (
	"Inkwell/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// StatsSchedule 每五分钟刷新一次内容统计
const StatsSchedule = "0 */5 * * * *"

type Manager struct {
	engine   *cron.Cron
	statsJob *job.ContentStatsJob
}

func NewCronManager(statsJob *job.ContentStatsJob) *Manager {
	return &Manager{
		engine:   cron.New(cron.WithSeconds()),
		statsJob: statsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(StatsSchedule, s.statsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
