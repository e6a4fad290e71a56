package cron

import log "log/slog"

// InitCron 注册任务后立即跑一次统计，再交给调度器
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...")
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	go mgr.statsJob.Run()
	mgr.Start()
	return nil
}
