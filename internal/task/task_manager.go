package task

import (
	"go.uber.org/zap"

	"brandpulse/internal/repository"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台任务
// 目前只有调用日志维护，没有配置数据库时不启动任何任务
type TaskManager struct {
	callLogTask *CallLogTask
	log         *zap.Logger
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	CallLogRepo repository.AICallLogRepository
	Logger      *zap.Logger
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	CallLogEnabled       bool
	CallLogRetentionDays int
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps TaskManagerDeps, cfg TaskManagerConfig) *TaskManager {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tm := &TaskManager{log: log}
	if cfg.CallLogEnabled && deps.CallLogRepo != nil {
		tm.callLogTask = NewCallLogTask(deps.CallLogRepo, cfg.CallLogRetentionDays, log.Named("call_log_task"))
	}
	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() error {
	if tm.callLogTask != nil {
		if err := tm.callLogTask.Start(); err != nil {
			return err
		}
	}
	tm.log.Info("后台任务已启动", zap.Any("status", tm.Status()))
	return nil
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	if tm.callLogTask != nil {
		tm.callLogTask.Stop()
	}
	tm.log.Info("后台任务已停止")
}

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"call_log": tm.callLogTask != nil,
	}
}
