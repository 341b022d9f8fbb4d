package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"brandpulse/internal/model"
)

func setupAILogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.AICallLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

func TestAICallLogRepo_Create(t *testing.T) {
	db := setupAILogTestDB(t)
	repo := NewAICallLogRepository(db)
	ctx := context.Background()

	log := &model.AICallLog{
		Service:      "content",
		Route:        "/api/captions/generate",
		Upstream:     model.UpstreamGemini,
		CallType:     model.AICallTypeText,
		ModelName:    "gemini-2.5-flash",
		InputTokens:  500,
		OutputTokens: 200,
		DurationMs:   1500,
		Status:       model.AICallStatusSuccess,
	}

	if err := repo.Create(ctx, log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if log.ID == 0 {
		t.Error("ID 应该被自动分配")
	}
}

func TestAICallLogRepo_GetByID(t *testing.T) {
	db := setupAILogTestDB(t)
	repo := NewAICallLogRepository(db)
	ctx := context.Background()

	log := &model.AICallLog{
		Service:     "image",
		Upstream:    model.UpstreamPollinations,
		CallType:    model.AICallTypeImage,
		OutputBytes: 2048,
		Status:      model.AICallStatusSuccess,
	}
	if err := repo.Create(ctx, log); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.GetByID(ctx, log.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if found.CallType != model.AICallTypeImage {
		t.Errorf("CallType = %s, want image", found.CallType)
	}
	if found.OutputBytes != 2048 {
		t.Errorf("OutputBytes = %d, want 2048", found.OutputBytes)
	}

	if _, err := repo.GetByID(ctx, log.ID+100); err == nil {
		t.Error("不存在的 ID 应该返回错误")
	}
}

func TestAICallLogRepo_GetUsageByUpstream(t *testing.T) {
	db := setupAILogTestDB(t)
	repo := NewAICallLogRepository(db)
	ctx := context.Background()

	logs := []*model.AICallLog{
		{Upstream: model.UpstreamGemini, CallType: model.AICallTypeText, InputTokens: 100, OutputTokens: 50, DurationMs: 1000, Status: model.AICallStatusSuccess},
		{Upstream: model.UpstreamGemini, CallType: model.AICallTypeText, InputTokens: 200, OutputTokens: 100, DurationMs: 3000, Status: model.AICallStatusSuccess},
		{Upstream: model.UpstreamGemini, CallType: model.AICallTypeText, Status: model.AICallStatusFailed, UpstreamStatus: 429},
		{Upstream: model.UpstreamElevenLabs, CallType: model.AICallTypeSpeech, OutputBytes: 4096, Status: model.AICallStatusSuccess},
	}
	for _, log := range logs {
		if err := repo.Create(ctx, log); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := repo.GetUsageByUpstream(ctx, model.UpstreamGemini, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetUsageByUpstream() error = %v", err)
	}

	if stats.TotalCalls != 3 {
		t.Errorf("TotalCalls = %d, want 3", stats.TotalCalls)
	}
	if stats.TotalInputTokens != 300 {
		t.Errorf("TotalInputTokens = %d, want 300", stats.TotalInputTokens)
	}
	if stats.TotalOutputTokens != 150 {
		t.Errorf("TotalOutputTokens = %d, want 150", stats.TotalOutputTokens)
	}
	if stats.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", stats.SuccessCount)
	}
	if stats.FailedCount != 1 {
		t.Errorf("FailedCount = %d, want 1", stats.FailedCount)
	}

	// 不指定上游时统计全部
	all, err := repo.GetUsageByUpstream(ctx, "", time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("GetUsageByUpstream() error = %v", err)
	}
	if all.TotalCalls != 4 {
		t.Errorf("TotalCalls = %d, want 4", all.TotalCalls)
	}
	if all.TotalOutputBytes != 4096 {
		t.Errorf("TotalOutputBytes = %d, want 4096", all.TotalOutputBytes)
	}
}

func TestAICallLogRepo_GetDailyUsage(t *testing.T) {
	db := setupAILogTestDB(t)
	repo := NewAICallLogRepository(db)
	ctx := context.Background()

	day1 := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	logs := []*model.AICallLog{
		{BaseModel: model.BaseModel{CreatedAt: day1}, Upstream: model.UpstreamGemini, InputTokens: 10, Status: model.AICallStatusSuccess},
		{BaseModel: model.BaseModel{CreatedAt: day1.Add(time.Hour)}, Upstream: model.UpstreamGemini, InputTokens: 20, Status: model.AICallStatusFailed},
		{BaseModel: model.BaseModel{CreatedAt: day2}, Upstream: model.UpstreamYouTube, Status: model.AICallStatusSuccess},
	}
	for _, log := range logs {
		if err := repo.Create(ctx, log); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := repo.GetDailyUsage(ctx, day1.Add(-time.Hour), day2.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetDailyUsage() error = %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	if stats[0].TotalCalls != 2 || stats[0].FailedCount != 1 || stats[0].TotalInputTokens != 30 {
		t.Errorf("day1 = %+v, want 2 calls / 1 failed / 30 tokens", stats[0])
	}
	if stats[1].TotalCalls != 1 {
		t.Errorf("day2 TotalCalls = %d, want 1", stats[1].TotalCalls)
	}
}

func TestAICallLogRepo_DeleteBefore(t *testing.T) {
	db := setupAILogTestDB(t)
	repo := NewAICallLogRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	logs := []*model.AICallLog{
		{BaseModel: model.BaseModel{CreatedAt: now.AddDate(0, 0, -40)}, Upstream: model.UpstreamGemini, Status: model.AICallStatusSuccess},
		{BaseModel: model.BaseModel{CreatedAt: now.AddDate(0, 0, -31)}, Upstream: model.UpstreamGemini, Status: model.AICallStatusSuccess},
		{BaseModel: model.BaseModel{CreatedAt: now.AddDate(0, 0, -1)}, Upstream: model.UpstreamGemini, Status: model.AICallStatusSuccess},
	}
	for _, log := range logs {
		if err := repo.Create(ctx, log); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	deleted, err := repo.DeleteBefore(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("DeleteBefore() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	var remaining int64
	db.Unscoped().Model(&model.AICallLog{}).Count(&remaining)
	if remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
}
