// +build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"testing"
	"time"

	"anshin-house-data/internal/config"
	"anshin-house-data/internal/database"
	"anshin-house-data/internal/domain"
)

// 获取测试数据库连接
func getTestDB(t *testing.T) *sql.DB {
	cfg := &config.DatabaseConfig{
		Host:     getTestEnv("TEST_DB_HOST", "localhost"),
		Port:     getTestEnvInt("TEST_DB_PORT", 5432),
		User:     getTestEnv("TEST_DB_USER", "postgres"),
		Password: getTestEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getTestEnv("TEST_DB_NAME", "anshin_house"),
		SSLMode:  getTestEnv("TEST_DB_SSLMODE", "disable"),
		MaxConns: 5,
		MaxIdle:  2,
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		t.Skipf("Skipping integration test: cannot connect to database: %v", err)
		return nil
	}
	return db
}

func getTestEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getTestEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func cleanupConsultation(t *testing.T, db *sql.DB, id string) {
	db.Exec(`DELETE FROM consultation_events WHERE consultation_id = $1`, id)
	db.Exec(`DELETE FROM consultations WHERE id = $1`, id)
}

func TestPostgresConsultationsRepository_CRUD(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	repo := NewPostgresConsultationsRepository(db)
	ctx := context.Background()

	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	c := &domain.Consultation{
		Status:           domain.StatusInitialInterview,
		ConsultationDate: &d,
		Name:             "統合テスト太郎",
		Furigana:         "トウゴウテストタロウ",
		RouteSelf:        true,
	}

	id, err := repo.CreateConsultation(ctx, c)
	if err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	defer cleanupConsultation(t, db, id)

	got, err := repo.GetConsultation(ctx, id)
	if err != nil {
		t.Fatalf("GetConsultation failed: %v", err)
	}
	if got.Name != c.Name {
		t.Errorf("Expected name '%s', got '%s'", c.Name, got.Name)
	}
	if !got.RouteSelf {
		t.Error("Expected route_self to round-trip as true")
	}

	got.Status = domain.StatusPropertySearch
	if err := repo.UpdateConsultation(ctx, got); err != nil {
		t.Fatalf("UpdateConsultation failed: %v", err)
	}
	got, err = repo.GetConsultation(ctx, id)
	if err != nil {
		t.Fatalf("GetConsultation after update failed: %v", err)
	}
	if got.Status != domain.StatusPropertySearch {
		t.Errorf("Expected status '%s', got '%s'", domain.StatusPropertySearch, got.Status)
	}

	if err := repo.DeleteConsultation(ctx, id); err != nil {
		t.Fatalf("DeleteConsultation failed: %v", err)
	}
	if _, err := repo.GetConsultation(ctx, id); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

// CreateEvent は支援経過の追加と親相談のステータス更新を同一トランザクションで行う
func TestPostgresEventsRepository_CreateEventUpdatesParent(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	consultations := NewPostgresConsultationsRepository(db)
	events := NewPostgresEventsRepository(db)
	ctx := context.Background()

	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	id, err := consultations.CreateConsultation(ctx, &domain.Consultation{
		Status:           domain.StatusInitialInterview,
		ConsultationDate: &d,
		Name:             "統合テスト花子",
	})
	if err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	defer cleanupConsultation(t, db, id)

	eventID, err := events.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: id,
		Status:         domain.StatusConsidering,
		Note:           "支援方針を検討",
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if eventID == "" {
		t.Fatal("Expected non-empty event id")
	}

	parent, err := consultations.GetConsultation(ctx, id)
	if err != nil {
		t.Fatalf("GetConsultation failed: %v", err)
	}
	if parent.Status != domain.StatusConsidering {
		t.Errorf("Expected parent status '%s', got '%s'", domain.StatusConsidering, parent.Status)
	}

	list, err := events.ListEventsByConsultation(ctx, id)
	if err != nil {
		t.Fatalf("ListEventsByConsultation failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(list))
	}
	if list[0].Note != "支援方針を検討" {
		t.Errorf("Expected original note to survive, got '%s'", list[0].Note)
	}
}

// 存在しない相談へのイベントはロールバックされ、何も残らない
func TestPostgresEventsRepository_MissingParentRollsBack(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	events := NewPostgresEventsRepository(db)
	ctx := context.Background()

	missing := "00000000-0000-0000-0000-000000000999"
	_, err := events.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: missing,
		Status:         domain.StatusConsidering,
	})
	if err == nil {
		t.Fatal("Expected error for missing parent consultation")
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM consultation_events WHERE consultation_id = $1`, missing).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no orphan events, got %d", n)
	}
}

func TestPostgresConsultationsRepository_SetUserLink(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	consultations := NewPostgresConsultationsRepository(db)
	users := NewPostgresUsersRepository(db)
	ctx := context.Background()

	d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cid, err := consultations.CreateConsultation(ctx, &domain.Consultation{
		Status:           domain.StatusApplication,
		ConsultationDate: &d,
		Name:             "統合テスト次郎",
	})
	if err != nil {
		t.Fatalf("CreateConsultation failed: %v", err)
	}
	defer cleanupConsultation(t, db, cid)

	uid, err := users.CreateUser(ctx, &domain.EndUser{UID: "9999-9999", Name: "統合テスト次郎"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	defer db.Exec(`DELETE FROM end_users WHERE id = $1`, uid)

	if err := consultations.SetUserLink(ctx, cid, uid); err != nil {
		t.Fatalf("SetUserLink failed: %v", err)
	}

	got, err := consultations.GetConsultation(ctx, cid)
	if err != nil {
		t.Fatalf("GetConsultation failed: %v", err)
	}
	if got.UserID == nil || *got.UserID != uid {
		t.Errorf("Expected user_id '%s', got %v", uid, got.UserID)
	}

	// フォーム更新（user_id を載せないボディ）で紐付けが消えないこと
	got.UserID = nil
	got.Address = "大阪市西成区"
	if err := consultations.UpdateConsultation(ctx, got); err != nil {
		t.Fatalf("UpdateConsultation failed: %v", err)
	}
	got, err = consultations.GetConsultation(ctx, cid)
	if err != nil {
		t.Fatalf("GetConsultation after update failed: %v", err)
	}
	if got.UserID == nil || *got.UserID != uid {
		t.Errorf("Expected user_id to survive form update, got %v", got.UserID)
	}
	if got.Address != "大阪市西成区" {
		t.Errorf("Expected address to update, got '%s'", got.Address)
	}
}
