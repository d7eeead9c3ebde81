package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
	"anshin-house-data/internal/store"
)

func newViews() *store.ViewCache {
	return store.NewViewCache(store.NewMemoryKV(), time.Minute, zap.NewNop())
}

func newConsultationService() (ConsultationService, *repository.MemoryConsultationsRepo) {
	consultations := repository.NewMemoryConsultationsRepo()
	events := repository.NewMemoryEventsRepo(consultations)
	return NewConsultationService(consultations, events, newViews(), zap.NewNop()), consultations
}

func datePtr(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

// Creating an event moves the parent's denormalized status, and the history
// keeps the original note.
func TestEventUpdatesParentStatus(t *testing.T) {
	svc, _ := newConsultationService()
	ctx := context.Background()

	id, err := svc.CreateConsultation(ctx, &domain.Consultation{
		Status:           domain.StatusInitialInterview,
		ConsultationDate: datePtr(2026, 9, 1),
		Name:             "山田太郎",
	})
	require.NoError(t, err)

	_, err = svc.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: id,
		Status:         domain.StatusConsidering,
		Note:           "支援方針を検討",
	})
	require.NoError(t, err)

	c, err := svc.GetConsultation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConsidering, c.Status)

	events, err := svc.ListEvents(ctx, id)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "支援方針を検討", events[0].Note)
}

func TestCreateConsultationValidation(t *testing.T) {
	svc, _ := newConsultationService()
	ctx := context.Background()

	_, err := svc.CreateConsultation(ctx, &domain.Consultation{})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "ステータスは必須です")
	assert.Contains(t, err.Error(), "相談日は必須です")

	_, err = svc.CreateConsultation(ctx, &domain.Consultation{
		Status:           "未定義のステータス",
		ConsultationDate: datePtr(2026, 9, 1),
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCreateEventValidation(t *testing.T) {
	svc, _ := newConsultationService()
	ctx := context.Background()

	id, err := svc.CreateConsultation(ctx, &domain.Consultation{
		Status:           domain.StatusInitialInterview,
		ConsultationDate: datePtr(2026, 9, 1),
	})
	require.NoError(t, err)

	// 不正なステータス
	_, err = svc.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: id,
		Status:         "ありえない",
	})
	assert.True(t, IsValidation(err))

	// メモの長さ上限
	_, err = svc.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: id,
		Status:         domain.StatusConsidering,
		Note:           strings.Repeat("あ", maxNoteLen+1),
	})
	assert.True(t, IsValidation(err))

	// 親が存在しない
	_, err = svc.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Status:         domain.StatusConsidering,
	})
	assert.True(t, IsNotFound(err))
}

func TestGetConsultationMalformedID(t *testing.T) {
	svc, _ := newConsultationService()
	_, err := svc.GetConsultation(context.Background(), "not-a-uuid")
	require.Error(t, err)
	// 形式不正は 404 ではなく入力エラー
	assert.True(t, IsValidation(err))
}

// A form edit carries every form column but must never move user_id or
// next_action_date: the promote path and event creation own those.
func TestUpdateConsultationKeepsLinkAndNextAction(t *testing.T) {
	consultations := repository.NewMemoryConsultationsRepo()
	events := repository.NewMemoryEventsRepo(consultations)
	users := repository.NewMemoryUsersRepo()
	views := newViews()
	logger := zap.NewNop()
	cSvc := NewConsultationService(consultations, events, views, logger)
	uSvc := NewUserService(users, consultations, views, logger)
	ctx := context.Background()

	id, err := cSvc.CreateConsultation(ctx, &domain.Consultation{
		Status:           domain.StatusApplication,
		ConsultationDate: datePtr(2026, 8, 1),
		Name:             "山田太郎",
	})
	require.NoError(t, err)

	next := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err = cSvc.CreateEvent(ctx, &domain.ConsultationEvent{
		ConsultationID: id,
		Status:         domain.StatusFollowUp,
		Note:           "入居完了、定期訪問へ",
		NextActionDate: &next,
	})
	require.NoError(t, err)

	_, err = uSvc.PromoteConsultation(ctx, PromoteRequest{ConsultationID: id, UID: "2026-0001"})
	require.NoError(t, err)

	// フォーム項目だけを載せた更新ボディ（user_id / next_action_date なし）
	err = cSvc.UpdateConsultation(ctx, &domain.Consultation{
		ID:               id,
		Status:           domain.StatusFollowUp,
		ConsultationDate: datePtr(2026, 8, 1),
		Name:             "山田太郎",
		Address:          "大阪市西成区",
	})
	require.NoError(t, err)

	c, err := cSvc.GetConsultation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "大阪市西成区", c.Address)
	require.NotNil(t, c.UserID, "promotion link must survive a form update")
	require.NotNil(t, c.NextActionDate)
	assert.True(t, next.Equal(*c.NextActionDate))

	// 利用者登録済みの相談は更新後も対応中一覧に戻ってこない
	resp, err := cSvc.ListConsultations(ctx, ListConsultationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
}

func TestListConsultationsFilterAndSort(t *testing.T) {
	svc, _ := newConsultationService()
	ctx := context.Background()

	for _, c := range []*domain.Consultation{
		{Status: domain.StatusInitialInterview, ConsultationDate: datePtr(2026, 9, 1), Name: "山田"},
		{Status: domain.StatusClosed, ConsultationDate: datePtr(2026, 9, 2), Name: "終了済み"},
		{Status: domain.StatusPropertySearch, ConsultationDate: datePtr(2026, 8, 20), Name: "鈴木"},
	} {
		_, err := svc.CreateConsultation(ctx, c)
		require.NoError(t, err)
	}

	// デフォルトは対応中のみ
	resp, err := svc.ListConsultations(ctx, ListConsultationsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	// 月で絞り込み
	resp, err = svc.ListConsultations(ctx, ListConsultationsRequest{Month: "2026-08"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "鈴木", resp.Items[0].Name)
}
