package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
)

func newUserService() (UserService, *repository.MemoryConsultationsRepo, *repository.MemoryUsersRepo) {
	consultations := repository.NewMemoryConsultationsRepo()
	users := repository.NewMemoryUsersRepo()
	svc := NewUserService(users, consultations, newViews(), zap.NewNop())
	return svc, consultations, users
}

func seedConsultation(t *testing.T, consultations *repository.MemoryConsultationsRepo) string {
	t.Helper()
	y := 1950
	id, err := consultations.CreateConsultation(context.Background(), &domain.Consultation{
		Status:           domain.StatusApplication,
		ConsultationDate: datePtr(2026, 8, 1),
		Name:             "山田太郎",
		Furigana:         "ヤマダタロウ",
		Gender:           "male",
		BirthYear:        &y,
		Address:          "大阪市西成区",
		Phone:            "06-1234-5678",
	})
	require.NoError(t, err)
	return id
}

// Promotion copies demographics, assigns the UID and links the consultation.
func TestPromoteConsultation(t *testing.T) {
	svc, consultations, _ := newUserService()
	ctx := context.Background()
	id := seedConsultation(t, consultations)

	rent := int64(48000)
	u, err := svc.PromoteConsultation(ctx, PromoteRequest{
		ConsultationID: id,
		UID:            "2026-0001",
		PropertyName:   "あんしん荘101",
		Rent:           &rent,
	})
	require.NoError(t, err)
	assert.Equal(t, "山田太郎", u.Name)
	assert.Equal(t, "male", u.Gender)
	assert.Equal(t, "あんしん荘101", u.PropertyName)
	require.NotNil(t, u.ConsultationID)
	assert.Equal(t, id, *u.ConsultationID)

	// 相談側に user_id が付き、対応中一覧から消える
	c, err := consultations.GetConsultation(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, c.UserID)
	assert.Equal(t, u.ID, *c.UserID)
}

func TestPromoteConsultationTwiceRejected(t *testing.T) {
	svc, consultations, _ := newUserService()
	ctx := context.Background()
	id := seedConsultation(t, consultations)

	_, err := svc.PromoteConsultation(ctx, PromoteRequest{ConsultationID: id, UID: "2026-0001"})
	require.NoError(t, err)

	_, err = svc.PromoteConsultation(ctx, PromoteRequest{ConsultationID: id, UID: "2026-0002"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "既に利用者登録")
}

func TestPromoteDuplicateUIDRejected(t *testing.T) {
	svc, consultations, users := newUserService()
	ctx := context.Background()
	_, err := users.CreateUser(ctx, &domain.EndUser{UID: "2026-0001", Name: "既存"})
	require.NoError(t, err)

	id := seedConsultation(t, consultations)
	_, err = svc.PromoteConsultation(ctx, PromoteRequest{ConsultationID: id, UID: "2026-0001"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "既に使用されています")
}

func TestCreateUserUIDFormat(t *testing.T) {
	svc, _, _ := newUserService()
	_, err := svc.CreateUser(context.Background(), &domain.EndUser{UID: "26-1", Name: "山田"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "0000-0000")
}
