package service

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
	"anshin-house-data/internal/store"
)

var uidPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// UserService 利用者管理サービス接口
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.EndUser, error)
	GetUser(ctx context.Context, id string) (*domain.EndUser, error)
	CreateUser(ctx context.Context, u *domain.EndUser) (string, error)
	UpdateUser(ctx context.Context, u *domain.EndUser) error
	DeleteUser(ctx context.Context, id string) error

	// PromoteConsultation 相談を利用者として正式登録する
	PromoteConsultation(ctx context.Context, req PromoteRequest) (*domain.EndUser, error)
}

// PromoteRequest 利用者登録（昇格）リクエスト。人口統計は相談レコードから
// コピーされるため、ここには登録時に決まる項目だけを載せる。
type PromoteRequest struct {
	ConsultationID string `json:"consultation_id"`
	UID            string `json:"uid"`

	PropertyName     string `json:"property_name"`
	PropertyAddress  string `json:"property_address"`
	FloorPlan        string `json:"floor_plan"`
	Rent             *int64 `json:"rent"`
	ManagementFee    *int64 `json:"management_fee"`
	Deposit          *int64 `json:"deposit"`
	KeyMoney         *int64 `json:"key_money"`
	MonitoringSystem string `json:"monitoring_system"`
	Notes            string `json:"notes"`
}

type userService struct {
	users         repository.UsersRepository
	consultations repository.ConsultationsRepository
	views         *store.ViewCache
	logger        *zap.Logger
}

// NewUserService 利用者管理サービスを生成する
func NewUserService(
	users repository.UsersRepository,
	consultations repository.ConsultationsRepository,
	views *store.ViewCache,
	logger *zap.Logger,
) UserService {
	return &userService{
		users:         users,
		consultations: consultations,
		views:         views,
		logger:        logger,
	}
}

var _ UserService = (*userService)(nil)

func (s *userService) ListUsers(ctx context.Context) ([]*domain.EndUser, error) {
	return s.users.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.EndUser, error) {
	v := &validator{}
	v.requireUUID("利用者ID", id)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, u *domain.EndUser) (string, error) {
	if err := s.validateUser(ctx, u, ""); err != nil {
		return "", err
	}
	return s.users.CreateUser(ctx, u)
}

func (s *userService) UpdateUser(ctx context.Context, u *domain.EndUser) error {
	v := &validator{}
	v.requireUUID("利用者ID", u.ID)
	if err := v.err(); err != nil {
		return err
	}
	if err := s.validateUser(ctx, u, u.ID); err != nil {
		return err
	}
	return s.users.UpdateUser(ctx, u)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	v := &validator{}
	v.requireUUID("利用者ID", id)
	if err := v.err(); err != nil {
		return err
	}
	return s.users.DeleteUser(ctx, id)
}

// validateUser checks shape and UID uniqueness. excludeID skips the user's
// own row on updates.
func (s *userService) validateUser(ctx context.Context, u *domain.EndUser, excludeID string) error {
	v := &validator{}
	if u.Name == "" {
		v.addf("氏名は必須です")
	}
	if u.UID == "" {
		v.addf("利用者ID（表示用）は必須です")
	} else if !uidPattern.MatchString(u.UID) {
		v.addf("利用者ID（表示用）の形式が不正です（0000-0000 形式）: " + u.UID)
	}
	v.maxLen("備考", u.Notes, maxNoteLen)
	if err := v.err(); err != nil {
		return err
	}

	// Duplicate check is a normal branch, not an error path.
	if excludeID == "" {
		taken, err := s.uidTaken(ctx, u.UID)
		if err != nil {
			return err
		}
		if taken {
			return &ValidationError{Problems: []string{"利用者ID " + u.UID + " は既に使用されています"}}
		}
	}
	return nil
}

func (s *userService) uidTaken(ctx context.Context, uid string) (bool, error) {
	uids, err := s.users.ListUIDs(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list uids: %w", err)
	}
	for _, existing := range uids {
		if existing == uid {
			return true, nil
		}
	}
	return false, nil
}

// PromoteConsultation registers a consultation subject as a formal end
// user: demographics are copied from the consultation, the lease fields come
// from the request, and the consultation is linked to the new user so it
// disappears from the active list.
func (s *userService) PromoteConsultation(ctx context.Context, req PromoteRequest) (*domain.EndUser, error) {
	v := &validator{}
	v.requireUUID("相談ID", req.ConsultationID)
	if err := v.err(); err != nil {
		return nil, err
	}

	c, err := s.consultations.GetConsultation(ctx, req.ConsultationID)
	if err != nil {
		return nil, err
	}
	if c.UserID != nil {
		return nil, &ValidationError{Problems: []string{"この相談は既に利用者登録されています"}}
	}

	u := &domain.EndUser{
		UID:            req.UID,
		ConsultationID: &c.ID,
		StaffID:        c.StaffID,

		Name:        c.Name,
		Furigana:    c.Furigana,
		Gender:      c.Gender,
		BirthYear:   c.BirthYear,
		BirthMonth:  c.BirthMonth,
		BirthDay:    c.BirthDay,
		PostalCode:  c.PostalCode,
		Address:     c.Address,
		Phone:       c.Phone,
		PhoneMobile: c.PhoneMobile,

		PropertyName:     req.PropertyName,
		PropertyAddress:  req.PropertyAddress,
		FloorPlan:        req.FloorPlan,
		Rent:             req.Rent,
		ManagementFee:    req.ManagementFee,
		Deposit:          req.Deposit,
		KeyMoney:         req.KeyMoney,
		MonitoringSystem: req.MonitoringSystem,
		Notes:            req.Notes,
	}
	if err := s.validateUser(ctx, u, ""); err != nil {
		return nil, err
	}

	id, err := s.users.CreateUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = id

	if err := s.consultations.SetUserLink(ctx, c.ID, id); err != nil {
		// The user row exists but the consultation still shows as active.
		// Surface this distinctly so the operator re-links instead of
		// registering twice.
		s.logger.Error("user created but consultation link failed",
			zap.String("consultation_id", c.ID),
			zap.String("user_id", id),
			zap.Error(err),
		)
		return nil, fmt.Errorf("利用者は作成されましたが相談との紐付けに失敗しました: %w", err)
	}

	s.views.InvalidateConsultation(ctx, c.ID)
	return u, nil
}
