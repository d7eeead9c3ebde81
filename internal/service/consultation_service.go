package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/repository"
	"anshin-house-data/internal/search"
	"anshin-house-data/internal/store"
)

// ConsultationService 相談管理サービス接口
type ConsultationService interface {
	ListConsultations(ctx context.Context, req ListConsultationsRequest) (*ListConsultationsResponse, error)
	GetConsultation(ctx context.Context, id string) (*domain.Consultation, error)
	CreateConsultation(ctx context.Context, c *domain.Consultation) (string, error)
	UpdateConsultation(ctx context.Context, c *domain.Consultation) error
	DeleteConsultation(ctx context.Context, id string) error

	// 支援経過
	CreateEvent(ctx context.Context, e *domain.ConsultationEvent) (string, error)
	ListEvents(ctx context.Context, consultationID string) ([]*domain.ConsultationEvent, error)
	DeleteEvent(ctx context.Context, consultationID, eventID string) error
}

// ListConsultationsRequest 一覧の絞り込み・並び替え条件
type ListConsultationsRequest struct {
	Status        string `json:"status"`
	StaffID       string `json:"staff_id"`
	Query         string `json:"query"`
	Month         string `json:"month"` // "2026-09"
	HasNextAction bool   `json:"has_next_action"`
	SortKey       string `json:"sort_key"`
	SortDir       string `json:"sort_dir"`
}

type ListConsultationsResponse struct {
	Items []*domain.Consultation `json:"items"`
	Total int                    `json:"total"`
}

type consultationService struct {
	consultations repository.ConsultationsRepository
	events        repository.EventsRepository
	views         *store.ViewCache
	logger        *zap.Logger
}

// NewConsultationService 相談管理サービスを生成する
func NewConsultationService(
	consultations repository.ConsultationsRepository,
	events repository.EventsRepository,
	views *store.ViewCache,
	logger *zap.Logger,
) ConsultationService {
	return &consultationService{
		consultations: consultations,
		events:        events,
		views:         views,
		logger:        logger,
	}
}

var _ ConsultationService = (*consultationService)(nil)

func (s *consultationService) ListConsultations(ctx context.Context, req ListConsultationsRequest) (*ListConsultationsResponse, error) {
	all, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	items := search.Apply(all, search.Filter{
		Status:        req.Status,
		StaffID:       req.StaffID,
		Query:         req.Query,
		Month:         req.Month,
		HasNextAction: req.HasNextAction,
	})
	if req.SortKey != "" {
		search.SortBy(items, req.SortKey, req.SortDir)
	}

	return &ListConsultationsResponse{Items: items, Total: len(items)}, nil
}

func (s *consultationService) GetConsultation(ctx context.Context, id string) (*domain.Consultation, error) {
	v := &validator{}
	v.requireUUID("相談ID", id)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.consultations.GetConsultation(ctx, id)
}

func (s *consultationService) CreateConsultation(ctx context.Context, c *domain.Consultation) (string, error) {
	if err := s.validateConsultation(c); err != nil {
		return "", err
	}
	id, err := s.consultations.CreateConsultation(ctx, c)
	if err != nil {
		return "", fmt.Errorf("failed to create consultation: %w", err)
	}
	s.views.InvalidateConsultation(ctx, id)
	return id, nil
}

func (s *consultationService) UpdateConsultation(ctx context.Context, c *domain.Consultation) error {
	v := &validator{}
	v.requireUUID("相談ID", c.ID)
	if err := v.err(); err != nil {
		return err
	}
	if err := s.validateConsultation(c); err != nil {
		return err
	}
	if err := s.consultations.UpdateConsultation(ctx, c); err != nil {
		return err
	}
	s.views.InvalidateConsultation(ctx, c.ID)
	return nil
}

func (s *consultationService) DeleteConsultation(ctx context.Context, id string) error {
	v := &validator{}
	v.requireUUID("相談ID", id)
	if err := v.err(); err != nil {
		return err
	}
	if err := s.consultations.DeleteConsultation(ctx, id); err != nil {
		return err
	}
	s.views.InvalidateConsultation(ctx, id)
	return nil
}

func (s *consultationService) validateConsultation(c *domain.Consultation) error {
	v := &validator{}
	if c.Status == "" {
		v.addf("ステータスは必須です")
	} else if !domain.IsValidStatus(c.Status) {
		v.addf("ステータスの値が不正です: " + c.Status)
	}
	if c.ConsultationDate == nil {
		v.addf("相談日は必須です")
	}
	v.optionalUUID("担当者ID", c.StaffID)
	v.maxLen("相談内容", c.ConsultationContent, maxTextLen)
	v.maxLen("対応結果", c.ConsultationResult, maxTextLen)
	v.maxLen("備考", c.Notes, maxNoteLen)
	return v.err()
}

// CreateEvent appends a progress note. The repository moves the parent
// consultation's denormalized status/staff/next-action in the same
// transaction, so after a successful return both views agree.
func (s *consultationService) CreateEvent(ctx context.Context, e *domain.ConsultationEvent) (string, error) {
	v := &validator{}
	v.requireUUID("相談ID", e.ConsultationID)
	v.optionalUUID("担当者ID", e.StaffID)
	if e.Status == "" {
		v.addf("ステータスは必須です")
	} else if !domain.IsValidStatus(e.Status) {
		v.addf("ステータスの値が不正です: " + e.Status)
	}
	v.maxLen("経過メモ", e.Note, maxNoteLen)
	if err := v.err(); err != nil {
		return "", err
	}

	id, err := s.events.CreateEvent(ctx, e)
	if err != nil {
		return "", err
	}
	s.views.InvalidateConsultation(ctx, e.ConsultationID)
	return id, nil
}

func (s *consultationService) ListEvents(ctx context.Context, consultationID string) ([]*domain.ConsultationEvent, error) {
	v := &validator{}
	v.requireUUID("相談ID", consultationID)
	if err := v.err(); err != nil {
		return nil, err
	}
	return s.events.ListEventsByConsultation(ctx, consultationID)
}

func (s *consultationService) DeleteEvent(ctx context.Context, consultationID, eventID string) error {
	v := &validator{}
	v.requireUUID("相談ID", consultationID)
	v.requireUUID("経過ID", eventID)
	if err := v.err(); err != nil {
		return err
	}
	if err := s.events.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	s.views.InvalidateConsultation(ctx, consultationID)
	return nil
}
