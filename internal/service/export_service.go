package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"anshin-house-data/internal/domain"
	"anshin-house-data/internal/export"
	"anshin-house-data/internal/repository"
	"anshin-house-data/internal/search"
)

// ExportService 帳票・ダンプ出力サービス接口
// Template or I/O failures abort the whole export; no partial file is ever
// returned.
type ExportService interface {
	// ExportRecords 選択した相談の相談記録票（1件=1シート）
	ExportRecords(ctx context.Context, consultationIDs []string) ([]byte, error)

	// MonthlyReport 指定年月の月次報告
	MonthlyReport(ctx context.Context, year, month int) ([]byte, error)

	// FlatXLSX / FlatCSV 全相談のDBスキーマ形式ダンプ
	FlatXLSX(ctx context.Context) ([]byte, error)
	FlatCSV(ctx context.Context) ([]byte, error)
}

type exportService struct {
	consultations repository.ConsultationsRepository
	staff         repository.StaffRepository
	engine        *export.Engine
	logger        *zap.Logger
	now           func() time.Time
}

func NewExportService(
	consultations repository.ConsultationsRepository,
	staff repository.StaffRepository,
	engine *export.Engine,
	logger *zap.Logger,
) ExportService {
	return &exportService{
		consultations: consultations,
		staff:         staff,
		engine:        engine,
		logger:        logger,
		now:           time.Now,
	}
}

var _ ExportService = (*exportService)(nil)

func (s *exportService) ExportRecords(ctx context.Context, consultationIDs []string) ([]byte, error) {
	v := &validator{}
	if len(consultationIDs) == 0 {
		v.addf("出力対象の相談を選択してください")
	}
	for _, id := range consultationIDs {
		v.requireUUID("相談ID", id)
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	cs := make([]*domain.Consultation, 0, len(consultationIDs))
	for _, id := range consultationIDs {
		c, err := s.consultations.GetConsultation(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				return nil, fmt.Errorf("相談が見つかりません: %s: %w", id, err)
			}
			return nil, err
		}
		cs = append(cs, c)
	}

	staffNames, err := s.staffNames(ctx)
	if err != nil {
		return nil, err
	}

	return s.engine.RecordBook(cs, staffNames, s.now())
}

func (s *exportService) MonthlyReport(ctx context.Context, year, month int) ([]byte, error) {
	v := &validator{}
	if year < 2000 || year > 2100 {
		v.addf("年の指定が不正です")
	}
	if month < 1 || month > 12 {
		v.addf("月の指定が不正です")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	all, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	cs := search.Apply(all, search.Filter{
		Status: search.StatusFilterAll,
		Month:  fmt.Sprintf("%04d-%02d", year, month),
	})
	search.SortBy(cs, search.SortByConsultationDate, search.Asc)

	return s.engine.MonthlyReport(cs, year, month)
}

func (s *exportService) FlatXLSX(ctx context.Context) ([]byte, error) {
	cs, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return export.FlatXLSX(cs)
}

func (s *exportService) FlatCSV(ctx context.Context) ([]byte, error) {
	cs, err := s.consultations.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return export.FlatCSV(cs)
}

func (s *exportService) staffNames(ctx context.Context) (map[string]string, error) {
	staff, err := s.staff.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	names := make(map[string]string, len(staff))
	for _, st := range staff {
		names[st.ID] = st.Name
	}
	return names, nil
}
