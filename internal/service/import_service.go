package service

import (
	"context"

	"go.uber.org/zap"

	"anshin-house-data/internal/importer"
	"anshin-house-data/internal/store"
)

// ImportService 利用者一括取り込みサービス接口
type ImportService interface {
	ImportUsers(ctx context.Context, filename string, data []byte) (*importer.Result, error)
}

type importService struct {
	importer *importer.Importer
	views    *store.ViewCache
	logger   *zap.Logger
}

func NewImportService(imp *importer.Importer, views *store.ViewCache, logger *zap.Logger) ImportService {
	return &importService{importer: imp, views: views, logger: logger}
}

var _ ImportService = (*importService)(nil)

func (s *importService) ImportUsers(ctx context.Context, filename string, data []byte) (*importer.Result, error) {
	res, err := s.importer.Import(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	// 取り込みは多数のレコードを一度に触るため全ビューを破棄する
	if res.SuccessCount > 0 {
		s.views.InvalidateAllConsultations(ctx)
	}

	s.logger.Info("user import finished",
		zap.String("filename", filename),
		zap.Int("success", res.SuccessCount),
		zap.Int("failure", res.FailureCount),
	)
	return res, nil
}
