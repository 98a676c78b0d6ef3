package service

import (
	"context"

	"shopmap/internal/repository"
)

type StatsResponse struct {
	Tables int               `json:"tables"`
	Rows   *repository.Stats `json:"rows"`
}

type StatsService interface {
	GetStats(ctx context.Context) (*StatsResponse, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (t *statsService) GetStats(ctx context.Context) (*StatsResponse, error) {
	tables, err := t.statsRepo.CountTablesDB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := t.statsRepo.CountRows(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{Tables: tables, Rows: rows}, nil
}
