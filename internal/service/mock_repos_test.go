package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/model"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/repository"
	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/interval"
)

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
	slots *mockWeeklySlotRepo
	res   *mockReservationRepo
}

func newMockRoomRepo(slots *mockWeeklySlotRepo, res *mockReservationRepo) *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room), slots: slots, res: res}
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) GetActiveByName(_ context.Context, name string) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.Name == name && r.Active {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) ListActive(_ context.Context, minCapacity int) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if r.Active && r.Capacity >= minCapacity {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRoomRepo) ListFreeAt(ctx context.Context, day, startHour, endHour, minCapacity int) ([]model.Room, error) {
	all, _ := m.ListActive(ctx, minCapacity)
	var result []model.Room
	for _, r := range all {
		busy := false
		for _, s := range m.slots.slots {
			if s.RoomID == r.RoomID && s.Day == day && interval.Overlaps(s.StartHour, s.EndHour(), startHour, endHour) {
				busy = true
			}
		}
		for _, res := range m.res.reservations {
			if res.RoomID == r.RoomID && res.Day == day && res.Status == model.ReservationApproved &&
				interval.Overlaps(res.StartHour, res.EndHour(), startHour, endHour) {
				busy = true
			}
		}
		if !busy {
			result = append(result, r)
		}
	}
	return result, nil
}

// ── Mock GroupRepository ──

type mockGroupRepo struct {
	groups      map[string]*model.Group
	memberships map[string]string // userID → groupID
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{groups: make(map[string]*model.Group), memberships: make(map[string]string)}
}

func (m *mockGroupRepo) GetByID(_ context.Context, id string) (*model.Group, error) {
	if g, ok := m.groups[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetActiveByName(_ context.Context, name string) (*model.Group, error) {
	for _, g := range m.groups {
		if g.Name == name && g.Active {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGroupRepo) GetForStudent(_ context.Context, userID string) (*model.Group, error) {
	if groupID, ok := m.memberships[userID]; ok {
		if g, ok := m.groups[groupID]; ok && g.Active {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[string]*model.Instructor
}

func newMockInstructorRepo() *mockInstructorRepo {
	return &mockInstructorRepo{instructors: make(map[string]*model.Instructor)}
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id string) (*model.Instructor, error) {
	if i, ok := m.instructors[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) GetByUserID(_ context.Context, userID string) (*model.Instructor, error) {
	for _, i := range m.instructors {
		if i.UserID == userID {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) UpdateUnavailableSlots(_ context.Context, instructorID, summary string) error {
	if i, ok := m.instructors[instructorID]; ok {
		i.UnavailableSlots = summary
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock WeeklySlotRepository ──

type mockWeeklySlotRepo struct {
	slots []model.WeeklySlot
}

func newMockWeeklySlotRepo() *mockWeeklySlotRepo {
	return &mockWeeklySlotRepo{}
}

func (m *mockWeeklySlotRepo) ListByGroup(_ context.Context, groupID string) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.GroupID == groupID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].StartHour < result[j].StartHour
	})
	return result, nil
}

func (m *mockWeeklySlotRepo) ListByGroupAndDay(_ context.Context, groupID string, day int) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.GroupID == groupID && s.Day == day {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartHour < result[j].StartHour })
	return result, nil
}

func (m *mockWeeklySlotRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.InstructorID == instructorID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].StartHour < result[j].StartHour
	})
	return result, nil
}

func (m *mockWeeklySlotRepo) ListByDay(_ context.Context, day int) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.Day == day {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockWeeklySlotRepo) CountOverlapping(_ context.Context, roomID string, day, startHour, endHour int) (int64, error) {
	var n int64
	for _, s := range m.slots {
		if s.RoomID == roomID && s.Day == day && interval.Overlaps(s.StartHour, s.EndHour(), startHour, endHour) {
			n++
		}
	}
	return n, nil
}

func (m *mockWeeklySlotRepo) ListGroupCell(_ context.Context, groupID string, day, startHour int) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.GroupID == groupID && s.Day == day && s.StartHour == startHour {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockWeeklySlotRepo) ListInstructorCell(_ context.Context, instructorID string, day, startHour int) ([]model.WeeklySlot, error) {
	var result []model.WeeklySlot
	for _, s := range m.slots {
		if s.InstructorID == instructorID && s.Day == day && s.StartHour == startHour {
			result = append(result, s)
		}
	}
	return result, nil
}

// ── Mock ReservationRepository ──
//
// CreateIfRoomFree 用互斥锁模拟可串行化事务：检查与插入原子执行，
// 并发提交测试依赖该语义。

type mockReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*model.Reservation
	slots        *mockWeeklySlotRepo
	seq          int
}

func newMockReservationRepo(slots *mockWeeklySlotRepo) *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[string]*model.Reservation), slots: slots}
}

func (m *mockReservationRepo) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	if r, ok := m.reservations[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReservationRepo) CountApprovedOverlapping(_ context.Context, roomID string, day, startHour, endHour int) (int64, error) {
	var n int64
	for _, r := range m.reservations {
		if r.RoomID == roomID && r.Day == day && r.Status == model.ReservationApproved &&
			interval.Overlaps(r.StartHour, r.EndHour(), startHour, endHour) {
			n++
		}
	}
	return n, nil
}

func (m *mockReservationRepo) ListApprovedByDay(_ context.Context, day int) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.Day == day && r.Status == model.ReservationApproved {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.InstructorID == instructorID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockReservationRepo) CreateIfRoomFree(_ context.Context, res *model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	endHour := res.StartHour + res.Duration
	for _, s := range m.slots.slots {
		if s.RoomID == res.RoomID && s.Day == res.Day && interval.Overlaps(s.StartHour, s.EndHour(), res.StartHour, endHour) {
			return apperr.NewConflict(apperr.ConflictSourceTimetable)
		}
	}
	for _, r := range m.reservations {
		if r.RoomID == res.RoomID && r.Day == res.Day && r.Status != model.ReservationRejected &&
			interval.Overlaps(r.StartHour, r.EndHour(), res.StartHour, endHour) {
			return apperr.NewConflict(apperr.ConflictSourceReservation)
		}
	}

	m.seq++
	res.ReservationID = fmt.Sprintf("res-%03d", m.seq)
	res.CreatedAt = time.Now()
	m.reservations[res.ReservationID] = res
	return nil
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, id, status string) error {
	if r, ok := m.reservations[id]; ok {
		r.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock UnavailabilityRepository ──

type mockUnavailabilityRepo struct {
	windows []model.UnavailabilityWindow
	seq     int
}

func newMockUnavailabilityRepo() *mockUnavailabilityRepo {
	return &mockUnavailabilityRepo{}
}

func (m *mockUnavailabilityRepo) Create(_ context.Context, w *model.UnavailabilityWindow) error {
	m.seq++
	w.WindowID = fmt.Sprintf("win-%03d", m.seq)
	w.CreatedAt = time.Now()
	m.windows = append(m.windows, *w)
	return nil
}

func (m *mockUnavailabilityRepo) ListByInstructor(_ context.Context, instructorID string) ([]model.UnavailabilityWindow, error) {
	var result []model.UnavailabilityWindow
	for _, w := range m.windows {
		if w.InstructorID == instructorID {
			result = append(result, w)
		}
	}
	return result, nil
}

// ── 组装辅助 ──

type testRepos struct {
	room           *mockRoomRepo
	group          *mockGroupRepo
	instructor     *mockInstructorRepo
	weeklySlot     *mockWeeklySlotRepo
	reservation    *mockReservationRepo
	unavailability *mockUnavailabilityRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	slots := newMockWeeklySlotRepo()
	reservations := newMockReservationRepo(slots)
	mocks := &testRepos{
		room:           newMockRoomRepo(slots, reservations),
		group:          newMockGroupRepo(),
		instructor:     newMockInstructorRepo(),
		weeklySlot:     slots,
		reservation:    reservations,
		unavailability: newMockUnavailabilityRepo(),
	}
	repo := &repository.Repository{
		Room:           mocks.room,
		Group:          mocks.group,
		Instructor:     mocks.instructor,
		WeeklySlot:     mocks.weeklySlot,
		Reservation:    mocks.reservation,
		Unavailability: mocks.unavailability,
	}
	return repo, mocks
}
