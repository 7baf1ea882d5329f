package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/dto"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/service"
	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AvailabilityService ──

type mockAvailabilityService struct {
	checkErr     error
	searchResult *dto.SearchRoomsResponse
	searchErr    error
	lastReq      *dto.SearchRoomsRequest
}

func (m *mockAvailabilityService) CheckRoom(_ context.Context, _ string, _, _, _ int) error {
	return m.checkErr
}
func (m *mockAvailabilityService) SearchRooms(_ context.Context, req *dto.SearchRoomsRequest) (*dto.SearchRoomsResponse, error) {
	m.lastReq = req
	return m.searchResult, m.searchErr
}

// ── Mock TimetableService ──

type mockTimetableService struct {
	groupResult      *dto.GroupTimetableResponse
	groupErr         error
	instructorResult *dto.InstructorTimetableResponse
	instructorErr    error
	todayResult      *dto.TodayScheduleResponse
	todayErr         error
}

func (m *mockTimetableService) GetGroupTimetable(_ context.Context, _ string) (*dto.GroupTimetableResponse, error) {
	return m.groupResult, m.groupErr
}
func (m *mockTimetableService) GetInstructorTimetable(_ context.Context, _ string) (*dto.InstructorTimetableResponse, error) {
	return m.instructorResult, m.instructorErr
}
func (m *mockTimetableService) GetTodaySchedule(_ context.Context, _ string, _ int) (*dto.TodayScheduleResponse, error) {
	return m.todayResult, m.todayErr
}

// ── Mock ReservationService ──

type mockReservationService struct {
	submitResult *dto.SubmitReservationResponse
	submitErr    error
	listResult   []dto.ReservationStatusItem
	listErr      error
	updateResult *dto.ReservationStatusResponse
	updateErr    error
}

func (m *mockReservationService) Submit(_ context.Context, _ string, _ *dto.SubmitReservationRequest) (*dto.SubmitReservationResponse, error) {
	return m.submitResult, m.submitErr
}
func (m *mockReservationService) ListMine(_ context.Context, _ string) ([]dto.ReservationStatusItem, error) {
	return m.listResult, m.listErr
}
func (m *mockReservationService) UpdateStatus(_ context.Context, _, _ string) (*dto.ReservationStatusResponse, error) {
	return m.updateResult, m.updateErr
}

// ── Mock UnavailabilityService ──

type mockUnavailabilityService struct {
	declareResult *dto.DeclareUnavailabilityResponse
	declareErr    error
}

func (m *mockUnavailabilityService) Declare(_ context.Context, _ string, _ *dto.DeclareUnavailabilityRequest) (*dto.DeclareUnavailabilityResponse, error) {
	return m.declareResult, m.declareErr
}

// ── Mock ExportService ──

type mockExportService struct {
	matrix    *dto.TimetableMatrix
	matrixErr error
	buf       *bytes.Buffer
	filename  string
	excelErr  error
}

func (m *mockExportService) BuildMatrix(_ context.Context, _, _ string) (*dto.TimetableMatrix, error) {
	return m.matrix, m.matrixErr
}
func (m *mockExportService) ExportExcel(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.excelErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setupGin() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func setAuth(c *gin.Context, role string) {
	c.Set("user_id", "test-user-id")
	c.Set("role", role)
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// RoomHandler Tests
// ═══════════════════════════════════════════════════════════

func TestRoomHandler_SearchRooms_Success(t *testing.T) {
	mock := &mockAvailabilityService{
		searchResult: &dto.SearchRoomsResponse{Mode: dto.SearchModeSlot, Rooms: []dto.RoomAvailability{}, Count: 0},
	}
	h := NewRoomHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/rooms/available?day=1&start_hour=10&duration=2", nil)

	r := gin.New()
	r.GET("/rooms/available", h.SearchRooms)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastReq.Day == nil || *mock.lastReq.Day != 1 {
		t.Error("day 查询参数应透传到 Service")
	}
	if mock.lastReq.StartHour == nil || *mock.lastReq.StartHour != 10 {
		t.Error("start_hour 查询参数应透传到 Service")
	}
}

func TestRoomHandler_SearchRooms_OmittedParams(t *testing.T) {
	mock := &mockAvailabilityService{
		searchResult: &dto.SearchRoomsResponse{Mode: dto.SearchModeCatalog, Rooms: []dto.RoomAvailability{}, Count: 0},
	}
	h := NewRoomHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/rooms/available", nil)

	r := gin.New()
	r.GET("/rooms/available", h.SearchRooms)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	// 缺省参数应保持 nil，模式判定在 Service 层完成
	if mock.lastReq.Day != nil || mock.lastReq.StartHour != nil {
		t.Error("缺省的 day/start_hour 应为 nil")
	}
}

func TestRoomHandler_SearchRooms_InvalidDay(t *testing.T) {
	mock := &mockAvailabilityService{searchErr: apperr.NewValidation("day", "必须在 1-5 之间")}
	h := NewRoomHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/rooms/available?day=9", nil)

	r := gin.New()
	r.GET("/rooms/available", h.SearchRooms)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeRoom+1 {
		t.Errorf("expected code %d, got %d", codeRoom+1, resp.Code)
	}
}

func TestRoomHandler_ListRooms_ForcesCatalog(t *testing.T) {
	mock := &mockAvailabilityService{
		searchResult: &dto.SearchRoomsResponse{Mode: dto.SearchModeCatalog, Rooms: []dto.RoomAvailability{}, Count: 0},
	}
	h := NewRoomHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/rooms?day=1&start_hour=10", nil)

	r := gin.New()
	r.GET("/rooms", h.ListRooms)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastReq.Day != nil || mock.lastReq.StartHour != nil {
		t.Error("目录端点应忽略时段参数")
	}
}

// ═══════════════════════════════════════════════════════════
// TimetableHandler Tests
// ═══════════════════════════════════════════════════════════

func TestTimetableHandler_GetGroupTimetable_Success(t *testing.T) {
	mock := &mockTimetableService{
		groupResult: &dto.GroupTimetableResponse{Groupe: "GI-2", EmploiDuTemps: map[string][]dto.SlotDescriptor{}},
	}
	h := NewTimetableHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/group", nil)

	r := gin.New()
	r.GET("/timetables/group", func(c *gin.Context) {
		setAuth(c, "student")
		h.GetGroupTimetable(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestTimetableHandler_GetGroupTimetable_Unauthenticated(t *testing.T) {
	mock := &mockTimetableService{}
	h := NewTimetableHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/group", nil)

	r := gin.New()
	r.GET("/timetables/group", h.GetGroupTimetable)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestTimetableHandler_GetGroupTimetable_NoMembership(t *testing.T) {
	mock := &mockTimetableService{groupErr: apperr.NewNotFound("班组", "test-user-id")}
	h := NewTimetableHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/group", nil)

	r := gin.New()
	r.GET("/timetables/group", func(c *gin.Context) {
		setAuth(c, "student")
		h.GetGroupTimetable(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeTimetable+2 {
		t.Errorf("expected code %d, got %d", codeTimetable+2, resp.Code)
	}
}

func TestTimetableHandler_GetMyTimetable_Success(t *testing.T) {
	mock := &mockTimetableService{
		instructorResult: &dto.InstructorTimetableResponse{Enseignant: "Pr. Alami", EmploiDuTemps: map[string][]dto.SlotDescriptor{}},
	}
	h := NewTimetableHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/me", nil)

	r := gin.New()
	r.GET("/timetables/me", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.GetMyTimetable(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ReservationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestReservationHandler_Submit_Success(t *testing.T) {
	mock := &mockReservationService{
		submitResult: &dto.SubmitReservationResponse{ReservationID: "res-001", Status: "PENDING"},
	}
	h := NewReservationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/reservations", jsonBody(dto.SubmitReservationRequest{
		RoomName: "B102", GroupName: "GI-2", Day: 1, StartHour: 10, Duration: 2,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/reservations", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.Submit(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestReservationHandler_Submit_BadJSON(t *testing.T) {
	mock := &mockReservationService{}
	h := NewReservationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/reservations", bytes.NewReader([]byte("bad")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/reservations", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.Submit(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReservationHandler_Submit_Conflict(t *testing.T) {
	mock := &mockReservationService{submitErr: apperr.NewConflict(apperr.ConflictSourceTimetable)}
	h := NewReservationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/reservations", jsonBody(dto.SubmitReservationRequest{
		RoomName: "B102", GroupName: "GI-2", Day: 1, StartHour: 9, Duration: 2,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/reservations", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.Submit(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeReservation+3 {
		t.Errorf("expected code %d, got %d", codeReservation+3, resp.Code)
	}
	// 冲突来源在 details 中透出
	if resp.Details != apperr.ConflictSourceTimetable {
		t.Errorf("expected details=timetable, got %s", resp.Details)
	}
}

func TestReservationHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"Validation", apperr.NewValidation("day", "必须在 1-5 之间"), 400, codeReservation + 1},
		{"NotFound", apperr.NewNotFound("教室", "Z999"), 404, codeReservation + 2},
		{"Conflict", apperr.NewConflict(apperr.ConflictSourceReservation), 409, codeReservation + 3},
		{"Integrity", apperr.NewIntegrity(errors.New("duplicate key")), 409, codeReservation + 4},
		{"Internal", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockReservationService{submitErr: tt.err}
			h := NewReservationHandler(mock)

			w := setupGin()
			req := httptest.NewRequest("POST", "/reservations", jsonBody(dto.SubmitReservationRequest{
				RoomName: "B102", GroupName: "GI-2", Day: 1, StartHour: 10, Duration: 2,
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/reservations", func(c *gin.Context) {
				setAuth(c, "teacher")
				h.Submit(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestReservationHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mock := &mockReservationService{}
	h := NewReservationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("PUT", "/reservations/res-001/status", jsonBody(dto.UpdateReservationStatusRequest{
		Status: "CANCELLED",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/reservations/:id/status", h.UpdateStatus)
	r.ServeHTTP(w, req)

	// oneof=APPROVED REJECTED 绑定校验直接拒绝
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReservationHandler_UpdateStatus_Success(t *testing.T) {
	mock := &mockReservationService{
		updateResult: &dto.ReservationStatusResponse{ReservationID: "res-001", Status: "APPROVED"},
	}
	h := NewReservationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("PUT", "/reservations/res-001/status", jsonBody(dto.UpdateReservationStatusRequest{
		Status: "APPROVED",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/reservations/:id/status", h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// UnavailabilityHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUnavailabilityHandler_Declare_Success(t *testing.T) {
	mock := &mockUnavailabilityService{
		declareResult: &dto.DeclareUnavailabilityResponse{WindowID: "win-001", UnavailableSlots: "Lundi_09-11"},
	}
	h := NewUnavailabilityHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/unavailability", jsonBody(dto.DeclareUnavailabilityRequest{
		Day: 1, StartHour: 9, Duration: 2, Reason: "réunion",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/unavailability", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.Declare(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestUnavailabilityHandler_Declare_Validation(t *testing.T) {
	mock := &mockUnavailabilityService{declareErr: apperr.NewValidation("duration", "必须 >= 1")}
	h := NewUnavailabilityHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/unavailability", jsonBody(dto.DeclareUnavailabilityRequest{
		Day: 1, StartHour: 9, Duration: 2,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/unavailability", func(c *gin.Context) {
		setAuth(c, "teacher")
		h.Declare(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeUnavailability+1 {
		t.Errorf("expected code %d, got %d", codeUnavailability+1, resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportExcel_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "Mon_Emploi_du_Temps.xlsx",
	}
	h := NewExportHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/export/excel", nil)

	r := gin.New()
	r.GET("/timetables/export/excel", func(c *gin.Context) {
		setAuth(c, "student")
		h.ExportExcel(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("unexpected content type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_ExportMatrix_Success(t *testing.T) {
	mock := &mockExportService{
		matrix: &dto.TimetableMatrix{Title: "Emploi du Temps - GI-2", Bands: []string{"08h00-09h30"}},
	}
	h := NewExportHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/export", nil)

	r := gin.New()
	r.GET("/timetables/export", func(c *gin.Context) {
		setAuth(c, "student")
		h.ExportMatrix(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestExportHandler_BadRole(t *testing.T) {
	mock := &mockExportService{matrixErr: service.ErrExportBadRole}
	h := NewExportHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/timetables/export", nil)

	r := gin.New()
	r.GET("/timetables/export", func(c *gin.Context) {
		setAuth(c, "admin")
		h.ExportMatrix(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}
