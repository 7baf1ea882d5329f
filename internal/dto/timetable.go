package dto

// SlotDescriptor 课表条目描述（学生视角带教师名，教师视角带班组名）
type SlotDescriptor struct {
	Heure      string `json:"heure"` // "08h-10h"
	Matiere    string `json:"matiere"`
	Code       string `json:"code"`
	TypeCours  string `json:"type,omitempty"`
	Salle      string `json:"salle"`
	TypeSalle  string `json:"type_salle"`
	Enseignant string `json:"enseignant,omitempty"` // 学生视角
	Groupe     string `json:"groupe,omitempty"`     // 教师视角
}

// GroupTimetableResponse 班组周课表（学生视角）
// EmploiDuTemps 以法语星期名为键，五个工作日必定全部出现（无课为空列表）
type GroupTimetableResponse struct {
	Groupe        string                      `json:"groupe"`
	EmploiDuTemps map[string][]SlotDescriptor `json:"emploi_du_temps"`
}

// InstructorTimetableResponse 教师周课表
type InstructorTimetableResponse struct {
	Enseignant    string                      `json:"enseignant"`
	EmploiDuTemps map[string][]SlotDescriptor `json:"emploi_du_temps"`
}

// TodaySlot 当天课表条目（快速查看用的简化形式）
type TodaySlot struct {
	Horaire    string `json:"horaire"` // "08h-10h"
	Matiere    string `json:"matiere"`
	Enseignant string `json:"enseignant"`
	Salle      string `json:"salle"`
}

// TodayScheduleResponse 当天课表响应
type TodayScheduleResponse struct {
	Jour        string      `json:"jour"`
	Cours       []TodaySlot `json:"cours"`
	NombreCours int         `json:"nombre_cours"`
}

// [自证通过] internal/dto/timetable.go
