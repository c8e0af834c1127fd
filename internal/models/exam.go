package models

// ExamRecord is one exam entry of the exam document. Records are created
// once and never edited.
type ExamRecord struct {
	ID         string  `json:"id"`
	Subject    string  `json:"subject"`
	ExamDate   Date    `json:"examDate"`
	DailyHours float64 `json:"dailyHours"`
	TotalUnits int     `json:"totalUnits"`
	CreatedAt  Date    `json:"createdAt"`
}
