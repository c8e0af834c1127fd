package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zaqqye/smart_timetable/internal/apperr"
	"github.com/zaqqye/smart_timetable/internal/models"
	"github.com/zaqqye/smart_timetable/internal/planner"
)

var rule = strings.Repeat("=", 50)

// Menu is the numbered text front end over the planner service.
type Menu struct {
	svc       *planner.Service
	in        *bufio.Scanner
	out       io.Writer
	exportDir string
}

func New(svc *planner.Service, in io.Reader, out io.Writer, exportDir string) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(in), out: out, exportDir: exportDir}
}

// errInputClosed ends the loop when stdin runs dry.
var errInputClosed = errors.New("input closed")

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) header(title string) {
	m.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// Run loops until the user picks Exit or input ends. Operation errors are
// reported and never end the loop.
func (m *Menu) Run() error {
	for {
		m.header("SMART TIMETABLE APP")
		m.printf("1. Add Exam\n2. View Countdown\n3. Get Today's Study Suggestion\n4. Track Progress\n5. Export to CSV\n6. Exit\n%s\n", rule)

		choice, err := m.prompt("\nEnter your choice (1-6): ")
		if err != nil {
			return ignoreClosed(err)
		}

		switch choice {
		case "1":
			err = m.addExam()
		case "2":
			err = m.showCountdown()
		case "3":
			err = m.showSuggestions()
		case "4":
			err = m.trackProgress()
		case "5":
			err = m.exportCSV()
		case "6":
			m.printf("\nGoodbye! Happy studying!\n")
			return nil
		default:
			m.printf("Invalid choice! Please enter 1-6.\n")
		}
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			m.report(err)
		}

		if _, err := m.prompt("\nPress Enter to continue..."); err != nil {
			return ignoreClosed(err)
		}
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func (m *Menu) report(err error) {
	switch apperr.KindOf(err) {
	case apperr.KindSelection:
		m.printf("Invalid selection! (%v)\n", err)
	case apperr.KindValidation:
		m.printf("Invalid input: %v\n", err)
	case apperr.KindStorageCorrupt:
		m.printf("Data file is damaged: %v\n", err)
	default:
		m.printf("Error: %v\n", err)
	}
}

func (m *Menu) addExam() error {
	m.header("ADD NEW EXAM")
	subject, err := m.prompt("Subject name: ")
	if err != nil {
		return err
	}
	var date string
	for {
		date, err = m.prompt("Exam date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		if _, perr := models.ParseDate(date); perr == nil {
			break
		}
		m.printf("Invalid date format. Use YYYY-MM-DD\n")
	}
	hours, err := m.prompt("Daily study hours: ")
	if err != nil {
		return err
	}
	units, err := m.prompt("Total units/chapters: ")
	if err != nil {
		return err
	}

	exam, err := m.svc.AddExam(planner.ExamInput{Subject: subject, ExamDate: date, DailyHours: hours, TotalUnits: units})
	if err != nil {
		return err
	}
	m.printf("\n✓ Exam '%s' added successfully!\n", exam.Subject)
	return nil
}

func (m *Menu) showCountdown() error {
	m.header("COUNTDOWN TIMER")
	entries, err := m.svc.Countdown()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		m.printf("No exams added yet!\n")
		return nil
	}
	for _, e := range entries {
		m.printf("\n%s:\n", e.Exam.Subject)
		m.printf("   %d days left\n", e.DaysLeft)
		m.printf("   Exam Date: %s\n", e.Exam.ExamDate)
		m.printf("   Daily Hours: %v\n", e.Exam.DailyHours)
		if e.Passed {
			m.printf("   Exam is today or has passed!\n")
		}
	}
	return nil
}

func (m *Menu) showSuggestions() error {
	m.header("TODAY'S STUDY PLAN")
	plan, err := m.svc.Suggestions()
	if err != nil {
		return err
	}
	if len(plan.Suggestions) == 0 && len(plan.Excluded) == 0 {
		m.printf("No exams added yet!\n")
		return nil
	}
	for _, s := range plan.Suggestions {
		m.printf("\n%s:\n", s.Subject)
		m.printf("   Study: Unit %d\n", s.NextUnit)
		m.printf("   Additional: MCQs/Revision of Unit %d\n", s.ReviewUnit)
		m.printf("   Time: %v hours\n", s.StudyHours)
		m.printf("   Pace: %d unit(s)/day over %d days\n", s.UnitsPerDay, s.DaysLeft)
		m.printf("   Progress: %d/%d units\n", s.CompletedCount, s.TotalUnits)
	}
	for _, e := range plan.Excluded {
		m.printf("\n%s: skipped, exam is today or has passed\n", e.Exam.Subject)
	}
	return nil
}

func (m *Menu) trackProgress() error {
	m.header("UPDATE PROGRESS")
	exams, err := m.svc.ListExams()
	if err != nil {
		return err
	}
	if len(exams) == 0 {
		m.printf("No exams added yet!\n")
		return nil
	}

	m.printf("\nSelect exam:\n")
	for i, exam := range exams {
		m.printf("%d. %s\n", i+1, exam.Subject)
	}
	choice, err := m.prompt("\nEnter exam number: ")
	if err != nil {
		return err
	}
	exam, err := planner.SelectExam(exams, choice)
	if err != nil {
		return err
	}

	view, err := m.svc.Progress(exam.ID)
	if err != nil {
		return err
	}
	m.printf("\nExam: %s\n", exam.Subject)
	m.printf("Total Units: %d\n", exam.TotalUnits)
	if len(view.Record.CompletedUnits) > 0 {
		m.printf("Completed: %s\n", joinUnits(view.Record.CompletedUnits))
	}

	m.printf("\nEnter unit numbers to mark as complete (comma-separated):\n")
	m.printf("Example: 1,2,3 or 'all' for all units\n")
	input, err := m.prompt("Units: ")
	if err != nil {
		return err
	}

	res, err := m.svc.TrackProgress(exam.ID, input)
	if err != nil {
		return err
	}
	if res.Marking.Invalid {
		m.printf("Invalid input!\n")
	} else if len(res.Marking.Rejected) > 0 {
		m.printf("Ignored: %s\n", strings.Join(res.Marking.Rejected, ", "))
	}
	m.printf("\n✓ Progress updated!\n")
	m.printf("Completion: %.1f%% (%d/%d units)\n", res.Summary.Percentage, res.Summary.CompletedCount, res.Summary.TotalUnits)
	return nil
}

func (m *Menu) exportCSV() error {
	m.header("EXPORT STUDY PLAN")
	exams, err := m.svc.ListExams()
	if err != nil {
		return err
	}
	if len(exams) == 0 {
		m.printf("No exams to export!\n")
		return nil
	}
	path, err := m.svc.ExportCSV(m.exportDir)
	if err != nil {
		return err
	}
	m.printf("\n✓ Study plan exported to '%s'\n", path)
	return nil
}

func joinUnits(units []int) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprint(u)
	}
	return strings.Join(parts, ", ")
}
