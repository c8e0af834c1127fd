package tracker

import "github.com/zaqqye/smart_timetable/internal/models"

const secondsPerDay = 24 * 60 * 60

// DaysLeft is the signed number of whole days from today until examDate.
// Zero means the exam is today, negative that it has passed. Both dates are
// UTC midnights, so the Unix difference is an exact multiple of a day.
func DaysLeft(examDate, today models.Date) int {
	return int((examDate.Unix() - today.Unix()) / secondsPerDay)
}
