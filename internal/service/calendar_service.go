package service

import (
	"time"

	"github.com/takvimhub/event-calendar-service/internal/domain"
	"github.com/takvimhub/event-calendar-service/internal/dto"
	"github.com/takvimhub/event-calendar-service/pkg/code"
)

// Turkish locale tables. Single fixed locale, index 0 is January / Monday.
var (
	monthNamesTR = [12]string{
		"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
		"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
	}
	weekdayNamesTR = [7]string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"}
)

const (
	minGridYear = 1
	maxGridYear = 9999
)

// CalendarService projects a category store onto a month grid.
type CalendarService struct {
	stores *domain.StoreSet
}

func NewCalendarService(stores *domain.StoreSet) *CalendarService {
	return &CalendarService{stores: stores}
}

// MonthGrid builds the week-by-week projection of one month. Weeks are
// Monday first; cells outside the month are padding so every week holds
// exactly seven cells. Each real day carries at most one entry.
func (s *CalendarService) MonthGrid(req *dto.MonthGridRequest) (*dto.MonthGrid, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, code.ErrorInvalidMonth
	}
	if req.Year < minGridYear || req.Year > maxGridYear {
		return nil, code.ErrorInvalidYear
	}
	category := domain.Category(req.Category)
	if !s.stores.HasCategory(category) {
		return nil, code.ErrorUnknownCategory
	}

	month := time.Month(req.Month)
	first := time.Date(req.Year, month, 1, 0, 0, 0, 0, time.UTC)
	// day 0 of the next month is the last day of this one
	daysInMonth := time.Date(req.Year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	// Go weeks start on Sunday; rotate so Monday is column 0
	lead := (int(first.Weekday()) + 6) % 7

	grid := &dto.MonthGrid{
		Year:         req.Year,
		Month:        req.Month,
		MonthName:    monthNamesTR[req.Month-1],
		WeekdayNames: weekdayNamesTR[:],
	}

	cells := make([]dto.DayCell, 0, 42)
	for i := 0; i < lead; i++ {
		cells = append(cells, dto.DayCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		key, err := domain.NewDateKey(req.Year, month, day)
		if err != nil {
			return nil, code.ErrorInvalidYear
		}
		cell := dto.DayCell{
			InMonth: true,
			Day:     day,
			Date:    key.String(),
		}
		if e, ok := s.stores.Get(category, key); ok {
			cell.Entry = dto.EntryFromDomain(e)
		}
		cells = append(cells, cell)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, dto.DayCell{})
	}

	grid.Weeks = make([]dto.Week, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		var week dto.Week
		copy(week[:], cells[i:i+7])
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid, nil
}
