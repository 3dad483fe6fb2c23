package dto

// MonthGridRequest selects the month to project. Month is 1 based.
type MonthGridRequest struct {
	Category string `json:"category" form:"category" binding:"required"`
	Year     int    `json:"year" form:"year" binding:"required"`
	Month    int    `json:"month" form:"month" binding:"required"`
}

// DayCell is one cell of the month grid. Padding cells carry InMonth=false
// and a zero Day.
type DayCell struct {
	InMonth bool   `json:"inMonth"`
	Day     int    `json:"day,omitempty"`
	Date    string `json:"date,omitempty"`
	Entry   *Entry `json:"entry,omitempty"`
}

// Week is seven day cells in Monday first order.
type Week [7]DayCell

// MonthGrid is the renderable projection of one month: locale headers plus
// week rows. The renderer consumes this as-is, no further lookups needed.
type MonthGrid struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	MonthName    string   `json:"monthName"`
	WeekdayNames []string `json:"weekdayNames"`
	Weeks        []Week   `json:"weeks"`
}
