// Package period содержит вспомогательные функции для работы с месячными
// отчётными периодами: границы месяца и метки вида "MM.YYYY".
package period

import (
	"fmt"
	"time"
)

// MonthBounds возвращает первую и последнюю дату календарного месяца.
// Для декабря конец — 31 декабря, для остальных месяцев — день перед
// первым числом следующего месяца.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if month == 12 {
		return start, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	end := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return start, end
}

// Label возвращает метку месяца в формате "MM.YYYY" с двухзначным месяцем.
func Label(month, year int) string {
	return fmt.Sprintf("%02d.%d", month, year)
}

// DaysBetween возвращает количество полных дней от from до to,
// игнорируя время суток и часовой пояс обеих дат.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
