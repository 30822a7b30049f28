package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString время суток в формате "HH:MM" (например, "10:30").
// Используется на границе API и при перечислении слотов внутри дня.
type TimeString string

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

const layout = "15:04"

// NewTimeString создает TimeString из time.Time, отбрасывая дату
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(layout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// Validate проверяет формат значения
func (ts TimeString) Validate() error {
	_, err := time.Parse(layout, string(ts))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero сообщает, что значение пустое
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String возвращает значение в формате "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// MinutesFromMidnight возвращает количество минут с начала суток
func (ts TimeString) MinutesFromMidnight() (int, error) {
	t, err := time.Parse(layout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время через minutes минут.
// Выход за пределы суток считается ошибкой: слоты не пересекают полночь.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := ts.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	total := base + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(ts), minutes)
	}
	if total == 24*60 {
		return TimeString("24:00"), nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore сравнивает времена лексикографически (формат HH:MM это позволяет)
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter сообщает, что ts позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}
