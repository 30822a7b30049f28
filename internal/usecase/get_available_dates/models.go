package get_available_dates

// Request модель запроса на перечисление дат со свободными слотами
type Request struct {
	Location        string // ключ локации из каталога
	DurationMinutes int    // желаемая длительность брони
	LookaheadDays   int    // горизонт поиска в днях, 0 = значение по умолчанию
}

// Response модель ответа с датами, где есть хотя бы один свободный слот
type Response struct {
	Location        string
	DurationMinutes int
	Dates           []string // "YYYY-MM-DD", по возрастанию
}
