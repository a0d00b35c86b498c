package models

// ImportCounts - сколько строк каждого вида было импортировано.
type ImportCounts struct {
	Scenarios int `json:"scenarios"`
	Regions   int `json:"regions"`
}

// ImportResult - итог импорта книги. Импорт атомарный: при любой ошибке
// Success=false и ничего не записано. Errors содержит не больше пяти
// сообщений, остаток - в ErrorsOmitted.
type ImportResult struct {
	Success       bool         `json:"success"`
	Imported      ImportCounts `json:"imported"`
	Errors        []string     `json:"errors,omitempty"`
	ErrorsOmitted int          `json:"errorsOmitted,omitempty"`
}
