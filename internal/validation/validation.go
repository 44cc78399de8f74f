// Package validation содержит чистые проверки бизнес-правил задачи.
// Каждая операция записи проверяется своей функцией; результат -
// упорядоченный список человекочитаемых нарушений (пустой = данные валидны).
package validation

import "time"

// Форматы, которые система сама выдаёт или документирует:
// ISO-дата, RFC 3339 и RFC 1123 (в нём браузер сериализует Date.toUTCString)
var dueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
}

// ValidateCreate проверяет поля при создании задачи.
// Порядок сообщений фиксирован: title, status, наличие due_date, формат due_date.
func ValidateCreate(title, status, dueDate string) []string {
	return validateRequired(title, status, dueDate)
}

// ValidateReplace проверяет поля при полной замене (PUT).
// Правила совпадают с созданием: перезаписываются все поля, значит все обязательны.
func ValidateReplace(title, status, dueDate string) []string {
	return validateRequired(title, status, dueDate)
}

// ValidatePartial проверяет частичное обновление (PATCH): обязателен только status,
// остальные поля, если переданы, отдельно не проверяются.
func ValidatePartial(status *string) []string {
	var errs []string
	if status == nil {
		errs = append(errs, "Status is required for update")
	}
	return errs
}

func validateRequired(title, status, dueDate string) []string {
	var errs []string
	if title == "" {
		errs = append(errs, "Title is required")
	}
	if status == "" {
		errs = append(errs, "Status is required")
	}
	if dueDate == "" {
		errs = append(errs, "Due date is required")
	} else if !IsValidDate(dueDate) {
		errs = append(errs, "Due date must be a valid date")
	}
	return errs
}

// IsValidDate сообщает, разбирается ли строка в календарную дату
// одним из поддерживаемых форматов.
func IsValidDate(value string) bool {
	for _, layout := range dueDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
