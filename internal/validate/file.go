package validate

import "fmt"

// MaxUploadSize задает максимальный размер загружаемого изображения (5MB)
const MaxUploadSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadFile проверяет файл до проксирования на бэкенд.
// Возвращает сообщение об ошибке или пустую строку
func UploadFile(size int64, contentType string) string {
	if size <= 0 {
		return "No file provided"
	}
	if size > MaxUploadSize {
		return fmt.Sprintf("File size too large. Maximum allowed: %.1fMB", float64(MaxUploadSize)/1024/1024)
	}
	if !allowedImageTypes[contentType] {
		return "Invalid file type. Allowed types: image/jpeg, image/png, image/webp, image/gif"
	}
	return ""
}
