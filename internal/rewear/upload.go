package rewear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// MaxUploadFiles задает максимум файлов в одном multipart-запросе
const MaxUploadFiles = 5

// ErrTooManyFiles возвращается до любого сетевого вызова
var ErrTooManyFiles = errors.New("слишком много файлов: максимум 5 за один запрос")

// File представляет один загружаемый файл
type File struct {
	Name    string
	Content io.Reader
}

// UploadImage загружает одно изображение (multipart-поле file)
func (c *Client) UploadImage(ctx context.Context, f File) (json.RawMessage, error) {
	body, ctype, err := multipartBody("file", []File{f}, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	err = c.do(ctx, http.MethodPost, "/api/v1/upload/images", nil, body, ctype, &raw)
	return raw, err
}

// UploadImages загружает до пяти изображений разом (multipart-поле files)
func (c *Client) UploadImages(ctx context.Context, files []File) (json.RawMessage, error) {
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}
	body, ctype, err := multipartBody("files", files, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	err = c.do(ctx, http.MethodPost, "/api/v1/upload/images/multiple", nil, body, ctype, &raw)
	return raw, err
}

// UploadItemImages загружает изображения конкретной вещи,
// setPrimary задает индекс главного изображения
func (c *Client) UploadItemImages(ctx context.Context, itemID int, files []File, setPrimary int) (json.RawMessage, error) {
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}
	extra := map[string]string{"set_primary": strconv.Itoa(setPrimary)}
	body, ctype, err := multipartBody("files", files, extra)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	path := fmt.Sprintf("/api/v1/upload/items/%d/images", itemID)
	err = c.do(ctx, http.MethodPost, path, nil, body, ctype, &raw)
	return raw, err
}

// RemoveItemImage удаляет изображение вещи по URL.
// Тело запроса — application/x-www-form-urlencoded, как в исходном API
func (c *Client) RemoveItemImage(ctx context.Context, itemID int, imageURL string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("image_url", imageURL)

	var raw json.RawMessage
	path := fmt.Sprintf("/api/v1/upload/items/%d/images", itemID)
	err := c.do(ctx, http.MethodDelete, path, nil,
		bytes.NewReader([]byte(form.Encode())), "application/x-www-form-urlencoded", &raw)
	return raw, err
}

// ImageURL возвращает полный URL загруженного изображения
func (c *Client) ImageURL(filename string) string {
	return c.baseURL + "/api/v1/upload/images/" + url.PathEscape(filename)
}

// multipartBody собирает multipart-тело с файлами и доп. полями
func multipartBody(fieldName string, files []File, extra map[string]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(fieldName, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", err
		}
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
