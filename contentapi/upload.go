package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// uploadFieldName is the form field the upload endpoint requires.
const uploadFieldName = "image"

// UploadResult locates an uploaded image on the API's storage.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// UploadImage sends an image as multipart form data. Write: failures
// propagate. The multipart content type (with its computed boundary) comes
// from the form writer, never from a hand-set header, and the response may
// be flat or wrapped in a "data" envelope.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader, token string) (*UploadResult, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("build upload form: %v", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("read upload file: %v", err)}
	}
	if err := form.Close(); err != nil {
		return nil, &APIError{Message: fmt.Sprintf("finalize upload form: %v", err)}
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/api/upload/image", nil, &buf)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, uploadStatusError(resp.StatusCode, raw)
	}

	var out struct {
		UploadResult
		Data *UploadResult `json:"data"`
	}
	_ = json.Unmarshal(raw, &out)
	result := out.UploadResult
	if out.Data != nil {
		result = *out.Data
	}
	if result.URL == "" {
		return nil, &APIError{Message: "invalid API response: upload url missing"}
	}
	return &result, nil
}

// uploadStatusError also honors the {"message": ...} error shape some
// storage backends emit instead of {"error": ...}.
func uploadStatusError(status int, raw []byte) *APIError {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = envelope.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
