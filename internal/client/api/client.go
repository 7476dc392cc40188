package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/bookkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с relay-сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает bearer token для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login выполняет аутентификацию на relay-сервере
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListFiles возвращает список файлов пользователя на relay-сервере
func (c *Client) ListFiles(ctx context.Context) (*api.ListFilesResponse, error) {
	var resp api.ListFilesResponse
	err := c.doRequest(ctx, "GET", "/api/v1/sync/files", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list files request failed: %w", err)
	}
	return &resp, nil
}

// Sync отправляет локальные конверты и получает чужие изменения
func (c *Client) Sync(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
	var resp api.SyncResponse
	err := c.doRequest(ctx, "POST", "/api/v1/sync", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}
	return &resp, nil
}

// CreateKey регистрирует новый ключ шифрования файла на relay-сервере
func (c *Client) CreateKey(ctx context.Context, req api.CreateKeyRequest) error {
	err := c.doRequest(ctx, "POST", "/api/v1/sync/keys", req, nil)
	if err != nil {
		return fmt.Errorf("create key request failed: %w", err)
	}
	return nil
}

// GetKey получает описание ключа шифрования файла
func (c *Client) GetKey(ctx context.Context, fileID string) (*api.KeyInfo, error) {
	var resp api.KeyInfo
	url := fmt.Sprintf("/api/v1/sync/keys/%s", fileID)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get key request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
