package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/bookkeeper/internal/client/storage"
	"github.com/iudanet/bookkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем серверный пароль (не пароль шифрования)
	serverPassword, err := c.io.ReadPassword("Server password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result, err := c.apiClient.Login(ctx, api.LoginRequest{Password: serverPassword})
	if err != nil {
		return err
	}
	c.apiClient.SetToken(result.Token)

	files, err := c.apiClient.ListFiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list ledger files: %w", err)
	}

	file, err := pickFile(files.Files, args)
	if err != nil {
		return err
	}

	session := &storage.SessionData{
		UserID:    result.UserID,
		Token:     result.Token,
		FileID:    file.FileID,
		GroupID:   file.GroupID,
		KeyID:     file.KeyID,
		ExpiresAt: time.Now().Unix() + result.ExpiresIn,
	}
	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Ledger file: %s (%s)\n", file.Name, file.FileID)
	if file.KeyID != "" {
		c.io.Println("This file is encrypted. Run 'bookkeeper sync' to unlock it with your password.")
	}
	c.io.Printf("Token expires in: %d seconds\n", result.ExpiresIn)

	return nil
}

// pickFile выбирает файл гроссбуха: по имени из аргументов
// или единственный/первый живой файл пользователя
func pickFile(files []api.FileInfo, args []string) (*api.FileInfo, error) {
	var alive []api.FileInfo
	for _, f := range files {
		if !f.Deleted {
			alive = append(alive, f)
		}
	}
	if len(alive) == 0 {
		return nil, fmt.Errorf("no ledger files on the server; create one first")
	}

	if len(args) > 0 {
		name := args[0]
		for i := range alive {
			if alive[i].Name == name || alive[i].FileID == name {
				return &alive[i], nil
			}
		}
		return nil, fmt.Errorf("ledger file %q not found", name)
	}

	return &alive[0], nil
}
