package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Пароль берется из env/файла/аргумента или интерактивно
	password, err := c.accountPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	session, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	// Повторный вход снимает блокировку синхронизации
	c.syncer.ClearAuthError()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).UTC().Format(time.RFC3339))
	c.io.Println()
	c.io.Println("Your session has been saved. Run 'pawkit sync' to synchronize.")

	return nil
}
