package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// Запрашиваем пароль с подтверждением
	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering account...")

	// Регистрация сразу выполняет вход на этом устройстве
	session, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.syncer.ClearAuthError()

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID:  %s\n", session.UserID)
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Println()
	c.io.Println("You are now logged in. Run 'pawkit sync' to start synchronizing.")

	return nil
}
