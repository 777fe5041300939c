// Package cli реализует команды клиента pawkit. Команды работают поверх
// локального состояния и движка синхронизации: все мутации выполняются
// локально и попадают на сервер через очередь.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pawkit/pawkit/internal/client/auth"
	"github.com/pawkit/pawkit/internal/client/data"
	"github.com/pawkit/pawkit/internal/client/iocli"
	"github.com/pawkit/pawkit/internal/client/queue"
	"github.com/pawkit/pawkit/internal/client/sync"
	"github.com/pawkit/pawkit/internal/client/transfer"
)

//go:generate moq -out peernotifier_mock.go . PeerNotifier

// PeerNotifier объявляет события этой сессии другим сессиям устройства
type PeerNotifier interface {
	AnnounceLogout(ctx context.Context)
}

//go:generate moq -out statepurger_mock.go . StatePurger

// StatePurger очищает синхронизированное локальное состояние при выходе
type StatePurger interface {
	Clear(ctx context.Context) error
}

// Passwords задает неинтерактивные источники пароля аккаунта
type Passwords struct {
	FromFile string // путь к файлу с паролем
	FromArgs string // пароль из аргумента командной строки
}

// Deps собирает зависимости команд CLI
type Deps struct {
	IO       iocli.IO
	Auth     auth.Service
	Data     data.Service
	Queue    queue.Service
	Syncer   sync.Service
	Peers    PeerNotifier
	Purger   StatePurger
	Transfer transfer.Provider
}

// Cli выполняет команды pawkit
type Cli struct {
	io          iocli.IO
	authService auth.Service
	dataService data.Service
	queue       queue.Service
	syncer      sync.Service
	peers       PeerNotifier
	purger      StatePurger
	transfer    transfer.Provider
	passwords   Passwords
}

// New creates the command runner
func New(deps Deps, passwords Passwords) *Cli {
	return &Cli{
		io:          deps.IO,
		authService: deps.Auth,
		dataService: deps.Data,
		queue:       deps.Queue,
		syncer:      deps.Syncer,
		peers:       deps.Peers,
		purger:      deps.Purger,
		transfer:    deps.Transfer,
		passwords:   passwords,
	}
}

// accountPassword возвращает пароль аккаунта из источников по приоритету:
//  1. Переменная окружения PAWKIT_PASSWORD
//  2. Файл из --password-file
//  3. Параметр --password
//  4. Интерактивный запрос (fallback)
func (c *Cli) accountPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv("PAWKIT_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: CLI parameter
	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// PrintUsage выводит справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println(usageText)
}
