package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronova/budget-monitor/models"
)

var (
	ErrDuplicateUser      = errors.New("пользователь с таким именем уже существует")
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
)

// bcrypt-хеш строки "placeholder": сравнение с ним выполняется, когда имя
// пользователя не найдено, чтобы оба варианта отказа занимали сопоставимое время.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// RegisterUser регистрирует нового пользователя с bcrypt-хешированием пароля.
func RegisterUser(pool *pgxpool.Pool, user *models.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if len(user.Username) < 3 {
		return errors.New("имя пользователя должно содержать не менее 3 символов")
	}
	if len(user.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %w", err)
	}

	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	err = pool.QueryRow(context.Background(), query, user.Username, string(hashedPassword)).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUser
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %w", err)
	}

	user.Password = ""
	return nil
}

// AuthenticateUser проверяет имя и пароль. Неизвестное имя и неверный пароль
// возвращают одну и ту же ошибку ErrInvalidCredentials.
func AuthenticateUser(pool *pgxpool.Pool, username, password string) (*models.User, error) {
	var user models.User
	var hash string

	query := `SELECT id, username, password FROM users WHERE username = $1`
	err := pool.QueryRow(context.Background(), query, strings.TrimSpace(username)).
		Scan(&user.ID, &user.Username, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID возвращает пользователя без поля пароля.
func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	var user models.User
	query := `SELECT id, username FROM users WHERE id = $1`
	err := pool.QueryRow(context.Background(), query, id).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %w", err)
	}
	return &user, nil
}

// DeleteUser удаляет пользователя; его транзакции удаляются каскадно (FK).
func DeleteUser(pool *pgxpool.Pool, id int) error {
	result, err := pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("пользователь не найден")
	}
	return nil
}
