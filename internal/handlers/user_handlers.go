package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/internal/database"
	"github.com/avoronova/budget-monitor/models"
)

// RegisterHandler обрабатывает регистрацию пользователя.
func RegisterHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат данных. Проверьте введённые значения."})
			return
		}

		if err := database.RegisterUser(pool, &user); err != nil {
			if errors.Is(err, database.ErrDuplicateUser) {
				c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким именем уже существует"})
				return
			}
			log.Printf("Ошибка при регистрации пользователя: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Пользователь успешно зарегистрирован: ID = %d", user.ID)
		c.JSON(http.StatusCreated, gin.H{"message": "Пользователь успешно зарегистрирован", "user_id": user.ID})
	}
}

// LoginHandler обрабатывает вход. Причина отказа (нет пользователя или
// неверный пароль) в ответе не различается.
func LoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials models.User
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка ввода данных"})
			return
		}

		user, err := database.AuthenticateUser(pool, credentials.Username, credentials.Password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверное имя пользователя или пароль"})
				return
			}
			log.Printf("Ошибка авторизации: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка авторизации"})
			return
		}

		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"message": "Авторизация успешна", "user": user})
	}
}

// GetUserHandler возвращает пользователя по ID, без поля пароля.
func GetUserHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		user, err := database.GetUserByID(pool, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler удаляет пользователя вместе с его транзакциями.
func DeleteUserHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}

		if err := database.DeleteUser(pool, id); err != nil {
			log.Printf("Ошибка удаления пользователя с ID %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка при удалении пользователя"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Пользователь успешно удалён"})
	}
}
