package handlers

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/avoronova/budget-monitor/internal/parser"
	"github.com/avoronova/budget-monitor/models"
)

// readUploadedFile достаёт файл из multipart-поля "file".
func readUploadedFile(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Файл не найден в запросе"})
		return nil, "", false
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось открыть файл"})
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не удалось прочитать файл"})
		return nil, "", false
	}
	return data, fileHeader.Filename, true
}

// UploadCSVHandler разбирает CSV и возвращает предпросмотр для подтверждения.
// В базу на этом шаге ничего не пишется.
func UploadCSVHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, filename, ok := readUploadedFile(c)
		if !ok {
			return
		}

		batchID := uuid.NewString()
		candidates, statuses, err := parser.ParseCSV(bytes.NewReader(data))
		if err != nil {
			if errors.Is(err, parser.ErrMissingColumn) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "В файле не найдены обязательные колонки даты и суммы"})
				return
			}
			log.Printf("Импорт %s (%s): ошибка разбора CSV: %v", batchID, filename, err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Файл не удалось разобрать как CSV"})
			return
		}
		if candidates == nil {
			candidates = []models.CandidateRow{}
		}
		if statuses == nil {
			statuses = []models.RowStatus{}
		}

		log.Printf("Импорт %s (%s): строк принято %d, всего %d", batchID, filename, len(candidates), len(statuses))
		c.JSON(http.StatusOK, gin.H{
			"batch_id":     batchID,
			"candidates":   candidates,
			"row_statuses": statuses,
		})
	}
}

// UploadPDFHandler извлекает суммы из PDF-выписки. Пустой результат — не
// ошибка: сканированные PDF без текстового слоя дают пустой список.
func UploadPDFHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, filename, ok := readUploadedFile(c)
		if !ok {
			return
		}

		batchID := uuid.NewString()
		candidates, err := parser.ParsePDF(data)
		if err != nil {
			log.Printf("Импорт %s (%s): ошибка разбора PDF: %v", batchID, filename, err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Файл не удалось разобрать как PDF"})
			return
		}

		response := gin.H{"batch_id": batchID, "candidates": candidates}
		if len(candidates) == 0 {
			response["candidates"] = []models.CandidateRow{}
			response["message"] = "В PDF не найдено ни одной суммы. Убедитесь, что файл содержит текст, а не скан."
		}
		log.Printf("Импорт %s (%s): извлечено кандидатов %d", batchID, filename, len(candidates))
		c.JSON(http.StatusOK, response)
	}
}
