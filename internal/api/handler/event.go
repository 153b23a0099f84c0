package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
	"github.com/AirPlr/smart-control-api/pkg/utils"
)

// ListCalendarNotes lista as anotações do calendário no período informado
// via query params from/to (default: mês corrente)
func ListCalendarNotes(repo repository.CalendarNoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		from, to := utils.MonthBounds(now.Month(), now.Year())

		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			parsed, err := utils.ParseDate(fromStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Parâmetro 'from' mal formado", nil)
				return
			}
			from = *parsed
		}

		if toStr := r.URL.Query().Get("to"); toStr != "" {
			parsed, err := utils.ParseDate(toStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Parâmetro 'to' mal formado", nil)
				return
			}
			to = *parsed
		}

		notes, err := repo.ListCalendarNotesBetween(from, to)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar anotações do calendário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(notes)
	}
}

// CreateCalendarNote cadastra uma anotação livre no calendário
func CreateCalendarNote(repo repository.CalendarNoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var note domain.CalendarNote
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if note.Note == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Texto da anotação é obrigatório", nil)
			return
		}

		if note.Date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data da anotação é obrigatória", nil)
			return
		}

		created, err := repo.CreateCalendarNote(&note)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar anotação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// UpdateCalendarNote atualiza uma anotação existente
func UpdateCalendarNote(repo repository.CalendarNoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da anotação inválido", nil)
			return
		}

		existing, err := repo.GetCalendarNoteByID(noteID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar anotação", nil)
			return
		}

		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Anotação não encontrada", nil)
			return
		}

		var note domain.CalendarNote
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		note.ID = noteID

		if err := repo.UpdateCalendarNote(&note); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar anotação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(note)
	}
}

// DeleteCalendarNote remove uma anotação do calendário
func DeleteCalendarNote(repo repository.CalendarNoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da anotação inválido", nil)
			return
		}

		if err := repo.DeleteCalendarNote(noteID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover anotação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
