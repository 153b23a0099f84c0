package repository

import (
	"database/sql"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const calendarNotesTable = "calendar_notes"

type CalendarNoteRepository interface {
	CreateCalendarNote(note *domain.CalendarNote) (*domain.CalendarNote, error)
	GetCalendarNoteByID(noteID int) (*domain.CalendarNote, error)
	ListCalendarNotesBetween(from, to time.Time) ([]*domain.CalendarNote, error)
	UpdateCalendarNote(note *domain.CalendarNote) error
	DeleteCalendarNote(noteID int) error
}

type calendarNoteRepository struct {
	conn *postgres.Connection
}

func NewCalendarNoteRepository(conn *postgres.Connection) CalendarNoteRepository {
	return &calendarNoteRepository{
		conn: conn,
	}
}

func (r *calendarNoteRepository) CreateCalendarNote(note *domain.CalendarNote) (*domain.CalendarNote, error) {
	queryBuilder := squirrel.
		Insert(calendarNotesTable).
		Columns("note", "date").
		Values(note.Note, note.Date).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	noteSQL, noteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(noteSQL, noteArgs...).Scan(&note.ID)
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (r *calendarNoteRepository) GetCalendarNoteByID(noteID int) (*domain.CalendarNote, error) {
	var note domain.CalendarNote
	err := r.conn.QueryRow("SELECT id, note, date FROM calendar_notes WHERE id = $1", noteID).Scan(
		&note.ID,
		&note.Note,
		&note.Date,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *calendarNoteRepository) ListCalendarNotesBetween(from, to time.Time) ([]*domain.CalendarNote, error) {
	queryBuilder := squirrel.
		Select("id", "note", "date").
		From(calendarNotesTable).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	noteSQL, noteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(noteSQL, noteArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*domain.CalendarNote
	for rows.Next() {
		var note domain.CalendarNote
		if err := rows.Scan(&note.ID, &note.Note, &note.Date); err != nil {
			return nil, err
		}

		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *calendarNoteRepository) UpdateCalendarNote(note *domain.CalendarNote) error {
	queryBuilder := squirrel.
		Update(calendarNotesTable).
		Set("note", note.Note).
		Set("date", note.Date).
		Where(squirrel.Eq{"id": note.ID}).
		PlaceholderFormat(squirrel.Dollar)

	noteSQL, noteArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(noteSQL, noteArgs...)
	return err
}

func (r *calendarNoteRepository) DeleteCalendarNote(noteID int) error {
	_, err := r.conn.Exec("DELETE FROM calendar_notes WHERE id = $1", noteID)
	return err
}
