package repository

import (
	"database/sql"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const followUpsTable = "follow_ups"

type FollowUpRepository interface {
	CreateFollowUp(followUp *domain.FollowUp) (*domain.FollowUp, error)
	GetFollowUpByID(followUpID int) (*domain.FollowUp, error)
	ExistsByAppointmentAndSequence(appointmentID, sequence int) (bool, error)
	ListByAppointment(appointmentID int) ([]*domain.FollowUp, error)
	LastOfChain(appointmentID int) (*domain.FollowUp, error)
	UpdateFollowUp(followUp *domain.FollowUp) error
	ListPending(limit int) ([]*domain.FollowUp, error)
	ListOverdue(now time.Time) ([]*domain.FollowUp, error)
	ListDueBetween(from, to time.Time) ([]*domain.FollowUp, error)
	CountByStatus() (pending int, done int, overdue int, err error)
}

type followUpRepository struct {
	conn *postgres.Connection
}

func NewFollowUpRepository(conn *postgres.Connection) FollowUpRepository {
	return &followUpRepository{
		conn: conn,
	}
}

// colunas de follow_ups mais o nome do cliente vindo do appuntamento
const followUpColumns = "f.id, f.appointment_id, f.sequence, f.due_date, f.done, f.notes, a.client_name, f.created_at"

func scanFollowUp(row interface{ Scan(...interface{}) error }) (*domain.FollowUp, error) {
	var followUp domain.FollowUp
	err := row.Scan(
		&followUp.ID,
		&followUp.AppointmentID,
		&followUp.Sequence,
		&followUp.DueDate,
		&followUp.Done,
		&followUp.Notes,
		&followUp.ClientName,
		&followUp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) CreateFollowUp(followUp *domain.FollowUp) (*domain.FollowUp, error) {
	queryBuilder := squirrel.
		Insert(followUpsTable).
		Columns("appointment_id", "sequence", "due_date", "done", "notes").
		Values(followUp.AppointmentID, followUp.Sequence, followUp.DueDate, followUp.Done, followUp.Notes).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	followUpSQL, followUpArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(followUpSQL, followUpArgs...).Scan(&followUp.ID)
	if err != nil {
		return nil, err
	}

	return followUp, nil
}

func (r *followUpRepository) GetFollowUpByID(followUpID int) (*domain.FollowUp, error) {
	row := r.conn.QueryRow(
		"SELECT "+followUpColumns+" FROM follow_ups f JOIN appointments a ON a.id = f.appointment_id WHERE f.id = $1",
		followUpID,
	)

	followUp, err := scanFollowUp(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return followUp, nil
}

// ExistsByAppointmentAndSequence garante a idempotência do agendamento: a
// tabela carrega UNIQUE (appointment_id, sequence)
func (r *followUpRepository) ExistsByAppointmentAndSequence(appointmentID, sequence int) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM follow_ups WHERE appointment_id = $1 AND sequence = $2)",
		appointmentID, sequence,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *followUpRepository) ListByAppointment(appointmentID int) ([]*domain.FollowUp, error) {
	queryBuilder := squirrel.
		Select(followUpColumns).
		From(followUpsTable + " f").
		Join("appointments a ON a.id = f.appointment_id").
		Where(squirrel.Eq{"f.appointment_id": appointmentID}).
		OrderBy("f.sequence ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryFollowUps(queryBuilder)
}

// LastOfChain retorna o follow-up de maior sequência da cadeia do appuntamento
func (r *followUpRepository) LastOfChain(appointmentID int) (*domain.FollowUp, error) {
	row := r.conn.QueryRow(
		"SELECT "+followUpColumns+" FROM follow_ups f JOIN appointments a ON a.id = f.appointment_id WHERE f.appointment_id = $1 ORDER BY f.sequence DESC LIMIT 1",
		appointmentID,
	)

	followUp, err := scanFollowUp(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return followUp, nil
}

func (r *followUpRepository) UpdateFollowUp(followUp *domain.FollowUp) error {
	queryBuilder := squirrel.
		Update(followUpsTable).
		Set("due_date", followUp.DueDate).
		Set("done", followUp.Done).
		Set("notes", followUp.Notes).
		Where(squirrel.Eq{"id": followUp.ID}).
		PlaceholderFormat(squirrel.Dollar)

	followUpSQL, followUpArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(followUpSQL, followUpArgs...)
	return err
}

func (r *followUpRepository) ListPending(limit int) ([]*domain.FollowUp, error) {
	queryBuilder := squirrel.
		Select(followUpColumns).
		From(followUpsTable + " f").
		Join("appointments a ON a.id = f.appointment_id").
		Where(squirrel.Eq{"f.done": false}).
		OrderBy("f.due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.queryFollowUps(queryBuilder)
}

func (r *followUpRepository) ListOverdue(now time.Time) ([]*domain.FollowUp, error) {
	queryBuilder := squirrel.
		Select(followUpColumns).
		From(followUpsTable + " f").
		Join("appointments a ON a.id = f.appointment_id").
		Where(squirrel.Eq{"f.done": false}).
		Where(squirrel.Lt{"f.due_date": now}).
		OrderBy("f.due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryFollowUps(queryBuilder)
}

func (r *followUpRepository) ListDueBetween(from, to time.Time) ([]*domain.FollowUp, error) {
	queryBuilder := squirrel.
		Select(followUpColumns).
		From(followUpsTable + " f").
		Join("appointments a ON a.id = f.appointment_id").
		Where(squirrel.Eq{"f.done": false}).
		Where(squirrel.GtOrEq{"f.due_date": from}).
		Where(squirrel.Lt{"f.due_date": to}).
		OrderBy("f.due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryFollowUps(queryBuilder)
}

func (r *followUpRepository) CountByStatus() (int, int, int, error) {
	var pending, done, overdue int
	err := r.conn.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE done = false),
			COUNT(*) FILTER (WHERE done = true),
			COUNT(*) FILTER (WHERE done = false AND due_date < NOW())
		FROM follow_ups`).Scan(&pending, &done, &overdue)
	if err != nil {
		return 0, 0, 0, err
	}

	return pending, done, overdue, nil
}

func (r *followUpRepository) queryFollowUps(queryBuilder squirrel.SelectBuilder) ([]*domain.FollowUp, error) {
	followUpSQL, followUpArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(followUpSQL, followUpArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var followUps []*domain.FollowUp
	for rows.Next() {
		followUp, err := scanFollowUp(rows)
		if err != nil {
			return nil, err
		}

		followUps = append(followUps, followUp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return followUps, nil
}
