package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	appointmentsTable           = "appointments"
	appointmentConsultantsTable = "appointment_consultants"
)

type AppointmentRepository interface {
	CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error)
	UpdateAppointment(appointment *domain.Appointment) error
	GetAppointmentByID(appointmentID int) (*domain.Appointment, error)
	ListAppointments() ([]*domain.Appointment, error)
	ListByPeriod(from, to time.Time) ([]*domain.Appointment, error)
	ListByConsultant(consultantID int) ([]*domain.Appointment, error)
	ListSoldByConsultantAndPeriod(consultantID int, from, to time.Time) ([]*domain.Appointment, error)
	CountMonthlySold(consultantID int, month time.Month, year int) (int, error)
	MarkSold(appointmentID int) error
	ReassignSold(fromConsultantID, toConsultantID int) (int64, error)
	ListDanglingConsultantLinks() (map[int][]int, error)
	SetConsultants(appointmentID int, consultantIDs []int) error
	DeleteAppointment(appointmentID int) error
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

const appointmentColumns = "id, client_name, address, phone_number, notes, type, status, collected_names, personal_appointments, sold, date, recall_date, created_at, updated_at"

func scanAppointment(row interface{ Scan(...interface{}) error }) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.ClientName,
		&appointment.Address,
		&appointment.PhoneNumber,
		&appointment.Notes,
		&appointment.Type,
		&appointment.Status,
		&appointment.CollectedNames,
		&appointment.PersonalAppointments,
		&appointment.Sold,
		&appointment.Date,
		&appointment.RecallDate,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CreateAppointment(appointment *domain.Appointment) (*domain.Appointment, error) {
	queryBuilder := squirrel.
		Insert(appointmentsTable).
		Columns("client_name", "address", "phone_number", "notes", "type", "status", "collected_names", "personal_appointments", "sold", "date", "recall_date").
		Values(
			appointment.ClientName,
			appointment.Address,
			appointment.PhoneNumber,
			appointment.Notes,
			appointment.Type,
			appointment.Status,
			appointment.CollectedNames,
			appointment.PersonalAppointments,
			appointment.Sold,
			appointment.Date,
			appointment.RecallDate,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	appointmentSQL, appointmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(appointmentSQL, appointmentArgs...).Scan(&appointment.ID)
	if err != nil {
		return nil, err
	}

	if err := r.SetConsultants(appointment.ID, appointment.ConsultantIDs); err != nil {
		return nil, err
	}

	return appointment, nil
}

func (r *appointmentRepository) UpdateAppointment(appointment *domain.Appointment) error {
	queryBuilder := squirrel.
		Update(appointmentsTable).
		Set("client_name", appointment.ClientName).
		Set("address", appointment.Address).
		Set("phone_number", appointment.PhoneNumber).
		Set("notes", appointment.Notes).
		Set("type", appointment.Type).
		Set("status", appointment.Status).
		Set("collected_names", appointment.CollectedNames).
		Set("personal_appointments", appointment.PersonalAppointments).
		Set("recall_date", appointment.RecallDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID}).
		PlaceholderFormat(squirrel.Dollar)

	appointmentSQL, appointmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(appointmentSQL, appointmentArgs...)
	return err
}

func (r *appointmentRepository) GetAppointmentByID(appointmentID int) (*domain.Appointment, error) {
	row := r.conn.QueryRow(
		fmt.Sprintf("SELECT %s FROM appointments WHERE id = $1", appointmentColumns),
		appointmentID,
	)

	appointment, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.attachConsultants(appointment)
	return appointment, nil
}

func (r *appointmentRepository) ListAppointments() ([]*domain.Appointment, error) {
	queryBuilder := squirrel.
		Select(appointmentColumns).
		From(appointmentsTable).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryAppointments(queryBuilder)
}

func (r *appointmentRepository) ListByPeriod(from, to time.Time) ([]*domain.Appointment, error) {
	queryBuilder := squirrel.
		Select(appointmentColumns).
		From(appointmentsTable).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.Lt{"date": to}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryAppointments(queryBuilder)
}

func (r *appointmentRepository) ListByConsultant(consultantID int) ([]*domain.Appointment, error) {
	queryBuilder := squirrel.
		Select("a."+appointmentColumnsAliased).
		From(appointmentsTable+" a").
		Join(appointmentConsultantsTable+" ac ON ac.appointment_id = a.id").
		Where(squirrel.Eq{"ac.consultant_id": consultantID}).
		OrderBy("a.date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryAppointments(queryBuilder)
}

func (r *appointmentRepository) ListSoldByConsultantAndPeriod(consultantID int, from, to time.Time) ([]*domain.Appointment, error) {
	queryBuilder := squirrel.
		Select("a."+appointmentColumnsAliased).
		From(appointmentsTable+" a").
		Join(appointmentConsultantsTable+" ac ON ac.appointment_id = a.id").
		Where(squirrel.Eq{"ac.consultant_id": consultantID, "a.sold": true}).
		Where(squirrel.GtOrEq{"a.date": from}).
		Where(squirrel.Lt{"a.date": to}).
		OrderBy("a.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryAppointments(queryBuilder)
}

// alias das colunas para consultas com join (a.id, a.client_name, ...)
const appointmentColumnsAliased = "id, a.client_name, a.address, a.phone_number, a.notes, a.type, a.status, a.collected_names, a.personal_appointments, a.sold, a.date, a.recall_date, a.created_at, a.updated_at"

func (r *appointmentRepository) CountMonthlySold(consultantID int, month time.Month, year int) (int, error) {
	var count int
	err := r.conn.QueryRow(`
		SELECT COUNT(*)
		FROM appointments a
		JOIN appointment_consultants ac ON ac.appointment_id = a.id
		WHERE ac.consultant_id = $1
		  AND a.sold = true
		  AND EXTRACT(MONTH FROM a.date) = $2
		  AND EXTRACT(YEAR FROM a.date) = $3`,
		consultantID, int(month), year,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *appointmentRepository) MarkSold(appointmentID int) error {
	_, err := r.conn.Exec("UPDATE appointments SET sold = true, updated_at = NOW() WHERE id = $1", appointmentID)
	return err
}

// ReassignSold transfere para o mentor os vínculos dos appuntamentos vendidos.
// Os não vendidos permanecem apontando para o consultor original.
func (r *appointmentRepository) ReassignSold(fromConsultantID, toConsultantID int) (int64, error) {
	result, err := r.conn.Exec(`
		UPDATE appointment_consultants ac
		SET consultant_id = $1
		FROM appointments a
		WHERE a.id = ac.appointment_id
		  AND ac.consultant_id = $2
		  AND a.sold = true
		  AND NOT EXISTS (
			SELECT 1 FROM appointment_consultants dup
			WHERE dup.appointment_id = ac.appointment_id AND dup.consultant_id = $1
		  )`,
		toConsultantID, fromConsultantID,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// ListDanglingConsultantLinks retorna, por consultor inexistente, os ids dos
// appuntamentos que ainda apontam para ele
func (r *appointmentRepository) ListDanglingConsultantLinks() (map[int][]int, error) {
	rows, err := r.conn.Query(`
		SELECT ac.consultant_id, ac.appointment_id
		FROM appointment_consultants ac
		LEFT JOIN consultants c ON c.id = ac.consultant_id
		WHERE c.id IS NULL
		ORDER BY ac.consultant_id, ac.appointment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dangling := make(map[int][]int)
	for rows.Next() {
		var consultantID, appointmentID int
		if err := rows.Scan(&consultantID, &appointmentID); err != nil {
			return nil, err
		}
		dangling[consultantID] = append(dangling[consultantID], appointmentID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dangling, nil
}

func (r *appointmentRepository) SetConsultants(appointmentID int, consultantIDs []int) error {
	if _, err := r.conn.Exec("DELETE FROM appointment_consultants WHERE appointment_id = $1", appointmentID); err != nil {
		return err
	}

	for _, consultantID := range consultantIDs {
		_, err := r.conn.Exec(
			"INSERT INTO appointment_consultants (appointment_id, consultant_id) VALUES ($1, $2)",
			appointmentID, consultantID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *appointmentRepository) DeleteAppointment(appointmentID int) error {
	// follow_ups e vínculos caem em cascata pela FK
	_, err := r.conn.Exec("DELETE FROM appointments WHERE id = $1", appointmentID)
	return err
}

func (r *appointmentRepository) queryAppointments(queryBuilder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	appointmentSQL, appointmentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(appointmentSQL, appointmentArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}

		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, appointment := range appointments {
		r.attachConsultants(appointment)
	}

	return appointments, nil
}

func (r *appointmentRepository) attachConsultants(appointment *domain.Appointment) {
	rows, err := r.conn.Query(
		"SELECT consultant_id FROM appointment_consultants WHERE appointment_id = $1",
		appointment.ID,
	)
	if err != nil {
		logrus.Warnf("Erro ao buscar consultores vinculados ao appuntamento %d: %v", appointment.ID, err)
		// Continua mesmo com erro, apenas com a lista vazia
		return
	}
	defer rows.Close()

	var consultantIDs []int
	for rows.Next() {
		var consultantID int
		if err := rows.Scan(&consultantID); err != nil {
			logrus.Warnf("Erro ao ler consultor vinculado ao appuntamento %d: %v", appointment.ID, err)
			return
		}
		consultantIDs = append(consultantIDs, consultantID)
	}

	appointment.ConsultantIDs = consultantIDs
}
