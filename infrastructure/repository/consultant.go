package repository

import (
	"database/sql"
	"fmt"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const consultantsTable = "consultants"

type ConsultantRepository interface {
	CreateConsultant(consultant *domain.Consultant) (*domain.Consultant, error)
	UpdateConsultant(consultant *domain.Consultant) error
	GetConsultantByID(consultantID int) (*domain.Consultant, error)
	ListConsultants() ([]*domain.Consultant, error)
	ListSubordinates(parentID int) ([]*domain.Consultant, error)
	ClearParent(parentID int) error
	DeleteConsultant(consultantID int) error
	AddYearlyPay(consultantID int, amount float64) error
	ResetAllYearlyPay() (int64, error)
}

type consultantRepository struct {
	conn *postgres.Connection
}

func NewConsultantRepository(conn *postgres.Connection) ConsultantRepository {
	return &consultantRepository{
		conn: conn,
	}
}

const consultantColumns = "id, name, position, parent_id, total_yearly_pay, residency, phone, email, tax_code, created_at, updated_at"

func scanConsultant(row interface{ Scan(...interface{}) error }) (*domain.Consultant, error) {
	var consultant domain.Consultant
	err := row.Scan(
		&consultant.ID,
		&consultant.Name,
		&consultant.Position,
		&consultant.ParentID,
		&consultant.TotalYearlyPay,
		&consultant.Residency,
		&consultant.Phone,
		&consultant.Email,
		&consultant.TaxCode,
		&consultant.CreatedAt,
		&consultant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultantRepository) CreateConsultant(consultant *domain.Consultant) (*domain.Consultant, error) {
	queryBuilder := squirrel.
		Insert(consultantsTable).
		Columns("name", "position", "parent_id", "total_yearly_pay", "residency", "phone", "email", "tax_code").
		Values(
			consultant.Name,
			consultant.Position,
			consultant.ParentID,
			consultant.TotalYearlyPay,
			consultant.Residency,
			consultant.Phone,
			consultant.Email,
			consultant.TaxCode,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	consultantSQL, consultantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(consultantSQL, consultantArgs...).Scan(&consultant.ID)
	if err != nil {
		return nil, err
	}

	return consultant, nil
}

func (r *consultantRepository) UpdateConsultant(consultant *domain.Consultant) error {
	queryBuilder := squirrel.
		Update(consultantsTable).
		Set("parent_id", consultant.ParentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": consultant.ID})

	if consultant.Name != "" {
		queryBuilder = queryBuilder.Set("name", consultant.Name)
	}

	if consultant.Position != "" {
		queryBuilder = queryBuilder.Set("position", consultant.Position)
	}

	if consultant.Residency != nil {
		queryBuilder = queryBuilder.Set("residency", consultant.Residency)
	}

	if consultant.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", consultant.Phone)
	}

	if consultant.Email != nil {
		queryBuilder = queryBuilder.Set("email", consultant.Email)
	}

	if consultant.TaxCode != nil {
		queryBuilder = queryBuilder.Set("tax_code", consultant.TaxCode)
	}

	consultantSQL, consultantArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(consultantSQL, consultantArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *consultantRepository) GetConsultantByID(consultantID int) (*domain.Consultant, error) {
	row := r.conn.QueryRow(
		fmt.Sprintf("SELECT %s FROM consultants WHERE id = $1", consultantColumns),
		consultantID,
	)

	consultant, err := scanConsultant(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return consultant, nil
}

func (r *consultantRepository) ListConsultants() ([]*domain.Consultant, error) {
	queryBuilder := squirrel.
		Select(consultantColumns).
		From(consultantsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	consultantSQL, consultantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryConsultants(consultantSQL, consultantArgs...)
}

// ListSubordinates retorna apenas os subordinados diretos (um nível)
func (r *consultantRepository) ListSubordinates(parentID int) ([]*domain.Consultant, error) {
	queryBuilder := squirrel.
		Select(consultantColumns).
		From(consultantsTable).
		Where(squirrel.Eq{"parent_id": parentID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	consultantSQL, consultantArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryConsultants(consultantSQL, consultantArgs...)
}

// ClearParent remove a referência ao responsável de todos os subordinados diretos
func (r *consultantRepository) ClearParent(parentID int) error {
	_, err := r.conn.Exec("UPDATE consultants SET parent_id = NULL, updated_at = NOW() WHERE parent_id = $1", parentID)
	return err
}

func (r *consultantRepository) DeleteConsultant(consultantID int) error {
	_, err := r.conn.Exec("DELETE FROM consultants WHERE id = $1", consultantID)
	return err
}

// AddYearlyPay incrementa o acumulado anual do consultor após a aceitação de um fechamento
func (r *consultantRepository) AddYearlyPay(consultantID int, amount float64) error {
	_, err := r.conn.Exec(
		"UPDATE consultants SET total_yearly_pay = total_yearly_pay + $1, updated_at = NOW() WHERE id = $2",
		amount, consultantID,
	)
	return err
}

// ResetAllYearlyPay zera o acumulado anual de todos os consultores (virada de ano)
func (r *consultantRepository) ResetAllYearlyPay() (int64, error) {
	result, err := r.conn.Exec("UPDATE consultants SET total_yearly_pay = 0, updated_at = NOW()")
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *consultantRepository) queryConsultants(query string, args ...interface{}) ([]*domain.Consultant, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consultants []*domain.Consultant
	for rows.Next() {
		consultant, err := scanConsultant(rows)
		if err != nil {
			return nil, err
		}

		consultants = append(consultants, consultant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return consultants, nil
}
