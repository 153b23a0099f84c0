package repository

import (
	"database/sql"

	"github.com/AirPlr/smart-control-api/infrastructure/database/postgres"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const clientsTable = "clients"

type ClientRepository interface {
	CreateClient(client *domain.Client) (*domain.Client, error)
	GetClientByID(clientID int) (*domain.Client, error)
	GetClientByPhone(phoneNumber string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

const clientColumns = "id, name, address, phone_number, email, notes, registered_at"

func scanClient(row interface{ Scan(...interface{}) error }) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Address,
		&client.PhoneNumber,
		&client.Email,
		&client.Notes,
		&client.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	queryBuilder := squirrel.
		Insert(clientsTable).
		Columns("name", "address", "phone_number", "email", "notes").
		Values(client.Name, client.Address, client.PhoneNumber, client.Email, client.Notes).
		Suffix("RETURNING id, registered_at").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(clientSQL, clientArgs...).Scan(&client.ID, &client.RegisteredAt)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) GetClientByID(clientID int) (*domain.Client, error) {
	row := r.conn.QueryRow(
		"SELECT "+clientColumns+" FROM clients WHERE id = $1",
		clientID,
	)

	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return client, nil
}

// GetClientByPhone evita anagrafe duplicada quando o mesmo cliente compra de novo
func (r *clientRepository) GetClientByPhone(phoneNumber string) (*domain.Client, error) {
	row := r.conn.QueryRow(
		"SELECT "+clientColumns+" FROM clients WHERE phone_number = $1",
		phoneNumber,
	)

	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	queryBuilder := squirrel.
		Select(clientColumns).
		From(clientsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	clientSQL, clientArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientSQL, clientArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
