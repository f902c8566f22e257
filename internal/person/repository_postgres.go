package person

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listPersonsQuery = `
		SELECT id, name, age, gender, created_at, updated_at
		FROM person
		ORDER BY id
	`
	getPersonByIDQuery = `
		SELECT id, name, age, gender, created_at, updated_at
		FROM person
		WHERE id = $1
	`

	insertPersonQuery = `
		INSERT INTO person (name, age, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	updatePersonQuery = `
		UPDATE person
		SET name = $1,
			age = $2,
			gender = $3,
			updated_at = $4
		WHERE id = $5
	`
	deletePersonQuery = `DELETE FROM person WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Person, error) {
	rows, err := r.db.Query(listPersonsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	return persons, rows.Err()
}

func (r *PostgresRepository) GetByID(id int64) (Person, error) {
	row := r.db.QueryRow(getPersonByIDQuery, id)
	p, err := scanPerson(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}

	return p, nil
}

func (r *PostgresRepository) Create(p Person) (Person, error) {
	var id int64
	err := r.db.QueryRow(
		insertPersonQuery,
		nullableString(p.Name),
		nullableInt(p.Age),
		p.Gender,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return Person{}, err
	}

	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Update(id int64, personUpdate Person) (Person, error) {
	result, err := r.db.Exec(
		updatePersonQuery,
		nullableString(personUpdate.Name),
		nullableInt(personUpdate.Age),
		personUpdate.Gender,
		personUpdate.UpdatedAt,
		id,
	)
	if err != nil {
		return Person{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Person{}, err
	}
	if affected == 0 {
		return Person{}, ErrNotFound
	}

	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int64) error {
	result, err := r.db.Exec(deletePersonQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanPerson(scanner rowScanner) (Person, error) {
	p := Person{}
	var name sql.NullString
	var age sql.NullInt64

	if err := scanner.Scan(
		&p.ID,
		&name,
		&age,
		&p.Gender,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return Person{}, err
	}

	if name.Valid {
		p.Name = &name.String
	}
	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}

	return p, nil
}

// name and age may be null in the table
func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
