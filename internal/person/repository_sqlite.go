package person

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository stores persons in a single-file SQLite database. The id
// column uses AUTOINCREMENT so ids of deleted rows are never handed out again.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS person (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT,
			age        INTEGER,
			gender     TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create person table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) List() ([]Person, error) {
	rows, err := r.db.Query(`SELECT id, name, age, gender, created_at, updated_at FROM person ORDER BY id`)
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

func (r *SQLiteRepository) GetByID(id int64) (Person, error) {
	row := r.db.QueryRow(`SELECT id, name, age, gender, created_at, updated_at FROM person WHERE id = ?`, id)
	p, err := scanPerson(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}

	return p, nil
}

func (r *SQLiteRepository) Create(p Person) (Person, error) {
	result, err := r.db.Exec(
		`INSERT INTO person (name, age, gender, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		nullableString(p.Name),
		nullableInt(p.Age),
		p.Gender,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return Person{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Person{}, err
	}

	p.ID = id
	return p, nil
}

func (r *SQLiteRepository) Update(id int64, personUpdate Person) (Person, error) {
	result, err := r.db.Exec(
		`UPDATE person SET name = ?, age = ?, gender = ?, updated_at = ? WHERE id = ?`,
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

func (r *SQLiteRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM person WHERE id = ?`, id)
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
