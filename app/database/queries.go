package database

import (
	"database/sql"
	"time"

	"github.com/jayantiyadav04/traffic-violation-management-system/app/models"
)

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT user_id, username, password, full_name, role, email, phone, created_at
			  FROM users WHERE username = $1`

	var phone sql.NullString
	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName,
		&user.Role, &user.Email, &phone, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Phone = phone.String
	return user, nil
}

func GetUserByID(db *sql.DB, userID int) (*models.User, error) {
	user := &models.User{}
	query := `SELECT user_id, username, password, full_name, role, email, phone, created_at
			  FROM users WHERE user_id = $1`

	var phone sql.NullString
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName,
		&user.Role, &user.Email, &phone, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Phone = phone.String
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, password, full_name, role, email, phone)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING user_id, created_at`
	return db.QueryRow(query,
		user.Username, user.Password, user.FullName,
		string(user.Role), user.Email, user.Phone,
	).Scan(&user.ID, &user.CreatedAt)
}

func UpdateUserPassword(db *sql.DB, userID int, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1 WHERE user_id = $2`, hashedPassword, userID)
	return err
}

// GetAllUsers returns users, optionally filtered by role.
func GetAllUsers(db *sql.DB, role string) ([]*models.User, error) {
	query := `SELECT user_id, username, full_name, role, email, phone, created_at
			  FROM users ORDER BY role, full_name`
	args := []interface{}{}
	if role != "" {
		query = `SELECT user_id, username, full_name, role, email, phone, created_at
				 FROM users WHERE role = $1 ORDER BY full_name`
		args = append(args, role)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		var phone sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Role, &u.Email, &phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Phone = phone.String
		users = append(users, u)
	}
	return users, rows.Err()
}

// SearchUsers matches by name, username, or email.
func SearchUsers(db *sql.DB, term string) ([]*models.User, error) {
	query := `SELECT user_id, username, full_name, role, email, phone, created_at
			  FROM users
			  WHERE username ILIKE $1 OR full_name ILIKE $1 OR email ILIKE $1
			  ORDER BY full_name`

	rows, err := db.Query(query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u := &models.User{}
		var phone sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.Role, &u.Email, &phone, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.Phone = phone.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func CreateSession(db *sql.DB, sessionID string, userID int, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}

func DeleteExpiredSessions(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE expires_at < NOW()`)
	return err
}
