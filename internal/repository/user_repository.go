package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/medicore/hospital-api/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,phone_number,date_of_birth,gender,address,identity_card_number,password_hash"

// Create inserts a user and fills in the generated ID.  The PasswordHash
// field must already be set by the caller; repositories never see plaintext
// secrets.  Duplicate email and identity card numbers map to sentinel errors.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = uuid.NewString()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id,name,email,phone_number,date_of_birth,gender,address,identity_card_number,password_hash) VALUES (?,?,?,?,?,?,?,?,?)",
		u.ID, u.Name, u.Email, u.PhoneNumber, u.DateOfBirth, u.Gender, nullStr(u.Address), u.IdentityCardNumber, u.PasswordHash)
	if err != nil {
		if isDuplicate(err, "identity_card") {
			return ErrIdentityCardExists
		}
		if isDuplicate(err, "email") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// Update overwrites the mutable identity fields of a user.  The password
// hash is left untouched; password changes go through a separate path.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=?,email=?,phone_number=?,date_of_birth=?,gender=?,address=?,identity_card_number=? WHERE id=?",
		u.Name, u.Email, u.PhoneNumber, u.DateOfBirth, u.Gender, nullStr(u.Address), u.IdentityCardNumber, u.ID)
	if err != nil {
		if isDuplicate(err, "identity_card") {
			return ErrIdentityCardExists
		}
		if isDuplicate(err, "email") {
			return ErrEmailExists
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero rows can also mean a no-op write on identical values, but an
		// existence check here keeps 404 semantics for unknown ids.
		if _, err := r.GetByID(ctx, u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var u model.User
	var address sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.DateOfBirth,
		&u.Gender, &address, &u.IdentityCardNumber, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	if err != nil {
		return u, err
	}
	u.Address = address.String
	return u, nil
}

// nullStr maps empty strings to SQL NULL so optional columns stay nullable.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
