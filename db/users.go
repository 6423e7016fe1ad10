package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/planet-app/user-services/models"
)

// CreateUser inserts the user row, creates any groups it references that do
// not exist yet, and links the user to every listed group. All of it happens
// in one transaction: on any failure nothing is persisted.
func (u *UserDB) CreateUser(user *models.User) error {
	tx, err := u.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	// Rollback transaction if an error occurs
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	err = u.execQuery(tx, `
		INSERT INTO users (userid, first_name, last_name)
		VALUES (?, ?, ?)`,
		user.UserID, user.FirstName, user.LastName)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("error inserting user: %w", err)
	}

	if err = u.addUserToGroups(tx, user.UserID, user.Groups); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// GetUser retrieves a single user with its group names. Groups appear in the
// order the memberships were created.
func (u *UserDB) GetUser(userid string) (*models.User, error) {
	query := `SELECT userid, first_name, last_name FROM users WHERE userid = ?`
	row := u.DB.QueryRow(query, userid)

	var user models.User
	if err := row.Scan(&user.UserID, &user.FirstName, &user.LastName); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	groups, err := u.getUserGroupNames(userid)
	if err != nil {
		return nil, err
	}
	user.Groups = groups

	return &user, nil
}

// UpdateUser rewrites an existing user record, including a possible userid
// rename, and reconciles its memberships against the new group list. The
// rename propagates to the join table through the schema's ON UPDATE CASCADE.
func (u *UserDB) UpdateUser(originalUserID string, user *models.User) error {
	tx, err := u.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.Exec(`
		UPDATE users
		SET userid = ?, first_name = ?, last_name = ?
		WHERE userid = ?`,
		user.UserID, user.FirstName, user.LastName, originalUserID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading update result: %w", err)
	}
	if affected == 0 {
		err = ErrUserNotFound
		return err
	}

	// Ensure any new groups exist and are linked
	if err = u.addUserToGroups(tx, user.UserID, user.Groups); err != nil {
		return err
	}

	// Remove the user from groups no longer on the record
	if err = u.pruneStaleMemberships(tx, user.UserID, user.Groups); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// DeleteUser removes a user record. Its membership rows cascade away with it.
func (u *UserDB) DeleteUser(userid string) error {
	res, err := u.DB.Exec(`DELETE FROM users WHERE userid = ?`, userid)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// addUserToGroups creates any groups that don't exist yet (it's not an error
// if they do) and links the user to all of them within the transaction.
func (u *UserDB) addUserToGroups(tx *sql.Tx, userid string, groups []string) error {
	for _, name := range groups {
		err := u.execQuery(tx, `INSERT OR IGNORE INTO groups (name) VALUES (?)`, name)
		if err != nil {
			return fmt.Errorf("error creating group %q: %w", name, err)
		}

		err = u.execQuery(tx, `
			INSERT OR IGNORE INTO user_groups (userid, group_name)
			VALUES (?, ?)`,
			userid, name)
		if err != nil {
			return fmt.Errorf("error adding user to group %q: %w", name, err)
		}
	}
	return nil
}

// pruneStaleMemberships removes the user from any group not in the keep list.
func (u *UserDB) pruneStaleMemberships(tx *sql.Tx, userid string, keep []string) error {
	if len(keep) == 0 {
		if err := u.execQuery(tx, `DELETE FROM user_groups WHERE userid = ?`, userid); err != nil {
			return fmt.Errorf("error pruning memberships: %w", err)
		}
		return nil
	}

	query := fmt.Sprintf(`
		DELETE FROM user_groups
		WHERE userid = ? AND group_name NOT IN (%s)`,
		placeholders(len(keep)))

	args := make([]interface{}, 0, len(keep)+1)
	args = append(args, userid)
	for _, name := range keep {
		args = append(args, name)
	}

	if err := u.execQuery(tx, query, args...); err != nil {
		return fmt.Errorf("error pruning memberships: %w", err)
	}
	return nil
}

// getUserGroupNames returns the names of all groups a user is a member of,
// in membership insertion order.
func (u *UserDB) getUserGroupNames(userid string) ([]string, error) {
	query := `SELECT group_name FROM user_groups WHERE userid = ? ORDER BY id`
	rows, err := u.DB.Query(query, userid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving memberships: %w", err)
	}
	defer rows.Close()

	groups := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning membership: %w", err)
		}
		groups = append(groups, name)
	}
	return groups, rows.Err()
}

// placeholders builds the "?, ?, ?" part of a parameterized IN clause.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
