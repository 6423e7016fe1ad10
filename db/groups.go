package db

import (
	"database/sql"
	"fmt"
)

// CreateGroup explicitly creates a new empty group.
func (u *UserDB) CreateGroup(name string) error {
	_, err := u.DB.Exec(`INSERT INTO groups (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrGroupExists
		}
		return fmt.Errorf("error inserting group: %w", err)
	}
	return nil
}

// GetGroupMembers returns the userids of all members of the group, in
// membership insertion order.
func (u *UserDB) GetGroupMembers(name string) ([]string, error) {
	exists, err := u.checkGroupExists(name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	query := `SELECT userid FROM user_groups WHERE group_name = ? ORDER BY id`
	rows, err := u.DB.Query(query, name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var userid string
		if err := rows.Scan(&userid); err != nil {
			return nil, fmt.Errorf("error scanning group member: %w", err)
		}
		members = append(members, userid)
	}
	return members, rows.Err()
}

// UpdateGroupMembers replaces the group's membership with the given userids.
// Every listed user must already exist; otherwise the whole update is
// rejected and the membership is left untouched.
func (u *UserDB) UpdateGroupMembers(name string, userids []string) error {
	tx, err := u.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var exists bool
	if err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM groups WHERE name = ?)`, name).Scan(&exists); err != nil {
		return fmt.Errorf("error checking group existence: %w", err)
	}
	if !exists {
		err = ErrGroupNotFound
		return err
	}

	if err = checkMembersExist(tx, userids); err != nil {
		return err
	}

	// Create the new memberships
	for _, userid := range userids {
		err = u.execQuery(tx, `
			INSERT OR IGNORE INTO user_groups (userid, group_name)
			VALUES (?, ?)`,
			userid, name)
		if err != nil {
			return fmt.Errorf("error adding member %q: %w", userid, err)
		}
	}

	// Delete memberships of users no longer listed
	if len(userids) == 0 {
		err = u.execQuery(tx, `DELETE FROM user_groups WHERE group_name = ?`, name)
	} else {
		query := fmt.Sprintf(`
			DELETE FROM user_groups
			WHERE group_name = ? AND userid NOT IN (%s)`,
			placeholders(len(userids)))

		args := make([]interface{}, 0, len(userids)+1)
		args = append(args, name)
		for _, userid := range userids {
			args = append(args, userid)
		}
		err = u.execQuery(tx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("error removing stale members: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// DeleteGroup removes a group. Membership rows referencing it cascade away.
func (u *UserDB) DeleteGroup(name string) error {
	res, err := u.DB.Exec(`DELETE FROM groups WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading delete result: %w", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// checkGroupExists checks if a group with the specified name already exists.
func (u *UserDB) checkGroupExists(name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM groups WHERE name = ?)`
	var exists bool
	if err := u.DB.QueryRow(query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking group existence: %w", err)
	}
	return exists, nil
}

// checkMembersExist verifies every listed userid has a user row, returning a
// MembersNotFoundError naming the missing ones otherwise.
func checkMembersExist(tx *sql.Tx, userids []string) error {
	if len(userids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`SELECT userid FROM users WHERE userid IN (%s)`, placeholders(len(userids)))
	args := make([]interface{}, len(userids))
	for i, userid := range userids {
		args[i] = userid
	}

	rows, err := tx.Query(query, args...)
	if err != nil {
		return fmt.Errorf("error checking member existence: %w", err)
	}
	defer rows.Close()

	found := make(map[string]struct{}, len(userids))
	for rows.Next() {
		var userid string
		if err := rows.Scan(&userid); err != nil {
			return fmt.Errorf("error scanning member: %w", err)
		}
		found[userid] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, userid := range userids {
		if _, ok := found[userid]; !ok {
			missing = append(missing, userid)
		}
	}
	if len(missing) > 0 {
		return &MembersNotFoundError{UserIDs: missing}
	}
	return nil
}
