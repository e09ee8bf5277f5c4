package store

// Account queries. The checklist column is a jsonb array so that both
// mutations are single-statement, per-row atomic updates:
//   - append concatenates the new element (duplicates accumulate);
//   - "-" removes every array element equal to the given string.
// Cross-request ordering is last-applied-wins; no read-modify-write of the
// full list ever happens in process memory.
const (
	createAccount = `INSERT INTO accounts (email, password_hash)
    VALUES ($1, $2)
    RETURNING account_id, email, password_hash, checked, joined_at;`

	findAccountByEmail = `SELECT account_id, email, password_hash, checked, joined_at
    FROM accounts
    WHERE email = $1;`

	findAccountByID = `SELECT account_id, email, password_hash, checked, joined_at
    FROM accounts
    WHERE account_id = $1;`

	appendChecked = `UPDATE accounts
    SET checked = checked || to_jsonb($2::text)
    WHERE account_id = $1
    RETURNING checked;`

	removeChecked = `UPDATE accounts
    SET checked = checked - $2::text
    WHERE account_id = $1
    RETURNING checked;`

	deleteAccount = `DELETE FROM accounts
    WHERE account_id = $1;`
)
