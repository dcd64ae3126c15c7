package queries

const (
	QueryCreateAccount = `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id;
	`

	QueryGetAccountByID = `
		SELECT account_id, username, password
		FROM account
		WHERE account_id = $1;
	`

	QueryGetAccountByUsername = `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1;
	`

	QueryListAccounts = `
		SELECT account_id, username, password
		FROM account
		ORDER BY account_id;
	`
)
