package repository

// schemaStatements create the directory tables when they are absent.
// clients must exist before phones because of the foreign key.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		client_id SERIAL PRIMARY KEY,
		fname     TEXT NOT NULL,
		lname     TEXT NOT NULL,
		email     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS phones (
		phone_id  SERIAL PRIMARY KEY,
		client_id INT NOT NULL REFERENCES clients(client_id),
		number    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_phones_client_id ON phones (client_id)`,
}
