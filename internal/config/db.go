package config

const (
	// EngineSQLite selects the embedded sqlite database.
	EngineSQLite = "sqlite"
	// EngineMySQL selects a mysql or mariadb server.
	EngineMySQL = "mysql"
	// EnginePostgres selects a postgres server.
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite, mysql or postgres
	Path     string // sqlite database file
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}
