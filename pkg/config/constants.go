package config

// EnvPrefix is passed to envconfig; individual struct tags carry the full name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "HOTELIER_DB_DSN"
	EnvDBHost = "HOTELIER_DB_HOST"
	EnvDBUser = "HOTELIER_DB_USER"
	EnvDBName = "HOTELIER_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
