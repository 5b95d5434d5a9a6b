package configs

// Retention controls the poll cleanup service. A Days value of 0 disables
// the sweep entirely.
type Retention struct {
	Days     int    `env:"POLL_RETENTION_DAYS" envDefault:"0"`
	CronSpec string `env:"POLL_CLEANUP_CRON" envDefault:"30 3 * * *"`
}
