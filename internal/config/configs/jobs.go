package configs

// Jobs holds the cron expressions driving the scheduled duties. Defaults
// follow the production cadence: metrics roll up the previous day at 3AM,
// inactivity is scanned hourly, lifecycle transitions run at midnight and
// the random proof draw happens at a fixed midday time.
type Jobs struct {
	MetricsCron    string `env:"METRICS_CRON" envDefault:"0 3 * * *"`
	InactivityCron string `env:"INACTIVITY_CRON" envDefault:"0 * * * *"`
	LifecycleCron  string `env:"LIFECYCLE_CRON" envDefault:"0 0 * * *"`
	RandomDrawCron string `env:"RANDOM_DRAW_CRON" envDefault:"0 12 * * *"`
}
