package configs

import "time"

// Analytics configures where lifecycle events go. Sink is "log" (default)
// or "postgres"; the latter requires a reachable database.
type Analytics struct {
	Sink          string        `env:"SINK" envDefault:"log"`
	BufferSize    int           `env:"BUFFER_SIZE" envDefault:"1024"`
	BatchSize     int           `env:"BATCH_SIZE" envDefault:"100"`
	FlushInterval time.Duration `env:"FLUSH_INTERVAL" envDefault:"2s"`
}
