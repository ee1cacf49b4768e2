package condep

import "log/slog"

// Option configures a Converter.
type Option func(*config)

type config struct {
	relation      string
	commentPrefix string
	workers       int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		relation:      "X",
		commentPrefix: "#",
		workers:       1,
		logger:        slog.Default(),
	}
}

// WithRelationLabel sets the DEPREL marker written on every output row
// (default: "X"). The converter derives attachments, not relation types,
// so one marker applies to all rows.
func WithRelationLabel(label string) Option {
	return func(c *config) {
		if label != "" {
			c.relation = label
		}
	}
}

// WithCommentPrefix sets the prefix that marks pass-through lines in
// ConvertStream (default: "#").
func WithCommentPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.commentPrefix = prefix
		}
	}
}

// WithWorkers sets how many sentences ConvertStream converts concurrently
// (default: 1, sequential).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
