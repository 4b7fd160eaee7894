// Package benchmark measures what forwarding through a platform handler
// costs on top of calling zap, zerolog, logrus or slog directly.
package benchmark
