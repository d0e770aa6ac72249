package src

// Logger is the structured logger shared by every layer of chainhash.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Sync() error
}
