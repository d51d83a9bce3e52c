package i

// Logger is the leveled logger components write to.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}
