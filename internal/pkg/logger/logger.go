package logger

// Logger is the leveled sink shared by services, repositories, handlers and workers.
// Arguments are joined like fmt.Sprint. Fatal exits the process and Panic panics,
// so both are reserved for startup failures in the commands.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
