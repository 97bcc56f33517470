package logger

// Logger структурированный логгер, передаётся в компоненты через конструкторы.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func Component(name string) Field {
	return NewField("component", name)
}

func Err(err error) Field {
	return NewField("error", err)
}
