package logger

import "fmt"

// Field is a single key=value pair attached to a log message.
type Field interface {
	Key() string
	String() string
}

type Fields []Field

func (f *Fields) Add(fields ...Field) {
	*f = append(*f, fields...)
}

type GenericField struct {
	key    string
	value  any
	format string
}

func (f GenericField) Key() string {
	return f.key
}

func (f GenericField) String() string {
	return fmt.Sprintf(f.format, f.value)
}

func StringField(key, value string) Field {
	return GenericField{
		key:    key,
		value:  value,
		format: "%s",
	}
}

func IntField(key string, value int) Field {
	return GenericField{
		key:    key,
		value:  value,
		format: "%d",
	}
}
