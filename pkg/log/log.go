package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields es un alias de logrus.Fields
type Fields logrus.Fields

// Logger es la interface de log de la aplicación
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Panic(args ...interface{})
	Panicf(format string, args ...interface{})
}

// contextKey para guardar el ID de correlación en el contexto
type contextKey string

// CorrelationIDKey es la clave del ID de correlación en el contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

// logger implementa la interface Logger encapsulando logrus
type logger struct {
	entry *logrus.Entry
}

// L es la instancia global de Logger para uso directo
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadero si estamos en ambiente de desarrollo
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// SetupTestLogger configura un logger simplificado para tests
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    false,
		DisableColors:    false,
		DisableTimestamp: false,
		PadLevelText:     true,
	})

	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithField agrega un único campo al Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	// En desarrollo se omiten los campos de trazabilidad para dejar los
	// logs más limpios, salvo los campos útiles para depurar
	if IsDevelopment() && key != correlationIDField &&
		key != "method" && key != "path" && key != "status_code" &&
		key != "duration_ms" && key != "error" {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields agrega múltiples campos al Logger
func (l *logger) WithFields(fields Fields) Logger {
	// En desarrollo se filtran los campos irrelevantes
	if IsDevelopment() {
		relevantFields := make(logrus.Fields)
		for k, v := range fields {
			if k == correlationIDField || k == "method" || k == "path" ||
				k == "status_code" || k == "duration_ms" || k == "error" ||
				strings.HasPrefix(k, "user_") || strings.HasPrefix(k, "session_") ||
				strings.HasPrefix(k, "report_") {
				relevantFields[k] = v
			}
		}
		if len(relevantFields) == 0 {
			return l
		}
		return &logger{entry: l.entry.WithFields(relevantFields)}
	}

	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithError agrega un error al Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext extrae la información del contexto para el Logger
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l *logger) Panic(args ...interface{}) {
	l.entry.Panic(args...)
}

func (l *logger) Panicf(format string, args ...interface{}) {
	l.entry.Panicf(format, args...)
}

// WithCorrelationID agrega un ID de correlación nuevo al contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtiene el ID de correlación del contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext crea un logger con el ID de correlación del contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
