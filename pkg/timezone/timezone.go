package timezone

import "time"

// Zona horaria del negocio: Bogotá (Colombia), UTC-5 fijo.
// Colombia no tiene horario de verano, por eso se usa un offset fijo y no
// una entrada de la base de datos de zonas horarias.
var bogota = time.FixedZone("America/Bogota", -5*60*60)

// Clock abstrae la fuente de tiempo para poder congelarla en los tests.
type Clock interface {
	Now() time.Time
}

// SystemClock es el reloj real del sistema.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Bogota retorna la zona horaria fija del negocio.
func Bogota() *time.Location {
	return bogota
}

// NowBogota retorna la fecha y hora actual en la zona horaria de Bogotá.
func NowBogota(clock Clock) time.Time {
	return clock.Now().In(bogota)
}

// Today retorna la fecha actual (medianoche) en la zona horaria de Bogotá.
func Today(clock Clock) time.Time {
	return DateOf(NowBogota(clock))
}

// DateOf normaliza un instante a su fecha calendario en Bogotá (00:00:00).
func DateOf(t time.Time) time.Time {
	year, month, day := t.In(bogota).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, bogota)
}

// DayRange retorna los límites inclusivos del día [00:00:00, 23:59:59.999...]
// para la fecha dada, en la zona horaria de Bogotá.
func DayRange(date time.Time) (time.Time, time.Time) {
	start := DateOf(date)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
