package circuit

import "github.com/rs/zerolog"

// ZerologLogger adapts a zerolog.Logger to the circuit.Logger interface.
// It is the structured-logging backend this module ships; a Builder uses
// it only when it is installed with WithLogger.
type ZerologLogger struct {
	Log zerolog.Logger
}

// Error logs msg at error level with fields attached, one field per map
// entry.
func (z ZerologLogger) Error(msg string, fields map[string]any) {
	ev := z.Log.Error()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
