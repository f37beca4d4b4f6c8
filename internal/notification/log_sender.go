package notification

import "log"

// LogSender é o fallback quando nenhum provedor está configurado
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	log.Printf("notification to %s: %s", msg.To, msg.Body)
	return nil
}
