package notification

import "log"

// Entrega de notificações é colaborador externo: melhor esforço, nunca
// falha uma reserva. O dispatcher desacopla o envio do caminho crítico.

type Message struct {
	To   string
	Body string
}

type Sender interface {
	Send(msg Message) error
}

type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil || msg.To == "" {
		return
	}

	select {
	case d.queue <- msg:
		// enviado
	default:
		log.Println("notification queue full, dropping message")
	}
}
