// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any // полезная нагрузка, зависит от типа
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc — обёртка над функцией. Хранится по указателю, чтобы
// подписку можно было снять.
type ListenerFunc struct {
	fn func(Event)
}

// NewListenerFunc создаёт подписчика из функции.
func NewListenerFunc(fn func(Event)) *ListenerFunc {
	return &ListenerFunc{fn: fn}
}

func (l *ListenerFunc) OnEvent(e Event) {
	l.fn(e)
}

// Dispatcher — синхронный диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Безопасна внутри обработчика.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			next := make([]Listener, 0, len(listeners)-1)
			next = append(next, listeners[:i]...)
			next = append(next, listeners[i+1:]...)
			d.listeners[eventType] = next
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам на момент вызова
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
