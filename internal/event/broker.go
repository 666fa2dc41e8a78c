package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"

	"github.com/ytget/galeria/internal/logger"
)

// DefaultQueueSize is the per-subscriber buffer of the underlying bus
const DefaultQueueSize = 1024

// Dispatcher runs fn on the UI thread. fyne.Do satisfies it.
type Dispatcher func(fn func())

// Broker publishes gallery events to subscribers
type Broker struct {
	bus      messagebus.MessageBus
	dispatch Dispatcher
	log      *logger.Logger

	mu     sync.Mutex
	topics map[Topic]struct{}
}

// NewBroker creates a broker. A nil dispatch calls GUI callbacks directly.
func NewBroker(queueSize int, dispatch Dispatcher, log *logger.Logger) *Broker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Broker{
		bus:      messagebus.New(queueSize),
		dispatch: dispatch,
		log:      log,
		topics:   make(map[Topic]struct{}),
	}
}

// Subscribe registers fn on topic. fn runs on a bus goroutine.
func (b *Broker) Subscribe(topic Topic, fn interface{}) error {
	if err := b.bus.Subscribe(string(topic), fn); err != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, err)
	}
	b.remember(topic)
	return nil
}

// ConnectToGui registers fn on topic and runs it through the dispatcher
func (b *Broker) ConnectToGui(topic Topic, fn interface{}) error {
	callback := reflect.ValueOf(fn)
	if callback.Kind() != reflect.Func {
		return fmt.Errorf("subscribe to %s: handler is %s, not a func", topic, callback.Kind())
	}

	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		b.dispatch(func() {
			callback.Call(args)
		})
	}
	return b.Subscribe(topic, cb)
}

// Publish sends payload to every subscriber of topic
func (b *Broker) Publish(topic Topic, payload interface{}) {
	b.log.Debug("Broker", "publish", map[string]interface{}{"topic": string(topic)})
	b.bus.Publish(string(topic), payload)
}

// Close shuts down every topic that has subscribers
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic := range b.topics {
		b.bus.Close(string(topic))
	}
	b.topics = make(map[Topic]struct{})
}

func (b *Broker) remember(topic Topic) {
	b.mu.Lock()
	b.topics[topic] = struct{}{}
	b.mu.Unlock()
}
