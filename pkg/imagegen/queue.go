package imagegen

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

var (
	ErrQueueFull    = errors.New("queue is full")
	ErrQueueStopped = errors.New("queue is stopped")
)

// Queue feeds a Renderer one prompt at a time from a bounded backlog.
type Queue struct {
	renderer Renderer
	stop     chan struct{}
	items    chan *Item
	once     sync.Once
}

type Item struct {
	Ctx      context.Context
	Prompt   string
	Response chan []byte
	Error    chan error
}

func NewQueue(r Renderer, size int) *Queue {
	if size <= 0 {
		size = 100
	}
	return &Queue{
		renderer: r,
		items:    make(chan *Item, size),
		stop:     make(chan struct{}),
	}
}

func (q *Queue) Start() {
	go q.processLoop()
}

func (q *Queue) Stop() {
	q.once.Do(func() { close(q.stop) })
}

// Add enqueues a prompt without blocking. Exactly one of the returned
// channels receives a value.
func (q *Queue) Add(ctx context.Context, prompt string) (chan []byte, chan error, error) {
	respCh := make(chan []byte, 1)
	errCh := make(chan error, 1)

	select {
	case <-q.stop:
		return nil, nil, ErrQueueStopped
	default:
	}

	select {
	case q.items <- &Item{
		Ctx:      ctx,
		Prompt:   prompt,
		Response: respCh,
		Error:    errCh,
	}:
		return respCh, errCh, nil
	default:
		return nil, nil, ErrQueueFull
	}
}

// Generate enqueues prompt and waits for its image or for ctx to end.
func (q *Queue) Generate(ctx context.Context, prompt string) ([]byte, error) {
	respCh, errCh, err := q.Add(ctx, prompt)
	if err != nil {
		return nil, err
	}
	select {
	case data := <-respCh:
		return data, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *Queue) processLoop() {
	log.Info("image queue started")
	for {
		select {
		case <-q.stop:
			log.Info("image queue stopped")
			return
		case item := <-q.items:
			q.processItem(item)
		}
	}
}

func (q *Queue) processItem(item *Item) {
	if err := item.Ctx.Err(); err != nil {
		item.Error <- err
		return
	}

	log.Info("rendering image", "prompt", utils.LimitStr(item.Prompt, 50))

	data, err := q.renderer.Render(item.Ctx, item.Prompt)
	if err != nil {
		log.Error("image generation failed", "err", err)
		item.Error <- err
		return
	}
	item.Response <- data
}
