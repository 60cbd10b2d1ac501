// Package search drives catalog listings from a free-text query, a category
// selection and a sort key. Input changes are coalesced with a trailing-edge
// debounce and only the latest issued request may update the state.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

const DefaultDebounce = 300 * time.Millisecond

// ConnectivityMessage is shown in place of results when the catalog cannot be reached.
const ConnectivityMessage = "Unable to connect to the catalog. Make sure the catalog service is running."

type Catalog interface {
	ListItems(ctx context.Context, q domproduct.Query) ([]domproduct.Product, error)
}

type State struct {
	Query    domproduct.Query
	Items    []domproduct.Product
	Err      string
	Loading  bool
	Searched bool
}

type Options struct {
	Debounce time.Duration
	Logger   *zap.Logger
	// OnChange receives every state transition in order. It is called without
	// the controller lock held.
	OnChange func(State)
}

type Controller struct {
	catalog  Catalog
	debounce time.Duration
	logger   *zap.Logger
	onChange func(State)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	query    domproduct.Query
	state    State
	version  uint64
	timer    *time.Timer
	gen      uint64
	seq      uint64
	inflight context.CancelFunc
	closed   bool

	notifyMu  sync.Mutex
	delivered uint64
}

func NewController(catalog Catalog, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		catalog:  catalog,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		onChange: opts.OnChange,
		ctx:      ctx,
		cancel:   cancel,
		query:    domproduct.Query{Sort: domproduct.SortByName},
	}
	c.state.Query = c.query
	return c
}

// Start resets the inputs and loads the unfiltered, default-sorted listing
// right away.
func (c *Controller) Start(ctx context.Context) State {
	c.mu.Lock()
	c.query = domproduct.Query{Sort: domproduct.SortByName}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh issues a request for the current inputs without waiting for the
// debounce interval and returns the resulting state. A pending debounced
// request is dropped.
func (c *Controller) Refresh(ctx context.Context) State {
	c.mu.Lock()
	if c.closed {
		st := c.snapshotLocked()
		c.mu.Unlock()
		return st
	}
	c.stopTimerLocked()
	reqCtx, seq, q := c.issueLocked(ctx)
	st, v := c.snapshotLocked(), c.version
	c.mu.Unlock()

	c.notify(st, v)
	c.run(reqCtx, seq, q)
	return c.State()
}

func (c *Controller) SetText(text string) {
	c.update(func(q *domproduct.Query) { q.Text = text })
}

// ToggleCategory adds name to the selection, or removes it when already
// selected. Selection order is kept.
func (c *Controller) ToggleCategory(name string) {
	c.update(func(q *domproduct.Query) {
		if q.HasCategory(name) {
			kept := make([]string, 0, len(q.Categories))
			for _, cat := range q.Categories {
				if cat != name {
					kept = append(kept, cat)
				}
			}
			q.Categories = kept
			return
		}
		q.Categories = append(append([]string(nil), q.Categories...), name)
	})
}

func (c *Controller) SetCategories(names []string) {
	c.update(func(q *domproduct.Query) {
		q.Categories = nil
		for _, n := range names {
			if !q.HasCategory(n) {
				q.Categories = append(q.Categories, n)
			}
		}
	})
}

func (c *Controller) SetSort(key domproduct.SortKey) error {
	if !key.IsValid() {
		return domproduct.ErrInvalidSortKey
	}
	c.update(func(q *domproduct.Query) { q.Sort = key })
	return nil
}

func (c *Controller) Query() domproduct.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyQuery(c.query)
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels pending and in-flight requests and waits for them to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopTimerLocked()
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) update(fn func(q *domproduct.Query)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	fn(&c.query)
	c.scheduleLocked()
}

// scheduleLocked restarts the debounce timer. Each timer carries a generation so
// that a callback already racing with Stop cannot fire a second request.
func (c *Controller) scheduleLocked() {
	c.stopTimerLocked()
	gen := c.gen
	c.timer = time.AfterFunc(c.debounce, func() { c.fire(gen) })
}

func (c *Controller) stopTimerLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	reqCtx, seq, q := c.issueLocked(c.ctx)
	st, v := c.snapshotLocked(), c.version
	c.mu.Unlock()

	c.notify(st, v)
	c.run(reqCtx, seq, q)
}

// issueLocked tags a new request with the next sequence number and cancels the
// one it supersedes.
func (c *Controller) issueLocked(parent context.Context) (context.Context, uint64, domproduct.Query) {
	c.seq++
	if c.inflight != nil {
		c.inflight()
	}
	ctx, cancel := context.WithCancel(parent)
	c.inflight = cancel
	c.wg.Add(1)

	q := copyQuery(c.query)
	c.state.Query = q
	c.state.Loading = true
	c.version++
	return ctx, c.seq, q
}

func (c *Controller) run(ctx context.Context, seq uint64, q domproduct.Query) {
	defer c.wg.Done()

	items, err := c.catalog.ListItems(ctx, q)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale search response", zap.Uint64("seq", seq))
		return
	}
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
	c.state.Loading = false
	c.state.Searched = true
	if err != nil {
		c.logger.Warn("search request failed", zap.String("q", q.Text), zap.Error(err))
		c.state.Items = []domproduct.Product{}
		c.state.Err = ConnectivityMessage
	} else {
		c.state.Items = items
		c.state.Err = ""
	}
	c.version++
	st, v, closed := c.snapshotLocked(), c.version, c.closed
	c.mu.Unlock()

	if !closed {
		c.notify(st, v)
	}
}

func (c *Controller) snapshotLocked() State {
	st := c.state
	st.Query = copyQuery(c.state.Query)
	st.Items = append([]domproduct.Product(nil), c.state.Items...)
	return st
}

// notify delivers st unless a newer state was already delivered.
func (c *Controller) notify(st State, version uint64) {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if version <= c.delivered {
		return
	}
	c.delivered = version
	c.onChange(st)
}

func copyQuery(q domproduct.Query) domproduct.Query {
	q.Categories = append([]string(nil), q.Categories...)
	return q
}
