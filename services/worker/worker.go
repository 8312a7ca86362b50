package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"macdealtracker/internal/crawler"
	"macdealtracker/internal/deal"
	"macdealtracker/internal/history"
	"macdealtracker/logger"
	"macdealtracker/services/notifier"
	"macdealtracker/services/publisher"
)

// Worker runs the deal pipeline: fetch, dedupe, score, rank, persist, deliver
type Worker struct {
	ctx           context.Context
	crawlers      []crawler.Crawler
	store         *history.Store
	publisher     publisher.Publisher
	notifier      notifier.Notifier
	topDeals      int
	retentionDays int
	checkInterval time.Duration
	log           *logger.Logger
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	crawlers []crawler.Crawler,
	store *history.Store,
	pub publisher.Publisher,
	notif notifier.Notifier,
	topDeals int,
	retentionDays int,
	checkInterval time.Duration,
) *Worker {
	return &Worker{
		ctx:           ctx,
		crawlers:      crawlers,
		store:         store,
		publisher:     pub,
		notifier:      notif,
		topDeals:      topDeals,
		retentionDays: retentionDays,
		checkInterval: checkInterval,
		log:           logger.ForWorker(),
	}
}

// Start runs the pipeline immediately and then once per check interval until
// the context is cancelled
func (w *Worker) Start() error {
	for {
		start := time.Now()
		w.RunOnce()
		w.log.Info().Dur("elapsed", time.Since(start)).Msg("Deal check finished")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-time.After(w.checkInterval):
		}
	}
}

// RunOnce executes one full pipeline pass. Every failure inside the pass
// degrades to fewer or no deals; none of them aborts the worker.
func (w *Worker) RunOnce() {
	listings := w.collectListings()
	w.log.Info().Int("total", len(listings)).Msg("Collected listings")

	unique := deal.Dedupe(listings)
	w.log.Info().Int("unique", len(unique)).Msg("Deduplicated listings")

	candidates := make([]deal.Deal, 0, len(unique))
	for _, l := range unique {
		candidates = append(candidates, deal.NewDeal(l))
	}

	best := deal.Rank(deal.Score(candidates), w.topDeals)
	if len(best) == 0 {
		w.log.Info().Msg("No good deals found today")
		return
	}
	w.log.Info().Int("count", len(best)).Msg("Found best deals")

	w.updateHistory(best)
	w.publishDeals(best)

	if err := w.notifier.SendDeals(best); err != nil {
		w.log.Error().Err(err).Msg("Failed to send deal alert")
	}
}

// collectListings runs all crawlers in parallel and gathers their listings.
// A failing crawler is logged and contributes nothing.
func (w *Worker) collectListings() []deal.Listing {
	var (
		mu       sync.Mutex
		listings []deal.Listing
		wg       sync.WaitGroup
	)

	for _, c := range w.crawlers {
		wg.Add(1)
		go func(c crawler.Crawler) {
			defer wg.Done()

			found, err := c.FetchListings()
			if err != nil {
				w.log.Error().Err(err).Str("crawler", c.GetName()).Msg("Crawler failed")
				return
			}

			mu.Lock()
			listings = append(listings, found...)
			mu.Unlock()
		}(c)
	}
	wg.Wait()

	return listings
}

// updateHistory folds the new deals into the persisted history and prunes
// entries outside the retention window
func (w *Worker) updateHistory(best []deal.Deal) {
	existing, err := w.store.Load()
	if err != nil {
		// Load recovers to an empty history on its own; the error is only
		// worth a warning
		w.log.Warn().Err(err).Msg("History recovered as empty")
	}

	updated := history.AppendAndPrune(existing, best, time.Now(), w.retentionDays)
	if err := w.store.Save(updated); err != nil {
		w.log.Error().Err(err).Msg("Failed to save deal history")
		return
	}

	w.log.Info().Int("history_size", len(updated)).Msg("Deal history updated")
}

// publishDeals publishes each ranked deal to the stream and trims it
func (w *Worker) publishDeals(best []deal.Deal) {
	if w.publisher == nil {
		return
	}

	for _, d := range best {
		data, err := json.Marshal(d)
		if err != nil {
			w.log.Error().Err(err).Str("title", d.Title).Msg("Failed to encode deal")
			continue
		}
		if err := w.publisher.Publish("deal", data); err != nil {
			w.log.Error().Err(err).Str("title", d.Title).Msg("Failed to publish deal")
		}
	}

	if err := w.publisher.TrimStream(); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim deal stream")
	}
}
