package dossier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	DefaultWorkerPoolSize = 16

	workerPoolExpireTime = time.Minute
)

type lookupRequest struct {
	ctx      context.Context
	target   string
	provider Provider
	result   *Observation
	wg       *sync.WaitGroup
}

type Dossier struct {
	logger         Logger
	providers      []Provider
	knowledgeGraph KnowledgeGraph
	stats          map[string]*UsageStats
	rwmutex        sync.RWMutex
	closeOnce      sync.Once
	workerPool     *ants.PoolWithFunc
	closed         bool
}

// Report asks all providers about the target, merges their
// observations and enriches the result with a knowledge graph data if
// a country is known.
//
// Provider failures never fail a report, they are logged and treated
// as empty observations. The only error is ErrDossierShutdown.
func (d *Dossier) Report(ctx context.Context, target string) (Record, error) {
	d.rwmutex.RLock()
	defer d.rwmutex.RUnlock()

	if d.closed {
		return Record{}, ErrDossierShutdown
	}

	observations := make([]Observation, len(d.providers))
	wg := &sync.WaitGroup{}

	for i, v := range d.providers {
		observations[i].Source = v.Name()

		wg.Add(1)

		req := &lookupRequest{
			ctx:      ctx,
			target:   target,
			provider: v,
			result:   &observations[i],
			wg:       wg,
		}

		if err := d.workerPool.Invoke(req); err != nil {
			wg.Done()
			d.lookupFailed(target, v.Name(), fmt.Errorf("cannot schedule a task: %w", err))
		}
	}

	wg.Wait()

	return d.enrich(ctx, Merge(target, observations)), nil
}

// UsageStats returns statistics of providers and a knowledge graph in
// the order of their usage.
func (d *Dossier) UsageStats() []*UsageStats {
	rv := make([]*UsageStats, 0, len(d.stats))

	for _, v := range d.providers {
		rv = append(rv, d.stats[v.Name()])
	}

	if d.knowledgeGraph != nil {
		rv = append(rv, d.stats[d.knowledgeGraph.Name()])
	}

	return rv
}

func (d *Dossier) Shutdown() {
	d.rwmutex.Lock()
	defer d.rwmutex.Unlock()

	d.closed = true

	d.closeOnce.Do(func() {
		d.workerPool.Release()
	})
}

func (d *Dossier) lookup(args interface{}) {
	req := args.(*lookupRequest)
	defer req.wg.Done()

	name := req.provider.Name()

	result, err := req.provider.Lookup(req.ctx, req.target)
	if err != nil {
		d.lookupFailed(req.target, name, err)

		return
	}

	d.stats[name].Used(nil)

	result.Source = name
	*req.result = result
}

func (d *Dossier) lookupFailed(target, name string, err error) {
	d.stats[name].Used(err)
	d.logger.LookupError(target, name, err)
}

func (d *Dossier) enrich(ctx context.Context, record Record) Record {
	if d.knowledgeGraph == nil || !record.Known(LabelCountryCode) {
		return record
	}

	countryCode, _ := record.Get(LabelCountryCode)
	if !KnownCountry(countryCode) {
		return record
	}

	countryCode = NormalizeAlpha2Code(countryCode)
	name := d.knowledgeGraph.Name()

	fields, err := d.knowledgeGraph.Lookup(ctx, countryCode)
	d.stats[name].Used(err)

	if err != nil {
		d.logger.EnrichError(countryCode, name, err)

		fields = AbsentFields(d.knowledgeGraph.Labels())
	}

	return Enrich(record, fields)
}

// NewDossier creates a new Dossier. Order of providers defines
// precedence of their observations. Knowledge graph is optional, if it
// is nil then records are never enriched.
func NewDossier(providers []Provider,
	knowledgeGraph KnowledgeGraph,
	logger Logger,
	workerPoolSize int) (*Dossier, error) {
	rv := &Dossier{
		logger:         logger,
		providers:      providers,
		knowledgeGraph: knowledgeGraph,
		stats:          map[string]*UsageStats{},
	}

	for _, v := range providers {
		if _, ok := rv.stats[v.Name()]; ok {
			return nil, fmt.Errorf("provider %s is duplicated", v.Name())
		}

		rv.stats[v.Name()] = &UsageStats{Name: v.Name()}
	}

	if knowledgeGraph != nil {
		rv.stats[knowledgeGraph.Name()] = &UsageStats{Name: knowledgeGraph.Name()}
	}

	poolSize := workerPoolSize
	if poolSize <= 0 {
		poolSize = DefaultWorkerPoolSize
	}

	pool, err := ants.NewPoolWithFunc(poolSize, rv.lookup,
		ants.WithExpiryDuration(workerPoolExpireTime))
	if err != nil {
		return nil, fmt.Errorf("cannot create a worker pool: %w", err)
	}

	rv.workerPool = pool

	return rv, nil
}
