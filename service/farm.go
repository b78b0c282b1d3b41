// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"

	"triviumlite/defErr"
	"triviumlite/service/timer"
	"triviumlite/trivium"
)

/*
Farm runs many independent streams at once. Every job gets its own
trivium.Engine, nothing mutable is shared between workers except the
job queue and the result slots, one slot per job.
*/
type Farm struct {
	Workers int
	Verbose bool
}

type (
	Job struct {
		ID      int
		Seed    byte
		Payload []byte
		Verify  bool // reset, reseed and feed the output back through the same engine

		slot int
	}
	Result struct {
		ID       int
		Seed     byte
		Output   []byte
		Verified bool
		Err      error

		finished bool
	}
)

var (
	ErrFarmExpired = errors.New("service: farm stopped before every job finished")
	ErrRoundTrip   = errors.New("service: second pass did not restore the payload")
)

func (f *Farm) workers(n int) int {
	w := f.Workers
	if w <= 0 {
		w = 1
	}
	return min(w, n)
}

// Run blocks until every job is done or ctx ends. Results keep the order of jobs.
func (f *Farm) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, nil
	}
	q := NewJobQueue()
	for i, j := range jobs {
		j.slot = i
		q.PushBack(j)
	}
	q.Close()

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < f.workers(len(jobs)); w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				job, ok := q.PopFront()
				if !ok {
					return
				}
				results[job.slot] = runJob(ctx, job)
				if f.Verbose {
					log.Printf("[farm worker %d] job %d seed %#02x done, err=%v\n", worker, job.ID, job.Seed, results[job.slot].Err)
				}
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	var chain error
	expired := timer.TimeoutCtx(ctx, done)
	if expired {
		dropped := q.Drain()
		<-done
		log.Printf("[farm] %v, %d queued jobs dropped\n", ctx.Err(), dropped)
	}
	for i := range results {
		if !results[i].finished {
			results[i] = Result{ID: jobs[i].ID, Seed: jobs[i].Seed, Err: ErrFarmExpired}
		}
		switch err := results[i].Err; {
		case err == nil:
		case errors.Is(err, ErrFarmExpired):
			expired = true
		default:
			chain = defErr.PushErrorToErrChain(chain, defErr.Describef(err, "job %d", results[i].ID))
		}
	}
	if expired {
		chain = errors.Join(defErr.Describef(ErrFarmExpired, "farm: %v", ctx.Err()), chain)
	}
	return results, chain
}

func runJob(ctx context.Context, job Job) Result {
	res := Result{ID: job.ID, Seed: job.Seed, finished: true}
	e := trivium.NewEngine()
	if res.Err = e.LoadSeed(job.Seed); res.Err != nil {
		return res
	}

	out := make([]byte, 0, len(job.Payload))
	for _, b := range job.Payload {
		if err := ctx.Err(); err != nil {
			res.Err = defErr.DescribeThenConcat(err.Error(), ErrFarmExpired)
			return res
		}
		o, err := e.SubmitByte(b)
		if err != nil {
			res.Err = err
			return res
		}
		out = append(out, o)
	}
	res.Output = out
	if !job.Verify {
		return res
	}

	e.Reset()
	if res.Err = e.LoadSeed(job.Seed); res.Err != nil {
		return res
	}
	back, err := e.Process(out)
	if err != nil {
		res.Err = err
		return res
	}
	res.Verified = bytes.Equal(back, job.Payload)
	if !res.Verified {
		res.Err = ErrRoundTrip
	}
	return res
}
