package domain

import (
	"fmt"
	"time"
)

// MaxAccountSpan bounds the elapsed time a single account may cover.
const MaxAccountSpan = 24 * time.Hour

// TimeAccount is the reconstructed working day of one event log.
type TimeAccount struct {
	Start   time.Time
	End     time.Time
	Total   time.Duration
	Working time.Duration
	Resting time.Duration
	// Open is set when End is the synthetic closing instant taken from the clock.
	Open   bool
	Events int
}

func (a TimeAccount) IsEmpty() bool {
	return a.Events == 0
}

// Accumulator folds timepoints into working and resting sums. The gap
// between two consecutive timepoints is credited to the bucket of the
// earlier one. Accumulator is a value; Add returns the next state and
// leaves the receiver untouched.
type Accumulator struct {
	first   Timepoint
	last    Timepoint
	count   int
	working time.Duration
	resting time.Duration
}

func (a Accumulator) Len() int {
	return a.count
}

func (a Accumulator) Add(tp Timepoint) (Accumulator, error) {
	if !tp.Kind.Valid() {
		return a, fmt.Errorf("%w: unknown event kind %q", ErrMalformedLogLine, tp.Kind)
	}

	if a.count == 0 {
		a.first = tp
		a.last = tp
		a.count = 1
		return a, nil
	}

	if tp.Instant.Before(a.last.Instant) {
		return a, fmt.Errorf("%w: %q follows %q", ErrTimepointOutOfOrder, tp.String(), a.last.String())
	}

	gap := tp.Instant.Sub(a.last.Instant)
	if a.last.IsResuming() {
		a.working += gap
	} else {
		a.resting += gap
	}
	a.last = tp
	a.count++

	return a, nil
}

// Close resolves the final interval and validates the day boundary. now is
// only called when the last timepoint is resuming, i.e. the session is
// still open.
func (a Accumulator) Close(now func() time.Time) (TimeAccount, error) {
	if a.count == 0 {
		return TimeAccount{}, nil
	}

	account := TimeAccount{
		Start:   a.first.Instant,
		End:     a.last.Instant,
		Working: a.working,
		Resting: a.resting,
		Events:  a.count,
	}

	if a.last.IsResuming() {
		closing := now().In(a.last.Instant.Location())
		if closing.Before(a.last.Instant) {
			return TimeAccount{}, fmt.Errorf("%w: clock %s is before last event %q", ErrTimepointOutOfOrder, closing.Format(LogTimeLayout), a.last.String())
		}
		account.Working += closing.Sub(a.last.Instant)
		account.End = closing
		account.Open = true
	}

	account.Total = account.End.Sub(account.Start)
	if account.Total >= MaxAccountSpan {
		return TimeAccount{}, fmt.Errorf("%w: %s to %s spans %s", ErrTimeAccountOverflow,
			account.Start.Format(LogTimeLayout), account.End.Format(LogTimeLayout), account.Total)
	}

	return account, nil
}

// Reconstruct folds an ordered batch of timepoints into a TimeAccount.
// An empty batch yields the empty account and no error.
func Reconstruct(timepoints []Timepoint, now func() time.Time) (TimeAccount, error) {
	var acc Accumulator
	for _, tp := range timepoints {
		next, err := acc.Add(tp)
		if err != nil {
			return TimeAccount{}, err
		}
		acc = next
	}

	return acc.Close(now)
}
