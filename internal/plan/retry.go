package plan

import (
	"fmt"

	"github.com/hikaru-dev/soroban/internal/problemgen"
)

// MaxRetryEpochs bounds how many retry passes a part may run beyond the
// original attempt: original (epoch 0) plus at most two retry epochs, so a
// problem is attempted at most three times.
const MaxRetryEpochs = 2

// RetryItem is one missed slot queued for replay. Retries always carry the
// exact problem that was missed; they are never regenerated.
type RetryItem struct {
	SlotIndex int
	Problem   *problemgen.Problem
}

// PartRetryState tracks the retry machinery for one part.
type PartRetryState struct {
	// CurrentEpoch is 0 during the original pass, 1 and 2 during retries.
	CurrentEpoch int
	// PendingRetries accumulates misses during the current epoch.
	PendingRetries []RetryItem
	// CurrentEpochItems is the queue being replayed this epoch.
	CurrentEpochItems []RetryItem
	// CurrentRetryIndex is the cursor into CurrentEpochItems.
	CurrentRetryIndex int
	// RedeemedSlots are slots corrected by manual redo; later epochs skip
	// them.
	RedeemedSlots map[int]bool
}

// ProblemInfo is the answer to "what should the student see right now".
type ProblemInfo struct {
	PartIndex int
	SlotIndex int
	Purpose   problemgen.Purpose
	Problem   *problemgen.Problem
	IsRetry   bool
	Epoch     int
}

// retryState returns the part's retry state, creating it lazily. The map is
// caller-owned plan state, not a hidden global.
func (p *Plan) retryState(partIdx int) *PartRetryState {
	rs, ok := p.RetryState[partIdx]
	if !ok {
		rs = &PartRetryState{RedeemedSlots: make(map[int]bool)}
		p.RetryState[partIdx] = rs
	}
	return rs
}

// RecordResult appends an attempt to the results log, queues a retry when the
// answer was wrong and retry budget remains, and advances the cursors. It is
// the only way plan cursors move forward.
func (p *Plan) RecordResult(r AttemptResult) {
	mustStatus(p.Status, StatusInProgress)
	part := p.part(r.PartIndex)
	if r.PartIndex != p.CurrentPartIndex {
		panic(fmt.Sprintf("plan: result for part %d, cursor at %d", r.PartIndex, p.CurrentPartIndex))
	}

	rs := p.retryState(r.PartIndex)

	if r.IsRetry {
		if rs.CurrentEpoch == 0 || rs.CurrentRetryIndex >= len(rs.CurrentEpochItems) {
			panic("plan: retry result with no active retry item")
		}
		item := rs.CurrentEpochItems[rs.CurrentRetryIndex]
		if r.OriginalSlotIndex != item.SlotIndex {
			panic(fmt.Sprintf("plan: retry result for slot %d, expected %d", r.OriginalSlotIndex, item.SlotIndex))
		}
		p.Results = append(p.Results, r)
		p.queueMiss(rs, r, item.SlotIndex, item.Problem)
		rs.CurrentRetryIndex++
	} else {
		if r.SlotIndex != p.CurrentSlotIndex || r.SlotIndex >= len(part.Slots) {
			panic(fmt.Sprintf("plan: result for slot %d, cursor at %d of %d", r.SlotIndex, p.CurrentSlotIndex, len(part.Slots)))
		}
		p.Results = append(p.Results, r)
		p.queueMiss(rs, r, r.SlotIndex, r.Problem)
		p.CurrentSlotIndex++
	}

	p.advance()
}

// queueMiss enqueues a wrong answer for the next epoch while budget remains.
func (p *Plan) queueMiss(rs *PartRetryState, r AttemptResult, slotIdx int, problem *problemgen.Problem) {
	if r.Correct || !r.Source.CountsForMastery() {
		return
	}
	if rs.CurrentEpoch >= p.EpochCap {
		// Out of retry budget; the miss stands.
		return
	}
	if rs.RedeemedSlots[slotIdx] {
		return
	}
	rs.PendingRetries = append(rs.PendingRetries, RetryItem{SlotIndex: slotIdx, Problem: problem})
}

// advance normalizes the cursors: it skips redeemed retry items, starts the
// next retry epoch when an epoch is exhausted with misses pending, moves to
// the next part when the current one is done, and completes the plan after
// the last part.
func (p *Plan) advance() {
	for {
		if p.CurrentPartIndex >= len(p.Parts) {
			p.Status = StatusCompleted
			return
		}
		part := &p.Parts[p.CurrentPartIndex]
		rs := p.RetryState[p.CurrentPartIndex]

		if rs != nil && rs.CurrentEpoch > 0 {
			// Skip items redeemed by manual redo.
			for rs.CurrentRetryIndex < len(rs.CurrentEpochItems) &&
				rs.RedeemedSlots[rs.CurrentEpochItems[rs.CurrentRetryIndex].SlotIndex] {
				rs.CurrentRetryIndex++
			}
			if rs.CurrentRetryIndex < len(rs.CurrentEpochItems) {
				return
			}
			if len(rs.PendingRetries) > 0 && rs.CurrentEpoch < p.EpochCap {
				p.startRetryEpoch(rs)
				continue
			}
		} else {
			if p.CurrentSlotIndex < len(part.Slots) {
				return
			}
			if rs != nil && len(rs.PendingRetries) > 0 {
				p.startRetryEpoch(rs)
				continue
			}
		}

		// Part exhausted at its final epoch.
		p.CurrentPartIndex++
		p.CurrentSlotIndex = 0
	}
}

// startRetryEpoch promotes the pending queue into the replay queue. Calling
// it past the epoch cap is a contract violation.
func (p *Plan) startRetryEpoch(rs *PartRetryState) {
	if rs.CurrentEpoch >= p.EpochCap {
		panic(fmt.Sprintf("plan: retry epoch would exceed cap %d", p.EpochCap))
	}
	items := rs.PendingRetries[:0:0]
	for _, item := range rs.PendingRetries {
		if !rs.RedeemedSlots[item.SlotIndex] {
			items = append(items, item)
		}
	}
	rs.CurrentEpochItems = items
	rs.PendingRetries = nil
	rs.CurrentRetryIndex = 0
	rs.CurrentEpoch++
}

// RedeemSlot records that a previously-missed slot was corrected via manual
// redo. Cursors do not move; the slot is skipped when later epochs reach it.
func (p *Plan) RedeemSlot(partIdx, slotIdx int) {
	part := p.part(partIdx)
	if slotIdx < 0 || slotIdx >= len(part.Slots) {
		panic(fmt.Sprintf("plan: redeem slot %d out of range for part %d", slotIdx, partIdx))
	}
	rs := p.retryState(partIdx)
	rs.RedeemedSlots[slotIdx] = true
	if partIdx == p.CurrentPartIndex {
		p.advance()
	}
}

// CurrentProblemInfo resolves the problem the student should see right now:
// the next unresolved retry item when a retry epoch is active, otherwise the
// next original slot. Nil when the plan is exhausted or not in progress.
func (p *Plan) CurrentProblemInfo() *ProblemInfo {
	if p.Status != StatusInProgress {
		return nil
	}
	if p.CurrentPartIndex >= len(p.Parts) {
		return nil
	}
	part := &p.Parts[p.CurrentPartIndex]
	rs := p.RetryState[p.CurrentPartIndex]

	if rs != nil && rs.CurrentEpoch > 0 {
		if rs.CurrentRetryIndex >= len(rs.CurrentEpochItems) {
			return nil
		}
		item := rs.CurrentEpochItems[rs.CurrentRetryIndex]
		return &ProblemInfo{
			PartIndex: p.CurrentPartIndex,
			SlotIndex: item.SlotIndex,
			Purpose:   part.Slots[item.SlotIndex].Purpose,
			Problem:   item.Problem,
			IsRetry:   true,
			Epoch:     rs.CurrentEpoch,
		}
	}

	if p.CurrentSlotIndex >= len(part.Slots) {
		return nil
	}
	slot := &part.Slots[p.CurrentSlotIndex]
	return &ProblemInfo{
		PartIndex: p.CurrentPartIndex,
		SlotIndex: p.CurrentSlotIndex,
		Purpose:   slot.Purpose,
		Problem:   slot.Problem,
	}
}
