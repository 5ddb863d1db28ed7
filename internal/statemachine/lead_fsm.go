package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/FilmsDust/agency-os/internal/models"
)

// LeadFSM wraps a lead with its funnel state machine. Stages can be advanced
// or walked back freely while the lead is open; won and lost are terminal.
type LeadFSM struct {
	lead *models.Lead
	fsm  *fsm.FSM
}

// NewLeadFSM creates a new lead funnel state machine
func NewLeadFSM(lead *models.Lead) *LeadFSM {
	openStages := []string{
		models.LeadStatusNew,
		models.LeadStatusContacted,
		models.LeadStatusProposal,
		models.LeadStatusNegotiation,
	}

	lfsm := &LeadFSM{
		lead: lead,
	}

	lfsm.fsm = fsm.NewFSM(
		lead.Status,
		fsm.Events{
			{Name: "contact", Src: openStages, Dst: models.LeadStatusContacted},
			{Name: "propose", Src: openStages, Dst: models.LeadStatusProposal},
			{Name: "negotiate", Src: openStages, Dst: models.LeadStatusNegotiation},
			{Name: "win", Src: openStages, Dst: models.LeadStatusWon},
			{Name: "lose", Src: openStages, Dst: models.LeadStatusLost},
			{Name: "reset", Src: openStages, Dst: models.LeadStatusNew},
		},
		fsm.Callbacks{},
	)

	return lfsm
}

// stageEvents maps target funnel stages to FSM event names.
var stageEvents = map[string]string{
	models.LeadStatusNew:         "reset",
	models.LeadStatusContacted:   "contact",
	models.LeadStatusProposal:    "propose",
	models.LeadStatusNegotiation: "negotiate",
	models.LeadStatusWon:         "win",
	models.LeadStatusLost:        "lose",
}

// MoveTo transitions the lead to the given funnel stage
func (l *LeadFSM) MoveTo(ctx context.Context, stage string) error {
	event, ok := stageEvents[stage]
	if !ok {
		return fmt.Errorf("unknown funnel stage: %s", stage)
	}

	if err := l.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to move lead to %s: %w", stage, err)
	}

	l.lead.Status = l.fsm.Current()
	return nil
}

// Current returns the current state
func (l *LeadFSM) Current() string {
	return l.fsm.Current()
}

// Can checks if a transition is possible
func (l *LeadFSM) Can(event string) bool {
	return l.fsm.Can(event)
}
